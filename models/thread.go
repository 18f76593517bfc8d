package models

// Thread is a client-side aggregate over messages sharing a thread id. It is
// derived freshly from loaded messages on each load and never persisted.
type Thread struct {
	ID            string `json:"id"`
	Subject       string `json:"subject"`
	Preview       string `json:"preview"`
	Sender        string `json:"sender"`
	Avatar        string `json:"avatar"`
	Body          string `json:"body"`
	MessageCount  int    `json:"messageCount"`
	Unread        bool   `json:"unread"`
	LastTimestamp int64  `json:"lastTimestamp"`
}
