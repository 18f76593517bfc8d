package models

import "time"

// Message is the generated unit and the stable wire shape persisted in the
// monthly shards. Timestamps are UTC epoch milliseconds; display code converts
// them back into the mailbox timezone.
type Message struct {
	ID          string       `json:"id"`
	From        string       `json:"from"`
	FromName    string       `json:"fromName"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	Timestamp   int64        `json:"timestamp"`
	IsRead      bool         `json:"isRead"`
	IsStarred   bool         `json:"isStarred"`
	Labels      []string     `json:"labels"`
	Attachments []Attachment `json:"attachments"`
	ThreadID    string       `json:"threadId,omitempty"`
}

// Attachment represents a file attached to a message.
type Attachment struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Mime   string `json:"mime,omitempty"`
	Inline bool   `json:"inline,omitempty"`
}

// Time returns the message timestamp in the given location.
func (m Message) Time(loc *time.Location) time.Time {
	return time.UnixMilli(m.Timestamp).In(loc)
}

// ThreadKey returns the grouping key used by thread collation. Messages
// without a thread id form single-message threads keyed by their own id.
func (m Message) ThreadKey() string {
	if m.ThreadID != "" {
		return m.ThreadID
	}
	return m.ID
}
