package feed

import (
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"mailsim/models"
)

// Inbox accumulates pages from a Loader and derives the collated, sectioned
// view over everything loaded so far. Page loads are serialized; the view is
// session-scoped state, never persisted.
type Inbox struct {
	loader *Loader

	mu     sync.Mutex
	loaded []models.Message
}

// NewInbox wraps a loader.
func NewInbox(loader *Loader) *Inbox {
	return &Inbox{loader: loader}
}

// LoadMore pulls the next page into the inbox and reports how many messages
// were added and whether more may remain.
func (ib *Inbox) LoadMore() (int, bool) {
	page := ib.loader.NextPage()

	ib.mu.Lock()
	ib.loaded = append(ib.loaded, page...)
	ib.mu.Unlock()

	return len(page), ib.loader.HasMore()
}

// Loaded returns how many messages the inbox currently holds.
func (ib *Inbox) Loaded() int {
	ib.mu.Lock()
	defer ib.mu.Unlock()
	return len(ib.loaded)
}

// Threads collates everything loaded so far.
func (ib *Inbox) Threads() []models.Thread {
	ib.mu.Lock()
	msgs := make([]models.Message, len(ib.loaded))
	copy(msgs, ib.loaded)
	ib.mu.Unlock()

	return Collate(msgs)
}

// Sections returns the sectioned thread view in display order, localized
// through the given localizer.
func (ib *Inbox) Sections(localizer *i18n.Localizer) []Section {
	return Sections(ib.Threads(), ib.loader.Now(), ib.loader.Zone(), localizer)
}
