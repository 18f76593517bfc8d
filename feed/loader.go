// Package feed derives what a mail client view needs from the persisted
// monthly shards: lazily loaded months, cursor pagination, thread collation
// and relative-time sections. Nothing in here is ever persisted.
package feed

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"mailsim/models"
	"mailsim/storage"
	"mailsim/utils"
)

// Loader pages through the available months most-recent-first without ever
// holding the full corpus in memory at once.
//
// Loaded months are cached for the lifetime of the loader with no eviction;
// a long-lived process over many years of data will grow the cache
// accordingly.
type Loader struct {
	store    *storage.Store
	months   []storage.MonthRef
	pageSize int
	now      func() time.Time
	zone     *time.Location

	mu     sync.Mutex
	cache  map[string][]models.Message
	pos    int // index into months (descending order)
	offset int // messages consumed from the current month
}

// Option configures a Loader.
type Option func(*Loader)

// WithNow overrides the clock used to filter future messages and bucket
// sections.
func WithNow(now func() time.Time) Option {
	return func(l *Loader) { l.now = now }
}

// WithPageSize overrides the page size.
func WithPageSize(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.pageSize = n
		}
	}
}

// WithZone overrides the display timezone.
func WithZone(loc *time.Location) Option {
	return func(l *Loader) { l.zone = loc }
}

// DefaultPageSize is the number of messages accumulated per page load.
const DefaultPageSize = 200

// NewLoader builds a loader over the months listed in the store's manifest,
// ordered descending by (year, numeric month prefix).
func NewLoader(store *storage.Store, opts ...Option) *Loader {
	l := &Loader{
		store:    store,
		months:   store.ReadManifest().Months(),
		pageSize: DefaultPageSize,
		now:      time.Now,
		zone:     utils.LoadLocation(utils.DefaultTimezone),
		cache:    make(map[string][]models.Message),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Zone returns the loader's display timezone.
func (l *Loader) Zone() *time.Location {
	return l.zone
}

// Now returns the loader's notion of the current moment.
func (l *Loader) Now() time.Time {
	return l.now()
}

// Months enumerates the available months, most recent first.
func (l *Loader) Months() []storage.MonthRef {
	out := make([]storage.MonthRef, len(l.months))
	copy(out, l.months)
	return out
}

// MonthMessages loads one month's raw messages as persisted (ascending by
// timestamp). A month with no backing data yields an empty list.
func (l *Loader) MonthMessages(year int, monthKey string) []models.Message {
	msgs := l.store.ReadMonth(year, monthKey)
	if msgs == nil {
		return []models.Message{}
	}
	return msgs
}

// LatestMonth returns the most recent available month and its raw messages.
func (l *Loader) LatestMonth() (storage.MonthRef, []models.Message, bool) {
	if len(l.months) == 0 {
		return storage.MonthRef{}, nil, false
	}
	ref := l.months[0]
	return ref, l.MonthMessages(ref.Year, ref.MonthKey), true
}

// monthDesc returns a month parsed, stripped of messages timestamped after
// "now", sorted descending and cached. A cached month is never re-parsed.
// Callers must hold l.mu.
func (l *Loader) monthDesc(ref storage.MonthRef) []models.Message {
	key := fmt.Sprintf("%04d/%s", ref.Year, ref.MonthKey)
	if cached, ok := l.cache[key]; ok {
		return cached
	}

	cutoff := l.now().UnixMilli()
	var data []models.Message
	for _, m := range l.store.ReadMonth(ref.Year, ref.MonthKey) {
		if m.Timestamp <= cutoff {
			data = append(data, m)
		}
	}
	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Timestamp > data[j].Timestamp
	})

	l.cache[key] = data
	return data
}

// NextPage returns the next page of messages in descending timestamp order,
// walking across month boundaries until the page is full or the months are
// exhausted. Repeated calls resume exactly where the previous one stopped.
func (l *Loader) NextPage() []models.Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	var page []models.Message
	for len(page) < l.pageSize && l.pos < len(l.months) {
		desc := l.monthDesc(l.months[l.pos])
		remaining := len(desc) - l.offset
		if remaining <= 0 {
			l.pos++
			l.offset = 0
			continue
		}

		take := l.pageSize - len(page)
		if take > remaining {
			take = remaining
		}
		page = append(page, desc[l.offset:l.offset+take]...)
		l.offset += take
		if l.offset >= len(desc) {
			l.pos++
			l.offset = 0
		}
	}
	return page
}

// HasMore reports whether another page may yield messages.
func (l *Loader) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pos < len(l.months)
}

// Reset rewinds the pagination cursor without dropping the month cache.
func (l *Loader) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pos = 0
	l.offset = 0
}
