package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailsim/models"
	"mailsim/storage"
)

func wireMsg(id string, ts int64) models.Message {
	return models.Message{
		ID:          id,
		From:        "priya.raman@meridiancap.com.au",
		FromName:    "Priya Raman",
		To:          "alex.mercer@meridiancap.com.au",
		Subject:     "Subject " + id,
		Body:        "Body " + id,
		Timestamp:   ts,
		Labels:      []string{"internal"},
		Attachments: []models.Attachment{},
	}
}

func fixedNow(t *testing.T) (time.Time, *time.Location) {
	t.Helper()
	loc, err := time.LoadLocation("Australia/Melbourne")
	require.NoError(t, err)
	return time.Date(2025, 8, 28, 10, 0, 0, 0, loc), loc
}

// seedLoader persists the given shards, rebuilds the manifest and opens a
// loader pinned to a fixed clock.
func seedLoader(t *testing.T, pageSize int, shards map[storage.MonthRef][]models.Message) (*Loader, *storage.Store) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	for ref, msgs := range shards {
		require.NoError(t, store.WriteMonth(ref.Year, ref.MonthKey, msgs))
	}
	_, err = store.WriteManifest()
	require.NoError(t, err)

	now, loc := fixedNow(t)
	return NewLoader(store,
		WithPageSize(pageSize),
		WithZone(loc),
		WithNow(func() time.Time { return now }),
	), store
}

func at(t *testing.T, year int, month time.Month, day, hour int) int64 {
	t.Helper()
	_, loc := fixedNow(t)
	return time.Date(year, month, day, hour, 0, 0, 0, loc).UnixMilli()
}

func TestNextPageSpansMonthBoundaries(t *testing.T) {
	loader, _ := seedLoader(t, 4, map[storage.MonthRef][]models.Message{
		{Year: 2025, MonthKey: "08_august"}: {
			wireMsg("a1", at(t, 2025, 8, 5, 9)),
			wireMsg("a2", at(t, 2025, 8, 12, 9)),
			wireMsg("a3", at(t, 2025, 8, 20, 9)),
		},
		{Year: 2025, MonthKey: "07_july"}: {
			wireMsg("j1", at(t, 2025, 7, 3, 9)),
			wireMsg("j2", at(t, 2025, 7, 15, 9)),
			wireMsg("j3", at(t, 2025, 7, 28, 9)),
		},
	})

	first := loader.NextPage()
	require.Len(t, first, 4)
	assert.Equal(t, "a3", first[0].ID)
	assert.Equal(t, "j3", first[3].ID)

	second := loader.NextPage()
	require.Len(t, second, 2)
	assert.False(t, loader.HasMore())
	assert.Empty(t, loader.NextPage())

	all := append(first, second...)
	seen := map[string]bool{}
	for i, m := range all {
		assert.False(t, seen[m.ID], "message %s paged twice", m.ID)
		seen[m.ID] = true
		if i > 0 {
			assert.Greater(t, all[i-1].Timestamp, m.Timestamp)
		}
	}
	assert.Len(t, seen, 6)
}

func TestNextPageFiltersFutureMessages(t *testing.T) {
	loader, _ := seedLoader(t, 10, map[storage.MonthRef][]models.Message{
		{Year: 2025, MonthKey: "08_august"}: {
			wireMsg("past", at(t, 2025, 8, 28, 9)),
			wireMsg("future", at(t, 2025, 8, 28, 11)), // past the pinned clock
		},
	})

	page := loader.NextPage()
	require.Len(t, page, 1)
	assert.Equal(t, "past", page[0].ID)
}

func TestLoadedMonthIsNeverReparsed(t *testing.T) {
	ref := storage.MonthRef{Year: 2025, MonthKey: "08_august"}
	loader, store := seedLoader(t, 10, map[storage.MonthRef][]models.Message{
		ref: {wireMsg("a1", at(t, 2025, 8, 5, 9))},
	})

	require.Len(t, loader.NextPage(), 1)

	// Rewrite the shard behind the loader's back. The cached month must win.
	require.NoError(t, store.WriteMonth(ref.Year, ref.MonthKey, []models.Message{
		wireMsg("a1", at(t, 2025, 8, 5, 9)),
		wireMsg("a2", at(t, 2025, 8, 6, 9)),
	}))

	loader.Reset()
	page := loader.NextPage()
	require.Len(t, page, 1)
	assert.Equal(t, "a1", page[0].ID)
}

func TestLoaderOverEmptyStore(t *testing.T) {
	loader, _ := seedLoader(t, 10, nil)

	assert.Empty(t, loader.Months())
	assert.Empty(t, loader.NextPage())
	assert.False(t, loader.HasMore())

	_, _, ok := loader.LatestMonth()
	assert.False(t, ok)
}

func TestLatestMonthAndMonthMessages(t *testing.T) {
	loader, _ := seedLoader(t, 10, map[storage.MonthRef][]models.Message{
		{Year: 2025, MonthKey: "07_july"}:   {wireMsg("j1", at(t, 2025, 7, 3, 9))},
		{Year: 2025, MonthKey: "08_august"}: {wireMsg("a1", at(t, 2025, 8, 5, 9))},
	})

	ref, msgs, ok := loader.LatestMonth()
	require.True(t, ok)
	assert.Equal(t, storage.MonthRef{Year: 2025, MonthKey: "08_august"}, ref)
	require.Len(t, msgs, 1)
	assert.Equal(t, "a1", msgs[0].ID)

	assert.Empty(t, loader.MonthMessages(2030, "01_january"))
	assert.NotNil(t, loader.MonthMessages(2030, "01_january"))
}

func TestInboxAccumulatesPages(t *testing.T) {
	loader, _ := seedLoader(t, 2, map[storage.MonthRef][]models.Message{
		{Year: 2025, MonthKey: "08_august"}: {
			wireMsg("a1", at(t, 2025, 8, 5, 9)),
			wireMsg("a2", at(t, 2025, 8, 12, 9)),
			wireMsg("a3", at(t, 2025, 8, 20, 9)),
		},
	})
	inbox := NewInbox(loader)

	added, more := inbox.LoadMore()
	assert.Equal(t, 2, added)
	assert.True(t, more)
	assert.Equal(t, 2, inbox.Loaded())

	added, _ = inbox.LoadMore()
	assert.Equal(t, 1, added)
	assert.Equal(t, 3, inbox.Loaded())

	threads := inbox.Threads()
	require.Len(t, threads, 3)
	assert.Equal(t, "a3", threads[0].ID)

	sections := inbox.Sections(nil)
	require.NotEmpty(t, sections)
}
