package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailsim/config"
	"mailsim/models"
	"mailsim/storage"
	"mailsim/utils"
)

// stubSource drives every probability gate with a fixed roll and resolves
// every pool selection to the first element, so generated branches are exact.
type stubSource struct{ roll float64 }

func (s stubSource) Intn(n int) int   { return 0 }
func (s stubSource) Float64() float64 { return s.roll }

var (
	neverFire  = stubSource{roll: 0.99}
	alwaysFire = stubSource{roll: 0.0}
)

func testConfig(start, end string) *config.Config {
	cfg := &config.Config{}
	cfg.Mailbox.OwnerName = "Alex Mercer"
	cfg.Mailbox.OwnerEmail = "alex.mercer@meridiancap.com.au"
	cfg.Mailbox.Timezone = "Australia/Melbourne"
	cfg.Generator.Start = start
	cfg.Generator.End = end
	cfg.Generator.Quiet = true
	cfg.Generator.LogEvery = 7
	cfg.Generator.SkipExistingDay = true
	cfg.Generator.CateringProb = 0.35
	return cfg
}

func testGenerator(t *testing.T, cfg *config.Config, src Source) (*Generator, *storage.Store) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	return New(cfg, store, DefaultRoster(), DefaultStores(), src), store
}

func allMessages(t *testing.T, store *storage.Store) []models.Message {
	t.Helper()
	refs, err := store.MonthsOnDisk()
	require.NoError(t, err)
	var all []models.Message
	for _, ref := range refs {
		all = append(all, store.ReadMonth(ref.Year, ref.MonthKey)...)
	}
	return all
}

func TestRunProducesUniqueIDsAndSortedShards(t *testing.T) {
	// Range spans a month boundary.
	gen, store := testGenerator(t, testConfig("2025-08-30", "2025-09-02"), neverFire)
	require.NoError(t, gen.Run())

	refs, err := store.MonthsOnDisk()
	require.NoError(t, err)
	require.Len(t, refs, 2)

	seen := map[string]bool{}
	for _, ref := range refs {
		shard := store.ReadMonth(ref.Year, ref.MonthKey)
		require.NotEmpty(t, shard)
		for i, m := range shard {
			assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
			seen[m.ID] = true
			if i > 0 {
				assert.LessOrEqual(t, shard[i-1].Timestamp, m.Timestamp)
			}
		}
	}
}

func TestRunIsIdempotentPerDay(t *testing.T) {
	cfg := testConfig("2025-08-20", "2025-08-21")
	gen, store := testGenerator(t, cfg, neverFire)

	require.NoError(t, gen.Run())
	first := allMessages(t, store)
	require.NotEmpty(t, first)

	require.NoError(t, gen.Run())
	assert.Len(t, allMessages(t, store), len(first))
}

func TestSpilledSatelliteDoesNotSuppressDay(t *testing.T) {
	cfg := testConfig("2025-08-20", "2025-08-20")
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	gen := New(cfg, store, DefaultRoster(), DefaultStores(), neverFire)

	// Seed the shard as if the previous day's run left a receipt in the small
	// hours of the 20th. The day itself has never been generated.
	loc := gen.Zone()
	spilled := models.Message{
		ID:          "spilled-receipt",
		From:        "noreply@meridiancap.com.au",
		To:          "alex.mercer@meridiancap.com.au",
		Subject:     "Read: Fee review",
		Timestamp:   time.Date(2025, 8, 20, 6, 0, 0, 0, loc).UnixMilli(),
		Labels:      []string{string(models.ArchetypeInternalSystem)},
		Attachments: []models.Attachment{},
		ThreadID:    "origin-from-the-19th",
	}
	require.NoError(t, store.WriteMonth(2025, "08_august", []models.Message{spilled}))

	require.NoError(t, gen.Run())

	all := allMessages(t, store)
	var brief, primary int
	for _, m := range all {
		if m.From == "research@meridiancap.com.au" {
			brief++
		}
		if m.ThreadID == "" && m.ID != "spilled-receipt" {
			primary++
		}
	}
	assert.Equal(t, 1, brief, "the day must still carry its morning brief")
	assert.Positive(t, primary, "the day must still carry primary traffic")
}

func TestForceRebuildReplacesDay(t *testing.T) {
	cfg := testConfig("2025-08-20", "2025-08-20")
	gen, store := testGenerator(t, cfg, neverFire)
	require.NoError(t, gen.Run())
	first := allMessages(t, store)

	cfg.Generator.ForceRebuild = true
	require.NoError(t, gen.Run())
	second := allMessages(t, store)

	assert.Len(t, second, len(first))
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestThreadCausality(t *testing.T) {
	gen, store := testGenerator(t, testConfig("2025-08-20", "2025-08-20"), alwaysFire)
	require.NoError(t, gen.Run())

	all := allMessages(t, store)
	byID := map[string]models.Message{}
	for _, m := range all {
		byID[m.ID] = m
	}

	linked := 0
	for _, m := range all {
		if m.ThreadID == "" {
			continue
		}
		origin, ok := byID[m.ThreadID]
		require.True(t, ok, "thread %s has no originating message", m.ThreadID)
		assert.GreaterOrEqual(t, m.Timestamp, origin.Timestamp)
		linked++
	}
	assert.Positive(t, linked)
}

func TestVolumeRule(t *testing.T) {
	loc := utils.LoadLocation("Australia/Melbourne")
	gen, _ := testGenerator(t, testConfig("2025-08-01", "2025-08-31"), neverFire)

	weekday := gen.volumeForDay(time.Date(2025, 8, 20, 0, 0, 0, 0, loc))  // Wednesday
	weekend := gen.volumeForDay(time.Date(2025, 8, 9, 0, 0, 0, 0, loc))   // Saturday, week 2
	crunch := gen.volumeForDay(time.Date(2025, 8, 30, 0, 0, 0, 0, loc))   // Saturday, week 5

	assert.Equal(t, 15, weekday)
	assert.Equal(t, 2, weekend)
	assert.Equal(t, 5, crunch)
	assert.Greater(t, weekday, crunch)
}

func TestMorningBriefScheduling(t *testing.T) {
	loc := utils.LoadLocation("Australia/Melbourne")
	gen, _ := testGenerator(t, testConfig("2025-08-20", "2025-08-20"), neverFire)

	day := time.Date(2025, 8, 20, 0, 0, 0, 0, loc) // Wednesday
	msgs := gen.scheduledForDay(day)
	require.Len(t, msgs, 1)

	brief := msgs[0]
	assert.Equal(t, "research@meridiancap.com.au", brief.From)
	assert.True(t, brief.IsRead)

	local := brief.Time(loc)
	assert.Equal(t, 6, local.Hour())
	assert.GreaterOrEqual(t, local.Minute(), 30)

	// Nothing is scheduled on weekends short of the rare broadcast.
	assert.Empty(t, gen.scheduledForDay(time.Date(2025, 8, 23, 0, 0, 0, 0, loc)))
}

func TestCateringGatedByProbability(t *testing.T) {
	loc := utils.LoadLocation("Australia/Melbourne")
	day := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)

	gen, _ := testGenerator(t, testConfig("2025-08-20", "2025-08-20"), alwaysFire)
	var fromCatering int
	for _, m := range gen.scheduledForDay(day) {
		if m.From == "menus@atriumcatering.com.au" {
			fromCatering++
		}
	}
	assert.Equal(t, 1, fromCatering)

	gen.cfg.Generator.CateringProb = 0
	for _, m := range gen.scheduledForDay(day) {
		assert.NotEqual(t, "menus@atriumcatering.com.au", m.From)
	}
}

func TestSatelliteBranchesForClientSender(t *testing.T) {
	cfg := testConfig("2025-08-20", "2025-08-20")
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	owner := DefaultOwner()
	roster := NewRoster(owner, []models.Sender{{
		Name:      "Nadia Kovac",
		Email:     "investments@harboursuper.com.au",
		Archetype: models.ArchetypeExternalClient,
		Signature: "--\nNadia",
	}})
	gen := New(cfg, store, roster, DefaultStores(), alwaysFire)

	loc := gen.Zone()
	day := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)
	origin := gen.messageFromDraft(roster.Senders[0], &Draft{Subject: "Fee review", Body: "body"}, day)
	sats := gen.satellites(origin, roster.Senders[0], day)

	var reply, notice, junk, invite bool
	for _, m := range sats {
		switch {
		case m.From == owner.Email:
			reply = true
			assert.Equal(t, "RE: Fee review", m.Subject)
			assert.Equal(t, origin.ID, m.ThreadID)
		case m.Labels[0] == string(models.ArchetypeInternalSystem):
			notice = true
			assert.Equal(t, origin.ID, m.ThreadID)
			assert.GreaterOrEqual(t, m.Timestamp, origin.Timestamp+12*60*minute)
		case m.Labels[0] == string(models.ArchetypeExternalJunk):
			junk = true
			assert.Empty(t, m.ThreadID)
		case len(m.Attachments) == 1 && m.Attachments[0].Mime == "text/calendar":
			invite = true
			assert.Equal(t, origin.ID, m.ThreadID)
		}
	}
	assert.True(t, reply)
	assert.True(t, notice)
	assert.True(t, junk)
	assert.True(t, invite)
}

func TestOOOPersonaAutoReply(t *testing.T) {
	gen, _ := testGenerator(t, testConfig("2025-08-20", "2025-08-20"), alwaysFire)
	loc := gen.Zone()
	day := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)

	priya := gen.roster.Senders[0]
	require.Equal(t, "priya.raman@meridiancap.com.au", priya.Email)

	origin := gen.messageFromDraft(priya, &Draft{Subject: "Model review", Body: "body"}, day)
	sats := gen.satellites(origin, priya, day)

	var ooo bool
	for _, m := range sats {
		if m.Labels[0] == string(models.ArchetypeInternalOOO) {
			ooo = true
			assert.Equal(t, priya.Email, m.From)
			assert.Equal(t, "Automatic reply: Model review", m.Subject)
			assert.Equal(t, origin.ID, m.ThreadID)
			assert.GreaterOrEqual(t, m.Timestamp, origin.Timestamp+2*60*minute)
		}
	}
	assert.True(t, ooo)
}
