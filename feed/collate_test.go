package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailsim/models"
)

func threaded(id, threadID, subject string, ts int64, read bool) models.Message {
	m := wireMsg(id, ts)
	m.ThreadID = threadID
	m.Subject = subject
	m.IsRead = read
	return m
}

func TestCollateGroupsByThread(t *testing.T) {
	threads := Collate([]models.Message{
		threaded("m1", "", "Q3 Review", 100, true),
		threaded("m2", "m1", "RE: Q3 Review", 200, false),
		threaded("m3", "", "Lunch?", 150, true),
	})

	require.Len(t, threads, 2)
	assert.Equal(t, "m1", threads[0].ID)
	assert.Equal(t, 2, threads[0].MessageCount)
	assert.True(t, threads[0].Unread)
	assert.Equal(t, int64(200), threads[0].LastTimestamp)

	assert.Equal(t, "m3", threads[1].ID)
	assert.Equal(t, 1, threads[1].MessageCount)
	assert.False(t, threads[1].Unread)
}

func TestCollateSubjectFollowsNewestReply(t *testing.T) {
	threads := Collate([]models.Message{
		threaded("m1", "", "Q3 Review", 100, true),
		threaded("m2", "m1", "RE: Q3 Review", 200, true),
		threaded("m3", "m1", "FWD: Q3 Review", 300, true),
	})

	require.Len(t, threads, 1)
	assert.Equal(t, "FWD: Q3 Review", threads[0].Subject)
}

func TestCollateKeepsOriginSubjectAgainstUnprefixedFollowups(t *testing.T) {
	// A later constituent without a reply prefix must not clobber the
	// originating subject.
	threads := Collate([]models.Message{
		threaded("m1", "", "Q3 Review", 100, true),
		threaded("m2", "m1", "Totally unrelated update", 200, true),
	})

	require.Len(t, threads, 1)
	assert.Equal(t, "Q3 Review", threads[0].Subject)
}

func TestCollateDisplayFieldsComeFromLatest(t *testing.T) {
	older := threaded("m1", "", "Q3 Review", 100, true)
	older.FromName = "Priya Raman"
	older.Body = "First draft attached."

	newer := threaded("m2", "m1", "RE: Q3 Review", 200, true)
	newer.FromName = "Alex Mercer"
	newer.Body = "Looks good,\n\nsigning off."

	threads := Collate([]models.Message{older, newer})
	require.Len(t, threads, 1)

	assert.Equal(t, "Alex Mercer", threads[0].Sender)
	assert.Equal(t, "AM", threads[0].Avatar)
	assert.Equal(t, "Looks good, signing off.", threads[0].Preview)
	assert.Equal(t, newer.Body, threads[0].Body)
}

func TestCollateSortsThreadsByRecency(t *testing.T) {
	threads := Collate([]models.Message{
		threaded("m1", "", "Old", 100, true),
		threaded("m2", "", "New", 300, true),
		threaded("m3", "", "Middle", 200, true),
	})

	require.Len(t, threads, 3)
	assert.Equal(t, []string{"m2", "m3", "m1"},
		[]string{threads[0].ID, threads[1].ID, threads[2].ID})
}

func TestCollateEmptyInput(t *testing.T) {
	assert.Empty(t, Collate(nil))
}
