package scores

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/Aeomanate/TableOfAdditionGame/internal/models"
)

func record(t *testing.T, nick string, scores uint32) models.ScoreRecord {
	t.Helper()
	n, err := models.NewNickname(nick)
	require.NoError(t, err)
	return models.ScoreRecord{Nickname: n, Scores: scores}
}

func timedRecord(t *testing.T, nick string, scores uint32, d time.Duration) models.TimedScoreRecord {
	t.Helper()
	return models.TimedScoreRecord{ScoreRecord: record(t, nick, scores), Duration: d}
}

func descending(t *testing.T) *Leaderboard[models.ScoreRecord] {
	t.Helper()
	return NewLeaderboard(lo.Times(10, func(i int) models.ScoreRecord {
		return record(t, "old", uint32(9-i))
	})...)
}

func TestInsertKeepsDescendingOrder(t *testing.T) {
	lb := NewLeaderboard(
		record(t, "c", 3),
		record(t, "a", 9),
		record(t, "b", 5),
	)
	got := lo.Map(lb.All(), func(r models.ScoreRecord, _ int) uint32 { return r.Scores })
	assert.Equal(t, []uint32{9, 5, 3}, got)
}

func TestInsertAfterEqualScores(t *testing.T) {
	lb := descending(t)

	pos := lb.Insert(record(t, "new", 5))

	assert.Equal(t, 5, pos, "rank 6 is index 5")
	all := lb.All()
	assert.Equal(t, "old", all[4].Nickname.String())
	assert.Equal(t, uint32(5), all[4].Scores)
	assert.Equal(t, "new", all[5].Nickname.String())
	assert.Equal(t, 11, lb.Len())

	top := lb.Top(10)
	require.Len(t, top, 10)
	assert.Equal(t, uint32(1), top[9].Scores)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Scores, top[i].Scores)
	}
}

func TestTimedOrderBreaksTiesByDuration(t *testing.T) {
	lb := NewLeaderboard(
		timedRecord(t, "slow", 4, 20*time.Second),
		timedRecord(t, "best", 6, 90*time.Second),
		timedRecord(t, "fast", 4, 10*time.Second),
		timedRecord(t, "same", 4, 10*time.Second),
	)
	got := lo.Map(lb.All(), func(r models.TimedScoreRecord, _ int) string { return r.Nickname.String() })
	assert.Equal(t, []string{"best", "fast", "same", "slow"}, got)
}

func TestTopCopies(t *testing.T) {
	lb := NewLeaderboard(record(t, "a", 1))
	top := lb.Top(5)
	require.Len(t, top, 1)
	top[0].Scores = 100
	assert.Equal(t, uint32(1), lb.All()[0].Scores)
	assert.Empty(t, lb.Top(-1))
}
