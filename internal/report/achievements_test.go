package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enpeak/linglog/internal/history"
)

func badgeByID(t *testing.T, badges []Achievement, id string) Achievement {
	t.Helper()
	for _, b := range badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %q not in rule table", id)
	return Achievement{}
}

func TestAchievements_FreshStart(t *testing.T) {
	badges := Achievements(nil, 0, 0)
	require.Len(t, badges, 10)
	for _, b := range badges {
		assert.False(t, b.Achieved, "badge %s should be locked", b.ID)
	}
}

func TestAchievements_FirstStep(t *testing.T) {
	records := []history.Record{rec(history.TypeChat, 0, 9)}
	badges := Achievements(records, 1, 0)
	assert.True(t, badgeByID(t, badges, "first_step").Achieved)

	// Lifetime counters keep it earned after the log empties.
	badges = Achievements(nil, 0, 5)
	assert.True(t, badgeByID(t, badges, "first_step").Achieved)
}

func TestAchievements_StreakThresholds(t *testing.T) {
	badges := Achievements(nil, 14, 0)
	assert.True(t, badgeByID(t, badges, "streak_3").Achieved)
	assert.True(t, badgeByID(t, badges, "streak_7").Achieved)
	assert.True(t, badgeByID(t, badges, "streak_14").Achieved)
	assert.False(t, badgeByID(t, badges, "streak_30").Achieved)
}

func TestAchievements_WordThresholdsUseLifetimeCount(t *testing.T) {
	// 300-word badge must not depend on the capped log.
	badges := Achievements(nil, 0, 312)
	assert.True(t, badgeByID(t, badges, "words_50").Achieved)
	assert.True(t, badgeByID(t, badges, "words_100").Achieved)
	assert.True(t, badgeByID(t, badges, "words_300").Achieved)
	assert.False(t, badgeByID(t, badges, "words_500").Achieved)
}

func TestAchievements_LevelB1(t *testing.T) {
	below := []history.Record{
		{CompletedAt: testNow, Details: &history.QuizDetails{Level: "A2"}},
	}
	assert.False(t, badgeByID(t, Achievements(below, 0, 0), "level_b1").Achieved)

	atB2 := []history.Record{
		{CompletedAt: testNow, Details: &history.StageDetails{Level: "B2"}},
	}
	assert.True(t, badgeByID(t, Achievements(atB2, 0, 0), "level_b1").Achieved)
}
