package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enpeak/linglog/internal/history"
)

func TestHeatmap(t *testing.T) {
	records := []history.Record{
		rec(history.TypeChat, 0, 9),
		rec(history.TypeChat, 0, 20),
		rec(history.TypeChat, 3, 9),
		rec(history.TypeChat, 40, 9), // outside the window
	}

	days := Heatmap(records, testNow, 7)
	require.Len(t, days, 7)

	// Chronological: oldest first, today last.
	assert.Equal(t, "2026-08-22", days[0].Date)
	assert.Equal(t, "2026-08-28", days[6].Date)
	assert.Equal(t, 2, days[6].Count)
	assert.Equal(t, 1, days[3].Count)
	assert.Equal(t, 0, days[5].Count)
}

func TestHeatmap_Degenerate(t *testing.T) {
	assert.Nil(t, Heatmap(nil, testNow, 0))
	assert.Len(t, Heatmap(nil, testNow, 30), 30)
}

func TestHourlyPattern(t *testing.T) {
	records := []history.Record{
		rec(history.TypeChat, 0, 9),
		rec(history.TypeChat, 1, 9),
		rec(history.TypeChat, 2, 21),
		{Type: history.TypeChat}, // zero timestamp skipped
	}

	pattern := HourlyPattern(records)
	assert.Equal(t, 2, pattern[9])
	assert.Equal(t, 1, pattern[21])
	assert.Equal(t, 0, pattern[0])
}

func TestPeakHour(t *testing.T) {
	_, _, ok := PeakHour(nil)
	assert.False(t, ok)

	records := []history.Record{
		rec(history.TypeChat, 0, 9),
		rec(history.TypeChat, 1, 20),
		rec(history.TypeChat, 2, 20),
	}
	hour, count, ok := PeakHour(records)
	require.True(t, ok)
	assert.Equal(t, 20, hour)
	assert.Equal(t, 2, count)
}

func TestLevelDistribution(t *testing.T) {
	records := []history.Record{
		{CompletedAt: testNow, Details: &history.QuizDetails{Level: "A2"}},
		{CompletedAt: testNow, Details: &history.QuizDetails{Level: "A2"}},
		{CompletedAt: testNow, Details: &history.StageDetails{Level: "B1"}},
		{CompletedAt: testNow}, // no details, excluded
	}

	dist := LevelDistribution(records)
	assert.Equal(t, map[string]int{"A2": 2, "B1": 1}, dist)
}

func TestDistribution(t *testing.T) {
	records := []history.Record{
		rec(history.TypeVocabulary, 0, 9),
		rec(history.TypeVocabulary, 1, 9),
		rec(history.TypeConversation, 2, 9),
		rec(history.TypeCommunity, 3, 9),
		{Type: "unknown", CompletedAt: testNow}, // excluded
	}

	dist := Distribution(records)
	assert.Equal(t, 2, dist.Vocabulary)
	assert.Equal(t, 1, dist.Conversation)
	assert.Equal(t, 0, dist.Chat)
	assert.Equal(t, 1, dist.Community)
	assert.Equal(t, 4, dist.Total)
}
