package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enpeak/linglog/internal/history"
)

func TestBuildInsightInput(t *testing.T) {
	records := []history.Record{
		rec(history.TypeVocabulary, 0, 20),
		rec(history.TypeVocabulary, 1, 20),
		rec(history.TypeConversation, 2, 9),
	}
	stats := history.TodayStats{Streak: 3, BestStreak: 7}
	life := history.LifetimeStats{TotalWords: 42}

	in := BuildInsightInput(records, testNow, stats, life)
	assert.Equal(t, 3, in.Streak)
	assert.Equal(t, 7, in.BestStreak)
	assert.Equal(t, 42, in.TotalWords)
	assert.Equal(t, 20, in.PeakHour)
	assert.Equal(t, 2, in.PeakCount)
	assert.Equal(t, "vocabulary", in.TopType)
	assert.Equal(t, 2, in.TopCount)
}

func TestInsights_Empty(t *testing.T) {
	assert.Empty(t, Insights(InsightInput{}))
}

func TestInsights_StreakMessages(t *testing.T) {
	msgs := Insights(InsightInput{Streak: 5})
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[0], "5-day streak")

	msgs = Insights(InsightInput{Streak: 31})
	assert.Contains(t, msgs[0], "31-day streak")

	// Lapsed streak points at the best run.
	msgs = Insights(InsightInput{Streak: 0, BestStreak: 9})
	assert.Contains(t, msgs[0], "9 days")
}

func TestInsights_WeekDelta(t *testing.T) {
	up := InsightInput{Comparison: WeekComparison{
		LastWeek: WeekMetrics{Sessions: 4},
		Changes:  WeekMetrics{Sessions: 3},
	}}
	assert.True(t, containsSubstring(Insights(up), "up 3"))

	down := InsightInput{Comparison: WeekComparison{
		LastWeek: WeekMetrics{Sessions: 8},
		Changes:  WeekMetrics{Sessions: -2},
	}}
	assert.True(t, containsSubstring(Insights(down), "down 2"))

	// No baseline, no message.
	fresh := InsightInput{Comparison: WeekComparison{Changes: WeekMetrics{Sessions: 5}}}
	assert.False(t, containsSubstring(Insights(fresh), "last week"))
}

func TestInsights_WordMilestone(t *testing.T) {
	msgs := Insights(InsightInput{TotalWords: 80})
	assert.True(t, containsSubstring(msgs, "20 words"), "80 of 100 should leave 20 to go")

	// Past every milestone: no milestone message.
	msgs = Insights(InsightInput{TotalWords: 600})
	assert.False(t, containsSubstring(msgs, "next badge"))
}

func TestInsights_PeakHourFormat(t *testing.T) {
	msgs := Insights(InsightInput{PeakHour: 20, PeakCount: 3})
	assert.True(t, containsSubstring(msgs, "8pm"))

	msgs = Insights(InsightInput{PeakHour: 0, PeakCount: 2})
	assert.True(t, containsSubstring(msgs, "12am"))

	msgs = Insights(InsightInput{PeakHour: 12, PeakCount: 2})
	assert.True(t, containsSubstring(msgs, "12pm"))
}

func TestInsights_TopType(t *testing.T) {
	msgs := Insights(InsightInput{TopType: "chat", TopCount: 6})
	assert.True(t, containsSubstring(msgs, "Chat"))

	// A single session is not a pattern.
	msgs = Insights(InsightInput{TopType: "chat", TopCount: 1})
	assert.False(t, containsSubstring(msgs, "go-to"))
}

func containsSubstring(msgs []string, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}
