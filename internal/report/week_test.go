package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enpeak/linglog/internal/history"
)

// now is Friday 2026-08-28; the week runs Mon 24th through Sun 30th.
var testNow = time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local)

func rec(typ history.RecordType, daysAgo int, hour int) history.Record {
	at := testNow.AddDate(0, 0, -daysAgo)
	return history.Record{
		ID:          "r",
		Type:        typ,
		Title:       "t",
		CompletedAt: time.Date(at.Year(), at.Month(), at.Day(), hour, 0, 0, 0, time.Local),
	}
}

func TestMondayStart(t *testing.T) {
	monday := MondayStart(testNow)
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 24, monday.Day())
	assert.Equal(t, 0, monday.Hour())

	// A Monday maps to itself; a Sunday maps back six days.
	assert.Equal(t, monday, MondayStart(monday.Add(30*time.Minute)))
	sunday := time.Date(2026, 8, 30, 23, 0, 0, 0, time.Local)
	assert.Equal(t, monday, MondayStart(sunday))
}

func TestWeeklyActivity_Empty(t *testing.T) {
	assert.Equal(t, [7]bool{}, WeeklyActivity(nil, testNow))
}

func TestWeeklyActivity_MarksDays(t *testing.T) {
	records := []history.Record{
		rec(history.TypeChat, 4, 9),  // Monday
		rec(history.TypeChat, 2, 9),  // Wednesday
		rec(history.TypeChat, 0, 9),  // Friday
		rec(history.TypeChat, 7, 9),  // previous Friday — out of week
		rec(history.TypeChat, 10, 9), // older — out of week
	}

	active := WeeklyActivity(records, testNow)
	assert.Equal(t, [7]bool{true, false, true, false, true, false, false}, active)
}

func TestWeekly_CountsDistinctDays(t *testing.T) {
	records := []history.Record{
		rec(history.TypeVocabulary, 4, 9),
		rec(history.TypeVocabulary, 4, 20), // same Monday
		rec(history.TypeConversation, 2, 9),
		rec(history.TypeChat, 0, 9),
		rec(history.TypeChat, 9, 9), // out of week
	}

	sum := Weekly(records, testNow)
	assert.Equal(t, 4, sum.TotalSessions)
	assert.Equal(t, 3, sum.TotalDays)
	assert.Equal(t, 2, sum.VocabularyWords)
	assert.Equal(t, 1, sum.Conversations)
	assert.Equal(t, 1, sum.ChatSessions)
}

func TestWeekly_SkipsZeroTimestamps(t *testing.T) {
	records := []history.Record{{Type: history.TypeChat}}
	assert.Equal(t, WeeklySummary{}, Weekly(records, testNow))
}

func TestDay(t *testing.T) {
	records := []history.Record{
		rec(history.TypeConversation, 4, 9), // Monday
		rec(history.TypeVocabulary, 4, 10),  // Monday
		rec(history.TypeChat, 2, 9),         // Wednesday
	}

	monday := Day(records, testNow, 0)
	assert.Equal(t, "2026-08-24", monday.Date)
	assert.Equal(t, 2, monday.TotalSessions)
	assert.Equal(t, 1, monday.Conversations)
	assert.Equal(t, 1, monday.VocabularyWords)

	// Upcoming weekend has a date but no sessions.
	sunday := Day(records, testNow, 6)
	assert.Equal(t, "2026-08-30", sunday.Date)
	assert.Equal(t, 0, sunday.TotalSessions)

	assert.Equal(t, DaySummary{}, Day(records, testNow, 7))
	assert.Equal(t, DaySummary{}, Day(records, testNow, -1))
}

func TestWeekdayChart(t *testing.T) {
	records := []history.Record{
		rec(history.TypeVocabulary, 4, 9),
		rec(history.TypeConversation, 4, 10),
		rec(history.TypeChat, 0, 9),
	}

	chart := WeekdayChart(records, testNow)
	require.Equal(t, "Mon", chart[0].Day)
	assert.Equal(t, 1, chart[0].Vocabulary)
	assert.Equal(t, 1, chart[0].Conversation)
	assert.Equal(t, 2, chart[0].Total)
	assert.Equal(t, 1, chart[4].Chat)
	assert.Equal(t, 0, chart[6].Total)
}

func TestCompareWeeks(t *testing.T) {
	records := []history.Record{
		// This week: 3 sessions over 2 days.
		rec(history.TypeVocabulary, 4, 9),
		rec(history.TypeVocabulary, 2, 9),
		rec(history.TypeConversation, 2, 10),
		// Last week: 1 session.
		rec(history.TypeConversation, 7, 9),
	}

	cmp := CompareWeeks(records, testNow)
	assert.Equal(t, WeekMetrics{Days: 2, Words: 2, Conversations: 1, Sessions: 3}, cmp.ThisWeek)
	assert.Equal(t, WeekMetrics{Days: 1, Words: 0, Conversations: 1, Sessions: 1}, cmp.LastWeek)
	assert.Equal(t, WeekMetrics{Days: 1, Words: 2, Conversations: 0, Sessions: 2}, cmp.Changes)
}

func TestCompareWeeks_Empty(t *testing.T) {
	cmp := CompareWeeks(nil, testNow)
	assert.Equal(t, WeekComparison{}, cmp)
}
