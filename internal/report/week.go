package report

import (
	"time"

	"github.com/enpeak/linglog/internal/history"
)

// WeeklyActivity reports, for each weekday of the current Monday-start
// week, whether at least one record was completed on that day.
func WeeklyActivity(records []history.Record, now time.Time) [7]bool {
	monday := MondayStart(now)

	var days [7]bool
	for _, r := range records {
		if !usable(r) || r.CompletedAt.Before(monday) {
			continue
		}
		days[weekdayIndex(r.CompletedAt)] = true
	}
	return days
}

// Weekly summarizes the current Monday-start week.
func Weekly(records []history.Record, now time.Time) WeeklySummary {
	monday := MondayStart(now)

	var sum WeeklySummary
	activeDays := make(map[string]struct{})
	for _, r := range records {
		if !usable(r) || r.CompletedAt.Before(monday) {
			continue
		}
		sum.TotalSessions++
		activeDays[history.DateOf(r.CompletedAt)] = struct{}{}
		switch r.Type {
		case history.TypeVocabulary:
			sum.VocabularyWords++
		case history.TypeConversation:
			sum.Conversations++
		case history.TypeChat:
			sum.ChatSessions++
		}
	}
	sum.TotalDays = len(activeDays)
	return sum
}

// Day breaks down a single weekday (Monday=0..Sunday=6) of the current
// week by activity type. Out-of-range indexes yield a zero summary.
func Day(records []history.Record, now time.Time, dayIndex int) DaySummary {
	if dayIndex < 0 || dayIndex > 6 {
		return DaySummary{}
	}

	target := history.DateOf(MondayStart(now).AddDate(0, 0, dayIndex))
	sum := DaySummary{Date: target}
	for _, r := range records {
		if !usable(r) || history.DateOf(r.CompletedAt) != target {
			continue
		}
		sum.TotalSessions++
		switch r.Type {
		case history.TypeConversation:
			sum.Conversations++
		case history.TypeVocabulary:
			sum.VocabularyWords++
		case history.TypeChat:
			sum.ChatSessions++
		}
	}
	return sum
}

// WeekdayChart builds the stacked per-type counts for each weekday of
// the current week.
func WeekdayChart(records []history.Record, now time.Time) [7]WeekdayCounts {
	monday := MondayStart(now)

	var chart [7]WeekdayCounts
	for i := range chart {
		chart[i].Day = WeekdayLabels[i]
	}
	for _, r := range records {
		if !usable(r) || r.CompletedAt.Before(monday) {
			continue
		}
		idx := weekdayIndex(r.CompletedAt)
		switch r.Type {
		case history.TypeVocabulary:
			chart[idx].Vocabulary++
		case history.TypeConversation:
			chart[idx].Conversation++
		case history.TypeChat:
			chart[idx].Chat++
		}
		chart[idx].Total++
	}
	return chart
}

// CompareWeeks contrasts the current Monday-start week with the one
// before it. Changes are this-week minus last-week.
func CompareWeeks(records []history.Record, now time.Time) WeekComparison {
	monday := MondayStart(now)
	prevMonday := monday.AddDate(0, 0, -7)

	thisWeek := weekMetrics(records, monday, monday.AddDate(0, 0, 7))
	lastWeek := weekMetrics(records, prevMonday, monday)

	return WeekComparison{
		ThisWeek: thisWeek,
		LastWeek: lastWeek,
		Changes: WeekMetrics{
			Days:          thisWeek.Days - lastWeek.Days,
			Words:         thisWeek.Words - lastWeek.Words,
			Conversations: thisWeek.Conversations - lastWeek.Conversations,
			Sessions:      thisWeek.Sessions - lastWeek.Sessions,
		},
	}
}

// weekMetrics aggregates records completed in [from, to).
func weekMetrics(records []history.Record, from, to time.Time) WeekMetrics {
	var m WeekMetrics
	activeDays := make(map[string]struct{})
	for _, r := range records {
		if !usable(r) || r.CompletedAt.Before(from) || !r.CompletedAt.Before(to) {
			continue
		}
		m.Sessions++
		activeDays[history.DateOf(r.CompletedAt)] = struct{}{}
		switch r.Type {
		case history.TypeVocabulary:
			m.Words++
		case history.TypeConversation:
			m.Conversations++
		}
	}
	m.Days = len(activeDays)
	return m
}
