// Package report derives the statistics views from the learning-history
// log. Every function here is pure: it reads a record slice and a
// supplied time, never touches storage, and returns zeroed results for
// empty input. Records whose completion time is unset are skipped.
package report

import (
	"time"

	"github.com/enpeak/linglog/internal/history"
)

// WeekdayLabels are the Monday-start weekday names used by the weekly
// views.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklySummary aggregates the current Monday-start week.
type WeeklySummary struct {
	TotalSessions   int
	TotalDays       int
	VocabularyWords int
	Conversations   int
	ChatSessions    int
}

// DaySummary is the per-type breakdown of a single weekday in the
// current week.
type DaySummary struct {
	Date            string
	Conversations   int
	VocabularyWords int
	ChatSessions    int
	TotalSessions   int
}

// WeekdayCounts is one stacked bar of the weekly chart.
type WeekdayCounts struct {
	Day          string
	Vocabulary   int
	Conversation int
	Chat         int
	Total        int
}

// HeatmapDay is one cell of the 30-day activity heatmap.
type HeatmapDay struct {
	Date  string
	Count int
}

// TypeDistribution counts records per activity type.
type TypeDistribution struct {
	Vocabulary   int
	Conversation int
	Chat         int
	Community    int
	Total        int
}

// WeekMetrics are the comparable measures of one week.
type WeekMetrics struct {
	Days          int
	Words         int
	Conversations int
	Sessions      int
}

// WeekComparison contrasts the current week with the previous one.
type WeekComparison struct {
	ThisWeek WeekMetrics
	LastWeek WeekMetrics
	Changes  WeekMetrics
}

// MondayStart returns the most recent Monday at 00:00 local time,
// the boundary of all weekly aggregations.
func MondayStart(now time.Time) time.Time {
	daysBack := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysBack)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// weekdayIndex maps a time to the Monday=0..Sunday=6 index.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// usable reports whether a record can participate in date bucketing.
func usable(r history.Record) bool {
	return !r.CompletedAt.IsZero()
}
