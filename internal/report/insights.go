package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/enpeak/linglog/internal/history"
)

// InsightInput bundles the aggregates the insight templates draw from.
type InsightInput struct {
	Streak     int
	BestStreak int
	TotalWords int
	Weekly     WeeklySummary
	Comparison WeekComparison
	PeakHour   int
	PeakCount  int
	TopType    string
	TopCount   int
}

// BuildInsightInput derives an InsightInput from the record log and
// live stats.
func BuildInsightInput(records []history.Record, now time.Time, stats history.TodayStats, life history.LifetimeStats) InsightInput {
	in := InsightInput{
		Streak:     stats.Streak,
		BestStreak: stats.BestStreak,
		TotalWords: life.TotalWords,
		Weekly:     Weekly(records, now),
		Comparison: CompareWeeks(records, now),
	}

	if hour, count, ok := PeakHour(records); ok {
		in.PeakHour = hour
		in.PeakCount = count
	}

	dist := Distribution(records)
	top, topCount := "", 0
	for _, entry := range []struct {
		name  string
		count int
	}{
		{"vocabulary", dist.Vocabulary},
		{"conversation", dist.Conversation},
		{"chat", dist.Chat},
		{"community", dist.Community},
	} {
		if entry.count > topCount {
			top, topCount = entry.name, entry.count
		}
	}
	in.TopType = top
	in.TopCount = topCount

	return in
}

// wordMilestones mirrors the word-badge thresholds.
var wordMilestones = []int{50, 100, 300, 500}

// Insights renders human-readable observations from the aggregates.
// The result is empty only when there is nothing at all to say.
func Insights(in InsightInput) []string {
	var msgs []string

	switch {
	case in.Streak >= 30:
		msgs = append(msgs, fmt.Sprintf("A %d-day streak. Studying English is simply part of your day now.", in.Streak))
	case in.Streak >= 3:
		msgs = append(msgs, fmt.Sprintf("You're on a %d-day streak — keep it going!", in.Streak))
	case in.Streak == 0 && in.BestStreak > 0:
		msgs = append(msgs, fmt.Sprintf("Your best run was %d days. Log one activity today to start a new streak.", in.BestStreak))
	}

	if diff := in.Comparison.Changes.Sessions; in.Comparison.LastWeek.Sessions > 0 {
		if diff > 0 {
			msgs = append(msgs, fmt.Sprintf("Sessions are up %d on last week. Nice momentum.", diff))
		} else if diff < 0 {
			msgs = append(msgs, fmt.Sprintf("Sessions are down %d from last week — a short session still counts.", -diff))
		}
	}

	if in.PeakCount > 0 {
		msgs = append(msgs, fmt.Sprintf("You study most around %s. Guard that slot.", formatHour(in.PeakHour)))
	}

	for _, m := range wordMilestones {
		if in.TotalWords > 0 && in.TotalWords < m {
			msgs = append(msgs, fmt.Sprintf("Only %d words to your next badge.", m-in.TotalWords))
			break
		}
	}

	if in.TopCount > 1 {
		msgs = append(msgs, fmt.Sprintf("%s is your go-to activity with %d sessions.", titleCase(in.TopType), in.TopCount))
	}

	return msgs
}

func formatHour(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
