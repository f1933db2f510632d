package report

import (
	"time"

	"github.com/enpeak/linglog/internal/history"
)

// Heatmap buckets the last `days` calendar days (oldest first) by
// record count, for the monthly activity grid.
func Heatmap(records []history.Record, now time.Time, days int) []HeatmapDay {
	if days <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, r := range records {
		if !usable(r) {
			continue
		}
		counts[history.DateOf(r.CompletedAt)]++
	}

	out := make([]HeatmapDay, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := history.DateOf(now.AddDate(0, 0, -i))
		out = append(out, HeatmapDay{Date: date, Count: counts[date]})
	}
	return out
}

// HourlyPattern buckets records by local completion hour (0..23).
func HourlyPattern(records []history.Record) [24]int {
	var hours [24]int
	for _, r := range records {
		if !usable(r) {
			continue
		}
		hours[r.CompletedAt.Hour()]++
	}
	return hours
}

// PeakHour returns the busiest completion hour and its count.
// ok is false when the log holds no bucketed records.
func PeakHour(records []history.Record) (hour, count int, ok bool) {
	pattern := HourlyPattern(records)
	for h, c := range pattern {
		if c > count {
			hour, count = h, c
		}
	}
	return hour, count, count > 0
}

// CEFRLevels is the fixed level axis of the level distribution.
var CEFRLevels = [6]string{"A1", "A2", "B1", "B2", "C1", "C2"}

// LevelDistribution counts records per CEFR level taken from record
// details. Records without a level are excluded.
func LevelDistribution(records []history.Record) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		if lvl := r.Level(); lvl != "" {
			out[lvl]++
		}
	}
	return out
}

// Distribution counts records per activity type.
func Distribution(records []history.Record) TypeDistribution {
	var d TypeDistribution
	for _, r := range records {
		switch r.Type {
		case history.TypeVocabulary:
			d.Vocabulary++
		case history.TypeConversation:
			d.Conversation++
		case history.TypeChat:
			d.Chat++
		case history.TypeCommunity:
			d.Community++
		default:
			continue
		}
		d.Total++
	}
	return d
}
