package history

import "testing"

func TestRollStreak(t *testing.T) {
	const (
		today     = "2026-08-28"
		yesterday = "2026-08-27"
		older     = "2026-08-20"
	)

	tests := []struct {
		name       string
		prev       int
		lastActive string
		active     bool
		want       int
	}{
		{"first ever activity", 0, "", true, 1},
		{"already active today", 4, today, true, 4},
		{"continued from yesterday", 4, yesterday, true, 5},
		{"gap restarts at one", 9, older, true, 1},
		{"read rollover keeps yesterday streak", 4, yesterday, false, 4},
		{"read rollover after gap zeroes", 9, older, false, 0},
		{"read rollover same day unchanged", 4, today, false, 4},
		{"read rollover never active", 0, "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rollStreak(tt.prev, tt.lastActive, today, yesterday, tt.active)
			if got != tt.want {
				t.Errorf("rollStreak(%d, %q, active=%v) = %d, want %d",
					tt.prev, tt.lastActive, tt.active, got, tt.want)
			}
		})
	}
}
