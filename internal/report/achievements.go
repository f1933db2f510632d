package report

import "github.com/enpeak/linglog/internal/history"

// Achievement is one badge of the static rule table, with its current
// achieved state.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Condition   string
	Achieved    bool
}

// levelRank orders CEFR levels for threshold checks.
var levelRank = map[string]int{
	"A1": 1, "A2": 2, "B1": 3, "B2": 4, "C1": 5, "C2": 6,
}

// Achievements evaluates the badge rule table against the current
// aggregates. streak is the live consecutive-day streak; totalWords is
// the lifetime vocabulary count (the log alone is capped and would
// undercount the higher word badges).
func Achievements(records []history.Record, streak, totalWords int) []Achievement {
	reachedB1 := false
	for _, r := range records {
		if levelRank[r.Level()] >= levelRank["B1"] {
			reachedB1 = true
			break
		}
	}

	streakBadge := func(days int) bool { return streak >= days }
	wordBadge := func(words int) bool { return totalWords >= words }

	return []Achievement{
		{
			ID: "first_step", Name: "First Step",
			Description: "Completed your first activity",
			Condition:   "Complete one activity",
			Achieved:    len(records) > 0 || totalWords > 0,
		},
		{
			ID: "streak_3", Name: "Warming Up",
			Description: "3-day streak",
			Condition:   "Study 3 days in a row",
			Achieved:    streakBadge(3),
		},
		{
			ID: "streak_7", Name: "One Full Week",
			Description: "7-day streak",
			Condition:   "Study 7 days in a row",
			Achieved:    streakBadge(7),
		},
		{
			ID: "streak_14", Name: "Fortnight Fire",
			Description: "14-day streak",
			Condition:   "Study 14 days in a row",
			Achieved:    streakBadge(14),
		},
		{
			ID: "streak_30", Name: "Habit Formed",
			Description: "30-day streak",
			Condition:   "Study 30 days in a row",
			Achieved:    streakBadge(30),
		},
		{
			ID: "words_50", Name: "Word Collector",
			Description: "50 words studied",
			Condition:   "Study 50 words",
			Achieved:    wordBadge(50),
		},
		{
			ID: "words_100", Name: "Century Club",
			Description: "100 words studied",
			Condition:   "Study 100 words",
			Achieved:    wordBadge(100),
		},
		{
			ID: "words_300", Name: "Lexicon Builder",
			Description: "300 words studied",
			Condition:   "Study 300 words",
			Achieved:    wordBadge(300),
		},
		{
			ID: "words_500", Name: "Walking Dictionary",
			Description: "500 words studied",
			Condition:   "Study 500 words",
			Achieved:    wordBadge(500),
		},
		{
			ID: "level_b1", Name: "Intermediate",
			Description: "Reached level B1",
			Condition:   "Complete a B1 activity",
			Achieved:    reachedB1,
		},
	}
}
