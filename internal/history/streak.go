package history

// rollStreak is the single streak-transition rule, shared by the write
// path (Add) and the read path (Stats rollover). It advances the streak
// at most once per calendar-day transition: when lastActive is already
// today the streak never moves again that day.
//
// active reports whether the transition is driven by a record being
// appended right now. A gap of two or more days resets to 1 on a write
// (today's activity starts a new run) but to 0 on a pure read.
func rollStreak(prev int, lastActive, today, yesterday string, active bool) int {
	switch lastActive {
	case today:
		return prev
	case yesterday:
		if active {
			return prev + 1
		}
		return prev
	}
	if active {
		return 1
	}
	return 0
}
