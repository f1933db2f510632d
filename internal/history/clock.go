package history

import "time"

// Clock supplies the current time. Injected so tests can simulate day
// transitions deterministically.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// DateOf formats t as a local calendar date (YYYY-MM-DD).
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
