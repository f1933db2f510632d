package store

import (
	"context"
	"time"
)

// RecordData is the flat persisted form of a learning record.
// Domain types in internal/history map to and from this shape at the
// repo boundary.
type RecordData struct {
	RecordID     string
	Type         string
	Title        string
	Category     string
	ScenarioID   string
	Word         string
	DurationSecs int
	CompletedAt  time.Time
	Details      *DetailsData
}

// DetailsData is the flat persisted form of type-specific record
// details. Kind is "quiz" or "stage".
type DetailsData struct {
	Kind         string
	Level        string
	CorrectCount int
	TotalCount   int
	Stage        int
	TotalStages  int
}

// StatsData is the persisted stats aggregate: today's counters plus the
// consecutive-day streak. Dates are local calendar dates (YYYY-MM-DD);
// empty string means "never".
type StatsData struct {
	LastActiveDate string
	Streak         int
	BestStreak     int
	TodayDate      string
	TodaySessions  int
	TodayMinutes   int
	TodayWords     int
	TodayScenarios int

	// Lifetime counters. The record log is capped, so badge thresholds
	// above the cap are tracked here instead of recounting the log.
	TotalSessions int
	TotalMinutes  int
	TotalWords    int
}

// HistoryRepo provides access to the capped activity log.
type HistoryRepo interface {
	// Insert appends a record.
	Insert(ctx context.Context, data RecordData) error

	// All returns all records, most recent first.
	All(ctx context.Context) ([]RecordData, error)

	// Prune deletes all but the N most recent records.
	Prune(ctx context.Context, keep int) error
}

// StatsRepo manages the singleton stats aggregate.
type StatsRepo interface {
	// Load returns the stats aggregate, or nil if none exists yet.
	Load(ctx context.Context) (*StatsData, error)

	// Save upserts the stats aggregate.
	Save(ctx context.Context, data StatsData) error
}
