// Package history is the learning-history engine: the capped
// append-only record log, the today/streak stats aggregate maintained
// transactionally with each append, and the service that ties them to
// durable storage.
package history

import "time"

// MaxRecords is the cap on the activity log. Appending beyond the cap
// evicts the oldest records.
const MaxRecords = 100

// RecordType classifies a learning activity.
type RecordType string

const (
	TypeConversation RecordType = "conversation"
	TypeVocabulary   RecordType = "vocabulary"
	TypeCommunity    RecordType = "community"
	TypeChat         RecordType = "chat"
)

// Valid reports whether t is one of the known record types.
func (t RecordType) Valid() bool {
	switch t {
	case TypeConversation, TypeVocabulary, TypeCommunity, TypeChat:
		return true
	}
	return false
}

// Details is the type-specific sub-record of a learning record.
type Details interface {
	isDetails()
}

// QuizDetails describes a vocabulary quiz result.
type QuizDetails struct {
	Level        string `json:"level,omitempty"`
	CorrectCount int    `json:"correctCount,omitempty"`
	TotalCount   int    `json:"totalCount,omitempty"`
}

func (QuizDetails) isDetails() {}

// StageDetails describes progress through a staged scenario.
type StageDetails struct {
	Stage       int    `json:"stage,omitempty"`
	TotalStages int    `json:"totalStages,omitempty"`
	Level       string `json:"level,omitempty"`
}

func (StageDetails) isDetails() {}

// Record is one completed learning action.
type Record struct {
	ID          string     `json:"id"`
	Type        RecordType `json:"type"`
	Title       string     `json:"title"`
	Category    string     `json:"category,omitempty"`
	ScenarioID  string     `json:"scenarioId,omitempty"`
	Word        string     `json:"word,omitempty"`
	Duration    int        `json:"duration,omitempty"` // seconds
	CompletedAt time.Time  `json:"completedAt"`
	Details     Details    `json:"details,omitempty"`
}

// Level returns the CEFR level attached to the record's details, or ""
// when none is set.
func (r Record) Level() string {
	switch d := r.Details.(type) {
	case *QuizDetails:
		return d.Level
	case *StageDetails:
		return d.Level
	}
	return ""
}

// NewRecord is the caller-supplied part of a record. ID and CompletedAt
// are assigned at append time.
type NewRecord struct {
	Type       RecordType
	Title      string
	Category   string
	ScenarioID string
	Word       string
	Duration   int // seconds
	Details    Details
}

// TodayStats is the read view of today's counters plus the streak.
type TodayStats struct {
	TotalSessions         int
	TotalMinutes          int
	VocabularyWords       int
	ConversationScenarios int
	Streak                int
	BestStreak            int
}

// LifetimeStats are counters that survive log eviction.
type LifetimeStats struct {
	TotalSessions int
	TotalMinutes  int
	TotalWords    int
}
