// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/enpeak/linglog/ent/learningrecord"
	"github.com/enpeak/linglog/ent/schema"
	"github.com/enpeak/linglog/ent/statssnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	learningrecordFields := schema.LearningRecord{}.Fields()
	_ = learningrecordFields
	// learningrecordDescRecordID is the schema descriptor for record_id field.
	learningrecordDescRecordID := learningrecordFields[0].Descriptor()
	// learningrecord.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	learningrecord.RecordIDValidator = learningrecordDescRecordID.Validators[0].(func(string) error)
	// learningrecordDescType is the schema descriptor for type field.
	learningrecordDescType := learningrecordFields[1].Descriptor()
	// learningrecord.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	learningrecord.TypeValidator = learningrecordDescType.Validators[0].(func(string) error)
	// learningrecordDescTitle is the schema descriptor for title field.
	learningrecordDescTitle := learningrecordFields[2].Descriptor()
	// learningrecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	learningrecord.TitleValidator = learningrecordDescTitle.Validators[0].(func(string) error)
	// learningrecordDescDurationSecs is the schema descriptor for duration_secs field.
	learningrecordDescDurationSecs := learningrecordFields[6].Descriptor()
	// learningrecord.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	learningrecord.DefaultDurationSecs = learningrecordDescDurationSecs.Default.(int)
	// learningrecordDescCompletedAt is the schema descriptor for completed_at field.
	learningrecordDescCompletedAt := learningrecordFields[7].Descriptor()
	// learningrecord.DefaultCompletedAt holds the default value on creation for the completed_at field.
	learningrecord.DefaultCompletedAt = learningrecordDescCompletedAt.Default.(func() time.Time)
	statssnapshotFields := schema.StatsSnapshot{}.Fields()
	_ = statssnapshotFields
	// statssnapshotDescLastActiveDate is the schema descriptor for last_active_date field.
	statssnapshotDescLastActiveDate := statssnapshotFields[0].Descriptor()
	// statssnapshot.DefaultLastActiveDate holds the default value on creation for the last_active_date field.
	statssnapshot.DefaultLastActiveDate = statssnapshotDescLastActiveDate.Default.(string)
	// statssnapshotDescStreak is the schema descriptor for streak field.
	statssnapshotDescStreak := statssnapshotFields[1].Descriptor()
	// statssnapshot.DefaultStreak holds the default value on creation for the streak field.
	statssnapshot.DefaultStreak = statssnapshotDescStreak.Default.(int)
	// statssnapshotDescBestStreak is the schema descriptor for best_streak field.
	statssnapshotDescBestStreak := statssnapshotFields[2].Descriptor()
	// statssnapshot.DefaultBestStreak holds the default value on creation for the best_streak field.
	statssnapshot.DefaultBestStreak = statssnapshotDescBestStreak.Default.(int)
	// statssnapshotDescTodayDate is the schema descriptor for today_date field.
	statssnapshotDescTodayDate := statssnapshotFields[3].Descriptor()
	// statssnapshot.DefaultTodayDate holds the default value on creation for the today_date field.
	statssnapshot.DefaultTodayDate = statssnapshotDescTodayDate.Default.(string)
	// statssnapshotDescTodaySessions is the schema descriptor for today_sessions field.
	statssnapshotDescTodaySessions := statssnapshotFields[4].Descriptor()
	// statssnapshot.DefaultTodaySessions holds the default value on creation for the today_sessions field.
	statssnapshot.DefaultTodaySessions = statssnapshotDescTodaySessions.Default.(int)
	// statssnapshotDescTodayMinutes is the schema descriptor for today_minutes field.
	statssnapshotDescTodayMinutes := statssnapshotFields[5].Descriptor()
	// statssnapshot.DefaultTodayMinutes holds the default value on creation for the today_minutes field.
	statssnapshot.DefaultTodayMinutes = statssnapshotDescTodayMinutes.Default.(int)
	// statssnapshotDescTodayWords is the schema descriptor for today_words field.
	statssnapshotDescTodayWords := statssnapshotFields[6].Descriptor()
	// statssnapshot.DefaultTodayWords holds the default value on creation for the today_words field.
	statssnapshot.DefaultTodayWords = statssnapshotDescTodayWords.Default.(int)
	// statssnapshotDescTodayScenarios is the schema descriptor for today_scenarios field.
	statssnapshotDescTodayScenarios := statssnapshotFields[7].Descriptor()
	// statssnapshot.DefaultTodayScenarios holds the default value on creation for the today_scenarios field.
	statssnapshot.DefaultTodayScenarios = statssnapshotDescTodayScenarios.Default.(int)
	// statssnapshotDescTotalSessions is the schema descriptor for total_sessions field.
	statssnapshotDescTotalSessions := statssnapshotFields[8].Descriptor()
	// statssnapshot.DefaultTotalSessions holds the default value on creation for the total_sessions field.
	statssnapshot.DefaultTotalSessions = statssnapshotDescTotalSessions.Default.(int)
	// statssnapshotDescTotalMinutes is the schema descriptor for total_minutes field.
	statssnapshotDescTotalMinutes := statssnapshotFields[9].Descriptor()
	// statssnapshot.DefaultTotalMinutes holds the default value on creation for the total_minutes field.
	statssnapshot.DefaultTotalMinutes = statssnapshotDescTotalMinutes.Default.(int)
	// statssnapshotDescTotalWords is the schema descriptor for total_words field.
	statssnapshotDescTotalWords := statssnapshotFields[10].Descriptor()
	// statssnapshot.DefaultTotalWords holds the default value on creation for the total_words field.
	statssnapshot.DefaultTotalWords = statssnapshotDescTotalWords.Default.(int)
}
