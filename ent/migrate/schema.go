// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LearningRecordsColumns holds the columns for the "learning_records" table.
	LearningRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "scenario_id", Type: field.TypeString, Nullable: true},
		{Name: "word", Type: field.TypeString, Nullable: true},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
	}
	// LearningRecordsTable holds the schema information for the "learning_records" table.
	LearningRecordsTable = &schema.Table{
		Name:       "learning_records",
		Columns:    LearningRecordsColumns,
		PrimaryKey: []*schema.Column{LearningRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningrecord_completed_at",
				Unique:  false,
				Columns: []*schema.Column{LearningRecordsColumns[8]},
			},
			{
				Name:    "learningrecord_type",
				Unique:  false,
				Columns: []*schema.Column{LearningRecordsColumns[2]},
			},
		},
	}
	// StatsSnapshotsColumns holds the columns for the "stats_snapshots" table.
	StatsSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "last_active_date", Type: field.TypeString, Default: ""},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "today_date", Type: field.TypeString, Default: ""},
		{Name: "today_sessions", Type: field.TypeInt, Default: 0},
		{Name: "today_minutes", Type: field.TypeInt, Default: 0},
		{Name: "today_words", Type: field.TypeInt, Default: 0},
		{Name: "today_scenarios", Type: field.TypeInt, Default: 0},
		{Name: "total_sessions", Type: field.TypeInt, Default: 0},
		{Name: "total_minutes", Type: field.TypeInt, Default: 0},
		{Name: "total_words", Type: field.TypeInt, Default: 0},
	}
	// StatsSnapshotsTable holds the schema information for the "stats_snapshots" table.
	StatsSnapshotsTable = &schema.Table{
		Name:       "stats_snapshots",
		Columns:    StatsSnapshotsColumns,
		PrimaryKey: []*schema.Column{StatsSnapshotsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LearningRecordsTable,
		StatsSnapshotsTable,
	}
)

func init() {
}
