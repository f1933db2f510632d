package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningRecord is one completed learning action in the capped
// activity log. Records are append-only; completed_at never changes
// after insert.
type LearningRecord struct {
	ent.Schema
}

// RecordDetails is the serialized form of a record's type-specific
// details. Kind tags which fields are meaningful ("quiz" or "stage").
type RecordDetails struct {
	Kind         string `json:"kind"`
	Level        string `json:"level,omitempty"`
	CorrectCount int    `json:"correct_count,omitempty"`
	TotalCount   int    `json:"total_count,omitempty"`
	Stage        int    `json:"stage,omitempty"`
	TotalStages  int    `json:"total_stages,omitempty"`
}

func (LearningRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("record_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Opaque identifier assigned at append time"),
		field.String("type").
			NotEmpty().
			Comment("conversation, vocabulary, community or chat"),
		field.String("title").
			NotEmpty().
			Comment("Human-readable label for the activity"),
		field.String("category").
			Optional().
			Comment("Scenario category (conversation records)"),
		field.String("scenario_id").
			Optional().
			Comment("Roleplay scenario identifier"),
		field.String("word").
			Optional().
			Comment("The studied word (vocabulary records)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Activity duration in seconds"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the activity finished"),
		field.JSON("details", &RecordDetails{}).
			Optional().
			Comment("Type-specific sub-record"),
	}
}

func (LearningRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed_at"),
		index.Fields("type"),
	}
}
