// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/enpeak/linglog/ent/learningrecord"
	"github.com/enpeak/linglog/ent/schema"
)

// LearningRecord is the model entity for the LearningRecord schema.
type LearningRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opaque identifier assigned at append time
	RecordID string `json:"record_id,omitempty"`
	// conversation, vocabulary, community or chat
	Type string `json:"type,omitempty"`
	// Human-readable label for the activity
	Title string `json:"title,omitempty"`
	// Scenario category (conversation records)
	Category string `json:"category,omitempty"`
	// Roleplay scenario identifier
	ScenarioID string `json:"scenario_id,omitempty"`
	// The studied word (vocabulary records)
	Word string `json:"word,omitempty"`
	// Activity duration in seconds
	DurationSecs int `json:"duration_secs,omitempty"`
	// UTC wall-clock time the activity finished
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Type-specific sub-record
	Details      *schema.RecordDetails `json:"details,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningrecord.FieldDetails:
			values[i] = new([]byte)
		case learningrecord.FieldID, learningrecord.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case learningrecord.FieldRecordID, learningrecord.FieldType, learningrecord.FieldTitle, learningrecord.FieldCategory, learningrecord.FieldScenarioID, learningrecord.FieldWord:
			values[i] = new(sql.NullString)
		case learningrecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningRecord fields.
func (_m *LearningRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningrecord.FieldRecordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field record_id", values[i])
			} else if value.Valid {
				_m.RecordID = value.String
			}
		case learningrecord.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case learningrecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case learningrecord.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case learningrecord.FieldScenarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.String
			}
		case learningrecord.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case learningrecord.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		case learningrecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case learningrecord.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningRecord.
// This includes values selected through modifiers, order, etc.
func (_m *LearningRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningRecord.
// Note that you need to call LearningRecord.Unwrap() before calling this method if this LearningRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningRecord) Update() *LearningRecordUpdateOne {
	return NewLearningRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningRecord) Unwrap() *LearningRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningRecord) String() string {
	var builder strings.Builder
	builder.WriteString("LearningRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("record_id=")
	builder.WriteString(_m.RecordID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("scenario_id=")
	builder.WriteString(_m.ScenarioID)
	builder.WriteString(", ")
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteByte(')')
	return builder.String()
}

// LearningRecords is a parsable slice of LearningRecord.
type LearningRecords []*LearningRecord
