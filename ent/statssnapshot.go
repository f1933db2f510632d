// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/enpeak/linglog/ent/statssnapshot"
)

// StatsSnapshot is the model entity for the StatsSnapshot schema.
type StatsSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// YYYY-MM-DD of the most recent append, empty before first write
	LastActiveDate string `json:"last_active_date,omitempty"`
	// Consecutive calendar days with at least one record
	Streak int `json:"streak,omitempty"`
	// Longest streak ever reached
	BestStreak int `json:"best_streak,omitempty"`
	// YYYY-MM-DD the today_* counters belong to
	TodayDate string `json:"today_date,omitempty"`
	// TodaySessions holds the value of the "today_sessions" field.
	TodaySessions int `json:"today_sessions,omitempty"`
	// TodayMinutes holds the value of the "today_minutes" field.
	TodayMinutes int `json:"today_minutes,omitempty"`
	// TodayWords holds the value of the "today_words" field.
	TodayWords int `json:"today_words,omitempty"`
	// TodayScenarios holds the value of the "today_scenarios" field.
	TodayScenarios int `json:"today_scenarios,omitempty"`
	// Lifetime session count, survives log eviction
	TotalSessions int `json:"total_sessions,omitempty"`
	// Lifetime study minutes
	TotalMinutes int `json:"total_minutes,omitempty"`
	// Lifetime vocabulary count, drives word badges
	TotalWords   int `json:"total_words,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StatsSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case statssnapshot.FieldID, statssnapshot.FieldStreak, statssnapshot.FieldBestStreak, statssnapshot.FieldTodaySessions, statssnapshot.FieldTodayMinutes, statssnapshot.FieldTodayWords, statssnapshot.FieldTodayScenarios, statssnapshot.FieldTotalSessions, statssnapshot.FieldTotalMinutes, statssnapshot.FieldTotalWords:
			values[i] = new(sql.NullInt64)
		case statssnapshot.FieldLastActiveDate, statssnapshot.FieldTodayDate:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StatsSnapshot fields.
func (_m *StatsSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case statssnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case statssnapshot.FieldLastActiveDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_date", values[i])
			} else if value.Valid {
				_m.LastActiveDate = value.String
			}
		case statssnapshot.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case statssnapshot.FieldBestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_streak", values[i])
			} else if value.Valid {
				_m.BestStreak = int(value.Int64)
			}
		case statssnapshot.FieldTodayDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field today_date", values[i])
			} else if value.Valid {
				_m.TodayDate = value.String
			}
		case statssnapshot.FieldTodaySessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field today_sessions", values[i])
			} else if value.Valid {
				_m.TodaySessions = int(value.Int64)
			}
		case statssnapshot.FieldTodayMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field today_minutes", values[i])
			} else if value.Valid {
				_m.TodayMinutes = int(value.Int64)
			}
		case statssnapshot.FieldTodayWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field today_words", values[i])
			} else if value.Valid {
				_m.TodayWords = int(value.Int64)
			}
		case statssnapshot.FieldTodayScenarios:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field today_scenarios", values[i])
			} else if value.Valid {
				_m.TodayScenarios = int(value.Int64)
			}
		case statssnapshot.FieldTotalSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_sessions", values[i])
			} else if value.Valid {
				_m.TotalSessions = int(value.Int64)
			}
		case statssnapshot.FieldTotalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_minutes", values[i])
			} else if value.Valid {
				_m.TotalMinutes = int(value.Int64)
			}
		case statssnapshot.FieldTotalWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_words", values[i])
			} else if value.Valid {
				_m.TotalWords = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StatsSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *StatsSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StatsSnapshot.
// Note that you need to call StatsSnapshot.Unwrap() before calling this method if this StatsSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StatsSnapshot) Update() *StatsSnapshotUpdateOne {
	return NewStatsSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StatsSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StatsSnapshot) Unwrap() *StatsSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StatsSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StatsSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("StatsSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("last_active_date=")
	builder.WriteString(_m.LastActiveDate)
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	builder.WriteString("best_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.BestStreak))
	builder.WriteString(", ")
	builder.WriteString("today_date=")
	builder.WriteString(_m.TodayDate)
	builder.WriteString(", ")
	builder.WriteString("today_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TodaySessions))
	builder.WriteString(", ")
	builder.WriteString("today_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TodayMinutes))
	builder.WriteString(", ")
	builder.WriteString("today_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.TodayWords))
	builder.WriteString(", ")
	builder.WriteString("today_scenarios=")
	builder.WriteString(fmt.Sprintf("%v", _m.TodayScenarios))
	builder.WriteString(", ")
	builder.WriteString("total_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSessions))
	builder.WriteString(", ")
	builder.WriteString("total_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMinutes))
	builder.WriteString(", ")
	builder.WriteString("total_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalWords))
	builder.WriteByte(')')
	return builder.String()
}

// StatsSnapshots is a parsable slice of StatsSnapshot.
type StatsSnapshots []*StatsSnapshot
