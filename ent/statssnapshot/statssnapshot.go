// Code generated by ent, DO NOT EDIT.

package statssnapshot

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the statssnapshot type in the database.
	Label = "stats_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLastActiveDate holds the string denoting the last_active_date field in the database.
	FieldLastActiveDate = "last_active_date"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldBestStreak holds the string denoting the best_streak field in the database.
	FieldBestStreak = "best_streak"
	// FieldTodayDate holds the string denoting the today_date field in the database.
	FieldTodayDate = "today_date"
	// FieldTodaySessions holds the string denoting the today_sessions field in the database.
	FieldTodaySessions = "today_sessions"
	// FieldTodayMinutes holds the string denoting the today_minutes field in the database.
	FieldTodayMinutes = "today_minutes"
	// FieldTodayWords holds the string denoting the today_words field in the database.
	FieldTodayWords = "today_words"
	// FieldTodayScenarios holds the string denoting the today_scenarios field in the database.
	FieldTodayScenarios = "today_scenarios"
	// FieldTotalSessions holds the string denoting the total_sessions field in the database.
	FieldTotalSessions = "total_sessions"
	// FieldTotalMinutes holds the string denoting the total_minutes field in the database.
	FieldTotalMinutes = "total_minutes"
	// FieldTotalWords holds the string denoting the total_words field in the database.
	FieldTotalWords = "total_words"
	// Table holds the table name of the statssnapshot in the database.
	Table = "stats_snapshots"
)

// Columns holds all SQL columns for statssnapshot fields.
var Columns = []string{
	FieldID,
	FieldLastActiveDate,
	FieldStreak,
	FieldBestStreak,
	FieldTodayDate,
	FieldTodaySessions,
	FieldTodayMinutes,
	FieldTodayWords,
	FieldTodayScenarios,
	FieldTotalSessions,
	FieldTotalMinutes,
	FieldTotalWords,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastActiveDate holds the default value on creation for the "last_active_date" field.
	DefaultLastActiveDate string
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultBestStreak holds the default value on creation for the "best_streak" field.
	DefaultBestStreak int
	// DefaultTodayDate holds the default value on creation for the "today_date" field.
	DefaultTodayDate string
	// DefaultTodaySessions holds the default value on creation for the "today_sessions" field.
	DefaultTodaySessions int
	// DefaultTodayMinutes holds the default value on creation for the "today_minutes" field.
	DefaultTodayMinutes int
	// DefaultTodayWords holds the default value on creation for the "today_words" field.
	DefaultTodayWords int
	// DefaultTodayScenarios holds the default value on creation for the "today_scenarios" field.
	DefaultTodayScenarios int
	// DefaultTotalSessions holds the default value on creation for the "total_sessions" field.
	DefaultTotalSessions int
	// DefaultTotalMinutes holds the default value on creation for the "total_minutes" field.
	DefaultTotalMinutes int
	// DefaultTotalWords holds the default value on creation for the "total_words" field.
	DefaultTotalWords int
)

// OrderOption defines the ordering options for the StatsSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLastActiveDate orders the results by the last_active_date field.
func ByLastActiveDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActiveDate, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByBestStreak orders the results by the best_streak field.
func ByBestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestStreak, opts...).ToFunc()
}

// ByTodayDate orders the results by the today_date field.
func ByTodayDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTodayDate, opts...).ToFunc()
}

// ByTodaySessions orders the results by the today_sessions field.
func ByTodaySessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTodaySessions, opts...).ToFunc()
}

// ByTodayMinutes orders the results by the today_minutes field.
func ByTodayMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTodayMinutes, opts...).ToFunc()
}

// ByTodayWords orders the results by the today_words field.
func ByTodayWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTodayWords, opts...).ToFunc()
}

// ByTodayScenarios orders the results by the today_scenarios field.
func ByTodayScenarios(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTodayScenarios, opts...).ToFunc()
}

// ByTotalSessions orders the results by the total_sessions field.
func ByTotalSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSessions, opts...).ToFunc()
}

// ByTotalMinutes orders the results by the total_minutes field.
func ByTotalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMinutes, opts...).ToFunc()
}

// ByTotalWords orders the results by the total_words field.
func ByTotalWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalWords, opts...).ToFunc()
}
