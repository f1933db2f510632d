// Code generated by ent, DO NOT EDIT.

package statssnapshot

import (
	"entgo.io/ent/dialect/sql"
	"github.com/enpeak/linglog/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldID, id))
}

// LastActiveDate applies equality check predicate on the "last_active_date" field. It's identical to LastActiveDateEQ.
func LastActiveDate(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldLastActiveDate, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldStreak, v))
}

// BestStreak applies equality check predicate on the "best_streak" field. It's identical to BestStreakEQ.
func BestStreak(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldBestStreak, v))
}

// TodayDate applies equality check predicate on the "today_date" field. It's identical to TodayDateEQ.
func TodayDate(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayDate, v))
}

// TodaySessions applies equality check predicate on the "today_sessions" field. It's identical to TodaySessionsEQ.
func TodaySessions(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodaySessions, v))
}

// TodayMinutes applies equality check predicate on the "today_minutes" field. It's identical to TodayMinutesEQ.
func TodayMinutes(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayMinutes, v))
}

// TodayWords applies equality check predicate on the "today_words" field. It's identical to TodayWordsEQ.
func TodayWords(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayWords, v))
}

// TodayScenarios applies equality check predicate on the "today_scenarios" field. It's identical to TodayScenariosEQ.
func TodayScenarios(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayScenarios, v))
}

// TotalSessions applies equality check predicate on the "total_sessions" field. It's identical to TotalSessionsEQ.
func TotalSessions(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTotalSessions, v))
}

// TotalMinutes applies equality check predicate on the "total_minutes" field. It's identical to TotalMinutesEQ.
func TotalMinutes(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTotalMinutes, v))
}

// TotalWords applies equality check predicate on the "total_words" field. It's identical to TotalWordsEQ.
func TotalWords(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTotalWords, v))
}

// LastActiveDateEQ applies the EQ predicate on the "last_active_date" field.
func LastActiveDateEQ(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldLastActiveDate, v))
}

// LastActiveDateNEQ applies the NEQ predicate on the "last_active_date" field.
func LastActiveDateNEQ(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldLastActiveDate, v))
}

// LastActiveDateIn applies the In predicate on the "last_active_date" field.
func LastActiveDateIn(vs ...string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldLastActiveDate, vs...))
}

// LastActiveDateNotIn applies the NotIn predicate on the "last_active_date" field.
func LastActiveDateNotIn(vs ...string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldLastActiveDate, vs...))
}

// LastActiveDateGT applies the GT predicate on the "last_active_date" field.
func LastActiveDateGT(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldLastActiveDate, v))
}

// LastActiveDateGTE applies the GTE predicate on the "last_active_date" field.
func LastActiveDateGTE(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldLastActiveDate, v))
}

// LastActiveDateLT applies the LT predicate on the "last_active_date" field.
func LastActiveDateLT(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldLastActiveDate, v))
}

// LastActiveDateLTE applies the LTE predicate on the "last_active_date" field.
func LastActiveDateLTE(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldLastActiveDate, v))
}

// LastActiveDateContains applies the Contains predicate on the "last_active_date" field.
func LastActiveDateContains(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldContains(FieldLastActiveDate, v))
}

// LastActiveDateHasPrefix applies the HasPrefix predicate on the "last_active_date" field.
func LastActiveDateHasPrefix(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldHasPrefix(FieldLastActiveDate, v))
}

// LastActiveDateHasSuffix applies the HasSuffix predicate on the "last_active_date" field.
func LastActiveDateHasSuffix(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldHasSuffix(FieldLastActiveDate, v))
}

// LastActiveDateEqualFold applies the EqualFold predicate on the "last_active_date" field.
func LastActiveDateEqualFold(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEqualFold(FieldLastActiveDate, v))
}

// LastActiveDateContainsFold applies the ContainsFold predicate on the "last_active_date" field.
func LastActiveDateContainsFold(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldContainsFold(FieldLastActiveDate, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldStreak, v))
}

// BestStreakEQ applies the EQ predicate on the "best_streak" field.
func BestStreakEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldBestStreak, v))
}

// BestStreakNEQ applies the NEQ predicate on the "best_streak" field.
func BestStreakNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldBestStreak, v))
}

// BestStreakIn applies the In predicate on the "best_streak" field.
func BestStreakIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldBestStreak, vs...))
}

// BestStreakNotIn applies the NotIn predicate on the "best_streak" field.
func BestStreakNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldBestStreak, vs...))
}

// BestStreakGT applies the GT predicate on the "best_streak" field.
func BestStreakGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldBestStreak, v))
}

// BestStreakGTE applies the GTE predicate on the "best_streak" field.
func BestStreakGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldBestStreak, v))
}

// BestStreakLT applies the LT predicate on the "best_streak" field.
func BestStreakLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldBestStreak, v))
}

// BestStreakLTE applies the LTE predicate on the "best_streak" field.
func BestStreakLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldBestStreak, v))
}

// TodayDateEQ applies the EQ predicate on the "today_date" field.
func TodayDateEQ(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayDate, v))
}

// TodayDateNEQ applies the NEQ predicate on the "today_date" field.
func TodayDateNEQ(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTodayDate, v))
}

// TodayDateIn applies the In predicate on the "today_date" field.
func TodayDateIn(vs ...string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTodayDate, vs...))
}

// TodayDateNotIn applies the NotIn predicate on the "today_date" field.
func TodayDateNotIn(vs ...string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTodayDate, vs...))
}

// TodayDateGT applies the GT predicate on the "today_date" field.
func TodayDateGT(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTodayDate, v))
}

// TodayDateGTE applies the GTE predicate on the "today_date" field.
func TodayDateGTE(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTodayDate, v))
}

// TodayDateLT applies the LT predicate on the "today_date" field.
func TodayDateLT(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTodayDate, v))
}

// TodayDateLTE applies the LTE predicate on the "today_date" field.
func TodayDateLTE(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTodayDate, v))
}

// TodayDateContains applies the Contains predicate on the "today_date" field.
func TodayDateContains(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldContains(FieldTodayDate, v))
}

// TodayDateHasPrefix applies the HasPrefix predicate on the "today_date" field.
func TodayDateHasPrefix(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldHasPrefix(FieldTodayDate, v))
}

// TodayDateHasSuffix applies the HasSuffix predicate on the "today_date" field.
func TodayDateHasSuffix(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldHasSuffix(FieldTodayDate, v))
}

// TodayDateEqualFold applies the EqualFold predicate on the "today_date" field.
func TodayDateEqualFold(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEqualFold(FieldTodayDate, v))
}

// TodayDateContainsFold applies the ContainsFold predicate on the "today_date" field.
func TodayDateContainsFold(v string) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldContainsFold(FieldTodayDate, v))
}

// TodaySessionsEQ applies the EQ predicate on the "today_sessions" field.
func TodaySessionsEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodaySessions, v))
}

// TodaySessionsNEQ applies the NEQ predicate on the "today_sessions" field.
func TodaySessionsNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTodaySessions, v))
}

// TodaySessionsIn applies the In predicate on the "today_sessions" field.
func TodaySessionsIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTodaySessions, vs...))
}

// TodaySessionsNotIn applies the NotIn predicate on the "today_sessions" field.
func TodaySessionsNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTodaySessions, vs...))
}

// TodaySessionsGT applies the GT predicate on the "today_sessions" field.
func TodaySessionsGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTodaySessions, v))
}

// TodaySessionsGTE applies the GTE predicate on the "today_sessions" field.
func TodaySessionsGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTodaySessions, v))
}

// TodaySessionsLT applies the LT predicate on the "today_sessions" field.
func TodaySessionsLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTodaySessions, v))
}

// TodaySessionsLTE applies the LTE predicate on the "today_sessions" field.
func TodaySessionsLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTodaySessions, v))
}

// TodayMinutesEQ applies the EQ predicate on the "today_minutes" field.
func TodayMinutesEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayMinutes, v))
}

// TodayMinutesNEQ applies the NEQ predicate on the "today_minutes" field.
func TodayMinutesNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTodayMinutes, v))
}

// TodayMinutesIn applies the In predicate on the "today_minutes" field.
func TodayMinutesIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTodayMinutes, vs...))
}

// TodayMinutesNotIn applies the NotIn predicate on the "today_minutes" field.
func TodayMinutesNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTodayMinutes, vs...))
}

// TodayMinutesGT applies the GT predicate on the "today_minutes" field.
func TodayMinutesGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTodayMinutes, v))
}

// TodayMinutesGTE applies the GTE predicate on the "today_minutes" field.
func TodayMinutesGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTodayMinutes, v))
}

// TodayMinutesLT applies the LT predicate on the "today_minutes" field.
func TodayMinutesLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTodayMinutes, v))
}

// TodayMinutesLTE applies the LTE predicate on the "today_minutes" field.
func TodayMinutesLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTodayMinutes, v))
}

// TodayWordsEQ applies the EQ predicate on the "today_words" field.
func TodayWordsEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayWords, v))
}

// TodayWordsNEQ applies the NEQ predicate on the "today_words" field.
func TodayWordsNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTodayWords, v))
}

// TodayWordsIn applies the In predicate on the "today_words" field.
func TodayWordsIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTodayWords, vs...))
}

// TodayWordsNotIn applies the NotIn predicate on the "today_words" field.
func TodayWordsNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTodayWords, vs...))
}

// TodayWordsGT applies the GT predicate on the "today_words" field.
func TodayWordsGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTodayWords, v))
}

// TodayWordsGTE applies the GTE predicate on the "today_words" field.
func TodayWordsGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTodayWords, v))
}

// TodayWordsLT applies the LT predicate on the "today_words" field.
func TodayWordsLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTodayWords, v))
}

// TodayWordsLTE applies the LTE predicate on the "today_words" field.
func TodayWordsLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTodayWords, v))
}

// TodayScenariosEQ applies the EQ predicate on the "today_scenarios" field.
func TodayScenariosEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTodayScenarios, v))
}

// TodayScenariosNEQ applies the NEQ predicate on the "today_scenarios" field.
func TodayScenariosNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTodayScenarios, v))
}

// TodayScenariosIn applies the In predicate on the "today_scenarios" field.
func TodayScenariosIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTodayScenarios, vs...))
}

// TodayScenariosNotIn applies the NotIn predicate on the "today_scenarios" field.
func TodayScenariosNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTodayScenarios, vs...))
}

// TodayScenariosGT applies the GT predicate on the "today_scenarios" field.
func TodayScenariosGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTodayScenarios, v))
}

// TodayScenariosGTE applies the GTE predicate on the "today_scenarios" field.
func TodayScenariosGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTodayScenarios, v))
}

// TodayScenariosLT applies the LT predicate on the "today_scenarios" field.
func TodayScenariosLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTodayScenarios, v))
}

// TodayScenariosLTE applies the LTE predicate on the "today_scenarios" field.
func TodayScenariosLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTodayScenarios, v))
}

// TotalSessionsEQ applies the EQ predicate on the "total_sessions" field.
func TotalSessionsEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTotalSessions, v))
}

// TotalSessionsNEQ applies the NEQ predicate on the "total_sessions" field.
func TotalSessionsNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTotalSessions, v))
}

// TotalSessionsIn applies the In predicate on the "total_sessions" field.
func TotalSessionsIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTotalSessions, vs...))
}

// TotalSessionsNotIn applies the NotIn predicate on the "total_sessions" field.
func TotalSessionsNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTotalSessions, vs...))
}

// TotalSessionsGT applies the GT predicate on the "total_sessions" field.
func TotalSessionsGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTotalSessions, v))
}

// TotalSessionsGTE applies the GTE predicate on the "total_sessions" field.
func TotalSessionsGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTotalSessions, v))
}

// TotalSessionsLT applies the LT predicate on the "total_sessions" field.
func TotalSessionsLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTotalSessions, v))
}

// TotalSessionsLTE applies the LTE predicate on the "total_sessions" field.
func TotalSessionsLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTotalSessions, v))
}

// TotalMinutesEQ applies the EQ predicate on the "total_minutes" field.
func TotalMinutesEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTotalMinutes, v))
}

// TotalMinutesNEQ applies the NEQ predicate on the "total_minutes" field.
func TotalMinutesNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTotalMinutes, v))
}

// TotalMinutesIn applies the In predicate on the "total_minutes" field.
func TotalMinutesIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTotalMinutes, vs...))
}

// TotalMinutesNotIn applies the NotIn predicate on the "total_minutes" field.
func TotalMinutesNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTotalMinutes, vs...))
}

// TotalMinutesGT applies the GT predicate on the "total_minutes" field.
func TotalMinutesGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTotalMinutes, v))
}

// TotalMinutesGTE applies the GTE predicate on the "total_minutes" field.
func TotalMinutesGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTotalMinutes, v))
}

// TotalMinutesLT applies the LT predicate on the "total_minutes" field.
func TotalMinutesLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTotalMinutes, v))
}

// TotalMinutesLTE applies the LTE predicate on the "total_minutes" field.
func TotalMinutesLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTotalMinutes, v))
}

// TotalWordsEQ applies the EQ predicate on the "total_words" field.
func TotalWordsEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldEQ(FieldTotalWords, v))
}

// TotalWordsNEQ applies the NEQ predicate on the "total_words" field.
func TotalWordsNEQ(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNEQ(FieldTotalWords, v))
}

// TotalWordsIn applies the In predicate on the "total_words" field.
func TotalWordsIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldIn(FieldTotalWords, vs...))
}

// TotalWordsNotIn applies the NotIn predicate on the "total_words" field.
func TotalWordsNotIn(vs ...int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldNotIn(FieldTotalWords, vs...))
}

// TotalWordsGT applies the GT predicate on the "total_words" field.
func TotalWordsGT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGT(FieldTotalWords, v))
}

// TotalWordsGTE applies the GTE predicate on the "total_words" field.
func TotalWordsGTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldGTE(FieldTotalWords, v))
}

// TotalWordsLT applies the LT predicate on the "total_words" field.
func TotalWordsLT(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLT(FieldTotalWords, v))
}

// TotalWordsLTE applies the LTE predicate on the "total_words" field.
func TotalWordsLTE(v int) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.FieldLTE(FieldTotalWords, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StatsSnapshot) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StatsSnapshot) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StatsSnapshot) predicate.StatsSnapshot {
	return predicate.StatsSnapshot(sql.NotPredicates(p))
}
