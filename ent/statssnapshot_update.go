// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/enpeak/linglog/ent/predicate"
	"github.com/enpeak/linglog/ent/statssnapshot"
)

// StatsSnapshotUpdate is the builder for updating StatsSnapshot entities.
type StatsSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *StatsSnapshotMutation
}

// Where appends a list predicates to the StatsSnapshotUpdate builder.
func (_u *StatsSnapshotUpdate) Where(ps ...predicate.StatsSnapshot) *StatsSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *StatsSnapshotUpdate) SetLastActiveDate(v string) *StatsSnapshotUpdate {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableLastActiveDate(v *string) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *StatsSnapshotUpdate) SetStreak(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableStreak(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *StatsSnapshotUpdate) AddStreak(v int) *StatsSnapshotUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *StatsSnapshotUpdate) SetBestStreak(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableBestStreak(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *StatsSnapshotUpdate) AddBestStreak(v int) *StatsSnapshotUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTodayDate sets the "today_date" field.
func (_u *StatsSnapshotUpdate) SetTodayDate(v string) *StatsSnapshotUpdate {
	_u.mutation.SetTodayDate(v)
	return _u
}

// SetNillableTodayDate sets the "today_date" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTodayDate(v *string) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTodayDate(*v)
	}
	return _u
}

// SetTodaySessions sets the "today_sessions" field.
func (_u *StatsSnapshotUpdate) SetTodaySessions(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetTodaySessions()
	_u.mutation.SetTodaySessions(v)
	return _u
}

// SetNillableTodaySessions sets the "today_sessions" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTodaySessions(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTodaySessions(*v)
	}
	return _u
}

// AddTodaySessions adds value to the "today_sessions" field.
func (_u *StatsSnapshotUpdate) AddTodaySessions(v int) *StatsSnapshotUpdate {
	_u.mutation.AddTodaySessions(v)
	return _u
}

// SetTodayMinutes sets the "today_minutes" field.
func (_u *StatsSnapshotUpdate) SetTodayMinutes(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetTodayMinutes()
	_u.mutation.SetTodayMinutes(v)
	return _u
}

// SetNillableTodayMinutes sets the "today_minutes" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTodayMinutes(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTodayMinutes(*v)
	}
	return _u
}

// AddTodayMinutes adds value to the "today_minutes" field.
func (_u *StatsSnapshotUpdate) AddTodayMinutes(v int) *StatsSnapshotUpdate {
	_u.mutation.AddTodayMinutes(v)
	return _u
}

// SetTodayWords sets the "today_words" field.
func (_u *StatsSnapshotUpdate) SetTodayWords(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetTodayWords()
	_u.mutation.SetTodayWords(v)
	return _u
}

// SetNillableTodayWords sets the "today_words" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTodayWords(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTodayWords(*v)
	}
	return _u
}

// AddTodayWords adds value to the "today_words" field.
func (_u *StatsSnapshotUpdate) AddTodayWords(v int) *StatsSnapshotUpdate {
	_u.mutation.AddTodayWords(v)
	return _u
}

// SetTodayScenarios sets the "today_scenarios" field.
func (_u *StatsSnapshotUpdate) SetTodayScenarios(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetTodayScenarios()
	_u.mutation.SetTodayScenarios(v)
	return _u
}

// SetNillableTodayScenarios sets the "today_scenarios" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTodayScenarios(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTodayScenarios(*v)
	}
	return _u
}

// AddTodayScenarios adds value to the "today_scenarios" field.
func (_u *StatsSnapshotUpdate) AddTodayScenarios(v int) *StatsSnapshotUpdate {
	_u.mutation.AddTodayScenarios(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *StatsSnapshotUpdate) SetTotalSessions(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTotalSessions(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *StatsSnapshotUpdate) AddTotalSessions(v int) *StatsSnapshotUpdate {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *StatsSnapshotUpdate) SetTotalMinutes(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTotalMinutes(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *StatsSnapshotUpdate) AddTotalMinutes(v int) *StatsSnapshotUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetTotalWords sets the "total_words" field.
func (_u *StatsSnapshotUpdate) SetTotalWords(v int) *StatsSnapshotUpdate {
	_u.mutation.ResetTotalWords()
	_u.mutation.SetTotalWords(v)
	return _u
}

// SetNillableTotalWords sets the "total_words" field if the given value is not nil.
func (_u *StatsSnapshotUpdate) SetNillableTotalWords(v *int) *StatsSnapshotUpdate {
	if v != nil {
		_u.SetTotalWords(*v)
	}
	return _u
}

// AddTotalWords adds value to the "total_words" field.
func (_u *StatsSnapshotUpdate) AddTotalWords(v int) *StatsSnapshotUpdate {
	_u.mutation.AddTotalWords(v)
	return _u
}

// Mutation returns the StatsSnapshotMutation object of the builder.
func (_u *StatsSnapshotUpdate) Mutation() *StatsSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StatsSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatsSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StatsSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatsSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StatsSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(statssnapshot.Table, statssnapshot.Columns, sqlgraph.NewFieldSpec(statssnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(statssnapshot.FieldLastActiveDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(statssnapshot.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(statssnapshot.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(statssnapshot.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(statssnapshot.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayDate(); ok {
		_spec.SetField(statssnapshot.FieldTodayDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TodaySessions(); ok {
		_spec.SetField(statssnapshot.FieldTodaySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodaySessions(); ok {
		_spec.AddField(statssnapshot.FieldTodaySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayMinutes(); ok {
		_spec.SetField(statssnapshot.FieldTodayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodayMinutes(); ok {
		_spec.AddField(statssnapshot.FieldTodayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayWords(); ok {
		_spec.SetField(statssnapshot.FieldTodayWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodayWords(); ok {
		_spec.AddField(statssnapshot.FieldTodayWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayScenarios(); ok {
		_spec.SetField(statssnapshot.FieldTodayScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodayScenarios(); ok {
		_spec.AddField(statssnapshot.FieldTodayScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(statssnapshot.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(statssnapshot.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(statssnapshot.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(statssnapshot.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalWords(); ok {
		_spec.SetField(statssnapshot.FieldTotalWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalWords(); ok {
		_spec.AddField(statssnapshot.FieldTotalWords, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StatsSnapshotUpdateOne is the builder for updating a single StatsSnapshot entity.
type StatsSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatsSnapshotMutation
}

// SetLastActiveDate sets the "last_active_date" field.
func (_u *StatsSnapshotUpdateOne) SetLastActiveDate(v string) *StatsSnapshotUpdateOne {
	_u.mutation.SetLastActiveDate(v)
	return _u
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableLastActiveDate(v *string) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetLastActiveDate(*v)
	}
	return _u
}

// SetStreak sets the "streak" field.
func (_u *StatsSnapshotUpdateOne) SetStreak(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableStreak(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *StatsSnapshotUpdateOne) AddStreak(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *StatsSnapshotUpdateOne) SetBestStreak(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableBestStreak(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *StatsSnapshotUpdateOne) AddBestStreak(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTodayDate sets the "today_date" field.
func (_u *StatsSnapshotUpdateOne) SetTodayDate(v string) *StatsSnapshotUpdateOne {
	_u.mutation.SetTodayDate(v)
	return _u
}

// SetNillableTodayDate sets the "today_date" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTodayDate(v *string) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTodayDate(*v)
	}
	return _u
}

// SetTodaySessions sets the "today_sessions" field.
func (_u *StatsSnapshotUpdateOne) SetTodaySessions(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetTodaySessions()
	_u.mutation.SetTodaySessions(v)
	return _u
}

// SetNillableTodaySessions sets the "today_sessions" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTodaySessions(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTodaySessions(*v)
	}
	return _u
}

// AddTodaySessions adds value to the "today_sessions" field.
func (_u *StatsSnapshotUpdateOne) AddTodaySessions(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddTodaySessions(v)
	return _u
}

// SetTodayMinutes sets the "today_minutes" field.
func (_u *StatsSnapshotUpdateOne) SetTodayMinutes(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetTodayMinutes()
	_u.mutation.SetTodayMinutes(v)
	return _u
}

// SetNillableTodayMinutes sets the "today_minutes" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTodayMinutes(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTodayMinutes(*v)
	}
	return _u
}

// AddTodayMinutes adds value to the "today_minutes" field.
func (_u *StatsSnapshotUpdateOne) AddTodayMinutes(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddTodayMinutes(v)
	return _u
}

// SetTodayWords sets the "today_words" field.
func (_u *StatsSnapshotUpdateOne) SetTodayWords(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetTodayWords()
	_u.mutation.SetTodayWords(v)
	return _u
}

// SetNillableTodayWords sets the "today_words" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTodayWords(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTodayWords(*v)
	}
	return _u
}

// AddTodayWords adds value to the "today_words" field.
func (_u *StatsSnapshotUpdateOne) AddTodayWords(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddTodayWords(v)
	return _u
}

// SetTodayScenarios sets the "today_scenarios" field.
func (_u *StatsSnapshotUpdateOne) SetTodayScenarios(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetTodayScenarios()
	_u.mutation.SetTodayScenarios(v)
	return _u
}

// SetNillableTodayScenarios sets the "today_scenarios" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTodayScenarios(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTodayScenarios(*v)
	}
	return _u
}

// AddTodayScenarios adds value to the "today_scenarios" field.
func (_u *StatsSnapshotUpdateOne) AddTodayScenarios(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddTodayScenarios(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *StatsSnapshotUpdateOne) SetTotalSessions(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTotalSessions(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *StatsSnapshotUpdateOne) AddTotalSessions(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *StatsSnapshotUpdateOne) SetTotalMinutes(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTotalMinutes(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *StatsSnapshotUpdateOne) AddTotalMinutes(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetTotalWords sets the "total_words" field.
func (_u *StatsSnapshotUpdateOne) SetTotalWords(v int) *StatsSnapshotUpdateOne {
	_u.mutation.ResetTotalWords()
	_u.mutation.SetTotalWords(v)
	return _u
}

// SetNillableTotalWords sets the "total_words" field if the given value is not nil.
func (_u *StatsSnapshotUpdateOne) SetNillableTotalWords(v *int) *StatsSnapshotUpdateOne {
	if v != nil {
		_u.SetTotalWords(*v)
	}
	return _u
}

// AddTotalWords adds value to the "total_words" field.
func (_u *StatsSnapshotUpdateOne) AddTotalWords(v int) *StatsSnapshotUpdateOne {
	_u.mutation.AddTotalWords(v)
	return _u
}

// Mutation returns the StatsSnapshotMutation object of the builder.
func (_u *StatsSnapshotUpdateOne) Mutation() *StatsSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the StatsSnapshotUpdate builder.
func (_u *StatsSnapshotUpdateOne) Where(ps ...predicate.StatsSnapshot) *StatsSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StatsSnapshotUpdateOne) Select(field string, fields ...string) *StatsSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StatsSnapshot entity.
func (_u *StatsSnapshotUpdateOne) Save(ctx context.Context) (*StatsSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StatsSnapshotUpdateOne) SaveX(ctx context.Context) *StatsSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StatsSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StatsSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *StatsSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *StatsSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(statssnapshot.Table, statssnapshot.Columns, sqlgraph.NewFieldSpec(statssnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StatsSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, statssnapshot.FieldID)
		for _, f := range fields {
			if !statssnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != statssnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastActiveDate(); ok {
		_spec.SetField(statssnapshot.FieldLastActiveDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(statssnapshot.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(statssnapshot.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(statssnapshot.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(statssnapshot.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayDate(); ok {
		_spec.SetField(statssnapshot.FieldTodayDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TodaySessions(); ok {
		_spec.SetField(statssnapshot.FieldTodaySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodaySessions(); ok {
		_spec.AddField(statssnapshot.FieldTodaySessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayMinutes(); ok {
		_spec.SetField(statssnapshot.FieldTodayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodayMinutes(); ok {
		_spec.AddField(statssnapshot.FieldTodayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayWords(); ok {
		_spec.SetField(statssnapshot.FieldTodayWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodayWords(); ok {
		_spec.AddField(statssnapshot.FieldTodayWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TodayScenarios(); ok {
		_spec.SetField(statssnapshot.FieldTodayScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTodayScenarios(); ok {
		_spec.AddField(statssnapshot.FieldTodayScenarios, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(statssnapshot.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(statssnapshot.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(statssnapshot.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(statssnapshot.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalWords(); ok {
		_spec.SetField(statssnapshot.FieldTotalWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalWords(); ok {
		_spec.AddField(statssnapshot.FieldTotalWords, field.TypeInt, value)
	}
	_node = &StatsSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{statssnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
