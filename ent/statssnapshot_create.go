// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/enpeak/linglog/ent/statssnapshot"
)

// StatsSnapshotCreate is the builder for creating a StatsSnapshot entity.
type StatsSnapshotCreate struct {
	config
	mutation *StatsSnapshotMutation
	hooks    []Hook
}

// SetLastActiveDate sets the "last_active_date" field.
func (_c *StatsSnapshotCreate) SetLastActiveDate(v string) *StatsSnapshotCreate {
	_c.mutation.SetLastActiveDate(v)
	return _c
}

// SetNillableLastActiveDate sets the "last_active_date" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableLastActiveDate(v *string) *StatsSnapshotCreate {
	if v != nil {
		_c.SetLastActiveDate(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *StatsSnapshotCreate) SetStreak(v int) *StatsSnapshotCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableStreak(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetBestStreak sets the "best_streak" field.
func (_c *StatsSnapshotCreate) SetBestStreak(v int) *StatsSnapshotCreate {
	_c.mutation.SetBestStreak(v)
	return _c
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableBestStreak(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetBestStreak(*v)
	}
	return _c
}

// SetTodayDate sets the "today_date" field.
func (_c *StatsSnapshotCreate) SetTodayDate(v string) *StatsSnapshotCreate {
	_c.mutation.SetTodayDate(v)
	return _c
}

// SetNillableTodayDate sets the "today_date" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTodayDate(v *string) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTodayDate(*v)
	}
	return _c
}

// SetTodaySessions sets the "today_sessions" field.
func (_c *StatsSnapshotCreate) SetTodaySessions(v int) *StatsSnapshotCreate {
	_c.mutation.SetTodaySessions(v)
	return _c
}

// SetNillableTodaySessions sets the "today_sessions" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTodaySessions(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTodaySessions(*v)
	}
	return _c
}

// SetTodayMinutes sets the "today_minutes" field.
func (_c *StatsSnapshotCreate) SetTodayMinutes(v int) *StatsSnapshotCreate {
	_c.mutation.SetTodayMinutes(v)
	return _c
}

// SetNillableTodayMinutes sets the "today_minutes" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTodayMinutes(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTodayMinutes(*v)
	}
	return _c
}

// SetTodayWords sets the "today_words" field.
func (_c *StatsSnapshotCreate) SetTodayWords(v int) *StatsSnapshotCreate {
	_c.mutation.SetTodayWords(v)
	return _c
}

// SetNillableTodayWords sets the "today_words" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTodayWords(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTodayWords(*v)
	}
	return _c
}

// SetTodayScenarios sets the "today_scenarios" field.
func (_c *StatsSnapshotCreate) SetTodayScenarios(v int) *StatsSnapshotCreate {
	_c.mutation.SetTodayScenarios(v)
	return _c
}

// SetNillableTodayScenarios sets the "today_scenarios" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTodayScenarios(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTodayScenarios(*v)
	}
	return _c
}

// SetTotalSessions sets the "total_sessions" field.
func (_c *StatsSnapshotCreate) SetTotalSessions(v int) *StatsSnapshotCreate {
	_c.mutation.SetTotalSessions(v)
	return _c
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTotalSessions(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTotalSessions(*v)
	}
	return _c
}

// SetTotalMinutes sets the "total_minutes" field.
func (_c *StatsSnapshotCreate) SetTotalMinutes(v int) *StatsSnapshotCreate {
	_c.mutation.SetTotalMinutes(v)
	return _c
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTotalMinutes(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTotalMinutes(*v)
	}
	return _c
}

// SetTotalWords sets the "total_words" field.
func (_c *StatsSnapshotCreate) SetTotalWords(v int) *StatsSnapshotCreate {
	_c.mutation.SetTotalWords(v)
	return _c
}

// SetNillableTotalWords sets the "total_words" field if the given value is not nil.
func (_c *StatsSnapshotCreate) SetNillableTotalWords(v *int) *StatsSnapshotCreate {
	if v != nil {
		_c.SetTotalWords(*v)
	}
	return _c
}

// Mutation returns the StatsSnapshotMutation object of the builder.
func (_c *StatsSnapshotCreate) Mutation() *StatsSnapshotMutation {
	return _c.mutation
}

// Save creates the StatsSnapshot in the database.
func (_c *StatsSnapshotCreate) Save(ctx context.Context) (*StatsSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatsSnapshotCreate) SaveX(ctx context.Context) *StatsSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatsSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatsSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatsSnapshotCreate) defaults() {
	if _, ok := _c.mutation.LastActiveDate(); !ok {
		v := statssnapshot.DefaultLastActiveDate
		_c.mutation.SetLastActiveDate(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := statssnapshot.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		v := statssnapshot.DefaultBestStreak
		_c.mutation.SetBestStreak(v)
	}
	if _, ok := _c.mutation.TodayDate(); !ok {
		v := statssnapshot.DefaultTodayDate
		_c.mutation.SetTodayDate(v)
	}
	if _, ok := _c.mutation.TodaySessions(); !ok {
		v := statssnapshot.DefaultTodaySessions
		_c.mutation.SetTodaySessions(v)
	}
	if _, ok := _c.mutation.TodayMinutes(); !ok {
		v := statssnapshot.DefaultTodayMinutes
		_c.mutation.SetTodayMinutes(v)
	}
	if _, ok := _c.mutation.TodayWords(); !ok {
		v := statssnapshot.DefaultTodayWords
		_c.mutation.SetTodayWords(v)
	}
	if _, ok := _c.mutation.TodayScenarios(); !ok {
		v := statssnapshot.DefaultTodayScenarios
		_c.mutation.SetTodayScenarios(v)
	}
	if _, ok := _c.mutation.TotalSessions(); !ok {
		v := statssnapshot.DefaultTotalSessions
		_c.mutation.SetTotalSessions(v)
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		v := statssnapshot.DefaultTotalMinutes
		_c.mutation.SetTotalMinutes(v)
	}
	if _, ok := _c.mutation.TotalWords(); !ok {
		v := statssnapshot.DefaultTotalWords
		_c.mutation.SetTotalWords(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatsSnapshotCreate) check() error {
	if _, ok := _c.mutation.LastActiveDate(); !ok {
		return &ValidationError{Name: "last_active_date", err: errors.New(`ent: missing required field "StatsSnapshot.last_active_date"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "StatsSnapshot.streak"`)}
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		return &ValidationError{Name: "best_streak", err: errors.New(`ent: missing required field "StatsSnapshot.best_streak"`)}
	}
	if _, ok := _c.mutation.TodayDate(); !ok {
		return &ValidationError{Name: "today_date", err: errors.New(`ent: missing required field "StatsSnapshot.today_date"`)}
	}
	if _, ok := _c.mutation.TodaySessions(); !ok {
		return &ValidationError{Name: "today_sessions", err: errors.New(`ent: missing required field "StatsSnapshot.today_sessions"`)}
	}
	if _, ok := _c.mutation.TodayMinutes(); !ok {
		return &ValidationError{Name: "today_minutes", err: errors.New(`ent: missing required field "StatsSnapshot.today_minutes"`)}
	}
	if _, ok := _c.mutation.TodayWords(); !ok {
		return &ValidationError{Name: "today_words", err: errors.New(`ent: missing required field "StatsSnapshot.today_words"`)}
	}
	if _, ok := _c.mutation.TodayScenarios(); !ok {
		return &ValidationError{Name: "today_scenarios", err: errors.New(`ent: missing required field "StatsSnapshot.today_scenarios"`)}
	}
	if _, ok := _c.mutation.TotalSessions(); !ok {
		return &ValidationError{Name: "total_sessions", err: errors.New(`ent: missing required field "StatsSnapshot.total_sessions"`)}
	}
	if _, ok := _c.mutation.TotalMinutes(); !ok {
		return &ValidationError{Name: "total_minutes", err: errors.New(`ent: missing required field "StatsSnapshot.total_minutes"`)}
	}
	if _, ok := _c.mutation.TotalWords(); !ok {
		return &ValidationError{Name: "total_words", err: errors.New(`ent: missing required field "StatsSnapshot.total_words"`)}
	}
	return nil
}

func (_c *StatsSnapshotCreate) sqlSave(ctx context.Context) (*StatsSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StatsSnapshotCreate) createSpec() (*StatsSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &StatsSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statssnapshot.Table, sqlgraph.NewFieldSpec(statssnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LastActiveDate(); ok {
		_spec.SetField(statssnapshot.FieldLastActiveDate, field.TypeString, value)
		_node.LastActiveDate = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(statssnapshot.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.BestStreak(); ok {
		_spec.SetField(statssnapshot.FieldBestStreak, field.TypeInt, value)
		_node.BestStreak = value
	}
	if value, ok := _c.mutation.TodayDate(); ok {
		_spec.SetField(statssnapshot.FieldTodayDate, field.TypeString, value)
		_node.TodayDate = value
	}
	if value, ok := _c.mutation.TodaySessions(); ok {
		_spec.SetField(statssnapshot.FieldTodaySessions, field.TypeInt, value)
		_node.TodaySessions = value
	}
	if value, ok := _c.mutation.TodayMinutes(); ok {
		_spec.SetField(statssnapshot.FieldTodayMinutes, field.TypeInt, value)
		_node.TodayMinutes = value
	}
	if value, ok := _c.mutation.TodayWords(); ok {
		_spec.SetField(statssnapshot.FieldTodayWords, field.TypeInt, value)
		_node.TodayWords = value
	}
	if value, ok := _c.mutation.TodayScenarios(); ok {
		_spec.SetField(statssnapshot.FieldTodayScenarios, field.TypeInt, value)
		_node.TodayScenarios = value
	}
	if value, ok := _c.mutation.TotalSessions(); ok {
		_spec.SetField(statssnapshot.FieldTotalSessions, field.TypeInt, value)
		_node.TotalSessions = value
	}
	if value, ok := _c.mutation.TotalMinutes(); ok {
		_spec.SetField(statssnapshot.FieldTotalMinutes, field.TypeInt, value)
		_node.TotalMinutes = value
	}
	if value, ok := _c.mutation.TotalWords(); ok {
		_spec.SetField(statssnapshot.FieldTotalWords, field.TypeInt, value)
		_node.TotalWords = value
	}
	return _node, _spec
}

// StatsSnapshotCreateBulk is the builder for creating many StatsSnapshot entities in bulk.
type StatsSnapshotCreateBulk struct {
	config
	err      error
	builders []*StatsSnapshotCreate
}

// Save creates the StatsSnapshot entities in the database.
func (_c *StatsSnapshotCreateBulk) Save(ctx context.Context) ([]*StatsSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatsSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatsSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StatsSnapshotCreateBulk) SaveX(ctx context.Context) []*StatsSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatsSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatsSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
