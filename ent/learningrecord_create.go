// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/enpeak/linglog/ent/learningrecord"
	"github.com/enpeak/linglog/ent/schema"
)

// LearningRecordCreate is the builder for creating a LearningRecord entity.
type LearningRecordCreate struct {
	config
	mutation *LearningRecordMutation
	hooks    []Hook
}

// SetRecordID sets the "record_id" field.
func (_c *LearningRecordCreate) SetRecordID(v string) *LearningRecordCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *LearningRecordCreate) SetType(v string) *LearningRecordCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LearningRecordCreate) SetTitle(v string) *LearningRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *LearningRecordCreate) SetCategory(v string) *LearningRecordCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *LearningRecordCreate) SetNillableCategory(v *string) *LearningRecordCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *LearningRecordCreate) SetScenarioID(v string) *LearningRecordCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_c *LearningRecordCreate) SetNillableScenarioID(v *string) *LearningRecordCreate {
	if v != nil {
		_c.SetScenarioID(*v)
	}
	return _c
}

// SetWord sets the "word" field.
func (_c *LearningRecordCreate) SetWord(v string) *LearningRecordCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_c *LearningRecordCreate) SetNillableWord(v *string) *LearningRecordCreate {
	if v != nil {
		_c.SetWord(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *LearningRecordCreate) SetDurationSecs(v int) *LearningRecordCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *LearningRecordCreate) SetNillableDurationSecs(v *int) *LearningRecordCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LearningRecordCreate) SetCompletedAt(v time.Time) *LearningRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LearningRecordCreate) SetNillableCompletedAt(v *time.Time) *LearningRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *LearningRecordCreate) SetDetails(v *schema.RecordDetails) *LearningRecordCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// Mutation returns the LearningRecordMutation object of the builder.
func (_c *LearningRecordCreate) Mutation() *LearningRecordMutation {
	return _c.mutation
}

// Save creates the LearningRecord in the database.
func (_c *LearningRecordCreate) Save(ctx context.Context) (*LearningRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningRecordCreate) SaveX(ctx context.Context) *LearningRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningRecordCreate) defaults() {
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := learningrecord.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := learningrecord.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningRecordCreate) check() error {
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "LearningRecord.record_id"`)}
	}
	if v, ok := _c.mutation.RecordID(); ok {
		if err := learningrecord.RecordIDValidator(v); err != nil {
			return &ValidationError{Name: "record_id", err: fmt.Errorf(`ent: validator failed for field "LearningRecord.record_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "LearningRecord.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := learningrecord.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "LearningRecord.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LearningRecord.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := learningrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningRecord.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "LearningRecord.duration_secs"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "LearningRecord.completed_at"`)}
	}
	return nil
}

func (_c *LearningRecordCreate) sqlSave(ctx context.Context) (*LearningRecord, error) {
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

func (_c *LearningRecordCreate) createSpec() (*LearningRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningrecord.Table, sqlgraph.NewFieldSpec(learningrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(learningrecord.FieldRecordID, field.TypeString, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(learningrecord.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(learningrecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(learningrecord.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(learningrecord.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(learningrecord.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(learningrecord.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(learningrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(learningrecord.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	return _node, _spec
}

// LearningRecordCreateBulk is the builder for creating many LearningRecord entities in bulk.
type LearningRecordCreateBulk struct {
	config
	err      error
	builders []*LearningRecordCreate
}

// Save creates the LearningRecord entities in the database.
func (_c *LearningRecordCreateBulk) Save(ctx context.Context) ([]*LearningRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningRecordMutation)
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
func (_c *LearningRecordCreateBulk) SaveX(ctx context.Context) []*LearningRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
