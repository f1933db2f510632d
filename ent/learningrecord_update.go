// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/enpeak/linglog/ent/learningrecord"
	"github.com/enpeak/linglog/ent/predicate"
	"github.com/enpeak/linglog/ent/schema"
)

// LearningRecordUpdate is the builder for updating LearningRecord entities.
type LearningRecordUpdate struct {
	config
	hooks    []Hook
	mutation *LearningRecordMutation
}

// Where appends a list predicates to the LearningRecordUpdate builder.
func (_u *LearningRecordUpdate) Where(ps ...predicate.LearningRecord) *LearningRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *LearningRecordUpdate) SetType(v string) *LearningRecordUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *LearningRecordUpdate) SetNillableType(v *string) *LearningRecordUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningRecordUpdate) SetTitle(v string) *LearningRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningRecordUpdate) SetNillableTitle(v *string) *LearningRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *LearningRecordUpdate) SetCategory(v string) *LearningRecordUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LearningRecordUpdate) SetNillableCategory(v *string) *LearningRecordUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *LearningRecordUpdate) ClearCategory() *LearningRecordUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *LearningRecordUpdate) SetScenarioID(v string) *LearningRecordUpdate {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *LearningRecordUpdate) SetNillableScenarioID(v *string) *LearningRecordUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// ClearScenarioID clears the value of the "scenario_id" field.
func (_u *LearningRecordUpdate) ClearScenarioID() *LearningRecordUpdate {
	_u.mutation.ClearScenarioID()
	return _u
}

// SetWord sets the "word" field.
func (_u *LearningRecordUpdate) SetWord(v string) *LearningRecordUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *LearningRecordUpdate) SetNillableWord(v *string) *LearningRecordUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// ClearWord clears the value of the "word" field.
func (_u *LearningRecordUpdate) ClearWord() *LearningRecordUpdate {
	_u.mutation.ClearWord()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *LearningRecordUpdate) SetDurationSecs(v int) *LearningRecordUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *LearningRecordUpdate) SetNillableDurationSecs(v *int) *LearningRecordUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *LearningRecordUpdate) AddDurationSecs(v int) *LearningRecordUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *LearningRecordUpdate) SetDetails(v *schema.RecordDetails) *LearningRecordUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *LearningRecordUpdate) ClearDetails() *LearningRecordUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the LearningRecordMutation object of the builder.
func (_u *LearningRecordUpdate) Mutation() *LearningRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningRecordUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := learningrecord.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "LearningRecord.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := learningrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningrecord.Table, learningrecord.Columns, sqlgraph.NewFieldSpec(learningrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(learningrecord.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(learningrecord.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(learningrecord.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(learningrecord.FieldScenarioID, field.TypeString, value)
	}
	if _u.mutation.ScenarioIDCleared() {
		_spec.ClearField(learningrecord.FieldScenarioID, field.TypeString)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(learningrecord.FieldWord, field.TypeString, value)
	}
	if _u.mutation.WordCleared() {
		_spec.ClearField(learningrecord.FieldWord, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(learningrecord.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(learningrecord.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(learningrecord.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(learningrecord.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningRecordUpdateOne is the builder for updating a single LearningRecord entity.
type LearningRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningRecordMutation
}

// SetType sets the "type" field.
func (_u *LearningRecordUpdateOne) SetType(v string) *LearningRecordUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *LearningRecordUpdateOne) SetNillableType(v *string) *LearningRecordUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningRecordUpdateOne) SetTitle(v string) *LearningRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningRecordUpdateOne) SetNillableTitle(v *string) *LearningRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *LearningRecordUpdateOne) SetCategory(v string) *LearningRecordUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *LearningRecordUpdateOne) SetNillableCategory(v *string) *LearningRecordUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *LearningRecordUpdateOne) ClearCategory() *LearningRecordUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *LearningRecordUpdateOne) SetScenarioID(v string) *LearningRecordUpdateOne {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *LearningRecordUpdateOne) SetNillableScenarioID(v *string) *LearningRecordUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// ClearScenarioID clears the value of the "scenario_id" field.
func (_u *LearningRecordUpdateOne) ClearScenarioID() *LearningRecordUpdateOne {
	_u.mutation.ClearScenarioID()
	return _u
}

// SetWord sets the "word" field.
func (_u *LearningRecordUpdateOne) SetWord(v string) *LearningRecordUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *LearningRecordUpdateOne) SetNillableWord(v *string) *LearningRecordUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// ClearWord clears the value of the "word" field.
func (_u *LearningRecordUpdateOne) ClearWord() *LearningRecordUpdateOne {
	_u.mutation.ClearWord()
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *LearningRecordUpdateOne) SetDurationSecs(v int) *LearningRecordUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *LearningRecordUpdateOne) SetNillableDurationSecs(v *int) *LearningRecordUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *LearningRecordUpdateOne) AddDurationSecs(v int) *LearningRecordUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *LearningRecordUpdateOne) SetDetails(v *schema.RecordDetails) *LearningRecordUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *LearningRecordUpdateOne) ClearDetails() *LearningRecordUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the LearningRecordMutation object of the builder.
func (_u *LearningRecordUpdateOne) Mutation() *LearningRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningRecordUpdate builder.
func (_u *LearningRecordUpdateOne) Where(ps ...predicate.LearningRecord) *LearningRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningRecordUpdateOne) Select(field string, fields ...string) *LearningRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningRecord entity.
func (_u *LearningRecordUpdateOne) Save(ctx context.Context) (*LearningRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningRecordUpdateOne) SaveX(ctx context.Context) *LearningRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningRecordUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := learningrecord.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "LearningRecord.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := learningrecord.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LearningRecord.title": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningRecordUpdateOne) sqlSave(ctx context.Context) (_node *LearningRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningrecord.Table, learningrecord.Columns, sqlgraph.NewFieldSpec(learningrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningrecord.FieldID)
		for _, f := range fields {
			if !learningrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningrecord.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(learningrecord.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningrecord.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(learningrecord.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(learningrecord.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(learningrecord.FieldScenarioID, field.TypeString, value)
	}
	if _u.mutation.ScenarioIDCleared() {
		_spec.ClearField(learningrecord.FieldScenarioID, field.TypeString)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(learningrecord.FieldWord, field.TypeString, value)
	}
	if _u.mutation.WordCleared() {
		_spec.ClearField(learningrecord.FieldWord, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(learningrecord.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(learningrecord.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(learningrecord.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(learningrecord.FieldDetails, field.TypeJSON)
	}
	_node = &LearningRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
