// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/enpeak/linglog/ent/learningrecord"
	"github.com/enpeak/linglog/ent/predicate"
	"github.com/enpeak/linglog/ent/schema"
	"github.com/enpeak/linglog/ent/statssnapshot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLearningRecord = "LearningRecord"
	TypeStatsSnapshot  = "StatsSnapshot"
)

// LearningRecordMutation represents an operation that mutates the LearningRecord nodes in the graph.
type LearningRecordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	record_id        *string
	_type            *string
	title            *string
	category         *string
	scenario_id      *string
	word             *string
	duration_secs    *int
	addduration_secs *int
	completed_at     *time.Time
	details          **schema.RecordDetails
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LearningRecord, error)
	predicates       []predicate.LearningRecord
}

var _ ent.Mutation = (*LearningRecordMutation)(nil)

// learningrecordOption allows management of the mutation configuration using functional options.
type learningrecordOption func(*LearningRecordMutation)

// newLearningRecordMutation creates new mutation for the LearningRecord entity.
func newLearningRecordMutation(c config, op Op, opts ...learningrecordOption) *LearningRecordMutation {
	m := &LearningRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningRecordID sets the ID field of the mutation.
func withLearningRecordID(id int) learningrecordOption {
	return func(m *LearningRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningRecord
		)
		m.oldValue = func(ctx context.Context) (*LearningRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningRecord sets the old LearningRecord of the mutation.
func withLearningRecord(node *LearningRecord) learningrecordOption {
	return func(m *LearningRecordMutation) {
		m.oldValue = func(context.Context) (*LearningRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordID sets the "record_id" field.
func (m *LearningRecordMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *LearningRecordMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *LearningRecordMutation) ResetRecordID() {
	m.record_id = nil
}

// SetType sets the "type" field.
func (m *LearningRecordMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *LearningRecordMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *LearningRecordMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *LearningRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LearningRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LearningRecordMutation) ResetTitle() {
	m.title = nil
}

// SetCategory sets the "category" field.
func (m *LearningRecordMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *LearningRecordMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *LearningRecordMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[learningrecord.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *LearningRecordMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[learningrecord.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *LearningRecordMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, learningrecord.FieldCategory)
}

// SetScenarioID sets the "scenario_id" field.
func (m *LearningRecordMutation) SetScenarioID(s string) {
	m.scenario_id = &s
}

// ScenarioID returns the value of the "scenario_id" field in the mutation.
func (m *LearningRecordMutation) ScenarioID() (r string, exists bool) {
	v := m.scenario_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScenarioID returns the old "scenario_id" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldScenarioID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenarioID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenarioID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenarioID: %w", err)
	}
	return oldValue.ScenarioID, nil
}

// ClearScenarioID clears the value of the "scenario_id" field.
func (m *LearningRecordMutation) ClearScenarioID() {
	m.scenario_id = nil
	m.clearedFields[learningrecord.FieldScenarioID] = struct{}{}
}

// ScenarioIDCleared returns if the "scenario_id" field was cleared in this mutation.
func (m *LearningRecordMutation) ScenarioIDCleared() bool {
	_, ok := m.clearedFields[learningrecord.FieldScenarioID]
	return ok
}

// ResetScenarioID resets all changes to the "scenario_id" field.
func (m *LearningRecordMutation) ResetScenarioID() {
	m.scenario_id = nil
	delete(m.clearedFields, learningrecord.FieldScenarioID)
}

// SetWord sets the "word" field.
func (m *LearningRecordMutation) SetWord(s string) {
	m.word = &s
}

// Word returns the value of the "word" field in the mutation.
func (m *LearningRecordMutation) Word() (r string, exists bool) {
	v := m.word
	if v == nil {
		return
	}
	return *v, true
}

// OldWord returns the old "word" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldWord(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWord: %w", err)
	}
	return oldValue.Word, nil
}

// ClearWord clears the value of the "word" field.
func (m *LearningRecordMutation) ClearWord() {
	m.word = nil
	m.clearedFields[learningrecord.FieldWord] = struct{}{}
}

// WordCleared returns if the "word" field was cleared in this mutation.
func (m *LearningRecordMutation) WordCleared() bool {
	_, ok := m.clearedFields[learningrecord.FieldWord]
	return ok
}

// ResetWord resets all changes to the "word" field.
func (m *LearningRecordMutation) ResetWord() {
	m.word = nil
	delete(m.clearedFields, learningrecord.FieldWord)
}

// SetDurationSecs sets the "duration_secs" field.
func (m *LearningRecordMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *LearningRecordMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *LearningRecordMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *LearningRecordMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *LearningRecordMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LearningRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LearningRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LearningRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetDetails sets the "details" field.
func (m *LearningRecordMutation) SetDetails(sd *schema.RecordDetails) {
	m.details = &sd
}

// Details returns the value of the "details" field in the mutation.
func (m *LearningRecordMutation) Details() (r *schema.RecordDetails, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the LearningRecord entity.
// If the LearningRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRecordMutation) OldDetails(ctx context.Context) (v *schema.RecordDetails, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *LearningRecordMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[learningrecord.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *LearningRecordMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[learningrecord.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *LearningRecordMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, learningrecord.FieldDetails)
}

// Where appends a list predicates to the LearningRecordMutation builder.
func (m *LearningRecordMutation) Where(ps ...predicate.LearningRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningRecord).
func (m *LearningRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.record_id != nil {
		fields = append(fields, learningrecord.FieldRecordID)
	}
	if m._type != nil {
		fields = append(fields, learningrecord.FieldType)
	}
	if m.title != nil {
		fields = append(fields, learningrecord.FieldTitle)
	}
	if m.category != nil {
		fields = append(fields, learningrecord.FieldCategory)
	}
	if m.scenario_id != nil {
		fields = append(fields, learningrecord.FieldScenarioID)
	}
	if m.word != nil {
		fields = append(fields, learningrecord.FieldWord)
	}
	if m.duration_secs != nil {
		fields = append(fields, learningrecord.FieldDurationSecs)
	}
	if m.completed_at != nil {
		fields = append(fields, learningrecord.FieldCompletedAt)
	}
	if m.details != nil {
		fields = append(fields, learningrecord.FieldDetails)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningrecord.FieldRecordID:
		return m.RecordID()
	case learningrecord.FieldType:
		return m.GetType()
	case learningrecord.FieldTitle:
		return m.Title()
	case learningrecord.FieldCategory:
		return m.Category()
	case learningrecord.FieldScenarioID:
		return m.ScenarioID()
	case learningrecord.FieldWord:
		return m.Word()
	case learningrecord.FieldDurationSecs:
		return m.DurationSecs()
	case learningrecord.FieldCompletedAt:
		return m.CompletedAt()
	case learningrecord.FieldDetails:
		return m.Details()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningrecord.FieldRecordID:
		return m.OldRecordID(ctx)
	case learningrecord.FieldType:
		return m.OldType(ctx)
	case learningrecord.FieldTitle:
		return m.OldTitle(ctx)
	case learningrecord.FieldCategory:
		return m.OldCategory(ctx)
	case learningrecord.FieldScenarioID:
		return m.OldScenarioID(ctx)
	case learningrecord.FieldWord:
		return m.OldWord(ctx)
	case learningrecord.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case learningrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case learningrecord.FieldDetails:
		return m.OldDetails(ctx)
	}
	return nil, fmt.Errorf("unknown LearningRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningrecord.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case learningrecord.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case learningrecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case learningrecord.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case learningrecord.FieldScenarioID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenarioID(v)
		return nil
	case learningrecord.FieldWord:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWord(v)
		return nil
	case learningrecord.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case learningrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case learningrecord.FieldDetails:
		v, ok := value.(*schema.RecordDetails)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	}
	return fmt.Errorf("unknown LearningRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningRecordMutation) AddedFields() []string {
	var fields []string
	if m.addduration_secs != nil {
		fields = append(fields, learningrecord.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningrecord.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningrecord.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown LearningRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learningrecord.FieldCategory) {
		fields = append(fields, learningrecord.FieldCategory)
	}
	if m.FieldCleared(learningrecord.FieldScenarioID) {
		fields = append(fields, learningrecord.FieldScenarioID)
	}
	if m.FieldCleared(learningrecord.FieldWord) {
		fields = append(fields, learningrecord.FieldWord)
	}
	if m.FieldCleared(learningrecord.FieldDetails) {
		fields = append(fields, learningrecord.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningRecordMutation) ClearField(name string) error {
	switch name {
	case learningrecord.FieldCategory:
		m.ClearCategory()
		return nil
	case learningrecord.FieldScenarioID:
		m.ClearScenarioID()
		return nil
	case learningrecord.FieldWord:
		m.ClearWord()
		return nil
	case learningrecord.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown LearningRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningRecordMutation) ResetField(name string) error {
	switch name {
	case learningrecord.FieldRecordID:
		m.ResetRecordID()
		return nil
	case learningrecord.FieldType:
		m.ResetType()
		return nil
	case learningrecord.FieldTitle:
		m.ResetTitle()
		return nil
	case learningrecord.FieldCategory:
		m.ResetCategory()
		return nil
	case learningrecord.FieldScenarioID:
		m.ResetScenarioID()
		return nil
	case learningrecord.FieldWord:
		m.ResetWord()
		return nil
	case learningrecord.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case learningrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case learningrecord.FieldDetails:
		m.ResetDetails()
		return nil
	}
	return fmt.Errorf("unknown LearningRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningRecord edge %s", name)
}

// StatsSnapshotMutation represents an operation that mutates the StatsSnapshot nodes in the graph.
type StatsSnapshotMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	last_active_date   *string
	streak             *int
	addstreak          *int
	best_streak        *int
	addbest_streak     *int
	today_date         *string
	today_sessions     *int
	addtoday_sessions  *int
	today_minutes      *int
	addtoday_minutes   *int
	today_words        *int
	addtoday_words     *int
	today_scenarios    *int
	addtoday_scenarios *int
	total_sessions     *int
	addtotal_sessions  *int
	total_minutes      *int
	addtotal_minutes   *int
	total_words        *int
	addtotal_words     *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*StatsSnapshot, error)
	predicates         []predicate.StatsSnapshot
}

var _ ent.Mutation = (*StatsSnapshotMutation)(nil)

// statssnapshotOption allows management of the mutation configuration using functional options.
type statssnapshotOption func(*StatsSnapshotMutation)

// newStatsSnapshotMutation creates new mutation for the StatsSnapshot entity.
func newStatsSnapshotMutation(c config, op Op, opts ...statssnapshotOption) *StatsSnapshotMutation {
	m := &StatsSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeStatsSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatsSnapshotID sets the ID field of the mutation.
func withStatsSnapshotID(id int) statssnapshotOption {
	return func(m *StatsSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *StatsSnapshot
		)
		m.oldValue = func(ctx context.Context) (*StatsSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatsSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatsSnapshot sets the old StatsSnapshot of the mutation.
func withStatsSnapshot(node *StatsSnapshot) statssnapshotOption {
	return func(m *StatsSnapshotMutation) {
		m.oldValue = func(context.Context) (*StatsSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatsSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatsSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatsSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatsSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatsSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLastActiveDate sets the "last_active_date" field.
func (m *StatsSnapshotMutation) SetLastActiveDate(s string) {
	m.last_active_date = &s
}

// LastActiveDate returns the value of the "last_active_date" field in the mutation.
func (m *StatsSnapshotMutation) LastActiveDate() (r string, exists bool) {
	v := m.last_active_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActiveDate returns the old "last_active_date" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldLastActiveDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActiveDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActiveDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActiveDate: %w", err)
	}
	return oldValue.LastActiveDate, nil
}

// ResetLastActiveDate resets all changes to the "last_active_date" field.
func (m *StatsSnapshotMutation) ResetLastActiveDate() {
	m.last_active_date = nil
}

// SetStreak sets the "streak" field.
func (m *StatsSnapshotMutation) SetStreak(i int) {
	m.streak = &i
	m.addstreak = nil
}

// Streak returns the value of the "streak" field in the mutation.
func (m *StatsSnapshotMutation) Streak() (r int, exists bool) {
	v := m.streak
	if v == nil {
		return
	}
	return *v, true
}

// OldStreak returns the old "streak" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreak: %w", err)
	}
	return oldValue.Streak, nil
}

// AddStreak adds i to the "streak" field.
func (m *StatsSnapshotMutation) AddStreak(i int) {
	if m.addstreak != nil {
		*m.addstreak += i
	} else {
		m.addstreak = &i
	}
}

// AddedStreak returns the value that was added to the "streak" field in this mutation.
func (m *StatsSnapshotMutation) AddedStreak() (r int, exists bool) {
	v := m.addstreak
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreak resets all changes to the "streak" field.
func (m *StatsSnapshotMutation) ResetStreak() {
	m.streak = nil
	m.addstreak = nil
}

// SetBestStreak sets the "best_streak" field.
func (m *StatsSnapshotMutation) SetBestStreak(i int) {
	m.best_streak = &i
	m.addbest_streak = nil
}

// BestStreak returns the value of the "best_streak" field in the mutation.
func (m *StatsSnapshotMutation) BestStreak() (r int, exists bool) {
	v := m.best_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldBestStreak returns the old "best_streak" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldBestStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestStreak: %w", err)
	}
	return oldValue.BestStreak, nil
}

// AddBestStreak adds i to the "best_streak" field.
func (m *StatsSnapshotMutation) AddBestStreak(i int) {
	if m.addbest_streak != nil {
		*m.addbest_streak += i
	} else {
		m.addbest_streak = &i
	}
}

// AddedBestStreak returns the value that was added to the "best_streak" field in this mutation.
func (m *StatsSnapshotMutation) AddedBestStreak() (r int, exists bool) {
	v := m.addbest_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestStreak resets all changes to the "best_streak" field.
func (m *StatsSnapshotMutation) ResetBestStreak() {
	m.best_streak = nil
	m.addbest_streak = nil
}

// SetTodayDate sets the "today_date" field.
func (m *StatsSnapshotMutation) SetTodayDate(s string) {
	m.today_date = &s
}

// TodayDate returns the value of the "today_date" field in the mutation.
func (m *StatsSnapshotMutation) TodayDate() (r string, exists bool) {
	v := m.today_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTodayDate returns the old "today_date" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTodayDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTodayDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTodayDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTodayDate: %w", err)
	}
	return oldValue.TodayDate, nil
}

// ResetTodayDate resets all changes to the "today_date" field.
func (m *StatsSnapshotMutation) ResetTodayDate() {
	m.today_date = nil
}

// SetTodaySessions sets the "today_sessions" field.
func (m *StatsSnapshotMutation) SetTodaySessions(i int) {
	m.today_sessions = &i
	m.addtoday_sessions = nil
}

// TodaySessions returns the value of the "today_sessions" field in the mutation.
func (m *StatsSnapshotMutation) TodaySessions() (r int, exists bool) {
	v := m.today_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldTodaySessions returns the old "today_sessions" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTodaySessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTodaySessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTodaySessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTodaySessions: %w", err)
	}
	return oldValue.TodaySessions, nil
}

// AddTodaySessions adds i to the "today_sessions" field.
func (m *StatsSnapshotMutation) AddTodaySessions(i int) {
	if m.addtoday_sessions != nil {
		*m.addtoday_sessions += i
	} else {
		m.addtoday_sessions = &i
	}
}

// AddedTodaySessions returns the value that was added to the "today_sessions" field in this mutation.
func (m *StatsSnapshotMutation) AddedTodaySessions() (r int, exists bool) {
	v := m.addtoday_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTodaySessions resets all changes to the "today_sessions" field.
func (m *StatsSnapshotMutation) ResetTodaySessions() {
	m.today_sessions = nil
	m.addtoday_sessions = nil
}

// SetTodayMinutes sets the "today_minutes" field.
func (m *StatsSnapshotMutation) SetTodayMinutes(i int) {
	m.today_minutes = &i
	m.addtoday_minutes = nil
}

// TodayMinutes returns the value of the "today_minutes" field in the mutation.
func (m *StatsSnapshotMutation) TodayMinutes() (r int, exists bool) {
	v := m.today_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTodayMinutes returns the old "today_minutes" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTodayMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTodayMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTodayMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTodayMinutes: %w", err)
	}
	return oldValue.TodayMinutes, nil
}

// AddTodayMinutes adds i to the "today_minutes" field.
func (m *StatsSnapshotMutation) AddTodayMinutes(i int) {
	if m.addtoday_minutes != nil {
		*m.addtoday_minutes += i
	} else {
		m.addtoday_minutes = &i
	}
}

// AddedTodayMinutes returns the value that was added to the "today_minutes" field in this mutation.
func (m *StatsSnapshotMutation) AddedTodayMinutes() (r int, exists bool) {
	v := m.addtoday_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTodayMinutes resets all changes to the "today_minutes" field.
func (m *StatsSnapshotMutation) ResetTodayMinutes() {
	m.today_minutes = nil
	m.addtoday_minutes = nil
}

// SetTodayWords sets the "today_words" field.
func (m *StatsSnapshotMutation) SetTodayWords(i int) {
	m.today_words = &i
	m.addtoday_words = nil
}

// TodayWords returns the value of the "today_words" field in the mutation.
func (m *StatsSnapshotMutation) TodayWords() (r int, exists bool) {
	v := m.today_words
	if v == nil {
		return
	}
	return *v, true
}

// OldTodayWords returns the old "today_words" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTodayWords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTodayWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTodayWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTodayWords: %w", err)
	}
	return oldValue.TodayWords, nil
}

// AddTodayWords adds i to the "today_words" field.
func (m *StatsSnapshotMutation) AddTodayWords(i int) {
	if m.addtoday_words != nil {
		*m.addtoday_words += i
	} else {
		m.addtoday_words = &i
	}
}

// AddedTodayWords returns the value that was added to the "today_words" field in this mutation.
func (m *StatsSnapshotMutation) AddedTodayWords() (r int, exists bool) {
	v := m.addtoday_words
	if v == nil {
		return
	}
	return *v, true
}

// ResetTodayWords resets all changes to the "today_words" field.
func (m *StatsSnapshotMutation) ResetTodayWords() {
	m.today_words = nil
	m.addtoday_words = nil
}

// SetTodayScenarios sets the "today_scenarios" field.
func (m *StatsSnapshotMutation) SetTodayScenarios(i int) {
	m.today_scenarios = &i
	m.addtoday_scenarios = nil
}

// TodayScenarios returns the value of the "today_scenarios" field in the mutation.
func (m *StatsSnapshotMutation) TodayScenarios() (r int, exists bool) {
	v := m.today_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// OldTodayScenarios returns the old "today_scenarios" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTodayScenarios(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTodayScenarios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTodayScenarios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTodayScenarios: %w", err)
	}
	return oldValue.TodayScenarios, nil
}

// AddTodayScenarios adds i to the "today_scenarios" field.
func (m *StatsSnapshotMutation) AddTodayScenarios(i int) {
	if m.addtoday_scenarios != nil {
		*m.addtoday_scenarios += i
	} else {
		m.addtoday_scenarios = &i
	}
}

// AddedTodayScenarios returns the value that was added to the "today_scenarios" field in this mutation.
func (m *StatsSnapshotMutation) AddedTodayScenarios() (r int, exists bool) {
	v := m.addtoday_scenarios
	if v == nil {
		return
	}
	return *v, true
}

// ResetTodayScenarios resets all changes to the "today_scenarios" field.
func (m *StatsSnapshotMutation) ResetTodayScenarios() {
	m.today_scenarios = nil
	m.addtoday_scenarios = nil
}

// SetTotalSessions sets the "total_sessions" field.
func (m *StatsSnapshotMutation) SetTotalSessions(i int) {
	m.total_sessions = &i
	m.addtotal_sessions = nil
}

// TotalSessions returns the value of the "total_sessions" field in the mutation.
func (m *StatsSnapshotMutation) TotalSessions() (r int, exists bool) {
	v := m.total_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSessions returns the old "total_sessions" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTotalSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSessions: %w", err)
	}
	return oldValue.TotalSessions, nil
}

// AddTotalSessions adds i to the "total_sessions" field.
func (m *StatsSnapshotMutation) AddTotalSessions(i int) {
	if m.addtotal_sessions != nil {
		*m.addtotal_sessions += i
	} else {
		m.addtotal_sessions = &i
	}
}

// AddedTotalSessions returns the value that was added to the "total_sessions" field in this mutation.
func (m *StatsSnapshotMutation) AddedTotalSessions() (r int, exists bool) {
	v := m.addtotal_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSessions resets all changes to the "total_sessions" field.
func (m *StatsSnapshotMutation) ResetTotalSessions() {
	m.total_sessions = nil
	m.addtotal_sessions = nil
}

// SetTotalMinutes sets the "total_minutes" field.
func (m *StatsSnapshotMutation) SetTotalMinutes(i int) {
	m.total_minutes = &i
	m.addtotal_minutes = nil
}

// TotalMinutes returns the value of the "total_minutes" field in the mutation.
func (m *StatsSnapshotMutation) TotalMinutes() (r int, exists bool) {
	v := m.total_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMinutes returns the old "total_minutes" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTotalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMinutes: %w", err)
	}
	return oldValue.TotalMinutes, nil
}

// AddTotalMinutes adds i to the "total_minutes" field.
func (m *StatsSnapshotMutation) AddTotalMinutes(i int) {
	if m.addtotal_minutes != nil {
		*m.addtotal_minutes += i
	} else {
		m.addtotal_minutes = &i
	}
}

// AddedTotalMinutes returns the value that was added to the "total_minutes" field in this mutation.
func (m *StatsSnapshotMutation) AddedTotalMinutes() (r int, exists bool) {
	v := m.addtotal_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMinutes resets all changes to the "total_minutes" field.
func (m *StatsSnapshotMutation) ResetTotalMinutes() {
	m.total_minutes = nil
	m.addtotal_minutes = nil
}

// SetTotalWords sets the "total_words" field.
func (m *StatsSnapshotMutation) SetTotalWords(i int) {
	m.total_words = &i
	m.addtotal_words = nil
}

// TotalWords returns the value of the "total_words" field in the mutation.
func (m *StatsSnapshotMutation) TotalWords() (r int, exists bool) {
	v := m.total_words
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalWords returns the old "total_words" field's value of the StatsSnapshot entity.
// If the StatsSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatsSnapshotMutation) OldTotalWords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalWords: %w", err)
	}
	return oldValue.TotalWords, nil
}

// AddTotalWords adds i to the "total_words" field.
func (m *StatsSnapshotMutation) AddTotalWords(i int) {
	if m.addtotal_words != nil {
		*m.addtotal_words += i
	} else {
		m.addtotal_words = &i
	}
}

// AddedTotalWords returns the value that was added to the "total_words" field in this mutation.
func (m *StatsSnapshotMutation) AddedTotalWords() (r int, exists bool) {
	v := m.addtotal_words
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalWords resets all changes to the "total_words" field.
func (m *StatsSnapshotMutation) ResetTotalWords() {
	m.total_words = nil
	m.addtotal_words = nil
}

// Where appends a list predicates to the StatsSnapshotMutation builder.
func (m *StatsSnapshotMutation) Where(ps ...predicate.StatsSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatsSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatsSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatsSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatsSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatsSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatsSnapshot).
func (m *StatsSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatsSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.last_active_date != nil {
		fields = append(fields, statssnapshot.FieldLastActiveDate)
	}
	if m.streak != nil {
		fields = append(fields, statssnapshot.FieldStreak)
	}
	if m.best_streak != nil {
		fields = append(fields, statssnapshot.FieldBestStreak)
	}
	if m.today_date != nil {
		fields = append(fields, statssnapshot.FieldTodayDate)
	}
	if m.today_sessions != nil {
		fields = append(fields, statssnapshot.FieldTodaySessions)
	}
	if m.today_minutes != nil {
		fields = append(fields, statssnapshot.FieldTodayMinutes)
	}
	if m.today_words != nil {
		fields = append(fields, statssnapshot.FieldTodayWords)
	}
	if m.today_scenarios != nil {
		fields = append(fields, statssnapshot.FieldTodayScenarios)
	}
	if m.total_sessions != nil {
		fields = append(fields, statssnapshot.FieldTotalSessions)
	}
	if m.total_minutes != nil {
		fields = append(fields, statssnapshot.FieldTotalMinutes)
	}
	if m.total_words != nil {
		fields = append(fields, statssnapshot.FieldTotalWords)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatsSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statssnapshot.FieldLastActiveDate:
		return m.LastActiveDate()
	case statssnapshot.FieldStreak:
		return m.Streak()
	case statssnapshot.FieldBestStreak:
		return m.BestStreak()
	case statssnapshot.FieldTodayDate:
		return m.TodayDate()
	case statssnapshot.FieldTodaySessions:
		return m.TodaySessions()
	case statssnapshot.FieldTodayMinutes:
		return m.TodayMinutes()
	case statssnapshot.FieldTodayWords:
		return m.TodayWords()
	case statssnapshot.FieldTodayScenarios:
		return m.TodayScenarios()
	case statssnapshot.FieldTotalSessions:
		return m.TotalSessions()
	case statssnapshot.FieldTotalMinutes:
		return m.TotalMinutes()
	case statssnapshot.FieldTotalWords:
		return m.TotalWords()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatsSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statssnapshot.FieldLastActiveDate:
		return m.OldLastActiveDate(ctx)
	case statssnapshot.FieldStreak:
		return m.OldStreak(ctx)
	case statssnapshot.FieldBestStreak:
		return m.OldBestStreak(ctx)
	case statssnapshot.FieldTodayDate:
		return m.OldTodayDate(ctx)
	case statssnapshot.FieldTodaySessions:
		return m.OldTodaySessions(ctx)
	case statssnapshot.FieldTodayMinutes:
		return m.OldTodayMinutes(ctx)
	case statssnapshot.FieldTodayWords:
		return m.OldTodayWords(ctx)
	case statssnapshot.FieldTodayScenarios:
		return m.OldTodayScenarios(ctx)
	case statssnapshot.FieldTotalSessions:
		return m.OldTotalSessions(ctx)
	case statssnapshot.FieldTotalMinutes:
		return m.OldTotalMinutes(ctx)
	case statssnapshot.FieldTotalWords:
		return m.OldTotalWords(ctx)
	}
	return nil, fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatsSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statssnapshot.FieldLastActiveDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActiveDate(v)
		return nil
	case statssnapshot.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreak(v)
		return nil
	case statssnapshot.FieldBestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestStreak(v)
		return nil
	case statssnapshot.FieldTodayDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTodayDate(v)
		return nil
	case statssnapshot.FieldTodaySessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTodaySessions(v)
		return nil
	case statssnapshot.FieldTodayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTodayMinutes(v)
		return nil
	case statssnapshot.FieldTodayWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTodayWords(v)
		return nil
	case statssnapshot.FieldTodayScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTodayScenarios(v)
		return nil
	case statssnapshot.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSessions(v)
		return nil
	case statssnapshot.FieldTotalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMinutes(v)
		return nil
	case statssnapshot.FieldTotalWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalWords(v)
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatsSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addstreak != nil {
		fields = append(fields, statssnapshot.FieldStreak)
	}
	if m.addbest_streak != nil {
		fields = append(fields, statssnapshot.FieldBestStreak)
	}
	if m.addtoday_sessions != nil {
		fields = append(fields, statssnapshot.FieldTodaySessions)
	}
	if m.addtoday_minutes != nil {
		fields = append(fields, statssnapshot.FieldTodayMinutes)
	}
	if m.addtoday_words != nil {
		fields = append(fields, statssnapshot.FieldTodayWords)
	}
	if m.addtoday_scenarios != nil {
		fields = append(fields, statssnapshot.FieldTodayScenarios)
	}
	if m.addtotal_sessions != nil {
		fields = append(fields, statssnapshot.FieldTotalSessions)
	}
	if m.addtotal_minutes != nil {
		fields = append(fields, statssnapshot.FieldTotalMinutes)
	}
	if m.addtotal_words != nil {
		fields = append(fields, statssnapshot.FieldTotalWords)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatsSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statssnapshot.FieldStreak:
		return m.AddedStreak()
	case statssnapshot.FieldBestStreak:
		return m.AddedBestStreak()
	case statssnapshot.FieldTodaySessions:
		return m.AddedTodaySessions()
	case statssnapshot.FieldTodayMinutes:
		return m.AddedTodayMinutes()
	case statssnapshot.FieldTodayWords:
		return m.AddedTodayWords()
	case statssnapshot.FieldTodayScenarios:
		return m.AddedTodayScenarios()
	case statssnapshot.FieldTotalSessions:
		return m.AddedTotalSessions()
	case statssnapshot.FieldTotalMinutes:
		return m.AddedTotalMinutes()
	case statssnapshot.FieldTotalWords:
		return m.AddedTotalWords()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatsSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statssnapshot.FieldStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreak(v)
		return nil
	case statssnapshot.FieldBestStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestStreak(v)
		return nil
	case statssnapshot.FieldTodaySessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTodaySessions(v)
		return nil
	case statssnapshot.FieldTodayMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTodayMinutes(v)
		return nil
	case statssnapshot.FieldTodayWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTodayWords(v)
		return nil
	case statssnapshot.FieldTodayScenarios:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTodayScenarios(v)
		return nil
	case statssnapshot.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSessions(v)
		return nil
	case statssnapshot.FieldTotalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMinutes(v)
		return nil
	case statssnapshot.FieldTotalWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalWords(v)
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatsSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatsSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatsSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StatsSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatsSnapshotMutation) ResetField(name string) error {
	switch name {
	case statssnapshot.FieldLastActiveDate:
		m.ResetLastActiveDate()
		return nil
	case statssnapshot.FieldStreak:
		m.ResetStreak()
		return nil
	case statssnapshot.FieldBestStreak:
		m.ResetBestStreak()
		return nil
	case statssnapshot.FieldTodayDate:
		m.ResetTodayDate()
		return nil
	case statssnapshot.FieldTodaySessions:
		m.ResetTodaySessions()
		return nil
	case statssnapshot.FieldTodayMinutes:
		m.ResetTodayMinutes()
		return nil
	case statssnapshot.FieldTodayWords:
		m.ResetTodayWords()
		return nil
	case statssnapshot.FieldTodayScenarios:
		m.ResetTodayScenarios()
		return nil
	case statssnapshot.FieldTotalSessions:
		m.ResetTotalSessions()
		return nil
	case statssnapshot.FieldTotalMinutes:
		m.ResetTotalMinutes()
		return nil
	case statssnapshot.FieldTotalWords:
		m.ResetTotalWords()
		return nil
	}
	return fmt.Errorf("unknown StatsSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatsSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatsSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatsSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatsSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatsSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatsSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatsSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StatsSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatsSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StatsSnapshot edge %s", name)
}
