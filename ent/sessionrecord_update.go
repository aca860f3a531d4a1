// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rehan/quizly/ent/predicate"
	"github.com/rehan/quizly/ent/schema"
	"github.com/rehan/quizly/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionRecordUpdate) SetScore(v int) *SessionRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableScore(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionRecordUpdate) AddScore(v int) *SessionRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *SessionRecordUpdate) SetCurrentIndex(v int) *SessionRecordUpdate {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCurrentIndex(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *SessionRecordUpdate) AddCurrentIndex(v int) *SessionRecordUpdate {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionRecordUpdate) SetCompleted(v bool) *SessionRecordUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCompleted(v *bool) *SessionRecordUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionRecordUpdate) SetTotalQuestions(v int) *SessionRecordUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableTotalQuestions(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionRecordUpdate) AddTotalQuestions(v int) *SessionRecordUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *SessionRecordUpdate) SetLastUpdated(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionRecordUpdate) SetAttempts(v []schema.AttemptData) *SessionRecordUpdate {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *SessionRecordUpdate) AppendAttempts(v []schema.AttemptData) *SessionRecordUpdate {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionRecordUpdate) ClearAttempts() *SessionRecordUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *SessionRecordUpdate) SetSchemaVersion(v int) *SessionRecordUpdate {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSchemaVersion(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *SessionRecordUpdate) AddSchemaVersion(v int) *SessionRecordUpdate {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRecordUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := sessionrecord.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionrecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(sessionrecord.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionrecord.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionrecord.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(sessionrecord.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(sessionrecord.FieldSchemaVersion, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetScore sets the "score" field.
func (_u *SessionRecordUpdateOne) SetScore(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableScore(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionRecordUpdateOne) AddScore(v int) *SessionRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *SessionRecordUpdateOne) SetCurrentIndex(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCurrentIndex(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *SessionRecordUpdateOne) AddCurrentIndex(v int) *SessionRecordUpdateOne {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SessionRecordUpdateOne) SetCompleted(v bool) *SessionRecordUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCompleted(v *bool) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *SessionRecordUpdateOne) SetTotalQuestions(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableTotalQuestions(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *SessionRecordUpdateOne) AddTotalQuestions(v int) *SessionRecordUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *SessionRecordUpdateOne) SetLastUpdated(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionRecordUpdateOne) SetAttempts(v []schema.AttemptData) *SessionRecordUpdateOne {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *SessionRecordUpdateOne) AppendAttempts(v []schema.AttemptData) *SessionRecordUpdateOne {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionRecordUpdateOne) ClearAttempts() *SessionRecordUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *SessionRecordUpdateOne) SetSchemaVersion(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetSchemaVersion()
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSchemaVersion(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// AddSchemaVersion adds value to the "schema_version" field.
func (_u *SessionRecordUpdateOne) AddSchemaVersion(v int) *SessionRecordUpdateOne {
	_u.mutation.AddSchemaVersion(v)
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdated(); !ok {
		v := sessionrecord.UpdateDefaultLastUpdated()
		_u.mutation.SetLastUpdated(v)
	}
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sessionrecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(sessionrecord.FieldLastUpdated, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionrecord.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionrecord.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(sessionrecord.FieldSchemaVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSchemaVersion(); ok {
		_spec.AddField(sessionrecord.FieldSchemaVersion, field.TypeInt, value)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
