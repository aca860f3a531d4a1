// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rehan/quizly/ent/schema"
	"github.com/rehan/quizly/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRecordCreate) SetSessionID(v string) *SessionRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUser sets the "user" field.
func (_c *SessionRecordCreate) SetUser(v string) *SessionRecordCreate {
	_c.mutation.SetUser(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SessionRecordCreate) SetScore(v int) *SessionRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableScore(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCurrentIndex sets the "current_index" field.
func (_c *SessionRecordCreate) SetCurrentIndex(v int) *SessionRecordCreate {
	_c.mutation.SetCurrentIndex(v)
	return _c
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCurrentIndex(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetCurrentIndex(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *SessionRecordCreate) SetCompleted(v bool) *SessionRecordCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCompleted(v *bool) *SessionRecordCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *SessionRecordCreate) SetTotalQuestions(v int) *SessionRecordCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableTotalQuestions(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionRecordCreate) SetCreatedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCreatedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *SessionRecordCreate) SetLastUpdated(v time.Time) *SessionRecordCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableLastUpdated(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetLastUpdated(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SessionRecordCreate) SetAttempts(v []schema.AttemptData) *SessionRecordCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *SessionRecordCreate) SetSchemaVersion(v int) *SessionRecordCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableSchemaVersion(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := sessionrecord.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		v := sessionrecord.DefaultCurrentIndex
		_c.mutation.SetCurrentIndex(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := sessionrecord.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := sessionrecord.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		v := sessionrecord.DefaultLastUpdated()
		_c.mutation.SetLastUpdated(v)
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := sessionrecord.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.User(); !ok {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required field "SessionRecord.user"`)}
	}
	if v, ok := _c.mutation.User(); ok {
		if err := sessionrecord.UserValidator(v); err != nil {
			return &ValidationError{Name: "user", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SessionRecord.score"`)}
	}
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		return &ValidationError{Name: "current_index", err: errors.New(`ent: missing required field "SessionRecord.current_index"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "SessionRecord.completed"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "SessionRecord.total_questions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionRecord.created_at"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "SessionRecord.last_updated"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "SessionRecord.schema_version"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
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

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.User(); ok {
		_spec.SetField(sessionrecord.FieldUser, field.TypeString, value)
		_node.User = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sessionrecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CurrentIndex(); ok {
		_spec.SetField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
		_node.CurrentIndex = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(sessionrecord.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(sessionrecord.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(sessionrecord.FieldLastUpdated, field.TypeTime, value)
		_node.LastUpdated = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(sessionrecord.FieldAttempts, field.TypeJSON, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(sessionrecord.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	return _node, _spec
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
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
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
