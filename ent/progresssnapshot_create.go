// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rehan/quizly/ent/progresssnapshot"
)

// ProgressSnapshotCreate is the builder for creating a ProgressSnapshot entity.
type ProgressSnapshotCreate struct {
	config
	mutation *ProgressSnapshotMutation
	hooks    []Hook
}

// SetUser sets the "user" field.
func (_c *ProgressSnapshotCreate) SetUser(v string) *ProgressSnapshotCreate {
	_c.mutation.SetUser(v)
	return _c
}

// SetData sets the "data" field.
func (_c *ProgressSnapshotCreate) SetData(v map[string]interface{}) *ProgressSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressSnapshotCreate) SetUpdatedAt(v time.Time) *ProgressSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *ProgressSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressSnapshotMutation object of the builder.
func (_c *ProgressSnapshotCreate) Mutation() *ProgressSnapshotMutation {
	return _c.mutation
}

// Save creates the ProgressSnapshot in the database.
func (_c *ProgressSnapshotCreate) Save(ctx context.Context) (*ProgressSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressSnapshotCreate) SaveX(ctx context.Context) *ProgressSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressSnapshotCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progresssnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressSnapshotCreate) check() error {
	if _, ok := _c.mutation.User(); !ok {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required field "ProgressSnapshot.user"`)}
	}
	if v, ok := _c.mutation.User(); ok {
		if err := progresssnapshot.UserValidator(v); err != nil {
			return &ValidationError{Name: "user", err: fmt.Errorf(`ent: validator failed for field "ProgressSnapshot.user": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ProgressSnapshot.data"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressSnapshot.updated_at"`)}
	}
	return nil
}

func (_c *ProgressSnapshotCreate) sqlSave(ctx context.Context) (*ProgressSnapshot, error) {
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

func (_c *ProgressSnapshotCreate) createSpec() (*ProgressSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progresssnapshot.Table, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.User(); ok {
		_spec.SetField(progresssnapshot.FieldUser, field.TypeString, value)
		_node.User = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(progresssnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progresssnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressSnapshotCreateBulk is the builder for creating many ProgressSnapshot entities in bulk.
type ProgressSnapshotCreateBulk struct {
	config
	err      error
	builders []*ProgressSnapshotCreate
}

// Save creates the ProgressSnapshot entities in the database.
func (_c *ProgressSnapshotCreateBulk) Save(ctx context.Context) ([]*ProgressSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressSnapshotMutation)
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
func (_c *ProgressSnapshotCreateBulk) SaveX(ctx context.Context) []*ProgressSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
