// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// AnalysisJobCreate is the builder for creating a AnalysisJob entity.
type AnalysisJobCreate struct {
	config
	mutation *AnalysisJobMutation
	hooks    []Hook
}

// SetProposalID sets the "proposal_id" field.
func (_c *AnalysisJobCreate) SetProposalID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisJobCreate) SetStatus(v string) *AnalysisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStatus(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSelectedAges sets the "selected_ages" field.
func (_c *AnalysisJobCreate) SetSelectedAges(v []int) *AnalysisJobCreate {
	_c.mutation.SetSelectedAges(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisJobCreate) SetErrorMessage(v string) *AnalysisJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableErrorMessage(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisJobCreate) SetCreatedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCreatedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisJobCreate) SetCompletedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCompletedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisJobCreate) SetID(v uuid.UUID) *AnalysisJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableID(v *uuid.UUID) *AnalysisJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *AnalysisJobCreate) SetProposal(v *Proposal) *AnalysisJobCreate {
	return _c.SetProposalID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_c *AnalysisJobCreate) Mutation() *AnalysisJobMutation {
	return _c.mutation
}

// Save creates the AnalysisJob in the database.
func (_c *AnalysisJobCreate) Save(ctx context.Context) (*AnalysisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisJobCreate) SaveX(ctx context.Context) *AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysisjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := analysisjob.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := analysisjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisJobCreate) check() error {
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "AnalysisJob.proposal_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisJob.created_at"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "AnalysisJob.proposal"`)}
	}
	return nil
}

func (_c *AnalysisJobCreate) sqlSave(ctx context.Context) (*AnalysisJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisJobCreate) createSpec() (*AnalysisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SelectedAges(); ok {
		_spec.SetField(analysisjob.FieldSelectedAges, field.TypeJSON, value)
		_node.SelectedAges = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysisjob.ProposalTable,
			Columns: []string{analysisjob.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProposalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisJobCreateBulk is the builder for creating many AnalysisJob entities in bulk.
type AnalysisJobCreateBulk struct {
	config
	err      error
	builders []*AnalysisJobCreate
}

// Save creates the AnalysisJob entities in the database.
func (_c *AnalysisJobCreateBulk) Save(ctx context.Context) ([]*AnalysisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisJobMutation)
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
func (_c *AnalysisJobCreateBulk) SaveX(ctx context.Context) []*AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
