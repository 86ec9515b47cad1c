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
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// ProposalCreate is the builder for creating a Proposal entity.
type ProposalCreate struct {
	config
	mutation *ProposalMutation
	hooks    []Hook
}

// SetClientName sets the "client_name" field.
func (_c *ProposalCreate) SetClientName(v string) *ProposalCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetClientNeeds sets the "client_needs" field.
func (_c *ProposalCreate) SetClientNeeds(v string) *ProposalCreate {
	_c.mutation.SetClientNeeds(v)
	return _c
}

// SetNillableClientNeeds sets the "client_needs" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableClientNeeds(v *string) *ProposalCreate {
	if v != nil {
		_c.SetClientNeeds(*v)
	}
	return _c
}

// SetProposalType sets the "proposal_type" field.
func (_c *ProposalCreate) SetProposalType(v string) *ProposalCreate {
	_c.mutation.SetProposalType(v)
	return _c
}

// SetNillableProposalType sets the "proposal_type" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableProposalType(v *string) *ProposalCreate {
	if v != nil {
		_c.SetProposalType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProposalCreate) SetStatus(v string) *ProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableStatus(v *string) *ProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailedFrom sets the "failed_from" field.
func (_c *ProposalCreate) SetFailedFrom(v string) *ProposalCreate {
	_c.mutation.SetFailedFrom(v)
	return _c
}

// SetNillableFailedFrom sets the "failed_from" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableFailedFrom(v *string) *ProposalCreate {
	if v != nil {
		_c.SetFailedFrom(*v)
	}
	return _c
}

// SetFailureNote sets the "failure_note" field.
func (_c *ProposalCreate) SetFailureNote(v string) *ProposalCreate {
	_c.mutation.SetFailureNote(v)
	return _c
}

// SetNillableFailureNote sets the "failure_note" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableFailureNote(v *string) *ProposalCreate {
	if v != nil {
		_c.SetFailureNote(*v)
	}
	return _c
}

// SetTargetCurrency sets the "target_currency" field.
func (_c *ProposalCreate) SetTargetCurrency(v string) *ProposalCreate {
	_c.mutation.SetTargetCurrency(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *ProposalCreate) SetGeneratedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableGeneratedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProposalCreate) SetCreatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableCreatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProposalCreate) SetUpdatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableUpdatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProposalCreate) SetID(v uuid.UUID) *ProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableID(v *uuid.UUID) *ProposalCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddIllustrationIDs adds the "illustrations" edge to the Illustration entity by IDs.
func (_c *ProposalCreate) AddIllustrationIDs(ids ...uuid.UUID) *ProposalCreate {
	_c.mutation.AddIllustrationIDs(ids...)
	return _c
}

// AddIllustrations adds the "illustrations" edges to the Illustration entity.
func (_c *ProposalCreate) AddIllustrations(v ...*Illustration) *ProposalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIllustrationIDs(ids...)
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (_c *ProposalCreate) AddAnalysisJobIDs(ids ...uuid.UUID) *ProposalCreate {
	_c.mutation.AddAnalysisJobIDs(ids...)
	return _c
}

// AddAnalysisJobs adds the "analysis_jobs" edges to the AnalysisJob entity.
func (_c *ProposalCreate) AddAnalysisJobs(v ...*AnalysisJob) *ProposalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisJobIDs(ids...)
}

// Mutation returns the ProposalMutation object of the builder.
func (_c *ProposalCreate) Mutation() *ProposalMutation {
	return _c.mutation
}

// Save creates the Proposal in the database.
func (_c *ProposalCreate) Save(ctx context.Context) (*Proposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalCreate) SaveX(ctx context.Context) *Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalCreate) defaults() {
	if _, ok := _c.mutation.ClientNeeds(); !ok {
		v := proposal.DefaultClientNeeds
		_c.mutation.SetClientNeeds(v)
	}
	if _, ok := _c.mutation.ProposalType(); !ok {
		v := proposal.DefaultProposalType
		_c.mutation.SetProposalType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := proposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FailedFrom(); !ok {
		v := proposal.DefaultFailedFrom
		_c.mutation.SetFailedFrom(v)
	}
	if _, ok := _c.mutation.FailureNote(); !ok {
		v := proposal.DefaultFailureNote
		_c.mutation.SetFailureNote(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := proposal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := proposal.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalCreate) check() error {
	if _, ok := _c.mutation.ClientName(); !ok {
		return &ValidationError{Name: "client_name", err: errors.New(`ent: missing required field "Proposal.client_name"`)}
	}
	if v, ok := _c.mutation.ClientName(); ok {
		if err := proposal.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "Proposal.client_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Proposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetCurrency(); !ok {
		return &ValidationError{Name: "target_currency", err: errors.New(`ent: missing required field "Proposal.target_currency"`)}
	}
	if v, ok := _c.mutation.TargetCurrency(); ok {
		if err := proposal.TargetCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "target_currency", err: fmt.Errorf(`ent: validator failed for field "Proposal.target_currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Proposal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Proposal.updated_at"`)}
	}
	return nil
}

func (_c *ProposalCreate) sqlSave(ctx context.Context) (*Proposal, error) {
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

func (_c *ProposalCreate) createSpec() (*Proposal, *sqlgraph.CreateSpec) {
	var (
		_node = &Proposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposal.Table, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(proposal.FieldClientName, field.TypeString, value)
		_node.ClientName = value
	}
	if value, ok := _c.mutation.ClientNeeds(); ok {
		_spec.SetField(proposal.FieldClientNeeds, field.TypeString, value)
		_node.ClientNeeds = value
	}
	if value, ok := _c.mutation.ProposalType(); ok {
		_spec.SetField(proposal.FieldProposalType, field.TypeString, value)
		_node.ProposalType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailedFrom(); ok {
		_spec.SetField(proposal.FieldFailedFrom, field.TypeString, value)
		_node.FailedFrom = value
	}
	if value, ok := _c.mutation.FailureNote(); ok {
		_spec.SetField(proposal.FieldFailureNote, field.TypeString, value)
		_node.FailureNote = value
	}
	if value, ok := _c.mutation.TargetCurrency(); ok {
		_spec.SetField(proposal.FieldTargetCurrency, field.TypeString, value)
		_node.TargetCurrency = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(proposal.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.IllustrationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   proposal.IllustrationsTable,
			Columns: []string{proposal.IllustrationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(illustration.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysisJobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   proposal.AnalysisJobsTable,
			Columns: []string{proposal.AnalysisJobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProposalCreateBulk is the builder for creating many Proposal entities in bulk.
type ProposalCreateBulk struct {
	config
	err      error
	builders []*ProposalCreate
}

// Save creates the Proposal entities in the database.
func (_c *ProposalCreateBulk) Save(ctx context.Context) ([]*Proposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Proposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalMutation)
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
func (_c *ProposalCreateBulk) SaveX(ctx context.Context) []*Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
