// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// ProposalUpdate is the builder for updating Proposal entities.
type ProposalUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalMutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdate) Where(ps ...predicate.Proposal) *ProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *ProposalUpdate) SetClientName(v string) *ProposalUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableClientName(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetClientNeeds sets the "client_needs" field.
func (_u *ProposalUpdate) SetClientNeeds(v string) *ProposalUpdate {
	_u.mutation.SetClientNeeds(v)
	return _u
}

// SetNillableClientNeeds sets the "client_needs" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableClientNeeds(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetClientNeeds(*v)
	}
	return _u
}

// ClearClientNeeds clears the value of the "client_needs" field.
func (_u *ProposalUpdate) ClearClientNeeds() *ProposalUpdate {
	_u.mutation.ClearClientNeeds()
	return _u
}

// SetProposalType sets the "proposal_type" field.
func (_u *ProposalUpdate) SetProposalType(v string) *ProposalUpdate {
	_u.mutation.SetProposalType(v)
	return _u
}

// SetNillableProposalType sets the "proposal_type" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableProposalType(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetProposalType(*v)
	}
	return _u
}

// ClearProposalType clears the value of the "proposal_type" field.
func (_u *ProposalUpdate) ClearProposalType() *ProposalUpdate {
	_u.mutation.ClearProposalType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdate) SetStatus(v string) *ProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableStatus(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailedFrom sets the "failed_from" field.
func (_u *ProposalUpdate) SetFailedFrom(v string) *ProposalUpdate {
	_u.mutation.SetFailedFrom(v)
	return _u
}

// SetNillableFailedFrom sets the "failed_from" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableFailedFrom(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetFailedFrom(*v)
	}
	return _u
}

// ClearFailedFrom clears the value of the "failed_from" field.
func (_u *ProposalUpdate) ClearFailedFrom() *ProposalUpdate {
	_u.mutation.ClearFailedFrom()
	return _u
}

// SetFailureNote sets the "failure_note" field.
func (_u *ProposalUpdate) SetFailureNote(v string) *ProposalUpdate {
	_u.mutation.SetFailureNote(v)
	return _u
}

// SetNillableFailureNote sets the "failure_note" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableFailureNote(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetFailureNote(*v)
	}
	return _u
}

// ClearFailureNote clears the value of the "failure_note" field.
func (_u *ProposalUpdate) ClearFailureNote() *ProposalUpdate {
	_u.mutation.ClearFailureNote()
	return _u
}

// SetTargetCurrency sets the "target_currency" field.
func (_u *ProposalUpdate) SetTargetCurrency(v string) *ProposalUpdate {
	_u.mutation.SetTargetCurrency(v)
	return _u
}

// SetNillableTargetCurrency sets the "target_currency" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableTargetCurrency(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetTargetCurrency(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *ProposalUpdate) SetGeneratedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableGeneratedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *ProposalUpdate) ClearGeneratedAt() *ProposalUpdate {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProposalUpdate) SetCreatedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableCreatedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdate) SetUpdatedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIllustrationIDs adds the "illustrations" edge to the Illustration entity by IDs.
func (_u *ProposalUpdate) AddIllustrationIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.AddIllustrationIDs(ids...)
	return _u
}

// AddIllustrations adds the "illustrations" edges to the Illustration entity.
func (_u *ProposalUpdate) AddIllustrations(v ...*Illustration) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIllustrationIDs(ids...)
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (_u *ProposalUpdate) AddAnalysisJobIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.AddAnalysisJobIDs(ids...)
	return _u
}

// AddAnalysisJobs adds the "analysis_jobs" edges to the AnalysisJob entity.
func (_u *ProposalUpdate) AddAnalysisJobs(v ...*AnalysisJob) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisJobIDs(ids...)
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdate) Mutation() *ProposalMutation {
	return _u.mutation
}

// ClearIllustrations clears all "illustrations" edges to the Illustration entity.
func (_u *ProposalUpdate) ClearIllustrations() *ProposalUpdate {
	_u.mutation.ClearIllustrations()
	return _u
}

// RemoveIllustrationIDs removes the "illustrations" edge to Illustration entities by IDs.
func (_u *ProposalUpdate) RemoveIllustrationIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.RemoveIllustrationIDs(ids...)
	return _u
}

// RemoveIllustrations removes "illustrations" edges to Illustration entities.
func (_u *ProposalUpdate) RemoveIllustrations(v ...*Illustration) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIllustrationIDs(ids...)
}

// ClearAnalysisJobs clears all "analysis_jobs" edges to the AnalysisJob entity.
func (_u *ProposalUpdate) ClearAnalysisJobs() *ProposalUpdate {
	_u.mutation.ClearAnalysisJobs()
	return _u
}

// RemoveAnalysisJobIDs removes the "analysis_jobs" edge to AnalysisJob entities by IDs.
func (_u *ProposalUpdate) RemoveAnalysisJobIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.RemoveAnalysisJobIDs(ids...)
	return _u
}

// RemoveAnalysisJobs removes "analysis_jobs" edges to AnalysisJob entities.
func (_u *ProposalUpdate) RemoveAnalysisJobs(v ...*AnalysisJob) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdate) check() error {
	if v, ok := _u.mutation.ClientName(); ok {
		if err := proposal.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "Proposal.client_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetCurrency(); ok {
		if err := proposal.TargetCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "target_currency", err: fmt.Errorf(`ent: validator failed for field "Proposal.target_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(proposal.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientNeeds(); ok {
		_spec.SetField(proposal.FieldClientNeeds, field.TypeString, value)
	}
	if _u.mutation.ClientNeedsCleared() {
		_spec.ClearField(proposal.FieldClientNeeds, field.TypeString)
	}
	if value, ok := _u.mutation.ProposalType(); ok {
		_spec.SetField(proposal.FieldProposalType, field.TypeString, value)
	}
	if _u.mutation.ProposalTypeCleared() {
		_spec.ClearField(proposal.FieldProposalType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailedFrom(); ok {
		_spec.SetField(proposal.FieldFailedFrom, field.TypeString, value)
	}
	if _u.mutation.FailedFromCleared() {
		_spec.ClearField(proposal.FieldFailedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.FailureNote(); ok {
		_spec.SetField(proposal.FieldFailureNote, field.TypeString, value)
	}
	if _u.mutation.FailureNoteCleared() {
		_spec.ClearField(proposal.FieldFailureNote, field.TypeString)
	}
	if value, ok := _u.mutation.TargetCurrency(); ok {
		_spec.SetField(proposal.FieldTargetCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(proposal.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(proposal.FieldGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IllustrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIllustrationsIDs(); len(nodes) > 0 && !_u.mutation.IllustrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IllustrationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysisJobsIDs(); len(nodes) > 0 && !_u.mutation.AnalysisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalUpdateOne is the builder for updating a single Proposal entity.
type ProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalMutation
}

// SetClientName sets the "client_name" field.
func (_u *ProposalUpdateOne) SetClientName(v string) *ProposalUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableClientName(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetClientNeeds sets the "client_needs" field.
func (_u *ProposalUpdateOne) SetClientNeeds(v string) *ProposalUpdateOne {
	_u.mutation.SetClientNeeds(v)
	return _u
}

// SetNillableClientNeeds sets the "client_needs" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableClientNeeds(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetClientNeeds(*v)
	}
	return _u
}

// ClearClientNeeds clears the value of the "client_needs" field.
func (_u *ProposalUpdateOne) ClearClientNeeds() *ProposalUpdateOne {
	_u.mutation.ClearClientNeeds()
	return _u
}

// SetProposalType sets the "proposal_type" field.
func (_u *ProposalUpdateOne) SetProposalType(v string) *ProposalUpdateOne {
	_u.mutation.SetProposalType(v)
	return _u
}

// SetNillableProposalType sets the "proposal_type" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableProposalType(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetProposalType(*v)
	}
	return _u
}

// ClearProposalType clears the value of the "proposal_type" field.
func (_u *ProposalUpdateOne) ClearProposalType() *ProposalUpdateOne {
	_u.mutation.ClearProposalType()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdateOne) SetStatus(v string) *ProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableStatus(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailedFrom sets the "failed_from" field.
func (_u *ProposalUpdateOne) SetFailedFrom(v string) *ProposalUpdateOne {
	_u.mutation.SetFailedFrom(v)
	return _u
}

// SetNillableFailedFrom sets the "failed_from" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableFailedFrom(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetFailedFrom(*v)
	}
	return _u
}

// ClearFailedFrom clears the value of the "failed_from" field.
func (_u *ProposalUpdateOne) ClearFailedFrom() *ProposalUpdateOne {
	_u.mutation.ClearFailedFrom()
	return _u
}

// SetFailureNote sets the "failure_note" field.
func (_u *ProposalUpdateOne) SetFailureNote(v string) *ProposalUpdateOne {
	_u.mutation.SetFailureNote(v)
	return _u
}

// SetNillableFailureNote sets the "failure_note" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableFailureNote(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetFailureNote(*v)
	}
	return _u
}

// ClearFailureNote clears the value of the "failure_note" field.
func (_u *ProposalUpdateOne) ClearFailureNote() *ProposalUpdateOne {
	_u.mutation.ClearFailureNote()
	return _u
}

// SetTargetCurrency sets the "target_currency" field.
func (_u *ProposalUpdateOne) SetTargetCurrency(v string) *ProposalUpdateOne {
	_u.mutation.SetTargetCurrency(v)
	return _u
}

// SetNillableTargetCurrency sets the "target_currency" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableTargetCurrency(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetTargetCurrency(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *ProposalUpdateOne) SetGeneratedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableGeneratedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (_u *ProposalUpdateOne) ClearGeneratedAt() *ProposalUpdateOne {
	_u.mutation.ClearGeneratedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProposalUpdateOne) SetCreatedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableCreatedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdateOne) SetUpdatedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddIllustrationIDs adds the "illustrations" edge to the Illustration entity by IDs.
func (_u *ProposalUpdateOne) AddIllustrationIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.AddIllustrationIDs(ids...)
	return _u
}

// AddIllustrations adds the "illustrations" edges to the Illustration entity.
func (_u *ProposalUpdateOne) AddIllustrations(v ...*Illustration) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIllustrationIDs(ids...)
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (_u *ProposalUpdateOne) AddAnalysisJobIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.AddAnalysisJobIDs(ids...)
	return _u
}

// AddAnalysisJobs adds the "analysis_jobs" edges to the AnalysisJob entity.
func (_u *ProposalUpdateOne) AddAnalysisJobs(v ...*AnalysisJob) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisJobIDs(ids...)
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdateOne) Mutation() *ProposalMutation {
	return _u.mutation
}

// ClearIllustrations clears all "illustrations" edges to the Illustration entity.
func (_u *ProposalUpdateOne) ClearIllustrations() *ProposalUpdateOne {
	_u.mutation.ClearIllustrations()
	return _u
}

// RemoveIllustrationIDs removes the "illustrations" edge to Illustration entities by IDs.
func (_u *ProposalUpdateOne) RemoveIllustrationIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.RemoveIllustrationIDs(ids...)
	return _u
}

// RemoveIllustrations removes "illustrations" edges to Illustration entities.
func (_u *ProposalUpdateOne) RemoveIllustrations(v ...*Illustration) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIllustrationIDs(ids...)
}

// ClearAnalysisJobs clears all "analysis_jobs" edges to the AnalysisJob entity.
func (_u *ProposalUpdateOne) ClearAnalysisJobs() *ProposalUpdateOne {
	_u.mutation.ClearAnalysisJobs()
	return _u
}

// RemoveAnalysisJobIDs removes the "analysis_jobs" edge to AnalysisJob entities by IDs.
func (_u *ProposalUpdateOne) RemoveAnalysisJobIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.RemoveAnalysisJobIDs(ids...)
	return _u
}

// RemoveAnalysisJobs removes "analysis_jobs" edges to AnalysisJob entities.
func (_u *ProposalUpdateOne) RemoveAnalysisJobs(v ...*AnalysisJob) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisJobIDs(ids...)
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdateOne) Where(ps ...predicate.Proposal) *ProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalUpdateOne) Select(field string, fields ...string) *ProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Proposal entity.
func (_u *ProposalUpdateOne) Save(ctx context.Context) (*Proposal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdateOne) SaveX(ctx context.Context) *Proposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdateOne) check() error {
	if v, ok := _u.mutation.ClientName(); ok {
		if err := proposal.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "Proposal.client_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetCurrency(); ok {
		if err := proposal.TargetCurrencyValidator(v); err != nil {
			return &ValidationError{Name: "target_currency", err: fmt.Errorf(`ent: validator failed for field "Proposal.target_currency": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdateOne) sqlSave(ctx context.Context) (_node *Proposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Proposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposal.FieldID)
		for _, f := range fields {
			if !proposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposal.FieldID {
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
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(proposal.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientNeeds(); ok {
		_spec.SetField(proposal.FieldClientNeeds, field.TypeString, value)
	}
	if _u.mutation.ClientNeedsCleared() {
		_spec.ClearField(proposal.FieldClientNeeds, field.TypeString)
	}
	if value, ok := _u.mutation.ProposalType(); ok {
		_spec.SetField(proposal.FieldProposalType, field.TypeString, value)
	}
	if _u.mutation.ProposalTypeCleared() {
		_spec.ClearField(proposal.FieldProposalType, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailedFrom(); ok {
		_spec.SetField(proposal.FieldFailedFrom, field.TypeString, value)
	}
	if _u.mutation.FailedFromCleared() {
		_spec.ClearField(proposal.FieldFailedFrom, field.TypeString)
	}
	if value, ok := _u.mutation.FailureNote(); ok {
		_spec.SetField(proposal.FieldFailureNote, field.TypeString, value)
	}
	if _u.mutation.FailureNoteCleared() {
		_spec.ClearField(proposal.FieldFailureNote, field.TypeString)
	}
	if value, ok := _u.mutation.TargetCurrency(); ok {
		_spec.SetField(proposal.FieldTargetCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(proposal.FieldGeneratedAt, field.TypeTime, value)
	}
	if _u.mutation.GeneratedAtCleared() {
		_spec.ClearField(proposal.FieldGeneratedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.IllustrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIllustrationsIDs(); len(nodes) > 0 && !_u.mutation.IllustrationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IllustrationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysisJobsIDs(); len(nodes) > 0 && !_u.mutation.AnalysisJobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisJobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Proposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
