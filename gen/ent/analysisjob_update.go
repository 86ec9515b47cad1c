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
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// AnalysisJobUpdate is the builder for updating AnalysisJob entities.
type AnalysisJobUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdate) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *AnalysisJobUpdate) SetProposalID(v uuid.UUID) *AnalysisJobUpdate {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableProposalID(v *uuid.UUID) *AnalysisJobUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdate) SetStatus(v string) *AnalysisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStatus(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSelectedAges sets the "selected_ages" field.
func (_u *AnalysisJobUpdate) SetSelectedAges(v []int) *AnalysisJobUpdate {
	_u.mutation.SetSelectedAges(v)
	return _u
}

// AppendSelectedAges appends value to the "selected_ages" field.
func (_u *AnalysisJobUpdate) AppendSelectedAges(v []int) *AnalysisJobUpdate {
	_u.mutation.AppendSelectedAges(v)
	return _u
}

// ClearSelectedAges clears the value of the "selected_ages" field.
func (_u *AnalysisJobUpdate) ClearSelectedAges() *AnalysisJobUpdate {
	_u.mutation.ClearSelectedAges()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdate) SetErrorMessage(v string) *AnalysisJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableErrorMessage(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdate) ClearErrorMessage() *AnalysisJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdate) SetCreatedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdate) SetCompletedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdate) ClearCompletedAt() *AnalysisJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *AnalysisJobUpdate) SetProposal(v *Proposal) *AnalysisJobUpdate {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdate) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *AnalysisJobUpdate) ClearProposal() *AnalysisJobUpdate {
	_u.mutation.ClearProposal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.proposal"`)
	}
	return nil
}

func (_u *AnalysisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedAges(); ok {
		_spec.SetField(analysisjob.FieldSelectedAges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectedAges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldSelectedAges, value)
		})
	}
	if _u.mutation.SelectedAgesCleared() {
		_spec.ClearField(analysisjob.FieldSelectedAges, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisJobUpdateOne is the builder for updating a single AnalysisJob entity.
type AnalysisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// SetProposalID sets the "proposal_id" field.
func (_u *AnalysisJobUpdateOne) SetProposalID(v uuid.UUID) *AnalysisJobUpdateOne {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableProposalID(v *uuid.UUID) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdateOne) SetStatus(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStatus(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSelectedAges sets the "selected_ages" field.
func (_u *AnalysisJobUpdateOne) SetSelectedAges(v []int) *AnalysisJobUpdateOne {
	_u.mutation.SetSelectedAges(v)
	return _u
}

// AppendSelectedAges appends value to the "selected_ages" field.
func (_u *AnalysisJobUpdateOne) AppendSelectedAges(v []int) *AnalysisJobUpdateOne {
	_u.mutation.AppendSelectedAges(v)
	return _u
}

// ClearSelectedAges clears the value of the "selected_ages" field.
func (_u *AnalysisJobUpdateOne) ClearSelectedAges() *AnalysisJobUpdateOne {
	_u.mutation.ClearSelectedAges()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdateOne) SetErrorMessage(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableErrorMessage(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdateOne) ClearErrorMessage() *AnalysisJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdateOne) SetCreatedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdateOne) SetCompletedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdateOne) ClearCompletedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *AnalysisJobUpdateOne) SetProposal(v *Proposal) *AnalysisJobUpdateOne {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdateOne) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *AnalysisJobUpdateOne) ClearProposal() *AnalysisJobUpdateOne {
	_u.mutation.ClearProposal()
	return _u
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdateOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisJobUpdateOne) Select(field string, fields ...string) *AnalysisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisJob entity.
func (_u *AnalysisJobUpdateOne) Save(ctx context.Context) (*AnalysisJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) SaveX(ctx context.Context) *AnalysisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnalysisJob.proposal"`)
	}
	return nil
}

func (_u *AnalysisJobUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisjob.FieldID)
		for _, f := range fields {
			if !analysisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedAges(); ok {
		_spec.SetField(analysisjob.FieldSelectedAges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectedAges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldSelectedAges, value)
		})
	}
	if _u.mutation.SelectedAgesCleared() {
		_spec.ClearField(analysisjob.FieldSelectedAges, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
