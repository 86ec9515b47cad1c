// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
)

// AnalysisJobDelete is the builder for deleting a AnalysisJob entity.
type AnalysisJobDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobDelete builder.
func (_d *AnalysisJobDelete) Where(ps ...predicate.AnalysisJob) *AnalysisJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisJobDeleteOne is the builder for deleting a single AnalysisJob entity.
type AnalysisJobDeleteOne struct {
	_d *AnalysisJobDelete
}

// Where appends a list predicates to the AnalysisJobDelete builder.
func (_d *AnalysisJobDeleteOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
