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
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// InsuranceProductUpdate is the builder for updating InsuranceProduct entities.
type InsuranceProductUpdate struct {
	config
	hooks    []Hook
	mutation *InsuranceProductMutation
}

// Where appends a list predicates to the InsuranceProductUpdate builder.
func (_u *InsuranceProductUpdate) Where(ps ...predicate.InsuranceProduct) *InsuranceProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *InsuranceProductUpdate) SetName(v string) *InsuranceProductUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InsuranceProductUpdate) SetNillableName(v *string) *InsuranceProductUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *InsuranceProductUpdate) SetProvider(v string) *InsuranceProductUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *InsuranceProductUpdate) SetNillableProvider(v *string) *InsuranceProductUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *InsuranceProductUpdate) SetNormalizedName(v string) *InsuranceProductUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *InsuranceProductUpdate) SetNillableNormalizedName(v *string) *InsuranceProductUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetNormalizedProvider sets the "normalized_provider" field.
func (_u *InsuranceProductUpdate) SetNormalizedProvider(v string) *InsuranceProductUpdate {
	_u.mutation.SetNormalizedProvider(v)
	return _u
}

// SetNillableNormalizedProvider sets the "normalized_provider" field if the given value is not nil.
func (_u *InsuranceProductUpdate) SetNillableNormalizedProvider(v *string) *InsuranceProductUpdate {
	if v != nil {
		_u.SetNormalizedProvider(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InsuranceProductUpdate) SetCategory(v string) *InsuranceProductUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsuranceProductUpdate) SetNillableCategory(v *string) *InsuranceProductUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InsuranceProductUpdate) ClearCategory() *InsuranceProductUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InsuranceProductUpdate) SetCurrency(v string) *InsuranceProductUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InsuranceProductUpdate) SetNillableCurrency(v *string) *InsuranceProductUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InsuranceProductUpdate) ClearCurrency() *InsuranceProductUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InsuranceProductUpdate) SetCreatedAt(v time.Time) *InsuranceProductUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InsuranceProductUpdate) SetNillableCreatedAt(v *time.Time) *InsuranceProductUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsuranceProductUpdate) SetUpdatedAt(v time.Time) *InsuranceProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSelectionIDs adds the "selections" edge to the Illustration entity by IDs.
func (_u *InsuranceProductUpdate) AddSelectionIDs(ids ...uuid.UUID) *InsuranceProductUpdate {
	_u.mutation.AddSelectionIDs(ids...)
	return _u
}

// AddSelections adds the "selections" edges to the Illustration entity.
func (_u *InsuranceProductUpdate) AddSelections(v ...*Illustration) *InsuranceProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSelectionIDs(ids...)
}

// Mutation returns the InsuranceProductMutation object of the builder.
func (_u *InsuranceProductUpdate) Mutation() *InsuranceProductMutation {
	return _u.mutation
}

// ClearSelections clears all "selections" edges to the Illustration entity.
func (_u *InsuranceProductUpdate) ClearSelections() *InsuranceProductUpdate {
	_u.mutation.ClearSelections()
	return _u
}

// RemoveSelectionIDs removes the "selections" edge to Illustration entities by IDs.
func (_u *InsuranceProductUpdate) RemoveSelectionIDs(ids ...uuid.UUID) *InsuranceProductUpdate {
	_u.mutation.RemoveSelectionIDs(ids...)
	return _u
}

// RemoveSelections removes "selections" edges to Illustration entities.
func (_u *InsuranceProductUpdate) RemoveSelections(v ...*Illustration) *InsuranceProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSelectionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsuranceProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsuranceProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsuranceProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsuranceProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsuranceProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insuranceproduct.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsuranceProductUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := insuranceproduct.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := insuranceproduct.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := insuranceproduct.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedProvider(); ok {
		if err := insuranceproduct.NormalizedProviderValidator(v); err != nil {
			return &ValidationError{Name: "normalized_provider", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.normalized_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := insuranceproduct.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *InsuranceProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insuranceproduct.Table, insuranceproduct.Columns, sqlgraph.NewFieldSpec(insuranceproduct.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(insuranceproduct.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(insuranceproduct.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(insuranceproduct.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedProvider(); ok {
		_spec.SetField(insuranceproduct.FieldNormalizedProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insuranceproduct.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(insuranceproduct.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(insuranceproduct.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(insuranceproduct.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(insuranceproduct.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insuranceproduct.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SelectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insuranceproduct.SelectionsTable,
			Columns: []string{insuranceproduct.SelectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(illustration.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSelectionsIDs(); len(nodes) > 0 && !_u.mutation.SelectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insuranceproduct.SelectionsTable,
			Columns: []string{insuranceproduct.SelectionsColumn},
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
	if nodes := _u.mutation.SelectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insuranceproduct.SelectionsTable,
			Columns: []string{insuranceproduct.SelectionsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insuranceproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsuranceProductUpdateOne is the builder for updating a single InsuranceProduct entity.
type InsuranceProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsuranceProductMutation
}

// SetName sets the "name" field.
func (_u *InsuranceProductUpdateOne) SetName(v string) *InsuranceProductUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *InsuranceProductUpdateOne) SetNillableName(v *string) *InsuranceProductUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *InsuranceProductUpdateOne) SetProvider(v string) *InsuranceProductUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *InsuranceProductUpdateOne) SetNillableProvider(v *string) *InsuranceProductUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *InsuranceProductUpdateOne) SetNormalizedName(v string) *InsuranceProductUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *InsuranceProductUpdateOne) SetNillableNormalizedName(v *string) *InsuranceProductUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetNormalizedProvider sets the "normalized_provider" field.
func (_u *InsuranceProductUpdateOne) SetNormalizedProvider(v string) *InsuranceProductUpdateOne {
	_u.mutation.SetNormalizedProvider(v)
	return _u
}

// SetNillableNormalizedProvider sets the "normalized_provider" field if the given value is not nil.
func (_u *InsuranceProductUpdateOne) SetNillableNormalizedProvider(v *string) *InsuranceProductUpdateOne {
	if v != nil {
		_u.SetNormalizedProvider(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InsuranceProductUpdateOne) SetCategory(v string) *InsuranceProductUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsuranceProductUpdateOne) SetNillableCategory(v *string) *InsuranceProductUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *InsuranceProductUpdateOne) ClearCategory() *InsuranceProductUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InsuranceProductUpdateOne) SetCurrency(v string) *InsuranceProductUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InsuranceProductUpdateOne) SetNillableCurrency(v *string) *InsuranceProductUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InsuranceProductUpdateOne) ClearCurrency() *InsuranceProductUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InsuranceProductUpdateOne) SetCreatedAt(v time.Time) *InsuranceProductUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InsuranceProductUpdateOne) SetNillableCreatedAt(v *time.Time) *InsuranceProductUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsuranceProductUpdateOne) SetUpdatedAt(v time.Time) *InsuranceProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSelectionIDs adds the "selections" edge to the Illustration entity by IDs.
func (_u *InsuranceProductUpdateOne) AddSelectionIDs(ids ...uuid.UUID) *InsuranceProductUpdateOne {
	_u.mutation.AddSelectionIDs(ids...)
	return _u
}

// AddSelections adds the "selections" edges to the Illustration entity.
func (_u *InsuranceProductUpdateOne) AddSelections(v ...*Illustration) *InsuranceProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSelectionIDs(ids...)
}

// Mutation returns the InsuranceProductMutation object of the builder.
func (_u *InsuranceProductUpdateOne) Mutation() *InsuranceProductMutation {
	return _u.mutation
}

// ClearSelections clears all "selections" edges to the Illustration entity.
func (_u *InsuranceProductUpdateOne) ClearSelections() *InsuranceProductUpdateOne {
	_u.mutation.ClearSelections()
	return _u
}

// RemoveSelectionIDs removes the "selections" edge to Illustration entities by IDs.
func (_u *InsuranceProductUpdateOne) RemoveSelectionIDs(ids ...uuid.UUID) *InsuranceProductUpdateOne {
	_u.mutation.RemoveSelectionIDs(ids...)
	return _u
}

// RemoveSelections removes "selections" edges to Illustration entities.
func (_u *InsuranceProductUpdateOne) RemoveSelections(v ...*Illustration) *InsuranceProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSelectionIDs(ids...)
}

// Where appends a list predicates to the InsuranceProductUpdate builder.
func (_u *InsuranceProductUpdateOne) Where(ps ...predicate.InsuranceProduct) *InsuranceProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsuranceProductUpdateOne) Select(field string, fields ...string) *InsuranceProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsuranceProduct entity.
func (_u *InsuranceProductUpdateOne) Save(ctx context.Context) (*InsuranceProduct, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsuranceProductUpdateOne) SaveX(ctx context.Context) *InsuranceProduct {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsuranceProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsuranceProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsuranceProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insuranceproduct.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsuranceProductUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := insuranceproduct.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := insuranceproduct.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := insuranceproduct.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedProvider(); ok {
		if err := insuranceproduct.NormalizedProviderValidator(v); err != nil {
			return &ValidationError{Name: "normalized_provider", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.normalized_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := insuranceproduct.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *InsuranceProductUpdateOne) sqlSave(ctx context.Context) (_node *InsuranceProduct, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insuranceproduct.Table, insuranceproduct.Columns, sqlgraph.NewFieldSpec(insuranceproduct.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsuranceProduct.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insuranceproduct.FieldID)
		for _, f := range fields {
			if !insuranceproduct.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insuranceproduct.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(insuranceproduct.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(insuranceproduct.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(insuranceproduct.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedProvider(); ok {
		_spec.SetField(insuranceproduct.FieldNormalizedProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insuranceproduct.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(insuranceproduct.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(insuranceproduct.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(insuranceproduct.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(insuranceproduct.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insuranceproduct.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SelectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insuranceproduct.SelectionsTable,
			Columns: []string{insuranceproduct.SelectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(illustration.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSelectionsIDs(); len(nodes) > 0 && !_u.mutation.SelectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insuranceproduct.SelectionsTable,
			Columns: []string{insuranceproduct.SelectionsColumn},
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
	if nodes := _u.mutation.SelectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insuranceproduct.SelectionsTable,
			Columns: []string{insuranceproduct.SelectionsColumn},
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
	_node = &InsuranceProduct{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insuranceproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
