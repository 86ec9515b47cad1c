// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/google/uuid"
)

// InsuranceProductCreate is the builder for creating a InsuranceProduct entity.
type InsuranceProductCreate struct {
	config
	mutation *InsuranceProductMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *InsuranceProductCreate) SetName(v string) *InsuranceProductCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *InsuranceProductCreate) SetProvider(v string) *InsuranceProductCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *InsuranceProductCreate) SetNormalizedName(v string) *InsuranceProductCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetNormalizedProvider sets the "normalized_provider" field.
func (_c *InsuranceProductCreate) SetNormalizedProvider(v string) *InsuranceProductCreate {
	_c.mutation.SetNormalizedProvider(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InsuranceProductCreate) SetCategory(v string) *InsuranceProductCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *InsuranceProductCreate) SetNillableCategory(v *string) *InsuranceProductCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *InsuranceProductCreate) SetCurrency(v string) *InsuranceProductCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *InsuranceProductCreate) SetNillableCurrency(v *string) *InsuranceProductCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsuranceProductCreate) SetCreatedAt(v time.Time) *InsuranceProductCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsuranceProductCreate) SetNillableCreatedAt(v *time.Time) *InsuranceProductCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InsuranceProductCreate) SetUpdatedAt(v time.Time) *InsuranceProductCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InsuranceProductCreate) SetNillableUpdatedAt(v *time.Time) *InsuranceProductCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsuranceProductCreate) SetID(v uuid.UUID) *InsuranceProductCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InsuranceProductCreate) SetNillableID(v *uuid.UUID) *InsuranceProductCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSelectionIDs adds the "selections" edge to the Illustration entity by IDs.
func (_c *InsuranceProductCreate) AddSelectionIDs(ids ...uuid.UUID) *InsuranceProductCreate {
	_c.mutation.AddSelectionIDs(ids...)
	return _c
}

// AddSelections adds the "selections" edges to the Illustration entity.
func (_c *InsuranceProductCreate) AddSelections(v ...*Illustration) *InsuranceProductCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSelectionIDs(ids...)
}

// Mutation returns the InsuranceProductMutation object of the builder.
func (_c *InsuranceProductCreate) Mutation() *InsuranceProductMutation {
	return _c.mutation
}

// Save creates the InsuranceProduct in the database.
func (_c *InsuranceProductCreate) Save(ctx context.Context) (*InsuranceProduct, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsuranceProductCreate) SaveX(ctx context.Context) *InsuranceProduct {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsuranceProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsuranceProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsuranceProductCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := insuranceproduct.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := insuranceproduct.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insuranceproduct.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := insuranceproduct.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := insuranceproduct.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsuranceProductCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "InsuranceProduct.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := insuranceproduct.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "InsuranceProduct.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := insuranceproduct.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "InsuranceProduct.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := insuranceproduct.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedProvider(); !ok {
		return &ValidationError{Name: "normalized_provider", err: errors.New(`ent: missing required field "InsuranceProduct.normalized_provider"`)}
	}
	if v, ok := _c.mutation.NormalizedProvider(); ok {
		if err := insuranceproduct.NormalizedProviderValidator(v); err != nil {
			return &ValidationError{Name: "normalized_provider", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.normalized_provider": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := insuranceproduct.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "InsuranceProduct.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InsuranceProduct.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InsuranceProduct.updated_at"`)}
	}
	return nil
}

func (_c *InsuranceProductCreate) sqlSave(ctx context.Context) (*InsuranceProduct, error) {
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

func (_c *InsuranceProductCreate) createSpec() (*InsuranceProduct, *sqlgraph.CreateSpec) {
	var (
		_node = &InsuranceProduct{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insuranceproduct.Table, sqlgraph.NewFieldSpec(insuranceproduct.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(insuranceproduct.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(insuranceproduct.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(insuranceproduct.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.NormalizedProvider(); ok {
		_spec.SetField(insuranceproduct.FieldNormalizedProvider, field.TypeString, value)
		_node.NormalizedProvider = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(insuranceproduct.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(insuranceproduct.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insuranceproduct.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(insuranceproduct.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SelectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InsuranceProductCreateBulk is the builder for creating many InsuranceProduct entities in bulk.
type InsuranceProductCreateBulk struct {
	config
	err      error
	builders []*InsuranceProductCreate
}

// Save creates the InsuranceProduct entities in the database.
func (_c *InsuranceProductCreateBulk) Save(ctx context.Context) ([]*InsuranceProduct, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsuranceProduct, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsuranceProductMutation)
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
func (_c *InsuranceProductCreateBulk) SaveX(ctx context.Context) []*InsuranceProduct {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsuranceProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsuranceProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
