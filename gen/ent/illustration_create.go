// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// IllustrationCreate is the builder for creating a Illustration entity.
type IllustrationCreate struct {
	config
	mutation *IllustrationMutation
	hooks    []Hook
}

// SetProposalID sets the "proposal_id" field.
func (_c *IllustrationCreate) SetProposalID(v uuid.UUID) *IllustrationCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetSelectedInsuranceID sets the "selected_insurance_id" field.
func (_c *IllustrationCreate) SetSelectedInsuranceID(v uuid.UUID) *IllustrationCreate {
	_c.mutation.SetSelectedInsuranceID(v)
	return _c
}

// SetNillableSelectedInsuranceID sets the "selected_insurance_id" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableSelectedInsuranceID(v *uuid.UUID) *IllustrationCreate {
	if v != nil {
		_c.SetSelectedInsuranceID(*v)
	}
	return _c
}

// SetOrder sets the "order" field.
func (_c *IllustrationCreate) SetOrder(v int) *IllustrationCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *IllustrationCreate) SetOriginalFilename(v string) *IllustrationCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *IllustrationCreate) SetFileSizeBytes(v int) *IllustrationCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetBlobID sets the "blob_id" field.
func (_c *IllustrationCreate) SetBlobID(v string) *IllustrationCreate {
	_c.mutation.SetBlobID(v)
	return _c
}

// SetExtractionStatus sets the "extraction_status" field.
func (_c *IllustrationCreate) SetExtractionStatus(v string) *IllustrationCreate {
	_c.mutation.SetExtractionStatus(v)
	return _c
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableExtractionStatus(v *string) *IllustrationCreate {
	if v != nil {
		_c.SetExtractionStatus(*v)
	}
	return _c
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_c *IllustrationCreate) SetExtractionConfidence(v float32) *IllustrationCreate {
	_c.mutation.SetExtractionConfidence(v)
	return _c
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableExtractionConfidence(v *float32) *IllustrationCreate {
	if v != nil {
		_c.SetExtractionConfidence(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *IllustrationCreate) SetReviewStatus(v string) *IllustrationCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableReviewStatus(v *string) *IllustrationCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetProcessingNotes sets the "processing_notes" field.
func (_c *IllustrationCreate) SetProcessingNotes(v string) *IllustrationCreate {
	_c.mutation.SetProcessingNotes(v)
	return _c
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableProcessingNotes(v *string) *IllustrationCreate {
	if v != nil {
		_c.SetProcessingNotes(*v)
	}
	return _c
}

// SetExtractedData sets the "extracted_data" field.
func (_c *IllustrationCreate) SetExtractedData(v json.RawMessage) *IllustrationCreate {
	_c.mutation.SetExtractedData(v)
	return _c
}

// SetDatabaseMatch sets the "database_match" field.
func (_c *IllustrationCreate) SetDatabaseMatch(v json.RawMessage) *IllustrationCreate {
	_c.mutation.SetDatabaseMatch(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IllustrationCreate) SetCreatedAt(v time.Time) *IllustrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableCreatedAt(v *time.Time) *IllustrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IllustrationCreate) SetUpdatedAt(v time.Time) *IllustrationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableUpdatedAt(v *time.Time) *IllustrationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IllustrationCreate) SetID(v uuid.UUID) *IllustrationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IllustrationCreate) SetNillableID(v *uuid.UUID) *IllustrationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *IllustrationCreate) SetProposal(v *Proposal) *IllustrationCreate {
	return _c.SetProposalID(v.ID)
}

// SetSelectedProductID sets the "selected_product" edge to the InsuranceProduct entity by ID.
func (_c *IllustrationCreate) SetSelectedProductID(id uuid.UUID) *IllustrationCreate {
	_c.mutation.SetSelectedProductID(id)
	return _c
}

// SetNillableSelectedProductID sets the "selected_product" edge to the InsuranceProduct entity by ID if the given value is not nil.
func (_c *IllustrationCreate) SetNillableSelectedProductID(id *uuid.UUID) *IllustrationCreate {
	if id != nil {
		_c = _c.SetSelectedProductID(*id)
	}
	return _c
}

// SetSelectedProduct sets the "selected_product" edge to the InsuranceProduct entity.
func (_c *IllustrationCreate) SetSelectedProduct(v *InsuranceProduct) *IllustrationCreate {
	return _c.SetSelectedProductID(v.ID)
}

// Mutation returns the IllustrationMutation object of the builder.
func (_c *IllustrationCreate) Mutation() *IllustrationMutation {
	return _c.mutation
}

// Save creates the Illustration in the database.
func (_c *IllustrationCreate) Save(ctx context.Context) (*Illustration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IllustrationCreate) SaveX(ctx context.Context) *Illustration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IllustrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IllustrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IllustrationCreate) defaults() {
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		v := illustration.DefaultExtractionStatus
		_c.mutation.SetExtractionStatus(v)
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		v := illustration.DefaultExtractionConfidence
		_c.mutation.SetExtractionConfidence(v)
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := illustration.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.ProcessingNotes(); !ok {
		v := illustration.DefaultProcessingNotes
		_c.mutation.SetProcessingNotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := illustration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := illustration.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := illustration.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IllustrationCreate) check() error {
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "Illustration.proposal_id"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "Illustration.order"`)}
	}
	if v, ok := _c.mutation.Order(); ok {
		if err := illustration.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "Illustration.order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "Illustration.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := illustration.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Illustration.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSizeBytes(); !ok {
		return &ValidationError{Name: "file_size_bytes", err: errors.New(`ent: missing required field "Illustration.file_size_bytes"`)}
	}
	if v, ok := _c.mutation.FileSizeBytes(); ok {
		if err := illustration.FileSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "file_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Illustration.file_size_bytes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlobID(); !ok {
		return &ValidationError{Name: "blob_id", err: errors.New(`ent: missing required field "Illustration.blob_id"`)}
	}
	if v, ok := _c.mutation.BlobID(); ok {
		if err := illustration.BlobIDValidator(v); err != nil {
			return &ValidationError{Name: "blob_id", err: fmt.Errorf(`ent: validator failed for field "Illustration.blob_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionStatus(); !ok {
		return &ValidationError{Name: "extraction_status", err: errors.New(`ent: missing required field "Illustration.extraction_status"`)}
	}
	if v, ok := _c.mutation.ExtractionStatus(); ok {
		if err := illustration.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Illustration.extraction_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractionConfidence(); !ok {
		return &ValidationError{Name: "extraction_confidence", err: errors.New(`ent: missing required field "Illustration.extraction_confidence"`)}
	}
	if v, ok := _c.mutation.ExtractionConfidence(); ok {
		if err := illustration.ExtractionConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "extraction_confidence", err: fmt.Errorf(`ent: validator failed for field "Illustration.extraction_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "Illustration.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := illustration.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "Illustration.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Illustration.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Illustration.updated_at"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "Illustration.proposal"`)}
	}
	return nil
}

func (_c *IllustrationCreate) sqlSave(ctx context.Context) (*Illustration, error) {
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

func (_c *IllustrationCreate) createSpec() (*Illustration, *sqlgraph.CreateSpec) {
	var (
		_node = &Illustration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(illustration.Table, sqlgraph.NewFieldSpec(illustration.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(illustration.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(illustration.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(illustration.FieldFileSizeBytes, field.TypeInt, value)
		_node.FileSizeBytes = value
	}
	if value, ok := _c.mutation.BlobID(); ok {
		_spec.SetField(illustration.FieldBlobID, field.TypeString, value)
		_node.BlobID = value
	}
	if value, ok := _c.mutation.ExtractionStatus(); ok {
		_spec.SetField(illustration.FieldExtractionStatus, field.TypeString, value)
		_node.ExtractionStatus = value
	}
	if value, ok := _c.mutation.ExtractionConfidence(); ok {
		_spec.SetField(illustration.FieldExtractionConfidence, field.TypeFloat32, value)
		_node.ExtractionConfidence = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(illustration.FieldReviewStatus, field.TypeString, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ProcessingNotes(); ok {
		_spec.SetField(illustration.FieldProcessingNotes, field.TypeString, value)
		_node.ProcessingNotes = value
	}
	if value, ok := _c.mutation.ExtractedData(); ok {
		_spec.SetField(illustration.FieldExtractedData, field.TypeJSON, value)
		_node.ExtractedData = value
	}
	if value, ok := _c.mutation.DatabaseMatch(); ok {
		_spec.SetField(illustration.FieldDatabaseMatch, field.TypeJSON, value)
		_node.DatabaseMatch = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(illustration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(illustration.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   illustration.ProposalTable,
			Columns: []string{illustration.ProposalColumn},
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
	if nodes := _c.mutation.SelectedProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   illustration.SelectedProductTable,
			Columns: []string{illustration.SelectedProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insuranceproduct.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SelectedInsuranceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IllustrationCreateBulk is the builder for creating many Illustration entities in bulk.
type IllustrationCreateBulk struct {
	config
	err      error
	builders []*IllustrationCreate
}

// Save creates the Illustration entities in the database.
func (_c *IllustrationCreateBulk) Save(ctx context.Context) ([]*Illustration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Illustration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IllustrationMutation)
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
func (_c *IllustrationCreateBulk) SaveX(ctx context.Context) []*Illustration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IllustrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IllustrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
