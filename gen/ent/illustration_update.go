// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// IllustrationUpdate is the builder for updating Illustration entities.
type IllustrationUpdate struct {
	config
	hooks    []Hook
	mutation *IllustrationMutation
}

// Where appends a list predicates to the IllustrationUpdate builder.
func (_u *IllustrationUpdate) Where(ps ...predicate.Illustration) *IllustrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *IllustrationUpdate) SetProposalID(v uuid.UUID) *IllustrationUpdate {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableProposalID(v *uuid.UUID) *IllustrationUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetSelectedInsuranceID sets the "selected_insurance_id" field.
func (_u *IllustrationUpdate) SetSelectedInsuranceID(v uuid.UUID) *IllustrationUpdate {
	_u.mutation.SetSelectedInsuranceID(v)
	return _u
}

// SetNillableSelectedInsuranceID sets the "selected_insurance_id" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableSelectedInsuranceID(v *uuid.UUID) *IllustrationUpdate {
	if v != nil {
		_u.SetSelectedInsuranceID(*v)
	}
	return _u
}

// ClearSelectedInsuranceID clears the value of the "selected_insurance_id" field.
func (_u *IllustrationUpdate) ClearSelectedInsuranceID() *IllustrationUpdate {
	_u.mutation.ClearSelectedInsuranceID()
	return _u
}

// SetOrder sets the "order" field.
func (_u *IllustrationUpdate) SetOrder(v int) *IllustrationUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableOrder(v *int) *IllustrationUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *IllustrationUpdate) AddOrder(v int) *IllustrationUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *IllustrationUpdate) SetOriginalFilename(v string) *IllustrationUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableOriginalFilename(v *string) *IllustrationUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *IllustrationUpdate) SetFileSizeBytes(v int) *IllustrationUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableFileSizeBytes(v *int) *IllustrationUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *IllustrationUpdate) AddFileSizeBytes(v int) *IllustrationUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// SetBlobID sets the "blob_id" field.
func (_u *IllustrationUpdate) SetBlobID(v string) *IllustrationUpdate {
	_u.mutation.SetBlobID(v)
	return _u
}

// SetNillableBlobID sets the "blob_id" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableBlobID(v *string) *IllustrationUpdate {
	if v != nil {
		_u.SetBlobID(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *IllustrationUpdate) SetExtractionStatus(v string) *IllustrationUpdate {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableExtractionStatus(v *string) *IllustrationUpdate {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *IllustrationUpdate) SetExtractionConfidence(v float32) *IllustrationUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableExtractionConfidence(v *float32) *IllustrationUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *IllustrationUpdate) AddExtractionConfidence(v float32) *IllustrationUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *IllustrationUpdate) SetReviewStatus(v string) *IllustrationUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableReviewStatus(v *string) *IllustrationUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetProcessingNotes sets the "processing_notes" field.
func (_u *IllustrationUpdate) SetProcessingNotes(v string) *IllustrationUpdate {
	_u.mutation.SetProcessingNotes(v)
	return _u
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableProcessingNotes(v *string) *IllustrationUpdate {
	if v != nil {
		_u.SetProcessingNotes(*v)
	}
	return _u
}

// ClearProcessingNotes clears the value of the "processing_notes" field.
func (_u *IllustrationUpdate) ClearProcessingNotes() *IllustrationUpdate {
	_u.mutation.ClearProcessingNotes()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *IllustrationUpdate) SetExtractedData(v json.RawMessage) *IllustrationUpdate {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *IllustrationUpdate) AppendExtractedData(v json.RawMessage) *IllustrationUpdate {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *IllustrationUpdate) ClearExtractedData() *IllustrationUpdate {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetDatabaseMatch sets the "database_match" field.
func (_u *IllustrationUpdate) SetDatabaseMatch(v json.RawMessage) *IllustrationUpdate {
	_u.mutation.SetDatabaseMatch(v)
	return _u
}

// AppendDatabaseMatch appends value to the "database_match" field.
func (_u *IllustrationUpdate) AppendDatabaseMatch(v json.RawMessage) *IllustrationUpdate {
	_u.mutation.AppendDatabaseMatch(v)
	return _u
}

// ClearDatabaseMatch clears the value of the "database_match" field.
func (_u *IllustrationUpdate) ClearDatabaseMatch() *IllustrationUpdate {
	_u.mutation.ClearDatabaseMatch()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IllustrationUpdate) SetCreatedAt(v time.Time) *IllustrationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableCreatedAt(v *time.Time) *IllustrationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IllustrationUpdate) SetUpdatedAt(v time.Time) *IllustrationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *IllustrationUpdate) SetProposal(v *Proposal) *IllustrationUpdate {
	return _u.SetProposalID(v.ID)
}

// SetSelectedProductID sets the "selected_product" edge to the InsuranceProduct entity by ID.
func (_u *IllustrationUpdate) SetSelectedProductID(id uuid.UUID) *IllustrationUpdate {
	_u.mutation.SetSelectedProductID(id)
	return _u
}

// SetNillableSelectedProductID sets the "selected_product" edge to the InsuranceProduct entity by ID if the given value is not nil.
func (_u *IllustrationUpdate) SetNillableSelectedProductID(id *uuid.UUID) *IllustrationUpdate {
	if id != nil {
		_u = _u.SetSelectedProductID(*id)
	}
	return _u
}

// SetSelectedProduct sets the "selected_product" edge to the InsuranceProduct entity.
func (_u *IllustrationUpdate) SetSelectedProduct(v *InsuranceProduct) *IllustrationUpdate {
	return _u.SetSelectedProductID(v.ID)
}

// Mutation returns the IllustrationMutation object of the builder.
func (_u *IllustrationUpdate) Mutation() *IllustrationMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *IllustrationUpdate) ClearProposal() *IllustrationUpdate {
	_u.mutation.ClearProposal()
	return _u
}

// ClearSelectedProduct clears the "selected_product" edge to the InsuranceProduct entity.
func (_u *IllustrationUpdate) ClearSelectedProduct() *IllustrationUpdate {
	_u.mutation.ClearSelectedProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IllustrationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IllustrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IllustrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IllustrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IllustrationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := illustration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IllustrationUpdate) check() error {
	if v, ok := _u.mutation.Order(); ok {
		if err := illustration.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "Illustration.order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := illustration.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Illustration.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSizeBytes(); ok {
		if err := illustration.FileSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "file_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Illustration.file_size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobID(); ok {
		if err := illustration.BlobIDValidator(v); err != nil {
			return &ValidationError{Name: "blob_id", err: fmt.Errorf(`ent: validator failed for field "Illustration.blob_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := illustration.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Illustration.extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionConfidence(); ok {
		if err := illustration.ExtractionConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "extraction_confidence", err: fmt.Errorf(`ent: validator failed for field "Illustration.extraction_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := illustration.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "Illustration.review_status": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Illustration.proposal"`)
	}
	return nil
}

func (_u *IllustrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(illustration.Table, illustration.Columns, sqlgraph.NewFieldSpec(illustration.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(illustration.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(illustration.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(illustration.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(illustration.FieldFileSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(illustration.FieldFileSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlobID(); ok {
		_spec.SetField(illustration.FieldBlobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(illustration.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(illustration.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(illustration.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(illustration.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingNotes(); ok {
		_spec.SetField(illustration.FieldProcessingNotes, field.TypeString, value)
	}
	if _u.mutation.ProcessingNotesCleared() {
		_spec.ClearField(illustration.FieldProcessingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(illustration.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, illustration.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(illustration.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.DatabaseMatch(); ok {
		_spec.SetField(illustration.FieldDatabaseMatch, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDatabaseMatch(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, illustration.FieldDatabaseMatch, value)
		})
	}
	if _u.mutation.DatabaseMatchCleared() {
		_spec.ClearField(illustration.FieldDatabaseMatch, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(illustration.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(illustration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SelectedProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SelectedProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{illustration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IllustrationUpdateOne is the builder for updating a single Illustration entity.
type IllustrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IllustrationMutation
}

// SetProposalID sets the "proposal_id" field.
func (_u *IllustrationUpdateOne) SetProposalID(v uuid.UUID) *IllustrationUpdateOne {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableProposalID(v *uuid.UUID) *IllustrationUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetSelectedInsuranceID sets the "selected_insurance_id" field.
func (_u *IllustrationUpdateOne) SetSelectedInsuranceID(v uuid.UUID) *IllustrationUpdateOne {
	_u.mutation.SetSelectedInsuranceID(v)
	return _u
}

// SetNillableSelectedInsuranceID sets the "selected_insurance_id" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableSelectedInsuranceID(v *uuid.UUID) *IllustrationUpdateOne {
	if v != nil {
		_u.SetSelectedInsuranceID(*v)
	}
	return _u
}

// ClearSelectedInsuranceID clears the value of the "selected_insurance_id" field.
func (_u *IllustrationUpdateOne) ClearSelectedInsuranceID() *IllustrationUpdateOne {
	_u.mutation.ClearSelectedInsuranceID()
	return _u
}

// SetOrder sets the "order" field.
func (_u *IllustrationUpdateOne) SetOrder(v int) *IllustrationUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableOrder(v *int) *IllustrationUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *IllustrationUpdateOne) AddOrder(v int) *IllustrationUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *IllustrationUpdateOne) SetOriginalFilename(v string) *IllustrationUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableOriginalFilename(v *string) *IllustrationUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *IllustrationUpdateOne) SetFileSizeBytes(v int) *IllustrationUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableFileSizeBytes(v *int) *IllustrationUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *IllustrationUpdateOne) AddFileSizeBytes(v int) *IllustrationUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// SetBlobID sets the "blob_id" field.
func (_u *IllustrationUpdateOne) SetBlobID(v string) *IllustrationUpdateOne {
	_u.mutation.SetBlobID(v)
	return _u
}

// SetNillableBlobID sets the "blob_id" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableBlobID(v *string) *IllustrationUpdateOne {
	if v != nil {
		_u.SetBlobID(*v)
	}
	return _u
}

// SetExtractionStatus sets the "extraction_status" field.
func (_u *IllustrationUpdateOne) SetExtractionStatus(v string) *IllustrationUpdateOne {
	_u.mutation.SetExtractionStatus(v)
	return _u
}

// SetNillableExtractionStatus sets the "extraction_status" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableExtractionStatus(v *string) *IllustrationUpdateOne {
	if v != nil {
		_u.SetExtractionStatus(*v)
	}
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *IllustrationUpdateOne) SetExtractionConfidence(v float32) *IllustrationUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableExtractionConfidence(v *float32) *IllustrationUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *IllustrationUpdateOne) AddExtractionConfidence(v float32) *IllustrationUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *IllustrationUpdateOne) SetReviewStatus(v string) *IllustrationUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableReviewStatus(v *string) *IllustrationUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetProcessingNotes sets the "processing_notes" field.
func (_u *IllustrationUpdateOne) SetProcessingNotes(v string) *IllustrationUpdateOne {
	_u.mutation.SetProcessingNotes(v)
	return _u
}

// SetNillableProcessingNotes sets the "processing_notes" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableProcessingNotes(v *string) *IllustrationUpdateOne {
	if v != nil {
		_u.SetProcessingNotes(*v)
	}
	return _u
}

// ClearProcessingNotes clears the value of the "processing_notes" field.
func (_u *IllustrationUpdateOne) ClearProcessingNotes() *IllustrationUpdateOne {
	_u.mutation.ClearProcessingNotes()
	return _u
}

// SetExtractedData sets the "extracted_data" field.
func (_u *IllustrationUpdateOne) SetExtractedData(v json.RawMessage) *IllustrationUpdateOne {
	_u.mutation.SetExtractedData(v)
	return _u
}

// AppendExtractedData appends value to the "extracted_data" field.
func (_u *IllustrationUpdateOne) AppendExtractedData(v json.RawMessage) *IllustrationUpdateOne {
	_u.mutation.AppendExtractedData(v)
	return _u
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (_u *IllustrationUpdateOne) ClearExtractedData() *IllustrationUpdateOne {
	_u.mutation.ClearExtractedData()
	return _u
}

// SetDatabaseMatch sets the "database_match" field.
func (_u *IllustrationUpdateOne) SetDatabaseMatch(v json.RawMessage) *IllustrationUpdateOne {
	_u.mutation.SetDatabaseMatch(v)
	return _u
}

// AppendDatabaseMatch appends value to the "database_match" field.
func (_u *IllustrationUpdateOne) AppendDatabaseMatch(v json.RawMessage) *IllustrationUpdateOne {
	_u.mutation.AppendDatabaseMatch(v)
	return _u
}

// ClearDatabaseMatch clears the value of the "database_match" field.
func (_u *IllustrationUpdateOne) ClearDatabaseMatch() *IllustrationUpdateOne {
	_u.mutation.ClearDatabaseMatch()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *IllustrationUpdateOne) SetCreatedAt(v time.Time) *IllustrationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableCreatedAt(v *time.Time) *IllustrationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IllustrationUpdateOne) SetUpdatedAt(v time.Time) *IllustrationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *IllustrationUpdateOne) SetProposal(v *Proposal) *IllustrationUpdateOne {
	return _u.SetProposalID(v.ID)
}

// SetSelectedProductID sets the "selected_product" edge to the InsuranceProduct entity by ID.
func (_u *IllustrationUpdateOne) SetSelectedProductID(id uuid.UUID) *IllustrationUpdateOne {
	_u.mutation.SetSelectedProductID(id)
	return _u
}

// SetNillableSelectedProductID sets the "selected_product" edge to the InsuranceProduct entity by ID if the given value is not nil.
func (_u *IllustrationUpdateOne) SetNillableSelectedProductID(id *uuid.UUID) *IllustrationUpdateOne {
	if id != nil {
		_u = _u.SetSelectedProductID(*id)
	}
	return _u
}

// SetSelectedProduct sets the "selected_product" edge to the InsuranceProduct entity.
func (_u *IllustrationUpdateOne) SetSelectedProduct(v *InsuranceProduct) *IllustrationUpdateOne {
	return _u.SetSelectedProductID(v.ID)
}

// Mutation returns the IllustrationMutation object of the builder.
func (_u *IllustrationUpdateOne) Mutation() *IllustrationMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *IllustrationUpdateOne) ClearProposal() *IllustrationUpdateOne {
	_u.mutation.ClearProposal()
	return _u
}

// ClearSelectedProduct clears the "selected_product" edge to the InsuranceProduct entity.
func (_u *IllustrationUpdateOne) ClearSelectedProduct() *IllustrationUpdateOne {
	_u.mutation.ClearSelectedProduct()
	return _u
}

// Where appends a list predicates to the IllustrationUpdate builder.
func (_u *IllustrationUpdateOne) Where(ps ...predicate.Illustration) *IllustrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IllustrationUpdateOne) Select(field string, fields ...string) *IllustrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Illustration entity.
func (_u *IllustrationUpdateOne) Save(ctx context.Context) (*Illustration, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IllustrationUpdateOne) SaveX(ctx context.Context) *Illustration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IllustrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IllustrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IllustrationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := illustration.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IllustrationUpdateOne) check() error {
	if v, ok := _u.mutation.Order(); ok {
		if err := illustration.OrderValidator(v); err != nil {
			return &ValidationError{Name: "order", err: fmt.Errorf(`ent: validator failed for field "Illustration.order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := illustration.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Illustration.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSizeBytes(); ok {
		if err := illustration.FileSizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "file_size_bytes", err: fmt.Errorf(`ent: validator failed for field "Illustration.file_size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlobID(); ok {
		if err := illustration.BlobIDValidator(v); err != nil {
			return &ValidationError{Name: "blob_id", err: fmt.Errorf(`ent: validator failed for field "Illustration.blob_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionStatus(); ok {
		if err := illustration.ExtractionStatusValidator(v); err != nil {
			return &ValidationError{Name: "extraction_status", err: fmt.Errorf(`ent: validator failed for field "Illustration.extraction_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractionConfidence(); ok {
		if err := illustration.ExtractionConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "extraction_confidence", err: fmt.Errorf(`ent: validator failed for field "Illustration.extraction_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := illustration.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "Illustration.review_status": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Illustration.proposal"`)
	}
	return nil
}

func (_u *IllustrationUpdateOne) sqlSave(ctx context.Context) (_node *Illustration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(illustration.Table, illustration.Columns, sqlgraph.NewFieldSpec(illustration.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Illustration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, illustration.FieldID)
		for _, f := range fields {
			if !illustration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != illustration.FieldID {
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
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(illustration.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(illustration.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(illustration.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(illustration.FieldFileSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(illustration.FieldFileSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlobID(); ok {
		_spec.SetField(illustration.FieldBlobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionStatus(); ok {
		_spec.SetField(illustration.FieldExtractionStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(illustration.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(illustration.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(illustration.FieldReviewStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingNotes(); ok {
		_spec.SetField(illustration.FieldProcessingNotes, field.TypeString, value)
	}
	if _u.mutation.ProcessingNotesCleared() {
		_spec.ClearField(illustration.FieldProcessingNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedData(); ok {
		_spec.SetField(illustration.FieldExtractedData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, illustration.FieldExtractedData, value)
		})
	}
	if _u.mutation.ExtractedDataCleared() {
		_spec.ClearField(illustration.FieldExtractedData, field.TypeJSON)
	}
	if value, ok := _u.mutation.DatabaseMatch(); ok {
		_spec.SetField(illustration.FieldDatabaseMatch, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDatabaseMatch(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, illustration.FieldDatabaseMatch, value)
		})
	}
	if _u.mutation.DatabaseMatchCleared() {
		_spec.ClearField(illustration.FieldDatabaseMatch, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(illustration.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(illustration.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProposalCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SelectedProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SelectedProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Illustration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{illustration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
