// Code generated by ent, DO NOT EDIT.

package illustration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldID, id))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldProposalID, v))
}

// SelectedInsuranceID applies equality check predicate on the "selected_insurance_id" field. It's identical to SelectedInsuranceIDEQ.
func SelectedInsuranceID(v uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldSelectedInsuranceID, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldOrder, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldOriginalFilename, v))
}

// FileSizeBytes applies equality check predicate on the "file_size_bytes" field. It's identical to FileSizeBytesEQ.
func FileSizeBytes(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldFileSizeBytes, v))
}

// BlobID applies equality check predicate on the "blob_id" field. It's identical to BlobIDEQ.
func BlobID(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldBlobID, v))
}

// ExtractionStatus applies equality check predicate on the "extraction_status" field. It's identical to ExtractionStatusEQ.
func ExtractionStatus(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionConfidence applies equality check predicate on the "extraction_confidence" field. It's identical to ExtractionConfidenceEQ.
func ExtractionConfidence(v float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ReviewStatus applies equality check predicate on the "review_status" field. It's identical to ReviewStatusEQ.
func ReviewStatus(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldReviewStatus, v))
}

// ProcessingNotes applies equality check predicate on the "processing_notes" field. It's identical to ProcessingNotesEQ.
func ProcessingNotes(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldProcessingNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldProposalID, vs...))
}

// SelectedInsuranceIDEQ applies the EQ predicate on the "selected_insurance_id" field.
func SelectedInsuranceIDEQ(v uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldSelectedInsuranceID, v))
}

// SelectedInsuranceIDNEQ applies the NEQ predicate on the "selected_insurance_id" field.
func SelectedInsuranceIDNEQ(v uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldSelectedInsuranceID, v))
}

// SelectedInsuranceIDIn applies the In predicate on the "selected_insurance_id" field.
func SelectedInsuranceIDIn(vs ...uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldSelectedInsuranceID, vs...))
}

// SelectedInsuranceIDNotIn applies the NotIn predicate on the "selected_insurance_id" field.
func SelectedInsuranceIDNotIn(vs ...uuid.UUID) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldSelectedInsuranceID, vs...))
}

// SelectedInsuranceIDIsNil applies the IsNil predicate on the "selected_insurance_id" field.
func SelectedInsuranceIDIsNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldIsNull(FieldSelectedInsuranceID))
}

// SelectedInsuranceIDNotNil applies the NotNil predicate on the "selected_insurance_id" field.
func SelectedInsuranceIDNotNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldNotNull(FieldSelectedInsuranceID))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldOrder, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// FileSizeBytesEQ applies the EQ predicate on the "file_size_bytes" field.
func FileSizeBytesEQ(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesNEQ applies the NEQ predicate on the "file_size_bytes" field.
func FileSizeBytesNEQ(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldFileSizeBytes, v))
}

// FileSizeBytesIn applies the In predicate on the "file_size_bytes" field.
func FileSizeBytesIn(vs ...int) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesNotIn applies the NotIn predicate on the "file_size_bytes" field.
func FileSizeBytesNotIn(vs ...int) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldFileSizeBytes, vs...))
}

// FileSizeBytesGT applies the GT predicate on the "file_size_bytes" field.
func FileSizeBytesGT(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldFileSizeBytes, v))
}

// FileSizeBytesGTE applies the GTE predicate on the "file_size_bytes" field.
func FileSizeBytesGTE(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldFileSizeBytes, v))
}

// FileSizeBytesLT applies the LT predicate on the "file_size_bytes" field.
func FileSizeBytesLT(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldFileSizeBytes, v))
}

// FileSizeBytesLTE applies the LTE predicate on the "file_size_bytes" field.
func FileSizeBytesLTE(v int) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldFileSizeBytes, v))
}

// BlobIDEQ applies the EQ predicate on the "blob_id" field.
func BlobIDEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldBlobID, v))
}

// BlobIDNEQ applies the NEQ predicate on the "blob_id" field.
func BlobIDNEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldBlobID, v))
}

// BlobIDIn applies the In predicate on the "blob_id" field.
func BlobIDIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldBlobID, vs...))
}

// BlobIDNotIn applies the NotIn predicate on the "blob_id" field.
func BlobIDNotIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldBlobID, vs...))
}

// BlobIDGT applies the GT predicate on the "blob_id" field.
func BlobIDGT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldBlobID, v))
}

// BlobIDGTE applies the GTE predicate on the "blob_id" field.
func BlobIDGTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldBlobID, v))
}

// BlobIDLT applies the LT predicate on the "blob_id" field.
func BlobIDLT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldBlobID, v))
}

// BlobIDLTE applies the LTE predicate on the "blob_id" field.
func BlobIDLTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldBlobID, v))
}

// BlobIDContains applies the Contains predicate on the "blob_id" field.
func BlobIDContains(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContains(FieldBlobID, v))
}

// BlobIDHasPrefix applies the HasPrefix predicate on the "blob_id" field.
func BlobIDHasPrefix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasPrefix(FieldBlobID, v))
}

// BlobIDHasSuffix applies the HasSuffix predicate on the "blob_id" field.
func BlobIDHasSuffix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasSuffix(FieldBlobID, v))
}

// BlobIDEqualFold applies the EqualFold predicate on the "blob_id" field.
func BlobIDEqualFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEqualFold(FieldBlobID, v))
}

// BlobIDContainsFold applies the ContainsFold predicate on the "blob_id" field.
func BlobIDContainsFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContainsFold(FieldBlobID, v))
}

// ExtractionStatusEQ applies the EQ predicate on the "extraction_status" field.
func ExtractionStatusEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldExtractionStatus, v))
}

// ExtractionStatusNEQ applies the NEQ predicate on the "extraction_status" field.
func ExtractionStatusNEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldExtractionStatus, v))
}

// ExtractionStatusIn applies the In predicate on the "extraction_status" field.
func ExtractionStatusIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusNotIn applies the NotIn predicate on the "extraction_status" field.
func ExtractionStatusNotIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldExtractionStatus, vs...))
}

// ExtractionStatusGT applies the GT predicate on the "extraction_status" field.
func ExtractionStatusGT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldExtractionStatus, v))
}

// ExtractionStatusGTE applies the GTE predicate on the "extraction_status" field.
func ExtractionStatusGTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldExtractionStatus, v))
}

// ExtractionStatusLT applies the LT predicate on the "extraction_status" field.
func ExtractionStatusLT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldExtractionStatus, v))
}

// ExtractionStatusLTE applies the LTE predicate on the "extraction_status" field.
func ExtractionStatusLTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldExtractionStatus, v))
}

// ExtractionStatusContains applies the Contains predicate on the "extraction_status" field.
func ExtractionStatusContains(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContains(FieldExtractionStatus, v))
}

// ExtractionStatusHasPrefix applies the HasPrefix predicate on the "extraction_status" field.
func ExtractionStatusHasPrefix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasPrefix(FieldExtractionStatus, v))
}

// ExtractionStatusHasSuffix applies the HasSuffix predicate on the "extraction_status" field.
func ExtractionStatusHasSuffix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasSuffix(FieldExtractionStatus, v))
}

// ExtractionStatusEqualFold applies the EqualFold predicate on the "extraction_status" field.
func ExtractionStatusEqualFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEqualFold(FieldExtractionStatus, v))
}

// ExtractionStatusContainsFold applies the ContainsFold predicate on the "extraction_status" field.
func ExtractionStatusContainsFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContainsFold(FieldExtractionStatus, v))
}

// ExtractionConfidenceEQ applies the EQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceEQ(v float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceNEQ applies the NEQ predicate on the "extraction_confidence" field.
func ExtractionConfidenceNEQ(v float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldExtractionConfidence, v))
}

// ExtractionConfidenceIn applies the In predicate on the "extraction_confidence" field.
func ExtractionConfidenceIn(vs ...float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceNotIn applies the NotIn predicate on the "extraction_confidence" field.
func ExtractionConfidenceNotIn(vs ...float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldExtractionConfidence, vs...))
}

// ExtractionConfidenceGT applies the GT predicate on the "extraction_confidence" field.
func ExtractionConfidenceGT(v float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceGTE applies the GTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceGTE(v float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLT applies the LT predicate on the "extraction_confidence" field.
func ExtractionConfidenceLT(v float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldExtractionConfidence, v))
}

// ExtractionConfidenceLTE applies the LTE predicate on the "extraction_confidence" field.
func ExtractionConfidenceLTE(v float32) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldExtractionConfidence, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewStatusGT applies the GT predicate on the "review_status" field.
func ReviewStatusGT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldReviewStatus, v))
}

// ReviewStatusGTE applies the GTE predicate on the "review_status" field.
func ReviewStatusGTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldReviewStatus, v))
}

// ReviewStatusLT applies the LT predicate on the "review_status" field.
func ReviewStatusLT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldReviewStatus, v))
}

// ReviewStatusLTE applies the LTE predicate on the "review_status" field.
func ReviewStatusLTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldReviewStatus, v))
}

// ReviewStatusContains applies the Contains predicate on the "review_status" field.
func ReviewStatusContains(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContains(FieldReviewStatus, v))
}

// ReviewStatusHasPrefix applies the HasPrefix predicate on the "review_status" field.
func ReviewStatusHasPrefix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasPrefix(FieldReviewStatus, v))
}

// ReviewStatusHasSuffix applies the HasSuffix predicate on the "review_status" field.
func ReviewStatusHasSuffix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasSuffix(FieldReviewStatus, v))
}

// ReviewStatusEqualFold applies the EqualFold predicate on the "review_status" field.
func ReviewStatusEqualFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEqualFold(FieldReviewStatus, v))
}

// ReviewStatusContainsFold applies the ContainsFold predicate on the "review_status" field.
func ReviewStatusContainsFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContainsFold(FieldReviewStatus, v))
}

// ProcessingNotesEQ applies the EQ predicate on the "processing_notes" field.
func ProcessingNotesEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldProcessingNotes, v))
}

// ProcessingNotesNEQ applies the NEQ predicate on the "processing_notes" field.
func ProcessingNotesNEQ(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldProcessingNotes, v))
}

// ProcessingNotesIn applies the In predicate on the "processing_notes" field.
func ProcessingNotesIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldProcessingNotes, vs...))
}

// ProcessingNotesNotIn applies the NotIn predicate on the "processing_notes" field.
func ProcessingNotesNotIn(vs ...string) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldProcessingNotes, vs...))
}

// ProcessingNotesGT applies the GT predicate on the "processing_notes" field.
func ProcessingNotesGT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldProcessingNotes, v))
}

// ProcessingNotesGTE applies the GTE predicate on the "processing_notes" field.
func ProcessingNotesGTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldProcessingNotes, v))
}

// ProcessingNotesLT applies the LT predicate on the "processing_notes" field.
func ProcessingNotesLT(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldProcessingNotes, v))
}

// ProcessingNotesLTE applies the LTE predicate on the "processing_notes" field.
func ProcessingNotesLTE(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldProcessingNotes, v))
}

// ProcessingNotesContains applies the Contains predicate on the "processing_notes" field.
func ProcessingNotesContains(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContains(FieldProcessingNotes, v))
}

// ProcessingNotesHasPrefix applies the HasPrefix predicate on the "processing_notes" field.
func ProcessingNotesHasPrefix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasPrefix(FieldProcessingNotes, v))
}

// ProcessingNotesHasSuffix applies the HasSuffix predicate on the "processing_notes" field.
func ProcessingNotesHasSuffix(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldHasSuffix(FieldProcessingNotes, v))
}

// ProcessingNotesIsNil applies the IsNil predicate on the "processing_notes" field.
func ProcessingNotesIsNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldIsNull(FieldProcessingNotes))
}

// ProcessingNotesNotNil applies the NotNil predicate on the "processing_notes" field.
func ProcessingNotesNotNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldNotNull(FieldProcessingNotes))
}

// ProcessingNotesEqualFold applies the EqualFold predicate on the "processing_notes" field.
func ProcessingNotesEqualFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldEqualFold(FieldProcessingNotes, v))
}

// ProcessingNotesContainsFold applies the ContainsFold predicate on the "processing_notes" field.
func ProcessingNotesContainsFold(v string) predicate.Illustration {
	return predicate.Illustration(sql.FieldContainsFold(FieldProcessingNotes, v))
}

// ExtractedDataIsNil applies the IsNil predicate on the "extracted_data" field.
func ExtractedDataIsNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldIsNull(FieldExtractedData))
}

// ExtractedDataNotNil applies the NotNil predicate on the "extracted_data" field.
func ExtractedDataNotNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldNotNull(FieldExtractedData))
}

// DatabaseMatchIsNil applies the IsNil predicate on the "database_match" field.
func DatabaseMatchIsNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldIsNull(FieldDatabaseMatch))
}

// DatabaseMatchNotNil applies the NotNil predicate on the "database_match" field.
func DatabaseMatchNotNil() predicate.Illustration {
	return predicate.Illustration(sql.FieldNotNull(FieldDatabaseMatch))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Illustration {
	return predicate.Illustration(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProposal applies the HasEdge predicate on the "proposal" edge.
func HasProposal() predicate.Illustration {
	return predicate.Illustration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProposalTable, ProposalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalWith applies the HasEdge predicate on the "proposal" edge with a given conditions (other predicates).
func HasProposalWith(preds ...predicate.Proposal) predicate.Illustration {
	return predicate.Illustration(func(s *sql.Selector) {
		step := newProposalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSelectedProduct applies the HasEdge predicate on the "selected_product" edge.
func HasSelectedProduct() predicate.Illustration {
	return predicate.Illustration(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SelectedProductTable, SelectedProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSelectedProductWith applies the HasEdge predicate on the "selected_product" edge with a given conditions (other predicates).
func HasSelectedProductWith(preds ...predicate.InsuranceProduct) predicate.Illustration {
	return predicate.Illustration(func(s *sql.Selector) {
		step := newSelectedProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Illustration) predicate.Illustration {
	return predicate.Illustration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Illustration) predicate.Illustration {
	return predicate.Illustration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Illustration) predicate.Illustration {
	return predicate.Illustration(sql.NotPredicates(p))
}
