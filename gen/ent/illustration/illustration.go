// Code generated by ent, DO NOT EDIT.

package illustration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the illustration type in the database.
	Label = "illustration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProposalID holds the string denoting the proposal_id field in the database.
	FieldProposalID = "proposal_id"
	// FieldSelectedInsuranceID holds the string denoting the selected_insurance_id field in the database.
	FieldSelectedInsuranceID = "selected_insurance_id"
	// FieldOrder holds the string denoting the order field in the database.
	FieldOrder = "order"
	// FieldOriginalFilename holds the string denoting the original_filename field in the database.
	FieldOriginalFilename = "original_filename"
	// FieldFileSizeBytes holds the string denoting the file_size_bytes field in the database.
	FieldFileSizeBytes = "file_size_bytes"
	// FieldBlobID holds the string denoting the blob_id field in the database.
	FieldBlobID = "blob_id"
	// FieldExtractionStatus holds the string denoting the extraction_status field in the database.
	FieldExtractionStatus = "extraction_status"
	// FieldExtractionConfidence holds the string denoting the extraction_confidence field in the database.
	FieldExtractionConfidence = "extraction_confidence"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// FieldProcessingNotes holds the string denoting the processing_notes field in the database.
	FieldProcessingNotes = "processing_notes"
	// FieldExtractedData holds the string denoting the extracted_data field in the database.
	FieldExtractedData = "extracted_data"
	// FieldDatabaseMatch holds the string denoting the database_match field in the database.
	FieldDatabaseMatch = "database_match"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProposal holds the string denoting the proposal edge name in mutations.
	EdgeProposal = "proposal"
	// EdgeSelectedProduct holds the string denoting the selected_product edge name in mutations.
	EdgeSelectedProduct = "selected_product"
	// Table holds the table name of the illustration in the database.
	Table = "illustrations"
	// ProposalTable is the table that holds the proposal relation/edge.
	ProposalTable = "illustrations"
	// ProposalInverseTable is the table name for the Proposal entity.
	// It exists in this package in order to avoid circular dependency with the "proposal" package.
	ProposalInverseTable = "proposals"
	// ProposalColumn is the table column denoting the proposal relation/edge.
	ProposalColumn = "proposal_id"
	// SelectedProductTable is the table that holds the selected_product relation/edge.
	SelectedProductTable = "illustrations"
	// SelectedProductInverseTable is the table name for the InsuranceProduct entity.
	// It exists in this package in order to avoid circular dependency with the "insuranceproduct" package.
	SelectedProductInverseTable = "insurance_products"
	// SelectedProductColumn is the table column denoting the selected_product relation/edge.
	SelectedProductColumn = "selected_insurance_id"
)

// Columns holds all SQL columns for illustration fields.
var Columns = []string{
	FieldID,
	FieldProposalID,
	FieldSelectedInsuranceID,
	FieldOrder,
	FieldOriginalFilename,
	FieldFileSizeBytes,
	FieldBlobID,
	FieldExtractionStatus,
	FieldExtractionConfidence,
	FieldReviewStatus,
	FieldProcessingNotes,
	FieldExtractedData,
	FieldDatabaseMatch,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OrderValidator is a validator for the "order" field. It is called by the builders before save.
	OrderValidator func(int) error
	// OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	OriginalFilenameValidator func(string) error
	// FileSizeBytesValidator is a validator for the "file_size_bytes" field. It is called by the builders before save.
	FileSizeBytesValidator func(int) error
	// BlobIDValidator is a validator for the "blob_id" field. It is called by the builders before save.
	BlobIDValidator func(string) error
	// DefaultExtractionStatus holds the default value on creation for the "extraction_status" field.
	DefaultExtractionStatus string
	// ExtractionStatusValidator is a validator for the "extraction_status" field. It is called by the builders before save.
	ExtractionStatusValidator func(string) error
	// DefaultExtractionConfidence holds the default value on creation for the "extraction_confidence" field.
	DefaultExtractionConfidence float32
	// ExtractionConfidenceValidator is a validator for the "extraction_confidence" field. It is called by the builders before save.
	ExtractionConfidenceValidator func(float32) error
	// DefaultReviewStatus holds the default value on creation for the "review_status" field.
	DefaultReviewStatus string
	// ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	ReviewStatusValidator func(string) error
	// DefaultProcessingNotes holds the default value on creation for the "processing_notes" field.
	DefaultProcessingNotes string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Illustration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProposalID orders the results by the proposal_id field.
func ByProposalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalID, opts...).ToFunc()
}

// BySelectedInsuranceID orders the results by the selected_insurance_id field.
func BySelectedInsuranceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedInsuranceID, opts...).ToFunc()
}

// ByOrder orders the results by the order field.
func ByOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrder, opts...).ToFunc()
}

// ByOriginalFilename orders the results by the original_filename field.
func ByOriginalFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalFilename, opts...).ToFunc()
}

// ByFileSizeBytes orders the results by the file_size_bytes field.
func ByFileSizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSizeBytes, opts...).ToFunc()
}

// ByBlobID orders the results by the blob_id field.
func ByBlobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobID, opts...).ToFunc()
}

// ByExtractionStatus orders the results by the extraction_status field.
func ByExtractionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionStatus, opts...).ToFunc()
}

// ByExtractionConfidence orders the results by the extraction_confidence field.
func ByExtractionConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionConfidence, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
}

// ByProcessingNotes orders the results by the processing_notes field.
func ByProcessingNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProposalField orders the results by proposal field.
func ByProposalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProposalStep(), sql.OrderByField(field, opts...))
	}
}

// BySelectedProductField orders the results by selected_product field.
func BySelectedProductField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSelectedProductStep(), sql.OrderByField(field, opts...))
	}
}
func newProposalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProposalInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProposalTable, ProposalColumn),
	)
}
func newSelectedProductStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SelectedProductInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SelectedProductTable, SelectedProductColumn),
	)
}
