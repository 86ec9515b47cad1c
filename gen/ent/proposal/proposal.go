// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the proposal type in the database.
	Label = "proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldClientNeeds holds the string denoting the client_needs field in the database.
	FieldClientNeeds = "client_needs"
	// FieldProposalType holds the string denoting the proposal_type field in the database.
	FieldProposalType = "proposal_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFailedFrom holds the string denoting the failed_from field in the database.
	FieldFailedFrom = "failed_from"
	// FieldFailureNote holds the string denoting the failure_note field in the database.
	FieldFailureNote = "failure_note"
	// FieldTargetCurrency holds the string denoting the target_currency field in the database.
	FieldTargetCurrency = "target_currency"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeIllustrations holds the string denoting the illustrations edge name in mutations.
	EdgeIllustrations = "illustrations"
	// EdgeAnalysisJobs holds the string denoting the analysis_jobs edge name in mutations.
	EdgeAnalysisJobs = "analysis_jobs"
	// Table holds the table name of the proposal in the database.
	Table = "proposals"
	// IllustrationsTable is the table that holds the illustrations relation/edge.
	IllustrationsTable = "illustrations"
	// IllustrationsInverseTable is the table name for the Illustration entity.
	// It exists in this package in order to avoid circular dependency with the "illustration" package.
	IllustrationsInverseTable = "illustrations"
	// IllustrationsColumn is the table column denoting the illustrations relation/edge.
	IllustrationsColumn = "proposal_id"
	// AnalysisJobsTable is the table that holds the analysis_jobs relation/edge.
	AnalysisJobsTable = "analysis_jobs"
	// AnalysisJobsInverseTable is the table name for the AnalysisJob entity.
	// It exists in this package in order to avoid circular dependency with the "analysisjob" package.
	AnalysisJobsInverseTable = "analysis_jobs"
	// AnalysisJobsColumn is the table column denoting the analysis_jobs relation/edge.
	AnalysisJobsColumn = "proposal_id"
)

// Columns holds all SQL columns for proposal fields.
var Columns = []string{
	FieldID,
	FieldClientName,
	FieldClientNeeds,
	FieldProposalType,
	FieldStatus,
	FieldFailedFrom,
	FieldFailureNote,
	FieldTargetCurrency,
	FieldGeneratedAt,
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
	// ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	ClientNameValidator func(string) error
	// DefaultClientNeeds holds the default value on creation for the "client_needs" field.
	DefaultClientNeeds string
	// DefaultProposalType holds the default value on creation for the "proposal_type" field.
	DefaultProposalType string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultFailedFrom holds the default value on creation for the "failed_from" field.
	DefaultFailedFrom string
	// DefaultFailureNote holds the default value on creation for the "failure_note" field.
	DefaultFailureNote string
	// TargetCurrencyValidator is a validator for the "target_currency" field. It is called by the builders before save.
	TargetCurrencyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Proposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByClientNeeds orders the results by the client_needs field.
func ByClientNeeds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientNeeds, opts...).ToFunc()
}

// ByProposalType orders the results by the proposal_type field.
func ByProposalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFailedFrom orders the results by the failed_from field.
func ByFailedFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedFrom, opts...).ToFunc()
}

// ByFailureNote orders the results by the failure_note field.
func ByFailureNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureNote, opts...).ToFunc()
}

// ByTargetCurrency orders the results by the target_currency field.
func ByTargetCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetCurrency, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByIllustrationsCount orders the results by illustrations count.
func ByIllustrationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIllustrationsStep(), opts...)
	}
}

// ByIllustrations orders the results by illustrations terms.
func ByIllustrations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIllustrationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAnalysisJobsCount orders the results by analysis_jobs count.
func ByAnalysisJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysisJobsStep(), opts...)
	}
}

// ByAnalysisJobs orders the results by analysis_jobs terms.
func ByAnalysisJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysisJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newIllustrationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IllustrationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IllustrationsTable, IllustrationsColumn),
	)
}
func newAnalysisJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysisJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysisJobsTable, AnalysisJobsColumn),
	)
}
