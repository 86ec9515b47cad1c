// Code generated by ent, DO NOT EDIT.

package insuranceproduct

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the insuranceproduct type in the database.
	Label = "insurance_product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldNormalizedProvider holds the string denoting the normalized_provider field in the database.
	FieldNormalizedProvider = "normalized_provider"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSelections holds the string denoting the selections edge name in mutations.
	EdgeSelections = "selections"
	// Table holds the table name of the insuranceproduct in the database.
	Table = "insurance_products"
	// SelectionsTable is the table that holds the selections relation/edge.
	SelectionsTable = "illustrations"
	// SelectionsInverseTable is the table name for the Illustration entity.
	// It exists in this package in order to avoid circular dependency with the "illustration" package.
	SelectionsInverseTable = "illustrations"
	// SelectionsColumn is the table column denoting the selections relation/edge.
	SelectionsColumn = "selected_insurance_id"
)

// Columns holds all SQL columns for insuranceproduct fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldProvider,
	FieldNormalizedName,
	FieldNormalizedProvider,
	FieldCategory,
	FieldCurrency,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	NormalizedNameValidator func(string) error
	// NormalizedProviderValidator is a validator for the "normalized_provider" field. It is called by the builders before save.
	NormalizedProviderValidator func(string) error
	// DefaultCategory holds the default value on creation for the "category" field.
	DefaultCategory string
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the InsuranceProduct queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByNormalizedProvider orders the results by the normalized_provider field.
func ByNormalizedProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedProvider, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySelectionsCount orders the results by selections count.
func BySelectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSelectionsStep(), opts...)
	}
}

// BySelections orders the results by selections terms.
func BySelections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSelectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSelectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SelectionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SelectionsTable, SelectionsColumn),
	)
}
