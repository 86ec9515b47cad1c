// Code generated by ent, DO NOT EDIT.

package insuranceproduct

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldProvider, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedProvider applies equality check predicate on the "normalized_provider" field. It's identical to NormalizedProviderEQ.
func NormalizedProvider(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldNormalizedProvider, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldCategory, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldCurrency, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContainsFold(FieldName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContainsFold(FieldProvider, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContainsFold(FieldNormalizedName, v))
}

// NormalizedProviderEQ applies the EQ predicate on the "normalized_provider" field.
func NormalizedProviderEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldNormalizedProvider, v))
}

// NormalizedProviderNEQ applies the NEQ predicate on the "normalized_provider" field.
func NormalizedProviderNEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldNormalizedProvider, v))
}

// NormalizedProviderIn applies the In predicate on the "normalized_provider" field.
func NormalizedProviderIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldNormalizedProvider, vs...))
}

// NormalizedProviderNotIn applies the NotIn predicate on the "normalized_provider" field.
func NormalizedProviderNotIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldNormalizedProvider, vs...))
}

// NormalizedProviderGT applies the GT predicate on the "normalized_provider" field.
func NormalizedProviderGT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldNormalizedProvider, v))
}

// NormalizedProviderGTE applies the GTE predicate on the "normalized_provider" field.
func NormalizedProviderGTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldNormalizedProvider, v))
}

// NormalizedProviderLT applies the LT predicate on the "normalized_provider" field.
func NormalizedProviderLT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldNormalizedProvider, v))
}

// NormalizedProviderLTE applies the LTE predicate on the "normalized_provider" field.
func NormalizedProviderLTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldNormalizedProvider, v))
}

// NormalizedProviderContains applies the Contains predicate on the "normalized_provider" field.
func NormalizedProviderContains(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContains(FieldNormalizedProvider, v))
}

// NormalizedProviderHasPrefix applies the HasPrefix predicate on the "normalized_provider" field.
func NormalizedProviderHasPrefix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasPrefix(FieldNormalizedProvider, v))
}

// NormalizedProviderHasSuffix applies the HasSuffix predicate on the "normalized_provider" field.
func NormalizedProviderHasSuffix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasSuffix(FieldNormalizedProvider, v))
}

// NormalizedProviderEqualFold applies the EqualFold predicate on the "normalized_provider" field.
func NormalizedProviderEqualFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEqualFold(FieldNormalizedProvider, v))
}

// NormalizedProviderContainsFold applies the ContainsFold predicate on the "normalized_provider" field.
func NormalizedProviderContainsFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContainsFold(FieldNormalizedProvider, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContainsFold(FieldCategory, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyIsNil applies the IsNil predicate on the "currency" field.
func CurrencyIsNil() predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIsNull(FieldCurrency))
}

// CurrencyNotNil applies the NotNil predicate on the "currency" field.
func CurrencyNotNil() predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotNull(FieldCurrency))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldContainsFold(FieldCurrency, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSelections applies the HasEdge predicate on the "selections" edge.
func HasSelections() predicate.InsuranceProduct {
	return predicate.InsuranceProduct(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SelectionsTable, SelectionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSelectionsWith applies the HasEdge predicate on the "selections" edge with a given conditions (other predicates).
func HasSelectionsWith(preds ...predicate.Illustration) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(func(s *sql.Selector) {
		step := newSelectionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InsuranceProduct) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InsuranceProduct) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InsuranceProduct) predicate.InsuranceProduct {
	return predicate.InsuranceProduct(sql.NotPredicates(p))
}
