// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldID, id))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldClientName, v))
}

// ClientNeeds applies equality check predicate on the "client_needs" field. It's identical to ClientNeedsEQ.
func ClientNeeds(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldClientNeeds, v))
}

// ProposalType applies equality check predicate on the "proposal_type" field. It's identical to ProposalTypeEQ.
func ProposalType(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// FailedFrom applies equality check predicate on the "failed_from" field. It's identical to FailedFromEQ.
func FailedFrom(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldFailedFrom, v))
}

// FailureNote applies equality check predicate on the "failure_note" field. It's identical to FailureNoteEQ.
func FailureNote(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldFailureNote, v))
}

// TargetCurrency applies equality check predicate on the "target_currency" field. It's identical to TargetCurrencyEQ.
func TargetCurrency(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTargetCurrency, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldGeneratedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldClientName, v))
}

// ClientNeedsEQ applies the EQ predicate on the "client_needs" field.
func ClientNeedsEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldClientNeeds, v))
}

// ClientNeedsNEQ applies the NEQ predicate on the "client_needs" field.
func ClientNeedsNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldClientNeeds, v))
}

// ClientNeedsIn applies the In predicate on the "client_needs" field.
func ClientNeedsIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldClientNeeds, vs...))
}

// ClientNeedsNotIn applies the NotIn predicate on the "client_needs" field.
func ClientNeedsNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldClientNeeds, vs...))
}

// ClientNeedsGT applies the GT predicate on the "client_needs" field.
func ClientNeedsGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldClientNeeds, v))
}

// ClientNeedsGTE applies the GTE predicate on the "client_needs" field.
func ClientNeedsGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldClientNeeds, v))
}

// ClientNeedsLT applies the LT predicate on the "client_needs" field.
func ClientNeedsLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldClientNeeds, v))
}

// ClientNeedsLTE applies the LTE predicate on the "client_needs" field.
func ClientNeedsLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldClientNeeds, v))
}

// ClientNeedsContains applies the Contains predicate on the "client_needs" field.
func ClientNeedsContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldClientNeeds, v))
}

// ClientNeedsHasPrefix applies the HasPrefix predicate on the "client_needs" field.
func ClientNeedsHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldClientNeeds, v))
}

// ClientNeedsHasSuffix applies the HasSuffix predicate on the "client_needs" field.
func ClientNeedsHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldClientNeeds, v))
}

// ClientNeedsIsNil applies the IsNil predicate on the "client_needs" field.
func ClientNeedsIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldClientNeeds))
}

// ClientNeedsNotNil applies the NotNil predicate on the "client_needs" field.
func ClientNeedsNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldClientNeeds))
}

// ClientNeedsEqualFold applies the EqualFold predicate on the "client_needs" field.
func ClientNeedsEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldClientNeeds, v))
}

// ClientNeedsContainsFold applies the ContainsFold predicate on the "client_needs" field.
func ClientNeedsContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldClientNeeds, v))
}

// ProposalTypeEQ applies the EQ predicate on the "proposal_type" field.
func ProposalTypeEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalType, v))
}

// ProposalTypeNEQ applies the NEQ predicate on the "proposal_type" field.
func ProposalTypeNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProposalType, v))
}

// ProposalTypeIn applies the In predicate on the "proposal_type" field.
func ProposalTypeIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProposalType, vs...))
}

// ProposalTypeNotIn applies the NotIn predicate on the "proposal_type" field.
func ProposalTypeNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProposalType, vs...))
}

// ProposalTypeGT applies the GT predicate on the "proposal_type" field.
func ProposalTypeGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProposalType, v))
}

// ProposalTypeGTE applies the GTE predicate on the "proposal_type" field.
func ProposalTypeGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProposalType, v))
}

// ProposalTypeLT applies the LT predicate on the "proposal_type" field.
func ProposalTypeLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProposalType, v))
}

// ProposalTypeLTE applies the LTE predicate on the "proposal_type" field.
func ProposalTypeLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProposalType, v))
}

// ProposalTypeContains applies the Contains predicate on the "proposal_type" field.
func ProposalTypeContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldProposalType, v))
}

// ProposalTypeHasPrefix applies the HasPrefix predicate on the "proposal_type" field.
func ProposalTypeHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldProposalType, v))
}

// ProposalTypeHasSuffix applies the HasSuffix predicate on the "proposal_type" field.
func ProposalTypeHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldProposalType, v))
}

// ProposalTypeIsNil applies the IsNil predicate on the "proposal_type" field.
func ProposalTypeIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldProposalType))
}

// ProposalTypeNotNil applies the NotNil predicate on the "proposal_type" field.
func ProposalTypeNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldProposalType))
}

// ProposalTypeEqualFold applies the EqualFold predicate on the "proposal_type" field.
func ProposalTypeEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldProposalType, v))
}

// ProposalTypeContainsFold applies the ContainsFold predicate on the "proposal_type" field.
func ProposalTypeContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldProposalType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldStatus, v))
}

// FailedFromEQ applies the EQ predicate on the "failed_from" field.
func FailedFromEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldFailedFrom, v))
}

// FailedFromNEQ applies the NEQ predicate on the "failed_from" field.
func FailedFromNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldFailedFrom, v))
}

// FailedFromIn applies the In predicate on the "failed_from" field.
func FailedFromIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldFailedFrom, vs...))
}

// FailedFromNotIn applies the NotIn predicate on the "failed_from" field.
func FailedFromNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldFailedFrom, vs...))
}

// FailedFromGT applies the GT predicate on the "failed_from" field.
func FailedFromGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldFailedFrom, v))
}

// FailedFromGTE applies the GTE predicate on the "failed_from" field.
func FailedFromGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldFailedFrom, v))
}

// FailedFromLT applies the LT predicate on the "failed_from" field.
func FailedFromLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldFailedFrom, v))
}

// FailedFromLTE applies the LTE predicate on the "failed_from" field.
func FailedFromLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldFailedFrom, v))
}

// FailedFromContains applies the Contains predicate on the "failed_from" field.
func FailedFromContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldFailedFrom, v))
}

// FailedFromHasPrefix applies the HasPrefix predicate on the "failed_from" field.
func FailedFromHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldFailedFrom, v))
}

// FailedFromHasSuffix applies the HasSuffix predicate on the "failed_from" field.
func FailedFromHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldFailedFrom, v))
}

// FailedFromIsNil applies the IsNil predicate on the "failed_from" field.
func FailedFromIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldFailedFrom))
}

// FailedFromNotNil applies the NotNil predicate on the "failed_from" field.
func FailedFromNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldFailedFrom))
}

// FailedFromEqualFold applies the EqualFold predicate on the "failed_from" field.
func FailedFromEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldFailedFrom, v))
}

// FailedFromContainsFold applies the ContainsFold predicate on the "failed_from" field.
func FailedFromContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldFailedFrom, v))
}

// FailureNoteEQ applies the EQ predicate on the "failure_note" field.
func FailureNoteEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldFailureNote, v))
}

// FailureNoteNEQ applies the NEQ predicate on the "failure_note" field.
func FailureNoteNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldFailureNote, v))
}

// FailureNoteIn applies the In predicate on the "failure_note" field.
func FailureNoteIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldFailureNote, vs...))
}

// FailureNoteNotIn applies the NotIn predicate on the "failure_note" field.
func FailureNoteNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldFailureNote, vs...))
}

// FailureNoteGT applies the GT predicate on the "failure_note" field.
func FailureNoteGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldFailureNote, v))
}

// FailureNoteGTE applies the GTE predicate on the "failure_note" field.
func FailureNoteGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldFailureNote, v))
}

// FailureNoteLT applies the LT predicate on the "failure_note" field.
func FailureNoteLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldFailureNote, v))
}

// FailureNoteLTE applies the LTE predicate on the "failure_note" field.
func FailureNoteLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldFailureNote, v))
}

// FailureNoteContains applies the Contains predicate on the "failure_note" field.
func FailureNoteContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldFailureNote, v))
}

// FailureNoteHasPrefix applies the HasPrefix predicate on the "failure_note" field.
func FailureNoteHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldFailureNote, v))
}

// FailureNoteHasSuffix applies the HasSuffix predicate on the "failure_note" field.
func FailureNoteHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldFailureNote, v))
}

// FailureNoteIsNil applies the IsNil predicate on the "failure_note" field.
func FailureNoteIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldFailureNote))
}

// FailureNoteNotNil applies the NotNil predicate on the "failure_note" field.
func FailureNoteNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldFailureNote))
}

// FailureNoteEqualFold applies the EqualFold predicate on the "failure_note" field.
func FailureNoteEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldFailureNote, v))
}

// FailureNoteContainsFold applies the ContainsFold predicate on the "failure_note" field.
func FailureNoteContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldFailureNote, v))
}

// TargetCurrencyEQ applies the EQ predicate on the "target_currency" field.
func TargetCurrencyEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTargetCurrency, v))
}

// TargetCurrencyNEQ applies the NEQ predicate on the "target_currency" field.
func TargetCurrencyNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldTargetCurrency, v))
}

// TargetCurrencyIn applies the In predicate on the "target_currency" field.
func TargetCurrencyIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldTargetCurrency, vs...))
}

// TargetCurrencyNotIn applies the NotIn predicate on the "target_currency" field.
func TargetCurrencyNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldTargetCurrency, vs...))
}

// TargetCurrencyGT applies the GT predicate on the "target_currency" field.
func TargetCurrencyGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldTargetCurrency, v))
}

// TargetCurrencyGTE applies the GTE predicate on the "target_currency" field.
func TargetCurrencyGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldTargetCurrency, v))
}

// TargetCurrencyLT applies the LT predicate on the "target_currency" field.
func TargetCurrencyLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldTargetCurrency, v))
}

// TargetCurrencyLTE applies the LTE predicate on the "target_currency" field.
func TargetCurrencyLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldTargetCurrency, v))
}

// TargetCurrencyContains applies the Contains predicate on the "target_currency" field.
func TargetCurrencyContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldTargetCurrency, v))
}

// TargetCurrencyHasPrefix applies the HasPrefix predicate on the "target_currency" field.
func TargetCurrencyHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldTargetCurrency, v))
}

// TargetCurrencyHasSuffix applies the HasSuffix predicate on the "target_currency" field.
func TargetCurrencyHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldTargetCurrency, v))
}

// TargetCurrencyEqualFold applies the EqualFold predicate on the "target_currency" field.
func TargetCurrencyEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldTargetCurrency, v))
}

// TargetCurrencyContainsFold applies the ContainsFold predicate on the "target_currency" field.
func TargetCurrencyContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldTargetCurrency, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldGeneratedAt, v))
}

// GeneratedAtIsNil applies the IsNil predicate on the "generated_at" field.
func GeneratedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldGeneratedAt))
}

// GeneratedAtNotNil applies the NotNil predicate on the "generated_at" field.
func GeneratedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldGeneratedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIllustrations applies the HasEdge predicate on the "illustrations" edge.
func HasIllustrations() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IllustrationsTable, IllustrationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIllustrationsWith applies the HasEdge predicate on the "illustrations" edge with a given conditions (other predicates).
func HasIllustrationsWith(preds ...predicate.Illustration) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newIllustrationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalysisJobs applies the HasEdge predicate on the "analysis_jobs" edge.
func HasAnalysisJobs() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnalysisJobsTable, AnalysisJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisJobsWith applies the HasEdge predicate on the "analysis_jobs" edge with a given conditions (other predicates).
func HasAnalysisJobsWith(preds ...predicate.AnalysisJob) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newAnalysisJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.NotPredicates(p))
}
