// Code generated by ent, DO NOT EDIT.

package analysisjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldID, id))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldProposalID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...uuid.UUID) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldProposalID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldStatus, v))
}

// SelectedAgesIsNil applies the IsNil predicate on the "selected_ages" field.
func SelectedAgesIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldSelectedAges))
}

// SelectedAgesNotNil applies the NotNil predicate on the "selected_ages" field.
func SelectedAgesNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldSelectedAges))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.FieldNotNull(FieldCompletedAt))
}

// HasProposal applies the HasEdge predicate on the "proposal" edge.
func HasProposal() predicate.AnalysisJob {
	return predicate.AnalysisJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProposalTable, ProposalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalWith applies the HasEdge predicate on the "proposal" edge with a given conditions (other predicates).
func HasProposalWith(preds ...predicate.Proposal) predicate.AnalysisJob {
	return predicate.AnalysisJob(func(s *sql.Selector) {
		step := newProposalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisJob) predicate.AnalysisJob {
	return predicate.AnalysisJob(sql.NotPredicates(p))
}
