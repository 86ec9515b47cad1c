// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/predicate"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisJob      = "AnalysisJob"
	TypeIllustration     = "Illustration"
	TypeInsuranceProduct = "InsuranceProduct"
	TypeProposal         = "Proposal"
)

// AnalysisJobMutation represents an operation that mutates the AnalysisJob nodes in the graph.
type AnalysisJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	status              *string
	selected_ages       *[]int
	appendselected_ages []int
	error_message       *string
	created_at          *time.Time
	completed_at        *time.Time
	clearedFields       map[string]struct{}
	proposal            *uuid.UUID
	clearedproposal     bool
	done                bool
	oldValue            func(context.Context) (*AnalysisJob, error)
	predicates          []predicate.AnalysisJob
}

var _ ent.Mutation = (*AnalysisJobMutation)(nil)

// analysisjobOption allows management of the mutation configuration using functional options.
type analysisjobOption func(*AnalysisJobMutation)

// newAnalysisJobMutation creates new mutation for the AnalysisJob entity.
func newAnalysisJobMutation(c config, op Op, opts ...analysisjobOption) *AnalysisJobMutation {
	m := &AnalysisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisJobID sets the ID field of the mutation.
func withAnalysisJobID(id uuid.UUID) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisJob
		)
		m.oldValue = func(ctx context.Context) (*AnalysisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisJob sets the old AnalysisJob of the mutation.
func withAnalysisJob(node *AnalysisJob) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		m.oldValue = func(context.Context) (*AnalysisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisJob entities.
func (m *AnalysisJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposalID sets the "proposal_id" field.
func (m *AnalysisJobMutation) SetProposalID(u uuid.UUID) {
	m.proposal = &u
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *AnalysisJobMutation) ProposalID() (r uuid.UUID, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldProposalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *AnalysisJobMutation) ResetProposalID() {
	m.proposal = nil
}

// SetStatus sets the "status" field.
func (m *AnalysisJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisJobMutation) ResetStatus() {
	m.status = nil
}

// SetSelectedAges sets the "selected_ages" field.
func (m *AnalysisJobMutation) SetSelectedAges(i []int) {
	m.selected_ages = &i
	m.appendselected_ages = nil
}

// SelectedAges returns the value of the "selected_ages" field in the mutation.
func (m *AnalysisJobMutation) SelectedAges() (r []int, exists bool) {
	v := m.selected_ages
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedAges returns the old "selected_ages" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldSelectedAges(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedAges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedAges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedAges: %w", err)
	}
	return oldValue.SelectedAges, nil
}

// AppendSelectedAges adds i to the "selected_ages" field.
func (m *AnalysisJobMutation) AppendSelectedAges(i []int) {
	m.appendselected_ages = append(m.appendselected_ages, i...)
}

// AppendedSelectedAges returns the list of values that were appended to the "selected_ages" field in this mutation.
func (m *AnalysisJobMutation) AppendedSelectedAges() ([]int, bool) {
	if len(m.appendselected_ages) == 0 {
		return nil, false
	}
	return m.appendselected_ages, true
}

// ClearSelectedAges clears the value of the "selected_ages" field.
func (m *AnalysisJobMutation) ClearSelectedAges() {
	m.selected_ages = nil
	m.appendselected_ages = nil
	m.clearedFields[analysisjob.FieldSelectedAges] = struct{}{}
}

// SelectedAgesCleared returns if the "selected_ages" field was cleared in this mutation.
func (m *AnalysisJobMutation) SelectedAgesCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldSelectedAges]
	return ok
}

// ResetSelectedAges resets all changes to the "selected_ages" field.
func (m *AnalysisJobMutation) ResetSelectedAges() {
	m.selected_ages = nil
	m.appendselected_ages = nil
	delete(m.clearedFields, analysisjob.FieldSelectedAges)
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AnalysisJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysisjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysisjob.FieldCompletedAt)
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *AnalysisJobMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[analysisjob.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *AnalysisJobMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *AnalysisJobMutation) ProposalIDs() (ids []uuid.UUID) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *AnalysisJobMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// Where appends a list predicates to the AnalysisJobMutation builder.
func (m *AnalysisJobMutation) Where(ps ...predicate.AnalysisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisJob).
func (m *AnalysisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisJobMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.proposal != nil {
		fields = append(fields, analysisjob.FieldProposalID)
	}
	if m.status != nil {
		fields = append(fields, analysisjob.FieldStatus)
	}
	if m.selected_ages != nil {
		fields = append(fields, analysisjob.FieldSelectedAges)
	}
	if m.error_message != nil {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, analysisjob.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldProposalID:
		return m.ProposalID()
	case analysisjob.FieldStatus:
		return m.Status()
	case analysisjob.FieldSelectedAges:
		return m.SelectedAges()
	case analysisjob.FieldErrorMessage:
		return m.ErrorMessage()
	case analysisjob.FieldCreatedAt:
		return m.CreatedAt()
	case analysisjob.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisjob.FieldProposalID:
		return m.OldProposalID(ctx)
	case analysisjob.FieldStatus:
		return m.OldStatus(ctx)
	case analysisjob.FieldSelectedAges:
		return m.OldSelectedAges(ctx)
	case analysisjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysisjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldProposalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case analysisjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisjob.FieldSelectedAges:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedAges(v)
		return nil
	case analysisjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysisjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AnalysisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisjob.FieldSelectedAges) {
		fields = append(fields, analysisjob.FieldSelectedAges)
	}
	if m.FieldCleared(analysisjob.FieldErrorMessage) {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.FieldCleared(analysisjob.FieldCompletedAt) {
		fields = append(fields, analysisjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ClearField(name string) error {
	switch name {
	case analysisjob.FieldSelectedAges:
		m.ClearSelectedAges()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ResetField(name string) error {
	switch name {
	case analysisjob.FieldProposalID:
		m.ResetProposalID()
		return nil
	case analysisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisjob.FieldSelectedAges:
		m.ResetSelectedAges()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysisjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.proposal != nil {
		edges = append(edges, analysisjob.EdgeProposal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisjob.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproposal {
		edges = append(edges, analysisjob.EdgeProposal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisJobMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisjob.EdgeProposal:
		return m.clearedproposal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisJobMutation) ClearEdge(name string) error {
	switch name {
	case analysisjob.EdgeProposal:
		m.ClearProposal()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisJobMutation) ResetEdge(name string) error {
	switch name {
	case analysisjob.EdgeProposal:
		m.ResetProposal()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob edge %s", name)
}

// IllustrationMutation represents an operation that mutates the Illustration nodes in the graph.
type IllustrationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	_order                   *int
	add_order                *int
	original_filename        *string
	file_size_bytes          *int
	addfile_size_bytes       *int
	blob_id                  *string
	extraction_status        *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	review_status            *string
	processing_notes         *string
	extracted_data           *json.RawMessage
	appendextracted_data     json.RawMessage
	database_match           *json.RawMessage
	appenddatabase_match     json.RawMessage
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	proposal                 *uuid.UUID
	clearedproposal          bool
	selected_product         *uuid.UUID
	clearedselected_product  bool
	done                     bool
	oldValue                 func(context.Context) (*Illustration, error)
	predicates               []predicate.Illustration
}

var _ ent.Mutation = (*IllustrationMutation)(nil)

// illustrationOption allows management of the mutation configuration using functional options.
type illustrationOption func(*IllustrationMutation)

// newIllustrationMutation creates new mutation for the Illustration entity.
func newIllustrationMutation(c config, op Op, opts ...illustrationOption) *IllustrationMutation {
	m := &IllustrationMutation{
		config:        c,
		op:            op,
		typ:           TypeIllustration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIllustrationID sets the ID field of the mutation.
func withIllustrationID(id uuid.UUID) illustrationOption {
	return func(m *IllustrationMutation) {
		var (
			err   error
			once  sync.Once
			value *Illustration
		)
		m.oldValue = func(ctx context.Context) (*Illustration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Illustration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIllustration sets the old Illustration of the mutation.
func withIllustration(node *Illustration) illustrationOption {
	return func(m *IllustrationMutation) {
		m.oldValue = func(context.Context) (*Illustration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IllustrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IllustrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Illustration entities.
func (m *IllustrationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IllustrationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IllustrationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Illustration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposalID sets the "proposal_id" field.
func (m *IllustrationMutation) SetProposalID(u uuid.UUID) {
	m.proposal = &u
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *IllustrationMutation) ProposalID() (r uuid.UUID, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldProposalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *IllustrationMutation) ResetProposalID() {
	m.proposal = nil
}

// SetSelectedInsuranceID sets the "selected_insurance_id" field.
func (m *IllustrationMutation) SetSelectedInsuranceID(u uuid.UUID) {
	m.selected_product = &u
}

// SelectedInsuranceID returns the value of the "selected_insurance_id" field in the mutation.
func (m *IllustrationMutation) SelectedInsuranceID() (r uuid.UUID, exists bool) {
	v := m.selected_product
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedInsuranceID returns the old "selected_insurance_id" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldSelectedInsuranceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedInsuranceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedInsuranceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedInsuranceID: %w", err)
	}
	return oldValue.SelectedInsuranceID, nil
}

// ClearSelectedInsuranceID clears the value of the "selected_insurance_id" field.
func (m *IllustrationMutation) ClearSelectedInsuranceID() {
	m.selected_product = nil
	m.clearedFields[illustration.FieldSelectedInsuranceID] = struct{}{}
}

// SelectedInsuranceIDCleared returns if the "selected_insurance_id" field was cleared in this mutation.
func (m *IllustrationMutation) SelectedInsuranceIDCleared() bool {
	_, ok := m.clearedFields[illustration.FieldSelectedInsuranceID]
	return ok
}

// ResetSelectedInsuranceID resets all changes to the "selected_insurance_id" field.
func (m *IllustrationMutation) ResetSelectedInsuranceID() {
	m.selected_product = nil
	delete(m.clearedFields, illustration.FieldSelectedInsuranceID)
}

// SetOrder sets the "order" field.
func (m *IllustrationMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *IllustrationMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *IllustrationMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *IllustrationMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *IllustrationMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *IllustrationMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *IllustrationMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *IllustrationMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *IllustrationMutation) SetFileSizeBytes(i int) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *IllustrationMutation) FileSizeBytes() (r int, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldFileSizeBytes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *IllustrationMutation) AddFileSizeBytes(i int) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *IllustrationMutation) AddedFileSizeBytes() (r int, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *IllustrationMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
}

// SetBlobID sets the "blob_id" field.
func (m *IllustrationMutation) SetBlobID(s string) {
	m.blob_id = &s
}

// BlobID returns the value of the "blob_id" field in the mutation.
func (m *IllustrationMutation) BlobID() (r string, exists bool) {
	v := m.blob_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobID returns the old "blob_id" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldBlobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobID: %w", err)
	}
	return oldValue.BlobID, nil
}

// ResetBlobID resets all changes to the "blob_id" field.
func (m *IllustrationMutation) ResetBlobID() {
	m.blob_id = nil
}

// SetExtractionStatus sets the "extraction_status" field.
func (m *IllustrationMutation) SetExtractionStatus(s string) {
	m.extraction_status = &s
}

// ExtractionStatus returns the value of the "extraction_status" field in the mutation.
func (m *IllustrationMutation) ExtractionStatus() (r string, exists bool) {
	v := m.extraction_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionStatus returns the old "extraction_status" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldExtractionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionStatus: %w", err)
	}
	return oldValue.ExtractionStatus, nil
}

// ResetExtractionStatus resets all changes to the "extraction_status" field.
func (m *IllustrationMutation) ResetExtractionStatus() {
	m.extraction_status = nil
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *IllustrationMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *IllustrationMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldExtractionConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *IllustrationMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *IllustrationMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *IllustrationMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
}

// SetReviewStatus sets the "review_status" field.
func (m *IllustrationMutation) SetReviewStatus(s string) {
	m.review_status = &s
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *IllustrationMutation) ReviewStatus() (r string, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldReviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *IllustrationMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetProcessingNotes sets the "processing_notes" field.
func (m *IllustrationMutation) SetProcessingNotes(s string) {
	m.processing_notes = &s
}

// ProcessingNotes returns the value of the "processing_notes" field in the mutation.
func (m *IllustrationMutation) ProcessingNotes() (r string, exists bool) {
	v := m.processing_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingNotes returns the old "processing_notes" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldProcessingNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingNotes: %w", err)
	}
	return oldValue.ProcessingNotes, nil
}

// ClearProcessingNotes clears the value of the "processing_notes" field.
func (m *IllustrationMutation) ClearProcessingNotes() {
	m.processing_notes = nil
	m.clearedFields[illustration.FieldProcessingNotes] = struct{}{}
}

// ProcessingNotesCleared returns if the "processing_notes" field was cleared in this mutation.
func (m *IllustrationMutation) ProcessingNotesCleared() bool {
	_, ok := m.clearedFields[illustration.FieldProcessingNotes]
	return ok
}

// ResetProcessingNotes resets all changes to the "processing_notes" field.
func (m *IllustrationMutation) ResetProcessingNotes() {
	m.processing_notes = nil
	delete(m.clearedFields, illustration.FieldProcessingNotes)
}

// SetExtractedData sets the "extracted_data" field.
func (m *IllustrationMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *IllustrationMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *IllustrationMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *IllustrationMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *IllustrationMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[illustration.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *IllustrationMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[illustration.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *IllustrationMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, illustration.FieldExtractedData)
}

// SetDatabaseMatch sets the "database_match" field.
func (m *IllustrationMutation) SetDatabaseMatch(jm json.RawMessage) {
	m.database_match = &jm
	m.appenddatabase_match = nil
}

// DatabaseMatch returns the value of the "database_match" field in the mutation.
func (m *IllustrationMutation) DatabaseMatch() (r json.RawMessage, exists bool) {
	v := m.database_match
	if v == nil {
		return
	}
	return *v, true
}

// OldDatabaseMatch returns the old "database_match" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldDatabaseMatch(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatabaseMatch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatabaseMatch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatabaseMatch: %w", err)
	}
	return oldValue.DatabaseMatch, nil
}

// AppendDatabaseMatch adds jm to the "database_match" field.
func (m *IllustrationMutation) AppendDatabaseMatch(jm json.RawMessage) {
	m.appenddatabase_match = append(m.appenddatabase_match, jm...)
}

// AppendedDatabaseMatch returns the list of values that were appended to the "database_match" field in this mutation.
func (m *IllustrationMutation) AppendedDatabaseMatch() (json.RawMessage, bool) {
	if len(m.appenddatabase_match) == 0 {
		return nil, false
	}
	return m.appenddatabase_match, true
}

// ClearDatabaseMatch clears the value of the "database_match" field.
func (m *IllustrationMutation) ClearDatabaseMatch() {
	m.database_match = nil
	m.appenddatabase_match = nil
	m.clearedFields[illustration.FieldDatabaseMatch] = struct{}{}
}

// DatabaseMatchCleared returns if the "database_match" field was cleared in this mutation.
func (m *IllustrationMutation) DatabaseMatchCleared() bool {
	_, ok := m.clearedFields[illustration.FieldDatabaseMatch]
	return ok
}

// ResetDatabaseMatch resets all changes to the "database_match" field.
func (m *IllustrationMutation) ResetDatabaseMatch() {
	m.database_match = nil
	m.appenddatabase_match = nil
	delete(m.clearedFields, illustration.FieldDatabaseMatch)
}

// SetCreatedAt sets the "created_at" field.
func (m *IllustrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IllustrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IllustrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IllustrationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IllustrationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Illustration entity.
// If the Illustration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IllustrationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IllustrationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *IllustrationMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[illustration.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *IllustrationMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *IllustrationMutation) ProposalIDs() (ids []uuid.UUID) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *IllustrationMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// SetSelectedProductID sets the "selected_product" edge to the InsuranceProduct entity by id.
func (m *IllustrationMutation) SetSelectedProductID(id uuid.UUID) {
	m.selected_product = &id
}

// ClearSelectedProduct clears the "selected_product" edge to the InsuranceProduct entity.
func (m *IllustrationMutation) ClearSelectedProduct() {
	m.clearedselected_product = true
	m.clearedFields[illustration.FieldSelectedInsuranceID] = struct{}{}
}

// SelectedProductCleared reports if the "selected_product" edge to the InsuranceProduct entity was cleared.
func (m *IllustrationMutation) SelectedProductCleared() bool {
	return m.SelectedInsuranceIDCleared() || m.clearedselected_product
}

// SelectedProductID returns the "selected_product" edge ID in the mutation.
func (m *IllustrationMutation) SelectedProductID() (id uuid.UUID, exists bool) {
	if m.selected_product != nil {
		return *m.selected_product, true
	}
	return
}

// SelectedProductIDs returns the "selected_product" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SelectedProductID instead. It exists only for internal usage by the builders.
func (m *IllustrationMutation) SelectedProductIDs() (ids []uuid.UUID) {
	if id := m.selected_product; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSelectedProduct resets all changes to the "selected_product" edge.
func (m *IllustrationMutation) ResetSelectedProduct() {
	m.selected_product = nil
	m.clearedselected_product = false
}

// Where appends a list predicates to the IllustrationMutation builder.
func (m *IllustrationMutation) Where(ps ...predicate.Illustration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IllustrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IllustrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Illustration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IllustrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IllustrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Illustration).
func (m *IllustrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IllustrationMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.proposal != nil {
		fields = append(fields, illustration.FieldProposalID)
	}
	if m.selected_product != nil {
		fields = append(fields, illustration.FieldSelectedInsuranceID)
	}
	if m._order != nil {
		fields = append(fields, illustration.FieldOrder)
	}
	if m.original_filename != nil {
		fields = append(fields, illustration.FieldOriginalFilename)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, illustration.FieldFileSizeBytes)
	}
	if m.blob_id != nil {
		fields = append(fields, illustration.FieldBlobID)
	}
	if m.extraction_status != nil {
		fields = append(fields, illustration.FieldExtractionStatus)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, illustration.FieldExtractionConfidence)
	}
	if m.review_status != nil {
		fields = append(fields, illustration.FieldReviewStatus)
	}
	if m.processing_notes != nil {
		fields = append(fields, illustration.FieldProcessingNotes)
	}
	if m.extracted_data != nil {
		fields = append(fields, illustration.FieldExtractedData)
	}
	if m.database_match != nil {
		fields = append(fields, illustration.FieldDatabaseMatch)
	}
	if m.created_at != nil {
		fields = append(fields, illustration.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, illustration.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IllustrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case illustration.FieldProposalID:
		return m.ProposalID()
	case illustration.FieldSelectedInsuranceID:
		return m.SelectedInsuranceID()
	case illustration.FieldOrder:
		return m.Order()
	case illustration.FieldOriginalFilename:
		return m.OriginalFilename()
	case illustration.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case illustration.FieldBlobID:
		return m.BlobID()
	case illustration.FieldExtractionStatus:
		return m.ExtractionStatus()
	case illustration.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case illustration.FieldReviewStatus:
		return m.ReviewStatus()
	case illustration.FieldProcessingNotes:
		return m.ProcessingNotes()
	case illustration.FieldExtractedData:
		return m.ExtractedData()
	case illustration.FieldDatabaseMatch:
		return m.DatabaseMatch()
	case illustration.FieldCreatedAt:
		return m.CreatedAt()
	case illustration.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IllustrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case illustration.FieldProposalID:
		return m.OldProposalID(ctx)
	case illustration.FieldSelectedInsuranceID:
		return m.OldSelectedInsuranceID(ctx)
	case illustration.FieldOrder:
		return m.OldOrder(ctx)
	case illustration.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case illustration.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case illustration.FieldBlobID:
		return m.OldBlobID(ctx)
	case illustration.FieldExtractionStatus:
		return m.OldExtractionStatus(ctx)
	case illustration.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case illustration.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case illustration.FieldProcessingNotes:
		return m.OldProcessingNotes(ctx)
	case illustration.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case illustration.FieldDatabaseMatch:
		return m.OldDatabaseMatch(ctx)
	case illustration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case illustration.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Illustration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IllustrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case illustration.FieldProposalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case illustration.FieldSelectedInsuranceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedInsuranceID(v)
		return nil
	case illustration.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	case illustration.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case illustration.FieldFileSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case illustration.FieldBlobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobID(v)
		return nil
	case illustration.FieldExtractionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionStatus(v)
		return nil
	case illustration.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case illustration.FieldReviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case illustration.FieldProcessingNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingNotes(v)
		return nil
	case illustration.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case illustration.FieldDatabaseMatch:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatabaseMatch(v)
		return nil
	case illustration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case illustration.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Illustration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IllustrationMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, illustration.FieldOrder)
	}
	if m.addfile_size_bytes != nil {
		fields = append(fields, illustration.FieldFileSizeBytes)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, illustration.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IllustrationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case illustration.FieldOrder:
		return m.AddedOrder()
	case illustration.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	case illustration.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IllustrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case illustration.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	case illustration.FieldFileSizeBytes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	case illustration.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Illustration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IllustrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(illustration.FieldSelectedInsuranceID) {
		fields = append(fields, illustration.FieldSelectedInsuranceID)
	}
	if m.FieldCleared(illustration.FieldProcessingNotes) {
		fields = append(fields, illustration.FieldProcessingNotes)
	}
	if m.FieldCleared(illustration.FieldExtractedData) {
		fields = append(fields, illustration.FieldExtractedData)
	}
	if m.FieldCleared(illustration.FieldDatabaseMatch) {
		fields = append(fields, illustration.FieldDatabaseMatch)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IllustrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IllustrationMutation) ClearField(name string) error {
	switch name {
	case illustration.FieldSelectedInsuranceID:
		m.ClearSelectedInsuranceID()
		return nil
	case illustration.FieldProcessingNotes:
		m.ClearProcessingNotes()
		return nil
	case illustration.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	case illustration.FieldDatabaseMatch:
		m.ClearDatabaseMatch()
		return nil
	}
	return fmt.Errorf("unknown Illustration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IllustrationMutation) ResetField(name string) error {
	switch name {
	case illustration.FieldProposalID:
		m.ResetProposalID()
		return nil
	case illustration.FieldSelectedInsuranceID:
		m.ResetSelectedInsuranceID()
		return nil
	case illustration.FieldOrder:
		m.ResetOrder()
		return nil
	case illustration.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case illustration.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case illustration.FieldBlobID:
		m.ResetBlobID()
		return nil
	case illustration.FieldExtractionStatus:
		m.ResetExtractionStatus()
		return nil
	case illustration.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case illustration.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case illustration.FieldProcessingNotes:
		m.ResetProcessingNotes()
		return nil
	case illustration.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case illustration.FieldDatabaseMatch:
		m.ResetDatabaseMatch()
		return nil
	case illustration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case illustration.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Illustration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IllustrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.proposal != nil {
		edges = append(edges, illustration.EdgeProposal)
	}
	if m.selected_product != nil {
		edges = append(edges, illustration.EdgeSelectedProduct)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IllustrationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case illustration.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	case illustration.EdgeSelectedProduct:
		if id := m.selected_product; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IllustrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IllustrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IllustrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproposal {
		edges = append(edges, illustration.EdgeProposal)
	}
	if m.clearedselected_product {
		edges = append(edges, illustration.EdgeSelectedProduct)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IllustrationMutation) EdgeCleared(name string) bool {
	switch name {
	case illustration.EdgeProposal:
		return m.clearedproposal
	case illustration.EdgeSelectedProduct:
		return m.clearedselected_product
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IllustrationMutation) ClearEdge(name string) error {
	switch name {
	case illustration.EdgeProposal:
		m.ClearProposal()
		return nil
	case illustration.EdgeSelectedProduct:
		m.ClearSelectedProduct()
		return nil
	}
	return fmt.Errorf("unknown Illustration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IllustrationMutation) ResetEdge(name string) error {
	switch name {
	case illustration.EdgeProposal:
		m.ResetProposal()
		return nil
	case illustration.EdgeSelectedProduct:
		m.ResetSelectedProduct()
		return nil
	}
	return fmt.Errorf("unknown Illustration edge %s", name)
}

// InsuranceProductMutation represents an operation that mutates the InsuranceProduct nodes in the graph.
type InsuranceProductMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	provider            *string
	normalized_name     *string
	normalized_provider *string
	category            *string
	currency            *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	selections          map[uuid.UUID]struct{}
	removedselections   map[uuid.UUID]struct{}
	clearedselections   bool
	done                bool
	oldValue            func(context.Context) (*InsuranceProduct, error)
	predicates          []predicate.InsuranceProduct
}

var _ ent.Mutation = (*InsuranceProductMutation)(nil)

// insuranceproductOption allows management of the mutation configuration using functional options.
type insuranceproductOption func(*InsuranceProductMutation)

// newInsuranceProductMutation creates new mutation for the InsuranceProduct entity.
func newInsuranceProductMutation(c config, op Op, opts ...insuranceproductOption) *InsuranceProductMutation {
	m := &InsuranceProductMutation{
		config:        c,
		op:            op,
		typ:           TypeInsuranceProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsuranceProductID sets the ID field of the mutation.
func withInsuranceProductID(id uuid.UUID) insuranceproductOption {
	return func(m *InsuranceProductMutation) {
		var (
			err   error
			once  sync.Once
			value *InsuranceProduct
		)
		m.oldValue = func(ctx context.Context) (*InsuranceProduct, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InsuranceProduct.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsuranceProduct sets the old InsuranceProduct of the mutation.
func withInsuranceProduct(node *InsuranceProduct) insuranceproductOption {
	return func(m *InsuranceProductMutation) {
		m.oldValue = func(context.Context) (*InsuranceProduct, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsuranceProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsuranceProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InsuranceProduct entities.
func (m *InsuranceProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsuranceProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsuranceProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InsuranceProduct.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *InsuranceProductMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *InsuranceProductMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *InsuranceProductMutation) ResetName() {
	m.name = nil
}

// SetProvider sets the "provider" field.
func (m *InsuranceProductMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *InsuranceProductMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *InsuranceProductMutation) ResetProvider() {
	m.provider = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *InsuranceProductMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *InsuranceProductMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *InsuranceProductMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetNormalizedProvider sets the "normalized_provider" field.
func (m *InsuranceProductMutation) SetNormalizedProvider(s string) {
	m.normalized_provider = &s
}

// NormalizedProvider returns the value of the "normalized_provider" field in the mutation.
func (m *InsuranceProductMutation) NormalizedProvider() (r string, exists bool) {
	v := m.normalized_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedProvider returns the old "normalized_provider" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldNormalizedProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedProvider: %w", err)
	}
	return oldValue.NormalizedProvider, nil
}

// ResetNormalizedProvider resets all changes to the "normalized_provider" field.
func (m *InsuranceProductMutation) ResetNormalizedProvider() {
	m.normalized_provider = nil
}

// SetCategory sets the "category" field.
func (m *InsuranceProductMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *InsuranceProductMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *InsuranceProductMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[insuranceproduct.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *InsuranceProductMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[insuranceproduct.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *InsuranceProductMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, insuranceproduct.FieldCategory)
}

// SetCurrency sets the "currency" field.
func (m *InsuranceProductMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *InsuranceProductMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ClearCurrency clears the value of the "currency" field.
func (m *InsuranceProductMutation) ClearCurrency() {
	m.currency = nil
	m.clearedFields[insuranceproduct.FieldCurrency] = struct{}{}
}

// CurrencyCleared returns if the "currency" field was cleared in this mutation.
func (m *InsuranceProductMutation) CurrencyCleared() bool {
	_, ok := m.clearedFields[insuranceproduct.FieldCurrency]
	return ok
}

// ResetCurrency resets all changes to the "currency" field.
func (m *InsuranceProductMutation) ResetCurrency() {
	m.currency = nil
	delete(m.clearedFields, insuranceproduct.FieldCurrency)
}

// SetCreatedAt sets the "created_at" field.
func (m *InsuranceProductMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsuranceProductMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsuranceProductMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InsuranceProductMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InsuranceProductMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InsuranceProduct entity.
// If the InsuranceProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsuranceProductMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InsuranceProductMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSelectionIDs adds the "selections" edge to the Illustration entity by ids.
func (m *InsuranceProductMutation) AddSelectionIDs(ids ...uuid.UUID) {
	if m.selections == nil {
		m.selections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.selections[ids[i]] = struct{}{}
	}
}

// ClearSelections clears the "selections" edge to the Illustration entity.
func (m *InsuranceProductMutation) ClearSelections() {
	m.clearedselections = true
}

// SelectionsCleared reports if the "selections" edge to the Illustration entity was cleared.
func (m *InsuranceProductMutation) SelectionsCleared() bool {
	return m.clearedselections
}

// RemoveSelectionIDs removes the "selections" edge to the Illustration entity by IDs.
func (m *InsuranceProductMutation) RemoveSelectionIDs(ids ...uuid.UUID) {
	if m.removedselections == nil {
		m.removedselections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.selections, ids[i])
		m.removedselections[ids[i]] = struct{}{}
	}
}

// RemovedSelections returns the removed IDs of the "selections" edge to the Illustration entity.
func (m *InsuranceProductMutation) RemovedSelectionsIDs() (ids []uuid.UUID) {
	for id := range m.removedselections {
		ids = append(ids, id)
	}
	return
}

// SelectionsIDs returns the "selections" edge IDs in the mutation.
func (m *InsuranceProductMutation) SelectionsIDs() (ids []uuid.UUID) {
	for id := range m.selections {
		ids = append(ids, id)
	}
	return
}

// ResetSelections resets all changes to the "selections" edge.
func (m *InsuranceProductMutation) ResetSelections() {
	m.selections = nil
	m.clearedselections = false
	m.removedselections = nil
}

// Where appends a list predicates to the InsuranceProductMutation builder.
func (m *InsuranceProductMutation) Where(ps ...predicate.InsuranceProduct) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsuranceProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsuranceProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InsuranceProduct, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsuranceProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsuranceProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InsuranceProduct).
func (m *InsuranceProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsuranceProductMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, insuranceproduct.FieldName)
	}
	if m.provider != nil {
		fields = append(fields, insuranceproduct.FieldProvider)
	}
	if m.normalized_name != nil {
		fields = append(fields, insuranceproduct.FieldNormalizedName)
	}
	if m.normalized_provider != nil {
		fields = append(fields, insuranceproduct.FieldNormalizedProvider)
	}
	if m.category != nil {
		fields = append(fields, insuranceproduct.FieldCategory)
	}
	if m.currency != nil {
		fields = append(fields, insuranceproduct.FieldCurrency)
	}
	if m.created_at != nil {
		fields = append(fields, insuranceproduct.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, insuranceproduct.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsuranceProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insuranceproduct.FieldName:
		return m.Name()
	case insuranceproduct.FieldProvider:
		return m.Provider()
	case insuranceproduct.FieldNormalizedName:
		return m.NormalizedName()
	case insuranceproduct.FieldNormalizedProvider:
		return m.NormalizedProvider()
	case insuranceproduct.FieldCategory:
		return m.Category()
	case insuranceproduct.FieldCurrency:
		return m.Currency()
	case insuranceproduct.FieldCreatedAt:
		return m.CreatedAt()
	case insuranceproduct.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsuranceProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insuranceproduct.FieldName:
		return m.OldName(ctx)
	case insuranceproduct.FieldProvider:
		return m.OldProvider(ctx)
	case insuranceproduct.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case insuranceproduct.FieldNormalizedProvider:
		return m.OldNormalizedProvider(ctx)
	case insuranceproduct.FieldCategory:
		return m.OldCategory(ctx)
	case insuranceproduct.FieldCurrency:
		return m.OldCurrency(ctx)
	case insuranceproduct.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case insuranceproduct.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown InsuranceProduct field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsuranceProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insuranceproduct.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case insuranceproduct.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case insuranceproduct.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case insuranceproduct.FieldNormalizedProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedProvider(v)
		return nil
	case insuranceproduct.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case insuranceproduct.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case insuranceproduct.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case insuranceproduct.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown InsuranceProduct field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsuranceProductMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsuranceProductMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsuranceProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InsuranceProduct numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsuranceProductMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insuranceproduct.FieldCategory) {
		fields = append(fields, insuranceproduct.FieldCategory)
	}
	if m.FieldCleared(insuranceproduct.FieldCurrency) {
		fields = append(fields, insuranceproduct.FieldCurrency)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsuranceProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsuranceProductMutation) ClearField(name string) error {
	switch name {
	case insuranceproduct.FieldCategory:
		m.ClearCategory()
		return nil
	case insuranceproduct.FieldCurrency:
		m.ClearCurrency()
		return nil
	}
	return fmt.Errorf("unknown InsuranceProduct nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsuranceProductMutation) ResetField(name string) error {
	switch name {
	case insuranceproduct.FieldName:
		m.ResetName()
		return nil
	case insuranceproduct.FieldProvider:
		m.ResetProvider()
		return nil
	case insuranceproduct.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case insuranceproduct.FieldNormalizedProvider:
		m.ResetNormalizedProvider()
		return nil
	case insuranceproduct.FieldCategory:
		m.ResetCategory()
		return nil
	case insuranceproduct.FieldCurrency:
		m.ResetCurrency()
		return nil
	case insuranceproduct.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case insuranceproduct.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown InsuranceProduct field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsuranceProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.selections != nil {
		edges = append(edges, insuranceproduct.EdgeSelections)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsuranceProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insuranceproduct.EdgeSelections:
		ids := make([]ent.Value, 0, len(m.selections))
		for id := range m.selections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsuranceProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedselections != nil {
		edges = append(edges, insuranceproduct.EdgeSelections)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsuranceProductMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case insuranceproduct.EdgeSelections:
		ids := make([]ent.Value, 0, len(m.removedselections))
		for id := range m.removedselections {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsuranceProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedselections {
		edges = append(edges, insuranceproduct.EdgeSelections)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsuranceProductMutation) EdgeCleared(name string) bool {
	switch name {
	case insuranceproduct.EdgeSelections:
		return m.clearedselections
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsuranceProductMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown InsuranceProduct unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsuranceProductMutation) ResetEdge(name string) error {
	switch name {
	case insuranceproduct.EdgeSelections:
		m.ResetSelections()
		return nil
	}
	return fmt.Errorf("unknown InsuranceProduct edge %s", name)
}

// ProposalMutation represents an operation that mutates the Proposal nodes in the graph.
type ProposalMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	client_name          *string
	client_needs         *string
	proposal_type        *string
	status               *string
	failed_from          *string
	failure_note         *string
	target_currency      *string
	generated_at         *time.Time
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	illustrations        map[uuid.UUID]struct{}
	removedillustrations map[uuid.UUID]struct{}
	clearedillustrations bool
	analysis_jobs        map[uuid.UUID]struct{}
	removedanalysis_jobs map[uuid.UUID]struct{}
	clearedanalysis_jobs bool
	done                 bool
	oldValue             func(context.Context) (*Proposal, error)
	predicates           []predicate.Proposal
}

var _ ent.Mutation = (*ProposalMutation)(nil)

// proposalOption allows management of the mutation configuration using functional options.
type proposalOption func(*ProposalMutation)

// newProposalMutation creates new mutation for the Proposal entity.
func newProposalMutation(c config, op Op, opts ...proposalOption) *ProposalMutation {
	m := &ProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalID sets the ID field of the mutation.
func withProposalID(id uuid.UUID) proposalOption {
	return func(m *ProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *Proposal
		)
		m.oldValue = func(ctx context.Context) (*Proposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposal sets the old Proposal of the mutation.
func withProposal(node *Proposal) proposalOption {
	return func(m *ProposalMutation) {
		m.oldValue = func(context.Context) (*Proposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Proposal entities.
func (m *ProposalMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientName sets the "client_name" field.
func (m *ProposalMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *ProposalMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldClientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ResetClientName resets all changes to the "client_name" field.
func (m *ProposalMutation) ResetClientName() {
	m.client_name = nil
}

// SetClientNeeds sets the "client_needs" field.
func (m *ProposalMutation) SetClientNeeds(s string) {
	m.client_needs = &s
}

// ClientNeeds returns the value of the "client_needs" field in the mutation.
func (m *ProposalMutation) ClientNeeds() (r string, exists bool) {
	v := m.client_needs
	if v == nil {
		return
	}
	return *v, true
}

// OldClientNeeds returns the old "client_needs" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldClientNeeds(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientNeeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientNeeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientNeeds: %w", err)
	}
	return oldValue.ClientNeeds, nil
}

// ClearClientNeeds clears the value of the "client_needs" field.
func (m *ProposalMutation) ClearClientNeeds() {
	m.client_needs = nil
	m.clearedFields[proposal.FieldClientNeeds] = struct{}{}
}

// ClientNeedsCleared returns if the "client_needs" field was cleared in this mutation.
func (m *ProposalMutation) ClientNeedsCleared() bool {
	_, ok := m.clearedFields[proposal.FieldClientNeeds]
	return ok
}

// ResetClientNeeds resets all changes to the "client_needs" field.
func (m *ProposalMutation) ResetClientNeeds() {
	m.client_needs = nil
	delete(m.clearedFields, proposal.FieldClientNeeds)
}

// SetProposalType sets the "proposal_type" field.
func (m *ProposalMutation) SetProposalType(s string) {
	m.proposal_type = &s
}

// ProposalType returns the value of the "proposal_type" field in the mutation.
func (m *ProposalMutation) ProposalType() (r string, exists bool) {
	v := m.proposal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalType returns the old "proposal_type" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProposalType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalType: %w", err)
	}
	return oldValue.ProposalType, nil
}

// ClearProposalType clears the value of the "proposal_type" field.
func (m *ProposalMutation) ClearProposalType() {
	m.proposal_type = nil
	m.clearedFields[proposal.FieldProposalType] = struct{}{}
}

// ProposalTypeCleared returns if the "proposal_type" field was cleared in this mutation.
func (m *ProposalMutation) ProposalTypeCleared() bool {
	_, ok := m.clearedFields[proposal.FieldProposalType]
	return ok
}

// ResetProposalType resets all changes to the "proposal_type" field.
func (m *ProposalMutation) ResetProposalType() {
	m.proposal_type = nil
	delete(m.clearedFields, proposal.FieldProposalType)
}

// SetStatus sets the "status" field.
func (m *ProposalMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposalMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProposalMutation) ResetStatus() {
	m.status = nil
}

// SetFailedFrom sets the "failed_from" field.
func (m *ProposalMutation) SetFailedFrom(s string) {
	m.failed_from = &s
}

// FailedFrom returns the value of the "failed_from" field in the mutation.
func (m *ProposalMutation) FailedFrom() (r string, exists bool) {
	v := m.failed_from
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedFrom returns the old "failed_from" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldFailedFrom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedFrom: %w", err)
	}
	return oldValue.FailedFrom, nil
}

// ClearFailedFrom clears the value of the "failed_from" field.
func (m *ProposalMutation) ClearFailedFrom() {
	m.failed_from = nil
	m.clearedFields[proposal.FieldFailedFrom] = struct{}{}
}

// FailedFromCleared returns if the "failed_from" field was cleared in this mutation.
func (m *ProposalMutation) FailedFromCleared() bool {
	_, ok := m.clearedFields[proposal.FieldFailedFrom]
	return ok
}

// ResetFailedFrom resets all changes to the "failed_from" field.
func (m *ProposalMutation) ResetFailedFrom() {
	m.failed_from = nil
	delete(m.clearedFields, proposal.FieldFailedFrom)
}

// SetFailureNote sets the "failure_note" field.
func (m *ProposalMutation) SetFailureNote(s string) {
	m.failure_note = &s
}

// FailureNote returns the value of the "failure_note" field in the mutation.
func (m *ProposalMutation) FailureNote() (r string, exists bool) {
	v := m.failure_note
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureNote returns the old "failure_note" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldFailureNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureNote: %w", err)
	}
	return oldValue.FailureNote, nil
}

// ClearFailureNote clears the value of the "failure_note" field.
func (m *ProposalMutation) ClearFailureNote() {
	m.failure_note = nil
	m.clearedFields[proposal.FieldFailureNote] = struct{}{}
}

// FailureNoteCleared returns if the "failure_note" field was cleared in this mutation.
func (m *ProposalMutation) FailureNoteCleared() bool {
	_, ok := m.clearedFields[proposal.FieldFailureNote]
	return ok
}

// ResetFailureNote resets all changes to the "failure_note" field.
func (m *ProposalMutation) ResetFailureNote() {
	m.failure_note = nil
	delete(m.clearedFields, proposal.FieldFailureNote)
}

// SetTargetCurrency sets the "target_currency" field.
func (m *ProposalMutation) SetTargetCurrency(s string) {
	m.target_currency = &s
}

// TargetCurrency returns the value of the "target_currency" field in the mutation.
func (m *ProposalMutation) TargetCurrency() (r string, exists bool) {
	v := m.target_currency
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetCurrency returns the old "target_currency" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldTargetCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetCurrency: %w", err)
	}
	return oldValue.TargetCurrency, nil
}

// ResetTargetCurrency resets all changes to the "target_currency" field.
func (m *ProposalMutation) ResetTargetCurrency() {
	m.target_currency = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *ProposalMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *ProposalMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldGeneratedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ClearGeneratedAt clears the value of the "generated_at" field.
func (m *ProposalMutation) ClearGeneratedAt() {
	m.generated_at = nil
	m.clearedFields[proposal.FieldGeneratedAt] = struct{}{}
}

// GeneratedAtCleared returns if the "generated_at" field was cleared in this mutation.
func (m *ProposalMutation) GeneratedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldGeneratedAt]
	return ok
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *ProposalMutation) ResetGeneratedAt() {
	m.generated_at = nil
	delete(m.clearedFields, proposal.FieldGeneratedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProposalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProposalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProposalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddIllustrationIDs adds the "illustrations" edge to the Illustration entity by ids.
func (m *ProposalMutation) AddIllustrationIDs(ids ...uuid.UUID) {
	if m.illustrations == nil {
		m.illustrations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.illustrations[ids[i]] = struct{}{}
	}
}

// ClearIllustrations clears the "illustrations" edge to the Illustration entity.
func (m *ProposalMutation) ClearIllustrations() {
	m.clearedillustrations = true
}

// IllustrationsCleared reports if the "illustrations" edge to the Illustration entity was cleared.
func (m *ProposalMutation) IllustrationsCleared() bool {
	return m.clearedillustrations
}

// RemoveIllustrationIDs removes the "illustrations" edge to the Illustration entity by IDs.
func (m *ProposalMutation) RemoveIllustrationIDs(ids ...uuid.UUID) {
	if m.removedillustrations == nil {
		m.removedillustrations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.illustrations, ids[i])
		m.removedillustrations[ids[i]] = struct{}{}
	}
}

// RemovedIllustrations returns the removed IDs of the "illustrations" edge to the Illustration entity.
func (m *ProposalMutation) RemovedIllustrationsIDs() (ids []uuid.UUID) {
	for id := range m.removedillustrations {
		ids = append(ids, id)
	}
	return
}

// IllustrationsIDs returns the "illustrations" edge IDs in the mutation.
func (m *ProposalMutation) IllustrationsIDs() (ids []uuid.UUID) {
	for id := range m.illustrations {
		ids = append(ids, id)
	}
	return
}

// ResetIllustrations resets all changes to the "illustrations" edge.
func (m *ProposalMutation) ResetIllustrations() {
	m.illustrations = nil
	m.clearedillustrations = false
	m.removedillustrations = nil
}

// AddAnalysisJobIDs adds the "analysis_jobs" edge to the AnalysisJob entity by ids.
func (m *ProposalMutation) AddAnalysisJobIDs(ids ...uuid.UUID) {
	if m.analysis_jobs == nil {
		m.analysis_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.analysis_jobs[ids[i]] = struct{}{}
	}
}

// ClearAnalysisJobs clears the "analysis_jobs" edge to the AnalysisJob entity.
func (m *ProposalMutation) ClearAnalysisJobs() {
	m.clearedanalysis_jobs = true
}

// AnalysisJobsCleared reports if the "analysis_jobs" edge to the AnalysisJob entity was cleared.
func (m *ProposalMutation) AnalysisJobsCleared() bool {
	return m.clearedanalysis_jobs
}

// RemoveAnalysisJobIDs removes the "analysis_jobs" edge to the AnalysisJob entity by IDs.
func (m *ProposalMutation) RemoveAnalysisJobIDs(ids ...uuid.UUID) {
	if m.removedanalysis_jobs == nil {
		m.removedanalysis_jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.analysis_jobs, ids[i])
		m.removedanalysis_jobs[ids[i]] = struct{}{}
	}
}

// RemovedAnalysisJobs returns the removed IDs of the "analysis_jobs" edge to the AnalysisJob entity.
func (m *ProposalMutation) RemovedAnalysisJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedanalysis_jobs {
		ids = append(ids, id)
	}
	return
}

// AnalysisJobsIDs returns the "analysis_jobs" edge IDs in the mutation.
func (m *ProposalMutation) AnalysisJobsIDs() (ids []uuid.UUID) {
	for id := range m.analysis_jobs {
		ids = append(ids, id)
	}
	return
}

// ResetAnalysisJobs resets all changes to the "analysis_jobs" edge.
func (m *ProposalMutation) ResetAnalysisJobs() {
	m.analysis_jobs = nil
	m.clearedanalysis_jobs = false
	m.removedanalysis_jobs = nil
}

// Where appends a list predicates to the ProposalMutation builder.
func (m *ProposalMutation) Where(ps ...predicate.Proposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proposal).
func (m *ProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.client_name != nil {
		fields = append(fields, proposal.FieldClientName)
	}
	if m.client_needs != nil {
		fields = append(fields, proposal.FieldClientNeeds)
	}
	if m.proposal_type != nil {
		fields = append(fields, proposal.FieldProposalType)
	}
	if m.status != nil {
		fields = append(fields, proposal.FieldStatus)
	}
	if m.failed_from != nil {
		fields = append(fields, proposal.FieldFailedFrom)
	}
	if m.failure_note != nil {
		fields = append(fields, proposal.FieldFailureNote)
	}
	if m.target_currency != nil {
		fields = append(fields, proposal.FieldTargetCurrency)
	}
	if m.generated_at != nil {
		fields = append(fields, proposal.FieldGeneratedAt)
	}
	if m.created_at != nil {
		fields = append(fields, proposal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, proposal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldClientName:
		return m.ClientName()
	case proposal.FieldClientNeeds:
		return m.ClientNeeds()
	case proposal.FieldProposalType:
		return m.ProposalType()
	case proposal.FieldStatus:
		return m.Status()
	case proposal.FieldFailedFrom:
		return m.FailedFrom()
	case proposal.FieldFailureNote:
		return m.FailureNote()
	case proposal.FieldTargetCurrency:
		return m.TargetCurrency()
	case proposal.FieldGeneratedAt:
		return m.GeneratedAt()
	case proposal.FieldCreatedAt:
		return m.CreatedAt()
	case proposal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposal.FieldClientName:
		return m.OldClientName(ctx)
	case proposal.FieldClientNeeds:
		return m.OldClientNeeds(ctx)
	case proposal.FieldProposalType:
		return m.OldProposalType(ctx)
	case proposal.FieldStatus:
		return m.OldStatus(ctx)
	case proposal.FieldFailedFrom:
		return m.OldFailedFrom(ctx)
	case proposal.FieldFailureNote:
		return m.OldFailureNote(ctx)
	case proposal.FieldTargetCurrency:
		return m.OldTargetCurrency(ctx)
	case proposal.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case proposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case proposal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Proposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case proposal.FieldClientNeeds:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientNeeds(v)
		return nil
	case proposal.FieldProposalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalType(v)
		return nil
	case proposal.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposal.FieldFailedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedFrom(v)
		return nil
	case proposal.FieldFailureNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureNote(v)
		return nil
	case proposal.FieldTargetCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetCurrency(v)
		return nil
	case proposal.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case proposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case proposal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Proposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposal.FieldClientNeeds) {
		fields = append(fields, proposal.FieldClientNeeds)
	}
	if m.FieldCleared(proposal.FieldProposalType) {
		fields = append(fields, proposal.FieldProposalType)
	}
	if m.FieldCleared(proposal.FieldFailedFrom) {
		fields = append(fields, proposal.FieldFailedFrom)
	}
	if m.FieldCleared(proposal.FieldFailureNote) {
		fields = append(fields, proposal.FieldFailureNote)
	}
	if m.FieldCleared(proposal.FieldGeneratedAt) {
		fields = append(fields, proposal.FieldGeneratedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalMutation) ClearField(name string) error {
	switch name {
	case proposal.FieldClientNeeds:
		m.ClearClientNeeds()
		return nil
	case proposal.FieldProposalType:
		m.ClearProposalType()
		return nil
	case proposal.FieldFailedFrom:
		m.ClearFailedFrom()
		return nil
	case proposal.FieldFailureNote:
		m.ClearFailureNote()
		return nil
	case proposal.FieldGeneratedAt:
		m.ClearGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalMutation) ResetField(name string) error {
	switch name {
	case proposal.FieldClientName:
		m.ResetClientName()
		return nil
	case proposal.FieldClientNeeds:
		m.ResetClientNeeds()
		return nil
	case proposal.FieldProposalType:
		m.ResetProposalType()
		return nil
	case proposal.FieldStatus:
		m.ResetStatus()
		return nil
	case proposal.FieldFailedFrom:
		m.ResetFailedFrom()
		return nil
	case proposal.FieldFailureNote:
		m.ResetFailureNote()
		return nil
	case proposal.FieldTargetCurrency:
		m.ResetTargetCurrency()
		return nil
	case proposal.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case proposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case proposal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.illustrations != nil {
		edges = append(edges, proposal.EdgeIllustrations)
	}
	if m.analysis_jobs != nil {
		edges = append(edges, proposal.EdgeAnalysisJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case proposal.EdgeIllustrations:
		ids := make([]ent.Value, 0, len(m.illustrations))
		for id := range m.illustrations {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgeAnalysisJobs:
		ids := make([]ent.Value, 0, len(m.analysis_jobs))
		for id := range m.analysis_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedillustrations != nil {
		edges = append(edges, proposal.EdgeIllustrations)
	}
	if m.removedanalysis_jobs != nil {
		edges = append(edges, proposal.EdgeAnalysisJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case proposal.EdgeIllustrations:
		ids := make([]ent.Value, 0, len(m.removedillustrations))
		for id := range m.removedillustrations {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgeAnalysisJobs:
		ids := make([]ent.Value, 0, len(m.removedanalysis_jobs))
		for id := range m.removedanalysis_jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedillustrations {
		edges = append(edges, proposal.EdgeIllustrations)
	}
	if m.clearedanalysis_jobs {
		edges = append(edges, proposal.EdgeAnalysisJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalMutation) EdgeCleared(name string) bool {
	switch name {
	case proposal.EdgeIllustrations:
		return m.clearedillustrations
	case proposal.EdgeAnalysisJobs:
		return m.clearedanalysis_jobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Proposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalMutation) ResetEdge(name string) error {
	switch name {
	case proposal.EdgeIllustrations:
		m.ResetIllustrations()
		return nil
	case proposal.EdgeAnalysisJobs:
		m.ResetAnalysisJobs()
		return nil
	}
	return fmt.Errorf("unknown Proposal edge %s", name)
}
