// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// AnalysisJob is the model entity for the AnalysisJob schema.
type AnalysisJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID uuid.UUID `json:"proposal_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// SelectedAges holds the value of the "selected_ages" field.
	SelectedAges []int `json:"selected_ages,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisJobQuery when eager-loading is set.
	Edges        AnalysisJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisJobEdges holds the relations/edges for other nodes in the graph.
type AnalysisJobEdges struct {
	// Proposal holds the value of the proposal edge.
	Proposal *Proposal `json:"proposal,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisJobEdges) ProposalOrErr() (*Proposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: proposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldSelectedAges:
			values[i] = new([]byte)
		case analysisjob.FieldStatus, analysisjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case analysisjob.FieldCreatedAt, analysisjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case analysisjob.FieldID, analysisjob.FieldProposalID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisJob fields.
func (_m *AnalysisJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case analysisjob.FieldProposalID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value != nil {
				_m.ProposalID = *value
			}
		case analysisjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case analysisjob.FieldSelectedAges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field selected_ages", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SelectedAges); err != nil {
					return fmt.Errorf("unmarshal field selected_ages: %w", err)
				}
			}
		case analysisjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case analysisjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysisjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisJob.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposal queries the "proposal" edge of the AnalysisJob entity.
func (_m *AnalysisJob) QueryProposal() *ProposalQuery {
	return NewAnalysisJobClient(_m.config).QueryProposal(_m)
}

// Update returns a builder for updating this AnalysisJob.
// Note that you need to call AnalysisJob.Unwrap() before calling this method if this AnalysisJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisJob) Update() *AnalysisJobUpdateOne {
	return NewAnalysisJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisJob) Unwrap() *AnalysisJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisJob) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("selected_ages=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectedAges))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisJobs is a parsable slice of AnalysisJob.
type AnalysisJobs []*AnalysisJob
