// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// Proposal is the model entity for the Proposal schema.
type Proposal struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ClientName holds the value of the "client_name" field.
	ClientName string `json:"client_name,omitempty"`
	// ClientNeeds holds the value of the "client_needs" field.
	ClientNeeds string `json:"client_needs,omitempty"`
	// ProposalType holds the value of the "proposal_type" field.
	ProposalType string `json:"proposal_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// FailedFrom holds the value of the "failed_from" field.
	FailedFrom string `json:"failed_from,omitempty"`
	// FailureNote holds the value of the "failure_note" field.
	FailureNote string `json:"failure_note,omitempty"`
	// TargetCurrency holds the value of the "target_currency" field.
	TargetCurrency string `json:"target_currency,omitempty"`
	// GeneratedAt holds the value of the "generated_at" field.
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProposalQuery when eager-loading is set.
	Edges        ProposalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProposalEdges holds the relations/edges for other nodes in the graph.
type ProposalEdges struct {
	// Illustrations holds the value of the illustrations edge.
	Illustrations []*Illustration `json:"illustrations,omitempty"`
	// AnalysisJobs holds the value of the analysis_jobs edge.
	AnalysisJobs []*AnalysisJob `json:"analysis_jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// IllustrationsOrErr returns the Illustrations value or an error if the edge
// was not loaded in eager-loading.
func (e ProposalEdges) IllustrationsOrErr() ([]*Illustration, error) {
	if e.loadedTypes[0] {
		return e.Illustrations, nil
	}
	return nil, &NotLoadedError{edge: "illustrations"}
}

// AnalysisJobsOrErr returns the AnalysisJobs value or an error if the edge
// was not loaded in eager-loading.
func (e ProposalEdges) AnalysisJobsOrErr() ([]*AnalysisJob, error) {
	if e.loadedTypes[1] {
		return e.AnalysisJobs, nil
	}
	return nil, &NotLoadedError{edge: "analysis_jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Proposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proposal.FieldClientName, proposal.FieldClientNeeds, proposal.FieldProposalType, proposal.FieldStatus, proposal.FieldFailedFrom, proposal.FieldFailureNote, proposal.FieldTargetCurrency:
			values[i] = new(sql.NullString)
		case proposal.FieldGeneratedAt, proposal.FieldCreatedAt, proposal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case proposal.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Proposal fields.
func (_m *Proposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proposal.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case proposal.FieldClientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_name", values[i])
			} else if value.Valid {
				_m.ClientName = value.String
			}
		case proposal.FieldClientNeeds:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_needs", values[i])
			} else if value.Valid {
				_m.ClientNeeds = value.String
			}
		case proposal.FieldProposalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_type", values[i])
			} else if value.Valid {
				_m.ProposalType = value.String
			}
		case proposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case proposal.FieldFailedFrom:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failed_from", values[i])
			} else if value.Valid {
				_m.FailedFrom = value.String
			}
		case proposal.FieldFailureNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_note", values[i])
			} else if value.Valid {
				_m.FailureNote = value.String
			}
		case proposal.FieldTargetCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_currency", values[i])
			} else if value.Valid {
				_m.TargetCurrency = value.String
			}
		case proposal.FieldGeneratedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field generated_at", values[i])
			} else if value.Valid {
				_m.GeneratedAt = new(time.Time)
				*_m.GeneratedAt = value.Time
			}
		case proposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case proposal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Proposal.
// This includes values selected through modifiers, order, etc.
func (_m *Proposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIllustrations queries the "illustrations" edge of the Proposal entity.
func (_m *Proposal) QueryIllustrations() *IllustrationQuery {
	return NewProposalClient(_m.config).QueryIllustrations(_m)
}

// QueryAnalysisJobs queries the "analysis_jobs" edge of the Proposal entity.
func (_m *Proposal) QueryAnalysisJobs() *AnalysisJobQuery {
	return NewProposalClient(_m.config).QueryAnalysisJobs(_m)
}

// Update returns a builder for updating this Proposal.
// Note that you need to call Proposal.Unwrap() before calling this method if this Proposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Proposal) Update() *ProposalUpdateOne {
	return NewProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Proposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Proposal) Unwrap() *Proposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Proposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Proposal) String() string {
	var builder strings.Builder
	builder.WriteString("Proposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("client_name=")
	builder.WriteString(_m.ClientName)
	builder.WriteString(", ")
	builder.WriteString("client_needs=")
	builder.WriteString(_m.ClientNeeds)
	builder.WriteString(", ")
	builder.WriteString("proposal_type=")
	builder.WriteString(_m.ProposalType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("failed_from=")
	builder.WriteString(_m.FailedFrom)
	builder.WriteString(", ")
	builder.WriteString("failure_note=")
	builder.WriteString(_m.FailureNote)
	builder.WriteString(", ")
	builder.WriteString("target_currency=")
	builder.WriteString(_m.TargetCurrency)
	builder.WriteString(", ")
	if v := _m.GeneratedAt; v != nil {
		builder.WriteString("generated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Proposals is a parsable slice of Proposal.
type Proposals []*Proposal
