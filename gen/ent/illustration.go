// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// Illustration is the model entity for the Illustration schema.
type Illustration struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID uuid.UUID `json:"proposal_id,omitempty"`
	// SelectedInsuranceID holds the value of the "selected_insurance_id" field.
	SelectedInsuranceID *uuid.UUID `json:"selected_insurance_id,omitempty"`
	// Order holds the value of the "order" field.
	Order int `json:"order,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// FileSizeBytes holds the value of the "file_size_bytes" field.
	FileSizeBytes int `json:"file_size_bytes,omitempty"`
	// BlobID holds the value of the "blob_id" field.
	BlobID string `json:"blob_id,omitempty"`
	// ExtractionStatus holds the value of the "extraction_status" field.
	ExtractionStatus string `json:"extraction_status,omitempty"`
	// ExtractionConfidence holds the value of the "extraction_confidence" field.
	ExtractionConfidence float32 `json:"extraction_confidence,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus string `json:"review_status,omitempty"`
	// ProcessingNotes holds the value of the "processing_notes" field.
	ProcessingNotes string `json:"processing_notes,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData json.RawMessage `json:"extracted_data,omitempty"`
	// DatabaseMatch holds the value of the "database_match" field.
	DatabaseMatch json.RawMessage `json:"database_match,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IllustrationQuery when eager-loading is set.
	Edges        IllustrationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IllustrationEdges holds the relations/edges for other nodes in the graph.
type IllustrationEdges struct {
	// Proposal holds the value of the proposal edge.
	Proposal *Proposal `json:"proposal,omitempty"`
	// SelectedProduct holds the value of the selected_product edge.
	SelectedProduct *InsuranceProduct `json:"selected_product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IllustrationEdges) ProposalOrErr() (*Proposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: proposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// SelectedProductOrErr returns the SelectedProduct value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IllustrationEdges) SelectedProductOrErr() (*InsuranceProduct, error) {
	if e.SelectedProduct != nil {
		return e.SelectedProduct, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: insuranceproduct.Label}
	}
	return nil, &NotLoadedError{edge: "selected_product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Illustration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case illustration.FieldSelectedInsuranceID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case illustration.FieldExtractedData, illustration.FieldDatabaseMatch:
			values[i] = new([]byte)
		case illustration.FieldExtractionConfidence:
			values[i] = new(sql.NullFloat64)
		case illustration.FieldOrder, illustration.FieldFileSizeBytes:
			values[i] = new(sql.NullInt64)
		case illustration.FieldOriginalFilename, illustration.FieldBlobID, illustration.FieldExtractionStatus, illustration.FieldReviewStatus, illustration.FieldProcessingNotes:
			values[i] = new(sql.NullString)
		case illustration.FieldCreatedAt, illustration.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case illustration.FieldID, illustration.FieldProposalID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Illustration fields.
func (_m *Illustration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case illustration.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case illustration.FieldProposalID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value != nil {
				_m.ProposalID = *value
			}
		case illustration.FieldSelectedInsuranceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field selected_insurance_id", values[i])
			} else if value.Valid {
				_m.SelectedInsuranceID = new(uuid.UUID)
				*_m.SelectedInsuranceID = *value.S.(*uuid.UUID)
			}
		case illustration.FieldOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field order", values[i])
			} else if value.Valid {
				_m.Order = int(value.Int64)
			}
		case illustration.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case illustration.FieldFileSizeBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size_bytes", values[i])
			} else if value.Valid {
				_m.FileSizeBytes = int(value.Int64)
			}
		case illustration.FieldBlobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_id", values[i])
			} else if value.Valid {
				_m.BlobID = value.String
			}
		case illustration.FieldExtractionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_status", values[i])
			} else if value.Valid {
				_m.ExtractionStatus = value.String
			}
		case illustration.FieldExtractionConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_confidence", values[i])
			} else if value.Valid {
				_m.ExtractionConfidence = float32(value.Float64)
			}
		case illustration.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = value.String
			}
		case illustration.FieldProcessingNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_notes", values[i])
			} else if value.Valid {
				_m.ProcessingNotes = value.String
			}
		case illustration.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case illustration.FieldDatabaseMatch:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field database_match", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DatabaseMatch); err != nil {
					return fmt.Errorf("unmarshal field database_match: %w", err)
				}
			}
		case illustration.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case illustration.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Illustration.
// This includes values selected through modifiers, order, etc.
func (_m *Illustration) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposal queries the "proposal" edge of the Illustration entity.
func (_m *Illustration) QueryProposal() *ProposalQuery {
	return NewIllustrationClient(_m.config).QueryProposal(_m)
}

// QuerySelectedProduct queries the "selected_product" edge of the Illustration entity.
func (_m *Illustration) QuerySelectedProduct() *InsuranceProductQuery {
	return NewIllustrationClient(_m.config).QuerySelectedProduct(_m)
}

// Update returns a builder for updating this Illustration.
// Note that you need to call Illustration.Unwrap() before calling this method if this Illustration
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Illustration) Update() *IllustrationUpdateOne {
	return NewIllustrationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Illustration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Illustration) Unwrap() *Illustration {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Illustration is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Illustration) String() string {
	var builder strings.Builder
	builder.WriteString("Illustration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalID))
	builder.WriteString(", ")
	if v := _m.SelectedInsuranceID; v != nil {
		builder.WriteString("selected_insurance_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("order=")
	builder.WriteString(fmt.Sprintf("%v", _m.Order))
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("file_size_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSizeBytes))
	builder.WriteString(", ")
	builder.WriteString("blob_id=")
	builder.WriteString(_m.BlobID)
	builder.WriteString(", ")
	builder.WriteString("extraction_status=")
	builder.WriteString(_m.ExtractionStatus)
	builder.WriteString(", ")
	builder.WriteString("extraction_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionConfidence))
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(_m.ReviewStatus)
	builder.WriteString(", ")
	builder.WriteString("processing_notes=")
	builder.WriteString(_m.ProcessingNotes)
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	builder.WriteString("database_match=")
	builder.WriteString(fmt.Sprintf("%v", _m.DatabaseMatch))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Illustrations is a parsable slice of Illustration.
type Illustrations []*Illustration
