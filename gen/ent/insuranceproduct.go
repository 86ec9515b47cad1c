// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/advisorhq/proposal-pipeline/gen/ent/insuranceproduct"
	"github.com/google/uuid"
)

// InsuranceProduct is the model entity for the InsuranceProduct schema.
type InsuranceProduct struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// NormalizedProvider holds the value of the "normalized_provider" field.
	NormalizedProvider string `json:"normalized_provider,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InsuranceProductQuery when eager-loading is set.
	Edges        InsuranceProductEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InsuranceProductEdges holds the relations/edges for other nodes in the graph.
type InsuranceProductEdges struct {
	// Selections holds the value of the selections edge.
	Selections []*Illustration `json:"selections,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SelectionsOrErr returns the Selections value or an error if the edge
// was not loaded in eager-loading.
func (e InsuranceProductEdges) SelectionsOrErr() ([]*Illustration, error) {
	if e.loadedTypes[0] {
		return e.Selections, nil
	}
	return nil, &NotLoadedError{edge: "selections"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InsuranceProduct) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case insuranceproduct.FieldName, insuranceproduct.FieldProvider, insuranceproduct.FieldNormalizedName, insuranceproduct.FieldNormalizedProvider, insuranceproduct.FieldCategory, insuranceproduct.FieldCurrency:
			values[i] = new(sql.NullString)
		case insuranceproduct.FieldCreatedAt, insuranceproduct.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case insuranceproduct.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InsuranceProduct fields.
func (_m *InsuranceProduct) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case insuranceproduct.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case insuranceproduct.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case insuranceproduct.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case insuranceproduct.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case insuranceproduct.FieldNormalizedProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_provider", values[i])
			} else if value.Valid {
				_m.NormalizedProvider = value.String
			}
		case insuranceproduct.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case insuranceproduct.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case insuranceproduct.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case insuranceproduct.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InsuranceProduct.
// This includes values selected through modifiers, order, etc.
func (_m *InsuranceProduct) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySelections queries the "selections" edge of the InsuranceProduct entity.
func (_m *InsuranceProduct) QuerySelections() *IllustrationQuery {
	return NewInsuranceProductClient(_m.config).QuerySelections(_m)
}

// Update returns a builder for updating this InsuranceProduct.
// Note that you need to call InsuranceProduct.Unwrap() before calling this method if this InsuranceProduct
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InsuranceProduct) Update() *InsuranceProductUpdateOne {
	return NewInsuranceProductClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InsuranceProduct entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InsuranceProduct) Unwrap() *InsuranceProduct {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InsuranceProduct is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InsuranceProduct) String() string {
	var builder strings.Builder
	builder.WriteString("InsuranceProduct(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("normalized_provider=")
	builder.WriteString(_m.NormalizedProvider)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InsuranceProducts is a parsable slice of InsuranceProduct.
type InsuranceProducts []*InsuranceProduct
