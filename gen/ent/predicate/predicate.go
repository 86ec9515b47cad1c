// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// Illustration is the predicate function for illustration builders.
type Illustration func(*sql.Selector)

// InsuranceProduct is the predicate function for insuranceproduct builders.
type InsuranceProduct func(*sql.Selector)

// Proposal is the predicate function for proposal builders.
type Proposal func(*sql.Selector)
