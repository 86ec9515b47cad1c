package extract

import "context"

// BasicInfo identifies the product on the illustration.
type BasicInfo struct {
	InsuranceName     string `json:"insurance_name"`
	InsuranceProvider string `json:"insurance_provider"`
	Currency          string `json:"currency,omitempty"`      // ISO 4217
	InsuranceCategory string `json:"insurance_category,omitempty"`
}

// FinancialData holds the headline numbers of the policy.
type FinancialData struct {
	DeathBenefit   float64 `json:"death_benefit,omitempty"`
	PremiumPerYear float64 `json:"premium_per_year,omitempty"`
	TotalPremium   float64 `json:"total_premium,omitempty"`
	PaymentPeriod  int     `json:"payment_period,omitempty"` // years
	CoverageTerm   int     `json:"coverage_term,omitempty"`  // years
}

// CashValuePoint is the surrender value at one policy age.
type CashValuePoint struct {
	Age   int     `json:"age"`
	Value float64 `json:"value"`
}

// CashValueData is the cash-surrender-value table extracted from the
// illustration, keyed by strictly increasing age.
type CashValueData struct {
	HasCashValue   bool             `json:"has_cash_value"`
	BreakevenYears int              `json:"breakeven_years,omitempty"`
	CashValues     []CashValuePoint `json:"cash_values,omitempty"`
}

// Rating is one agency grade printed on the illustration.
type Rating struct {
	Agency string `json:"agency"`
	Grade  string `json:"grade"`
}

// PolicyDetails carries the free-text sections of the policy.
type PolicyDetails struct {
	Benefits   string `json:"benefits,omitempty"`
	Exclusions string `json:"exclusions,omitempty"`
	Conditions string `json:"conditions,omitempty"`
}

// Metadata describes the extraction attempt itself.
type Metadata struct {
	Confidence float32 `json:"confidence"` // 0..1
	Notes      string  `json:"notes,omitempty"`
}

// ExtractedData is the structured payload produced for one illustration. The
// extraction service's loose JSON is validated against a schema at this
// boundary so no untyped maps travel through the pipeline.
type ExtractedData struct {
	BasicInfo     BasicInfo     `json:"basic_info"`
	FinancialData FinancialData `json:"financial_data"`
	CashValueData CashValueData `json:"cash_value_data"`
	Ratings       []Rating      `json:"ratings,omitempty"`
	PolicyDetails PolicyDetails `json:"policy_details"`
	Metadata      Metadata      `json:"extraction_metadata"`
}

// Extractor turns a PDF byte stream into an ExtractedData record. It is
// stateless from the pipeline's perspective; retry policy lives with the
// caller (transport failures only, never typed extraction errors).
type Extractor interface {
	Extract(ctx context.Context, pdf []byte) (*ExtractedData, error)
}
