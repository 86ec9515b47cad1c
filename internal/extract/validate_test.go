package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCashValues(t *testing.T) {
	tests := []struct {
		name       string
		in         []CashValuePoint
		want       []CashValuePoint
		wantMerged int
	}{
		{
			name: "already sorted",
			in:   []CashValuePoint{{Age: 40, Value: 1000}, {Age: 45, Value: 2000}},
			want: []CashValuePoint{{Age: 40, Value: 1000}, {Age: 45, Value: 2000}},
		},
		{
			name: "unsorted input",
			in:   []CashValuePoint{{Age: 65, Value: 9000}, {Age: 40, Value: 1000}, {Age: 50, Value: 3000}},
			want: []CashValuePoint{{Age: 40, Value: 1000}, {Age: 50, Value: 3000}, {Age: 65, Value: 9000}},
		},
		{
			name:       "duplicate age keeps higher value",
			in:         []CashValuePoint{{Age: 40, Value: 1000}, {Age: 40, Value: 1500}, {Age: 45, Value: 2000}},
			want:       []CashValuePoint{{Age: 40, Value: 1500}, {Age: 45, Value: 2000}},
			wantMerged: 1,
		},
		{
			name:       "duplicate with lower value second",
			in:         []CashValuePoint{{Age: 40, Value: 1500}, {Age: 40, Value: 900}},
			want:       []CashValuePoint{{Age: 40, Value: 1500}},
			wantMerged: 1,
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, merged := NormalizeCashValues(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMerged, merged)
			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i].Age, got[i-1].Age, "ages must be strictly increasing")
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	d := &ExtractedData{}
	d.CashValueData.CashValues = []CashValuePoint{
		{Age: 50, Value: 3000}, {Age: 40, Value: 1000}, {Age: 40, Value: 1200},
	}
	d.Metadata.Notes = "low print quality"

	d.Sanitize()

	assert.True(t, d.CashValueData.HasCashValue)
	assert.Equal(t, []CashValuePoint{{Age: 40, Value: 1200}, {Age: 50, Value: 3000}}, d.CashValueData.CashValues)
	assert.Contains(t, d.Metadata.Notes, "low print quality")
	assert.Contains(t, d.Metadata.Notes, "merged 1 duplicate")
}

func TestSanitizeNoCashValues(t *testing.T) {
	d := &ExtractedData{}
	d.Sanitize()
	assert.False(t, d.CashValueData.HasCashValue)
	assert.Empty(t, d.Metadata.Notes)
}

func validPayload() map[string]any {
	return map[string]any{
		"basic_info": map[string]any{
			"insurance_name":     "PruShield Life",
			"insurance_provider": "Prudential",
			"currency":           "SGD",
			"insurance_category": "whole_life",
		},
		"financial_data": map[string]any{
			"death_benefit":    500000.0,
			"premium_per_year": 4800.0,
			"total_premium":    96000.0,
			"payment_period":   20,
			"coverage_term":    99,
		},
		"cash_value_data": map[string]any{
			"has_cash_value":  true,
			"breakeven_years": 18,
			"cash_values": []any{
				map[string]any{"age": 45, "value": 12000.0},
				map[string]any{"age": 65, "value": 310000.0},
			},
		},
		"ratings": []any{
			map[string]any{"agency": "AM Best", "grade": "A+"},
		},
		"policy_details": map[string]any{
			"benefits":   "death benefit, total permanent disability",
			"exclusions": "pre-existing conditions",
			"conditions": "premiums payable annually",
		},
		"extraction_metadata": map[string]any{
			"confidence": 0.92,
			"notes":      "",
		},
	}
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildExtractionJSONSchema()

	b, err := json.Marshal(validPayload())
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, b))

	t.Run("missing basic_info", func(t *testing.T) {
		p := validPayload()
		delete(p, "basic_info")
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Error(t, ValidateJSONAgainstSchema(schema, b))
	})

	t.Run("confidence out of range", func(t *testing.T) {
		p := validPayload()
		p["extraction_metadata"].(map[string]any)["confidence"] = 1.5
		b, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Error(t, ValidateJSONAgainstSchema(schema, b))
	})

	t.Run("not json", func(t *testing.T) {
		assert.Error(t, ValidateJSONAgainstSchema(schema, []byte("not json")))
	})
}

func TestExtractedDataRoundTrip(t *testing.T) {
	b, err := json.Marshal(validPayload())
	require.NoError(t, err)

	var d ExtractedData
	require.NoError(t, json.Unmarshal(b, &d))
	assert.Equal(t, "PruShield Life", d.BasicInfo.InsuranceName)
	assert.Equal(t, 500000.0, d.FinancialData.DeathBenefit)
	assert.Equal(t, 18, d.CashValueData.BreakevenYears)
	assert.Len(t, d.CashValueData.CashValues, 2)
	assert.InDelta(t, 0.92, float64(d.Metadata.Confidence), 1e-6)
}
