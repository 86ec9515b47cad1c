package extract

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. The extraction service is asked to conform to it and we validate
// its response locally before anything is persisted.
func BuildExtractionJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"basic_info", "extraction_metadata"},
		"properties": map[string]any{
			"basic_info": map[string]any{
				"type":     "object",
				"required": []string{"insurance_name", "insurance_provider"},
				"properties": map[string]any{
					"insurance_name":     map[string]any{"type": "string", "minLength": 1},
					"insurance_provider": map[string]any{"type": "string", "minLength": 1},
					"currency":           map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
					"insurance_category": map[string]any{"type": "string"},
				},
			},
			"financial_data": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"death_benefit":    nonNegativeNumber(),
					"premium_per_year": nonNegativeNumber(),
					"total_premium":    nonNegativeNumber(),
					"payment_period":   nonNegativeInteger(),
					"coverage_term":    nonNegativeInteger(),
				},
			},
			"cash_value_data": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"has_cash_value":  map[string]any{"type": "boolean"},
					"breakeven_years": nonNegativeInteger(),
					"cash_values": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"age", "value"},
							"properties": map[string]any{
								"age":   map[string]any{"type": "integer", "minimum": 0, "maximum": 150},
								"value": map[string]any{"type": "number"},
							},
						},
					},
				},
			},
			"ratings": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"agency", "grade"},
					"properties": map[string]any{
						"agency": map[string]any{"type": "string"},
						"grade":  map[string]any{"type": "string"},
					},
				},
			},
			"policy_details": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"benefits":   map[string]any{"type": "string"},
					"exclusions": map[string]any{"type": "string"},
					"conditions": map[string]any{"type": "string"},
				},
			},
			"extraction_metadata": map[string]any{
				"type":     "object",
				"required": []string{"confidence"},
				"properties": map[string]any{
					"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"notes":      map[string]any{"type": "string"},
				},
			},
		},
	}
}

func nonNegativeNumber() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0}
}

func nonNegativeInteger() map[string]any {
	return map[string]any{"type": "integer", "minimum": 0}
}
