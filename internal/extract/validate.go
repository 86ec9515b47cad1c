package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// NormalizeCashValues enforces the strictly-increasing-age invariant on the
// extracted cash-value sequence. Points are sorted by age; duplicate ages are a
// data-quality defect and are merged keeping the higher value rather than
// silently overwritten. Returns the number of merged duplicates.
func NormalizeCashValues(points []CashValuePoint) ([]CashValuePoint, int) {
	if len(points) == 0 {
		return nil, 0
	}
	sorted := make([]CashValuePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Age < sorted[j].Age })

	out := sorted[:1]
	merged := 0
	for _, p := range sorted[1:] {
		last := &out[len(out)-1]
		if p.Age == last.Age {
			merged++
			if p.Value > last.Value {
				last.Value = p.Value
			}
			continue
		}
		out = append(out, p)
	}
	return out, merged
}

// Sanitize applies boundary normalization to a freshly decoded payload and
// reports adjustments in the metadata notes.
func (d *ExtractedData) Sanitize() {
	normalized, merged := NormalizeCashValues(d.CashValueData.CashValues)
	d.CashValueData.CashValues = normalized
	if merged > 0 {
		note := fmt.Sprintf("merged %d duplicate cash-value age(s)", merged)
		if d.Metadata.Notes != "" {
			note = d.Metadata.Notes + "; " + note
		}
		d.Metadata.Notes = note
	}
	if len(normalized) > 0 {
		d.CashValueData.HasCashValue = true
	}
}
