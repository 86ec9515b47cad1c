package match

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/proposal-pipeline/internal/extract"
)

type fakeCatalog struct {
	products []Product
	exact    map[[2]string]*Product
}

func (c *fakeCatalog) LookupExact(_ context.Context, name, provider string) (*Product, error) {
	if p, ok := c.exact[[2]string{name, provider}]; ok {
		return p, nil
	}
	return nil, nil
}

func (c *fakeCatalog) ListCandidates(_ context.Context, provider string) ([]Product, error) {
	if provider == "" {
		return c.products, nil
	}
	var out []Product
	for _, p := range c.products {
		if Normalize(p.Provider) == provider {
			out = append(out, p)
		}
	}
	return out, nil
}

func extracted(name, provider string) *extract.ExtractedData {
	d := &extract.ExtractedData{}
	d.BasicInfo.InsuranceName = name
	d.BasicInfo.InsuranceProvider = provider
	return d
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PruShield Life Insurance", "prushield life insurance"},
		{"  Great-Eastern   Supreme  ", "great eastern supreme"},
		{"AIA HealthShield Gold Max (Plan A)", "aia healthshield gold max plan a"},
		{"a/b", "a b"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestFuzzyKeyDropsStopwordsAndSpacing(t *testing.T) {
	assert.Equal(t, fuzzyKey(Normalize("Pru Shield Life")), fuzzyKey(Normalize("PruShield Life Insurance")))
	assert.Equal(t, "prushieldlife", fuzzyKey("pru shield life insurance"))
	// all-stopword names fall back to the squashed original instead of ""
	assert.Equal(t, "theinsuranceco", fuzzyKey("the insurance co"))
}

func TestMatchExact(t *testing.T) {
	id := uuid.New()
	catalog := &fakeCatalog{
		exact: map[[2]string]*Product{
			{"prushield life", "prudential"}: {ID: id, Name: "PruShield Life", Provider: "Prudential"},
		},
	}
	m := NewMatcher(catalog, Config{}, nil)

	got, err := m.Match(context.Background(), extracted("PruShield Life", "Prudential"))
	require.NoError(t, err)
	require.NotNil(t, got.ExactMatch)
	assert.Equal(t, id, got.ExactMatch.InsuranceID)
	assert.Equal(t, 1.0, got.MatchConfidence)
	assert.False(t, got.RequiresManualInput)
	assert.Empty(t, got.FuzzyMatches)
}

func TestMatchFuzzySpacingVariant(t *testing.T) {
	id := uuid.New()
	catalog := &fakeCatalog{
		products: []Product{
			{ID: id, Name: "PruShield Life Insurance", Provider: "Prudential"},
			{ID: uuid.New(), Name: "Great Wealth Builder", Provider: "Great Eastern"},
		},
	}
	m := NewMatcher(catalog, Config{}, nil)

	// extracted name differs in spacing and filler words only
	got, err := m.Match(context.Background(), extracted("Pru Shield Life", "Prudential"))
	require.NoError(t, err)
	assert.Nil(t, got.ExactMatch)
	require.NotEmpty(t, got.FuzzyMatches)
	assert.Equal(t, id, got.FuzzyMatches[0].InsuranceID)
	assert.Equal(t, 1.0, got.MatchConfidence)
	assert.False(t, got.RequiresManualInput)
}

func TestMatchEmptyNameRequiresManualInput(t *testing.T) {
	m := NewMatcher(&fakeCatalog{}, Config{}, nil)
	got, err := m.Match(context.Background(), extracted("  ", "Prudential"))
	require.NoError(t, err)
	assert.True(t, got.RequiresManualInput)
	assert.Nil(t, got.ExactMatch)
	assert.Zero(t, got.MatchConfidence)
}

func TestMatchNoCandidatesAboveFloor(t *testing.T) {
	catalog := &fakeCatalog{
		products: []Product{
			{ID: uuid.New(), Name: "Zenith Retirement Saver", Provider: "Manulife"},
		},
	}
	m := NewMatcher(catalog, Config{CandidateFloor: 0.5}, nil)

	got, err := m.Match(context.Background(), extracted("PruShield Life", "Prudential"))
	require.NoError(t, err)
	assert.True(t, got.RequiresManualInput)
	assert.Empty(t, got.FuzzyMatches)
	assert.Zero(t, got.MatchConfidence)
}

func TestMatchBelowAcceptThresholdKeepsCandidates(t *testing.T) {
	catalog := &fakeCatalog{
		products: []Product{
			{ID: uuid.New(), Name: "PruShield Standard", Provider: "Prudential"},
		},
	}
	m := NewMatcher(catalog, Config{AcceptThreshold: 0.99, CandidateFloor: 0.30}, nil)

	got, err := m.Match(context.Background(), extracted("PruShield Premier", "Prudential"))
	require.NoError(t, err)
	require.NotEmpty(t, got.FuzzyMatches)
	assert.True(t, got.RequiresManualInput)
	assert.Less(t, got.MatchConfidence, 0.99)
}

func TestMatchScoresSortedAndCapped(t *testing.T) {
	catalog := &fakeCatalog{products: []Product{
		{ID: uuid.New(), Name: "Shield Plan A", Provider: "AIA"},
		{ID: uuid.New(), Name: "Shield Plan B", Provider: "AIA"},
		{ID: uuid.New(), Name: "Shield Plan C", Provider: "AIA"},
		{ID: uuid.New(), Name: "Shield Plan D", Provider: "AIA"},
	}}
	m := NewMatcher(catalog, Config{MaxCandidates: 3, CandidateFloor: 0.1}, nil)

	got, err := m.Match(context.Background(), extracted("Shield Plan", "AIA"))
	require.NoError(t, err)
	require.LessOrEqual(t, len(got.FuzzyMatches), 3)
	for i := 1; i < len(got.FuzzyMatches); i++ {
		assert.GreaterOrEqual(t, got.FuzzyMatches[i-1].SimilarityScore, got.FuzzyMatches[i].SimilarityScore)
	}
	for _, fm := range got.FuzzyMatches {
		assert.GreaterOrEqual(t, fm.SimilarityScore, 0.0)
		assert.LessOrEqual(t, fm.SimilarityScore, 1.0)
	}
}

func TestMatchTieBreakPrefersExtractedProvider(t *testing.T) {
	want := uuid.New()
	catalog := &fakeCatalog{products: []Product{
		{ID: uuid.New(), Name: "Lifetime Cover", Provider: "Aviva"},
		{ID: want, Name: "Lifetime Cover", Provider: "Prudential"},
	}}
	m := NewMatcher(catalog, Config{}, nil)

	// no provider scoping hit on Aviva+Prudential together: query catalog-wide
	got, err := m.Match(context.Background(), extracted("Lifetime Cover", "Zurich"))
	require.NoError(t, err)
	require.Len(t, got.FuzzyMatches, 2)
	// equal scores, neither provider matches: deterministic name order, then
	// provider preference when one matches
	got2, err := m.Match(context.Background(), extracted("Lifetime Cover", "Prudential"))
	require.NoError(t, err)
	require.NotEmpty(t, got2.FuzzyMatches)
	assert.Equal(t, want, got2.FuzzyMatches[0].InsuranceID)
}

func TestMatchFallsBackToCatalogWideWhenProviderUnknown(t *testing.T) {
	id := uuid.New()
	catalog := &fakeCatalog{products: []Product{
		{ID: id, Name: "Global Term Cover", Provider: "Allianz"},
	}}
	m := NewMatcher(catalog, Config{}, nil)

	got, err := m.Match(context.Background(), extracted("Global Term Cover", "Misread Provider"))
	require.NoError(t, err)
	require.NotEmpty(t, got.FuzzyMatches)
	assert.Equal(t, id, got.FuzzyMatches[0].InsuranceID)
	assert.Equal(t, 1.0, got.MatchConfidence)
}
