package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/agext/levenshtein"
	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/internal/extract"
)

// Product is the matcher's view of one catalog row.
type Product struct {
	ID       uuid.UUID
	Name     string
	Provider string
}

// Catalog is the read-only product catalog the matcher scores against.
type Catalog interface {
	// LookupExact resolves a normalized (name, provider) pair; nil when there
	// is no single unambiguous hit.
	LookupExact(ctx context.Context, normalizedName, normalizedProvider string) (*Product, error)
	// ListCandidates returns rows for fuzzy scoring, scoped to a normalized
	// provider when non-empty.
	ListCandidates(ctx context.Context, normalizedProvider string) ([]Product, error)
}

// MatchedProduct is the catalog row an illustration resolved to.
type MatchedProduct struct {
	InsuranceID   uuid.UUID `json:"insurance_id"`
	InsuranceName string    `json:"insurance_name"`
	Provider      string    `json:"provider"`
}

// FuzzyMatch is one scored candidate.
type FuzzyMatch struct {
	InsuranceID     uuid.UUID `json:"insurance_id"`
	InsuranceName   string    `json:"insurance_name"`
	Provider        string    `json:"provider"`
	SimilarityScore float64   `json:"similarity_score"`
}

// DatabaseMatch is the matcher's output for one illustration. Invariant: when
// ExactMatch is set, RequiresManualInput is false.
type DatabaseMatch struct {
	ExactMatch          *MatchedProduct `json:"exact_match,omitempty"`
	FuzzyMatches        []FuzzyMatch    `json:"fuzzy_matches,omitempty"`
	MatchConfidence     float64         `json:"match_confidence"`
	RequiresManualInput bool            `json:"requires_manual_input"`
}

// Config holds the matcher tunables. The acceptance threshold and candidate
// floor are explicit tunables, not constants.
type Config struct {
	AcceptThreshold float64 // fuzzy score at or above which no manual input is needed
	CandidateFloor  float64 // candidates scoring below this are dropped entirely
	MaxCandidates   int     // top-N kept
}

func (c *Config) applyDefaults() {
	if c.AcceptThreshold <= 0 {
		c.AcceptThreshold = 0.75
	}
	if c.CandidateFloor <= 0 {
		c.CandidateFloor = 0.30
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = 5
	}
}

// Matcher reconciles extracted product identity against the catalog. Pure
// besides the catalog read, so it unit-tests deterministically.
type Matcher struct {
	catalog Catalog
	cfg     Config
	params  *levenshtein.Params
	logger  *slog.Logger
}

func NewMatcher(catalog Catalog, cfg Config, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()
	return &Matcher{
		catalog: catalog,
		cfg:     cfg,
		params:  levenshtein.NewParams(),
		logger:  logger,
	}
}

// Match scores the extracted identity fields against the catalog.
func (m *Matcher) Match(ctx context.Context, data *extract.ExtractedData) (*DatabaseMatch, error) {
	name := Normalize(data.BasicInfo.InsuranceName)
	provider := Normalize(data.BasicInfo.InsuranceProvider)
	if name == "" {
		return &DatabaseMatch{RequiresManualInput: true}, nil
	}

	// 1) exact identity lookup
	if provider != "" {
		hit, err := m.catalog.LookupExact(ctx, name, provider)
		if err != nil {
			return nil, fmt.Errorf("exact lookup: %w", err)
		}
		if hit != nil {
			m.logger.Info("exact product match", "insurance_id", hit.ID, "name", hit.Name)
			return &DatabaseMatch{
				ExactMatch: &MatchedProduct{
					InsuranceID:   hit.ID,
					InsuranceName: hit.Name,
					Provider:      hit.Provider,
				},
				MatchConfidence:     1.0,
				RequiresManualInput: false,
			}, nil
		}
	}

	// 2) fuzzy scoring: same-provider candidates first, catalog-wide otherwise
	candidates, err := m.catalog.ListCandidates(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	if len(candidates) == 0 && provider != "" {
		candidates, err = m.catalog.ListCandidates(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("list candidates: %w", err)
		}
	}

	scored := make([]FuzzyMatch, 0, len(candidates))
	for _, cand := range candidates {
		score := m.score(name, Normalize(cand.Name))
		if score < m.cfg.CandidateFloor {
			continue
		}
		scored = append(scored, FuzzyMatch{
			InsuranceID:     cand.ID,
			InsuranceName:   cand.Name,
			Provider:        cand.Provider,
			SimilarityScore: score,
		})
	}

	// sort by score descending; equal scores prefer a provider that matches the
	// extracted provider field, then stable name order for determinism
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].SimilarityScore != scored[j].SimilarityScore {
			return scored[i].SimilarityScore > scored[j].SimilarityScore
		}
		pi := Normalize(scored[i].Provider) == provider
		pj := Normalize(scored[j].Provider) == provider
		if pi != pj {
			return pi
		}
		return scored[i].InsuranceName < scored[j].InsuranceName
	})
	if len(scored) > m.cfg.MaxCandidates {
		scored = scored[:m.cfg.MaxCandidates]
	}

	out := &DatabaseMatch{FuzzyMatches: scored}
	if len(scored) == 0 {
		out.RequiresManualInput = true
		m.logger.Info("no fuzzy candidates above floor", "name", name, "provider", provider)
		return out, nil
	}
	out.MatchConfidence = scored[0].SimilarityScore
	out.RequiresManualInput = out.MatchConfidence < m.cfg.AcceptThreshold
	m.logger.Info("fuzzy product match",
		"name", name,
		"top_candidate", scored[0].InsuranceName,
		"confidence", out.MatchConfidence,
		"requires_manual_input", out.RequiresManualInput,
		"candidates", len(scored),
	)
	return out, nil
}

// score compares two normalized names. The spaced and squashed forms are both
// scored and the better one wins, clamped to [0,1].
func (m *Matcher) score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	s := levenshtein.Similarity(a, b, m.params)
	if ks := levenshtein.Similarity(fuzzyKey(a), fuzzyKey(b), m.params); ks > s {
		s = ks
	}
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
