package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/match"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

// MatchStage reconciles a freshly extracted illustration against the catalog
// and stores the result. Ambiguity is data (requires_manual_input), never an
// error; only catalog read failures propagate.
type MatchStage struct {
	Illustrations repository.IllustrationRepository
	Matcher       *match.Matcher
	Logger        *slog.Logger
}

func NewMatchStage(ills repository.IllustrationRepository, m *match.Matcher, logger *slog.Logger) *MatchStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchStage{Illustrations: ills, Matcher: m, Logger: logger}
}

func (s *MatchStage) Run(ctx context.Context, illustrationID uuid.UUID, data *extract.ExtractedData) error {
	result, err := s.Matcher.Match(ctx, data)
	if err != nil {
		return fmt.Errorf("match products: %w", err)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode match result: %w", err)
	}
	if err := s.Illustrations.SetDatabaseMatch(ctx, illustrationID, raw); err != nil {
		if isNotFound(err) {
			s.Logger.Info("illustration deleted before match write, discarding", "illustration_id", illustrationID)
			return nil
		}
		return fmt.Errorf("persist match result: %w", err)
	}

	s.Logger.Debug("match stage done",
		"illustration_id", illustrationID,
		"exact", result.ExactMatch != nil,
		"confidence", result.MatchConfidence,
		"requires_manual_input", result.RequiresManualInput,
	)
	return nil
}
