package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/internal/render"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

// GenerateStage renders every output page of a proposal. A fatal render error
// moves the proposal to FAILED while keeping all extraction and match data, so
// a retry starts from generation rather than from upload.
type GenerateStage struct {
	Proposals repository.ProposalRepository
	Renderer  render.PageRenderer
	Logger    *slog.Logger
}

func NewGenerateStage(props repository.ProposalRepository, r render.PageRenderer, logger *slog.Logger) *GenerateStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerateStage{Proposals: props, Renderer: r, Logger: logger}
}

func (s *GenerateStage) Run(ctx context.Context, proposalID uuid.UUID) error {
	row, err := s.Proposals.GetByID(ctx, proposalID)
	if err != nil {
		if isNotFound(err) {
			s.Logger.Info("proposal gone before generation, discarding", "proposal_id", proposalID)
			return nil
		}
		return fmt.Errorf("load proposal: %w", err)
	}
	if row.Status != string(constants.ProposalGenerating) {
		s.Logger.Info("proposal not generating, skipping", "proposal_id", proposalID, "status", row.Status)
		return nil
	}

	for page := constants.PageTitle; page <= constants.PageRecommendation; page++ {
		if _, err := s.Renderer.Render(ctx, proposalID, page); err != nil {
			note := fmt.Sprintf("rendering page %d failed: %v", page, err)
			if ferr := s.Proposals.MarkFailed(ctx, proposalID, constants.ProposalGenerating, note); ferr != nil {
				return fmt.Errorf("mark proposal failed: %w", ferr)
			}
			return nil
		}
		s.Logger.Debug("page rendered", "proposal_id", proposalID, "page", page)
	}

	if err := s.Proposals.SetGeneratedAt(ctx, proposalID, time.Now()); err != nil {
		return fmt.Errorf("set generated_at: %w", err)
	}
	if err := s.Proposals.SetStatus(ctx, proposalID, constants.ProposalCompleted); err != nil {
		return fmt.Errorf("complete proposal: %w", err)
	}
	s.Logger.Info("proposal generation completed", "proposal_id", proposalID)
	return nil
}
