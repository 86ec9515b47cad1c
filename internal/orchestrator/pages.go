package orchestrator

import (
	"context"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/common"
)

// GetPage renders (or serves from cache) one logical page of the proposal
// document. Pages are available once generation has started; the comparison
// page is served as a placeholder until the analysis job settles, and
// placeholders are never cached.
func (s *Service) GetPage(ctx context.Context, proposalID uuid.UUID, page int) ([]byte, error) {
	if !constants.ValidPage(page) {
		return nil, common.NewValidationError("page", "page must be between %d and %d", constants.PageTitle, constants.PageRecommendation)
	}

	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	switch constants.ProposalStatus(proposal.Status) {
	case constants.ProposalGenerating, constants.ProposalCompleted:
	default:
		return nil, common.ErrNotReady
	}

	key := pageCacheKey(proposalID, page)
	if cached, ok := s.pages.Get(key); ok {
		return cached.([]byte), nil
	}

	// The cacheability decision is taken before rendering. The job can settle
	// while the render is in flight, and a post-render check would then cache
	// the placeholder bytes after the coordinator's invalidation already ran.
	cacheable := true
	if page == constants.PageComparison {
		job, err := s.jobs.GetByProposal(ctx, proposalID)
		if err != nil {
			return nil, err
		}
		if job == nil || constants.AnalysisStatus(job.Status) == constants.AnalysisPending {
			cacheable = false
		}
	}

	data, err := s.renderer.Render(ctx, proposalID, page)
	if err != nil {
		return nil, common.WrapError(err, "failed to render page")
	}
	if cacheable {
		s.pages.Set(key, data, gocache.DefaultExpiration)
	}
	return data, nil
}

// Download returns the full generated document. Only COMPLETED proposals can
// be downloaded.
func (s *Service) Download(ctx context.Context, proposalID uuid.UUID) ([]byte, string, error) {
	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", common.ErrNotFound
		}
		return nil, "", err
	}
	if constants.ProposalStatus(proposal.Status) != constants.ProposalCompleted {
		return nil, "", common.ErrNotReady
	}

	data, err := s.renderer.RenderFull(ctx, proposalID)
	if err != nil {
		return nil, "", common.WrapError(err, "failed to render proposal document")
	}
	filename := "proposal-" + proposalID.String() + ".pdf"
	return data, filename, nil
}
