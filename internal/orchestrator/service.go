package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/render"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
	"github.com/advisorhq/proposal-pipeline/internal/storage"
)

// Service is the synchronous front of the pipeline: it owns upload and review
// mutations, hands long-running work to the queue, and serves rendered output.
// Per-proposal writes are serialized through the keyed mutex so concurrent
// API calls cannot interleave status checks and updates.
type Service struct {
	proposals     repository.ProposalRepository
	illustrations repository.IllustrationRepository
	products      repository.ProductRepository
	jobs          repository.AnalysisJobRepository
	blobs         storage.BlobStore
	queue         async.Queue
	renderer      render.PageRenderer
	pages         *gocache.Cache
	locks         *common.KeyedMutex
	logger        *slog.Logger
}

func NewService(
	proposals repository.ProposalRepository,
	illustrations repository.IllustrationRepository,
	products repository.ProductRepository,
	jobs repository.AnalysisJobRepository,
	blobs storage.BlobStore,
	queue async.Queue,
	renderer render.PageRenderer,
	pageCacheTTL time.Duration,
	locks *common.KeyedMutex,
	logger *slog.Logger,
) *Service {
	return &Service{
		proposals:     proposals,
		illustrations: illustrations,
		products:      products,
		jobs:          jobs,
		blobs:         blobs,
		queue:         queue,
		renderer:      renderer,
		pages:         gocache.New(pageCacheTTL, 2*pageCacheTTL),
		locks:         locks,
		logger:        logger,
	}
}

// CreateProposalInput carries the advisor-entered proposal header.
type CreateProposalInput struct {
	ClientName     string
	ClientNeeds    string
	ProposalType   string
	TargetCurrency string
}

func (in *CreateProposalInput) validate() error {
	if strings.TrimSpace(in.ClientName) == "" {
		return common.NewValidationError("client_name", "client name is required")
	}
	if strings.TrimSpace(in.ProposalType) == "" {
		return common.NewValidationError("proposal_type", "proposal type is required")
	}
	cur := strings.ToUpper(strings.TrimSpace(in.TargetCurrency))
	if len(cur) != 3 {
		return common.NewValidationError("target_currency", "currency must be a 3-letter ISO code, got %q", in.TargetCurrency)
	}
	for _, c := range cur {
		if c < 'A' || c > 'Z' {
			return common.NewValidationError("target_currency", "currency must be a 3-letter ISO code, got %q", in.TargetCurrency)
		}
	}
	in.TargetCurrency = cur
	return nil
}

func (s *Service) CreateProposal(ctx context.Context, in CreateProposalInput) (*ent.Proposal, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.proposals.Create(ctx, strings.TrimSpace(in.ClientName), strings.TrimSpace(in.ClientNeeds),
		strings.TrimSpace(in.ProposalType), in.TargetCurrency)
}

func (s *Service) GetProposal(ctx context.Context, id uuid.UUID) (*ent.Proposal, error) {
	row, err := s.proposals.GetByID(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	return row, err
}

func (s *Service) ListIllustrations(ctx context.Context, proposalID uuid.UUID) ([]*ent.Illustration, error) {
	if ok, err := s.proposals.Exists(ctx, proposalID); err != nil {
		return nil, err
	} else if !ok {
		return nil, common.ErrNotFound
	}
	return s.illustrations.ListByProposal(ctx, proposalID)
}

// DeleteProposal removes the proposal, its illustration rows (by cascade) and
// their stored blobs, and drops any cached pages.
func (s *Service) DeleteProposal(ctx context.Context, id uuid.UUID) error {
	s.locks.Lock(id)
	defer s.locks.Unlock(id)

	rows, err := s.illustrations.ListByProposal(ctx, id)
	if err != nil {
		return err
	}
	if err := s.proposals.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	for _, row := range rows {
		if err := s.blobs.Delete(ctx, row.BlobID); err != nil {
			s.logger.Warn("failed to delete blob for removed proposal",
				"proposal_id", id, "blob_id", row.BlobID, "error", err)
		}
	}
	s.invalidateAllPages(id)
	s.logger.Info("proposal deleted", "proposal_id", id, "illustrations", len(rows))
	return nil
}

func pageCacheKey(proposalID uuid.UUID, page int) string {
	return fmt.Sprintf("%s:%d", proposalID, page)
}

// InvalidatePage drops one cached rendered page. Satisfies the analysis
// coordinator's invalidator so a finished analysis refreshes the comparison
// page.
func (s *Service) InvalidatePage(proposalID uuid.UUID, page int) {
	s.pages.Delete(pageCacheKey(proposalID, page))
}

func (s *Service) invalidateAllPages(proposalID uuid.UUID) {
	for page := constants.PageTitle; page <= constants.PageRecommendation; page++ {
		s.pages.Delete(pageCacheKey(proposalID, page))
	}
}
