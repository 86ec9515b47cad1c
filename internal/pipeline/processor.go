package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/analysis"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/lifecycle"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

func isNotFound(err error) bool { return ent.IsNotFound(err) }

// Processor routes queued jobs to their stage and owns the proposal status
// advance once a stage settles. Advances take the per-proposal lock so they
// never interleave with uploads or deletes for the same proposal.
type Processor struct {
	logger        *slog.Logger
	extract       *ExtractStage
	match         *MatchStage
	generate      *GenerateStage
	coordinator   *analysis.Coordinator
	proposals     repository.ProposalRepository
	illustrations repository.IllustrationRepository
	locks         *common.KeyedMutex
}

func NewProcessor(
	logger *slog.Logger,
	extract *ExtractStage,
	match *MatchStage,
	generate *GenerateStage,
	coordinator *analysis.Coordinator,
	proposals repository.ProposalRepository,
	illustrations repository.IllustrationRepository,
	locks *common.KeyedMutex,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:        logger,
		extract:       extract,
		match:         match,
		generate:      generate,
		coordinator:   coordinator,
		proposals:     proposals,
		illustrations: illustrations,
		locks:         locks,
	}
}

// Dispatch implements async.Dispatcher.
func (p *Processor) Dispatch(ctx context.Context, job async.Job) error {
	switch job.Kind {
	case async.JobExtract:
		return p.processIllustration(ctx, job.ID)
	case async.JobAnalysis:
		return p.coordinator.Run(ctx, job.ID)
	case async.JobGenerate:
		return p.generate.Run(ctx, job.ID)
	default:
		return fmt.Errorf("unknown job kind %q", job.Kind)
	}
}

// processIllustration runs extract then match for one illustration, then
// advances the owning proposal if extraction has settled across the board.
func (p *Processor) processIllustration(ctx context.Context, illustrationID uuid.UUID) error {
	proposalID, data, err := p.extract.Run(ctx, illustrationID)
	if err != nil {
		p.logger.Error("extract stage failed", "illustration_id", illustrationID, "error", err)
		return err
	}
	if proposalID == uuid.Nil {
		// record vanished; nothing to advance
		return nil
	}

	if data != nil {
		// match failures leave database_match unset, which downstream treats
		// as requiring manual product selection
		if err := p.match.Run(ctx, illustrationID, data); err != nil {
			p.logger.Error("match stage failed", "illustration_id", illustrationID, "error", err)
		}
	}

	return p.advanceAfterExtraction(ctx, proposalID)
}

func (p *Processor) advanceAfterExtraction(ctx context.Context, proposalID uuid.UUID) error {
	p.locks.Lock(proposalID)
	defer p.locks.Unlock(proposalID)

	prop, err := p.proposals.GetByID(ctx, proposalID)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("load proposal: %w", err)
	}
	if prop.Status != string(constants.ProposalExtracting) {
		return nil
	}

	rows, err := p.illustrations.ListByProposal(ctx, proposalID)
	if err != nil {
		return fmt.Errorf("list illustrations: %w", err)
	}
	statuses := make([]constants.ExtractionStatus, 0, len(rows))
	for _, r := range rows {
		statuses = append(statuses, constants.ExtractionStatus(r.ExtractionStatus))
	}

	next, settled := lifecycle.NextAfterExtraction(lifecycle.Summarize(statuses))
	if !settled {
		return nil
	}
	if next == constants.ProposalFailed {
		return p.proposals.MarkFailed(ctx, proposalID, constants.ProposalExtracting,
			"no illustrations were extracted successfully")
	}
	p.logger.Info("extraction settled", "proposal_id", proposalID, "status", next)
	return p.proposals.SetStatus(ctx, proposalID, next)
}
