package orchestrator

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/lifecycle"
	"github.com/advisorhq/proposal-pipeline/internal/match"
)

// TriggerGeneration moves a reviewed proposal into GENERATING and queues the
// document render and the intelligent analysis. Every successfully extracted
// illustration must be resolved to a catalog product, automatically or by the
// advisor, before generation can start.
func (s *Service) TriggerGeneration(ctx context.Context, proposalID uuid.UUID) error {
	s.locks.Lock(proposalID)
	defer s.locks.Unlock(proposalID)

	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	status := constants.ProposalStatus(proposal.Status)
	if err := lifecycle.CheckTransition(status, constants.ProposalGenerating); err != nil {
		return err
	}

	rows, err := s.illustrations.ListByProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	completed := 0
	for _, row := range rows {
		if constants.ExtractionStatus(row.ExtractionStatus) != constants.ExtractionCompleted {
			continue
		}
		completed++
		if needsManualResolution(row) {
			return common.FailedPreconditionError(
				"illustration " + row.OriginalFilename + " needs a product selection before generation")
		}
	}
	if completed == 0 {
		return common.FailedPreconditionError("no successfully extracted illustrations to generate from")
	}

	if err := s.proposals.SetStatus(ctx, proposalID, constants.ProposalGenerating); err != nil {
		return err
	}
	if _, err := s.jobs.Ensure(ctx, proposalID); err != nil {
		return err
	}
	s.invalidateAllPages(proposalID)

	for _, kind := range []async.JobKind{async.JobGenerate, async.JobAnalysis} {
		job := async.Job{Kind: kind, ID: proposalID, SubmittedAt: time.Now()}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			s.logger.Error("failed to enqueue job", "kind", kind, "proposal_id", proposalID, "error", err)
		}
	}
	s.logger.Info("generation triggered", "proposal_id", proposalID, "illustrations", completed)
	return nil
}

// needsManualResolution reports whether the illustration still requires an
// advisor's product selection: no automatic match was accepted and nothing was
// picked by hand.
func needsManualResolution(row *ent.Illustration) bool {
	if row.SelectedInsuranceID != nil {
		return false
	}
	if len(row.DatabaseMatch) == 0 {
		return true
	}
	var dm match.DatabaseMatch
	if err := json.Unmarshal(row.DatabaseMatch, &dm); err != nil {
		return true
	}
	return dm.RequiresManualInput
}

// AnalysisState is the poller-facing view of the intelligent-analysis job.
type AnalysisState struct {
	Status       constants.AnalysisStatus
	SelectedAges []int
	ErrorMessage string
	CompletedAt  *time.Time
}

// GetAnalysisStatus reports the analysis job state without side effects, so
// clients can poll it as often as they like.
func (s *Service) GetAnalysisStatus(ctx context.Context, proposalID uuid.UUID) (*AnalysisState, error) {
	job, err := s.jobs.GetByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		if ok, err := s.proposals.Exists(ctx, proposalID); err != nil {
			return nil, err
		} else if !ok {
			return nil, common.ErrNotFound
		}
		return nil, common.FailedPreconditionError("analysis has not been started for this proposal")
	}
	return &AnalysisState{
		Status:       constants.AnalysisStatus(job.Status),
		SelectedAges: job.SelectedAges,
		ErrorMessage: job.ErrorMessage,
		CompletedAt:  job.CompletedAt,
	}, nil
}
