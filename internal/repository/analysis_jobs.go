package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	entjob "github.com/advisorhq/proposal-pipeline/gen/ent/analysisjob"
)

type AnalysisJobRepository interface {
	// GetByProposal returns the proposal's job, or nil when none was created.
	GetByProposal(ctx context.Context, proposalID uuid.UUID) (*ent.AnalysisJob, error)
	// Ensure creates the job in PENDING if the proposal has none yet and
	// returns it either way.
	Ensure(ctx context.Context, proposalID uuid.UUID) (*ent.AnalysisJob, error)
	// Complete records the selected ages; a no-op (false) unless still pending,
	// so the transition fires exactly once.
	Complete(ctx context.Context, proposalID uuid.UUID, selectedAges []int) (bool, error)
	Fail(ctx context.Context, proposalID uuid.UUID, message string) (bool, error)
}

type analysisJobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAnalysisJobRepository(entc *ent.Client, logger *slog.Logger) AnalysisJobRepository {
	return &analysisJobRepo{ent: entc, logger: logger}
}

func (r *analysisJobRepo) GetByProposal(ctx context.Context, proposalID uuid.UUID) (*ent.AnalysisJob, error) {
	row, err := r.ent.AnalysisJob.Query().
		Where(entjob.ProposalID(proposalID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get analysis job", "proposal_id", proposalID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *analysisJobRepo) Ensure(ctx context.Context, proposalID uuid.UUID) (*ent.AnalysisJob, error) {
	if existing, err := r.GetByProposal(ctx, proposalID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}
	row, err := r.ent.AnalysisJob.Create().
		SetProposalID(proposalID).
		Save(ctx)
	if err != nil {
		// lost a race with a concurrent Ensure; the unique index guarantees one row
		if ent.IsConstraintError(err) {
			return r.GetByProposal(ctx, proposalID)
		}
		r.logger.Error("failed to create analysis job", "proposal_id", proposalID, "error", err)
		return nil, err
	}
	r.logger.Info("analysis job created", "proposal_id", proposalID, "job_id", row.ID)
	return row, nil
}

func (r *analysisJobRepo) Complete(ctx context.Context, proposalID uuid.UUID, selectedAges []int) (bool, error) {
	n, err := r.ent.AnalysisJob.Update().
		Where(
			entjob.ProposalID(proposalID),
			entjob.Status(string(constants.AnalysisPending)),
		).
		SetStatus(string(constants.AnalysisCompleted)).
		SetSelectedAges(selectedAges).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete analysis job", "proposal_id", proposalID, "error", err)
		return false, err
	}
	if n > 0 {
		r.logger.Info("analysis job completed", "proposal_id", proposalID, "selected_ages", selectedAges)
	}
	return n > 0, nil
}

func (r *analysisJobRepo) Fail(ctx context.Context, proposalID uuid.UUID, message string) (bool, error) {
	n, err := r.ent.AnalysisJob.Update().
		Where(
			entjob.ProposalID(proposalID),
			entjob.Status(string(constants.AnalysisPending)),
		).
		SetStatus(string(constants.AnalysisFailed)).
		SetErrorMessage(message).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to fail analysis job", "proposal_id", proposalID, "error", err)
		return false, err
	}
	if n > 0 {
		r.logger.Warn("analysis job failed", "proposal_id", proposalID, "error", message)
	}
	return n > 0, nil
}
