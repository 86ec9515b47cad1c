package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	entproposal "github.com/advisorhq/proposal-pipeline/gen/ent/proposal"
)

type ProposalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Proposal, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, clientName, clientNeeds, proposalType, targetCurrency string) (*ent.Proposal, error)
	SetStatus(ctx context.Context, id uuid.UUID, status constants.ProposalStatus) error
	// MarkFailed moves the proposal to FAILED, remembering the status it fell
	// from so an explicit retry can resume there.
	MarkFailed(ctx context.Context, id uuid.UUID, from constants.ProposalStatus, note string) error
	// ResumeFromFailure transitions FAILED back to the recorded prior status and
	// clears the failure bookkeeping. Returns the resumed status.
	ResumeFromFailure(ctx context.Context, id uuid.UUID) (constants.ProposalStatus, error)
	SetGeneratedAt(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type proposalRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewProposalRepository(entc *ent.Client, logger *slog.Logger) ProposalRepository {
	return &proposalRepo{ent: entc, logger: logger}
}

func (r *proposalRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Proposal, error) {
	return r.ent.Proposal.Get(ctx, id)
}

func (r *proposalRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Proposal.Query().Where(entproposal.ID(id)).Exist(ctx)
}

func (r *proposalRepo) Create(ctx context.Context, clientName, clientNeeds, proposalType, targetCurrency string) (*ent.Proposal, error) {
	row, err := r.ent.Proposal.Create().
		SetClientName(clientName).
		SetClientNeeds(clientNeeds).
		SetProposalType(proposalType).
		SetTargetCurrency(targetCurrency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create proposal", "client_name", clientName, "error", err)
		return nil, err
	}
	r.logger.Info("proposal created", "proposal_id", row.ID, "client_name", clientName)
	return row, nil
}

func (r *proposalRepo) SetStatus(ctx context.Context, id uuid.UUID, status constants.ProposalStatus) error {
	_, err := r.ent.Proposal.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set proposal status", "proposal_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("proposal status updated", "proposal_id", id, "status", status)
	return nil
}

func (r *proposalRepo) MarkFailed(ctx context.Context, id uuid.UUID, from constants.ProposalStatus, note string) error {
	_, err := r.ent.Proposal.UpdateOneID(id).
		SetStatus(string(constants.ProposalFailed)).
		SetFailedFrom(string(from)).
		SetFailureNote(note).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark proposal failed", "proposal_id", id, "error", err)
		return err
	}
	r.logger.Warn("proposal failed", "proposal_id", id, "failed_from", from, "note", note)
	return nil
}

func (r *proposalRepo) ResumeFromFailure(ctx context.Context, id uuid.UUID) (constants.ProposalStatus, error) {
	row, err := r.ent.Proposal.Get(ctx, id)
	if err != nil {
		return "", err
	}
	resume := constants.ProposalStatus(row.FailedFrom)
	if row.Status != string(constants.ProposalFailed) || resume == "" {
		return "", ErrNotFailed
	}
	_, err = r.ent.Proposal.UpdateOneID(id).
		SetStatus(string(resume)).
		SetFailedFrom("").
		SetFailureNote("").
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to resume proposal", "proposal_id", id, "error", err)
		return "", err
	}
	r.logger.Info("proposal resumed from failure", "proposal_id", id, "status", resume)
	return resume, nil
}

func (r *proposalRepo) SetGeneratedAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.ent.Proposal.UpdateOneID(id).
		SetGeneratedAt(at).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set generated_at", "proposal_id", id, "error", err)
	}
	return err
}

func (r *proposalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Proposal.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete proposal", "proposal_id", id, "error", err)
		return err
	}
	r.logger.Info("proposal deleted", "proposal_id", id)
	return nil
}
