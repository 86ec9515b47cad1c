package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	entillustration "github.com/advisorhq/proposal-pipeline/gen/ent/illustration"
)

// ErrNotFailed is returned when a failure-recovery operation targets a row that
// is not in a failed state.
var ErrNotFailed = errors.New("not in a failed state")

type IllustrationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Illustration, error)
	ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]*ent.Illustration, error)
	CountByProposal(ctx context.Context, proposalID uuid.UUID) (int, error)
	Create(ctx context.Context, proposalID uuid.UUID, order int, filename string, sizeBytes int, blobID string) (*ent.Illustration, error)

	// MarkProcessing advances PENDING -> PROCESSING. Returns false when the row
	// is gone or not pending, which callers treat as "skip this attempt".
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	// FinishExtraction writes a completed extraction result. The extracted
	// payload is only written while the advisor has not touched the record
	// (review_status PENDING); later attempts update status and confidence but
	// leave advisor edits intact. Returns false when the row no longer exists
	// or was not processing (deleted mid-flight, or a duplicate attempt).
	FinishExtraction(ctx context.Context, id uuid.UUID, data json.RawMessage, confidence float32, notes string) (bool, error)
	// FailExtraction records a terminal per-file failure with a descriptive note.
	FailExtraction(ctx context.Context, id uuid.UUID, notes string) (bool, error)
	// ResetForRetry moves FAILED back to PENDING for an explicit retry.
	ResetForRetry(ctx context.Context, id uuid.UUID) (bool, error)

	SetDatabaseMatch(ctx context.Context, id uuid.UUID, match json.RawMessage) error
	SetSelectedProduct(ctx context.Context, id uuid.UUID, insuranceID uuid.UUID) error
	UpdateExtractedData(ctx context.Context, id uuid.UUID, data json.RawMessage, reviewStatus constants.ReviewStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type illustrationRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewIllustrationRepository(entc *ent.Client, logger *slog.Logger) IllustrationRepository {
	return &illustrationRepo{ent: entc, logger: logger}
}

func (r *illustrationRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Illustration, error) {
	return r.ent.Illustration.Get(ctx, id)
}

func (r *illustrationRepo) ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]*ent.Illustration, error) {
	rows, err := r.ent.Illustration.Query().
		Where(entillustration.ProposalID(proposalID)).
		Order(ent.Asc(entillustration.FieldOrder)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list illustrations", "proposal_id", proposalID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *illustrationRepo) CountByProposal(ctx context.Context, proposalID uuid.UUID) (int, error) {
	return r.ent.Illustration.Query().
		Where(entillustration.ProposalID(proposalID)).
		Count(ctx)
}

func (r *illustrationRepo) Create(ctx context.Context, proposalID uuid.UUID, order int, filename string, sizeBytes int, blobID string) (*ent.Illustration, error) {
	row, err := r.ent.Illustration.Create().
		SetProposalID(proposalID).
		SetOrder(order).
		SetOriginalFilename(filename).
		SetFileSizeBytes(sizeBytes).
		SetBlobID(blobID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create illustration", "proposal_id", proposalID, "filename", filename, "error", err)
		return nil, err
	}
	r.logger.Info("illustration created", "illustration_id", row.ID, "proposal_id", proposalID, "order", order)
	return row, nil
}

func (r *illustrationRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Illustration.Update().
		Where(
			entillustration.ID(id),
			entillustration.ExtractionStatus(string(constants.ExtractionPending)),
		).
		SetExtractionStatus(string(constants.ExtractionProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark illustration processing", "illustration_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *illustrationRepo) FinishExtraction(ctx context.Context, id uuid.UUID, data json.RawMessage, confidence float32, notes string) (bool, error) {
	// Full write, only while the advisor has not edited the record.
	n, err := r.ent.Illustration.Update().
		Where(
			entillustration.ID(id),
			entillustration.ExtractionStatus(string(constants.ExtractionProcessing)),
			entillustration.ReviewStatus(string(constants.ReviewPending)),
		).
		SetExtractionStatus(string(constants.ExtractionCompleted)).
		SetExtractedData(data).
		SetExtractionConfidence(confidence).
		SetProcessingNotes(notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish extraction", "illustration_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.logger.Info("extraction completed", "illustration_id", id, "confidence", confidence)
		return true, nil
	}

	// Advisor already edited this record: record the outcome without touching data.
	n, err = r.ent.Illustration.Update().
		Where(
			entillustration.ID(id),
			entillustration.ExtractionStatus(string(constants.ExtractionProcessing)),
		).
		SetExtractionStatus(string(constants.ExtractionCompleted)).
		SetExtractionConfidence(confidence).
		SetProcessingNotes(notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish extraction (status only)", "illustration_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.logger.Info("extraction completed, advisor edits preserved", "illustration_id", id)
	}
	return n > 0, nil
}

func (r *illustrationRepo) FailExtraction(ctx context.Context, id uuid.UUID, notes string) (bool, error) {
	n, err := r.ent.Illustration.Update().
		Where(
			entillustration.ID(id),
			entillustration.ExtractionStatus(string(constants.ExtractionProcessing)),
		).
		SetExtractionStatus(string(constants.ExtractionFailed)).
		SetProcessingNotes(notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record extraction failure", "illustration_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.logger.Warn("extraction failed", "illustration_id", id, "notes", notes)
	}
	return n > 0, nil
}

func (r *illustrationRepo) ResetForRetry(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.Illustration.Update().
		Where(
			entillustration.ID(id),
			entillustration.ExtractionStatus(string(constants.ExtractionFailed)),
		).
		SetExtractionStatus(string(constants.ExtractionPending)).
		SetProcessingNotes("").
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to reset illustration for retry", "illustration_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *illustrationRepo) SetDatabaseMatch(ctx context.Context, id uuid.UUID, match json.RawMessage) error {
	_, err := r.ent.Illustration.UpdateOneID(id).
		SetDatabaseMatch(match).
		Save(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to set database match", "illustration_id", id, "error", err)
	}
	return err
}

func (r *illustrationRepo) SetSelectedProduct(ctx context.Context, id uuid.UUID, insuranceID uuid.UUID) error {
	_, err := r.ent.Illustration.UpdateOneID(id).
		SetSelectedInsuranceID(insuranceID).
		SetReviewStatus(string(constants.ReviewApproved)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set selected product", "illustration_id", id, "insurance_id", insuranceID, "error", err)
		return err
	}
	r.logger.Info("product selection confirmed", "illustration_id", id, "insurance_id", insuranceID)
	return nil
}

func (r *illustrationRepo) UpdateExtractedData(ctx context.Context, id uuid.UUID, data json.RawMessage, reviewStatus constants.ReviewStatus) error {
	_, err := r.ent.Illustration.UpdateOneID(id).
		SetExtractedData(data).
		SetReviewStatus(string(reviewStatus)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update extracted data", "illustration_id", id, "error", err)
		return err
	}
	r.logger.Info("extracted data updated by advisor", "illustration_id", id, "review_status", reviewStatus)
	return nil
}

func (r *illustrationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Illustration.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete illustration", "illustration_id", id, "error", err)
		return err
	}
	r.logger.Info("illustration deleted", "illustration_id", id)
	return nil
}
