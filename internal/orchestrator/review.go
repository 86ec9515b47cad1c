package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/lifecycle"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

// SelectProduct records the advisor's manual resolution of an illustration to
// a catalog product and approves the row for generation.
func (s *Service) SelectProduct(ctx context.Context, proposalID, illustrationID, productID uuid.UUID) error {
	s.locks.Lock(proposalID)
	defer s.locks.Unlock(proposalID)

	row, err := s.reviewableIllustration(ctx, proposalID, illustrationID)
	if err != nil {
		return err
	}
	if constants.ExtractionStatus(row.ExtractionStatus) != constants.ExtractionCompleted {
		return common.FailedPreconditionError("illustration has no completed extraction to resolve")
	}

	if ok, err := s.products.Exists(ctx, productID); err != nil {
		return err
	} else if !ok {
		return common.NewValidationError("product_id", "product %s is not in the catalog", productID)
	}

	if err := s.illustrations.SetSelectedProduct(ctx, illustrationID, productID); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	s.logger.Info("product selected",
		"proposal_id", proposalID, "illustration_id", illustrationID, "product_id", productID)
	return nil
}

// UpdateExtractedData applies an advisor's corrections to the extracted
// payload. The payload is schema-validated and normalized the same way the
// extraction service output is.
func (s *Service) UpdateExtractedData(ctx context.Context, proposalID, illustrationID uuid.UUID, payload json.RawMessage) error {
	s.locks.Lock(proposalID)
	defer s.locks.Unlock(proposalID)

	row, err := s.reviewableIllustration(ctx, proposalID, illustrationID)
	if err != nil {
		return err
	}
	if constants.ExtractionStatus(row.ExtractionStatus) != constants.ExtractionCompleted {
		return common.FailedPreconditionError("illustration has no completed extraction to edit")
	}

	if err := extract.ValidateJSONAgainstSchema(extract.BuildExtractionJSONSchema(), payload); err != nil {
		return common.NewValidationError("extracted_data", "payload rejected: %v", err)
	}
	var data extract.ExtractedData
	if err := json.Unmarshal(payload, &data); err != nil {
		return common.NewValidationError("extracted_data", "payload rejected: %v", err)
	}
	data.Sanitize()
	normalized, err := json.Marshal(&data)
	if err != nil {
		return common.WrapError(err, "failed to re-encode extracted data")
	}

	if err := s.illustrations.UpdateExtractedData(ctx, illustrationID, normalized, constants.ReviewInReview); err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	s.logger.Info("extracted data updated by advisor",
		"proposal_id", proposalID, "illustration_id", illustrationID)
	return nil
}

// RetryExtraction re-queues a failed illustration. A proposal that fell to
// FAILED is resumed to its prior status first.
func (s *Service) RetryExtraction(ctx context.Context, proposalID, illustrationID uuid.UUID) error {
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
	if status == constants.ProposalFailed {
		status, err = s.proposals.ResumeFromFailure(ctx, proposalID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFailed) {
				return common.FailedPreconditionError("proposal has no recorded failure to resume from")
			}
			return err
		}
	}
	switch status {
	case constants.ProposalExtracting, constants.ProposalReviewing:
	default:
		return &lifecycle.ConflictError{From: status, To: constants.ProposalExtracting, Op: "retry extraction"}
	}

	row, err := s.illustrations.GetByID(ctx, illustrationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	if row.ProposalID != proposalID {
		return common.ErrNotFound
	}

	applied, err := s.illustrations.ResetForRetry(ctx, illustrationID)
	if err != nil {
		return err
	}
	if !applied {
		return common.FailedPreconditionError("illustration is not in a failed state")
	}

	job := async.Job{Kind: async.JobExtract, ID: illustrationID, SubmittedAt: time.Now()}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return common.WrapError(err, "failed to enqueue extraction retry")
	}
	s.logger.Info("extraction retry queued",
		"proposal_id", proposalID, "illustration_id", illustrationID, "proposal_status", status)
	return nil
}

// ResumeProposal recovers a FAILED proposal to the status it failed from and
// restarts the work that was in flight there.
func (s *Service) ResumeProposal(ctx context.Context, proposalID uuid.UUID) (constants.ProposalStatus, error) {
	s.locks.Lock(proposalID)
	defer s.locks.Unlock(proposalID)

	resumed, err := s.proposals.ResumeFromFailure(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", common.ErrNotFound
		}
		if errors.Is(err, repository.ErrNotFailed) {
			return "", common.FailedPreconditionError("proposal has no recorded failure to resume from")
		}
		return "", err
	}

	switch resumed {
	case constants.ProposalExtracting:
		rows, err := s.illustrations.ListByProposal(ctx, proposalID)
		if err != nil {
			return resumed, err
		}
		for _, row := range rows {
			if constants.ExtractionStatus(row.ExtractionStatus) == constants.ExtractionFailed {
				if _, err := s.illustrations.ResetForRetry(ctx, row.ID); err != nil {
					return resumed, err
				}
			}
			st := constants.ExtractionStatus(row.ExtractionStatus)
			if st == constants.ExtractionFailed || st == constants.ExtractionPending {
				job := async.Job{Kind: async.JobExtract, ID: row.ID, SubmittedAt: time.Now()}
				if err := s.queue.Enqueue(ctx, job); err != nil {
					s.logger.Error("failed to re-enqueue extraction", "illustration_id", row.ID, "error", err)
				}
			}
		}
	case constants.ProposalGenerating:
		for _, kind := range []async.JobKind{async.JobGenerate, async.JobAnalysis} {
			job := async.Job{Kind: kind, ID: proposalID, SubmittedAt: time.Now()}
			if err := s.queue.Enqueue(ctx, job); err != nil {
				s.logger.Error("failed to re-enqueue job", "kind", kind, "proposal_id", proposalID, "error", err)
			}
		}
	}
	s.logger.Info("proposal resumed from failure", "proposal_id", proposalID, "status", resumed)
	return resumed, nil
}

// reviewableIllustration loads the illustration after confirming it belongs to
// the proposal and the proposal is open for review edits.
func (s *Service) reviewableIllustration(ctx context.Context, proposalID, illustrationID uuid.UUID) (*ent.Illustration, error) {
	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if constants.ProposalStatus(proposal.Status) != constants.ProposalReviewing {
		return nil, &lifecycle.ConflictError{
			From: constants.ProposalStatus(proposal.Status),
			To:   constants.ProposalReviewing,
			Op:   "edit during review",
		}
	}
	row, err := s.illustrations.GetByID(ctx, illustrationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if row.ProposalID != proposalID {
		return nil, common.ErrNotFound
	}
	return row, nil
}
