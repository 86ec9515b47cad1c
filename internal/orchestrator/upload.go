package orchestrator

import (
	"bytes"
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/lifecycle"
)

// UploadFile is one illustration PDF received from the client.
type UploadFile struct {
	Filename string
	Data     []byte
}

// UploadIllustrations validates and persists a batch of illustration PDFs.
// The batch is atomic: every file must pass validation and there must be room
// for all of them, or nothing is stored. Each accepted file gets an extraction
// job; a DRAFT proposal moves to EXTRACTING, a REVIEWING one stays put so the
// already-reviewed rows keep their state.
func (s *Service) UploadIllustrations(ctx context.Context, proposalID uuid.UUID, files []UploadFile) ([]*ent.Illustration, error) {
	if len(files) == 0 {
		return nil, common.NewValidationError("files", "at least one file is required")
	}
	for _, f := range files {
		if err := validateUpload(f); err != nil {
			return nil, err
		}
	}

	s.locks.Lock(proposalID)
	defer s.locks.Unlock(proposalID)

	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	status := constants.ProposalStatus(proposal.Status)
	if err := lifecycle.CheckMutable(status, "upload illustrations"); err != nil {
		return nil, err
	}

	existing, err := s.illustrations.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if len(existing)+len(files) > constants.MaxIllustrationsPerProposal {
		return nil, common.NewValidationError("files",
			"proposal holds %d of %d illustrations; cannot add %d more",
			len(existing), constants.MaxIllustrationsPerProposal, len(files))
	}
	slots := freeOrderSlots(existing, len(files))

	var created []*ent.Illustration
	var storedBlobs []string
	rollback := func() {
		for _, blobID := range storedBlobs {
			if err := s.blobs.Delete(ctx, blobID); err != nil {
				s.logger.Warn("failed to clean up blob after aborted upload", "blob_id", blobID, "error", err)
			}
		}
		for _, row := range created {
			if err := s.illustrations.Delete(ctx, row.ID); err != nil {
				s.logger.Warn("failed to clean up illustration after aborted upload", "illustration_id", row.ID, "error", err)
			}
		}
	}

	for i, f := range files {
		blobID, err := s.blobs.Store(ctx, f.Data)
		if err != nil {
			rollback()
			return nil, common.WrapError(err, "failed to store uploaded file")
		}
		storedBlobs = append(storedBlobs, blobID)

		row, err := s.illustrations.Create(ctx, proposalID, slots[i], filepath.Base(f.Filename), len(f.Data), blobID)
		if err != nil {
			rollback()
			return nil, common.WrapError(err, "failed to record uploaded file")
		}
		created = append(created, row)
	}

	if status == constants.ProposalDraft {
		if err := s.proposals.SetStatus(ctx, proposalID, constants.ProposalExtracting); err != nil {
			rollback()
			return nil, err
		}
	}

	for _, row := range created {
		job := async.Job{Kind: async.JobExtract, ID: row.ID, SubmittedAt: time.Now()}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			s.logger.Error("failed to enqueue extraction", "illustration_id", row.ID, "error", err)
		}
	}
	s.logger.Info("illustrations uploaded",
		"proposal_id", proposalID, "count", len(created), "status", status)
	return created, nil
}

// DeleteIllustration removes one illustration and its blob. Allowed only while
// the proposal is mutable; in-flight extraction writes to the deleted row
// become no-ops.
func (s *Service) DeleteIllustration(ctx context.Context, proposalID, illustrationID uuid.UUID) error {
	s.locks.Lock(proposalID)
	defer s.locks.Unlock(proposalID)

	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	if err := lifecycle.CheckMutable(constants.ProposalStatus(proposal.Status), "delete illustration"); err != nil {
		return err
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

	if err := s.illustrations.Delete(ctx, illustrationID); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, row.BlobID); err != nil {
		s.logger.Warn("failed to delete blob for removed illustration",
			"illustration_id", illustrationID, "blob_id", row.BlobID, "error", err)
	}
	s.logger.Info("illustration deleted", "proposal_id", proposalID, "illustration_id", illustrationID)
	return nil
}

// validateUpload enforces the per-file rules: pdf extension, size ceiling, and
// a parseable PDF with at least one page.
func validateUpload(f UploadFile) error {
	if !constants.IsAllowedExt(filepath.Ext(f.Filename)) {
		return common.NewValidationError("files", "%s: only PDF files are accepted", f.Filename)
	}
	if len(f.Data) == 0 {
		return common.NewValidationError("files", "%s: file is empty", f.Filename)
	}
	if len(f.Data) > constants.MaxIllustrationFileSize {
		return common.NewValidationError("files", "%s: file exceeds the %d MB limit",
			f.Filename, constants.MaxIllustrationFileSize>>20)
	}

	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	pages, err := api.PageCount(bytes.NewReader(f.Data), cfg)
	if err != nil {
		return common.NewValidationError("files", "%s: not a readable PDF", f.Filename)
	}
	if pages < 1 {
		return common.NewValidationError("files", "%s: PDF has no pages", f.Filename)
	}
	return nil
}

// freeOrderSlots returns the n lowest unoccupied order positions.
func freeOrderSlots(existing []*ent.Illustration, n int) []int {
	taken := make(map[int]struct{}, len(existing))
	for _, row := range existing {
		taken[row.Order] = struct{}{}
	}
	slots := make([]int, 0, n)
	for order := 1; order <= constants.MaxIllustrationsPerProposal && len(slots) < n; order++ {
		if _, ok := taken[order]; !ok {
			slots = append(slots, order)
		}
	}
	return slots
}
