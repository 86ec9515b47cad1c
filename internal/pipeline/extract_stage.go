package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
	"github.com/advisorhq/proposal-pipeline/internal/storage"
)

// ExtractConfig holds the retry policy for extraction attempts. Only transport
// failures are retried; typed extraction errors fail the illustration at once.
type ExtractConfig struct {
	MaxAttempts    int
	RetryBackoff   time.Duration
	ExtractTimeout time.Duration
}

func (c *ExtractConfig) applyDefaults() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 2 * time.Second
	}
	if c.ExtractTimeout <= 0 {
		c.ExtractTimeout = 3 * time.Minute
	}
}

// ExtractStage runs one illustration through the document-understanding
// service and persists the outcome exactly once per attempt.
type ExtractStage struct {
	Illustrations repository.IllustrationRepository
	Blobs         storage.BlobStore
	Extractor     extract.Extractor
	Cfg           ExtractConfig
	Logger        *slog.Logger
}

func NewExtractStage(ills repository.IllustrationRepository, blobs storage.BlobStore, ex extract.Extractor, cfg ExtractConfig, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()
	return &ExtractStage{Illustrations: ills, Blobs: blobs, Extractor: ex, Cfg: cfg, Logger: logger}
}

// Run extracts one illustration. Returns the proposal ID the illustration
// belongs to (zero when the record vanished) and the decoded payload on
// success. A record deleted while extraction was in flight is discarded
// quietly: write-after-delete is a no-op, not an error.
func (s *ExtractStage) Run(ctx context.Context, illustrationID uuid.UUID) (uuid.UUID, *extract.ExtractedData, error) {
	row, err := s.Illustrations.GetByID(ctx, illustrationID)
	if err != nil {
		if isNotFound(err) {
			s.Logger.Info("illustration gone before extraction, discarding", "illustration_id", illustrationID)
			return uuid.Nil, nil, nil
		}
		return uuid.Nil, nil, fmt.Errorf("load illustration: %w", err)
	}
	proposalID := row.ProposalID

	ok, err := s.Illustrations.MarkProcessing(ctx, illustrationID)
	if err != nil {
		return proposalID, nil, fmt.Errorf("mark processing: %w", err)
	}
	if !ok {
		// already terminal or claimed by another attempt
		s.Logger.Info("illustration not pending, skipping", "illustration_id", illustrationID)
		return proposalID, nil, nil
	}

	pdf, err := s.Blobs.Fetch(ctx, row.BlobID)
	if err != nil {
		_, _ = s.Illustrations.FailExtraction(ctx, illustrationID, fmt.Sprintf("stored file unavailable: %v", err))
		return proposalID, nil, fmt.Errorf("fetch blob %s: %w", row.BlobID, err)
	}

	data, err := s.extractWithRetry(ctx, pdf)
	if err != nil {
		applied, ferr := s.Illustrations.FailExtraction(ctx, illustrationID, failureNote(err))
		if ferr != nil {
			return proposalID, nil, fmt.Errorf("record extraction failure: %w", ferr)
		}
		if !applied {
			s.Logger.Info("illustration deleted mid-extraction, result discarded", "illustration_id", illustrationID)
			return uuid.Nil, nil, nil
		}
		return proposalID, nil, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return proposalID, nil, fmt.Errorf("encode extracted data: %w", err)
	}
	applied, err := s.Illustrations.FinishExtraction(ctx, illustrationID, raw, data.Metadata.Confidence, data.Metadata.Notes)
	if err != nil {
		return proposalID, nil, fmt.Errorf("persist extraction: %w", err)
	}
	if !applied {
		s.Logger.Info("illustration deleted mid-extraction, result discarded", "illustration_id", illustrationID)
		return uuid.Nil, nil, nil
	}
	return proposalID, data, nil
}

func (s *ExtractStage) extractWithRetry(ctx context.Context, pdf []byte) (*extract.ExtractedData, error) {
	backoff := s.Cfg.RetryBackoff
	var lastErr error
	for attempt := 1; attempt <= s.Cfg.MaxAttempts; attempt++ {
		actx, cancel := context.WithTimeout(ctx, s.Cfg.ExtractTimeout)
		data, err := s.Extractor.Extract(actx, pdf)
		cancel()
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !extract.IsTransient(err) {
			return nil, err
		}
		s.Logger.Warn("transient extraction failure", "attempt", attempt, "max_attempts", s.Cfg.MaxAttempts, "error", err)
		if attempt < s.Cfg.MaxAttempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, &extract.TransientError{Cause: ctx.Err()}
			}
			backoff *= 2
		}
	}
	return nil, lastErr
}

func failureNote(err error) string {
	if extract.IsTransient(err) {
		return fmt.Sprintf("extraction service unavailable after retries: %v", err)
	}
	return err.Error()
}
