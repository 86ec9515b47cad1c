package analysis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

// Invalidator drops cached render artifacts that depend on analysis output.
// The orchestrator's page cache implements it.
type Invalidator interface {
	InvalidatePage(proposalID uuid.UUID, page int)
}

// Coordinator resolves a proposal's pending analysis job: it reads the cash
// value tables out of the extracted illustrations, picks the comparison ages
// and settles the job exactly once.
type Coordinator struct {
	Jobs          repository.AnalysisJobRepository
	Illustrations repository.IllustrationRepository
	Cache         Invalidator
	Logger        *slog.Logger
}

func NewCoordinator(jobs repository.AnalysisJobRepository, illustrations repository.IllustrationRepository, cache Invalidator, logger *slog.Logger) *Coordinator {
	return &Coordinator{Jobs: jobs, Illustrations: illustrations, Cache: cache, Logger: logger}
}

// Start ensures the proposal has a job row so pollers see PENDING immediately.
func (c *Coordinator) Start(ctx context.Context, proposalID uuid.UUID) error {
	_, err := c.Jobs.Ensure(ctx, proposalID)
	return err
}

// Run performs the analysis for the proposal's pending job. Settled jobs and
// proposals without a job are left alone, so redelivery is harmless.
func (c *Coordinator) Run(ctx context.Context, proposalID uuid.UUID) error {
	job, err := c.Jobs.GetByProposal(ctx, proposalID)
	if err != nil {
		return err
	}
	if job == nil || constants.AnalysisStatus(job.Status) != constants.AnalysisPending {
		return nil
	}

	tables, minBreakeven, err := c.collectCashValues(ctx, proposalID)
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		applied, err := c.Jobs.Fail(ctx, proposalID, "no cash value data in any extracted illustration")
		if err != nil {
			return err
		}
		if applied {
			c.Logger.Warn("analysis failed, no cash value data", "proposal_id", proposalID)
		}
		return nil
	}

	merged := MergeCashValues(tables...)
	ages := SelectAges(merged, minBreakeven)

	applied, err := c.Jobs.Complete(ctx, proposalID, ages)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	c.Logger.Info("analysis completed", "proposal_id", proposalID, "selected_ages", ages)
	if c.Cache != nil {
		c.Cache.InvalidatePage(proposalID, constants.PageComparison)
	}
	return nil
}

// collectCashValues gathers every completed illustration's cash value table
// and the smallest positive breakeven across them.
func (c *Coordinator) collectCashValues(ctx context.Context, proposalID uuid.UUID) ([][]extract.CashValuePoint, int, error) {
	rows, err := c.Illustrations.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, 0, err
	}

	var tables [][]extract.CashValuePoint
	minBreakeven := 0
	for _, row := range rows {
		if constants.ExtractionStatus(row.ExtractionStatus) != constants.ExtractionCompleted || len(row.ExtractedData) == 0 {
			continue
		}
		var data extract.ExtractedData
		if err := json.Unmarshal(row.ExtractedData, &data); err != nil {
			c.Logger.Warn("skipping illustration with unreadable extracted data",
				"illustration_id", row.ID, "error", err)
			continue
		}
		if !data.CashValueData.HasCashValue || len(data.CashValueData.CashValues) == 0 {
			continue
		}
		tables = append(tables, data.CashValueData.CashValues)
		if by := data.CashValueData.BreakevenYears; by > 0 && (minBreakeven == 0 || by < minBreakeven) {
			minBreakeven = by
		}
	}
	return tables, minBreakeven, nil
}
