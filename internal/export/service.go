package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// the side-by-side policy comparison export.
type Service struct {
	proposals     repository.ProposalRepository
	illustrations repository.IllustrationRepository
	jobs          repository.AnalysisJobRepository
	logger        *slog.Logger
}

func NewService(proposals repository.ProposalRepository, illustrations repository.IllustrationRepository, jobs repository.AnalysisJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{proposals: proposals, illustrations: illustrations, jobs: jobs, logger: logger}
}

// ExportComparisonXLSX returns an XLSX workbook (as bytes) comparing every
// successfully extracted illustration of the proposal, one column per policy.
// When the intelligent analysis has completed, the cash value section is
// limited to the analysis-selected ages; otherwise every tabulated age appears.
func (s *Service) ExportComparisonXLSX(ctx context.Context, proposalID uuid.UUID) ([]byte, error) {
	start := time.Now()

	proposal, err := s.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("query proposal: %w", err)
	}
	rows, err := s.illustrations.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("query illustrations: %w", err)
	}

	var policies []*extract.ExtractedData
	for _, row := range rows {
		if constants.ExtractionStatus(row.ExtractionStatus) != constants.ExtractionCompleted || len(row.ExtractedData) == 0 {
			continue
		}
		var data extract.ExtractedData
		if err := json.Unmarshal(row.ExtractedData, &data); err != nil {
			s.logger.Warn("skipping illustration with unreadable extracted data",
				"illustration_id", row.ID, "error", err)
			continue
		}
		policies = append(policies, &data)
	}
	if len(policies) == 0 {
		return nil, fmt.Errorf("proposal %s has no extracted illustrations to export", proposalID)
	}

	var selectedAges []int
	if job, err := s.jobs.GetByProposal(ctx, proposalID); err != nil {
		return nil, fmt.Errorf("query analysis job: %w", err)
	} else if job != nil && constants.AnalysisStatus(job.Status) == constants.AnalysisCompleted {
		selectedAges = job.SelectedAges
	}

	f := excelize.NewFile()
	const sheet = "Comparison"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defaultIdx, _ := f.GetSheetIndex("Sheet1"); defaultIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// header row: metric label column, then one column per policy
	write(1, 1, "Client: "+proposal.ClientName)
	for i, p := range policies {
		write(i+2, 1, p.BasicInfo.InsuranceName)
	}

	metrics := []struct {
		label string
		value func(p *extract.ExtractedData) any
	}{
		{"Provider", func(p *extract.ExtractedData) any { return p.BasicInfo.InsuranceProvider }},
		{"Category", func(p *extract.ExtractedData) any { return p.BasicInfo.InsuranceCategory }},
		{"Currency", func(p *extract.ExtractedData) any { return p.BasicInfo.Currency }},
		{"Death Benefit", func(p *extract.ExtractedData) any { return p.FinancialData.DeathBenefit }},
		{"Premium / Year", func(p *extract.ExtractedData) any { return p.FinancialData.PremiumPerYear }},
		{"Payment Period (years)", func(p *extract.ExtractedData) any { return p.FinancialData.PaymentPeriod }},
		{"Total Premium", func(p *extract.ExtractedData) any { return p.FinancialData.TotalPremium }},
		{"Coverage Term (years)", func(p *extract.ExtractedData) any { return p.FinancialData.CoverageTerm }},
		{"Breakeven (years)", func(p *extract.ExtractedData) any {
			if !p.CashValueData.HasCashValue {
				return ""
			}
			return p.CashValueData.BreakevenYears
		}},
	}
	row := 2
	for _, m := range metrics {
		write(1, row, m.label)
		for i, p := range policies {
			write(i+2, row, m.value(p))
		}
		row++
	}

	row++
	write(1, row, "Cash Surrender Value")
	row++
	for _, age := range comparisonAges(policies, selectedAges) {
		write(1, row, fmt.Sprintf("Age %d", age))
		for i, p := range policies {
			if v, ok := cashValueAt(p, age); ok {
				write(i+2, row, v)
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("comparison workbook exported",
		"proposal_id", proposalID, "policies", len(policies), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

// comparisonAges picks the export's cash value axis: the analysis-selected
// ages when present, else the union of every policy's tabulated ages.
func comparisonAges(policies []*extract.ExtractedData, selected []int) []int {
	if len(selected) > 0 {
		return selected
	}
	seen := make(map[int]struct{})
	var ages []int
	for _, p := range policies {
		for _, pt := range p.CashValueData.CashValues {
			if _, ok := seen[pt.Age]; !ok {
				seen[pt.Age] = struct{}{}
				ages = append(ages, pt.Age)
			}
		}
	}
	sort.Ints(ages)
	return ages
}

func cashValueAt(p *extract.ExtractedData, age int) (float64, bool) {
	for _, pt := range p.CashValueData.CashValues {
		if pt.Age == age {
			return pt.Value, true
		}
	}
	return 0, false
}
