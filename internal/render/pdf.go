package render

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

// pdfRenderer lays each logical page out as a pdfcpu create-JSON description,
// runs it through pdfcpu and hands back the resulting bytes. The full document
// is the four pages merged and optimized.
type pdfRenderer struct {
	proposals     repository.ProposalRepository
	illustrations repository.IllustrationRepository
	jobs          repository.AnalysisJobRepository
	logger        *slog.Logger
}

func NewPDFRenderer(
	proposals repository.ProposalRepository,
	illustrations repository.IllustrationRepository,
	jobs repository.AnalysisJobRepository,
	logger *slog.Logger,
) PageRenderer {
	return &pdfRenderer{proposals: proposals, illustrations: illustrations, jobs: jobs, logger: logger}
}

func (r *pdfRenderer) Render(ctx context.Context, proposalID uuid.UUID, page int) ([]byte, error) {
	if !constants.ValidPage(page) {
		return nil, fmt.Errorf("invalid page number %d", page)
	}
	m, err := r.loadMaterial(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	tmp, err := os.MkdirTemp("", "proposal-render-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create render workspace: %w", err)
	}
	defer os.RemoveAll(tmp)

	out, err := r.renderPageFile(m, page, tmp)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(out)
}

func (r *pdfRenderer) RenderFull(ctx context.Context, proposalID uuid.UUID) ([]byte, error) {
	m, err := r.loadMaterial(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	tmp, err := os.MkdirTemp("", "proposal-render-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create render workspace: %w", err)
	}
	defer os.RemoveAll(tmp)

	pageFiles := make([]string, 0, constants.PageCount)
	for page := constants.PageTitle; page <= constants.PageRecommendation; page++ {
		out, err := r.renderPageFile(m, page, tmp)
		if err != nil {
			return nil, err
		}
		pageFiles = append(pageFiles, out)
	}

	merged := filepath.Join(tmp, "merged.pdf")
	if err := api.MergeCreateFile(pageFiles, merged, false, renderConfig()); err != nil {
		return nil, fmt.Errorf("failed to merge proposal pages: %w", err)
	}
	optimized := filepath.Join(tmp, "final.pdf")
	if err := api.OptimizeFile(merged, optimized, renderConfig()); err != nil {
		return nil, fmt.Errorf("failed to optimize proposal document: %w", err)
	}
	data, err := os.ReadFile(optimized)
	if err != nil {
		return nil, err
	}
	r.logger.Info("rendered full proposal document",
		"proposal_id", proposalID, "size_bytes", len(data))
	return data, nil
}

// renderPageFile writes the page description JSON and runs pdfcpu create on it.
func (r *pdfRenderer) renderPageFile(m *material, page int, dir string) (string, error) {
	desc, err := json.Marshal(r.pageDescription(m, page))
	if err != nil {
		return "", fmt.Errorf("failed to encode page %d layout: %w", page, err)
	}
	jsonPath := filepath.Join(dir, fmt.Sprintf("page_%d.json", page))
	if err := os.WriteFile(jsonPath, desc, 0o644); err != nil {
		return "", fmt.Errorf("failed to write page %d layout: %w", page, err)
	}
	outPath := filepath.Join(dir, fmt.Sprintf("page_%d.pdf", page))
	if err := api.CreateFile("", jsonPath, outPath, renderConfig()); err != nil {
		return "", fmt.Errorf("failed to render page %d: %w", page, err)
	}
	return outPath, nil
}

func renderConfig() *model.Configuration {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return cfg
}

// material is everything a page layout can draw from.
type material struct {
	proposal      *ent.Proposal
	illustrations []illustrationContent
	job           *ent.AnalysisJob
}

type illustrationContent struct {
	row  *ent.Illustration
	data *extract.ExtractedData
}

func (r *pdfRenderer) loadMaterial(ctx context.Context, proposalID uuid.UUID) (*material, error) {
	proposal, err := r.proposals.GetByID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	rows, err := r.illustrations.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	job, err := r.jobs.GetByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	m := &material{proposal: proposal, job: job}
	for _, row := range rows {
		if constants.ExtractionStatus(row.ExtractionStatus) != constants.ExtractionCompleted || len(row.ExtractedData) == 0 {
			continue
		}
		var data extract.ExtractedData
		if err := json.Unmarshal(row.ExtractedData, &data); err != nil {
			r.logger.Warn("skipping illustration with unreadable extracted data",
				"illustration_id", row.ID, "error", err)
			continue
		}
		m.illustrations = append(m.illustrations, illustrationContent{row: row, data: &data})
	}
	return m, nil
}

// pageDescription builds the pdfcpu create-JSON document for one page.
func (r *pdfRenderer) pageDescription(m *material, page int) map[string]any {
	var lines []textLine
	switch page {
	case constants.PageTitle:
		lines = r.titlePage(m)
	case constants.PageFeatures:
		lines = r.featuresPage(m)
	case constants.PageComparison:
		lines = r.comparisonPage(m)
	case constants.PageRecommendation:
		lines = r.recommendationPage(m)
	}
	return pageDoc(lines)
}

type textLine struct {
	text string
	size int
	bold bool
}

func heading(s string) textLine { return textLine{text: s, size: 22, bold: true} }
func sub(s string) textLine     { return textLine{text: s, size: 14, bold: true} }
func body(s string) textLine    { return textLine{text: s, size: 11} }

func (r *pdfRenderer) titlePage(m *material) []textLine {
	p := m.proposal
	lines := []textLine{
		heading("Insurance Proposal"),
		sub("Prepared for " + p.ClientName),
		body("Proposal type: " + p.ProposalType),
		body("Currency: " + p.TargetCurrency),
		body("Date: " + time.Now().Format("2 January 2006")),
	}
	if p.ClientNeeds != "" {
		lines = append(lines, body(""), sub("Client needs"), body(p.ClientNeeds))
	}
	return lines
}

func (r *pdfRenderer) featuresPage(m *material) []textLine {
	lines := []textLine{heading("Policy Features")}
	for _, ill := range m.illustrations {
		info := ill.data.BasicInfo
		lines = append(lines, body(""),
			sub(fmt.Sprintf("%s (%s)", info.InsuranceName, info.InsuranceProvider)))
		fin := ill.data.FinancialData
		lines = append(lines,
			body(fmt.Sprintf("Death benefit: %s %.2f", info.Currency, fin.DeathBenefit)),
			body(fmt.Sprintf("Annual premium: %s %.2f over %d years", info.Currency, fin.PremiumPerYear, fin.PaymentPeriod)))
		if b := ill.data.PolicyDetails.Benefits; b != "" {
			lines = append(lines, body("Benefits: "+b))
		}
		if e := ill.data.PolicyDetails.Exclusions; e != "" {
			lines = append(lines, body("Exclusions: "+e))
		}
	}
	if len(m.illustrations) == 0 {
		lines = append(lines, body("No extracted policy data available."))
	}
	return lines
}

func (r *pdfRenderer) comparisonPage(m *material) []textLine {
	lines := []textLine{heading("Cash Value Comparison")}
	if m.job == nil || constants.AnalysisStatus(m.job.Status) != constants.AnalysisCompleted {
		lines = append(lines, body(""), body("Analysis in progress. This page will be available shortly."))
		return lines
	}
	ages := m.job.SelectedAges
	for _, ill := range m.illustrations {
		if !ill.data.CashValueData.HasCashValue {
			continue
		}
		info := ill.data.BasicInfo
		lines = append(lines, body(""), sub(info.InsuranceName))
		valueAt := make(map[int]float64, len(ill.data.CashValueData.CashValues))
		for _, p := range ill.data.CashValueData.CashValues {
			valueAt[p.Age] = p.Value
		}
		for _, age := range ages {
			if v, ok := valueAt[age]; ok {
				lines = append(lines, body(fmt.Sprintf("Age %d: %s %.2f", age, info.Currency, v)))
			}
		}
	}
	return lines
}

func (r *pdfRenderer) recommendationPage(m *material) []textLine {
	lines := []textLine{heading("Recommendation")}
	for _, ill := range m.illustrations {
		if ill.row.SelectedInsuranceID == nil {
			continue
		}
		info := ill.data.BasicInfo
		lines = append(lines, body(""),
			sub(fmt.Sprintf("%s by %s", info.InsuranceName, info.InsuranceProvider)))
		for _, rt := range ill.data.Ratings {
			lines = append(lines, body(fmt.Sprintf("%s rating: %s", rt.Agency, rt.Grade)))
		}
	}
	lines = append(lines, body(""),
		body("Please review the illustrated values with your advisor before signing."))
	return lines
}

// pageDoc converts the line list into pdfcpu's create-JSON shape, flowing
// text top to bottom on a single A4 page.
func pageDoc(lines []textLine) map[string]any {
	texts := make([]map[string]any, 0, len(lines))
	y := 780.0
	for _, ln := range lines {
		if ln.text == "" {
			y -= 10
			continue
		}
		font := "Helvetica"
		if ln.bold {
			font = "Helvetica-Bold"
		}
		texts = append(texts, map[string]any{
			"value":    ln.text,
			"position": []float64{60, y},
			"font": map[string]any{
				"name": font,
				"size": ln.size,
			},
		})
		y -= float64(ln.size) + 8
	}
	return map[string]any{
		"paper":  "A4",
		"origin": "upperLeft",
		"pages": map[string]any{
			"1": map[string]any{
				"content": map[string]any{
					"text": texts,
				},
			},
		},
	}
}
