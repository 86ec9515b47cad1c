package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
)

type stubJobs struct {
	job       *ent.AnalysisJob
	completes int
	fails     int
}

func (s *stubJobs) GetByProposal(context.Context, uuid.UUID) (*ent.AnalysisJob, error) {
	if s.job == nil {
		return nil, nil
	}
	cp := *s.job
	return &cp, nil
}

func (s *stubJobs) Ensure(_ context.Context, proposalID uuid.UUID) (*ent.AnalysisJob, error) {
	if s.job == nil {
		s.job = &ent.AnalysisJob{ID: uuid.New(), ProposalID: proposalID, Status: string(constants.AnalysisPending)}
	}
	return s.job, nil
}

func (s *stubJobs) Complete(_ context.Context, _ uuid.UUID, selectedAges []int) (bool, error) {
	if s.job == nil || s.job.Status != string(constants.AnalysisPending) {
		return false, nil
	}
	now := time.Now()
	s.job.Status = string(constants.AnalysisCompleted)
	s.job.SelectedAges = selectedAges
	s.job.CompletedAt = &now
	s.completes++
	return true, nil
}

func (s *stubJobs) Fail(_ context.Context, _ uuid.UUID, message string) (bool, error) {
	if s.job == nil || s.job.Status != string(constants.AnalysisPending) {
		return false, nil
	}
	s.job.Status = string(constants.AnalysisFailed)
	s.job.ErrorMessage = message
	s.fails++
	return true, nil
}

// stubIllustrations serves a fixed row set; the coordinator only reads.
type stubIllustrations struct {
	rows []*ent.Illustration
}

func (s *stubIllustrations) GetByID(context.Context, uuid.UUID) (*ent.Illustration, error) {
	return nil, &ent.NotFoundError{}
}

func (s *stubIllustrations) ListByProposal(context.Context, uuid.UUID) ([]*ent.Illustration, error) {
	return s.rows, nil
}

func (s *stubIllustrations) CountByProposal(context.Context, uuid.UUID) (int, error) {
	return len(s.rows), nil
}

func (s *stubIllustrations) Create(context.Context, uuid.UUID, int, string, int, string) (*ent.Illustration, error) {
	return nil, fmt.Errorf("not supported")
}

func (s *stubIllustrations) MarkProcessing(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubIllustrations) FinishExtraction(context.Context, uuid.UUID, json.RawMessage, float32, string) (bool, error) {
	return false, nil
}

func (s *stubIllustrations) FailExtraction(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}

func (s *stubIllustrations) ResetForRetry(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubIllustrations) SetDatabaseMatch(context.Context, uuid.UUID, json.RawMessage) error {
	return nil
}

func (s *stubIllustrations) SetSelectedProduct(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (s *stubIllustrations) UpdateExtractedData(context.Context, uuid.UUID, json.RawMessage, constants.ReviewStatus) error {
	return nil
}

func (s *stubIllustrations) Delete(context.Context, uuid.UUID) error { return nil }

type recordingInvalidator struct {
	pages []int
}

func (r *recordingInvalidator) InvalidatePage(_ uuid.UUID, page int) {
	r.pages = append(r.pages, page)
}

func extractedRow(data extract.ExtractedData) *ent.Illustration {
	raw, _ := json.Marshal(&data)
	return &ent.Illustration{
		ID:               uuid.New(),
		ExtractionStatus: string(constants.ExtractionCompleted),
		ExtractedData:    raw,
	}
}

func cashValueRow(breakeven int, ages ...int) *ent.Illustration {
	var data extract.ExtractedData
	data.BasicInfo.InsuranceName = "Test Policy"
	data.BasicInfo.InsuranceProvider = "Test Provider"
	data.CashValueData.HasCashValue = true
	data.CashValueData.BreakevenYears = breakeven
	for _, age := range ages {
		data.CashValueData.CashValues = append(data.CashValueData.CashValues,
			extract.CashValuePoint{Age: age, Value: float64(age) * 100})
	}
	return extractedRow(data)
}

func testCoordinator(jobs *stubJobs, ills *stubIllustrations, cache Invalidator) *Coordinator {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewCoordinator(jobs, ills, cache, logger)
}

func TestCoordinatorCompletesPendingJob(t *testing.T) {
	proposalID := uuid.New()
	jobs := &stubJobs{}
	_, err := jobs.Ensure(context.Background(), proposalID)
	require.NoError(t, err)
	ills := &stubIllustrations{rows: []*ent.Illustration{
		cashValueRow(12, 45, 50, 55, 60, 65, 70, 75, 80),
	}}
	cache := &recordingInvalidator{}
	c := testCoordinator(jobs, ills, cache)

	require.NoError(t, c.Run(context.Background(), proposalID))
	assert.Equal(t, string(constants.AnalysisCompleted), jobs.job.Status)
	assert.NotEmpty(t, jobs.job.SelectedAges)
	assert.LessOrEqual(t, len(jobs.job.SelectedAges), 5)
	assert.Contains(t, jobs.job.SelectedAges, 80, "final age always selected")
	assert.Equal(t, []int{constants.PageComparison}, cache.pages)
}

func TestCoordinatorSettlesOnce(t *testing.T) {
	proposalID := uuid.New()
	jobs := &stubJobs{}
	_, err := jobs.Ensure(context.Background(), proposalID)
	require.NoError(t, err)
	ills := &stubIllustrations{rows: []*ent.Illustration{cashValueRow(0, 50, 60, 70)}}
	cache := &recordingInvalidator{}
	c := testCoordinator(jobs, ills, cache)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Run(context.Background(), proposalID))
	}
	assert.Equal(t, 1, jobs.completes, "redelivery must not re-settle the job")
	assert.Len(t, cache.pages, 1)
}

func TestCoordinatorFailsWithoutCashValues(t *testing.T) {
	proposalID := uuid.New()
	jobs := &stubJobs{}
	_, err := jobs.Ensure(context.Background(), proposalID)
	require.NoError(t, err)

	var noCash extract.ExtractedData
	noCash.BasicInfo.InsuranceName = "Term Policy"
	noCash.BasicInfo.InsuranceProvider = "Test Provider"
	ills := &stubIllustrations{rows: []*ent.Illustration{extractedRow(noCash)}}
	cache := &recordingInvalidator{}
	c := testCoordinator(jobs, ills, cache)

	require.NoError(t, c.Run(context.Background(), proposalID))
	assert.Equal(t, string(constants.AnalysisFailed), jobs.job.Status)
	assert.Equal(t, 1, jobs.fails)
	assert.Empty(t, cache.pages, "failed analysis leaves the cache alone")
}

func TestCoordinatorSkipsMissingOrSettledJob(t *testing.T) {
	proposalID := uuid.New()
	ills := &stubIllustrations{rows: []*ent.Illustration{cashValueRow(0, 50, 60)}}

	// no job row at all
	jobs := &stubJobs{}
	c := testCoordinator(jobs, ills, &recordingInvalidator{})
	require.NoError(t, c.Run(context.Background(), proposalID))
	assert.Zero(t, jobs.completes)

	// already failed
	jobs = &stubJobs{job: &ent.AnalysisJob{ProposalID: proposalID, Status: string(constants.AnalysisFailed)}}
	c = testCoordinator(jobs, ills, &recordingInvalidator{})
	require.NoError(t, c.Run(context.Background(), proposalID))
	assert.Zero(t, jobs.completes)
}

func TestCoordinatorSkipsUnreadableAndIncompleteRows(t *testing.T) {
	proposalID := uuid.New()
	jobs := &stubJobs{}
	_, err := jobs.Ensure(context.Background(), proposalID)
	require.NoError(t, err)
	ills := &stubIllustrations{rows: []*ent.Illustration{
		{ID: uuid.New(), ExtractionStatus: string(constants.ExtractionFailed)},
		{ID: uuid.New(), ExtractionStatus: string(constants.ExtractionCompleted), ExtractedData: json.RawMessage(`{broken`)},
		cashValueRow(0, 50, 60, 70),
	}}
	c := testCoordinator(jobs, ills, &recordingInvalidator{})

	require.NoError(t, c.Run(context.Background(), proposalID))
	assert.Equal(t, string(constants.AnalysisCompleted), jobs.job.Status)
}
