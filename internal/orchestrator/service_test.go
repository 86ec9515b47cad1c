package orchestrator

import (
	"bytes"
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
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/lifecycle"
)

// minimalPDF builds a complete one-page PDF with a correct xref table, small
// enough to inline and valid enough for upload validation to accept.
func minimalPDF() []byte {
	var b bytes.Buffer
	offsets := make([]int, 4)
	b.WriteString("%PDF-1.4\n")
	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n")
	xref := b.Len()
	b.WriteString("xref\n0 4\n")
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 3; i++ {
		b.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	b.WriteString("trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n")
	b.WriteString(fmt.Sprintf("%d\n", xref))
	b.WriteString("%%EOF\n")
	return b.Bytes()
}

type env struct {
	svc       *Service
	proposals *fakeProposals
	ills      *fakeIllustrations
	products  *fakeProducts
	jobs      *fakeJobs
	blobs     *fakeBlobs
	queue     *fakeQueue
	renderer  *countingRenderer
}

func newEnv() *env {
	e := &env{
		proposals: newFakeProposals(),
		ills:      newFakeIllustrations(),
		products:  newFakeProducts(),
		jobs:      newFakeJobs(),
		blobs:     newFakeBlobs(),
		queue:     &fakeQueue{},
		renderer:  newCountingRenderer(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	e.svc = NewService(e.proposals, e.ills, e.products, e.jobs, e.blobs, e.queue,
		e.renderer, time.Minute, common.NewKeyedMutex(), logger)
	return e
}

func (e *env) proposal(t *testing.T, status constants.ProposalStatus) *ent.Proposal {
	t.Helper()
	row, err := e.proposals.Create(context.Background(), "Jordan Tan", "retirement income", "comparison", "SGD")
	require.NoError(t, err)
	require.NoError(t, e.proposals.SetStatus(context.Background(), row.ID, status))
	row.Status = string(status)
	return row
}

func (e *env) completedIllustration(t *testing.T, proposalID uuid.UUID, order int, manualInput bool) *ent.Illustration {
	t.Helper()
	blobID, err := e.blobs.Store(context.Background(), minimalPDF())
	require.NoError(t, err)
	row, err := e.ills.Create(context.Background(), proposalID, order, fmt.Sprintf("policy_%d.pdf", order), 1024, blobID)
	require.NoError(t, err)
	_, err = e.ills.MarkProcessing(context.Background(), row.ID)
	require.NoError(t, err)
	payload := json.RawMessage(`{"basic_info":{"insurance_name":"PruShield Life","insurance_provider":"Prudential"}}`)
	_, err = e.ills.FinishExtraction(context.Background(), row.ID, payload, 0.9, "")
	require.NoError(t, err)
	dm := fmt.Sprintf(`{"match_confidence":%s,"requires_manual_input":%t}`,
		map[bool]string{true: "0.4", false: "0.95"}[manualInput], manualInput)
	require.NoError(t, e.ills.SetDatabaseMatch(context.Background(), row.ID, json.RawMessage(dm)))
	got, err := e.ills.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	return got
}

func TestCreateProposalValidation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.svc.CreateProposal(ctx, CreateProposalInput{ClientName: "", ProposalType: "comparison", TargetCurrency: "SGD"})
	assert.True(t, common.IsValidation(err))

	_, err = e.svc.CreateProposal(ctx, CreateProposalInput{ClientName: "Jordan", ProposalType: "comparison", TargetCurrency: "S$"})
	assert.True(t, common.IsValidation(err))

	row, err := e.svc.CreateProposal(ctx, CreateProposalInput{ClientName: "Jordan", ProposalType: "comparison", TargetCurrency: "sgd"})
	require.NoError(t, err)
	assert.Equal(t, "SGD", row.TargetCurrency, "currency is upcased")
	assert.Equal(t, string(constants.ProposalDraft), row.Status)
}

func TestUploadMovesDraftToExtracting(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalDraft)

	rows, err := e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{
		{Filename: "policy_a.pdf", Data: minimalPDF()},
		{Filename: "policy_b.pdf", Data: minimalPDF()},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Order)
	assert.Equal(t, 2, rows[1].Order)

	got, err := e.proposals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalExtracting), got.Status)

	kinds := e.queue.kinds()
	require.Len(t, kinds, 2)
	for _, k := range kinds {
		assert.Equal(t, async.JobExtract, k)
	}
	assert.Equal(t, 2, e.blobs.count())
}

func TestUploadInReviewingKeepsStatus(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	e.completedIllustration(t, p.ID, 1, false)

	_, err := e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{{Filename: "extra.pdf", Data: minimalPDF()}})
	require.NoError(t, err)

	got, err := e.proposals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalReviewing), got.Status,
		"proposal must not regress to extracting")
}

func TestUploadBatchCapIsAtomic(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	for i := 1; i <= 4; i++ {
		e.completedIllustration(t, p.ID, i, false)
	}

	_, err := e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{
		{Filename: "five.pdf", Data: minimalPDF()},
		{Filename: "six.pdf", Data: minimalPDF()},
	})
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))

	count, _ := e.ills.CountByProposal(ctx, p.ID)
	assert.Equal(t, 4, count, "batch over the cap must store nothing")
	assert.Empty(t, e.queue.kinds())
}

func TestUploadRejectsNonPDF(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalDraft)

	_, err := e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{
		{Filename: "ok.pdf", Data: minimalPDF()},
		{Filename: "notes.docx", Data: []byte("word doc")},
	})
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
	assert.Zero(t, e.blobs.count(), "validation happens before any file is stored")
}

func TestUploadRejectsOversizeAndGarbage(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalDraft)

	big := make([]byte, constants.MaxIllustrationFileSize+1)
	_, err := e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{{Filename: "big.pdf", Data: big}})
	assert.True(t, common.IsValidation(err))

	_, err = e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{{Filename: "junk.pdf", Data: []byte("not a pdf at all")}})
	assert.True(t, common.IsValidation(err))
}

func TestUploadConflictsWhileExtracting(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalExtracting)

	_, err := e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{{Filename: "late.pdf", Data: minimalPDF()}})
	var conflict *lifecycle.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestDeleteIllustrationRemovesBlob(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	row := e.completedIllustration(t, p.ID, 1, false)

	require.NoError(t, e.svc.DeleteIllustration(ctx, p.ID, row.ID))
	_, err := e.ills.GetByID(ctx, row.ID)
	assert.True(t, ent.IsNotFound(err))
	assert.Zero(t, e.blobs.count())
}

func TestDeleteIllustrationWrongProposal(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p1 := e.proposal(t, constants.ProposalReviewing)
	p2 := e.proposal(t, constants.ProposalReviewing)
	row := e.completedIllustration(t, p1.ID, 1, false)

	err := e.svc.DeleteIllustration(ctx, p2.ID, row.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestTriggerGenerationRequiresResolution(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	row := e.completedIllustration(t, p.ID, 1, true) // requires manual input

	err := e.svc.TriggerGeneration(ctx, p.ID)
	require.Error(t, err)

	// advisor resolves it, then generation proceeds
	product := &ent.InsuranceProduct{ID: uuid.New(), Name: "PruShield Life", Provider: "Prudential",
		NormalizedName: "prushield life", NormalizedProvider: "prudential"}
	e.products.rows[product.ID] = product
	require.NoError(t, e.svc.SelectProduct(ctx, p.ID, row.ID, product.ID))
	require.NoError(t, e.svc.TriggerGeneration(ctx, p.ID))

	got, err := e.proposals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalGenerating), got.Status)

	job, err := e.jobs.GetByProposal(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, string(constants.AnalysisPending), job.Status)

	kinds := e.queue.kinds()
	assert.Contains(t, kinds, async.JobGenerate)
	assert.Contains(t, kinds, async.JobAnalysis)
}

func TestTriggerGenerationNeedsCompletedExtraction(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)

	err := e.svc.TriggerGeneration(ctx, p.ID)
	require.Error(t, err, "no extracted illustrations")
}

func TestTriggerGenerationOnlyFromReviewing(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	for _, status := range []constants.ProposalStatus{
		constants.ProposalDraft, constants.ProposalExtracting,
		constants.ProposalGenerating, constants.ProposalCompleted, constants.ProposalFailed,
	} {
		p := e.proposal(t, status)
		err := e.svc.TriggerGeneration(ctx, p.ID)
		var conflict *lifecycle.ConflictError
		assert.ErrorAs(t, err, &conflict, "from %s", status)
	}
}

func TestSelectProductUnknownProduct(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	row := e.completedIllustration(t, p.ID, 1, true)

	err := e.svc.SelectProduct(ctx, p.ID, row.ID, uuid.New())
	assert.True(t, common.IsValidation(err))
}

func TestUpdateExtractedDataValidatesPayload(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	row := e.completedIllustration(t, p.ID, 1, false)

	err := e.svc.UpdateExtractedData(ctx, p.ID, row.ID, json.RawMessage(`{"unexpected":"shape"}`))
	assert.True(t, common.IsValidation(err))

	valid := json.RawMessage(`{
		"basic_info": {"insurance_name": "PruShield Life", "insurance_provider": "Prudential"},
		"cash_value_data": {"has_cash_value": true, "cash_values": [
			{"age": 50, "value": 3000}, {"age": 40, "value": 1000}, {"age": 40, "value": 1200}
		]},
		"extraction_metadata": {"confidence": 0.8}
	}`)
	require.NoError(t, e.svc.UpdateExtractedData(ctx, p.ID, row.ID, valid))

	got, err := e.ills.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ReviewInReview), got.ReviewStatus)

	var stored struct {
		CashValueData struct {
			CashValues []struct {
				Age   int     `json:"age"`
				Value float64 `json:"value"`
			} `json:"cash_values"`
		} `json:"cash_value_data"`
	}
	require.NoError(t, json.Unmarshal(got.ExtractedData, &stored))
	require.Len(t, stored.CashValueData.CashValues, 2, "duplicate ages are merged on write")
	assert.Equal(t, 1200.0, stored.CashValueData.CashValues[0].Value)
}

func TestRetryExtraction(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	row := e.completedIllustration(t, p.ID, 1, false)

	// not failed yet
	err := e.svc.RetryExtraction(ctx, p.ID, row.ID)
	require.Error(t, err)

	e.ills.mu.Lock()
	e.ills.rows[row.ID].ExtractionStatus = string(constants.ExtractionFailed)
	e.ills.mu.Unlock()

	require.NoError(t, e.svc.RetryExtraction(ctx, p.ID, row.ID))
	got, err := e.ills.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionPending), got.ExtractionStatus)
	assert.Contains(t, e.queue.kinds(), async.JobExtract)
}

func TestResumeProposalFromFailedExtraction(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalExtracting)
	blobID, _ := e.blobs.Store(ctx, minimalPDF())
	row, err := e.ills.Create(ctx, p.ID, 1, "bad.pdf", 10, blobID)
	require.NoError(t, err)
	_, _ = e.ills.MarkProcessing(ctx, row.ID)
	_, _ = e.ills.FailExtraction(ctx, row.ID, "service down")
	require.NoError(t, e.proposals.MarkFailed(ctx, p.ID, constants.ProposalExtracting, "no illustrations were extracted successfully"))

	resumed, err := e.svc.ResumeProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ProposalExtracting, resumed)

	got, err := e.ills.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionPending), got.ExtractionStatus)
	assert.Contains(t, e.queue.kinds(), async.JobExtract)
}

func TestResumeProposalNotFailed(t *testing.T) {
	e := newEnv()
	p := e.proposal(t, constants.ProposalReviewing)
	_, err := e.svc.ResumeProposal(context.Background(), p.ID)
	require.Error(t, err)
}

func TestDownloadOnlyWhenCompleted(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	p := e.proposal(t, constants.ProposalGenerating)
	_, _, err := e.svc.Download(ctx, p.ID)
	assert.ErrorIs(t, err, common.ErrNotReady)

	require.NoError(t, e.proposals.SetStatus(ctx, p.ID, constants.ProposalCompleted))
	pdf, filename, err := e.svc.Download(ctx, p.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Contains(t, filename, p.ID.String())
}

func TestGetPageValidation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalGenerating)

	_, err := e.svc.GetPage(ctx, p.ID, 0)
	assert.True(t, common.IsValidation(err))
	_, err = e.svc.GetPage(ctx, p.ID, 5)
	assert.True(t, common.IsValidation(err))

	draft := e.proposal(t, constants.ProposalDraft)
	_, err = e.svc.GetPage(ctx, draft.ID, 1)
	assert.ErrorIs(t, err, common.ErrNotReady)
}

func TestGetPageCachesFinalPages(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalGenerating)

	_, err := e.svc.GetPage(ctx, p.ID, constants.PageTitle)
	require.NoError(t, err)
	_, err = e.svc.GetPage(ctx, p.ID, constants.PageTitle)
	require.NoError(t, err)
	assert.Equal(t, 1, e.renderer.rendered(constants.PageTitle), "second read comes from cache")
}

func TestGetPageComparisonPlaceholderNotCached(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalGenerating)
	_, err := e.jobs.Ensure(ctx, p.ID)
	require.NoError(t, err)

	// analysis pending: every read re-renders, nothing cached
	_, err = e.svc.GetPage(ctx, p.ID, constants.PageComparison)
	require.NoError(t, err)
	_, err = e.svc.GetPage(ctx, p.ID, constants.PageComparison)
	require.NoError(t, err)
	assert.Equal(t, 2, e.renderer.rendered(constants.PageComparison))

	// analysis settles: next read renders once more, then caches
	_, err = e.jobs.Complete(ctx, p.ID, []int{58, 65, 80})
	require.NoError(t, err)
	_, err = e.svc.GetPage(ctx, p.ID, constants.PageComparison)
	require.NoError(t, err)
	_, err = e.svc.GetPage(ctx, p.ID, constants.PageComparison)
	require.NoError(t, err)
	assert.Equal(t, 3, e.renderer.rendered(constants.PageComparison))
}

func TestGetPageJobSettlingMidRenderDoesNotCachePlaceholder(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalGenerating)
	_, err := e.jobs.Ensure(ctx, p.ID)
	require.NoError(t, err)

	e.renderer.content = func(page int) []byte {
		if page != constants.PageComparison {
			return []byte("other")
		}
		job, jerr := e.jobs.GetByProposal(ctx, p.ID)
		require.NoError(t, jerr)
		if job == nil || constants.AnalysisStatus(job.Status) == constants.AnalysisPending {
			return []byte("comparison placeholder")
		}
		return []byte("comparison ready")
	}
	// The job settles while the first render is still in flight, so the
	// coordinator's invalidation fires before GetPage gets a chance to cache.
	e.renderer.onRender = func(page int) {
		if page != constants.PageComparison {
			return
		}
		_, cerr := e.jobs.Complete(ctx, p.ID, []int{58, 80})
		require.NoError(t, cerr)
		e.svc.InvalidatePage(p.ID, constants.PageComparison)
	}

	data, err := e.svc.GetPage(ctx, p.ID, constants.PageComparison)
	require.NoError(t, err)
	assert.Equal(t, []byte("comparison placeholder"), data)

	// the stale bytes must not have been cached; the next read re-renders
	// and observes the settled job
	data, err = e.svc.GetPage(ctx, p.ID, constants.PageComparison)
	require.NoError(t, err)
	assert.Equal(t, []byte("comparison ready"), data)
	assert.Equal(t, 2, e.renderer.rendered(constants.PageComparison))

	// the settled render is cacheable as usual
	data, err = e.svc.GetPage(ctx, p.ID, constants.PageComparison)
	require.NoError(t, err)
	assert.Equal(t, []byte("comparison ready"), data)
	assert.Equal(t, 2, e.renderer.rendered(constants.PageComparison))
}

func TestGetAnalysisStatus(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalGenerating)

	// no job yet
	_, err := e.svc.GetAnalysisStatus(ctx, p.ID)
	require.Error(t, err)

	_, err = e.jobs.Ensure(ctx, p.ID)
	require.NoError(t, err)
	state, err := e.svc.GetAnalysisStatus(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.AnalysisPending, state.Status)

	_, err = e.jobs.Complete(ctx, p.ID, []int{58, 80})
	require.NoError(t, err)
	state, err = e.svc.GetAnalysisStatus(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.AnalysisCompleted, state.Status)
	assert.Equal(t, []int{58, 80}, state.SelectedAges)
	assert.NotNil(t, state.CompletedAt)

	// polling is side-effect free
	for i := 0; i < 3; i++ {
		again, err := e.svc.GetAnalysisStatus(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, state.Status, again.Status)
		assert.Equal(t, state.SelectedAges, again.SelectedAges)
	}

	_, err = e.svc.GetAnalysisStatus(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteProposalCleansUp(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	e.completedIllustration(t, p.ID, 1, false)
	e.completedIllustration(t, p.ID, 2, false)

	require.NoError(t, e.svc.DeleteProposal(ctx, p.ID))
	assert.Zero(t, e.blobs.count())
	_, err := e.svc.GetProposal(ctx, p.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUploadFillsFreedOrderSlot(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	p := e.proposal(t, constants.ProposalReviewing)
	first := e.completedIllustration(t, p.ID, 1, false)
	e.completedIllustration(t, p.ID, 2, false)

	require.NoError(t, e.svc.DeleteIllustration(ctx, p.ID, first.ID))
	rows, err := e.svc.UploadIllustrations(ctx, p.ID, []UploadFile{{Filename: "replacement.pdf", Data: minimalPDF()}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Order, "freed slot is reused")
}
