package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
)

// fakeIllustrations is an in-memory IllustrationRepository sufficient for
// stage tests, with the same conditional-write semantics as the real one.
type fakeIllustrations struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.Illustration

	// afterMarkProcessing, when set, runs once right after a successful
	// MarkProcessing; used to simulate a concurrent delete
	afterMarkProcessing func()
}

func newFakeIllustrations(rows ...*ent.Illustration) *fakeIllustrations {
	f := &fakeIllustrations{rows: make(map[uuid.UUID]*ent.Illustration)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeIllustrations) GetByID(_ context.Context, id uuid.UUID) (*ent.Illustration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	cp := *row
	return &cp, nil
}

func (f *fakeIllustrations) ListByProposal(_ context.Context, proposalID uuid.UUID) ([]*ent.Illustration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.Illustration
	for _, r := range f.rows {
		if r.ProposalID == proposalID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeIllustrations) CountByProposal(_ context.Context, proposalID uuid.UUID) (int, error) {
	rows, _ := f.ListByProposal(context.Background(), proposalID)
	return len(rows), nil
}

func (f *fakeIllustrations) Create(_ context.Context, proposalID uuid.UUID, order int, filename string, sizeBytes int, blobID string) (*ent.Illustration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := &ent.Illustration{
		ID:               uuid.New(),
		ProposalID:       proposalID,
		Order:            order,
		OriginalFilename: filename,
		FileSizeBytes:    sizeBytes,
		BlobID:           blobID,
		ExtractionStatus: string(constants.ExtractionPending),
		ReviewStatus:     string(constants.ReviewPending),
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeIllustrations) MarkProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	row, ok := f.rows[id]
	if !ok || row.ExtractionStatus != string(constants.ExtractionPending) {
		f.mu.Unlock()
		return false, nil
	}
	row.ExtractionStatus = string(constants.ExtractionProcessing)
	hook := f.afterMarkProcessing
	f.afterMarkProcessing = nil
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return true, nil
}

func (f *fakeIllustrations) FinishExtraction(_ context.Context, id uuid.UUID, data json.RawMessage, confidence float32, notes string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.ExtractionStatus != string(constants.ExtractionProcessing) {
		return false, nil
	}
	row.ExtractionStatus = string(constants.ExtractionCompleted)
	row.ExtractionConfidence = confidence
	row.ProcessingNotes = notes
	if row.ReviewStatus == string(constants.ReviewPending) {
		row.ExtractedData = data
	}
	return true, nil
}

func (f *fakeIllustrations) FailExtraction(_ context.Context, id uuid.UUID, notes string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.ExtractionStatus != string(constants.ExtractionProcessing) {
		return false, nil
	}
	row.ExtractionStatus = string(constants.ExtractionFailed)
	row.ProcessingNotes = notes
	return true, nil
}

func (f *fakeIllustrations) ResetForRetry(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.ExtractionStatus != string(constants.ExtractionFailed) {
		return false, nil
	}
	row.ExtractionStatus = string(constants.ExtractionPending)
	row.ProcessingNotes = ""
	return true, nil
}

func (f *fakeIllustrations) SetDatabaseMatch(_ context.Context, id uuid.UUID, match json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return &ent.NotFoundError{}
	}
	row.DatabaseMatch = match
	return nil
}

func (f *fakeIllustrations) SetSelectedProduct(_ context.Context, id uuid.UUID, insuranceID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return &ent.NotFoundError{}
	}
	row.SelectedInsuranceID = &insuranceID
	row.ReviewStatus = string(constants.ReviewApproved)
	return nil
}

func (f *fakeIllustrations) UpdateExtractedData(_ context.Context, id uuid.UUID, data json.RawMessage, reviewStatus constants.ReviewStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return &ent.NotFoundError{}
	}
	row.ExtractedData = data
	row.ReviewStatus = string(reviewStatus)
	return nil
}

func (f *fakeIllustrations) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

// fakeBlobs serves byte slices by id.
type fakeBlobs struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newFakeBlobs() *fakeBlobs { return &fakeBlobs{blobs: make(map[string][]byte)} }

func (b *fakeBlobs) Store(_ context.Context, data []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := uuid.New().String()
	b.blobs[id] = data
	return id, nil
}

func (b *fakeBlobs) Fetch(_ context.Context, id string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.blobs[id]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", id)
	}
	return data, nil
}

func (b *fakeBlobs) Delete(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.blobs, id)
	return nil
}

// scriptedExtractor returns its scripted results in order, then repeats the
// last one.
type scriptedExtractor struct {
	mu      sync.Mutex
	results []extractResult
	calls   int
}

type extractResult struct {
	data *extract.ExtractedData
	err  error
}

func (e *scriptedExtractor) Extract(_ context.Context, _ []byte) (*extract.ExtractedData, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.calls
	if i >= len(e.results) {
		i = len(e.results) - 1
	}
	e.calls++
	r := e.results[i]
	return r.data, r.err
}

func goodData() *extract.ExtractedData {
	d := &extract.ExtractedData{}
	d.BasicInfo.InsuranceName = "PruShield Life"
	d.BasicInfo.InsuranceProvider = "Prudential"
	d.Metadata.Confidence = 0.9
	return d
}

func pendingRow(t *testing.T, blobs *fakeBlobs) (*ent.Illustration, uuid.UUID) {
	t.Helper()
	blobID, err := blobs.Store(context.Background(), []byte("%PDF-1.7 fixture"))
	require.NoError(t, err)
	proposalID := uuid.New()
	return &ent.Illustration{
		ID:               uuid.New(),
		ProposalID:       proposalID,
		Order:            1,
		OriginalFilename: "fixture.pdf",
		BlobID:           blobID,
		ExtractionStatus: string(constants.ExtractionPending),
		ReviewStatus:     string(constants.ReviewPending),
	}, proposalID
}

func fastCfg() ExtractConfig {
	return ExtractConfig{MaxAttempts: 3, RetryBackoff: time.Millisecond, ExtractTimeout: time.Second}
}

func TestExtractStageSuccess(t *testing.T) {
	blobs := newFakeBlobs()
	row, proposalID := pendingRow(t, blobs)
	repo := newFakeIllustrations(row)
	ex := &scriptedExtractor{results: []extractResult{{data: goodData()}}}
	stage := NewExtractStage(repo, blobs, ex, fastCfg(), nil)

	pid, data, err := stage.Run(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, proposalID, pid)
	require.NotNil(t, data)

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionCompleted), got.ExtractionStatus)
	assert.InDelta(t, 0.9, float64(got.ExtractionConfidence), 1e-6)
	assert.NotEmpty(t, got.ExtractedData)
}

func TestExtractStageRetriesTransient(t *testing.T) {
	blobs := newFakeBlobs()
	row, _ := pendingRow(t, blobs)
	repo := newFakeIllustrations(row)
	ex := &scriptedExtractor{results: []extractResult{
		{err: &extract.TransientError{Cause: errors.New("503")}},
		{err: &extract.TransientError{Cause: errors.New("timeout")}},
		{data: goodData()},
	}}
	stage := NewExtractStage(repo, blobs, ex, fastCfg(), nil)

	_, data, err := stage.Run(context.Background(), row.ID)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, 3, ex.calls)
}

func TestExtractStageDoesNotRetryTypedErrors(t *testing.T) {
	blobs := newFakeBlobs()
	row, _ := pendingRow(t, blobs)
	repo := newFakeIllustrations(row)
	ex := &scriptedExtractor{results: []extractResult{
		{err: &extract.ExtractionError{Kind: "unreadable", Message: "scanned image too blurry"}},
	}}
	stage := NewExtractStage(repo, blobs, ex, fastCfg(), nil)

	_, data, err := stage.Run(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 1, ex.calls, "typed extraction errors must not be retried")

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionFailed), got.ExtractionStatus)
	assert.Contains(t, got.ProcessingNotes, "blurry")
}

func TestExtractStageExhaustsTransientRetries(t *testing.T) {
	blobs := newFakeBlobs()
	row, _ := pendingRow(t, blobs)
	repo := newFakeIllustrations(row)
	ex := &scriptedExtractor{results: []extractResult{
		{err: &extract.TransientError{Cause: errors.New("connection refused")}},
	}}
	stage := NewExtractStage(repo, blobs, ex, fastCfg(), nil)

	_, data, err := stage.Run(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, 3, ex.calls)

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionFailed), got.ExtractionStatus)
	assert.Contains(t, got.ProcessingNotes, "after retries")
}

func TestExtractStageDiscardsResultForDeletedRow(t *testing.T) {
	blobs := newFakeBlobs()
	row, _ := pendingRow(t, blobs)
	repo := newFakeIllustrations(row)
	// delete the row between claim and persist
	repo.afterMarkProcessing = func() {
		_ = repo.Delete(context.Background(), row.ID)
	}
	ex := &scriptedExtractor{results: []extractResult{{data: goodData()}}}
	stage := NewExtractStage(repo, blobs, ex, fastCfg(), nil)

	pid, data, err := stage.Run(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, pid)
	assert.Nil(t, data)
}

func TestExtractStageSkipsNonPendingRow(t *testing.T) {
	blobs := newFakeBlobs()
	row, _ := pendingRow(t, blobs)
	row.ExtractionStatus = string(constants.ExtractionCompleted)
	repo := newFakeIllustrations(row)
	ex := &scriptedExtractor{results: []extractResult{{data: goodData()}}}
	stage := NewExtractStage(repo, blobs, ex, fastCfg(), nil)

	_, data, err := stage.Run(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Zero(t, ex.calls)
}

func TestExtractStageMissingRowIsDiscarded(t *testing.T) {
	blobs := newFakeBlobs()
	repo := newFakeIllustrations()
	stage := NewExtractStage(repo, blobs, &scriptedExtractor{results: []extractResult{{data: goodData()}}}, fastCfg(), nil)

	pid, data, err := stage.Run(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, pid)
	assert.Nil(t, data)
}

func TestExtractStagePreservesAdvisorEdits(t *testing.T) {
	blobs := newFakeBlobs()
	row, _ := pendingRow(t, blobs)
	row.ReviewStatus = string(constants.ReviewInReview)
	row.ExtractedData = json.RawMessage(`{"edited":true}`)
	repo := newFakeIllustrations(row)
	ex := &scriptedExtractor{results: []extractResult{{data: goodData()}}}
	stage := NewExtractStage(repo, blobs, ex, fastCfg(), nil)

	_, _, err := stage.Run(context.Background(), row.ID)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionCompleted), got.ExtractionStatus)
	assert.JSONEq(t, `{"edited":true}`, string(got.ExtractedData), "advisor edits must survive duplicate attempts")
}
