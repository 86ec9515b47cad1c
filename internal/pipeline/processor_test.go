package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/analysis"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/common"
	"github.com/advisorhq/proposal-pipeline/internal/extract"
	"github.com/advisorhq/proposal-pipeline/internal/match"
)

// fakeProposals is the slice of ProposalRepository the processor touches, with
// the failure bookkeeping the real one keeps.
type fakeProposals struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.Proposal
}

func newFakeProposals(rows ...*ent.Proposal) *fakeProposals {
	f := &fakeProposals{rows: make(map[uuid.UUID]*ent.Proposal)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeProposals) GetByID(_ context.Context, id uuid.UUID) (*ent.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	cp := *row
	return &cp, nil
}

func (f *fakeProposals) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeProposals) Create(_ context.Context, clientName, clientNeeds, proposalType, targetCurrency string) (*ent.Proposal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := &ent.Proposal{
		ID:             uuid.New(),
		ClientName:     clientName,
		ClientNeeds:    clientNeeds,
		ProposalType:   proposalType,
		TargetCurrency: targetCurrency,
		Status:         string(constants.ProposalDraft),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeProposals) SetStatus(_ context.Context, id uuid.UUID, status constants.ProposalStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return &ent.NotFoundError{}
	}
	row.Status = string(status)
	return nil
}

func (f *fakeProposals) MarkFailed(_ context.Context, id uuid.UUID, from constants.ProposalStatus, note string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return &ent.NotFoundError{}
	}
	row.Status = string(constants.ProposalFailed)
	row.FailedFrom = string(from)
	row.FailureNote = note
	return nil
}

func (f *fakeProposals) ResumeFromFailure(_ context.Context, id uuid.UUID) (constants.ProposalStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return "", &ent.NotFoundError{}
	}
	resumed := constants.ProposalStatus(row.FailedFrom)
	row.Status = row.FailedFrom
	row.FailedFrom = ""
	row.FailureNote = ""
	return resumed, nil
}

func (f *fakeProposals) SetGeneratedAt(_ context.Context, id uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return &ent.NotFoundError{}
	}
	row.GeneratedAt = &at
	return nil
}

func (f *fakeProposals) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

// stubCatalog always resolves to the one configured product.
type stubCatalog struct {
	product *match.Product
}

func (s *stubCatalog) LookupExact(_ context.Context, _, _ string) (*match.Product, error) {
	return s.product, nil
}

func (s *stubCatalog) ListCandidates(_ context.Context, _ string) ([]match.Product, error) {
	return nil, nil
}

func pendingRowFor(t *testing.T, blobs *fakeBlobs, proposalID uuid.UUID, order int) *ent.Illustration {
	t.Helper()
	blobID, err := blobs.Store(context.Background(), []byte("%PDF-1.7 fixture"))
	require.NoError(t, err)
	return &ent.Illustration{
		ID:               uuid.New(),
		ProposalID:       proposalID,
		Order:            order,
		OriginalFilename: fmt.Sprintf("fixture-%d.pdf", order),
		BlobID:           blobID,
		ExtractionStatus: string(constants.ExtractionPending),
		ReviewStatus:     string(constants.ReviewPending),
	}
}

func newTestProcessor(proposals *fakeProposals, ills *fakeIllustrations, blobs *fakeBlobs, ex *scriptedExtractor, catalog match.Catalog) *Processor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	extractStage := NewExtractStage(ills, blobs, ex, fastCfg(), logger)
	matchStage := NewMatchStage(ills, match.NewMatcher(catalog, match.Config{}, logger), logger)
	generateStage := NewGenerateStage(proposals, nil, logger)
	coordinator := analysis.NewCoordinator(nil, ills, nil, logger)
	return NewProcessor(logger, extractStage, matchStage, generateStage, coordinator, proposals, ills, common.NewKeyedMutex())
}

func TestProcessorMixedOutcomeAdvancesToReviewing(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	proposalID := uuid.New()
	rowA := pendingRowFor(t, blobs, proposalID, 1)
	rowB := pendingRowFor(t, blobs, proposalID, 2)
	ills := newFakeIllustrations(rowA, rowB)
	proposals := newFakeProposals(&ent.Proposal{ID: proposalID, Status: string(constants.ProposalExtracting)})
	ex := &scriptedExtractor{results: []extractResult{
		{data: goodData()},
		{err: &extract.ExtractionError{Kind: "unreadable", Message: "scanned image too blurry"}},
	}}
	catalog := &stubCatalog{product: &match.Product{ID: uuid.New(), Name: "PruShield Life", Provider: "Prudential"}}
	proc := newTestProcessor(proposals, ills, blobs, ex, catalog)

	// first upload extracts and matches; the second is still pending, so the
	// proposal must not advance yet
	require.NoError(t, proc.Dispatch(ctx, async.Job{Kind: async.JobExtract, ID: rowA.ID}))
	prop, err := proposals.GetByID(ctx, proposalID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalExtracting), prop.Status)

	gotA, err := ills.GetByID(ctx, rowA.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionCompleted), gotA.ExtractionStatus)
	assert.Contains(t, string(gotA.DatabaseMatch), "exact_match")

	// second upload fails, settling the batch as partial success
	require.NoError(t, proc.Dispatch(ctx, async.Job{Kind: async.JobExtract, ID: rowB.ID}))
	gotB, err := ills.GetByID(ctx, rowB.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionFailed), gotB.ExtractionStatus)

	prop, err = proposals.GetByID(ctx, proposalID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalReviewing), prop.Status)
	assert.Empty(t, prop.FailedFrom)
}

func TestProcessorAllFailedMarksProposalFailed(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	proposalID := uuid.New()
	row := pendingRowFor(t, blobs, proposalID, 1)
	ills := newFakeIllustrations(row)
	proposals := newFakeProposals(&ent.Proposal{ID: proposalID, Status: string(constants.ProposalExtracting)})
	ex := &scriptedExtractor{results: []extractResult{
		{err: &extract.ExtractionError{Kind: "unreadable", Message: "not an illustration"}},
	}}
	proc := newTestProcessor(proposals, ills, blobs, ex, &stubCatalog{})

	require.NoError(t, proc.Dispatch(ctx, async.Job{Kind: async.JobExtract, ID: row.ID}))

	prop, err := proposals.GetByID(ctx, proposalID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalFailed), prop.Status)
	assert.Equal(t, string(constants.ProposalExtracting), prop.FailedFrom)
	assert.Equal(t, "no illustrations were extracted successfully", prop.FailureNote)

	got, err := ills.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionFailed), got.ExtractionStatus)
}

func TestProcessorSkipsAdvanceWhenProposalNotExtracting(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	proposalID := uuid.New()
	row := pendingRowFor(t, blobs, proposalID, 1)
	ills := newFakeIllustrations(row)
	// a retry can land after the advisor already moved on
	proposals := newFakeProposals(&ent.Proposal{ID: proposalID, Status: string(constants.ProposalReviewing)})
	ex := &scriptedExtractor{results: []extractResult{{data: goodData()}}}
	proc := newTestProcessor(proposals, ills, blobs, ex, &stubCatalog{})

	require.NoError(t, proc.Dispatch(ctx, async.Job{Kind: async.JobExtract, ID: row.ID}))

	prop, err := proposals.GetByID(ctx, proposalID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalReviewing), prop.Status)
}
