package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
	"github.com/advisorhq/proposal-pipeline/internal/async"
	"github.com/advisorhq/proposal-pipeline/internal/repository"
)

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
	if row.Status != string(constants.ProposalFailed) || row.FailedFrom == "" {
		return "", repository.ErrNotFailed
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
	if _, ok := f.rows[id]; !ok {
		return &ent.NotFoundError{}
	}
	delete(f.rows, id)
	return nil
}

type fakeIllustrations struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.Illustration
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

func (f *fakeIllustrations) CountByProposal(ctx context.Context, proposalID uuid.UUID) (int, error) {
	rows, _ := f.ListByProposal(ctx, proposalID)
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
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.ExtractionStatus != string(constants.ExtractionPending) {
		return false, nil
	}
	row.ExtractionStatus = string(constants.ExtractionProcessing)
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

type fakeProducts struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.InsuranceProduct
}

func newFakeProducts(rows ...*ent.InsuranceProduct) *fakeProducts {
	f := &fakeProducts{rows: make(map[uuid.UUID]*ent.InsuranceProduct)}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeProducts) GetByID(_ context.Context, id uuid.UUID) (*ent.InsuranceProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (f *fakeProducts) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeProducts) LookupExact(_ context.Context, name, provider string) (*ent.InsuranceProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var hit *ent.InsuranceProduct
	for _, r := range f.rows {
		if r.NormalizedName == name && r.NormalizedProvider == provider {
			if hit != nil {
				return nil, nil
			}
			hit = r
		}
	}
	return hit, nil
}

func (f *fakeProducts) ListCandidates(_ context.Context, provider string) ([]*ent.InsuranceProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.InsuranceProduct
	for _, r := range f.rows {
		if provider == "" || r.NormalizedProvider == provider {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeJobs struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*ent.AnalysisJob
}

func newFakeJobs() *fakeJobs { return &fakeJobs{rows: make(map[uuid.UUID]*ent.AnalysisJob)} }

func (f *fakeJobs) GetByProposal(_ context.Context, proposalID uuid.UUID) (*ent.AnalysisJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[proposalID]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeJobs) Ensure(_ context.Context, proposalID uuid.UUID) (*ent.AnalysisJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[proposalID]; ok {
		return row, nil
	}
	row := &ent.AnalysisJob{
		ID:         uuid.New(),
		ProposalID: proposalID,
		Status:     string(constants.AnalysisPending),
		CreatedAt:  time.Now(),
	}
	f.rows[proposalID] = row
	return row, nil
}

func (f *fakeJobs) Complete(_ context.Context, proposalID uuid.UUID, selectedAges []int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[proposalID]
	if !ok || row.Status != string(constants.AnalysisPending) {
		return false, nil
	}
	now := time.Now()
	row.Status = string(constants.AnalysisCompleted)
	row.SelectedAges = selectedAges
	row.CompletedAt = &now
	return true, nil
}

func (f *fakeJobs) Fail(_ context.Context, proposalID uuid.UUID, message string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[proposalID]
	if !ok || row.Status != string(constants.AnalysisPending) {
		return false, nil
	}
	now := time.Now()
	row.Status = string(constants.AnalysisFailed)
	row.ErrorMessage = message
	row.CompletedAt = &now
	return true, nil
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []async.Job
}

func (q *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

func (q *fakeQueue) kinds() []async.JobKind {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]async.JobKind, 0, len(q.jobs))
	for _, j := range q.jobs {
		out = append(out, j.Kind)
	}
	return out
}

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

func (b *fakeBlobs) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.blobs)
}

// countingRenderer returns deterministic page bytes and records how many
// times each page was rendered, so cache behavior is observable. Tests can
// override the produced bytes with content, and onRender runs after the
// content is decided but before Render returns, mimicking state changes that
// land while a real render is in flight.
type countingRenderer struct {
	mu       sync.Mutex
	renders  map[int]int
	full     int
	content  func(page int) []byte
	onRender func(page int)
}

func newCountingRenderer() *countingRenderer { return &countingRenderer{renders: make(map[int]int)} }

func (r *countingRenderer) Render(_ context.Context, proposalID uuid.UUID, page int) ([]byte, error) {
	r.mu.Lock()
	r.renders[page]++
	content := r.content
	hook := r.onRender
	r.mu.Unlock()

	data := []byte(fmt.Sprintf("pdf:%s:%d", proposalID, page))
	if content != nil {
		data = content(page)
	}
	if hook != nil {
		hook(page)
	}
	return data, nil
}

func (r *countingRenderer) RenderFull(_ context.Context, proposalID uuid.UUID) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.full++
	return []byte("pdf:" + proposalID.String() + ":full"), nil
}

func (r *countingRenderer) rendered(page int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders[page]
}
