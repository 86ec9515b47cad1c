package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/advisorhq/proposal-pipeline/constants"
	"github.com/advisorhq/proposal-pipeline/gen/ent"
)

// newTestClient runs the real ent client against in-memory SQLite so the
// conditional-update semantics are exercised end to end without Postgres.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func seedProposal(t *testing.T, repo ProposalRepository) *ent.Proposal {
	t.Helper()
	row, err := repo.Create(context.Background(), "Jordan Tan", "retirement income", "comparison", "SGD")
	require.NoError(t, err)
	return row
}

func TestProposalFailureRecovery(t *testing.T) {
	client := newTestClient(t)
	repo := NewProposalRepository(client, testLogger())
	ctx := context.Background()
	row := seedProposal(t, repo)

	// not failed yet
	_, err := repo.ResumeFromFailure(ctx, row.ID)
	assert.ErrorIs(t, err, ErrNotFailed)

	require.NoError(t, repo.SetStatus(ctx, row.ID, constants.ProposalExtracting))
	require.NoError(t, repo.MarkFailed(ctx, row.ID, constants.ProposalExtracting, "extraction service unreachable"))

	got, err := repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalFailed), got.Status)
	assert.Equal(t, string(constants.ProposalExtracting), got.FailedFrom)
	assert.Equal(t, "extraction service unreachable", got.FailureNote)

	resumed, err := repo.ResumeFromFailure(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.ProposalExtracting, resumed)

	got, err = repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ProposalExtracting), got.Status)
	assert.Empty(t, got.FailedFrom)
	assert.Empty(t, got.FailureNote)

	// second resume has nothing to recover
	_, err = repo.ResumeFromFailure(ctx, row.ID)
	assert.ErrorIs(t, err, ErrNotFailed)
}

func TestIllustrationExtractionTransitions(t *testing.T) {
	client := newTestClient(t)
	proposals := NewProposalRepository(client, testLogger())
	repo := NewIllustrationRepository(client, testLogger())
	ctx := context.Background()
	p := seedProposal(t, proposals)

	row, err := repo.Create(ctx, p.ID, 1, "policy_a.pdf", 2048, uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionPending), row.ExtractionStatus)
	assert.Equal(t, string(constants.ReviewPending), row.ReviewStatus)

	applied, err := repo.MarkProcessing(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	// duplicate delivery is a no-op
	applied, err = repo.MarkProcessing(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	data := json.RawMessage(`{"basic_info":{"insurance_name":"PruShield Life","insurance_provider":"Prudential"}}`)
	applied, err = repo.FinishExtraction(ctx, row.ID, data, 0.92, "")
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionCompleted), got.ExtractionStatus)
	assert.JSONEq(t, string(data), string(got.ExtractedData))
	assert.InDelta(t, 0.92, got.ExtractionConfidence, 1e-6)

	// a late duplicate finds nothing processing
	applied, err = repo.FinishExtraction(ctx, row.ID, data, 0.5, "")
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestFinishExtractionPreservesAdvisorEdits(t *testing.T) {
	client := newTestClient(t)
	proposals := NewProposalRepository(client, testLogger())
	repo := NewIllustrationRepository(client, testLogger())
	ctx := context.Background()
	p := seedProposal(t, proposals)

	row, err := repo.Create(ctx, p.ID, 1, "policy_a.pdf", 2048, uuid.New().String())
	require.NoError(t, err)
	_, err = repo.MarkProcessing(ctx, row.ID)
	require.NoError(t, err)

	edited := json.RawMessage(`{"basic_info":{"insurance_name":"Edited By Advisor","insurance_provider":"Prudential"}}`)
	require.NoError(t, repo.UpdateExtractedData(ctx, row.ID, edited, constants.ReviewInReview))

	late := json.RawMessage(`{"basic_info":{"insurance_name":"Late Result","insurance_provider":"Prudential"}}`)
	applied, err := repo.FinishExtraction(ctx, row.ID, late, 0.7, "reprocessed")
	require.NoError(t, err)
	assert.True(t, applied, "status still advances")

	got, err := repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionCompleted), got.ExtractionStatus)
	assert.JSONEq(t, string(edited), string(got.ExtractedData), "advisor edits must survive a late extraction")
	assert.Equal(t, "reprocessed", got.ProcessingNotes)
}

func TestIllustrationFailAndRetry(t *testing.T) {
	client := newTestClient(t)
	proposals := NewProposalRepository(client, testLogger())
	repo := NewIllustrationRepository(client, testLogger())
	ctx := context.Background()
	p := seedProposal(t, proposals)

	row, err := repo.Create(ctx, p.ID, 1, "blurry.pdf", 512, uuid.New().String())
	require.NoError(t, err)

	// retry on a row that never failed
	applied, err := repo.ResetForRetry(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, applied)

	_, err = repo.MarkProcessing(ctx, row.ID)
	require.NoError(t, err)
	applied, err = repo.FailExtraction(ctx, row.ID, "document is unreadable")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.ResetForRetry(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := repo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionPending), got.ExtractionStatus)
	assert.Empty(t, got.ProcessingNotes)
}

func TestIllustrationOrderUniquePerProposal(t *testing.T) {
	client := newTestClient(t)
	proposals := NewProposalRepository(client, testLogger())
	repo := NewIllustrationRepository(client, testLogger())
	ctx := context.Background()
	p := seedProposal(t, proposals)

	_, err := repo.Create(ctx, p.ID, 1, "a.pdf", 100, uuid.New().String())
	require.NoError(t, err)
	_, err = repo.Create(ctx, p.ID, 1, "b.pdf", 100, uuid.New().String())
	require.Error(t, err, "order slot is unique within a proposal")

	// but the same order is fine on another proposal
	p2 := seedProposal(t, proposals)
	_, err = repo.Create(ctx, p2.ID, 1, "c.pdf", 100, uuid.New().String())
	require.NoError(t, err)
}

func TestDeleteProposalCascadesToIllustrations(t *testing.T) {
	client := newTestClient(t)
	proposals := NewProposalRepository(client, testLogger())
	repo := NewIllustrationRepository(client, testLogger())
	ctx := context.Background()
	p := seedProposal(t, proposals)

	_, err := repo.Create(ctx, p.ID, 1, "a.pdf", 100, uuid.New().String())
	require.NoError(t, err)
	require.NoError(t, proposals.Delete(ctx, p.ID))

	count, err := repo.CountByProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAnalysisJobSettlesOnce(t *testing.T) {
	client := newTestClient(t)
	proposals := NewProposalRepository(client, testLogger())
	repo := NewAnalysisJobRepository(client, testLogger())
	ctx := context.Background()
	p := seedProposal(t, proposals)

	job, err := repo.GetByProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, job)

	job, err = repo.Ensure(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.AnalysisPending), job.Status)

	again, err := repo.Ensure(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, again.ID, "ensure is idempotent")

	applied, err := repo.Complete(ctx, p.ID, []int{58, 65, 80})
	require.NoError(t, err)
	assert.True(t, applied)

	// already settled: neither completion nor failure may overwrite
	applied, err = repo.Complete(ctx, p.ID, []int{40})
	require.NoError(t, err)
	assert.False(t, applied)
	applied, err = repo.Fail(ctx, p.ID, "late failure")
	require.NoError(t, err)
	assert.False(t, applied)

	job, err = repo.GetByProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.AnalysisCompleted), job.Status)
	assert.Equal(t, []int{58, 65, 80}, job.SelectedAges)
	assert.NotNil(t, job.CompletedAt)
	assert.Empty(t, job.ErrorMessage)
}

func TestProductLookup(t *testing.T) {
	client := newTestClient(t)
	repo := NewProductRepository(client, testLogger())
	ctx := context.Background()

	mk := func(name, provider, normName, normProvider string) *ent.InsuranceProduct {
		row, err := client.InsuranceProduct.Create().
			SetName(name).
			SetProvider(provider).
			SetNormalizedName(normName).
			SetNormalizedProvider(normProvider).
			Save(ctx)
		require.NoError(t, err)
		return row
	}
	shield := mk("PruShield Life", "Prudential", "prushield life", "prudential")
	mk("PruWealth Saver", "Prudential", "pruwealth saver", "prudential")
	mk("Great Eastern Supreme", "Great Eastern", "great eastern supreme", "great eastern")

	got, err := repo.LookupExact(ctx, "prushield life", "prudential")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, shield.ID, got.ID)

	got, err = repo.LookupExact(ctx, "no such plan", "prudential")
	require.NoError(t, err)
	assert.Nil(t, got)

	// duplicate normalized pair is ambiguous, not an answer
	mk("PruShield Life II", "Prudential", "prushield life", "prudential")
	got, err = repo.LookupExact(ctx, "prushield life", "prudential")
	require.NoError(t, err)
	assert.Nil(t, got)

	scoped, err := repo.ListCandidates(ctx, "prudential")
	require.NoError(t, err)
	assert.Len(t, scoped, 3)

	all, err := repo.ListCandidates(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	ok, err := repo.Exists(ctx, shield.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
