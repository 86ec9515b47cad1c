package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/proposal-pipeline/constants"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to constants.ProposalStatus
		want     bool
	}{
		{constants.ProposalDraft, constants.ProposalExtracting, true},
		{constants.ProposalExtracting, constants.ProposalReviewing, true},
		{constants.ProposalReviewing, constants.ProposalGenerating, true},
		{constants.ProposalGenerating, constants.ProposalCompleted, true},

		{constants.ProposalDraft, constants.ProposalFailed, true},
		{constants.ProposalExtracting, constants.ProposalFailed, true},
		{constants.ProposalReviewing, constants.ProposalFailed, true},
		{constants.ProposalGenerating, constants.ProposalFailed, true},

		// no skipping forward
		{constants.ProposalDraft, constants.ProposalReviewing, false},
		{constants.ProposalDraft, constants.ProposalCompleted, false},
		{constants.ProposalExtracting, constants.ProposalGenerating, false},
		// no moving backward
		{constants.ProposalReviewing, constants.ProposalExtracting, false},
		{constants.ProposalGenerating, constants.ProposalReviewing, false},
		// terminal states admit nothing
		{constants.ProposalCompleted, constants.ProposalGenerating, false},
		{constants.ProposalCompleted, constants.ProposalFailed, false},
		{constants.ProposalFailed, constants.ProposalReviewing, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCheckTransitionError(t *testing.T) {
	err := CheckTransition(constants.ProposalDraft, constants.ProposalCompleted)
	require.Error(t, err)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, constants.ProposalDraft, conflict.From)
	assert.Equal(t, constants.ProposalCompleted, conflict.To)

	assert.NoError(t, CheckTransition(constants.ProposalReviewing, constants.ProposalGenerating))
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(constants.ProposalCompleted))
	assert.True(t, Terminal(constants.ProposalFailed))
	assert.False(t, Terminal(constants.ProposalDraft))
	assert.False(t, Terminal(constants.ProposalGenerating))
}

func TestCanMutateIllustrations(t *testing.T) {
	assert.True(t, CanMutateIllustrations(constants.ProposalDraft))
	assert.True(t, CanMutateIllustrations(constants.ProposalReviewing))
	assert.False(t, CanMutateIllustrations(constants.ProposalExtracting))
	assert.False(t, CanMutateIllustrations(constants.ProposalGenerating))
	assert.False(t, CanMutateIllustrations(constants.ProposalCompleted))
	assert.False(t, CanMutateIllustrations(constants.ProposalFailed))

	err := CheckMutable(constants.ProposalGenerating, "upload illustrations")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload illustrations")
	assert.Contains(t, err.Error(), string(constants.ProposalGenerating))
}

func TestNextAfterExtraction(t *testing.T) {
	tests := []struct {
		name     string
		statuses []constants.ExtractionStatus
		want     constants.ProposalStatus
		settled  bool
	}{
		{
			name: "all completed",
			statuses: []constants.ExtractionStatus{
				constants.ExtractionCompleted, constants.ExtractionCompleted,
			},
			want: constants.ProposalReviewing, settled: true,
		},
		{
			name: "partial failure still reviews",
			statuses: []constants.ExtractionStatus{
				constants.ExtractionCompleted, constants.ExtractionFailed,
			},
			want: constants.ProposalReviewing, settled: true,
		},
		{
			name: "all failed",
			statuses: []constants.ExtractionStatus{
				constants.ExtractionFailed, constants.ExtractionFailed,
			},
			want: constants.ProposalFailed, settled: true,
		},
		{
			name: "still in flight",
			statuses: []constants.ExtractionStatus{
				constants.ExtractionCompleted, constants.ExtractionProcessing,
			},
			settled: false,
		},
		{
			name: "pending work remains",
			statuses: []constants.ExtractionStatus{
				constants.ExtractionFailed, constants.ExtractionPending,
			},
			settled: false,
		},
		{
			name:     "no illustrations",
			statuses: nil,
			settled:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextAfterExtraction(Summarize(tt.statuses))
			assert.Equal(t, tt.settled, ok)
			if tt.settled {
				assert.Equal(t, tt.want, next)
			}
		})
	}
}
