package lifecycle

import (
	"fmt"

	"github.com/advisorhq/proposal-pipeline/constants"
)

// transitions is the forward edge set of the proposal state machine. FAILED is
// reachable from any non-terminal state; leaving FAILED happens only through
// the explicit retry edge back to the state recorded at failure time.
var transitions = map[constants.ProposalStatus][]constants.ProposalStatus{
	constants.ProposalDraft:      {constants.ProposalExtracting, constants.ProposalFailed},
	constants.ProposalExtracting: {constants.ProposalReviewing, constants.ProposalFailed},
	constants.ProposalReviewing:  {constants.ProposalGenerating, constants.ProposalFailed},
	constants.ProposalGenerating: {constants.ProposalCompleted, constants.ProposalFailed},
}

// ConflictError reports a transition or mutation the current status forbids.
type ConflictError struct {
	From constants.ProposalStatus
	To   constants.ProposalStatus
	Op   string
}

func (e *ConflictError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s not allowed while proposal is %s", e.Op, e.From)
	}
	return fmt.Sprintf("invalid proposal transition %s -> %s", e.From, e.To)
}

// CanTransition reports whether from -> to is a legal forward edge.
func CanTransition(from, to constants.ProposalStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns a ConflictError when from -> to is not legal.
func CheckTransition(from, to constants.ProposalStatus) error {
	if !CanTransition(from, to) {
		return &ConflictError{From: from, To: to}
	}
	return nil
}

// Terminal reports whether the status admits no forward transition.
func Terminal(s constants.ProposalStatus) bool {
	return s == constants.ProposalCompleted || s == constants.ProposalFailed
}

// CanMutateIllustrations reports whether uploads and deletes are accepted.
// Mutations during extraction or generation would race the background workers
// and are rejected with a conflict.
func CanMutateIllustrations(s constants.ProposalStatus) bool {
	return s == constants.ProposalDraft || s == constants.ProposalReviewing
}

// CheckMutable returns a ConflictError when illustrations may not be changed.
func CheckMutable(s constants.ProposalStatus, op string) error {
	if !CanMutateIllustrations(s) {
		return &ConflictError{From: s, Op: op}
	}
	return nil
}

// ExtractionOutcome summarizes the per-illustration statuses of a proposal.
type ExtractionOutcome struct {
	Total     int
	Completed int
	Failed    int
}

// Summarize tallies illustration extraction statuses.
func Summarize(statuses []constants.ExtractionStatus) ExtractionOutcome {
	var o ExtractionOutcome
	o.Total = len(statuses)
	for _, s := range statuses {
		switch s {
		case constants.ExtractionCompleted:
			o.Completed++
		case constants.ExtractionFailed:
			o.Failed++
		}
	}
	return o
}

// AllTerminal reports whether every illustration finished its attempt.
func (o ExtractionOutcome) AllTerminal() bool {
	return o.Total > 0 && o.Completed+o.Failed == o.Total
}

// NextAfterExtraction decides the proposal status once extraction settles:
// reviewing when at least one illustration extracted, failed when none did.
// The second return is false while any illustration is still in flight.
func NextAfterExtraction(o ExtractionOutcome) (constants.ProposalStatus, bool) {
	if !o.AllTerminal() {
		return "", false
	}
	if o.Completed == 0 {
		return constants.ProposalFailed, true
	}
	return constants.ProposalReviewing, true
}
