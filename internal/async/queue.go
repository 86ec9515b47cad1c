package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobKind selects which pipeline handles a queued job.
type JobKind string

const (
	// JobExtract runs extraction + matching for one illustration.
	JobExtract JobKind = "extract"
	// JobAnalysis runs the intelligent-analysis selection for one proposal.
	JobAnalysis JobKind = "analysis"
	// JobGenerate renders the output pages for one proposal.
	JobGenerate JobKind = "generate"
)

// Job is the smallest useful unit of background work.
type Job struct {
	Kind        JobKind
	ID          uuid.UUID // illustration ID or proposal ID, per Kind
	SubmittedAt time.Time
}

// Key identifies the job's target for single-flight serialization: no two
// jobs with the same key run concurrently.
func (j Job) Key() string {
	return string(j.Kind) + ":" + j.ID.String()
}

// Dispatcher routes a dequeued job to the pipeline that owns its kind.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) error
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
