package async

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu         sync.Mutex
	seen       []Job
	delay      time.Duration
	concurrent int32
	maxSeen    int32
}

func (d *recordingDispatcher) Dispatch(_ context.Context, job Job) error {
	now := atomic.AddInt32(&d.concurrent, 1)
	for {
		max := atomic.LoadInt32(&d.maxSeen)
		if now <= max || atomic.CompareAndSwapInt32(&d.maxSeen, max, now) {
			break
		}
	}
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	d.mu.Lock()
	d.seen = append(d.seen, job)
	d.mu.Unlock()
	atomic.AddInt32(&d.concurrent, -1)
	return nil
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(noopWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestQueueProcessesJobs(t *testing.T) {
	d := &recordingDispatcher{}
	q := NewProcessorQueue(d, testLogger(), WithWorkers(2), WithQueueSize(16))

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{Kind: JobExtract, ID: uuid.New(), SubmittedAt: time.Now()}))
	}
	q.Shutdown(context.Background())

	assert.Equal(t, 5, d.count())
}

func TestQueueSerializesSameKey(t *testing.T) {
	d := &recordingDispatcher{delay: 30 * time.Millisecond}
	q := NewProcessorQueue(d, testLogger(), WithWorkers(4), WithQueueSize(16))

	id := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{Kind: JobAnalysis, ID: id, SubmittedAt: time.Now()}))
	}

	deadline := time.After(3 * time.Second)
	for d.count() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d of 3 jobs processed", d.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
	q.Shutdown(context.Background())

	assert.Equal(t, 3, d.count())
	// duplicates of one key never overlapped
	assert.Equal(t, int32(1), atomic.LoadInt32(&d.maxSeen))
}

func TestQueueDistinctKeysRunConcurrently(t *testing.T) {
	d := &recordingDispatcher{delay: 50 * time.Millisecond}
	q := NewProcessorQueue(d, testLogger(), WithWorkers(4), WithQueueSize(16))

	for i := 0; i < 4; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{Kind: JobExtract, ID: uuid.New(), SubmittedAt: time.Now()}))
	}
	q.Shutdown(context.Background())

	assert.Equal(t, 4, d.count())
	assert.Greater(t, atomic.LoadInt32(&d.maxSeen), int32(1), "distinct keys should run in parallel")
}

func TestEnqueueAfterShutdownIsNoop(t *testing.T) {
	d := &recordingDispatcher{}
	q := NewProcessorQueue(d, testLogger(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{Kind: JobGenerate, ID: uuid.New()}))
	assert.Zero(t, d.count())
}

func TestJobKey(t *testing.T) {
	id := uuid.New()
	a := Job{Kind: JobExtract, ID: id}
	b := Job{Kind: JobAnalysis, ID: id}
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), Job{Kind: JobExtract, ID: id}.Key())
}
