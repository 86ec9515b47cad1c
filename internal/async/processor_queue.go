package async

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ProcessorQueue is a bounded-channel worker pool. Jobs targeting the same
// key are serialized: a job whose key is already in flight is re-queued after
// a short pause instead of running concurrently with its twin.
type ProcessorQueue struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	workers    int
	timeout    time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu       sync.Mutex
	closed   bool
	inFlight map[string]struct{}
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(d Dispatcher, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
		dispatcher: d,
		logger:     logger,
		workers:    4,
		timeout:    3 * time.Minute,
		ch:         make(chan Job, 256),
		inFlight:   make(map[string]struct{}),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					if !q.acquire(job.Key()) {
						// same target already running on another worker; defer
						q.requeue(job)
						continue
					}
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.dispatcher.Dispatch(ctx, job)
					cancel()
					q.release(job.Key())

					if err != nil {
						q.logger.Error("job failed", "worker_id", workerID, "kind", job.Kind, "id", job.ID, "error", err)
					} else {
						q.logger.Info("job processed", "worker_id", workerID, "kind", job.Kind, "id", job.ID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) acquire(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, busy := q.inFlight[key]; busy {
		return false
	}
	q.inFlight[key] = struct{}{}
	return true
}

func (q *ProcessorQueue) release(key string) {
	q.mu.Lock()
	delete(q.inFlight, key)
	q.mu.Unlock()
}

func (q *ProcessorQueue) requeue(job Job) {
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = q.Enqueue(context.Background(), job)
	}()
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "kind", job.Kind, "id", job.ID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("job queued", "kind", job.Kind, "id", job.ID)
	default:
		q.logger.Warn("queue full, applying backpressure", "kind", job.Kind, "id", job.ID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
