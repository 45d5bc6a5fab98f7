package worker

import (
	"context"
	"log/slog"
	"sync"
)

type Job interface{}

type ProcessFunc func(ctx context.Context, job Job) error

// Pool runs submitted jobs on a fixed number of goroutines. Dispatch
// notifications go through here so request handlers never block on a
// slow downstream.
type Pool struct {
	numWorkers int
	jobs       chan Job
	processor  ProcessFunc
	wg         sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewPool(numWorkers int, bufferSize int, processor ProcessFunc) *Pool {
	return &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan Job, bufferSize),
		processor:  processor,
	}
}

func (p *Pool) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			if err := p.processor(ctx, job); err != nil {
				slog.Error("job failed", "worker", id, "error", err)
			}
		}
	}
}

// Submit enqueues a job, dropping it when the buffer is full or the
// pool has stopped. Losing a notification is preferable to stalling
// the dispatch path.
func (p *Pool) Submit(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		slog.Warn("pool stopped, dropping job")
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		slog.Warn("job queue full, dropping job")
		return false
	}
}

// Stop closes the queue and waits for workers to drain it. Safe to
// call once; Submit after Stop reports the job as dropped.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
