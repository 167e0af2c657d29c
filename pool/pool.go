package pool

import (
	"github.com/pgvanniekerk/ezpool/internal/pool"
	"github.com/pgvanniekerk/ezpool/task"
)

// Pool is a dynamically resizable worker pool for fire-and-forget tasks.
// Producers schedule tasks; a set of worker goroutines dequeues and runs
// them concurrently in the order decided by the pool's scheduling container.
//
// All methods are safe for concurrent use. Any number of goroutines may
// schedule, inspect or wait at the same time; only one Resize or Terminate
// proceeds at a time.
type Pool struct {
	core *pool.Core
}

// Schedule enqueues t for asynchronous execution. It never blocks and never
// fails; a task scheduled on a pool with no workers stays pending until the
// pool is resized.
func (p *Pool) Schedule(t task.Task) {
	p.core.Schedule(t)
}

// Resize grows or shrinks the worker population to n and returns once the
// population matches. Growing spawns new workers; shrinking asks idle
// workers to exit, and workers running a task finish it before exiting.
// Pending tasks survive a shrink.
//
// Returns ErrResizeBusy when another Resize or Terminate is in progress, and
// ErrNegativeTarget when n is negative.
func (p *Pool) Resize(n int) error {
	return p.core.Resize(n)
}

// Terminate asks every worker to exit and returns immediately, without
// waiting for them. Compose with WaitForAllWorkersExit to observe the exits.
// Pending tasks stay queued and run if the pool is resized up again.
func (p *Pool) Terminate() {
	p.core.Terminate()
}

// WaitForAllTasksDone blocks until the task queue is empty. Tasks already
// handed to a worker may still be executing when it returns; only the queue
// itself is drained. Returns ErrNoWorker if the worker population reaches
// zero while tasks are still pending.
func (p *Pool) WaitForAllTasksDone() error {
	return p.core.WaitAllTasksDone()
}

// WaitForAllWorkersExit blocks until the worker population is zero.
func (p *Pool) WaitForAllWorkersExit() {
	p.core.WaitAllWorkersExit()
}

// Close shuts the pool down: it terminates the workers, waits for them to
// exit and discards any pending tasks. Safe to call more than once.
func (p *Pool) Close() {
	p.core.Terminate()
	p.core.WaitAllWorkersExit()
	p.core.ClearPendingTasks()
}

// TotalWorkers returns a snapshot of the live worker population.
func (p *Pool) TotalWorkers() int {
	return p.core.TotalWorkers()
}

// FetchingWorkers returns a snapshot of the workers waiting for a task.
func (p *Pool) FetchingWorkers() int {
	return p.core.FetchingWorkers()
}

// ProcessingWorkers returns a snapshot of the workers running a task.
func (p *Pool) ProcessingWorkers() int {
	return p.core.ProcessingWorkers()
}

// PendingTasks returns a snapshot of the number of queued tasks.
func (p *Pool) PendingTasks() int {
	return p.core.PendingTasks()
}
