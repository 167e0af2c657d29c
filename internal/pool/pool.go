// Package pool implements the pool core: the task queue, the worker
// population and the condition signaling that grows, shrinks and drains the
// population while it is live. The public facade in the root pool package
// delegates here.
package pool

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/pgvanniekerk/ezpool/internal/counting"
	"github.com/pgvanniekerk/ezpool/internal/taskqueue"
	"github.com/pgvanniekerk/ezpool/scheduling"
	"github.com/pgvanniekerk/ezpool/task"
)

// ErrResizeBusy is returned by Resize when another resize or terminate is in
// progress. Only one sizing operation runs at a time.
var ErrResizeBusy = errors.New("ezpool: resize already in progress")

// ErrNoWorker is returned by WaitAllTasksDone when tasks are pending but the
// worker population has dropped to zero, so the queue can never drain.
var ErrNoWorker = errors.New("ezpool: no worker")

// ErrNegativeTarget is returned by Resize for a negative worker target.
var ErrNegativeTarget = errors.New("ezpool: negative worker target")

// Core owns the task queue, the worker counts and the synchronization that
// coordinates producers, workers and sizing operations.
//
// Lock order is fixed: resizeMu, then w, then the counting mutex, then the
// queue mutex. No code path acquires these in any other order, and no lock is
// held across task invocation. The counting and queue mutexes are never held
// together, with one exception: the WaitUntil predicates evaluated under the
// counting mutex read the queue length.
type Core struct {

	// queue holds the pending tasks behind its own mutex.
	queue *taskqueue.Queue

	// counts is the {fetching, processing, target} tuple driving all
	// sizing and draining decisions.
	counts *counting.Counts

	// resizeMu serializes Resize and Terminate. Resize acquires it with
	// TryLock and reports busy; Terminate blocks on it.
	resizeMu sync.Mutex

	// w is the wake mutex. Workers hold it for the fetch decision, and
	// every condition below is paired with it.
	w sync.Mutex

	// wake wakes one fetching worker: a task arrived or an exit was
	// requested.
	wake *sync.Cond

	// entered signals that a newly spawned worker has begun fetching.
	// Resize growth waits on it to observe each birth.
	entered *sync.Cond

	// exitedOnRequest signals that a surplus worker left the population.
	// Resize shrink waits on it to observe each exit. A fault exit
	// broadcasts it too, so a shrink waiting for the population to drop
	// observes the drop no matter which kind of exit caused it.
	exitedOnRequest *sync.Cond

	// exitedOnFault signals that a worker left because its task panicked.
	exitedOnFault *sync.Cond
}

// NewCore returns a core with no workers, dispatching from the given
// container.
func NewCore(c scheduling.Container) *Core {
	core := &Core{
		queue:  taskqueue.New(c),
		counts: counting.New(),
	}
	core.wake = sync.NewCond(&core.w)
	core.entered = sync.NewCond(&core.w)
	core.exitedOnRequest = sync.NewCond(&core.w)
	core.exitedOnFault = sync.NewCond(&core.w)
	return core
}

// Schedule enqueues t and wakes one fetching worker. It never blocks and
// provides no back-pressure; a task scheduled on a pool with no workers stays
// pending until workers are added.
func (c *Core) Schedule(t task.Task) {
	c.w.Lock()
	defer c.w.Unlock()

	c.queue.Push(t)
	c.wake.Signal()
}

// Resize drives the worker population to n and returns once the population
// matches. Growth spawns one worker at a time, waiting for each birth.
// Shrink lowers the target one worker at a time, waiting for each exit, so a
// concurrent fault exit can never make it stop more workers than requested.
//
// Returns ErrResizeBusy without blocking when another resize or terminate is
// in progress, and ErrNegativeTarget for n < 0.
func (c *Core) Resize(n int) error {
	if n < 0 {
		return ErrNegativeTarget
	}
	if !c.resizeMu.TryLock() {
		return ErrResizeBusy
	}
	defer c.resizeMu.Unlock()

	switch adjust := c.counts.Adjustment(n); {
	case adjust > 0:
		c.w.Lock()
		c.counts.SetTarget(n)
		for c.counts.Adjustment(n) > 0 {
			go c.runWorker()
			c.entered.Wait()
		}
		c.w.Unlock()

	case adjust < 0:
		c.w.Lock()
		for c.counts.Adjustment(n) < 0 {
			last := c.counts.Total()
			c.counts.SetTarget(last - 1)
			c.wake.Signal()
			for c.counts.Total() >= last {
				c.exitedOnRequest.Wait()
			}
		}
		c.w.Unlock()

	default:
		// Population already matches; re-pin the target so a
		// preceding fault exit cannot leave it above the population.
		c.w.Lock()
		c.counts.SetTarget(n)
		c.w.Unlock()
	}
	return nil
}

// Terminate sets the target to zero and wakes every worker. It does not wait
// for the workers to finish; callers that need a barrier compose it with
// WaitAllWorkersExit. Pending tasks stay queued.
func (c *Core) Terminate() {
	c.resizeMu.Lock()
	defer c.resizeMu.Unlock()

	c.w.Lock()
	defer c.w.Unlock()

	c.counts.SetTarget(0)
	c.wake.Broadcast()
}

// WaitAllTasksDone blocks until the task queue is empty. It returns
// ErrNoWorker if the worker population reaches zero while tasks are still
// pending. It does not wait for in-flight tasks to finish processing: the
// queue being drained is the only condition.
func (c *Core) WaitAllTasksDone() error {
	var err error
	c.counts.WaitUntil(func(fetching, processing, _ int) bool {
		if c.queue.Len() == 0 {
			return true
		}
		if fetching+processing == 0 {
			err = ErrNoWorker
			return true
		}
		return false
	})
	return err
}

// WaitAllWorkersExit blocks until the worker population is zero.
func (c *Core) WaitAllWorkersExit() {
	c.counts.WaitUntil(func(fetching, processing, _ int) bool {
		return fetching+processing == 0
	})
}

// ClearPendingTasks discards all queued tasks. Tasks already fetched by a
// worker are not affected.
func (c *Core) ClearPendingTasks() {
	c.queue.Clear()
}

// TotalWorkers returns a snapshot of the live worker population.
func (c *Core) TotalWorkers() int {
	return c.counts.Total()
}

// FetchingWorkers returns a snapshot of the workers waiting for or
// attempting a dequeue.
func (c *Core) FetchingWorkers() int {
	fetching, _, _ := c.counts.Snapshot()
	return fetching
}

// ProcessingWorkers returns a snapshot of the workers running a task.
func (c *Core) ProcessingWorkers() int {
	_, processing, _ := c.counts.Snapshot()
	return processing
}

// PendingTasks returns a snapshot of the number of queued tasks.
func (c *Core) PendingTasks() int {
	return c.queue.Len()
}
