// Package counting tracks the worker population of a pool. Its counters are
// the sole source of truth for resizing and draining decisions.
package counting

import (
	"sync"

	"github.com/pkg/errors"
)

// Counts is the {fetching, processing, target} tuple with a broadcast
// condition on any change. A worker agent exists if and only if it is counted
// in exactly one of fetching or processing; the sum of the two is the live
// population the pool drives toward target.
type Counts struct {

	// mu protects all three counters.
	mu sync.Mutex

	// changed is broadcast after every counter update, waking WaitUntil
	// callers so they can re-evaluate their predicates.
	changed *sync.Cond

	// fetching counts workers blocked on or actively attempting a dequeue.
	fetching int

	// processing counts workers currently running a task.
	processing int

	// target is the commanded worker population. It changes only through
	// SetTarget, which the pool calls from resize and terminate.
	target int
}

// New returns a zeroed Counts.
func New() *Counts {
	c := &Counts{}
	c.changed = sync.NewCond(&c.mu)
	return c
}

// BeginFetching records the birth of a worker: it enters the population in
// the fetching state.
func (c *Counts) BeginFetching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fetching++
	c.changed.Broadcast()
}

// FetchingToProcessing moves one worker from fetching to processing.
func (c *Counts) FetchingToProcessing() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetching == 0 {
		panic(errors.New("counting: no fetching worker to move to processing"))
	}
	c.fetching--
	c.processing++
	c.changed.Broadcast()
}

// ProcessingToFetching moves one worker from processing back to fetching.
func (c *Counts) ProcessingToFetching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.processing == 0 {
		panic(errors.New("counting: no processing worker to move to fetching"))
	}
	c.processing--
	c.fetching++
	c.changed.Broadcast()
}

// ExitIfSurplus removes one fetching worker from the population if the
// population currently exceeds target, and reports whether it did. The
// surplus check and the decrement happen under a single lock hold, so
// concurrent callers can never conclude they are each the surplus and
// overshoot the target.
func (c *Counts) ExitIfSurplus() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.target-c.fetching-c.processing >= 0 {
		return false
	}
	if c.fetching == 0 {
		panic(errors.New("counting: no fetching worker to exit"))
	}
	c.fetching--
	c.changed.Broadcast()
	return true
}

// ProcessingToExitFault removes one processing worker from the population.
// Called by the fault guard when a task panics and its worker unwinds.
func (c *Counts) ProcessingToExitFault() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.processing == 0 {
		panic(errors.New("counting: no processing worker to exit"))
	}
	c.processing--
	c.changed.Broadcast()
}

// SetTarget updates the commanded worker population.
func (c *Counts) SetTarget(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.target = n
	c.changed.Broadcast()
}

// Snapshot returns the three counters atomically.
func (c *Counts) Snapshot() (fetching, processing, target int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fetching, c.processing, c.target
}

// Total returns the live worker population, fetching + processing.
func (c *Counts) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fetching + c.processing
}

// Deficit returns target minus the live population. Positive means workers
// should be spawned; negative means some worker is surplus.
func (c *Counts) Deficit() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.target - c.fetching - c.processing
}

// Adjustment returns n minus the live population: the number of spawns
// (positive) or exits (negative) needed to reach a population of n.
func (c *Counts) Adjustment(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return n - c.fetching - c.processing
}

// WaitUntil blocks until pred returns true. The predicate is evaluated under
// the counts mutex and re-evaluated after every counter change, so it must
// not call back into Counts.
func (c *Counts) WaitUntil(pred func(fetching, processing, target int) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for !pred(c.fetching, c.processing, c.target) {
		c.changed.Wait()
	}
}
