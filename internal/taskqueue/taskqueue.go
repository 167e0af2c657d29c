// Package taskqueue wraps a scheduling container with the mutex and change
// signal that make it safe to share between producers and pool workers.
package taskqueue

import (
	"sync"

	"github.com/pgvanniekerk/ezpool/scheduling"
	"github.com/pgvanniekerk/ezpool/task"
)

// Queue is a thread-safe task queue. Ordering is delegated entirely to the
// underlying container; the queue makes no fairness claim of its own.
type Queue struct {

	// mu protects container. All reads and mutations happen under it.
	mu sync.Mutex

	// changed is broadcast after every mutation of the container.
	changed *sync.Cond

	// container holds the pending tasks in dispatch order.
	container scheduling.Container
}

// New returns a queue dispatching from the given container.
func New(c scheduling.Container) *Queue {
	q := &Queue{container: c}
	q.changed = sync.NewCond(&q.mu)
	return q
}

// Push inserts t and signals the change.
func (q *Queue) Push(t task.Task) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.container.Push(t)
	q.changed.Broadcast()
}

// TryPop removes the next task without blocking. The boolean is false when
// the queue is empty.
func (q *Queue) TryPop() (task.Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.container.Pop()
	if !ok {
		return nil, false
	}
	q.changed.Broadcast()
	return t, true
}

// Len returns a snapshot of the number of pending tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.container.Len()
}

// Empty reports whether the queue held no tasks at the time of the call.
func (q *Queue) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.container.Empty()
}

// Clear discards all pending tasks and signals the change.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.container.Clear()
	q.changed.Broadcast()
}
