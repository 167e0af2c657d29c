// Package scheduling provides the task containers that determine the order
// in which a pool dispatches pending tasks. A container is chosen at pool
// construction and is fixed for the pool's life.
package scheduling

import "github.com/pgvanniekerk/ezpool/task"

// Container holds tasks that have been scheduled but not yet fetched by a
// worker. Implementations decide the dispatch order (FIFO, LIFO, priority)
// and make no other guarantee.
//
// Containers are not safe for concurrent use. The pool serializes all access
// behind its task queue mutex.
type Container interface {

	// Push inserts a task.
	Push(t task.Task)

	// Pop removes and returns the next task to dispatch. The boolean is
	// false when the container is empty.
	Pop() (task.Task, bool)

	// Len returns the number of held tasks.
	Len() int

	// Empty reports whether the container holds no tasks.
	Empty() bool

	// Clear discards all held tasks.
	Clear()
}
