package scheduling

import (
	"github.com/eapache/queue"

	"github.com/pgvanniekerk/ezpool/task"
)

// FIFO dispatches tasks in submission order. It is backed by a growable ring
// buffer, so Push and Pop are amortized O(1) with no per-task allocation
// beyond the buffer itself.
type FIFO struct {
	ring *queue.Queue
}

// NewFIFO returns an empty FIFO container.
func NewFIFO() *FIFO {
	return &FIFO{ring: queue.New()}
}

// Push appends t to the tail of the ring.
func (f *FIFO) Push(t task.Task) {
	f.ring.Add(t)
}

// Pop removes the task at the head of the ring.
func (f *FIFO) Pop() (task.Task, bool) {
	if f.ring.Length() == 0 {
		return nil, false
	}
	return f.ring.Remove().(task.Task), true
}

// Len returns the number of held tasks.
func (f *FIFO) Len() int {
	return f.ring.Length()
}

// Empty reports whether the ring holds no tasks.
func (f *FIFO) Empty() bool {
	return f.ring.Length() == 0
}

// Clear discards all held tasks.
func (f *FIFO) Clear() {
	for f.ring.Length() > 0 {
		f.ring.Remove()
	}
}
