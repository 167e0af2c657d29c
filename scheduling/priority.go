package scheduling

import (
	"container/heap"

	"github.com/pgvanniekerk/ezpool/task"
)

// Priority dispatches the task with the highest priority first, as reported
// by task.PriorityOf. Tasks with equal priority are dispatched in submission
// order.
type Priority struct {
	h   prioHeap
	seq uint64
}

// NewPriority returns an empty priority container.
func NewPriority() *Priority {
	return &Priority{}
}

// Push inserts t, keyed by its priority.
func (p *Priority) Push(t task.Task) {
	heap.Push(&p.h, prioEntry{
		priority: task.PriorityOf(t),
		seq:      p.seq,
		task:     t,
	})
	p.seq++
}

// Pop removes the highest-priority task.
func (p *Priority) Pop() (task.Task, bool) {
	if len(p.h) == 0 {
		return nil, false
	}
	e := heap.Pop(&p.h).(prioEntry)
	return e.task, true
}

// Len returns the number of held tasks.
func (p *Priority) Len() int {
	return len(p.h)
}

// Empty reports whether the heap holds no tasks.
func (p *Priority) Empty() bool {
	return len(p.h) == 0
}

// Clear discards all held tasks.
func (p *Priority) Clear() {
	p.h = nil
	p.seq = 0
}

type prioEntry struct {
	priority int
	seq      uint64
	task     task.Task
}

type prioHeap []prioEntry

func (h prioHeap) Len() int { return len(h) }

func (h prioHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h prioHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *prioHeap) Push(x any) {
	*h = append(*h, x.(prioEntry))
}

func (h *prioHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = prioEntry{}
	*h = old[:n-1]
	return e
}
