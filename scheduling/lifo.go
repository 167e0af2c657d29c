package scheduling

import "github.com/pgvanniekerk/ezpool/task"

// LIFO dispatches the most recently submitted task first.
type LIFO struct {
	stack []task.Task
}

// NewLIFO returns an empty LIFO container.
func NewLIFO() *LIFO {
	return &LIFO{}
}

// Push places t on top of the stack.
func (l *LIFO) Push(t task.Task) {
	l.stack = append(l.stack, t)
}

// Pop removes the task on top of the stack.
func (l *LIFO) Pop() (task.Task, bool) {
	n := len(l.stack)
	if n == 0 {
		return nil, false
	}
	t := l.stack[n-1]
	l.stack[n-1] = nil
	l.stack = l.stack[:n-1]
	return t, true
}

// Len returns the number of held tasks.
func (l *LIFO) Len() int {
	return len(l.stack)
}

// Empty reports whether the stack holds no tasks.
func (l *LIFO) Empty() bool {
	return len(l.stack) == 0
}

// Clear discards all held tasks.
func (l *LIFO) Clear() {
	l.stack = nil
}
