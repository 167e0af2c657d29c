package task

// Task is a nullary unit of work submitted to a pool. The pool invokes Run
// exactly once after the task has been dequeued. A Task must not panic; a
// panicking task terminates the worker that ran it (the pool's counters stay
// consistent, but the worker is not replaced).
type Task interface {
	Run()
}

// Func adapts a plain function to the Task interface.
//
// Example:
//
//	p.Schedule(task.Func(func() {
//	    processRecord(rec)
//	}))
type Func func()

// Run invokes the wrapped function.
func (f Func) Run() { f() }

// Prioritized pairs a task with a scheduling priority for use with a
// priority container. Higher priorities are dispatched first; tasks with
// equal priority are dispatched in submission order.
type Prioritized struct {
	Priority int
	Task     Task
}

// Run invokes the wrapped task.
func (p Prioritized) Run() { p.Task.Run() }

// PriorityOf returns the scheduling priority of t. Tasks that do not carry a
// priority are treated as priority 0.
func PriorityOf(t Task) int {
	if p, ok := t.(Prioritized); ok {
		return p.Priority
	}
	return 0
}
