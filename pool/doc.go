// Package pool provides a dynamically resizable in-process worker pool for
// asynchronous, fire-and-forget execution of nullary tasks.
//
// Producers hand tasks to the pool with Schedule; a set of worker goroutines
// dequeues and runs them concurrently. The worker population can be grown
// and shrunk at any time with Resize, including while tasks are executing:
// growing spawns workers that start fetching immediately, shrinking lets
// workers finish their current task before they exit, and pending tasks
// survive a shrink. Consumers observe progress with WaitForAllTasksDone and
// WaitForAllWorkersExit, or sample the fetching/processing/pending counters.
//
// The dispatch order is decided by the scheduling container chosen at
// construction: NewFIFO runs tasks in submission order, NewLIFO runs the
// most recent first, and NewPriority runs the highest task.Prioritized
// priority first. The pool itself adds no ordering or fairness guarantee
// beyond the container's.
//
// # Usage
//
//	p := pool.NewFIFO(4)
//
//	var mu sync.Mutex
//	processed := 0
//
//	for i := 0; i < 100; i++ {
//	    p.Schedule(task.Func(func() {
//	        mu.Lock()
//	        defer mu.Unlock()
//	        processed++
//	    }))
//	}
//
//	if err := p.WaitForAllTasksDone(); err != nil {
//	    log.Fatal(err)
//	}
//
//	p.Terminate()
//	p.WaitForAllWorkersExit()
//
// # Task contract
//
// A task must not panic. A panicking task does not corrupt the pool — the
// counters stay consistent and every other operation keeps working — but the
// worker that ran it exits and is not replaced. The commanded population is
// left unchanged, so the operator decides whether to Resize the lost worker
// back.
package pool
