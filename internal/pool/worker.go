package pool

import "github.com/pgvanniekerk/ezpool/task"

// runWorker is the body of one worker goroutine. The goroutine's reference
// to the Core keeps the pool alive for as long as any worker runs.
//
// The worker alternates between two phases. In the fetching phase it holds w
// and either pops a task, exits because it is surplus, or sleeps on wake. In
// the processing phase it holds no lock and runs the task under a fault
// guard. The exit decision is made by the worker itself: ExitIfSurplus fuses
// the surplus check with the exit decrement, so concurrent workers can never
// each conclude they are the surplus and overshoot the target.
func (c *Core) runWorker() {
	c.w.Lock()
	c.counts.BeginFetching()
	c.entered.Broadcast()

	for {
		// Fetching phase, w held.
		var t task.Task
		for {
			if c.counts.ExitIfSurplus() {
				c.exitedOnRequest.Broadcast()
				// A schedule signal may have woken this worker;
				// hand it on so the task is not stranded.
				c.wake.Signal()
				c.w.Unlock()
				return
			}
			var ok bool
			if t, ok = c.queue.TryPop(); ok {
				break
			}
			c.wake.Wait()
		}
		c.counts.FetchingToProcessing()
		c.w.Unlock()

		// Processing phase, no lock held.
		if !c.invoke(t) {
			return
		}

		c.w.Lock()
		c.counts.ProcessingToFetching()
	}
}

// invoke runs t under the fault guard. A task that panics terminates its
// worker: the guard absorbs the panic, removes the worker from the
// processing count and signals the exit, leaving target unchanged. The
// exit-on-request broadcast lets a shrink in progress observe the population
// drop.
func (c *Core) invoke(t task.Task) (completed bool) {
	defer func() {
		if completed {
			return
		}
		recover()
		c.w.Lock()
		c.counts.ProcessingToExitFault()
		c.exitedOnFault.Broadcast()
		c.exitedOnRequest.Broadcast()
		c.w.Unlock()
	}()
	t.Run()
	return true
}
