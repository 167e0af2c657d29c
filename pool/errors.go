package pool

import "github.com/pgvanniekerk/ezpool/internal/pool"

// ErrResizeBusy is returned by Resize when another Resize or Terminate is in
// progress. The caller may simply retry once the other operation finishes.
var ErrResizeBusy = pool.ErrResizeBusy

// ErrNoWorker is returned by WaitForAllTasksDone when tasks are pending but
// the worker population has dropped to zero, so the queue can never drain.
var ErrNoWorker = pool.ErrNoWorker

// ErrNegativeTarget is returned by Resize for a negative worker target.
var ErrNegativeTarget = pool.ErrNegativeTarget
