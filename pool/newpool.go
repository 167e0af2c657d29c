package pool

import (
	"github.com/pkg/errors"

	"github.com/pgvanniekerk/ezpool/internal/pool"
	"github.com/pgvanniekerk/ezpool/scheduling"
)

// New creates a pool dispatching from the given container and grows it to
// initialWorkers. The container choice is fixed for the pool's life.
//
// Panics if initialWorkers is negative.
func New(container scheduling.Container, initialWorkers int) *Pool {
	if initialWorkers < 0 {
		panic(errors.Errorf("ezpool: invalid initial worker count %d", initialWorkers))
	}

	p := &Pool{core: pool.NewCore(container)}

	// A freshly constructed pool cannot have a sizing operation in
	// progress, so this resize cannot fail.
	if err := p.core.Resize(initialWorkers); err != nil {
		panic(errors.Wrap(err, "ezpool: initial resize"))
	}

	return p
}

// NewFIFO creates a pool that runs tasks in submission order.
func NewFIFO(initialWorkers int) *Pool {
	return New(scheduling.NewFIFO(), initialWorkers)
}

// NewLIFO creates a pool that runs the most recently submitted task first.
func NewLIFO(initialWorkers int) *Pool {
	return New(scheduling.NewLIFO(), initialWorkers)
}

// NewPriority creates a pool that runs the highest-priority task first.
// Schedule tasks wrapped in task.Prioritized to assign priorities; bare
// tasks run at priority 0.
func NewPriority(initialWorkers int) *Pool {
	return New(scheduling.NewPriority(), initialWorkers)
}
