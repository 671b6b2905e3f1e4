package timer

import (
	"context"
	"fmt"
	"sync"
)

// Result is the outcome of one run.
type Result struct {
	// Status is Finished for a positive result, otherwise the status the
	// timer moved to when the run was interrupted.
	Status Status

	// Err is nil for a positive result and wraps ErrInterrupted otherwise.
	Err error
}

// Completion is a one-shot signal for the end of a run started by
// Timer.Start. It resolves exactly once.
type Completion struct {
	once   sync.Once
	done   chan struct{}
	result Result
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Done is closed when the run ends.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Result returns the outcome. While the run is still pending it reports
// Running with a nil error.
func (c *Completion) Result() Result {
	select {
	case <-c.done:
		return c.result
	default:
		return Result{Status: Running}
	}
}

// Wait blocks until the run ends or ctx is done.
func (c *Completion) Wait(ctx context.Context) (Status, error) {
	select {
	case <-c.done:
		return c.result.Status, c.result.Err
	case <-ctx.Done():
		return Running, ctx.Err()
	}
}

func (c *Completion) resolve(status Status, err error) {
	if c == nil {
		return
	}
	c.once.Do(func() {
		c.result = Result{Status: status, Err: err}
		close(c.done)
	})
}

func (c *Completion) interrupt(status Status) {
	c.resolve(status, fmt.Errorf("%w: timer %s", ErrInterrupted, status))
}
