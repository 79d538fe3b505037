package wpsync

import (
	"context"
	"sync"
	"time"
)

// Runner executes submitted tasks on background goroutines. Submit never
// blocks the caller and gives no ordering guarantee between tasks; each
// task gets its own timeout context. Wait drains in-flight tasks on
// shutdown (and lets tests observe completion).
type Runner struct {
	wg      sync.WaitGroup
	timeout time.Duration
}

func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Runner{timeout: timeout}
}

func (r *Runner) Submit(fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		fn(ctx)
	}()
}

func (r *Runner) Wait() { r.wg.Wait() }
