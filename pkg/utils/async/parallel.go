package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Parallel runs fn once per index in its own goroutine and waits for all
// of them. The returned slice is indexed by input position, so results
// stay deterministic regardless of completion order.
//
// Behavior:
//   - Each goroutine receives the caller's context (logger included)
//   - A panic in fn is recovered, logged, and returned as that index's error
func Parallel(ctx context.Context, n int, fn func(ctx context.Context, idx int) error) []error {
	errs := make([]error, n)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					ctxlog.From(ctx).Error("panic in parallel task",
						"recover", r,
						"index", idx,
						"stack", string(stack))
					errs[idx] = goerr.New("panic in parallel task", goerr.V("recover", r))
				}
			}()

			errs[idx] = fn(ctx, idx)
		}(i)
	}

	wg.Wait()
	return errs
}
