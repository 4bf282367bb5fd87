package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/drover/pkg/utils/async"
)

func TestParallel(t *testing.T) {
	t.Run("runs all tasks and keeps index order", func(t *testing.T) {
		ctx := context.Background()
		var count int32

		errs := async.Parallel(ctx, 5, func(ctx context.Context, idx int) error {
			atomic.AddInt32(&count, 1)
			if idx == 2 {
				return goerr.New("task failed", goerr.V("idx", idx))
			}
			return nil
		})

		gt.Value(t, len(errs)).Equal(5)
		gt.Value(t, atomic.LoadInt32(&count)).Equal(int32(5))
		for i, err := range errs {
			if i == 2 {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		}
	})

	t.Run("tasks actually run concurrently", func(t *testing.T) {
		ctx := context.Background()
		start := time.Now()

		async.Parallel(ctx, 4, func(ctx context.Context, idx int) error {
			time.Sleep(50 * time.Millisecond)
			return nil
		})

		// Four sequential sleeps would take 200ms.
		gt.Value(t, time.Since(start) < 150*time.Millisecond).Equal(true)
	})

	t.Run("recovers panics into errors", func(t *testing.T) {
		ctx := context.Background()

		errs := async.Parallel(ctx, 2, func(ctx context.Context, idx int) error {
			if idx == 0 {
				panic("boom")
			}
			return nil
		})

		gt.Error(t, errs[0])
		gt.NoError(t, errs[1])
	})

	t.Run("zero tasks returns empty result", func(t *testing.T) {
		errs := async.Parallel(context.Background(), 0, func(ctx context.Context, idx int) error {
			return nil
		})
		gt.Value(t, len(errs)).Equal(0)
	})
}
