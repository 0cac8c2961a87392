package lock

import (
	"context"
	"time"
)

func TimedLock(ctx context.Context, lock Locker, id string, timeout time.Duration) (Unlocker, error) {
	tCtx, tCancel := context.WithTimeout(ctx, timeout)
	defer tCancel()

	return lock.ContextLock(tCtx, id)
}
