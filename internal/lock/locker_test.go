package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockerSerializesSameResource(t *testing.T) {
	l := NewLocker()

	u := l.Lock("working-set")

	acquired := make(chan struct{})
	go func() {
		second := l.Lock("working-set")
		close(acquired)
		second.Unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock acquired while the first is held")
	case <-time.After(50 * time.Millisecond):
	}

	u.Unlock()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second lock never acquired")
	}
}

func TestLockerIndependentResources(t *testing.T) {
	l := NewLocker()

	u1 := l.Lock("a")
	defer u1.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	u2, err := l.ContextLock(ctx, "b")
	require.NoError(t, err)
	u2.Unlock()
}

func TestContextLockGivesUp(t *testing.T) {
	l := NewLocker()

	u := l.Lock("working-set")
	defer u.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	_, err := l.ContextLock(ctx, "working-set")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the waiter released its claim, the registry holds one entry only
	reg := l.(*locker)
	reg.mu.Lock()
	defer reg.mu.Unlock()
	assert.Len(t, reg.locks, 1)
	assert.Equal(t, uint64(1), reg.locks["working-set"].ref)
}
