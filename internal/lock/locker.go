// Package lock serializes mutations of shared resources. The working
// set has a single mutator at a time; every operation that touches it
// takes the lock for its resource name first.
package lock

import (
	"context"
	"sync"
	"time"
)

type Locker interface {
	Lock(id string) Unlocker
	ContextLock(ctx context.Context, id string) (Unlocker, error)
}

type Unlocker interface {
	Unlock()
}

type unlockFn func()

func (f unlockFn) Unlock() { f() }

// resourceLock is one named lock. The ref count tracks holders and
// waiters so the registry entry can be dropped once nobody wants it.
type resourceLock struct {
	mu  sync.Mutex
	ref uint64
}

type locker struct {
	mu    sync.Mutex
	locks map[string]*resourceLock
}

func (l *locker) acquire(id string) *resourceLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	rl, ok := l.locks[id]
	if !ok {
		rl = &resourceLock{}
		l.locks[id] = rl
	}
	rl.ref++
	return rl
}

func (l *locker) release(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rl, ok := l.locks[id]
	if !ok {
		return
	}
	rl.ref--
	if rl.ref == 0 {
		delete(l.locks, id)
	}
}

func (l *locker) unlocker(id string, rl *resourceLock) Unlocker {
	return unlockFn(func() {
		l.release(id)
		rl.mu.Unlock()
	})
}

// Lock implements Locker.
func (l *locker) Lock(id string) Unlocker {
	rl := l.acquire(id)
	rl.mu.Lock()
	return l.unlocker(id, rl)
}

// ContextLock implements Locker.
func (l *locker) ContextLock(ctx context.Context, id string) (Unlocker, error) {
	rl := l.acquire(id)
	if rl.mu.TryLock() {
		return l.unlocker(id, rl), nil
	}

	for {
		select {
		case <-ctx.Done():
			l.release(id)
			return nil, ctx.Err()
		case <-time.After(100 * time.Millisecond):
			if rl.mu.TryLock() {
				return l.unlocker(id, rl), nil
			}
		}
	}
}

func NewLocker() Locker {
	return &locker{
		locks: map[string]*resourceLock{},
	}
}
