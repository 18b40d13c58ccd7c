package slotmap

import "sync"

// LockedPool wraps a Pool behind a single coarse-grained lock, the
// supported way to share a pool across goroutines.
//
// GetMut is intentionally absent: a borrowed pointer cannot safely escape
// the lock. Use Update instead, which runs the mutation while the write
// lock is held.
type LockedPool[T any] struct {
	mu   sync.RWMutex
	pool *Pool[T]
}

// NewLocked creates an empty LockedPool.
func NewLocked[T any](optFns ...Option) *LockedPool[T] {
	return &LockedPool[T]{
		pool: New[T](optFns...),
	}
}

// Allocate moves value into a slot and returns a Handle for it.
func (p *LockedPool[T]) Allocate(value T) (Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.pool.Allocate(value)
}

// Get returns a copy of the value referenced by h, or false when h is
// stale.
func (p *LockedPool[T]) Get(h Handle) (T, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.pool.Get(h)
}

// Update runs fn on the value referenced by h while the write lock is
// held. It reports whether h resolved; fn is not called for stale handles.
// fn must not call back into the pool.
func (p *LockedPool[T]) Update(h Handle, fn func(*T)) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	value, ok := p.pool.GetMut(h)
	if !ok {
		return false
	}

	fn(value)

	return true
}

// Contains reports whether h currently resolves to a live value.
func (p *LockedPool[T]) Contains(h Handle) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.pool.Contains(h)
}

// Free releases the value referenced by h. It reports whether the free
// took effect; freeing a stale handle is a no-op.
func (p *LockedPool[T]) Free(h Handle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.pool.Free(h)
}

// Reset frees every live value in bulk.
func (p *LockedPool[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pool.Reset()
}

// Len returns the number of currently live slots.
func (p *LockedPool[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.pool.Len()
}

// Capacity returns the total number of slots ever created.
func (p *LockedPool[T]) Capacity() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.pool.Capacity()
}

// Stats returns a snapshot of the pool's counters.
func (p *LockedPool[T]) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.pool.Stats()
}
