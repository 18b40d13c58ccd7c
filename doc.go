// Package slotmap provides a generational-index object pool for Go.
//
// A Pool stores values in dense, growable slot storage and hands out small
// Handle values (slot index + generation counter) instead of pointers. When
// a slot is freed its generation advances, so any handle issued before the
// free stops resolving: stale references are detected at lookup time and
// surface as a plain "not found" instead of reading whatever value happens
// to occupy the slot now.
//
// Features:
//
//   - O(1) allocate, lookup and free (amortized O(1) when storage grows)
//   - LIFO slot reuse via an explicit free list (no free-slot scanning)
//   - Idempotent Free: double-freeing a handle is a silent no-op
//   - Stable indices: growth never relocates or invalidates live handles
//   - Roaring Bitmap-backed iteration over live slots only
//   - Slot retirement at the generation ceiling (no counter wraparound)
//   - Optional coarse-grained locked wrapper for concurrent use
//
// # Quick Start
//
//	pool := slotmap.New[string]()
//
//	h, err := pool.Allocate("hello")
//	if err != nil {
//	    panic(err)
//	}
//
//	if v, ok := pool.Get(h); ok {
//	    fmt.Println(v) // "hello"
//	}
//
//	pool.Free(h)
//	_, ok := pool.Get(h) // ok == false: the handle is stale now
//
// # Ownership
//
// The pool exclusively owns every stored value. Values enter only through
// Allocate, are mutated only through GetMut with a valid handle, and leave
// only through Free or Reset. Pointers returned by GetMut are borrows: they
// stay valid until the next Free of the same handle or the next Reset, and
// must not be retained past either.
//
// # Concurrency
//
// Pool is not thread-safe; it assumes a single owner or external
// synchronization. For shared use wrap the whole pool behind one lock with
// NewLocked. The pool's invariants (free-list membership, the
// generation-advances-exactly-once-per-free rule) do not decompose into
// per-slot locks, so a coarse lock is the supported extension point.
package slotmap
