package slotmap

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	"github.com/hupe1980/slotmap/internal/freelist"
	"github.com/hupe1980/slotmap/internal/table"
)

// Handle is an opaque reference to a pooled value: the slot index plus the
// generation the handle was issued under. Handles are plain value types,
// cheap to copy and comparable with ==.
//
// A Handle is meaningful only relative to the Pool that issued it. Handles
// from different pools must never be compared or used interchangeably; a
// foreign handle is indistinguishable from a very stale one and resolves
// as "not found".
type Handle struct {
	Index      uint32
	Generation uint32
}

// maxGeneration is the retirement ceiling. A slot whose generation reaches
// it on free is withdrawn from reuse forever, so the counter can never wrap
// into a value still carried by an outstanding handle.
const maxGeneration = math.MaxUint32

// Stats tracks pool counters. Allocation and free counts are historical;
// they only ever grow.
type Stats struct {
	TotalAllocs  uint64 // Historical: successful Allocate calls
	TotalFrees   uint64 // Historical: successful (non no-op) Free calls
	SlotsReused  uint64 // Allocations served from the free list
	SlotsGrown   uint64 // Allocations that appended a new slot
	SlotsRetired uint64 // Slots permanently withdrawn at the generation ceiling
}

// Pool is a generational-index object pool. It composes dense slot storage
// with a LIFO free list and enforces the generation-validation contract
// that makes handles safe to pass around and fail stale.
//
// Pool is not safe for concurrent use; see NewLocked.
type Pool[T any] struct {
	table   *table.Table[T]
	free    *freelist.Stack
	live    *roaring.Bitmap
	count   int // live slots, kept as a running counter so Len is O(1)
	maxSlot int
	stats   Stats
	metrics MetricsCollector
	logger  *Logger
	id      string
}

// New creates an empty Pool.
func New[T any](optFns ...Option) *Pool[T] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	id := uuid.NewString()

	return &Pool[T]{
		table:   table.New[T](o.initialCapacity),
		free:    freelist.New(o.initialCapacity),
		live:    roaring.New(),
		maxSlot: o.maxSlots,
		metrics: o.metrics,
		logger:  o.logger.WithPoolID(id),
		id:      id,
	}
}

// ID returns the pool's instance identifier, used to tag log output.
func (p *Pool[T]) ID() string { return p.id }

// Allocate moves value into a slot and returns a Handle for it.
//
// A previously freed slot is reused when one is available (the free list
// guarantees it is dead); otherwise a new slot is appended. The slot's
// generation is deliberately not touched here: it changes only on Free, so
// it doubles as a per-slot free count for diagnostics.
//
// Allocate fails only when a new slot is needed and the pool is already at
// its configured slot limit.
func (p *Pool[T]) Allocate(value T) (Handle, error) {
	if index, ok := p.free.Pop(); ok {
		slot := p.table.Slot(index)
		slot.Value = value
		slot.Alive = true

		p.live.Add(index)
		p.count++
		p.stats.TotalAllocs++
		p.stats.SlotsReused++
		p.metrics.RecordAllocate(true)

		return Handle{Index: index, Generation: slot.Generation}, nil
	}

	if p.maxSlot > 0 && p.table.Len() >= p.maxSlot {
		return Handle{}, &ErrSlotLimitExceeded{Limit: p.maxSlot}
	}

	index := p.table.Push(value)

	p.live.Add(index)
	p.count++
	p.stats.TotalAllocs++
	p.stats.SlotsGrown++
	p.metrics.RecordAllocate(false)

	return Handle{Index: index}, nil
}

// Get returns a copy of the value referenced by h. It returns false when h
// is stale: out of range, pointing at a dead slot, or carrying an old
// generation.
func (p *Pool[T]) Get(h Handle) (T, bool) {
	if slot, ok := p.lookup(h); ok {
		return slot.Value, true
	}

	var zero T
	return zero, false
}

// GetMut returns a mutable pointer to the value referenced by h, or false
// when h is stale. The pointer is a borrow: it is valid until the next Free
// of the same handle or the next Reset, and must not be retained past
// either.
func (p *Pool[T]) GetMut(h Handle) (*T, bool) {
	if slot, ok := p.lookup(h); ok {
		return &slot.Value, true
	}
	return nil, false
}

// Contains reports whether h currently resolves to a live value.
func (p *Pool[T]) Contains(h Handle) bool {
	_, ok := p.lookup(h)
	return ok
}

// Free releases the value referenced by h and recycles its slot. It reports
// whether the free took effect.
//
// Freeing a stale or unknown handle is an idempotent, silent no-op: both an
// owner and an observer may attempt cleanup, and the second attempt must
// not be an error.
func (p *Pool[T]) Free(h Handle) bool {
	slot, ok := p.lookup(h)
	if !ok {
		p.metrics.RecordFree(false)
		return false
	}

	p.release(h.Index, slot)
	p.metrics.RecordFree(true)

	return true
}

// release transitions a live slot to dead: value dropped, generation
// advanced by exactly 1, index recycled unless the slot retires.
func (p *Pool[T]) release(index uint32, slot *table.Slot[T]) {
	var zero T
	slot.Value = zero
	slot.Alive = false
	slot.Generation++

	p.live.Remove(index)
	p.count--
	p.stats.TotalFrees++

	if slot.Generation == maxGeneration {
		// The next reuse would hand out the ceiling generation and a
		// wrapped counter could collide with an outstanding handle, so
		// the slot is withdrawn from circulation instead.
		p.stats.SlotsRetired++
		p.logger.Warn("slot retired at generation ceiling", "index", index)
		return
	}

	p.free.Push(index)
}

// Reset frees every live value in bulk without requiring individual Free
// calls. Generations of the freed slots advance as usual, so every
// outstanding handle goes stale. Capacity is retained.
func (p *Pool[T]) Reset() {
	indices := p.live.ToArray()
	for _, index := range indices {
		p.release(index, p.table.Slot(index))
	}

	p.logger.Debug("pool reset", "freed", len(indices), "capacity", p.table.Len())
}

// Len returns the number of currently live slots.
func (p *Pool[T]) Len() int { return p.count }

// Capacity returns the total number of slots ever created, live or dead.
func (p *Pool[T]) Capacity() int { return p.table.Len() }

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats { return p.stats }

// Handles iterates over the handles of all live slots, in index order. The
// pool must not be mutated during iteration.
func (p *Pool[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		it := p.live.Iterator()
		for it.HasNext() {
			index := it.Next()
			if !yield(Handle{Index: index, Generation: p.table.Slot(index).Generation}) {
				return
			}
		}
	}
}

// All iterates over the handles and values of all live slots, in index
// order. The pool must not be mutated during iteration.
func (p *Pool[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		it := p.live.Iterator()
		for it.HasNext() {
			index := it.Next()
			slot := p.table.Slot(index)
			if !yield(Handle{Index: index, Generation: slot.Generation}, slot.Value) {
				return
			}
		}
	}
}

func (p *Pool[T]) String() string {
	return fmt.Sprintf("Pool{live: %d, capacity: %d, free: %d, retired: %d}",
		p.count, p.table.Len(), p.free.Len(), p.stats.SlotsRetired)
}

// lookup resolves h to its slot iff h is current: in range, slot alive and
// generations equal. A dead slot never matches any generation (the free
// already advanced it past the one the handle carries), and a reallocated
// slot carries a generation no pre-free handle does. Out-of-range indices
// are normal "not found", never a panic: the pool cannot distinguish a
// foreign handle from a very stale one.
func (p *Pool[T]) lookup(h Handle) (*table.Slot[T], bool) {
	if !p.table.InRange(h.Index) {
		return nil, false
	}

	slot := p.table.Slot(h.Index)
	if !slot.Alive || slot.Generation != h.Generation {
		return nil, false
	}

	return slot, true
}
