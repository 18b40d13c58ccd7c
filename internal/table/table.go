// Package table provides the dense slot storage backing a slot map.
//
// The table owns every stored value outright. Slots are appended, recycled
// and retired, but never removed, so a slot index stays valid for the
// table's whole lifetime and growth never relocates existing indices.
package table

import "fmt"

// Slot is one storage cell: a value, its generation counter and a liveness
// flag. Alive is true iff Value holds live data; Value is zeroed on free so
// a dead slot does not pin references for the garbage collector.
//
// Generation starts at 0 and is advanced exactly once per free, never on
// allocate. The table itself never touches Generation or Alive after Push;
// lifecycle transitions belong to the pool.
type Slot[T any] struct {
	Value      T
	Generation uint32
	Alive      bool
}

// Table is a dense, append-only array of slots.
type Table[T any] struct {
	slots []Slot[T]
}

// New creates a Table with backing capacity for capacityHint slots.
func New[T any](capacityHint int) *Table[T] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Table[T]{
		slots: make([]Slot[T], 0, capacityHint),
	}
}

// Push appends a new live slot with generation 0 and returns its index,
// which is always the previous length.
func (t *Table[T]) Push(value T) uint32 {
	index := uint32(len(t.slots))
	t.slots = append(t.slots, Slot[T]{Value: value, Alive: true})
	return index
}

// Slot returns the slot at index without any generation check; validation
// is the pool's job. Indices only ever originate from Push, so an
// out-of-range index is a programmer error and panics.
func (t *Table[T]) Slot(index uint32) *Slot[T] {
	if int(index) >= len(t.slots) {
		panic(fmt.Sprintf("table: index %d out of range (len %d)", index, len(t.slots)))
	}
	return &t.slots[index]
}

// InRange reports whether index refers to an existing slot.
func (t *Table[T]) InRange(index uint32) bool {
	return int(index) < len(t.slots)
}

// Len returns the number of slots ever created, live or dead.
func (t *Table[T]) Len() int { return len(t.slots) }
