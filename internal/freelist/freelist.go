// Package freelist tracks recyclable slot indices in LIFO order.
//
// LIFO is deliberate: recently freed slots are likely still warm in cache,
// which matters for allocate/free heavy workloads. No ordering beyond LIFO
// is promised to callers.
package freelist

// Stack is a LIFO stack of slot indices whose slots are currently dead.
type Stack struct {
	indices []uint32
}

// New creates a Stack with backing capacity for capacityHint indices.
func New(capacityHint int) *Stack {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Stack{
		indices: make([]uint32, 0, capacityHint),
	}
}

// Push records index as available for reuse. The caller must guarantee the
// index is not already present; the pool enforces this structurally by
// pushing exactly once per successful free.
func (s *Stack) Push(index uint32) {
	s.indices = append(s.indices, index)
}

// Pop removes and returns the most recently pushed index.
// It returns false when the stack is empty.
func (s *Stack) Pop() (uint32, bool) {
	n := len(s.indices)
	if n == 0 {
		return 0, false
	}

	index := s.indices[n-1]
	s.indices = s.indices[:n-1]

	return index, true
}

// Empty returns true if no indices are available for reuse.
func (s *Stack) Empty() bool { return len(s.indices) == 0 }

// Len returns the number of indices available for reuse.
func (s *Stack) Len() int { return len(s.indices) }
