package slotmap

import "fmt"

// ErrSlotLimitExceeded indicates that Allocate needed to append a new slot
// while the pool was already at its configured slot limit.
//
// Stale handles are not errors: Get/GetMut report them with a false ok and
// Free treats them as a no-op. The slot limit is the pool's only failure
// condition, the library stand-in for backing allocation failure.
type ErrSlotLimitExceeded struct {
	Limit int
}

func (e *ErrSlotLimitExceeded) Error() string {
	return fmt.Sprintf("slot limit exceeded: %d", e.Limit)
}
