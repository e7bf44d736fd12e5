package pool

import "sync"

// NewDynamic is a dynamic-size pool of reusable values. It is a thin wrapper
// around sync.Pool, so entries may be dropped by the garbage collector under
// memory pressure — appropriate for recycling Arena storage, where a miss
// just means the next Sequence allocates fresh.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}
