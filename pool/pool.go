// Package pool provides a small Get/Put object-pooling abstraction with a
// dynamic (sync.Pool-backed) and a fixed-capacity implementation.
//
// The scheduler uses it to recycle the backing storage of a Sequence's
// Arena once a Worker Thread finishes a Sequence that its producer did not
// reclaim via a SequenceBuilder.Recycle: instead of letting the Arena become
// garbage, the worker returns it here, and the next Sequence built without
// an explicit Recycle target draws from the pool before allocating.
package pool

// Pool is an interface that defines methods on a pool of reusable values.
type Pool interface {
	// Get returns a value from the pool, constructing one if none is
	// available.
	Get() interface{}

	// Put returns a value back to the pool.
	Put(interface{})
}
