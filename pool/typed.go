package pool

// Get retrieves a value of type T from p. Both NewDynamic and NewFixed
// already construct a fresh value via their newFn when the pool is empty, so
// Get only needs to assert the result back to T — it exists purely so
// callers recycling a concrete type (the scheduler recycles
// *cmdsched.Arena[Record]) don't repeat an interface{} assertion at every
// call site.
func Get[T any](p Pool) T {
	return p.Get().(T)
}

// Put returns value to p.
func Put[T any](p Pool, value T) {
	p.Put(value)
}
