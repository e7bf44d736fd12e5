package cmdsched

// ExecState is the per-sequence mutable execution state a producer sets
// before submission: the drawing target, its transform, and an origin point.
// The CORE only forwards these references to a DrawingOp; it never inspects
// or mutates them (spec.md §3, §6).
type ExecState struct {
	Target    DrawTarget
	Transform Transform
	Origin    Origin
}

// Sequence is an ordered, single-consumer stream of Records drawn from its
// own Arena, plus the execution state and Work Queue back-reference spec.md
// §3 assigns it. A Sequence has exactly one logical owner at any instant:
// the Builder that is constructing it, the Work Queue holding it ready, the
// Worker Thread running it, or a SyncObject's parked list. It is never
// accessed by two of those at once, so Sequence itself carries no lock; see
// spec.md §4.3.
type Sequence struct {
	arena     *Arena[Record]
	readCur   int
	remaining int
	queue     *Queue
	data      ExecState
}

// newSequence allocates a Sequence bound to queue with a fresh, growable
// Arena of the given initial capacity.
func newSequence(queue *Queue, initialCapacity int) *Sequence {
	return &Sequence{
		arena: NewArena[Record](initialCapacity, true),
		queue: queue,
	}
}

// Pop returns the next Record and advances the read cursor, or reports false
// once the sequence is drained. Pop must only be called by the thread
// currently executing the sequence (spec.md §4.3); Sequence is not
// thread-safe on its own — safe handoff between threads is the Work Queue's
// and SyncObject's job.
func (s *Sequence) Pop() (Record, bool) {
	if s.remaining == 0 {
		return Record{}, false
	}
	rec := *s.arena.At(s.readCur)
	s.readCur++
	s.remaining--
	return rec, true
}

// Queue returns the Work Queue this sequence originated from.
func (s *Sequence) Queue() *Queue { return s.queue }

// Data returns a pointer to the sequence's execution state, so an
// interpreter can forward Target/Transform to a DrawingOp without copying.
func (s *Sequence) Data() *ExecState { return &s.data }

// Remaining reports the number of Records left to Pop.
func (s *Sequence) Remaining() int { return s.remaining }
