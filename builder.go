package cmdsched

import "github.com/arcthread/cmdsched/pool"

// defaultArenaCapacity is the initial Record slot count for a freshly built
// Sequence's Arena; it mirrors the source's CommandBuffer constructor, which
// starts its Pool at a fixed byte size (512) and lets it grow from there.
const defaultArenaCapacity = 32

// SequenceBuilder is the write-side façade that owns a Sequence under
// construction. It is single-threaded and lives only for the duration of a
// Begin/Recycle .. Add* .. End sequence (spec.md §4.2). Calling Add before
// Begin/Recycle, or calling Begin/Recycle while a sequence is already in
// flight, is a programming error and panics rather than returning an error —
// the same fail-fast discipline spec.md §7 requires for invariant violations.
//
// arenas, when non-nil, is an Arena recycling pool (see pool.Pool and
// Scheduler's WithArenaPool option): Begin then draws a previously-released
// Arena instead of always allocating one.
type SequenceBuilder struct {
	seq    *Sequence
	arenas pool.Pool
}

// NewSequenceBuilder constructs a SequenceBuilder. A nil arenas pool means
// every Begin allocates a fresh Arena.
func NewSequenceBuilder(arenas pool.Pool) *SequenceBuilder {
	return &SequenceBuilder{arenas: arenas}
}

// Begin associates a fresh Sequence with queue. Precondition: no sequence is
// currently in flight on this builder.
func (b *SequenceBuilder) Begin(queue *Queue) {
	if b.seq != nil {
		panic("cmdsched: SequenceBuilder.Begin called while a sequence is already in flight")
	}
	if queue == nil {
		panic("cmdsched: SequenceBuilder.Begin requires a non-nil queue")
	}
	if b.arenas == nil {
		b.seq = newSequence(queue, defaultArenaCapacity)
		return
	}
	arena := pool.Get[*Arena[Record]](b.arenas)
	arena.Reset()
	b.seq = &Sequence{arena: arena, queue: queue}
}

// Recycle adopts existing, whose Arena should be reused: its read cursor and
// record count are reset and it is rebound to queue, without releasing the
// Arena's backing storage. This is the allocation-avoiding path spec.md §4.2
// describes and testable property S5 exercises: the recycled Arena's
// capacity must not shrink, and content written after Recycle must replay
// correctly from offset zero.
func (b *SequenceBuilder) Recycle(existing *Sequence, queue *Queue) {
	if b.seq != nil {
		panic("cmdsched: SequenceBuilder.Recycle called while a sequence is already in flight")
	}
	if existing == nil {
		panic("cmdsched: SequenceBuilder.Recycle requires a non-nil sequence")
	}
	if queue == nil {
		panic("cmdsched: SequenceBuilder.Recycle requires a non-nil queue")
	}
	existing.arena.Reset()
	existing.readCur = 0
	existing.remaining = 0
	existing.queue = queue
	existing.data = ExecState{}
	b.seq = existing
}

// Add appends one Record to the sequence under construction, incrementing
// its record count. It may only be called between Begin/Recycle and End.
func (b *SequenceBuilder) Add(rec Record) {
	if b.seq == nil {
		panic("cmdsched: SequenceBuilder.Add called before Begin or Recycle")
	}
	if _, ok := b.seq.arena.Append(rec); !ok {
		// The Arena returned by Begin/Recycle is always growable, so this
		// can only happen if a caller hands the builder a non-growable
		// Arena directly — a programming error, not a runtime condition.
		panic(ErrArenaOverflow)
	}
	b.seq.remaining++
}

// AddDraw, AddWait, AddSignal, AddYield and AddPrint are convenience wrappers
// around Add for each command kind.
func (b *SequenceBuilder) AddDraw(op DrawingOp)       { b.Add(DrawRecord(op)) }
func (b *SequenceBuilder) AddWait(sync *SyncObject)   { b.Add(WaitRecord(sync)) }
func (b *SequenceBuilder) AddSignal(sync *SyncObject) { b.Add(SignalRecord(sync)) }
func (b *SequenceBuilder) AddYield()                  { b.Add(YieldRecord()) }
func (b *SequenceBuilder) AddPrint(text string)       { b.Add(PrintRecord(text)) }

// SetExecState sets the sequence's target/transform/origin before End.
func (b *SequenceBuilder) SetExecState(state ExecState) {
	if b.seq == nil {
		panic("cmdsched: SequenceBuilder.SetExecState called before Begin or Recycle")
	}
	b.seq.data = state
}

// End finalizes and hands out the constructed Sequence; the builder no
// longer owns it and may be reused for another Begin/Recycle.
func (b *SequenceBuilder) End() *Sequence {
	if b.seq == nil {
		panic("cmdsched: SequenceBuilder.End called before Begin or Recycle")
	}
	seq := b.seq
	b.seq = nil
	return seq
}
