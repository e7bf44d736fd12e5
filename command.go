package cmdsched

// Kind is the discriminant of a Record. It is the Go sum-type tag standing in
// for the source's CommandType enum and the downcasts its Command base class
// used to perform.
type Kind uint8

const (
	// KindDraw invokes a DrawingOp against the sequence's target and transform.
	KindDraw Kind = iota
	// KindWait registers the sequence with a SyncObject, parking it if the
	// object is not yet signaled.
	KindWait
	// KindSignal decrements a SyncObject's counter.
	KindSignal
	// KindYield cooperatively reschedules the sequence to the tail of its
	// Work Queue.
	KindYield
	// KindPrint writes an immutable diagnostic message.
	KindPrint
)

func (k Kind) String() string {
	switch k {
	case KindDraw:
		return "Draw"
	case KindWait:
		return "Wait"
	case KindSignal:
		return "Signal"
	case KindYield:
		return "Yield"
	case KindPrint:
		return "Print"
	default:
		return "Unknown"
	}
}

// DrawTarget and Transform are opaque, externally-owned execution state: the
// CORE only forwards references to them, never inspects or mutates them. They
// are collaborators out of scope per spec.md §1.
type DrawTarget any
type Transform any

// Origin is the one piece of per-sequence execution state with a concrete
// shape in the source (IntPoint).
type Origin struct {
	X, Y int32
}

// DrawingOp is the polymorphic drawing capability boundary (spec.md §6). The
// CORE assumes the same DrawingOp reference is safe to call concurrently from
// multiple workers if it appears in more than one Command Sequence.
type DrawingOp interface {
	Execute(target DrawTarget, transform Transform) error
}

// Record is a Command: a tagged variant over {Draw, Wait, Signal, Yield,
// Print}, stored inline inside a Sequence's Arena. Only the fields relevant
// to Kind are meaningful; this mirrors the constant-footprint-per-variant
// invariant of spec.md §3 (the discriminant alone determines what the
// interpreter reads next) without requiring a real union type, which Go does
// not have.
type Record struct {
	Kind Kind

	// Op is populated for KindDraw.
	Op DrawingOp

	// Sync is populated for KindWait and KindSignal.
	Sync *SyncObject

	// Text is populated for KindPrint.
	Text string
}

// DrawRecord builds a Draw command.
func DrawRecord(op DrawingOp) Record { return Record{Kind: KindDraw, Op: op} }

// WaitRecord builds a Wait command against sync.
func WaitRecord(sync *SyncObject) Record { return Record{Kind: KindWait, Sync: sync} }

// SignalRecord builds a Signal command against sync.
func SignalRecord(sync *SyncObject) Record { return Record{Kind: KindSignal, Sync: sync} }

// YieldRecord builds a Yield command.
func YieldRecord() Record { return Record{Kind: KindYield} }

// PrintRecord builds a Print command carrying an immutable message.
func PrintRecord(text string) Record { return Record{Kind: KindPrint, Text: text} }
