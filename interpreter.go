package cmdsched

import (
	"time"

	"github.com/arcthread/cmdsched/metrics"
)

// Status is the Command Interpreter's verdict after driving a Sequence as
// far as it will go without blocking a Worker Thread (spec.md §4.6).
type Status int

const (
	// StatusComplete means the sequence drained with no records left; the
	// caller now owns the sequence and must discard (or recycle) it.
	StatusComplete Status = iota
	// StatusYield means the sequence performed Yield and has already been
	// resubmitted to its Work Queue; the caller no longer owns it.
	StatusYield
	// StatusWait means the sequence registered on a SyncObject that was not
	// yet signaled and has been parked; the caller no longer owns it.
	StatusWait
	// StatusError names a Draw failure verdict. Process never returns it:
	// a failing DrawingOp is logged and processing continues (spec.md §7) —
	// see Process's doc comment.
	StatusError
)

// Process drives seq until it completes, yields, or parks on a SyncObject.
// It is a pure function of seq (plus the collaborators reachable through it
// and through sink/provider): any thread may call Process, and nothing about
// the interpreter itself suspends the calling goroutine — a WAIT or YIELD
// verdict unwinds immediately rather than blocking (spec.md §5).
//
// Draw failures are logged via sink and do not stop processing (best-effort
// rendering model, spec.md §7): Process never returns StatusError, and the
// default Worker Thread has no case for it, matching the source's
// ProcessCommands, which has no ERROR path wired to anything observable.
func Process(seq *Sequence, sink Sink, provider metrics.Provider) Status {
	if sink == nil {
		sink = discardSink{}
	}
	if provider == nil {
		provider = metrics.NewNoopProvider()
	}

	start := timeNow()
	defer func() {
		provider.Histogram(
			"cmdsched.process.duration_seconds",
			metrics.WithUnit("seconds"),
		).Record(time.Since(start).Seconds())
		provider.Counter("cmdsched.sequences.processed").Add(1)
	}()

	for {
		rec, ok := seq.Pop()
		if !ok {
			return StatusComplete
		}

		switch rec.Kind {
		case KindDraw:
			provider.Counter("cmdsched.commands.draw").Add(1)
			data := seq.Data()
			if err := rec.Op.Execute(data.Target, data.Transform); err != nil {
				sink.Printf(" ** draw failed: %v\n", err)
			}

		case KindSignal:
			provider.Counter("cmdsched.commands.signal").Add(1)
			rec.Sync.Signal()

		case KindWait:
			provider.Counter("cmdsched.commands.wait").Add(1)
			if rec.Sync.Register(seq) {
				// Already signaled: ownership stays with us, keep going.
				continue
			}
			provider.Counter("cmdsched.sequences.parked").Add(1)
			return StatusWait

		case KindYield:
			provider.Counter("cmdsched.commands.yield").Add(1)
			seq.Queue().Submit(seq)
			return StatusYield

		case KindPrint:
			provider.Counter("cmdsched.commands.print").Add(1)
			sink.Printf(" ** %s\n", rec.Text)
		}
	}
}

// timeNow is split out so tests could substitute a deterministic clock if a
// future change needs one; today it is simply time.Now.
func timeNow() time.Time { return time.Now() }
