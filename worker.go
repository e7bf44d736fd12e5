package cmdsched

import (
	"github.com/arcthread/cmdsched/metrics"
	"github.com/arcthread/cmdsched/pool"
)

// worker is a Worker Thread: a loop that dequeues a Command Sequence from a
// Queue, drives it through Process, and either discards it (on completion)
// or does nothing further (Process has already transferred ownership
// elsewhere on Yield/Wait) — spec.md §4.7. The loop never blocks anywhere
// except inside Queue.Wait; Process itself never suspends the goroutine.
//
// "Thread" here is a goroutine, not an OS thread: spec.md's scheduling model
// calls for "one OS-level worker per registered worker", and a goroutine
// bound to a dedicated Queue.Wait loop is the idiomatic Go rendering of
// that — the runtime multiplexes it onto real OS threads as needed, and
// nothing in the CORE depends on the distinction.
type worker struct {
	id      int
	queue   *Queue
	sink    Sink
	metrics metrics.Provider
	arenas  pool.Pool // recycles *Arena[Record] storage; nil when disabled
}

func newWorker(id int, queue *Queue, sink Sink, provider metrics.Provider, arenas pool.Pool) *worker {
	return &worker{id: id, queue: queue, sink: sink, metrics: provider, arenas: arenas}
}

// run is the Worker Thread loop (spec.md §4.7's state machine). It returns
// once the bound Queue has shut down and this worker has unregistered.
func (w *worker) run() {
	w.sink.Printf(" -- creating thread %d\n", w.id)
	w.queue.RegisterWorker()

	for {
		seq, ok := w.queue.Wait()
		if !ok {
			w.queue.UnregisterWorker()
			w.sink.Printf(" -- joining thread %d\n", w.id)
			return
		}

		switch Process(seq, w.sink, w.metrics) {
		case StatusComplete:
			w.release(seq)
		case StatusYield, StatusWait:
			// Ownership already transferred by Process; nothing to do.
		}
	}
}

// release returns a completed sequence's arena to the recycling pool when
// one is configured; otherwise the sequence becomes garbage, same as the
// source's `delete commands`.
func (w *worker) release(seq *Sequence) {
	if w.arenas == nil {
		return
	}
	w.arenas.Put(seq.arena)
}
