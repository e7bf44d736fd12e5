package cmdsched

import (
	"container/list"
	"sync"

	"github.com/arcthread/cmdsched/metrics"
)

// Queue is a FIFO of ready Command Sequences feeding a pool of Worker
// Threads, with condition-variable wakeup and a clean shutdown protocol
// (spec.md §4.5). It is the CORE's only shared mutable structure besides
// SyncObject, and like SyncObject it protects all of its state under a
// single mutex.
//
// Submit is callable from any goroutine, including from inside a
// SyncObject's Signal while that object's own mutex is held — see
// SyncObject's doc comment for the lock-ordering rule this implies.
type Queue struct {
	mu           sync.Mutex
	available    *sync.Cond
	shutdownCond *sync.Cond

	items        *list.List
	shuttingDown bool
	workers      int

	metrics metrics.Provider
}

// NewQueue constructs an empty, running Work Queue. provider receives a
// cmdsched.queue.depth UpDownCounter update on every Submit/Wait; a nil
// provider defaults to a no-op one, the same convention Process uses for
// its own metrics.Provider parameter.
func NewQueue(provider metrics.Provider) *Queue {
	if provider == nil {
		provider = metrics.NewNoopProvider()
	}
	q := &Queue{items: list.New(), metrics: provider}
	q.available = sync.NewCond(&q.mu)
	q.shutdownCond = sync.NewCond(&q.mu)
	return q
}

// Submit appends seq to the tail of the queue and wakes any goroutine
// blocked in Wait. Submit is callable from any goroutine.
func (q *Queue) Submit(seq *Sequence) {
	q.mu.Lock()
	q.items.PushBack(seq)
	q.mu.Unlock()
	q.available.Broadcast()
	q.metrics.UpDownCounter("cmdsched.queue.depth").Add(1)
}

// Wait blocks until a Sequence is available or the queue is shutting down.
// It returns (sequence, true) on success, or (nil, false) once shutdown has
// been requested and no sequence is left to dequeue — a false result never
// carries a Sequence.
func (q *Queue) Wait() (*Sequence, bool) {
	q.mu.Lock()

	for !q.shuttingDown && q.items.Len() == 0 {
		q.available.Wait()
	}

	if q.items.Len() == 0 {
		// Only reachable once shuttingDown is true: nothing queued and
		// nothing more this Wait should observe.
		q.mu.Unlock()
		return nil, false
	}

	front := q.items.Front()
	q.items.Remove(front)
	q.mu.Unlock()

	q.metrics.UpDownCounter("cmdsched.queue.depth").Add(-1)
	return front.Value.(*Sequence), true
}

// RegisterWorker records one more Worker Thread bound to this queue. Call it
// once per worker before that worker's first Wait.
func (q *Queue) RegisterWorker() {
	q.mu.Lock()
	q.workers++
	q.mu.Unlock()
}

// UnregisterWorker records that a Worker Thread has exited its loop (Wait
// returned false). Once the registered count drops to zero during shutdown,
// Shutdown's wait is released.
func (q *Queue) UnregisterWorker() {
	q.mu.Lock()
	q.workers--
	done := q.workers == 0
	q.mu.Unlock()
	if done {
		q.shutdownCond.Broadcast()
	}
}

// Shutdown requests shutdown and blocks until every registered worker has
// unregistered. It repeatedly broadcasts the available condition so that
// workers blocked in Wait notice the shutdown flag and exit their loops.
//
// Callers must stop submitting before calling Shutdown: a Sequence submitted
// (directly, or indirectly via a SyncObject draining its parked list) after
// shutdown has begun is not guaranteed to be picked up by any worker — it is
// simply never dequeued (spec.md §7, §9 "Open question").
func (q *Queue) Shutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.shuttingDown = true
	for q.workers != 0 {
		q.available.Broadcast()
		q.shutdownCond.Wait()
	}
}

// NumTasks returns a snapshot of the number of sequences currently queued.
func (q *Queue) NumTasks() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}
