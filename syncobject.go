package cmdsched

import "sync"

// SyncObject is a countdown rendezvous. It is "armed" while its remaining
// count is greater than zero and "signaled" once the count reaches zero.
// SyncObjects let one Command Sequence asynchronously park on a dependency
// (Register) and let any goroutine synchronously block until the dependency
// resolves (WaitSync) — spec.md §4.4.
//
// Register and Signal are linearizable: both hold mu for their entire body,
// and Signal resubmits every parked sequence to its Work Queue while still
// holding mu (spec.md §5, "locking discipline"). That ordering is why a
// SyncObject must never be registered-on while a Work Queue's own mutex is
// held — the reverse acquisition order would deadlock against a worker that
// is inside Queue.Submit called from Signal.
type SyncObject struct {
	mu        sync.Mutex
	cond      *sync.Cond
	remaining int
	parked    []*Sequence
}

// NewSyncObject constructs a SyncObject requiring n calls to Signal before it
// becomes signaled. n must be at least 1.
func NewSyncObject(n int) *SyncObject {
	if n < 1 {
		panic(ErrInvalidSignalCount)
	}
	so := &SyncObject{remaining: n}
	so.cond = sync.NewCond(&so.mu)
	return so
}

// Register attempts to park seq on so. If so is already signaled, Register
// returns true and so does not take ownership of seq — the caller keeps it
// and continues processing. Otherwise so takes ownership of seq, appends it
// to the parked list in registration order, and returns false; the caller
// must treat seq as no longer theirs.
func (so *SyncObject) Register(seq *Sequence) bool {
	so.mu.Lock()
	defer so.mu.Unlock()

	if so.remaining == 0 {
		return true
	}
	so.parked = append(so.parked, seq)
	return false
}

// Signal decrements so's counter. Calling Signal once the counter has
// already reached zero is a no-op. On the decrement that brings the counter
// to zero, Signal resubmits every parked sequence to its own Work Queue, in
// the order they were registered, and wakes any goroutine blocked in
// WaitSync.
func (so *SyncObject) Signal() {
	so.mu.Lock()
	defer so.mu.Unlock()

	if so.remaining == 0 {
		return
	}
	so.remaining--
	if so.remaining != 0 {
		return
	}

	parked := so.parked
	so.parked = nil
	for _, seq := range parked {
		seq.Queue().Submit(seq)
	}
	so.cond.Broadcast()
}

// WaitSync blocks the calling goroutine until so becomes signaled. If so is
// already signaled, WaitSync returns immediately.
func (so *SyncObject) WaitSync() {
	so.mu.Lock()
	defer so.mu.Unlock()

	for so.remaining != 0 {
		so.cond.Wait()
	}
}

// Signaled reports whether so has reached zero.
func (so *SyncObject) Signaled() bool {
	so.mu.Lock()
	defer so.mu.Unlock()
	return so.remaining == 0
}

// AssertDrained panics if so still has parked sequences. Go has no
// destructors; AssertDrained is the explicit substitute for the source's
// "~SyncObject asserts mWaitingCommands is empty" invariant (spec.md §3,
// §7) and should be called once a SyncObject is known to be done with —
// typically right before it goes out of scope in a test or at the end of a
// bounded pipeline.
func (so *SyncObject) AssertDrained() {
	so.mu.Lock()
	defer so.mu.Unlock()
	if len(so.parked) != 0 {
		panic("cmdsched: SyncObject destroyed with a non-empty parked list")
	}
}
