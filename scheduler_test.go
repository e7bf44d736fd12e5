package cmdsched

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsSubmittedSequenceToCompletion(t *testing.T) {
	sink := &syncSink{}
	s := NewScheduler(&Config{Workers: 2, DiagnosticSink: sink})
	defer s.Shutdown()

	done := NewSyncObject(1)
	b := s.Builder()
	b.Begin(s.Queue())
	b.AddPrint("hello")
	b.AddSignal(done)
	seq := b.End()
	s.Queue().Submit(seq)

	done.WaitSync()
	require.Contains(t, sink.Lines(), " ** hello\n")
}

func TestScheduler_DefaultsToGOMAXPROCSWorkers(t *testing.T) {
	s := NewScheduler(nil)
	defer s.Shutdown()
	require.NotEmpty(t, s.workers)
}

func TestScheduler_ShutdownIsIdempotentAndJoinsWorkers(t *testing.T) {
	s := NewScheduler(&Config{Workers: 3})
	s.Shutdown()
	require.NotPanics(t, func() { s.Shutdown() })
}

func TestScheduler_ArenaPoolRecyclesBetweenSequences(t *testing.T) {
	s := NewScheduler(&Config{Workers: 1, RecyclePool: true})
	defer s.Shutdown()

	for i := 0; i < 5; i++ {
		done := NewSyncObject(1)
		b := s.Builder()
		b.Begin(s.Queue())
		b.AddSignal(done)
		seq := b.End()
		s.Queue().Submit(seq)
		done.WaitSync()
	}
}

// TestScheduler_MainScenario reproduces the worked three-sequence rendezvous:
// two sequences wait on a shared SyncObject that the third signals after
// yielding once, and all three signal a shared completion object a
// coordinating goroutine blocks on.
func TestScheduler_MainScenario(t *testing.T) {
	sink := &syncSink{}
	s := NewScheduler(&Config{Workers: 4, DiagnosticSink: sink})

	syncObj := NewSyncObject(1)
	completion := NewSyncObject(3)

	b := s.Builder()

	b.Begin(s.Queue())
	b.AddPrint("1A")
	b.AddWait(syncObj)
	b.AddPrint("2A")
	b.AddYield()
	b.AddPrint("3A")
	b.AddPrint("4A")
	b.AddSignal(completion)
	cmdA := b.End()

	b.Begin(s.Queue())
	b.AddPrint("1B")
	b.AddWait(syncObj)
	b.AddPrint("2B")
	b.AddPrint("3B")
	b.AddPrint("4B")
	b.AddSignal(completion)
	cmdB := b.End()

	b.Begin(s.Queue())
	b.AddPrint("1C")
	b.AddPrint("2C")
	b.AddPrint("3C")
	b.AddPrint("4C")
	b.AddPrint("5C")
	b.AddYield()
	b.AddPrint("6C")
	b.AddPrint("7C")
	b.AddPrint("8C")
	b.AddPrint("9C")
	b.AddSignal(syncObj)
	b.AddSignal(completion)
	cmdC := b.End()

	s.Queue().Submit(cmdA)
	s.Queue().Submit(cmdB)
	s.Queue().Submit(cmdC)

	completion.WaitSync()
	s.Shutdown()

	lines := sink.Lines()
	for _, want := range []string{"1A", "2A", "3A", "4A", "1B", "2B", "3B", "4B", "1C", "2C", "3C", "4C", "5C", "6C", "7C", "8C", "9C"} {
		require.True(t, containsLine(lines, want), "missing diagnostic line for %q", want)
	}

	// "2A" and "2B" can only be printed after syncObj is signaled by cmdC,
	// which happens after "9C" — cmdA and cmdB cannot observe "2A"/"2B"
	// before cmdC's signal is recorded.
	idx9C := indexOfLine(lines, "9C")
	idx2A := indexOfLine(lines, "2A")
	idx2B := indexOfLine(lines, "2B")
	require.Greater(t, idx2A, idx9C)
	require.Greater(t, idx2B, idx9C)
}

// TestScheduler_YieldIsFairAcrossSequences proves testable property S4
// (spec.md §8): a single Worker Thread draining one FIFO Queue must
// interleave two independently submitted sequences' halves strictly, never
// run one sequence's Yield-separated halves back to back ahead of the other.
// Each sequence is {Print, Yield, Print}; Yield resubmits to the tail of the
// queue, so a single worker pulling FIFO must print A1, B1, A2, B2 in that
// order — it cannot reach A2 before B1 has had its turn.
//
// Both sequences are submitted to the queue before the sole worker goroutine
// is started, so the FIFO order the assertion depends on ([seqA, seqB]) is
// fixed at submission time rather than racing against whichever sequence a
// live Scheduler's worker happens to dequeue first.
func TestScheduler_YieldIsFairAcrossSequences(t *testing.T) {
	sink := &syncSink{}
	q := NewQueue(nil)
	done := NewSyncObject(2)

	b := NewSequenceBuilder(nil)

	b.Begin(q)
	b.AddPrint("A1")
	b.AddYield()
	b.AddPrint("A2")
	b.AddSignal(done)
	seqA := b.End()

	b.Begin(q)
	b.AddPrint("B1")
	b.AddYield()
	b.AddPrint("B2")
	b.AddSignal(done)
	seqB := b.End()

	q.Submit(seqA)
	q.Submit(seqB)

	w := newWorker(0, q, sink, nil, nil)
	go w.run()
	defer q.Shutdown()

	done.WaitSync()

	lines := sink.Lines()
	require.Equal(t, []string{" -- creating thread 0\n", " ** A1\n", " ** B1\n", " ** A2\n", " ** B2\n"}, lines)
}

func containsLine(lines []string, want string) bool {
	return indexOfLine(lines, want) >= 0
}

func indexOfLine(lines []string, want string) int {
	needle := " ** " + want + "\n"
	for i, l := range lines {
		if l == needle {
			return i
		}
	}
	return -1
}

// syncSink is a concurrency-safe Sink used to capture diagnostic output
// across multiple Worker Threads without a data race.
type syncSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *syncSink) Printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, fmt.Sprintf(format, args...))
}

func (s *syncSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
