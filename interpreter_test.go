package cmdsched

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcthread/cmdsched/metrics"
)

type fakeDraw struct {
	calls *int32
	err   error
}

func (f fakeDraw) Execute(target DrawTarget, transform Transform) error {
	if f.calls != nil {
		atomic.AddInt32(f.calls, 1)
	}
	return f.err
}

type bufSink struct {
	lines []string
}

func (b *bufSink) Printf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

func TestProcess_DrainsToCompletion(t *testing.T) {
	q := NewQueue(nil)
	var calls int32
	b := NewSequenceBuilder(nil)
	b.Begin(q)
	b.AddDraw(fakeDraw{calls: &calls})
	b.AddDraw(fakeDraw{calls: &calls})
	seq := b.End()

	status := Process(seq, nil, nil)
	require.Equal(t, StatusComplete, status)
	require.Equal(t, int32(2), calls)
	require.Equal(t, 0, seq.Remaining())
}

func TestProcess_DrawFailureIsLoggedNotPropagated(t *testing.T) {
	q := NewQueue(nil)
	sink := &bufSink{}
	b := NewSequenceBuilder(nil)
	b.Begin(q)
	b.AddDraw(fakeDraw{err: errors.New("boom")})
	b.AddPrint("still runs")
	seq := b.End()

	status := Process(seq, sink, nil)
	require.Equal(t, StatusComplete, status)
	require.True(t, len(sink.lines) >= 2)
	require.True(t, strings.Contains(sink.lines[0], "boom"))
	require.Contains(t, sink.lines[1], "still runs")
}

func TestProcess_YieldResubmitsAndReturns(t *testing.T) {
	q := NewQueue(nil)
	b := NewSequenceBuilder(nil)
	b.Begin(q)
	b.AddPrint("before")
	b.AddYield()
	b.AddPrint("after")
	seq := b.End()

	status := Process(seq, nil, nil)
	require.Equal(t, StatusYield, status)
	require.Equal(t, 1, q.NumTasks())

	resumed, ok := q.Wait()
	require.True(t, ok)
	require.Same(t, seq, resumed)
	require.Equal(t, 1, resumed.Remaining())

	status = Process(resumed, nil, nil)
	require.Equal(t, StatusComplete, status)
}

func TestProcess_WaitParksOnUnsignaledSyncObject(t *testing.T) {
	q := NewQueue(nil)
	so := NewSyncObject(1)
	b := NewSequenceBuilder(nil)
	b.Begin(q)
	b.AddWait(so)
	b.AddPrint("resumed")
	seq := b.End()

	status := Process(seq, nil, nil)
	require.Equal(t, StatusWait, status)
	require.Equal(t, 0, q.NumTasks())

	so.Signal()
	resumed, ok := q.Wait()
	require.True(t, ok)
	require.Same(t, seq, resumed)

	status = Process(resumed, nil, nil)
	require.Equal(t, StatusComplete, status)
}

func TestProcess_WaitOnAlreadySignaledContinuesInline(t *testing.T) {
	q := NewQueue(nil)
	so := NewSyncObject(1)
	so.Signal()

	b := NewSequenceBuilder(nil)
	b.Begin(q)
	b.AddWait(so)
	b.AddPrint("ran immediately")
	seq := b.End()

	status := Process(seq, nil, nil)
	require.Equal(t, StatusComplete, status)
}

func TestProcess_RecordsMetrics(t *testing.T) {
	q := NewQueue(nil)
	provider := metrics.NewBasicProvider()
	b := NewSequenceBuilder(nil)
	b.Begin(q)
	b.AddDraw(fakeDraw{})
	b.AddSignal(NewSyncObject(1))
	b.AddPrint("x")
	seq := b.End()

	Process(seq, nil, provider)

	require.Equal(t, int64(1), provider.Counter("cmdsched.commands.draw").(*metrics.BasicCounter).Snapshot())
	require.Equal(t, int64(1), provider.Counter("cmdsched.commands.signal").(*metrics.BasicCounter).Snapshot())
	require.Equal(t, int64(1), provider.Counter("cmdsched.commands.print").(*metrics.BasicCounter).Snapshot())
	require.Equal(t, int64(1), provider.Counter("cmdsched.sequences.processed").(*metrics.BasicCounter).Snapshot())
}
