package cmdsched

import "github.com/arcthread/cmdsched/metrics"

// Config holds Scheduler configuration.
type Config struct {
	// Workers defines how many Worker Threads (goroutines) the Scheduler
	// runs. Zero (default) means runtime.GOMAXPROCS(0).
	// Default: 0
	Workers uint

	// DiagnosticSink receives Print-command text and worker lifecycle
	// traces. Default: a StdSink wrapping os.Stdout, matching the source
	// program's unconditional printf tracing.
	DiagnosticSink Sink

	// MetricsProvider receives scheduler instrumentation. Default: a
	// NoopProvider, so the default build pays no observability cost.
	MetricsProvider metrics.Provider

	// RecyclePool enables arena recycling: a completed Sequence's backing
	// Arena is returned to a pool instead of being left to the garbage
	// collector, and SequenceBuilder.Begin draws from that pool first.
	// Default: false.
	RecyclePool bool
}
