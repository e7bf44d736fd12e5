package cmdsched

import "github.com/arcthread/cmdsched/metrics"

// Option configures a Scheduler. Use NewSchedulerOptions(opts...) to
// construct a Scheduler via options instead of a Config value.
type Option func(*configOptions)

// internal builder state for options assembly.
type configOptions struct {
	cfg           Config
	poolSelected  bool
	sinkSelected  bool
	metricsChosen bool
}

// WithWorkers sets the number of Worker Threads the Scheduler runs. Zero
// (the default) means runtime.GOMAXPROCS(0).
func WithWorkers(n uint) Option {
	return func(co *configOptions) { co.cfg.Workers = n }
}

// WithDiagnosticSink sets the Sink that receives Print-command text and
// worker lifecycle traces. Calling it twice panics, the same conflict
// discipline the source pool options use.
func WithDiagnosticSink(sink Sink) Option {
	return func(co *configOptions) {
		if sink == nil {
			panic("cmdsched: WithDiagnosticSink requires a non-nil sink")
		}
		if co.sinkSelected {
			panic("cmdsched: WithDiagnosticSink specified more than once")
		}
		co.sinkSelected = true
		co.cfg.DiagnosticSink = sink
	}
}

// WithMetrics sets the metrics.Provider the Scheduler and its Worker
// Threads record instrumentation through. Calling it twice panics.
func WithMetrics(provider metrics.Provider) Option {
	return func(co *configOptions) {
		if provider == nil {
			panic("cmdsched: WithMetrics requires a non-nil provider")
		}
		if co.metricsChosen {
			panic("cmdsched: WithMetrics specified more than once")
		}
		co.metricsChosen = true
		co.cfg.MetricsProvider = provider
	}
}

// WithArenaPool enables Arena recycling: a completed Sequence's backing
// Arena is returned to a pool instead of left to the garbage collector, and
// SequenceBuilder.Begin draws from that pool first. Calling it twice panics,
// matching WithDiagnosticSink/WithMetrics's conflict discipline.
func WithArenaPool() Option {
	return func(co *configOptions) {
		if co.poolSelected {
			panic("cmdsched: WithArenaPool specified more than once")
		}
		co.poolSelected = true
		co.cfg.RecyclePool = true
	}
}

// NewSchedulerOptions constructs a Scheduler using functional options. It
// preserves the same validation as NewScheduler by internally assembling a
// Config, validating it, and handing it to the same newScheduler path.
func NewSchedulerOptions(opts ...Option) *Scheduler {
	co := configOptions{cfg: defaultConfig()}
	for _, opt := range opts {
		if opt == nil {
			panic("cmdsched: nil scheduler option")
		}
		opt(&co)
	}

	if err := validateConfig(&co.cfg); err != nil {
		panic(err)
	}

	return newScheduler(&co.cfg)
}
