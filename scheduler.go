package cmdsched

import (
	"runtime"
	"sync"

	"github.com/arcthread/cmdsched/metrics"
	"github.com/arcthread/cmdsched/pool"
)

// Scheduler owns a Work Queue and a fixed set of Worker Threads (spec.md
// §4.7). It is the top-level CORE object: a producer builds Sequences with a
// SequenceBuilder and submits them to Queue(), and the Scheduler's workers
// drain them until Shutdown is called.
type Scheduler struct {
	queue           *Queue
	sink            Sink
	metricsProvider metrics.Provider
	arenas          pool.Pool
	workers         []*worker
	wg              sync.WaitGroup

	shutdownOnce sync.Once
}

// NewScheduler builds a Scheduler from cfg. A nil cfg is equivalent to
// passing a zero Config: defaultConfig() fills in every field.
func NewScheduler(cfg *Config) *Scheduler {
	merged := defaultConfig()
	if cfg != nil {
		if cfg.Workers != 0 {
			merged.Workers = cfg.Workers
		}
		if cfg.DiagnosticSink != nil {
			merged.DiagnosticSink = cfg.DiagnosticSink
		}
		if cfg.MetricsProvider != nil {
			merged.MetricsProvider = cfg.MetricsProvider
		}
		merged.RecyclePool = cfg.RecyclePool
	}
	if err := validateConfig(&merged); err != nil {
		panic(err)
	}
	return newScheduler(&merged)
}

// newScheduler is the shared construction path for NewScheduler and
// NewSchedulerOptions: cfg has already been defaulted and validated.
func newScheduler(cfg *Config) *Scheduler {
	n := int(cfg.Workers)
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}

	var arenas pool.Pool
	if cfg.RecyclePool {
		arenas = pool.NewDynamic(func() interface{} {
			return NewArena[Record](defaultArenaCapacity, true)
		})
	}

	s := &Scheduler{
		queue:           NewQueue(cfg.MetricsProvider),
		sink:            cfg.DiagnosticSink,
		metricsProvider: cfg.MetricsProvider,
		arenas:          arenas,
		workers:         make([]*worker, n),
	}

	for i := range s.workers {
		s.workers[i] = newWorker(i, s.queue, s.sink, s.metricsProvider, s.arenas)
	}

	s.wg.Add(len(s.workers))
	for _, w := range s.workers {
		w := w
		go func() {
			defer s.wg.Done()
			w.run()
		}()
	}

	return s
}

// Queue returns the Work Queue that Sequences must be Submit-ed to in order
// to run on this Scheduler's Worker Threads.
func (s *Scheduler) Queue() *Queue {
	return s.queue
}

// Builder returns a new SequenceBuilder wired to this Scheduler's Arena
// recycling pool (nil when recycling is disabled), matching the pool every
// worker releases completed Sequences back into.
func (s *Scheduler) Builder() *SequenceBuilder {
	return NewSequenceBuilder(s.arenas)
}

// Shutdown stops accepting new work from the Worker Threads' point of view
// and blocks until every worker goroutine has exited. It is safe to call
// more than once; only the first call executes the sequence, mirroring the
// source's one-shot lifecycle coordinator.
func (s *Scheduler) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.sink.Printf(" -- waiting for %d threads\n", len(s.workers))
		s.queue.Shutdown()
		s.wg.Wait()
	})
}
