// Package cmdsched schedules Command Sequences — ordered lists of drawing,
// synchronization and diagnostic commands — across a pool of Worker Threads,
// cooperatively suspending and resuming a Sequence around blocking Wait
// commands instead of parking an OS thread for each one.
//
// Constructors
//   - NewScheduler(*Config): accepts a Config value directly; a nil Config
//     is equivalent to a zero Config, since defaultConfig() fills every
//     field.
//   - NewSchedulerOptions(opts ...Option): options-based constructor, for
//     callers who would rather set individual fields (WithWorkers,
//     WithDiagnosticSink, WithMetrics, WithArenaPool) than build a Config.
//
// Defaults
// Unless overridden, the following defaults apply to a newly created
// Scheduler:
//   - Workers: 0 (runtime.GOMAXPROCS(0) Worker Threads)
//   - DiagnosticSink: a StdSink wrapping os.Stdout
//   - MetricsProvider: a no-op provider
//   - RecyclePool: false (completed Sequences' Arenas are left to the
//     garbage collector)
//
// Sequence lifecycle
// A producer uses Scheduler.Builder to get a SequenceBuilder, calls
// Begin/Add*/End to assemble a Sequence, and Submits it on Scheduler.Queue.
// A Worker Thread pops it, drives it through Process, and either discards it
// on completion or hands it to a Queue/SyncObject on Yield/Wait — ownership
// transfers by return value, never by the worker goroutine blocking inside
// Process itself.
//
// Pools
//   - No recycling (default): a completed Sequence's Arena becomes garbage.
//   - Arena pool (WithArenaPool / Config.RecyclePool): a dynamic, GC-evictable
//     pool of Arena storage that Worker Threads return completed Arenas to
//     and SequenceBuilder.Begin draws from first.
package cmdsched
