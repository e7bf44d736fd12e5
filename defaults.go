package cmdsched

import "github.com/arcthread/cmdsched/metrics"

// defaultConfig centralizes default values for Config. These defaults are
// applied by both NewScheduler (as the base that a non-nil cfg's non-zero
// fields override) and NewSchedulerOptions (options builder base).
func defaultConfig() Config {
	return Config{
		Workers:         0, // runtime.GOMAXPROCS(0)
		DiagnosticSink:  NewStdSink(nil),
		MetricsProvider: metrics.NewNoopProvider(),
		RecyclePool:     false,
	}
}

// validateConfig performs lightweight invariant checks, reserved for future
// validation expansion the way the teacher repo's validateConfig is.
func validateConfig(cfg *Config) error {
	if cfg.DiagnosticSink == nil {
		return ErrInvalidConfig
	}
	if cfg.MetricsProvider == nil {
		return ErrInvalidConfig
	}
	return nil
}
