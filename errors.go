package cmdsched

import "errors"

// Namespace prefixes every sentinel error this package defines, so that a
// caller inspecting an error string can tell at a glance which library
// produced it.
const Namespace = "cmdsched"

var (
	// ErrArenaOverflow is the panic value SequenceBuilder.Add raises when a
	// non-growable Arena's Append reports ok == false (Append itself reports
	// overflow via its bool return, not this error; the arena is left
	// unmodified in either case).
	ErrArenaOverflow = errors.New(Namespace + ": arena append would overflow non-growable storage")

	// ErrInvalidSignalCount is the panic value NewSyncObject raises when asked
	// to construct a SyncObject with a required signal count below 1.
	ErrInvalidSignalCount = errors.New(Namespace + ": sync object requires a signal count >= 1")

	// ErrInvalidConfig is returned when a Config has a nil DiagnosticSink or
	// MetricsProvider.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
