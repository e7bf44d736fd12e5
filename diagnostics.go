package cmdsched

import (
	"fmt"
	"io"
	"os"
)

// Sink is the textual diagnostic sink spec.md §6 describes: Print commands
// and worker lifecycle traces ("creating thread", "joining thread", "waiting
// for N threads") are written to it. It is intentionally the only
// "logging" surface the CORE has — spec.md explicitly scopes structured
// logging out.
type Sink interface {
	Printf(format string, args ...any)
}

// StdSink writes diagnostics to an io.Writer, defaulting to os.Stdout. It
// reproduces the original's printf-style trace lines verbatim so a console
// session reads the same way the source program's did.
type StdSink struct {
	w io.Writer
}

// NewStdSink wraps w as a Sink. A nil w defaults to os.Stdout.
func NewStdSink(w io.Writer) *StdSink {
	if w == nil {
		w = os.Stdout
	}
	return &StdSink{w: w}
}

func (s *StdSink) Printf(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
}

// discardSink silently drops every diagnostic. Config's default Sink is a
// StdSink wrapping os.Stdout, matching the source program's unconditional
// printf tracing; discardSink exists only as Process's nil-safety fallback
// for callers that invoke it directly with a nil Sink.
type discardSink struct{}

func (discardSink) Printf(string, ...any) {}
