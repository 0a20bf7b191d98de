package gosheet

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Warning codes (exported consts for IDE completion and type safety by convention)
const (
	CodeUnknownClass  = "unknown_class"
	CodeUnknownLayout = "unknown_layout"
)

// Warning represents a single diagnostic entry. Warnings never affect control
// flow or return values: a missing lookup still produces a usable fallback
// name, and the warning only surfaces the problem for development-time
// tooling.
type Warning struct {
	Code     string // One of the codes listed above.
	Key      string // The looked-up identifier.
	Fallback string // The deterministic fallback name that was returned.
	Message  string
}

// Warnings is a collection of diagnostics that implements error for tooling
// convenience. The pipeline itself never returns it as a failure.
type Warnings []Warning

// Error summarizes the first few warnings.
func (ws Warnings) Error() string {
	if len(ws) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ws)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		w := ws[i]
		// e.g. unknown_class for "sidebar"
		fmt.Fprintf(b, "%s for %q", w.Code, w.Key)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// WarnSink receives diagnostic warnings emitted by the lookup functions in
// debug mode. Sinks must be safe for use from the goroutine that owns the
// Stylesheet; the pipeline itself adds no concurrency.
type WarnSink interface {
	Warn(w Warning)
}

// logSink writes warnings through zerolog.
type logSink struct {
	log zerolog.Logger
}

// NewLogSink returns a WarnSink backed by the given zerolog logger.
func NewLogSink(log zerolog.Logger) WarnSink { return logSink{log: log} }

func (s logSink) Warn(w Warning) {
	s.log.Warn().
		Str("code", w.Code).
		Str("key", w.Key).
		Str("fallback", w.Fallback).
		Msg(w.Message)
}

// defaultSink logs to stderr with timestamps, matching the logger shape the
// rest of the tooling uses.
func defaultSink() WarnSink {
	log := zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	return logSink{log: log}
}

// CollectSink gathers warnings into memory. Useful in tests and in tooling
// that wants to surface missing keys without logging.
type CollectSink struct {
	Warnings Warnings
}

// Warn appends the warning.
func (s *CollectSink) Warn(w Warning) { s.Warnings = append(s.Warnings, w) }
