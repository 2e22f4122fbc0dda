package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans one log line out to several sinks (stdout and the rotated log file).
// A failing sink does not stop the others; all failures are reported together.
type CombinedWriter struct {
	sinks []io.Writer
}

func NewCombinedWriter(sinks ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		sinks: append([]io.Writer(nil), sinks...),
	}
}

func (cw *CombinedWriter) Sinks() int {
	return len(cw.sinks)
}

// Write reports len(p) when at least one sink took the whole line.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var errs error
	delivered := 0
	for i, sink := range cw.sinks {
		written, err := sink.Write(p)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("sink %d: %w", i, err))
			continue
		}
		if written == len(p) {
			delivered++
		}
	}

	if delivered == 0 && len(cw.sinks) > 0 {
		return 0, errs
	}
	return len(p), errs
}
