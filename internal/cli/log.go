// Package cli implements the circuitsvg command-line interface.
//
// The commands turn circuit element JSON into drawings and reports:
//   - render: draw pcb, schematic or nets views as SVG, PNG, PDF or JSON
//   - bounds: print the aggregated bounds, viewport and transform
//   - nets: write the net connectivity graph as DOT or a Graphviz drawing
//   - inspect: browse elements interactively
//   - serve: run the HTTP API
//   - cache: manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so concurrent renders can tag their output
// with the input file.
//
// # Configuration
//
// Defaults are read from ~/.config/circuitsvg/config.toml (or --config) and
// overridden by flags.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.cs" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress reports the wall time of a command, e.g.
// "Rendered 3 file(s) (1.234s)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. Render workers use it to tag every line
// with the file they are drawing.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
