// Package logs builds the structured logger shared by the interpreter commands.
package logs

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Options selects where records go.
type Options struct {
	Verbose bool      // Terminal shows debug records, one per step.
	Trace   io.Writer // If set, every record is also written here as JSON.
}

// New creates a logger fanning out to a terminal handler and an optional trace.
func New(terminal io.Writer, opts Options) *slog.Logger {
	level := new(slog.LevelVar)
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}

	var handlers []slog.Handler

	if terminal != nil {
		handlers = append(handlers, slog.NewTextHandler(
			terminal,
			&slog.HandlerOptions{
				Level: level,
			},
		))
	}

	if opts.Trace != nil {
		handlers = append(handlers, slog.NewJSONHandler(
			opts.Trace,
			&slog.HandlerOptions{
				Level: slog.LevelDebug,
			},
		))
	}

	if len(handlers) == 0 {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slogmulti.Fanout(handlers...))
}
