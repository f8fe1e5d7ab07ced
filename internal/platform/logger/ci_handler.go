package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/sdmc-web/envsettings/internal/environ"
)

// CIHandler is a slog.Handler that adds CI run metadata and, optionally,
// the caller's source location to every record.
type CIHandler struct {
	handler   slog.Handler
	metadata  []slog.Attr
	addSource bool
}

// NewCIHandler creates a CIHandler writing JSON to out.
func NewCIHandler(out io.Writer, opts *slog.HandlerOptions, info environ.CIInfo) *CIHandler {
	var handlerOpts slog.HandlerOptions
	if opts != nil {
		// Copied so the caller's options are never modified
		handlerOpts = *opts
	}
	addSource := handlerOpts.AddSource
	// Source is added as flat attributes below
	handlerOpts.AddSource = false

	return &CIHandler{
		handler:   slog.NewJSONHandler(out, &handlerOpts),
		metadata:  ciAttrs(info),
		addSource: addSource,
	}
}

func ciAttrs(info environ.CIInfo) []slog.Attr {
	attrs := []slog.Attr{slog.String("ci_provider", info.Provider)}
	if info.Commit != "" {
		attrs = append(attrs, slog.String("ci_commit", info.Commit))
	}
	return attrs
}

// Enabled implements the slog.Handler interface.
func (h *CIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *CIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CIHandler{
		handler:   h.handler.WithAttrs(attrs),
		metadata:  h.metadata,
		addSource: h.addSource,
	}
}

// WithGroup implements the slog.Handler interface.
func (h *CIHandler) WithGroup(name string) slog.Handler {
	return &CIHandler{
		handler:   h.handler.WithGroup(name),
		metadata:  h.metadata,
		addSource: h.addSource,
	}
}

// Handle implements the slog.Handler interface.
func (h *CIHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := record.Clone()

	if h.addSource && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		enhanced.AddAttrs(
			slog.String("source_file", frame.File),
			slog.Int("source_line", frame.Line),
			slog.String("source_func", frame.Function),
		)
	}

	enhanced.AddAttrs(h.metadata...)

	return h.handler.Handle(ctx, enhanced)
}
