package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceHandler struct {
	handler      slog.Handler
	levelsWanted map[slog.Level]bool
}

// NewConditionalSourceHandler wraps a handler so that source location is
// attached only to records at the given levels. The wrapped handler must
// be built with AddSource disabled, otherwise the location would point
// into this wrapper.
func NewConditionalSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	wanted := make(map[slog.Level]bool, len(levels))
	for _, level := range levels {
		wanted[level] = true
	}
	return &sourceHandler{handler: handler, levelsWanted: wanted}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levelsWanted[r.Level] {
		// Skip this frame plus the slog internals to reach the call site.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frames := runtime.CallersFrames(pcs[:])
		frame, _ := frames.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}
	return h.handler.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{handler: h.handler.WithAttrs(attrs), levelsWanted: h.levelsWanted}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{handler: h.handler.WithGroup(name), levelsWanted: h.levelsWanted}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
