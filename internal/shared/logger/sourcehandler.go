package logger

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
)

const loggerPackage = "github.com/GithubESPI/dotationsFrontend/internal/shared/logger."

// sourceHandler attaches the caller location to records at or above minLevel.
// Frames inside log/slog and this package are skipped so the location points at
// the code that logged, not at the Interface wrapper.
type sourceHandler struct {
	next     slog.Handler
	minLevel slog.Level
}

func newSourceHandler(next slog.Handler, minLevel slog.Level) slog.Handler {
	return &sourceHandler{next: next, minLevel: minLevel}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel {
		if src, ok := callerSource(); ok {
			r.AddAttrs(slog.Any(slog.SourceKey, src))
		}
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), minLevel: h.minLevel}
}

func callerSource() (*slog.Source, bool) {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, "log/slog.") && !strings.HasPrefix(f.Function, loggerPackage) {
			return &slog.Source{Function: f.Function, File: f.File, Line: f.Line}, true
		}
		if !more {
			return nil, false
		}
	}
}
