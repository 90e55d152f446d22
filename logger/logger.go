package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pig-dice/systems"
)

var defaultLogger *slog.Logger

// Init configures the process logger and makes it the slog default. When
// mirror is set, every record is also appended to it for the in-game debug log.
func Init(level string, json bool, mirror *systems.MessageLog) {
	InitWriter(os.Stderr, level, json, mirror)
}

// InitWriter is Init with an explicit output.
func InitWriter(w io.Writer, level string, json bool, mirror *systems.MessageLog) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	if mirror != nil {
		handler = &mirrorHandler{inner: handler, log: mirror}
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the process logger, initialising a text logger on first use.
func Get() *slog.Logger {
	if defaultLogger == nil {
		Init("info", false, nil)
	}
	return defaultLogger
}

// With returns the process logger with the given attributes.
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	Get().Error(msg, args...)
	os.Exit(1)
}

// mirrorHandler forwards records to an inner handler and copies a one-line
// rendering of each into a message log.
type mirrorHandler struct {
	inner slog.Handler
	log   *systems.MessageLog
	attrs []slog.Attr
}

func (h *mirrorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *mirrorHandler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteString(" ")
	b.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)

	t := systems.MessageTypeSystem
	if r.Level >= slog.LevelWarn {
		t = systems.MessageTypePig
	}
	h.log.AddTyped(b.String(), t)

	return h.inner.Handle(ctx, r)
}

func (h *mirrorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &mirrorHandler{
		inner: h.inner.WithAttrs(attrs),
		log:   h.log,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *mirrorHandler) WithGroup(name string) slog.Handler {
	return &mirrorHandler{inner: h.inner.WithGroup(name), log: h.log, attrs: h.attrs}
}
