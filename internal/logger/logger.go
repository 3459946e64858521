// Package logger provides the structured logger shared by the preprocessing
// packages. It wraps log/slog with a package-level instance so library code
// can log without threading a logger through every call.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// Logger is the default logger instance.
var Logger *slog.Logger

var (
	level  = new(slog.LevelVar)
	output io.Writer = os.Stderr
)

func init() {
	level.Set(slog.LevelInfo)
	Logger = slog.New(newConsoleHandler())
}

func newConsoleHandler() slog.Handler {
	return slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
}

// SetLevel configures the logging level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetOutput redirects console output. It resets any extra sinks.
func SetOutput(w io.Writer) {
	output = w
	Logger = slog.New(newConsoleHandler())
}

// ParseLevel maps debug, info, warn and error to a slog level; anything else
// is info.
func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func Debug(msg string, args ...any) { Logger.Debug(msg, args...) }

func Info(msg string, args ...any) { Logger.Info(msg, args...) }

func Warn(msg string, args ...any) { Logger.Warn(msg, args...) }

func Error(msg string, args ...any) { Logger.Error(msg, args...) }

// WithStep returns a logger tagged with a transformer name.
func WithStep(name string) *slog.Logger {
	return Logger.With("step", name)
}

// EnableSeq adds a Seq sink next to the console handler. The returned func
// flushes and closes the sink.
func EnableSeq(url string) func() {
	_, seqHandler := slogseq.NewLogger(
		url,
		slogseq.WithBatchSize(50),
		slogseq.WithFlushInterval(time.Second),
		slogseq.WithHandlerOptions(&slog.HandlerOptions{Level: level}),
	)
	if seqHandler == nil {
		Warn("seq sink unavailable, logging to console only", "url", url)
		return func() {}
	}
	Logger = slog.New(&fanout{handlers: []slog.Handler{newConsoleHandler(), seqHandler}})
	return func() { seqHandler.Close() }
}

// fanout forwards records to several handlers.
type fanout struct {
	handlers []slog.Handler
}

func (f *fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		hs[i] = h.WithAttrs(attrs)
	}
	return &fanout{handlers: hs}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		hs[i] = h.WithGroup(name)
	}
	return &fanout{handlers: hs}
}
