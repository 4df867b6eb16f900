package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// Config of the command's logger.
type Config struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
	// SeqURL enables an additional Seq sink if not empty
	SeqURL    string `yaml:"seqURL"`
	AddSource bool   `yaml:"addSource"`
}

// multiHandler forwards log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	// Enable if any handler is enabled for this level
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// ParseLevel returns the slog.Level for a level name,
// an empty name results in slog.LevelInfo.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo, nil
	}
	err := level.UnmarshalText([]byte(strings.ToUpper(name)))
	return level, err
}

// Setup returns a logger writing text records to console
// and to Seq if config.SeqURL is set,
// together with a function that flushes and closes the Seq sink.
func Setup(config Config, console io.Writer) (*slog.Logger, func(), error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}
	options := &slog.HandlerOptions{
		Level:     level,
		AddSource: config.AddSource,
	}
	consoleHandler := slog.NewTextHandler(console, options)
	if config.SeqURL == "" {
		return slog.New(consoleHandler), func() {}, nil
	}

	_, seqHandler := slogseq.NewLogger(
		config.SeqURL,
		slogseq.WithBatchSize(1),
		slogseq.WithFlushInterval(500*time.Millisecond),
		slogseq.WithHandlerOptions(options),
	)
	// If Seq is not available, use console only
	if seqHandler == nil {
		return slog.New(consoleHandler), func() {}, nil
	}

	multi := &multiHandler{
		handlers: []slog.Handler{consoleHandler, seqHandler},
	}
	return slog.New(multi), func() { seqHandler.Close() }, nil
}
