package useragent

import (
	"context"
	"log/slog"
	"time"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	matchTimeout time.Duration
	maxLength    int
	cacheSize    int
}

func defaultOptions() *options {
	return &options{
		logger:       newNoopLogger(),
		matchTimeout: DefaultMatchTimeout,
		maxLength:    DefaultMaxLength,
	}
}

// WithLogger sets the logger used to report aborted pattern searches.
// Nil loggers are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMatchTimeout bounds every single pattern search. Zero disables the bound.
// It only applies when the parser compiles its own table (New, MustNew).
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.matchTimeout = d
		}
	}
}

// WithMaxLength sets how many leading bytes of the input are classified.
// Longer inputs are truncated. Zero disables truncation.
func WithMaxLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxLength = n
		}
	}
}

// WithCacheSize enables an LRU cache of parse results holding up to n
// distinct user agents. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.cacheSize = n
		}
	}
}

// noopHandler is a slog.Handler that discards all logs.
type noopHandler struct{}

func (n noopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n noopHandler) WithGroup(_ string) slog.Handler               { return n }

func newNoopLogger() *slog.Logger {
	return slog.New(noopHandler{})
}
