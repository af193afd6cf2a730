package kizuna

import "log/slog"

// Option configures a Locator created with New.
type Option interface {
	apply(*options)
}

// options holds locator configuration.
type options struct {
	logger *slog.Logger
}

// optionFunc adapts a function to Option.
type optionFunc func(*options)

func (f optionFunc) apply(opts *options) {
	f(opts)
}

// WithLogger sets the logger used for binding replacement and removal events.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(opts *options) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
	}
}
