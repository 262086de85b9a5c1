package account

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures the remote use cases.
type Option func(*options)

// WithLogger sets the logger used to report unexpected responses.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
