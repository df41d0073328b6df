package bitseq

import (
	"go.uber.org/zap"
)

type option struct {
	logger *zap.Logger
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type OptionFunc func(*option)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) {
		if logger != nil {
			o.logger = logger
		}
	}
}
