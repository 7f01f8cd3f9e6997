package compress

import (
	"go.uber.org/zap"
)

type option struct {
	logger *zap.Logger
}

type OptionFunc func(*option) error

// WithLogger sets the logger used during compression or decompression.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		o.logger = logger
		return nil
	}
}

func applyOptions(opts []OptionFunc) (*option, error) {
	options := &option{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}
