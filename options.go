package datatable

import "log/slog"

type Option func(*config)

type config struct {
	logger      *slog.Logger
	placeholder *string
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used for render timing and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPlaceholder makes columns that do not resolve to a field render
// placeholder instead of failing the render pass with ErrUnknownColumn.
// Render functions are not called for such cells.
func WithPlaceholder(placeholder string) Option {
	return func(c *config) {
		c.placeholder = &placeholder
	}
}
