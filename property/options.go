package property

import (
	"io"
	"log/slog"

	"modelkit/internal/structinfo"
)

type config struct {
	fields structinfo.Options
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures an Accessor.
type Option func(*config)

// WithPrivatePrefix sets the marker that makes a field key private. Default "_".
func WithPrivatePrefix(prefix string) Option {
	return func(c *config) {
		c.fields.PrivatePrefix = prefix
	}
}

// WithTagName sets the struct tag that overrides field keys. Default "prop".
func WithTagName(name string) Option {
	return func(c *config) {
		c.fields.TagName = name
	}
}

// WithLogger sets the logger used for debug records about method dispatch.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
