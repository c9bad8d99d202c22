package mapper

import (
	"io"
	"log/slog"

	"modelkit/internal/structinfo"
)

type config struct {
	fields          structinfo.Options
	otherNameOnPush bool
	keepZeroValues  bool
	logger          *slog.Logger
}

func defaultConfig() config {
	return config{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Mapper.
type Option func(*config)

// WithOtherNameOnPush makes FromPrimary write under the entry's Other name. By default
// FromPrimary writes under the primary field name.
func WithOtherNameOnPush() Option {
	return func(c *config) {
		c.otherNameOnPush = true
	}
}

// WithZeroValues makes FromPrimary write zero and empty values. By default only
// non-empty values are written; with this option only nil is skipped.
func WithZeroValues() Option {
	return func(c *config) {
		c.keepZeroValues = true
	}
}

// WithTagName sets the struct tag used to derive field keys of struct records.
func WithTagName(name string) Option {
	return func(c *config) {
		c.fields.TagName = name
	}
}

// WithPrivatePrefix sets the marker that hides struct record fields.
func WithPrivatePrefix(prefix string) Option {
	return func(c *config) {
		c.fields.PrivatePrefix = prefix
	}
}

// WithLogger sets the logger used for debug records about skipped fields.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
