package zdd

import "github.com/rs/zerolog"

type config struct {
	logger zerolog.Logger
}

// Option configures a Builder. Grounded on the teacher's functional
// options idiom (builder/config.go's option-slice-over-struct shape,
// before that package was dropped — the pattern survives, generalized).
type Option func(*config)

// WithLogger injects a logger used at build milestones (level started,
// node count after reduction). The zero value, zerolog.Nop(), is used
// when no logger is supplied — logging is never required to use Builder.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts ...Option) *config {
	c := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
