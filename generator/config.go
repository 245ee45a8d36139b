package generator

import "github.com/rs/zerolog"

type config struct {
	logger zerolog.Logger
}

// Option configures a Generator.
type Option func(*config)

// WithLogger attaches logger to a Generator; generation milestones (the
// initial board, each add/delete round, a restart) are logged at Debug.
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
