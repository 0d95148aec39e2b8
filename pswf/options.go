package pswf

import "github.com/cwbudde/algo-prolate/approx"

// Option configures a computation.
type Option func(*config)

type config struct {
	domain approx.Interval
}

func defaultConfig() config {
	return config{
		domain: approx.Unit,
	}
}

// WithDomain sets the interval the approximants are built over.
// Default is [-1, 1].
func WithDomain(lo, hi float64) Option {
	return func(c *config) {
		c.domain = approx.Interval{Lo: lo, Hi: hi}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
