package reconcile

import (
	"github.com/rs/zerolog"
)

// Option is a functional option for configuring a Comparator
type Option func(*Comparator)

// WithSubset sets the columns inspected to decide whether a matched row
// counts as updated. Defaults to every shared non-key column.
func WithSubset(columns ...string) Option {
	return func(c *Comparator) {
		c.subset = columns
	}
}

// WithNumberTolerance sets the tolerance for numeric column comparison
func WithNumberTolerance(tolerance float64) Option {
	return func(c *Comparator) {
		c.compareOpts.Tolerance = tolerance
	}
}

// WithRelativeTolerance switches numeric comparison to relative mode
func WithRelativeTolerance() Option {
	return func(c *Comparator) {
		c.compareOpts.Relative = true
	}
}

// WithIgnoreCase makes string column comparison case-insensitive
func WithIgnoreCase() Option {
	return func(c *Comparator) {
		c.compareOpts.IgnoreCase = true
	}
}

// WithKeepLast resolves duplicate key tuples by keeping the last
// occurrence instead of failing with a DuplicateKeyError
func WithKeepLast() Option {
	return func(c *Comparator) {
		c.keepLast = true
	}
}

// WithLogger sets the logger used for classification diagnostics
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Comparator) {
		if logger != nil {
			c.logger = logger
		}
	}
}
