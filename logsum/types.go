package logsum

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadWorkers indicates a non-positive worker bound.
	ErrBadWorkers = errors.New("logsum: workers must be positive")

	// ErrNoPath indicates that no final vertex is reachable, so the total
	// is log 0 and posteriors are undefined.
	ErrNoPath = errors.New("logsum: no path from an initial to a final vertex")
)

// DefaultWorkers bounds the concurrent symbol groups when no option is given.
const DefaultWorkers = 4

// Option configures the parallel variants.
type Option func(*options)

type options struct {
	workers int
	err     error
}

// WithWorkers bounds how many symbol groups are processed concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.workers = n
	}
}

func resolve(opts []Option) (options, error) {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
