package mandelbrot

import "runtime"

// Option configures a Renderer during creation.
//
// Example:
//
//	// One band per CPU, default iteration limit
//	r := mandelbrot.NewRenderer()
//
//	// Sequential rendering with a deeper limit
//	r := mandelbrot.NewRenderer(mandelbrot.WithWorkers(1), mandelbrot.WithLimit(1000))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	workers int
	limit   int
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		workers: runtime.GOMAXPROCS(0),
		limit:   DefaultLimit,
	}
}

// WithWorkers sets the number of bands the image is split into, and so the
// number of goroutines a render uses. Values below 1 keep the default of
// GOMAXPROCS.
//
// The output does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithLimit sets the iteration limit passed to EscapeTime.
// Escape times of 255 or more shade to 0, the same as points in the set,
// so limits above 255 only sharpen the set's boundary.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}
