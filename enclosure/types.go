package enclosure

import (
	"context"
	"errors"
)

// Sentinel errors for enclosure analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("enclosure: graph is nil")

	// ErrRegionNotFound is returned when the region ID is absent.
	ErrRegionNotFound = errors.New("enclosure: region not found")
)

// Option configures the walk via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for the breadth-first walks.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is visited. Returning an error
	// aborts the analysis and propagates that error.
	OnVisit func(id, depth int) error

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no-op OnVisit
//   - no filtering
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited vertex.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false. The filter is
// combined with the removal of the candidate encloser during each test.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
