package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gardenplot/region"
)

// Sentinel errors for annotation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pricing: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pricing: invalid option supplied")
)

// Plot is a region annotated with its perimeter and side count.
type Plot struct {
	Region    *region.Region
	Perimeter int
	Sides     int
}

// Area returns the region's cell count.
func (p Plot) Area() int { return p.Region.Area() }

// PerimeterPrice returns area×perimeter.
func (p Plot) PerimeterPrice() int { return p.Area() * p.Perimeter }

// SidesPrice returns area×sides.
func (p Plot) SidesPrice() int { return p.Area() * p.Sides }

// Totals holds both fence prices for a set of plots.
type Totals struct {
	Regions     int
	ByPerimeter int
	BySides     int
}

// Report is the outcome of Analyze.
type Report struct {
	Plots []Plot
	Totals
}

// Option configures annotation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Annotate and Analyze.
type Options struct {
	// Ctx allows cancellation between regions.
	Ctx context.Context

	// Workers is the number of goroutines measuring regions.
	// 1 measures sequentially on the calling goroutine.
	Workers int

	// OnPlot is called once per plot, in region order, after measuring.
	OnPlot func(p Plot)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - one worker
//   - no-op OnPlot
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		OnPlot:  func(Plot) {},
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

// WithWorkers sets the number of measuring goroutines.
//
//	n > 0: use n workers
//	n == 0: keep the default (1)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithOnPlot registers a callback run once per measured plot.
func WithOnPlot(fn func(p Plot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlot = fn
		}
	}
}
