package pricing

import (
	"sync"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/perimeter"
	"github.com/katalvlaran/gardenplot/region"
	"github.com/katalvlaran/gardenplot/sides"
)

// TotalByPerimeter returns Σ area×perimeter over plots.
func TotalByPerimeter(plots []Plot) int {
	total := 0
	for _, p := range plots {
		total += p.PerimeterPrice()
	}
	return total
}

// TotalBySides returns Σ area×sides over plots.
func TotalBySides(plots []Plot) int {
	total := 0
	for _, p := range plots {
		total += p.SidesPrice()
	}
	return total
}

// Sum reduces plots to their Totals.
func Sum(plots []Plot) Totals {
	return Totals{
		Regions:     len(plots),
		ByPerimeter: TotalByPerimeter(plots),
		BySides:     TotalBySides(plots),
	}
}

// Measure computes the perimeter and side count of one region of g.
func Measure(g *grid.Grid, r *region.Region) Plot {
	return Plot{
		Region:    r,
		Perimeter: perimeter.Count(r, g),
		Sides:     sides.Count(r),
	}
}

// Annotate measures every region of g. Regions must come from
// region.Segment(g). The returned plots follow the order of regions.
func Annotate(g *grid.Grid, regions []*region.Region, opts ...Option) ([]Plot, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	plots := make([]Plot, len(regions))
	var err error
	if o.Workers > 1 && len(regions) > 1 {
		err = annotateParallel(g, regions, plots, o)
	} else {
		err = annotateSequential(g, regions, plots, o)
	}
	if err != nil {
		return nil, err
	}

	for _, p := range plots {
		o.OnPlot(p)
	}
	return plots, nil
}

// Analyze segments g, measures every region and totals the prices.
func Analyze(g *grid.Grid, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	plots, err := Annotate(g, region.Segment(g), opts...)
	if err != nil {
		return nil, err
	}
	return &Report{Plots: plots, Totals: Sum(plots)}, nil
}

func annotateSequential(g *grid.Grid, regions []*region.Region, plots []Plot, o Options) error {
	for i, r := range regions {
		// cancellation check (once per region)
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		plots[i] = Measure(g, r)
	}
	return nil
}

// annotateParallel hands region indices to o.Workers goroutines. Each
// worker writes only its own slots of plots.
func annotateParallel(g *grid.Grid, regions []*region.Region, plots []Plot, o Options) error {
	workers := min(o.Workers, len(regions))
	jobs := make(chan int)
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				plots[i] = Measure(g, regions[i])
			}
		}()
	}

	var err error
feed:
	for i := range regions {
		if err = o.Ctx.Err(); err != nil {
			break
		}
		select {
		case <-o.Ctx.Done():
			err = o.Ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return err
}
