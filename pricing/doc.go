// Package pricing annotates regions with their measurements and reduces
// them to fence prices.
//
// What:
//
//   - Plot pairs a region.Region with its perimeter and side count.
//   - TotalByPerimeter sums area×perimeter over plots.
//   - TotalBySides sums area×sides over plots.
//   - Annotate measures every region, optionally fanning out across workers.
//   - Analyze segments a grid, annotates it and reports both totals.
//
// Options:
//
//   - WithContext: cancellation between regions.
//   - WithWorkers: number of goroutines measuring regions (default 1).
//   - WithOnPlot: callback invoked once per plot, in region order.
//
// Measuring one region never reads another, so parallel annotation returns
// exactly what the sequential path returns, in the same order.
//
// Errors:
//
//   - ErrGridNil: a nil grid was passed.
//   - ErrOptionViolation: an invalid Option was supplied (e.g. negative workers).
//   - ctx.Err() when the context is cancelled mid-run.
package pricing
