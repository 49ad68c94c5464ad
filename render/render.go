package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/pricing"
	"github.com/katalvlaran/gardenplot/sides"
)

// Sentinel errors for rendering.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrCellSize is returned for a non-positive cell size.
	ErrCellSize = errors.New("render: cell size must be positive")
)

// Option configures rendering.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// CellSize is the edge length of one grid cell in pixels.
	CellSize int
	// SideColor strokes region sides.
	SideColor color.Color
	// DrawSides toggles side strokes.
	DrawSides bool

	err error
}

// DefaultOptions returns 16px cells with black side strokes.
func DefaultOptions() Options {
	return Options{
		CellSize:  16,
		SideColor: colornames.Black,
		DrawSides: true,
	}
}

// WithCellSize sets the cell edge length in pixels; n <= 0 is ErrCellSize.
func WithCellSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrCellSize, n)
			return
		}
		o.CellSize = n
	}
}

// WithSideColor sets the stroke colour of region sides.
func WithSideColor(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.SideColor = c
		}
	}
}

// WithSides toggles side strokes.
func WithSides(on bool) Option {
	return func(o *Options) { o.DrawSides = on }
}

// SymbolColor returns the fill colour used for sym.
func SymbolColor(sym byte) color.RGBA {
	names := colornames.Names
	return colornames.Map[names[(int(sym)*37)%len(names)]]
}

// Image draws g with the regions of plots. Plots must come from g.
func Image(g *grid.Grid, plots []pricing.Plot, opts ...Option) (image.Image, error) {
	dc, err := draw(g, plots, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG draws g and writes it to w as PNG.
func EncodePNG(w io.Writer, g *grid.Grid, plots []pricing.Plot, opts ...Option) error {
	dc, err := draw(g, plots, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG draws g and writes it to path as PNG.
func SavePNG(path string, g *grid.Grid, plots []pricing.Plot, opts ...Option) error {
	dc, err := draw(g, plots, opts)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func draw(g *grid.Grid, plots []pricing.Plot, opts []Option) (*gg.Context, error) {
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

	cs := float64(o.CellSize)
	dc := gg.NewContext(g.Cols()*o.CellSize, g.Rows()*o.CellSize)
	dc.SetColor(colornames.White)
	dc.Clear()

	for _, p := range plots {
		dc.SetColor(SymbolColor(p.Region.Symbol))
		for _, c := range p.Region.Coordinates() {
			dc.DrawRectangle(float64(c.Col)*cs, float64(c.Row)*cs, cs, cs)
		}
		dc.Fill()
	}
	if !o.DrawSides {
		return dc, nil
	}

	lw := max(1, cs/8)
	dc.SetColor(o.SideColor)
	dc.SetLineWidth(lw)
	dc.SetLineCapButt()
	for _, p := range plots {
		for _, run := range sides.AllRuns(p.Region.Set()) {
			x1, y1, x2, y2 := segment(run, cs, lw/2)
			dc.DrawLine(x1, y1, x2, y2)
		}
	}
	dc.Stroke()
	return dc, nil
}

// segment maps a side run to a line on the cell boundary, moved inward by
// inset so that the strokes of two neighboring regions do not overlap.
func segment(run sides.Run, cs, inset float64) (x1, y1, x2, y2 float64) {
	line := float64(run.Line)
	from, to := float64(run.From)*cs, float64(run.To+1)*cs
	switch run.Facing {
	case grid.Up:
		y := line*cs + inset
		return from, y, to, y
	case grid.Down:
		y := (line+1)*cs - inset
		return from, y, to, y
	case grid.Left:
		x := line*cs + inset
		return x, from, x, to
	default:
		x := (line+1)*cs - inset
		return x, from, x, to
	}
}
