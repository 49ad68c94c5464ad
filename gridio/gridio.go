// Package gridio reads garden maps from text.
//
// Input is a block of lines, one grid row per line and one byte symbol per
// column. Blank lines before and after the block are ignored, as are
// trailing carriage returns. Everything else must form a rectangle of
// visible ASCII symbols; spaces and control bytes are rejected.
package gridio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/gardenplot/grid"
)

// Sentinel errors for malformed input. Returned errors wrap these with the
// offending line number; match them with errors.Is.
var (
	// ErrEmptyInput indicates the input holds no non-blank line.
	ErrEmptyInput = errors.New("gridio: empty input")

	// ErrBlankLine indicates a blank line inside the grid block.
	ErrBlankLine = errors.New("gridio: blank line inside grid")

	// ErrNonASCII indicates a byte outside visible ASCII (0x21-0x7e).
	ErrNonASCII = errors.New("gridio: symbol is not visible ASCII")
)

// Parse reads a grid from r. Ragged rows are reported as
// grid.ErrNonRectangular wrapped with the line number.
func Parse(r io.Reader) (*grid.Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "gridio: read")
	}

	first, last := 0, len(lines)
	for first < last && isBlank(lines[first]) {
		first++
	}
	for last > first && isBlank(lines[last-1]) {
		last--
	}
	if first == last {
		return nil, ErrEmptyInput
	}

	rows := lines[first:last]
	width := len(rows[0])
	for i, row := range rows {
		lineNo := first + i + 1
		if isBlank(row) {
			return nil, errors.Wrapf(ErrBlankLine, "line %d", lineNo)
		}
		if len(row) != width {
			return nil, errors.Wrapf(grid.ErrNonRectangular, "line %d has %d symbols, want %d", lineNo, len(row), width)
		}
		for col := 0; col < len(row); col++ {
			if b := row[col]; b < 0x21 || b > 0x7e {
				return nil, errors.Wrapf(ErrNonASCII, "line %d column %d: byte %#x", lineNo, col+1, b)
			}
		}
	}
	return grid.New(rows)
}

// ParseString is Parse over a string.
func ParseString(s string) (*grid.Grid, error) {
	return Parse(strings.NewReader(s))
}

// ReadFile opens path and parses it. A path of "-" reads standard input.
func ReadFile(path string) (*grid.Grid, error) {
	if path == "-" {
		g, err := Parse(os.Stdin)
		return g, errors.WithMessage(err, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "gridio: open")
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return g, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
