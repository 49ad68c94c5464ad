// Package fixture holds the garden maps shared by the package tests.
package fixture

// Map is a named grid with its known prices.
type Map struct {
	Name        string
	Rows        []string
	ByPerimeter int
	BySides     int
}

// Larger is the 10×10 map with eleven regions.
var Larger = Map{
	Name: "Larger",
	Rows: []string{
		"RRRRIICCFF",
		"RRRRIICCCF",
		"VVRRRCCFFF",
		"VVRCCCJFFF",
		"VVVVCJJCFE",
		"VVIVCCJJEE",
		"VVIIICJJEE",
		"MIIIIIJJEE",
		"MIIISIJEEE",
		"MMMISSJEEE",
	},
	ByPerimeter: 1930,
	BySides:     1206,
}

// Small is the 4×4 map with five regions.
var Small = Map{
	Name: "Small",
	Rows: []string{
		"AAAA",
		"BBCD",
		"BBCC",
		"EEEC",
	},
	ByPerimeter: 140,
	BySides:     80,
}

// Enclaves has four single-cell X regions inside one O region.
var Enclaves = Map{
	Name: "Enclaves",
	Rows: []string{
		"OOOOO",
		"OXOXO",
		"OOOOO",
		"OXOXO",
		"OOOOO",
	},
	ByPerimeter: 772,
	BySides:     436,
}

// EShape is the E-shaped region with two separate X bars.
var EShape = Map{
	Name: "EShape",
	Rows: []string{
		"EEEEE",
		"EXXXX",
		"EEEEE",
		"EXXXX",
		"EEEEE",
	},
	ByPerimeter: 692,
	BySides:     236,
}

// DiagonalHoles has two B squares touching at one corner inside A.
var DiagonalHoles = Map{
	Name: "DiagonalHoles",
	Rows: []string{
		"AAAAAA",
		"AAABBA",
		"AAABBA",
		"ABBAAA",
		"ABBAAA",
		"AAAAAA",
	},
	ByPerimeter: 1184,
	BySides:     368,
}

// LHole has an L-shaped hole made of a B square and a C cell.
var LHole = Map{
	Name: "LHole",
	Rows: []string{
		"AAAAAA",
		"AABBAA",
		"AABBAA",
		"AACAAA",
		"AAAAAA",
	},
	ByPerimeter: 25*32 + 4*8 + 1*4,
	BySides:     10*25 + 4*4 + 4*1,
}

// Corner has a single B cell in the top-left corner of A.
var Corner = Map{
	Name: "Corner",
	Rows: []string{
		"BAA",
		"AAA",
		"AAA",
	},
	ByPerimeter: 1*4 + 8*12,
	BySides:     4*1 + 6*8,
}

// All lists every map above.
var All = []Map{Larger, Small, Enclaves, EShape, DiagonalHoles, LHole, Corner}
