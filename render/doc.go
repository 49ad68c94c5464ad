// Package render draws a segmented garden map as an image.
//
// Every cell is filled with a colour chosen from the symbol, so all
// regions of one plant share a colour, and every side found by the sides
// package is stroked along the region's outline. Counting the strokes
// around a region gives its side count.
//
// Drawing uses github.com/fogleman/gg; colours come from
// golang.org/x/image/colornames.
package render
