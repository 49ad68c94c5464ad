// File: types.go
// Role: Graph type, sentinel errors and constructor.

package adjacency

import (
	"errors"
	"sync"

	"github.com/katalvlaran/gardenplot/region"
)

// Outside is the vertex ID of the area beyond the grid border.
const Outside = -1

// Sentinel errors for region graph operations.
var (
	// ErrGridNil indicates a nil grid was passed to Build.
	ErrGridNil = errors.New("adjacency: grid is nil")

	// ErrUncovered indicates some grid cell belongs to no region.
	ErrUncovered = errors.New("adjacency: regions do not cover the grid")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("adjacency: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was requested.
	ErrLoopNotAllowed = errors.New("adjacency: self-loop not allowed")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("adjacency: weight must be positive")
)

// Graph is an undirected, weighted region adjacency graph.
//
// regions maps vertex ID to its region (nil for Outside).
// adj[a][b] == adj[b][a] is the number of unit edges shared by a and b.
type Graph struct {
	mu      sync.RWMutex
	regions map[int]*region.Region
	adj     map[int]map[int]int
}

// New returns an empty Graph holding only the Outside vertex.
func New() *Graph {
	return &Graph{
		regions: map[int]*region.Region{Outside: nil},
		adj:     map[int]map[int]int{Outside: {}},
	}
}
