package physics

import (
	"math"

	"github.com/golang/geo/r2"
)

// SpatialGrid is a uniform grid over a bounded field for broad-phase
// collision detection. Items are inserted by position and index, then
// nearby items are found with a 3x3 neighborhood lookup.
//
// Cell size must be >= the largest center distance at which two inserted
// bodies can touch, so every contact falls within the neighborhood.
// Positions outside the bounds are clamped to the edge cells.
type SpatialGrid struct {
	origin      r2.Point
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates an empty grid covering bounds.
func NewSpatialGrid(bounds r2.Rect, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{}
	g.Reset(bounds, cellSize)
	return g
}

// Reset empties the grid and re-lays it over bounds with a new cell size,
// keeping cell memory where it can.
func (g *SpatialGrid) Reset(bounds r2.Rect, cellSize float64) {
	g.origin = bounds.Lo()
	g.cellSize = cellSize
	g.invCellSize = 1 / cellSize
	g.cols = max(int(math.Ceil(bounds.X.Length()*g.invCellSize)), 1)
	g.rows = max(int(math.Ceil(bounds.Y.Length()*g.invCellSize)), 1)

	n := g.cols * g.rows
	if cap(g.cells) < n {
		g.cells = make([]gridCell, n)
	}
	g.cells = g.cells[:n]
	g.Clear()
}

// CellSize returns the edge length of a cell.
func (g *SpatialGrid) CellSize() float64 {
	return g.cellSize
}

// Clear removes all items without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at position p.
func (g *SpatialGrid) Insert(p r2.Point, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around p. Order is by cell, then insertion within a cell. If fn returns
// true, iteration stops early.
func (g *SpatialGrid) QueryAround(p r2.Point, fn func(index int) bool) {
	col, row := g.posToCell(p)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a position to grid cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(p r2.Point) (col, row int) {
	col = int(math.Floor((p.X - g.origin.X) * g.invCellSize))
	row = int(math.Floor((p.Y - g.origin.Y) * g.invCellSize))
	return min(max(col, 0), g.cols-1), min(max(row, 0), g.rows-1)
}
