// Package world holds the static wall map and its on-disk format.
package world

import (
	"math"

	"chosenoffset.com/gridcaster/internal/geom"
)

// Cell identifies the unit grid square [X, X+1) x [Y, Y+1)
type Cell struct {
	X, Y int
}

// CellAt returns the cell containing the given continuous position
func CellAt(p geom.Vec2) Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// WallMap is an immutable set of occupied grid cells, built once at world
// creation and read-only thereafter.
type WallMap struct {
	cells map[Cell]struct{}
}

// NewWallMap builds a wall map from a list of occupied cells.
// Duplicate cells collapse into a single membership entry.
func NewWallMap(cells []Cell) *WallMap {
	m := &WallMap{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		m.cells[c] = struct{}{}
	}
	return m
}

// Contains reports whether the given cell is occupied by a wall
func (m *WallMap) Contains(c Cell) bool {
	_, ok := m.cells[c]
	return ok
}

// Len returns the number of occupied cells
func (m *WallMap) Len() int {
	return len(m.cells)
}

// Cells returns the occupied cells in unspecified order.
// Used by the debug overlay to draw the top-down map.
func (m *WallMap) Cells() []Cell {
	cells := make([]Cell, 0, len(m.cells))
	for c := range m.cells {
		cells = append(cells, c)
	}
	return cells
}
