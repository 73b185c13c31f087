// Package raycast finds the distance from a point to the first occupied
// grid cell along a ray. It walks cell boundaries directly (grid DDA)
// rather than sampling points along the ray, so a hit distance is exact.
package raycast

import (
	"chosenoffset.com/gridcaster/internal/geom"
	"chosenoffset.com/gridcaster/internal/world"
)

// Cast traverses the grid from origin along direction and returns the
// distance (in units of direction's length) at which the ray enters the
// first occupied cell. ok is false if no wall is entered within maxDepth
// boundary crossings.
//
// direction must be non-zero. It does not need to be unit length for the
// axis-aligned branch, but callers that want distances in grid units
// should pass a unit vector.
func Cast(walls *world.WallMap, origin, direction geom.Vec2, maxDepth int) (float64, bool) {
	if direction.X == 0 || direction.Y == 0 {
		return castAxisAligned(walls, origin, direction, maxDepth)
	}

	startCell := world.CellAt(origin)
	frac := origin.Fract()

	// xIntercept maps a vertical-boundary index (counted from the start
	// cell) to the ray parameter at which the ray crosses it. A negative
	// direction crosses the near edge of the cell, hence the +1 shift.
	xIntercept := func(x int) float64 {
		a := float64(x) - frac.X
		if direction.X < 0 {
			a += 1.0
		}
		return a / direction.X
	}
	yIntercept := func(y int) float64 {
		a := float64(y) - frac.Y
		if direction.Y < 0 {
			a += 1.0
		}
		return a / direction.Y
	}

	stepX := sign(direction.X)
	stepY := sign(direction.Y)
	cell := startCell

	for i := 0; i < maxDepth; i++ {
		stepsX := cell.X - startCell.X
		stepsY := cell.Y - startCell.Y

		xDist := xIntercept(stepsX + stepX)
		yDist := yIntercept(stepsY + stepY)

		// Ties (a ray through a grid corner) step on y.
		var distance float64
		if xDist < yDist {
			cell.X += stepX
			distance = xDist
		} else {
			cell.Y += stepY
			distance = yDist
		}

		if walls.Contains(cell) {
			return distance, true
		}
	}

	return 0, false
}

// castAxisAligned handles rays travelling along a single axis. Stepping
// degenerates to advancing one cell index: the first crossing covers the
// fractional remainder of the start cell, every later crossing adds a
// full cell.
func castAxisAligned(walls *world.WallMap, origin, direction geom.Vec2, maxDepth int) (float64, bool) {
	cell := world.CellAt(origin)

	// Distance to the first boundary along the ray's axis.
	rayLength := 1.0 - origin.Fract().Dot(direction)
	if direction.X < 0 || direction.Y < 0 {
		rayLength = origin.Fract().Dot(direction.Scale(-1))
	}

	stepX := sign(direction.X)
	stepY := sign(direction.Y)

	for i := 0; i < maxDepth; i++ {
		cell.X += stepX
		cell.Y += stepY

		if walls.Contains(cell) {
			return rayLength, true
		}

		rayLength += 1.0
	}

	return 0, false
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
