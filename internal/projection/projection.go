// Package projection turns ray hits into vertical wall slices, one per
// screen column.
package projection

import (
	"math"

	"chosenoffset.com/gridcaster/internal/geom"
	"chosenoffset.com/gridcaster/internal/player"
	"chosenoffset.com/gridcaster/internal/raycast"
	"chosenoffset.com/gridcaster/internal/world"
)

// Slice is one projected wall column in centered view coordinates:
// x grows leftward from the screen center, y is symmetric about the
// horizon. The consumer converts to its surface's coordinate system.
type Slice struct {
	X          float64 // horizontal offset: screenWidth/2 - column
	HalfHeight float64 // the slice spans [-HalfHeight, +HalfHeight]
	Shade      float64 // grayscale lightness in [0, 1], 1 = nearest
}

// Projector casts one ray per screen column and projects the hit into a
// wall slice. It is stateless; every call reads the current pose and
// viewport dimensions so window resizes take effect immediately.
type Projector struct {
	FOV      float64 // horizontal field of view, radians
	MaxDepth int     // cast depth bound, grid boundary crossings
}

// Angle returns the view-space angle of a column. The mapping is
// angle-correct (atan over a focal plane), not a linear angular sweep,
// which keeps wall verticals straight at wide fields of view.
func (p *Projector) Angle(column int, screenWidth float64) float64 {
	focal := screenWidth / (2 * math.Tan(p.FOV/2))
	return math.Atan((float64(column) - screenWidth/2) / focal)
}

// Project casts the ray for a single column and returns its wall slice.
// ok is false when the ray exhausts the depth bound without a hit; the
// caller skips that column rather than drawing anything.
func (p *Projector) Project(pose *player.Pose, walls *world.WallMap, column int, screenWidth, screenHeight float64) (Slice, bool) {
	angle := p.Angle(column, screenWidth)
	direction := geom.FromAngle(angle).Rotate(pose.Rotation)

	distance, ok := raycast.Cast(walls, pose.Position, direction, p.MaxDepth)
	if !ok {
		return Slice{}, false
	}

	// Fisheye correction: project the hit distance onto the view-forward
	// axis so equidistant walls render as straight verticals.
	corrected := distance * math.Cos(angle)

	return Slice{
		X:          screenWidth/2 - float64(column),
		HalfHeight: screenHeight / corrected / 2,
		Shade:      Shade(corrected),
	}, true
}

// Ray returns the world-space ray direction for a column. The debug
// overlay uses this to draw the cast rays top-down.
func (p *Projector) Ray(pose *player.Pose, column int, screenWidth float64) geom.Vec2 {
	return geom.FromAngle(p.Angle(column, screenWidth)).Rotate(pose.Rotation)
}

// Shade maps a corrected hit distance to a grayscale lightness. The
// reciprocal falloff makes nearer walls brighter; anything closer than 3
// units saturates to full brightness.
func Shade(distance float64) float64 {
	shade := 3 / distance
	if shade > 1 {
		shade = 1
	}
	return shade
}
