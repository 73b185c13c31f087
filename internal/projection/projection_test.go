package projection

import (
	"math"
	"testing"

	"chosenoffset.com/gridcaster/internal/geom"
	"chosenoffset.com/gridcaster/internal/player"
	"chosenoffset.com/gridcaster/internal/world"
)

const tolerance = 1e-9

func loopWorld() *world.WallMap {
	return world.DefaultWorld().Walls
}

func defaultProjector() Projector {
	return Projector{FOV: math.Pi / 2, MaxDepth: 100}
}

func TestCenterColumnHasNoFisheyeCorrection(t *testing.T) {
	// Column screenWidth/2 looks along the facing axis (angle 0), so the
	// projected height must be exactly screenHeight / distance.
	p := defaultProjector()
	pose := &player.Pose{Position: geom.Vec2{X: 0, Y: 0}, Rotation: 0}

	slice, ok := p.Project(pose, loopWorld(), 2, 4, 600)
	if !ok {
		t.Fatal("Expected center column to hit the loop wall")
	}

	// The wall cell (3,0) is three units along +x from the origin.
	if slice.HalfHeight != 600.0/3/2 {
		t.Errorf("Expected half-height exactly 100, got %g", slice.HalfHeight)
	}
}

func TestColumnAngleIsArctan(t *testing.T) {
	p := defaultProjector()

	// focal = 4 / (2 tan(π/4)) = 2, so column 0 sits at atan(-1).
	if got := p.Angle(0, 4); math.Abs(got+math.Pi/4) > tolerance {
		t.Errorf("Expected -π/4, got %g", got)
	}
	if got := p.Angle(2, 4); got != 0 {
		t.Errorf("Expected center column angle exactly 0, got %g", got)
	}
}

func TestSliceXIsCenteredOffset(t *testing.T) {
	p := defaultProjector()
	pose := &player.Pose{Position: geom.Vec2{X: 0, Y: 0}, Rotation: 0}

	slice, ok := p.Project(pose, loopWorld(), 0, 4, 600)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if slice.X != 2 {
		t.Errorf("Expected X = screenWidth/2 - column = 2, got %g", slice.X)
	}
}

func TestNoHitEmitsNoSlice(t *testing.T) {
	p := defaultProjector()
	pose := &player.Pose{Position: geom.Vec2{X: 0, Y: 0}, Rotation: 0}

	if _, ok := p.Project(pose, world.NewWallMap(nil), 0, 4, 600); ok {
		t.Error("Expected no slice on an empty map")
	}
}

func TestSampleLoopHitsEveryColumn(t *testing.T) {
	// The sample loop fully encloses the spawn point, so every column of
	// a 4-wide viewport must find a wall.
	p := defaultProjector()
	pose := &player.Pose{Position: geom.Vec2{X: 0, Y: 0}, Rotation: 0}
	walls := loopWorld()

	for col := 0; col < 4; col++ {
		if _, ok := p.Project(pose, walls, col, 4, 600); !ok {
			t.Errorf("Column %d found no wall inside a closed loop", col)
		}
	}
}

// squareRing is a 1-cell-thick square loop of walls, mirror-symmetric
// about the line y = 0.5.
func squareRing() *world.WallMap {
	var cells []world.Cell
	for i := -3; i <= 3; i++ {
		cells = append(cells,
			world.Cell{X: i, Y: -3}, world.Cell{X: i, Y: 3},
			world.Cell{X: -3, Y: i}, world.Cell{X: 3, Y: i})
	}
	return world.NewWallMap(cells)
}

func TestSymmetricWorldGivesSymmetricColumns(t *testing.T) {
	// With the pose on the ring's symmetry line, columns 1 and 3 cast
	// mirrored rays (±atan(1/2)) and must agree exactly on height and
	// shade.
	p := defaultProjector()
	pose := &player.Pose{Position: geom.Vec2{X: 0.5, Y: 0.5}, Rotation: 0}
	walls := squareRing()

	slices := make([]Slice, 4)
	for col := 0; col < 4; col++ {
		slice, ok := p.Project(pose, walls, col, 4, 600)
		if !ok {
			t.Fatalf("Column %d found no wall inside a closed ring", col)
		}
		slices[col] = slice
	}

	if math.Abs(slices[1].HalfHeight-slices[3].HalfHeight) > tolerance {
		t.Errorf("Columns 1 and 3 are symmetric but heights differ: %g vs %g",
			slices[1].HalfHeight, slices[3].HalfHeight)
	}
	if math.Abs(slices[1].Shade-slices[3].Shade) > tolerance {
		t.Errorf("Columns 1 and 3 are symmetric but shades differ: %g vs %g",
			slices[1].Shade, slices[3].Shade)
	}

	// The center column looks straight at x=3 from x=0.5.
	if slices[2].HalfHeight != 600.0/2.5/2 {
		t.Errorf("Expected center half-height exactly 120, got %g", slices[2].HalfHeight)
	}
}

func TestShadeSaturatesNear(t *testing.T) {
	cases := []struct {
		distance float64
		want     float64
	}{
		{1, 1},   // closer than 3 units saturates
		{3, 1},   // saturation boundary
		{6, 0.5}, // reciprocal falloff
		{300, 0.01},
	}

	for _, c := range cases {
		if got := Shade(c.distance); math.Abs(got-c.want) > tolerance {
			t.Errorf("Shade(%g): expected %g, got %g", c.distance, c.want, got)
		}
	}
}

func TestShadeMonotonic(t *testing.T) {
	distances := []float64{0.5, 1, 2, 3, 4, 8, 50, 1000}
	for i := 1; i < len(distances); i++ {
		near, far := Shade(distances[i-1]), Shade(distances[i])
		if near < far {
			t.Errorf("Shade(%g)=%g < Shade(%g)=%g; nearer walls must be at least as bright",
				distances[i-1], near, distances[i], far)
		}
	}
}
