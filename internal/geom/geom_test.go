package geom

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-7 * math.Pi / 2, math.Pi / 2},
	}

	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if math.Abs(got-c.want) > tolerance {
			t.Errorf("NormalizeAngle(%g): expected %g, got %g", c.in, c.want, got)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%g) = %g outside [0, 2π)", c.in, got)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(math.Pi / 2)
	if math.Abs(v.X) > tolerance || math.Abs(v.Y-1) > tolerance {
		t.Errorf("Expected (0, 1), got (%g, %g)", v.X, v.Y)
	}
}

func TestRotateZeroIsExact(t *testing.T) {
	v := Vec2{X: 1, Y: 0}.Rotate(0)
	if v.X != 1 || v.Y != 0 {
		t.Errorf("Rotation by zero must be exact, got (%g, %g)", v.X, v.Y)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if math.Abs(v.Len()-1) > tolerance {
		t.Errorf("Expected unit length, got %g", v.Len())
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("Normalizing zero must return zero, got (%g, %g)", zero.X, zero.Y)
	}
}

func TestFractNegative(t *testing.T) {
	f := Vec2{X: -0.3, Y: -2.75}.Fract()
	if math.Abs(f.X-0.7) > tolerance || math.Abs(f.Y-0.25) > tolerance {
		t.Errorf("Expected (0.7, 0.25), got (%g, %g)", f.X, f.Y)
	}
	if f.X < 0 || f.X >= 1 || f.Y < 0 || f.Y >= 1 {
		t.Errorf("Fract components outside [0, 1): (%g, %g)", f.X, f.Y)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(0)
	if v.X != 1 || v.Y != 0 {
		t.Errorf("Expected (1, 0), got (%g, %g)", v.X, v.Y)
	}
}
