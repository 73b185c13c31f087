// Package player holds the player pose and its per-frame input update.
package player

import (
	"chosenoffset.com/gridcaster/internal/geom"
)

// Pose is the player's continuous position (grid units) and facing angle.
// Rotation is kept normalized into [0, 2π) after every update.
type Pose struct {
	Position geom.Vec2
	Rotation float64
}

// Intents is the set of movement and turn inputs active this frame.
// It is polled state, not an event queue; any subset may be active at once.
type Intents struct {
	TurnLeft    bool
	TurnRight   bool
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
}

// Update advances the pose by dt seconds of the given intents.
// Turning is applied before movement, so movement uses the new facing.
// Movement intents are summed in the player's local frame (forward = +x,
// strafe-left = +y), normalized so diagonals are not faster, rotated into
// world space and scaled by speed*dt. Perfectly cancelling intents move
// nothing.
func (p *Pose) Update(intents Intents, dt, speed, turnSpeed float64) {
	if intents.TurnLeft {
		p.Rotation += turnSpeed * dt
	}
	if intents.TurnRight {
		p.Rotation -= turnSpeed * dt
	}
	p.Rotation = geom.NormalizeAngle(p.Rotation)

	var local geom.Vec2
	if intents.Forward {
		local = local.Add(geom.Vec2{X: 1, Y: 0})
	}
	if intents.Backward {
		local = local.Add(geom.Vec2{X: -1, Y: 0})
	}
	if intents.StrafeLeft {
		local = local.Add(geom.Vec2{X: 0, Y: 1})
	}
	if intents.StrafeRight {
		local = local.Add(geom.Vec2{X: 0, Y: -1})
	}

	if local.Len() > 0 {
		step := local.Normalize().Rotate(p.Rotation).Scale(speed * dt)
		p.Position = p.Position.Add(step)
	}
}
