// Package game owns the per-frame update/draw cycle: it polls input into
// movement intents, advances the player pose, and renders one wall slice
// per screen column.
package game

import (
	"chosenoffset.com/gridcaster/internal/config"
	"chosenoffset.com/gridcaster/internal/geom"
	"chosenoffset.com/gridcaster/internal/player"
	"chosenoffset.com/gridcaster/internal/projection"
	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/world"
)

// Game holds all game state and logic.
type Game struct {
	Config    *config.Config
	World     *world.World
	Pose      player.Pose
	Projector projection.Projector
	Renderer  render.Renderer
	InputMgr  render.InputManager
}

// NewGame creates a game with the player at the world's spawn point.
func NewGame(cfg *config.Config, w *world.World, renderer render.Renderer, inputMgr render.InputManager) *Game {
	return &Game{
		Config: cfg,
		World:  w,
		Pose: player.Pose{
			Position: geom.Vec2{X: w.Data.PlayerSpawn.X, Y: w.Data.PlayerSpawn.Y},
			Rotation: geom.NormalizeAngle(w.Data.PlayerSpawn.Facing),
		},
		Projector: projection.Projector{
			FOV:      cfg.FieldOfView,
			MaxDepth: cfg.MaxRaycastDepth,
		},
		Renderer: renderer,
		InputMgr: inputMgr,
	}
}

// Update polls input and advances the player pose by dt seconds. It runs
// to completion before Draw starts, so the draw pass always sees a
// settled pose.
func (g *Game) Update(dt float64) error {
	g.Pose.Update(g.pollIntents(), dt, g.Config.PlayerSpeed, g.Config.PlayerTurnSpeed)
	return nil
}

// pollIntents reads the current key state into movement intents.
// Arrows turn, WASD moves and strafes.
func (g *Game) pollIntents() player.Intents {
	return player.Intents{
		TurnLeft:    g.InputMgr.IsKeyPressed(render.KeyLeft),
		TurnRight:   g.InputMgr.IsKeyPressed(render.KeyRight),
		Forward:     g.InputMgr.IsKeyPressed(render.KeyW),
		Backward:    g.InputMgr.IsKeyPressed(render.KeyS),
		StrafeLeft:  g.InputMgr.IsKeyPressed(render.KeyA),
		StrafeRight: g.InputMgr.IsKeyPressed(render.KeyD),
	}
}

// Layout follows the outside size so the viewport tracks window resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
