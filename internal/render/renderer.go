// Package render abstracts the rendering backend. Game logic draws
// through these interfaces so backends (desktop window, terminal) can be
// swapped without touching the casting or projection code.
package render

import "image/color"

// Renderer is the drawing interface the game uses. All coordinates are
// pixels (or terminal cells) with the origin at the top-left.
type Renderer interface {
	// StrokeLine draws a line segment with the given width and color.
	StrokeLine(dst Image, x1, y1, x2, y2, strokeWidth float32, clr color.Color)

	// StrokeRect draws a rectangle outline.
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)

	// FillCircle draws a filled circle.
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// DrawText draws diagnostic text at the given position.
	DrawText(dst Image, text string, x, y int)
}

// Image represents a drawable surface.
type Image interface {
	// Size returns the surface dimensions. Queried every frame so the
	// draw path follows window resizes.
	Size() (width, height int)

	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)
}

// Game is the per-frame callback pair driven by an Engine.
type Game interface {
	// Update advances game state by dt seconds of elapsed wall time.
	Update(dt float64) error

	// Draw renders the current state onto the screen surface.
	Draw(screen Image)

	// Layout maps the outside (window) size to the rendered size.
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// InputManager polls the current input state.
type InputManager interface {
	// IsKeyPressed returns whether the specified key is currently held.
	IsKeyPressed(key Key) bool
}

// Engine owns the window (or terminal) and drives the frame loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)

	// Run drives the game loop until the game exits or errors.
	Run(game Game) error
}

// Key identifies a keyboard key the game cares about.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)
