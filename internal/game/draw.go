package game

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/colornames"

	"chosenoffset.com/gridcaster/internal/geom"
	"chosenoffset.com/gridcaster/internal/projection"
	"chosenoffset.com/gridcaster/internal/raycast"
	"chosenoffset.com/gridcaster/internal/render"
)

// maxConcurrentCasts bounds the goroutines casting columns in parallel.
const maxConcurrentCasts = 100

// missRayLength is how far the debug overlay extends rays that hit nothing.
const missRayLength = 100.0

// Draw renders the frame. Viewport dimensions are read from the screen
// every frame, never cached, so resizes take effect immediately.
func (g *Game) Draw(screen render.Image) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	screen.Fill(color.Black)

	if g.Config.DebugOverlay {
		g.drawOverlay(screen, w, h)
		return
	}

	for _, s := range g.castColumns(w, h) {
		if !s.ok {
			// Open sight-line: nothing to draw for this column.
			continue
		}

		// Slice.X is the centered view offset (w/2 - col); shifting it by
		// w/2 - 1 lands on the right-growing screen axis with the last
		// view column on-surface.
		x := float32(s.slice.X + float64(w)/2 - 1)
		yTop := float32(float64(h)/2 - s.slice.HalfHeight)
		yBottom := float32(float64(h)/2 + s.slice.HalfHeight)

		gray := uint8(math.Round(255 * s.slice.Shade))
		g.Renderer.StrokeLine(screen, x, yTop, x, yBottom, 1,
			color.RGBA{R: gray, G: gray, B: gray, A: 255})
	}
}

type columnSlice struct {
	slice projection.Slice
	ok    bool
}

// castColumns projects every screen column. Columns are independent
// (read-only pose and wall map), so the casts run concurrently under a
// bounded semaphore; draw calls stay on the caller's goroutine.
func (g *Game) castColumns(w, h int) []columnSlice {
	results := make([]columnSlice, w)
	sem := make(chan struct{}, maxConcurrentCasts)
	var wg sync.WaitGroup

	for col := 0; col < w; col++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(col int) {
			defer wg.Done()
			results[col].slice, results[col].ok =
				g.Projector.Project(&g.Pose, g.World.Walls, col, float64(w), float64(h))
			<-sem
		}(col)
	}

	wg.Wait()
	return results
}

// drawOverlay renders the top-down diagnostic view: world axes, wall
// cells, the player marker, and every cast ray (green on hit, red on
// miss).
func (g *Game) drawOverlay(screen render.Image, w, h int) {
	scale := float64(min(w, h)) / 16
	toScreen := func(p geom.Vec2) (float32, float32) {
		return float32(float64(w)/2 + p.X*scale), float32(float64(h)/2 - p.Y*scale)
	}

	// World axes, one unit long.
	ox, oy := toScreen(geom.Vec2{})
	ax, ay := toScreen(geom.Vec2{X: 1})
	bx, by := toScreen(geom.Vec2{Y: 1})
	g.Renderer.StrokeLine(screen, ox, oy, ax, ay, 1, colornames.Gray)
	g.Renderer.StrokeLine(screen, ox, oy, bx, by, 1, colornames.Gray)

	// Wall cells.
	for _, c := range g.World.Walls.Cells() {
		left, top := toScreen(geom.Vec2{X: float64(c.X), Y: float64(c.Y) + 1})
		g.Renderer.StrokeRect(screen, left, top, float32(scale), float32(scale), 1, colornames.White)
	}

	// Rays.
	for col := 0; col < w; col++ {
		dir := g.Projector.Ray(&g.Pose, col, float64(w))
		px, py := toScreen(g.Pose.Position)
		if dist, ok := raycast.Cast(g.World.Walls, g.Pose.Position, dir, g.Projector.MaxDepth); ok {
			hx, hy := toScreen(g.Pose.Position.Add(dir.Scale(dist)))
			g.Renderer.StrokeLine(screen, px, py, hx, hy, 1, colornames.Green)
		} else {
			mx, my := toScreen(g.Pose.Position.Add(dir.Scale(missRayLength)))
			g.Renderer.StrokeLine(screen, px, py, mx, my, 1, colornames.Red)
		}
	}

	// Player marker and facing line.
	px, py := toScreen(g.Pose.Position)
	fx, fy := toScreen(g.Pose.Position.Add(geom.FromAngle(g.Pose.Rotation).Scale(1.0 / 3)))
	g.Renderer.FillCircle(screen, px, py, float32(scale/6), colornames.Yellow)
	g.Renderer.StrokeLine(screen, px, py, fx, fy, 1, colornames.Blue)

	g.Renderer.DrawText(screen,
		fmt.Sprintf("pos=(%.2f, %.2f) rot=%.2f", g.Pose.Position.X, g.Pose.Position.Y, g.Pose.Rotation),
		2, 2)
}
