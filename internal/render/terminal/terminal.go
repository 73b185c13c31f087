// Package terminal implements the render interfaces on a text terminal
// using tcell. Wall slices come out as a glyph ramp: denser glyphs for
// brighter (nearer) columns.
package terminal

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jdeal-mediamath/clockwork"

	"chosenoffset.com/gridcaster/internal/render"
)

const (
	tick = 33 * time.Millisecond

	// keyHold is how long a key event counts as "held". Terminal input is
	// event-based with autorepeat, so a held key keeps refreshing its
	// timestamp while a released one expires.
	keyHold = 150 * time.Millisecond
)

// shadeRamp orders glyphs from dimmest to brightest.
var shadeRamp = []rune{' ', '·', '░', '▒', '▓', '█'}

// shadeRune picks the ramp glyph for a color's luminance.
func shadeRune(clr color.Color) rune {
	r, g, b, _ := clr.RGBA()
	lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 0xffff
	switch {
	case lum >= 0.8:
		return shadeRamp[5]
	case lum >= 0.6:
		return shadeRamp[4]
	case lum >= 0.35:
		return shadeRamp[3]
	case lum >= 0.15:
		return shadeRamp[2]
	case lum > 0:
		return shadeRamp[1]
	default:
		return shadeRamp[0]
	}
}

func styleFor(clr color.Color) tcell.Style {
	r, g, b, _ := clr.RGBA()
	fg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	return tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(fg)
}

// Buffer is an off-screen cell grid implementing render.Image.
type Buffer struct {
	width  int
	height int
	runes  []rune
	styles []tcell.Style
}

// NewBuffer creates a buffer with the given dimensions in terminal cells.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		runes:  make([]rune, width*height),
		styles: make([]tcell.Style, width*height),
	}
	b.Fill(color.Black)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Fill fills the entire buffer with the given color.
func (b *Buffer) Fill(clr color.Color) {
	r := shadeRune(clr)
	style := styleFor(clr)
	for i := range b.runes {
		b.runes[i] = r
		b.styles[i] = style
	}
}

func (b *Buffer) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.runes[y*b.width+x] = r
	b.styles[y*b.width+x] = style
}

// TerminalRenderer implements the Renderer interface on cell buffers.
type TerminalRenderer struct{}

// NewRenderer creates a new terminal renderer.
func NewRenderer() render.Renderer {
	return &TerminalRenderer{}
}

// StrokeLine draws a line of shade glyphs. Stroke width below one cell is
// drawn one cell wide.
func (r *TerminalRenderer) StrokeLine(dst render.Image, x1, y1, x2, y2, strokeWidth float32, clr color.Color) {
	buf := dst.(*Buffer)
	glyph := shadeRune(clr)
	style := styleFor(clr)

	// Bresenham over cells.
	ix1, iy1 := int(x1), int(y1)
	ix2, iy2 := int(x2), int(y2)
	dx := abs(ix2 - ix1)
	dy := -abs(iy2 - iy1)
	sx, sy := 1, 1
	if ix1 > ix2 {
		sx = -1
	}
	if iy1 > iy2 {
		sy = -1
	}
	err := dx + dy
	x, y := ix1, iy1
	for {
		buf.set(x, y, glyph, style)
		if x == ix2 && y == iy2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// StrokeRect draws a rectangle outline.
func (r *TerminalRenderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	r.StrokeLine(dst, x, y, x+width, y, strokeWidth, clr)
	r.StrokeLine(dst, x, y+height, x+width, y+height, strokeWidth, clr)
	r.StrokeLine(dst, x, y, x, y+height, strokeWidth, clr)
	r.StrokeLine(dst, x+width, y, x+width, y+height, strokeWidth, clr)
}

// FillCircle draws a filled circle of shade glyphs.
func (r *TerminalRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	buf := dst.(*Buffer)
	glyph := shadeRune(clr)
	style := styleFor(clr)
	ir := int(radius)
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if dx*dx+dy*dy <= ir*ir {
				buf.set(int(x)+dx, int(y)+dy, glyph, style)
			}
		}
	}
}

// DrawText writes diagnostic text at the given cell position.
func (r *TerminalRenderer) DrawText(dst render.Image, text string, x, y int) {
	buf := dst.(*Buffer)
	style := styleFor(color.White)
	for i, c := range text {
		buf.set(x+i, y, c, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TerminalInputManager tracks key state from polled terminal events.
type TerminalInputManager struct {
	pressed map[render.Key]time.Time
	now     time.Time
}

// NewInputManager creates a terminal input manager. It must be shared
// with the engine that feeds it key events.
func NewInputManager() *TerminalInputManager {
	return &TerminalInputManager{pressed: make(map[render.Key]time.Time)}
}

// IsKeyPressed returns whether the specified key counts as held.
func (m *TerminalInputManager) IsKeyPressed(key render.Key) bool {
	at, ok := m.pressed[key]
	return ok && m.now.Sub(at) < keyHold
}

func (m *TerminalInputManager) press(key render.Key, at time.Time) {
	m.pressed[key] = at
}

func (m *TerminalInputManager) tick(now time.Time) {
	m.now = now
}

// TerminalEngine implements the Engine interface using tcell.
type TerminalEngine struct {
	clock clockwork.Clock
	input *TerminalInputManager
}

// NewEngine creates a terminal engine driving the given input manager.
func NewEngine(clock clockwork.Clock, input *TerminalInputManager) render.Engine {
	return &TerminalEngine{clock: clock, input: input}
}

// SetWindowSize is a no-op: the terminal decides its own size.
func (e *TerminalEngine) SetWindowSize(width, height int) {}

// SetWindowTitle is a no-op.
func (e *TerminalEngine) SetWindowTitle(title string) {}

// Run drives the fixed-tick frame loop until Escape or an update error.
func (e *TerminalEngine) Run(game render.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var buf *Buffer
	last := e.clock.Now()

	for {
		now := e.clock.Now()

		// Drain pending input without blocking the frame.
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if quit := e.handleKey(ev, now); quit {
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				break drain
			}
		}
		e.input.tick(now)

		dt := now.Sub(last).Seconds()
		last = now
		if err := game.Update(dt); err != nil {
			return err
		}

		outsideW, outsideH := screen.Size()
		w, h := game.Layout(outsideW, outsideH)
		if buf == nil || buf.width != w || buf.height != h {
			buf = NewBuffer(w, h)
		} else {
			buf.Fill(color.Black)
		}
		game.Draw(buf)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				screen.SetContent(x, y, buf.runes[y*w+x], nil, buf.styles[y*w+x])
			}
		}
		screen.Show()

		<-ticker.C
	}
}

// handleKey records a key press; returns true when the game should quit.
func (e *TerminalEngine) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		e.input.press(render.KeyUp, now)
	case tcell.KeyDown:
		e.input.press(render.KeyDown, now)
	case tcell.KeyLeft:
		e.input.press(render.KeyLeft, now)
	case tcell.KeyRight:
		e.input.press(render.KeyRight, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			e.input.press(render.KeyW, now)
		case 'a', 'A':
			e.input.press(render.KeyA, now)
		case 's', 'S':
			e.input.press(render.KeyS, now)
		case 'd', 'D':
			e.input.press(render.KeyD, now)
		}
	}
	return false
}
