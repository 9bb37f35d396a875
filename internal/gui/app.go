package gui

import (
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/input"
	"github.com/san-kum/pendulum/internal/sim"
)

var (
	ColBg   = rl.Black
	ColText = rl.White
)

// Keyboard polls the arrow keys of the open window.
type Keyboard struct{}

func (Keyboard) IsHeld(k input.Key) bool {
	switch k {
	case input.Left:
		return rl.IsKeyDown(rl.KeyLeft)
	case input.Right:
		return rl.IsKeyDown(rl.KeyRight)
	}
	return false
}

// Window shows one Simulation in a raylib window.
type Window struct {
	cfg    *config.Config
	sim    *sim.Simulation
	clock  *sim.Clock
	drawer *Drawer
	font   rl.Font
}

// NewWindow builds the simulation the window will show. No raylib call is
// made until Run.
func NewWindow(cfg *config.Config) (*Window, error) {
	s, err := sim.New(cfg, Keyboard{})
	if err != nil {
		return nil, err
	}
	cfg = s.Config()
	return &Window{
		cfg:    cfg,
		sim:    s,
		clock:  sim.NewClock(sim.IntervalFromRate(cfg.Physics.Rate)),
		drawer: NewDrawer(cfg.Window.Height),
	}, nil
}

func (w *Window) Simulation() *sim.Simulation { return w.sim }

// Run opens the window and blocks until it is closed. Updates are
// scheduled at the physics rate independently of the frame rate.
func (w *Window) Run() error {
	wc := w.cfg.Window
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(wc.Width), int32(wc.Height), wc.Caption)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(wc.FPS))

	w.font = loadFont(wc.FontPath, wc.FontSize)
	defer rl.UnloadFont(w.font)

	for !rl.WindowShouldClose() {
		elapsed := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		if _, err := w.clock.Advance(elapsed, w.sim.Update); err != nil {
			rl.TraceLog(rl.LogError, "simulation stopped: %v", err)
			return err
		}
		w.OnDraw()
	}
	return nil
}

// OnDraw clears the frame, debug-draws the world and overlays the angle.
func (w *Window) OnDraw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	w.sim.World().Render(w.drawer)
	w.drawText(w.sim.Label(), 5, 1, w.cfg.Window.FontSize, ColText)
	rl.EndDrawing()
}

func (w *Window) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(w.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// Run opens a window for cfg and blocks until it is closed.
func Run(cfg *config.Config) error {
	w, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	return w.Run()
}

// labelRunes are the glyphs the overlay needs: printable ASCII and the
// degree sign, which raylib's default font lacks.
func labelRunes() []rune {
	runes := make([]rune, 0, 96)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, '°')
}

// loadFont loads the TTF at path rasterised at twice the label size and
// falls back to raylib's default font when the file is missing.
func loadFont(path string, size int) rl.Font {
	if _, err := os.Stat(path); err != nil {
		rl.TraceLog(rl.LogWarning, "font %s unavailable, using default: %v", path, err)
		return rl.GetFontDefault()
	}
	runes := labelRunes()
	font := rl.LoadFontEx(path, int32(size*2), runes, int32(len(runes)))
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}
