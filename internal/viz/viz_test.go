package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakecoffman/cp"
	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/input"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.IsSet(3, 3) || c.IsSet(1, 1) {
		t.Error("IsSet disagrees with Set")
	}

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("expected clear canvas")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 0, 19, 7)
	if !c.IsSet(0, 0) || !c.IsSet(19, 7) {
		t.Error("expected both endpoints set")
	}
}

func TestCanvasDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)
	for _, p := range [][2]int{{28, 20}, {12, 20}, {20, 28}, {20, 12}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected %v on the circle", p)
		}
	}
	if c.IsSet(20, 20) {
		t.Error("expected hollow circle")
	}
}

func TestCanvasString(t *testing.T) {
	out := NewCanvas(4, 3).String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if len([]rune(lines[0])) != 4 {
		t.Errorf("expected 4 columns, got %d", len([]rune(lines[0])))
	}
}

func TestDrawerProjectFlipsY(t *testing.T) {
	c := NewCanvas(60, 30)
	d := NewDrawer(c, 720, 720)

	_, top := d.Project(cp.Vector{X: 360, Y: 720})
	_, bottom := d.Project(cp.Vector{X: 360, Y: 0})
	if top >= bottom {
		t.Errorf("expected world top above world bottom, got %d and %d", top, bottom)
	}

	x, y := d.Project(cp.Vector{X: 360, Y: 360})
	if absInt(x-60) > 1 || absInt(y-60) > 1 {
		t.Errorf("expected centre near (60, 60), got (%d, %d)", x, y)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig(), ThemeMinimal)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelRendersPendulum(t *testing.T) {
	m := newTestModel(t)
	m.draw()

	// bob at (360, 50) sits near the bottom of the canvas
	x, y := m.drawer.Project(cp.Vector{X: 360, Y: 50})
	lit := 0
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if m.canvas.IsSet(x+dx, y+dy) {
				lit++
			}
		}
	}
	if lit < 4 {
		t.Errorf("expected the bob drawn, got %d lit pixels", lit)
	}

	view := m.View()
	if !strings.Contains(view, "Angle:    0°") {
		t.Errorf("expected the angle label in the view")
	}
}

func TestModelTicksAdvanceClock(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(0, 0)

	m, cmd := update(m, TickMsg(start))
	if cmd == nil {
		t.Fatal("expected the next tick scheduled")
	}
	if m.Simulation().World().Steps() != 0 {
		t.Error("first tick only primes the clock")
	}

	m, _ = update(m, TickMsg(start.Add(100*time.Millisecond)))
	if got := m.Simulation().World().Steps(); got != 10 {
		t.Errorf("expected 10 steps, got %d", got)
	}
	if len(m.history.angles) != 10 {
		t.Errorf("expected 10 recorded angles, got %d", len(m.history.angles))
	}
}

func TestModelKeysPush(t *testing.T) {
	for _, tc := range []struct {
		key  string
		sign float64
	}{
		{"left", -1},
		{"h", -1},
		{"right", 1},
		{"l", 1},
	} {
		t.Run(tc.key, func(t *testing.T) {
			m := newTestModel(t)
			start := time.Unix(0, 0)
			m, _ = update(m, TickMsg(start))
			m, _ = update(m, key(tc.key))
			m, _ = update(m, TickMsg(start.Add(10*time.Millisecond)))

			v := m.Simulation().Snapshot().Velocity
			if v.X*tc.sign <= 0 {
				t.Errorf("expected velocity x with sign %v, got %f", tc.sign, v.X)
			}
		})
	}
}

func TestModelPressExpires(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, key("left"))
	if !m.keys.IsHeld(input.Left) {
		t.Fatal("expected left held after press")
	}

	start := time.Unix(0, 0)
	m, _ = update(m, TickMsg(start))
	m, _ = update(m, TickMsg(start.Add(pressHold+10*time.Millisecond)))
	if m.keys.IsHeld(input.Left) {
		t.Error("expected the press to expire")
	}
}

func TestModelReset(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(0, 0)
	m, _ = update(m, key("right"))
	m, _ = update(m, TickMsg(start))
	m, _ = update(m, TickMsg(start.Add(200*time.Millisecond)))

	m, _ = update(m, key("r"))
	if m.Simulation().World().Steps() != 0 {
		t.Error("expected a fresh world after reset")
	}
	if m.Simulation().Model().Angle() != 0 {
		t.Errorf("expected rest angle, got %f", m.Simulation().Model().Angle())
	}
	if len(m.history.angles) != 0 {
		t.Error("expected cleared history")
	}
	if m.keys.IsHeld(input.Right) {
		t.Error("expected keys released")
	}
}

func TestModelThemeAndQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, key("t"))
	if m.theme.Name != ThemeCyberpunk.Name {
		t.Errorf("expected cyberpunk after minimal, got %s", m.theme.Name)
	}

	_, cmd := update(m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestGetThemeFallback(t *testing.T) {
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("expected fallback to the first theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("expected one name per theme")
	}
}
