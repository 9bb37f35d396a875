package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pendulum/internal/config"
	"github.com/san-kum/pendulum/internal/input"
	"github.com/san-kum/pendulum/internal/sim"
)

const (
	width           = 60
	height          = 30
	historyCapacity = 300

	// pressHold is how long a single terminal key press counts as held.
	pressHold = 50 * time.Millisecond
)

type TickMsg time.Time

// history keeps the most recent angles for the graph.
type history struct {
	angles []float64
}

func (h *history) OnStep(s sim.Snapshot) {
	h.angles = append(h.angles, s.Angle)
	if len(h.angles) > historyCapacity {
		h.angles = h.angles[len(h.angles)-historyCapacity:]
	}
}

func (h *history) reset() { h.angles = h.angles[:0] }

// Model drives one Simulation from bubbletea ticks and renders it on a
// braille canvas.
type Model struct {
	sim     *sim.Simulation
	clock   *sim.Clock
	keys    *input.Latch
	canvas  *Canvas
	drawer  *Drawer
	history *history
	theme   Theme
	styles  styles
	frame   time.Duration
	last    time.Time
	err     error
}

func NewModel(cfg *config.Config, theme Theme) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}

	clock := sim.NewClock(sim.IntervalFromRate(cfg.Physics.Rate))
	keys := input.NewLatch(int(pressHold / clock.Interval()))
	s, err := sim.New(cfg, keys)
	if err != nil {
		return Model{}, err
	}

	h := &history{angles: make([]float64, 0, historyCapacity)}
	s.AddObserver(h)

	canvas := NewCanvas(width, height)
	return Model{
		sim:     s,
		clock:   clock,
		keys:    keys,
		canvas:  canvas,
		drawer:  NewDrawer(canvas, float64(cfg.Window.Width), float64(cfg.Window.Height)),
		history: h,
		theme:   theme,
		styles:  theme.styles(),
		frame:   time.Second / time.Duration(cfg.Window.FPS),
	}, nil
}

func (m Model) Simulation() *sim.Simulation { return m.sim }
func (m Model) Err() error                  { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the simulation clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.keys.Press(input.Left)
		case "right", "l":
			m.keys.Press(input.Right)
		case "r":
			m.reset()
		case "t":
			m.theme = m.theme.next()
			m.styles = m.theme.styles()
		}
	case TickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			if _, err := m.clock.Advance(now.Sub(m.last), m.sim.Update); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		m.last = now
		return m, m.tick()
	}
	return m, nil
}

// reset restores the configured initial pose.
func (m *Model) reset() {
	if err := m.sim.Reset(); err != nil {
		m.err = err
		return
	}
	m.clock.Reset()
	m.keys.Release()
	m.history.reset()
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.sim.World().Render(m.drawer)
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := m.styles.canvas.Render(m.canvas.String())

	snap := m.sim.Snapshot()
	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.sim.Config().Window.Caption)) + "\n")
	s.WriteString(m.styles.value.Render(m.sim.Label()) + "\n\n")

	if len(m.history.angles) > 1 {
		chart := asciigraph.Plot(m.history.angles, asciigraph.Height(6), asciigraph.Width(30), asciigraph.Caption("Angle (°)"))
		s.WriteString(m.styles.graph.Render(chart) + "\n\n")
	}

	s.WriteString(m.styles.label.Render("Time") + m.styles.value.Render(fmt.Sprintf("%.2fs", snap.Time)) + "\n")
	s.WriteString(m.styles.label.Render("Energy") + m.styles.value.Render(fmt.Sprintf("%.1f", snap.Energy)) + "\n")
	s.WriteString(m.styles.label.Render("Speed") + m.styles.value.Render(fmt.Sprintf("%.1f", snap.Velocity.Length())) + "\n")
	push := "none"
	if snap.Push != input.PushNone {
		push = m.styles.push.Render(snap.Push.String())
	}
	s.WriteString(m.styles.label.Render("Push") + push + "\n")
	s.WriteString(m.styles.label.Render("Theme") + m.styles.value.Render(m.theme.Name) + "\n")

	if m.err != nil {
		s.WriteString("\n" + m.styles.err.Render(m.err.Error()) + "\n")
	}

	s.WriteString(m.styles.help.Render("\n─────────────────────\n←/H →/L:Push R:Reset\nT:Theme Q:Quit"))
	statsView := m.styles.stats.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run opens the terminal view and blocks until the user quits. A
// simulation error ends the program and is returned.
func Run(cfg *config.Config, theme string) error {
	m, err := NewModel(cfg, GetTheme(theme))
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fmt.Errorf("terminal view stopped: %w", fm.err)
	}
	return nil
}
