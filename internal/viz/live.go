// Package viz renders the ball pit in the terminal on a braille canvas,
// driven by a bubbletea program ticking at 60 fps.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
)

const (
	defaultCanvasW  = 72
	defaultCanvasH  = 22
	panelWidth      = 38
	energyCapacity  = 300
	frameInterval   = time.Second / 60
	helpText        = "SP:Pause  R:Respawn  ?:Help  Q:Quit"
	extendedHelpBox = `
  Space  - pause / resume
  R      - respawn population
  Mouse  - attract balls (follow_cursor)
  ?      - toggle this help
  Q      - quit
`
)

type frameMsg time.Time

// Model is the bubbletea model wrapping one engine instance. The tick
// message drives the frame pipeline; teardown happens in the final
// update so a tick delivered after quit is dropped by the engine.
type Model struct {
	eng    *sim.Engine
	cfg    *config.Config
	canvas *Canvas
	ke     *metrics.KineticEnergy

	energy   []float64
	last     time.Time
	paused   bool
	showHelp bool
}

func NewModel(eng *sim.Engine, cfg *config.Config) Model {
	ke := metrics.NewKineticEnergy()
	eng.AddObserver(ke)
	m := Model{
		eng:    eng,
		cfg:    cfg,
		canvas: NewCanvas(defaultCanvasW, defaultCanvasH),
		ke:     ke,
		energy: make([]float64, 0, energyCapacity),
	}
	pw, ph := m.canvas.PixelSize()
	eng.Resize(float64(pw), float64(ph))
	return m
}

func (m Model) Init() tea.Cmd {
	m.eng.Start()
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.eng.Stop()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.eng.Stop()
			m.eng = sim.New(m.cfg)
			m.ke.Reset()
			m.eng.AddObserver(m.ke)
			pw, ph := m.canvas.PixelSize()
			m.eng.Resize(float64(pw), float64(ph))
			m.eng.Start()
			m.energy = m.energy[:0]
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.MouseMsg:
		// Terminal cells map onto canvas sub-pixels; anything outside
		// the canvas area clears the target.
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			m.eng.Tracker().PointAt(float64(msg.X*2), float64(msg.Y*4))
		}

	case tea.WindowSizeMsg:
		cw := msg.Width - panelWidth - 4
		ch := msg.Height - 2
		if cw < 20 {
			cw = 20
		}
		if ch < 8 {
			ch = 8
		}
		m.canvas = NewCanvas(cw, ch)
		pw, ph := m.canvas.PixelSize()
		m.eng.Resize(float64(pw), float64(ph))

	case frameMsg:
		now := time.Time(msg)
		dt := frameInterval.Seconds()
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		if !m.paused {
			m.eng.Step(dt)
			m.energy = append(m.energy, m.ke.Last())
			if len(m.energy) > energyCapacity {
				m.energy = m.energy[1:]
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("BALLPIT") + "\n")
	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energy) > 1 {
		chart := asciigraph.Plot(m.energy, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("Kinetic Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.eng.Frames())) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.eng.Time())) + "\n")
	s.WriteString(labelStyle.Render("Balls") + valueStyle.Render(fmt.Sprintf("%d", len(m.eng.Particles()))) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.2f", m.ke.Last())) + "\n")
	s.WriteString(labelStyle.Render("Gravity") + valueStyle.Render(fmt.Sprintf("%.2f", m.cfg.Gravity)) + "\n")
	s.WriteString(labelStyle.Render("Friction") + valueStyle.Render(fmt.Sprintf("%.4f", m.cfg.Friction)) + "\n")
	s.WriteString(labelStyle.Render("Bounce") + valueStyle.Render(fmt.Sprintf("%.2f", m.cfg.WallBounce)) + "\n")
	if _, ok := m.eng.Tracker().Target(); ok {
		s.WriteString(labelStyle.Render("Pointer") + valueStyle.Render("active") + "\n")
	}
	s.WriteString(helpStyle.Render(helpText))
	if m.showHelp {
		s.WriteString(helpStyle.Render(extendedHelpBox))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))
}

// draw projects the simulation's X/Y plane onto the canvas.
func (m Model) draw() {
	m.canvas.Clear()
	pw, ph := m.canvas.PixelSize()
	b := m.eng.Bounds()
	size := b.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	sx := float64(pw-1) / size.X
	sy := float64(ph-1) / size.Y

	m.canvas.DrawBox(0, 0, pw-1, ph-1)
	for _, p := range m.eng.Particles() {
		px := int((p.Pos.X - b.Min.X) * sx)
		py := int((b.Max.Y - p.Pos.Y) * sy)
		r := int(p.Radius * sy)
		m.canvas.FillCircle(px, py, r)
	}
}

// Run starts the TUI front end and blocks until it exits.
func Run(cfg *config.Config) error {
	eng := sim.New(cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.FollowCursor {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(NewModel(eng, cfg), opts...)
	_, err := p.Run()
	eng.Stop()
	return err
}
