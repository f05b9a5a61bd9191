package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lsys/internal/anim"
	"github.com/san-kum/lsys/internal/config"
	"github.com/san-kum/lsys/internal/lsystem"
	"github.com/san-kum/lsys/internal/turtle"
)

const (
	canvasCols = 80
	canvasRows = 24
	bottomPad  = 4 // dots between the turtle home row and the canvas edge
	panStep    = 4 // dots per pan keypress
	zoomFactor = 1.25
)

// TickMsg drives one animation step. Epoch ties the message to the
// scheduler binding that armed it; stale ticks after a stop are dropped.
type TickMsg struct {
	Epoch int
	At    time.Time
}

// drawTarget couples the turtle with its recorded path so the scheduler
// can reset both as one unit.
type drawTarget struct {
	machine *turtle.Machine
	path    *turtle.Path
}

func (d *drawTarget) Exec(sym rune) { d.machine.Exec(sym) }

func (d *drawTarget) Reset() {
	d.path.Clear()
	d.machine.Reset()
}

// Model is the live playback TUI: one symbol pulled from the lazy expander
// per tick, drawn through the view transform.
type Model struct {
	cfg       *config.Config
	rs        *lsystem.RuleSet
	canvas    *Canvas
	view      *Transform
	path      *turtle.Path
	machine   *turtle.Machine
	target    *drawTarget
	sched     *anim.Scheduler
	estimated int64
	growth    []float64
	width     int
	height    int
}

// NewModel compiles cfg into a playback model. The animation is bound but
// not yet started; Init starts it.
func NewModel(cfg *config.Config) (*Model, error) {
	rules, err := cfg.CompileRules()
	if err != nil {
		return nil, err
	}
	rs, err := lsystem.New(cfg.Axiom, rules)
	if err != nil {
		return nil, err
	}

	canvas := NewCanvas(canvasCols, canvasRows)
	path := turtle.NewPath()
	machine := turtle.NewMachine(path, cfg.Step, cfg.Angle,
		float64(canvas.DotWidth())/2, float64(canvas.DotHeight()-bottomPad))
	target := &drawTarget{machine: machine, path: path}
	sched := anim.NewScheduler(target)
	sched.SetSpeed(cfg.SpeedMs)

	growth := make([]float64, 0, cfg.Iterations+1)
	for g := 0; g <= cfg.Iterations; g++ {
		growth = append(growth, float64(lsystem.EstimateLength(rs, g)))
	}

	m := &Model{
		cfg:       cfg,
		rs:        rs,
		canvas:    canvas,
		view:      NewTransform(),
		path:      path,
		machine:   machine,
		target:    target,
		sched:     sched,
		estimated: lsystem.EstimateLength(rs, cfg.Iterations),
		growth:    growth,
		width:     canvasCols,
		height:    canvasRows,
	}
	m.sched.Bind(lsystem.NewExpander(rs, cfg.Iterations), m.estimated)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	if m.sched.Start() {
		return m.armTick()
	}
	return nil
}

func (m *Model) armTick() tea.Cmd {
	epoch := m.sched.Epoch()
	return tea.Tick(m.sched.Delay(), func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, At: t}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if m.sched.Tick(msg.Epoch) {
			return m, m.armTick()
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.sched.Paused() {
			if m.sched.Start() {
				return m, m.armTick()
			}
		} else {
			m.sched.Pause()
		}
	case "s":
		m.sched.Stop()
	case "r":
		// Restart from scratch; the expander is single-use.
		m.sched.Bind(lsystem.NewExpander(m.rs, m.cfg.Iterations), m.estimated)
		if m.sched.Start() {
			return m, m.armTick()
		}
	case "v":
		m.view.Reset()
	case "+", "=":
		m.zoomAtCenter(zoomFactor)
	case "-", "_":
		m.zoomAtCenter(1 / zoomFactor)
	case "up", "k":
		m.view.Pan(0, panStep)
	case "down", "j":
		m.view.Pan(0, -panStep)
	case "left", "h":
		m.view.Pan(panStep, 0)
	case "right", "l":
		m.view.Pan(-panStep, 0)
	case "[":
		m.sched.SetSpeed(m.sched.SpeedMs() + 5)
	case "]":
		m.sched.SetSpeed(m.sched.SpeedMs() - 5)
	}
	return m, nil
}

func (m *Model) zoomAtCenter(factor float64) {
	m.view.ZoomAt(factor, float64(m.canvas.DotWidth())/2, float64(m.canvas.DotHeight())/2)
}

func (m *Model) View() string {
	m.canvas.Clear()
	m.canvas.DrawPath(m.view, m.path)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.cfg.Name)) + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if len(m.growth) > 1 {
		chart := asciigraph.Plot(m.growth,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("length per generation"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.cfg.Iterations)) + "\n")
	s.WriteString(labelStyle.Render("Est length") + valueStyle.Render(fmt.Sprintf("%d", m.estimated)) + "\n")
	s.WriteString(labelStyle.Render("Processed") + valueStyle.Render(fmt.Sprintf("%d", m.sched.Processed())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%dms", m.sched.SpeedMs())) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.2fx", m.view.Scale)) + "\n\n")

	progress := m.sched.Progress()
	s.WriteString(ProgressBar(progress, 28) + fmt.Sprintf(" %3.0f%%", progress*100) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\n" +
		"SP:Pause S:Stop R:Restart Q:Quit\n" +
		"+/-:Zoom  ←↓↑→:Pan  V:Reset View\n" +
		"[ ]:Slower/Faster"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()),
	)
}

func (m *Model) statusLine() string {
	switch m.sched.Phase() {
	case anim.Running:
		return statusRunning.Render("DRAWING")
	case anim.Paused:
		return statusPaused.Render("PAUSED")
	case anim.Done:
		return statusDone.Render("COMPLETE")
	default:
		return subtle.Render("STOPPED")
	}
}

// RunLive starts the playback TUI for one configuration.
func RunLive(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
