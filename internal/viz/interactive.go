package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/lsys/internal/config"
	"github.com/san-kum/lsys/internal/lsystem"
)

// ConfirmThreshold is the estimated symbol count above which generation
// asks before starting. The estimate comes from the core; the policy of
// prompting lives here.
const ConfirmThreshold = 1_000_000

const (
	stateMenu = iota
	stateConfig
	stateConfirm
	stateLive
)

var paramNames = []string{"iterations", "angle", "step", "speed_ms"}

type app struct {
	state       int
	cursor      int
	presets     []string
	cfg         *config.Config
	paramCursor int
	editing     bool
	editBuf     string
	pending     int64 // estimate shown in the confirm prompt
	live        *Model
	err         error
	width       int
	height      int
}

// NewInteractiveApp builds the menu -> parameters -> playback flow.
func NewInteractiveApp() *app {
	return &app{
		state:   stateMenu,
		presets: config.ListPresets(),
		width:   80,
		height:  24,
	}
}

func (a *app) Init() tea.Cmd { return nil }

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.live != nil {
			a.live.width, a.live.height = msg.Width, msg.Height
		}
		return a, nil
	default:
		if a.state == stateLive && a.live != nil {
			_, cmd := a.live.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	case stateConfirm:
		return a.confirmKey(msg)
	case stateLive:
		if msg.String() == "esc" {
			a.live.sched.Stop()
			a.live = nil
			a.state = stateConfig
			return a, nil
		}
		_, cmd := a.live.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *app) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		a.cfg = config.GetPreset(a.presets[a.cursor])
		a.state, a.paramCursor = stateConfig, 0
		a.err = nil
	}
	return a, nil
}

func (a *app) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			a.applyEdit()
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}
	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(paramNames)-1 {
			a.paramCursor++
		}
	case "enter", " ":
		a.editing = true
		a.editBuf = a.paramValue(paramNames[a.paramCursor])
	case "left", "h":
		a.nudgeParam(-1)
	case "right", "l":
		a.nudgeParam(1)
	case "s":
		return a.startDrawing()
	}
	return a, nil
}

func (a *app) confirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return a.launchLive()
	case "n", "esc", "q":
		a.state = stateConfig
	}
	return a, nil
}

// startDrawing checks the growth estimate and either launches playback or
// asks for confirmation first.
func (a *app) startDrawing() (tea.Model, tea.Cmd) {
	rules, err := a.cfg.CompileRules()
	if err != nil {
		a.err = err
		return a, nil
	}
	rs, err := lsystem.New(a.cfg.Axiom, rules)
	if err != nil {
		a.err = err
		return a, nil
	}
	a.pending = lsystem.EstimateLength(rs, a.cfg.Iterations)
	if a.pending > ConfirmThreshold {
		a.state = stateConfirm
		return a, nil
	}
	return a.launchLive()
}

func (a *app) launchLive() (tea.Model, tea.Cmd) {
	live, err := NewModel(a.cfg)
	if err != nil {
		a.err = err
		a.state = stateConfig
		return a, nil
	}
	a.live = live
	a.state = stateLive
	return a, a.live.Init()
}

func (a *app) paramValue(name string) string {
	switch name {
	case "iterations":
		return strconv.Itoa(a.cfg.Iterations)
	case "angle":
		return fmt.Sprintf("%.1f", a.cfg.Angle)
	case "step":
		return fmt.Sprintf("%.1f", a.cfg.Step)
	case "speed_ms":
		return strconv.Itoa(a.cfg.SpeedMs)
	}
	return ""
}

func (a *app) applyEdit() {
	switch paramNames[a.paramCursor] {
	case "iterations":
		if v, err := strconv.Atoi(a.editBuf); err == nil && v >= 0 {
			a.cfg.Iterations = v
		}
	case "angle":
		if v, err := strconv.ParseFloat(a.editBuf, 64); err == nil {
			a.cfg.Angle = v
		}
	case "step":
		if v, err := strconv.ParseFloat(a.editBuf, 64); err == nil && v > 0 {
			a.cfg.Step = v
		}
	case "speed_ms":
		if v, err := strconv.Atoi(a.editBuf); err == nil {
			a.cfg.SpeedMs = v
		}
	}
}

func (a *app) nudgeParam(dir int) {
	switch paramNames[a.paramCursor] {
	case "iterations":
		if a.cfg.Iterations+dir >= 0 {
			a.cfg.Iterations += dir
		}
	case "angle":
		a.cfg.Angle += float64(dir)
	case "step":
		if a.cfg.Step+float64(dir) > 0 {
			a.cfg.Step += float64(dir)
		}
	case "speed_ms":
		a.cfg.SpeedMs += dir * 5
	}
}

func (a *app) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateConfirm:
		return a.viewConfirm()
	case stateLive:
		if a.live != nil {
			return a.live.View()
		}
	}
	return ""
}

func (a *app) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + accent.Render("LSYS") + "\n    " +
		subtle.Render("fractal curve renderer") + "\n    " +
		subtle.Render("─────────────────────────") + "\n\n")
	for i, name := range a.presets {
		cfg := config.Presets[name]
		desc := fmt.Sprintf("%s, %g°", cfg.Axiom, cfg.Angle)
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				accent.Render("▸"),
				valueStyle.Bold(true).Render(fmt.Sprintf("%-18s", name)),
				highlight.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				dimText.Render(fmt.Sprintf("%-18s", name)),
				dimText.Render(desc)))
		}
	}
	b.WriteString("\n    " + subtle.Render("j/k navigate  enter select  q quit") + "\n")
	return b.String()
}

func (a *app) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + accent.Render(strings.ToUpper(a.cfg.Name)) + "\n    " +
		subtle.Render(fmt.Sprintf("axiom %s", a.cfg.Axiom)) + "\n    " +
		subtle.Render("─────────────────────────") + "\n\n")
	for i, name := range paramNames {
		val := a.paramValue(name)
		if a.editing && i == a.paramCursor {
			val = a.editBuf + "_"
		}
		if i == a.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				accent.Render("▸"),
				valueStyle.Bold(true).Render(fmt.Sprintf("%-12s", name)),
				highlight.Render(fmt.Sprintf("%8s", val))))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				dimText.Render(fmt.Sprintf("%-12s", name)),
				dimText.Render(fmt.Sprintf("%8s", val))))
		}
	}
	if a.err != nil {
		b.WriteString("\n    " + warnStyle.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n    " + subtle.Render("j/k select  h/l adjust  enter edit  s start  esc back") + "\n")
	return b.String()
}

func (a *app) viewConfirm() string {
	var b strings.Builder
	b.WriteString("\n\n    " + warnStyle.Render("LARGE EXPANSION") + "\n\n")
	b.WriteString(fmt.Sprintf("    estimated %d symbols at generation %d\n", a.pending, a.cfg.Iterations))
	b.WriteString("    drawing may take a while (one symbol per tick)\n\n")
	b.WriteString("    " + subtle.Render("y start anyway  n go back") + "\n")
	return b.String()
}

// RunInteractive starts the full menu-driven TUI.
func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
