// Package tui is the interactive front end: four parameter sliders and
// a live braille rendering of the pattern.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"modviz/internal/config"
	"modviz/internal/display"
	"modviz/internal/viz"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
)

const (
	paramVertex = iota
	paramModulus
	paramMultiplier
	paramAngle
	paramCount
)

const (
	defaultCanvasWidth  = 64
	defaultCanvasHeight = 30
	panelWidth          = 38
)

type param struct {
	name     string
	min, max int
	value    int
}

// Model is the Bubble Tea model wrapping the display controller.
type Model struct {
	ctrl     *display.Controller
	renderer *viz.Renderer

	params   [paramCount]param
	initial  [paramCount]int
	selected int

	editing bool
	editBuf string

	frame    string
	caption  string
	err      error
	showHelp bool
}

// New builds the interactive model from startup configuration. The
// configuration is clamped first; parameter bounds are the front end's
// job, the controller trusts what it is handed.
func New(cfg *config.Config) Model {
	cfg.Clamp()
	m := Model{
		ctrl:     display.New(cfg.CanvasSize),
		renderer: viz.NewRenderer(defaultCanvasWidth, defaultCanvasHeight),
		params: [paramCount]param{
			{name: "vertices", min: config.MinVertexCount, max: config.MaxVertexCount, value: cfg.VertexCount},
			{name: "modulus", min: config.MinModulus, max: config.MaxModulus, value: cfg.Modulus},
			{name: "multiplier", min: 0, max: cfg.Modulus, value: cfg.Multiplier},
			{name: "angle", min: config.MinAngleDeg, max: config.MaxAngleDeg, value: cfg.AngleDeg},
		},
	}
	for i, p := range m.params {
		m.initial[i] = p.value
	}
	m.apply()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		w := msg.Width - panelWidth - 6
		h := msg.Height - 4
		if w >= 10 && h >= 5 {
			m.renderer.Resize(w, h)
			m.apply()
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg), nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "down", "j":
		m.selected = (m.selected + 1) % paramCount
	case "shift+tab", "up", "k":
		m.selected = (m.selected + paramCount - 1) % paramCount
	case "left", "h":
		m.step(-1)
	case "right", "l":
		m.step(1)
	case "H":
		m.step(-10)
	case "L":
		m.step(10)
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.Itoa(m.params[m.selected].value)
	case "r":
		for i := range m.params {
			m.params[i].value = m.initial[i]
		}
		m.apply()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter":
		if v, err := strconv.Atoi(m.editBuf); err == nil {
			m.params[m.selected].value = v
			m.apply()
		}
		m.editing, m.editBuf = false, ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '-') {
			m.editBuf += s
		}
	}
	return m
}

func (m *Model) step(delta int) {
	m.params[m.selected].value += delta
	m.apply()
}

// apply clamps the slider values, converts the angle to radians, and
// pushes the parameters into the controller. The multiplier's upper
// bound follows the modulus, so a modulus edit may drag the multiplier
// down with it.
func (m *Model) apply() {
	for i := range m.params {
		p := &m.params[i]
		if p.value < p.min {
			p.value = p.min
		}
		if p.value > p.max {
			p.value = p.max
		}
	}
	m.params[paramMultiplier].max = m.params[paramModulus].value
	if m.params[paramMultiplier].value > m.params[paramMultiplier].max {
		m.params[paramMultiplier].value = m.params[paramMultiplier].max
	}

	angle := float64(m.params[paramAngle].value) * math.Pi / 180
	m.err = m.ctrl.ChangeParameters(
		m.params[paramVertex].value,
		m.params[paramModulus].value,
		m.params[paramMultiplier].value,
		angle,
	)
	if m.err != nil {
		return
	}
	scene := m.ctrl.Scene()
	m.caption = scene.Caption
	m.frame = m.renderer.Render(scene)
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("MODVIZ") + "\n")
	s.WriteString(captionStyle.Render(m.caption) + "\n\n")
	if m.err != nil {
		s.WriteString(errStyle.Render(m.err.Error()) + "\n\n")
	}
	s.WriteString("PARAMETERS\n")
	for i, p := range m.params {
		valStr := fmt.Sprintf("%5d", p.value)
		if m.editing && i == m.selected {
			valStr = fmt.Sprintf("%5s", m.editBuf+"_")
		}
		line := fmt.Sprintf("%-10s %s %s", p.name, bar(p), valStr)
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString(fmt.Sprintf("\n%s %d\n", labelStyle.Render("edge points"), m.ctrl.EdgePointCount()))
	s.WriteString(helpStyle.Render("───────────────────\nj/k:Select h/l:Adjust H/L:±10\nEnter:Type R:Reset ?:Help Q:Quit"))

	panel := panelStyle.Render(s.String())
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.frame), panel)
	if m.showHelp {
		return helpOverlay + "\n" + view
	}
	return view
}

func bar(p param) string {
	const width = 12
	span := p.max - p.min
	ratio := 0.0
	if span > 0 {
		ratio = float64(p.value-p.min) / float64(span)
	}
	filled := int(ratio * width)
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Tab/J/K  - Select parameter         ║
║  H/L      - Adjust selected value    ║
║  Shift+HL - Adjust in steps of 10    ║
║  Enter    - Type a value directly    ║
║  R        - Reset to start values    ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the interactive visualization.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
