package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/pixelfx/internal/config"
	"github.com/san-kum/pixelfx/internal/effects"
	"github.com/san-kum/pixelfx/internal/pixel"
)

// Rows reserved above and below the canvas for the header and help line.
const chromeRows = 2

type TickMsg time.Time

// Model is the interactive effect viewer. It owns the clock and the current
// renderer and feeds them fixed-step time at the configured frame rate.
type Model struct {
	registry *effects.Registry
	cfg      *config.Config
	src      *rand.Rand

	clock    *pixel.Clock
	renderer effects.Renderer
	effect   string
	names    []string

	palettes []string
	palIdx   int

	painter *Painter
	frame   string

	width, height int
	running       bool
	showHelp      bool

	recorder  *Recorder
	recording bool
	saveErr   error

	renderMs float64
}

// NewModel builds a viewer for the configured effect. The canvas size is
// provisional until the first WindowSizeMsg arrives.
func NewModel(cfg *config.Config) (Model, error) {
	registry := effects.NewRegistry()
	src := rand.New(rand.NewSource(cfg.Seed))

	m := Model{
		registry: registry,
		cfg:      cfg,
		src:      src,
		clock:    pixel.NewClock(cfg.Divisor),
		effect:   cfg.Effect,
		names:    registry.List(),
		palettes: effects.GradientNames(),
		painter:  NewPainter(),
		width:    cfg.Width,
		height:   cfg.Height,
		running:  true,
	}

	renderer, err := registry.Get(cfg.Effect, m.width, m.height, src)
	if err != nil {
		return Model{}, err
	}
	m.renderer = renderer

	for i, name := range m.palettes {
		if name == cfg.Palette {
			m.palIdx = i
		}
	}
	m.applyPalette()

	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "tab", "n":
			m.cycleEffect(1)
		case "shift+tab", "N":
			m.cycleEffect(-1)
		case "p":
			m.cyclePalette()
		case "r":
			m.restart()
		case "g":
			m.toggleRecording()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - chromeRows
		if m.height < 1 {
			m.height = 1
		}
		m.renderer.Update(m.width, m.height)
		m.redraw()
	case TickMsg:
		if m.running {
			m.clock.Update(1.0 / float64(m.cfg.FPS))
			m.redraw()
		}
		return m, m.tick()
	}
	return m, nil
}

// redraw runs exactly one render pass and fans the cells out to the painter
// and, when recording, the recorder.
func (m *Model) redraw() {
	start := time.Now()
	cells := RenderCells(m.renderer, m.clock.Normalize(), m.width, m.height)
	m.renderMs = float64(time.Since(start).Microseconds()) / 1000.0

	m.frame = m.painter.Paint(cells, m.width, m.height)
	if m.recording {
		m.recorder.Capture(cells, m.width, m.height)
	}
}

func (m *Model) cycleEffect(dir int) {
	idx := 0
	for i, name := range m.names {
		if name == m.effect {
			idx = i
		}
	}
	idx = (idx + dir + len(m.names)) % len(m.names)
	m.effect = m.names[idx]
	m.restart()
}

// restart rebuilds the renderer and clock from scratch.
func (m *Model) restart() {
	renderer, err := m.registry.Get(m.effect, m.width, m.height, m.src)
	if err != nil {
		return
	}
	m.renderer = renderer
	m.clock = pixel.NewClock(m.cfg.Divisor)
	m.applyPalette()
	m.redraw()
}

func (m *Model) cyclePalette() {
	m.palIdx = (m.palIdx + 1) % len(m.palettes)
	if m.palettes[m.palIdx] == "default" {
		// Rebuilding restores the simulator's built-in ramp.
		m.restart()
		return
	}
	m.applyPalette()
	m.redraw()
}

func (m *Model) applyPalette() {
	name := m.palettes[m.palIdx]
	if name == "default" {
		return
	}
	p, ok := m.renderer.(effects.Paletted)
	if !ok {
		return
	}
	pal, err := effects.LookupGradient(name)
	if err != nil {
		return
	}
	p.SetPalette(pal)
}

func (m *Model) toggleRecording() {
	if m.recording {
		m.saveErr = m.recorder.Save("pixelfx.gif")
		m.recording = false
		m.recorder = nil
		return
	}
	m.recorder = NewRecorder()
	m.recording = true
	m.saveErr = nil
}

func (m Model) View() string {
	var b strings.Builder

	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	if m.recording {
		status += " " + statusRecording.Render(fmt.Sprintf("REC %d", m.recorder.Len()))
	}

	b.WriteString(headerStyle.Render(strings.ToUpper(m.effect)))
	b.WriteString("  " + status)
	b.WriteString("  " + labelStyle.Render("palette:") + valueStyle.Render(m.palettes[m.palIdx]))
	b.WriteString("  " + labelStyle.Render("frame:") + valueStyle.Render(fmt.Sprintf("%.2fms", m.renderMs)))
	if m.saveErr != nil {
		b.WriteString("  " + statusRecording.Render("save failed: "+m.saveErr.Error()))
	}
	b.WriteByte('\n')

	if m.showHelp {
		b.WriteString(helpString(m.height))
		return b.String()
	}

	b.WriteString(m.frame)
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("SP:pause TAB:effect P:palette R:restart G:record ?:help Q:quit"))
	return b.String()
}

func helpString(height int) string {
	help := []string{
		"",
		"  space      pause / resume",
		"  tab / n    next effect",
		"  shift+tab  previous effect",
		"  p          cycle gradient palettes",
		"  r          restart current effect",
		"  g          start/stop GIF recording (pixelfx.gif)",
		"  ?          toggle this help",
		"  q          quit",
	}
	for len(help) < height+1 {
		help = append(help, "")
	}
	return helpStyle.Render(strings.Join(help, "\n"))
}

// Run launches the viewer in the alternate screen.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
