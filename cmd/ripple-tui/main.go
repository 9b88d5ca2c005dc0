package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"ripple-tank/internal/core"
	"ripple-tank/internal/render"
	_ "ripple-tank/internal/sims/rings"
	_ "ripple-tank/internal/sims/water"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type stateProvider interface {
	Paused() bool
	Raining() bool
}

type energyProvider interface {
	Energy() float64
}

type populationProvider interface {
	DropCount() int
	RingCount() int
}

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// keyEvents maps terminal key names onto the simulation input vocabulary.
var keyEvents = map[string]core.Key{
	" ":     core.KeyPause,
	"r":     core.KeyRain,
	"c":     core.KeyClear,
	"up":    core.KeySpeedUp,
	"down":  core.KeySpeedDown,
	"right": core.KeyRainUp,
	"left":  core.KeyRainDown,
	"w":     core.KeyWindRight,
	"a":     core.KeyWindLeft,
	"s":     core.KeyWindCalm,
}

const (
	gridTop       = 2
	frameInterval = 33 * time.Millisecond
	maxCatchUp    = 4
	historyCap    = 120

	helpText = "space pause  r rain  c clear  arrows speed/rain  w/a/s wind  " +
		"p palette  click splash  backspace restart  n reseed  h help  q quit"
)

type model struct {
	sim     core.Sim
	handler core.EventHandler
	clock   *core.FixedStep

	cells        [256]string
	paletteNames []string
	paletteIdx   int

	seed     int64
	history  []float64
	showHelp bool

	width  int
	height int
}

func newModel(sim core.Sim, seed int64, tps int, palette string) model {
	m := model{
		sim:          sim,
		clock:        core.NewFixedStep(tps),
		paletteNames: render.PaletteNames(),
		seed:         seed,
		showHelp:     true,
		width:        100,
		height:       40,
	}
	if handler, ok := sim.(core.EventHandler); ok {
		m.handler = handler
	}
	for i, name := range m.paletteNames {
		if name == palette {
			m.paletteIdx = i
		}
	}
	m.applyPalette()
	return m
}

// cellStrings pre-renders every display byte as a double-width colored cell,
// so the per-frame view is pure string concatenation.
func cellStrings(palette []color.RGBA) [256]string {
	var cells [256]string
	for i, c := range palette {
		style := lipgloss.NewStyle().Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
		cells[i] = style.Render("  ")
	}
	return cells
}

func (m *model) applyPalette() {
	if palette, ok := render.PaletteByName(m.paletteNames[m.paletteIdx]); ok {
		m.cells = cellStrings(palette)
	}
}

func (m model) Init() tea.Cmd { return tick() }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "p":
			m.paletteIdx = (m.paletteIdx + 1) % len(m.paletteNames)
			m.applyPalette()
		case "h", "?":
			m.showHelp = !m.showHelp
		case "backspace":
			m.sim.Reset(m.seed)
			m.history = m.history[:0]
		case "n":
			m.sim.Reset(time.Now().UnixNano())
			m.history = m.history[:0]
		default:
			if key, ok := keyEvents[msg.String()]; ok {
				m.send(core.Press(key))
			}
		}
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x := msg.X / 2
			y := msg.Y - gridTop
			size := m.sim.Size()
			if x >= 0 && x < size.W && y >= 0 && y < size.H {
				m.send(core.Click(x, y))
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		steps := m.clock.Steps(maxCatchUp)
		for i := 0; i < steps; i++ {
			m.sim.Step()
		}
		m.recordEnergy()
		return m, tick()
	}
	return m, nil
}

func (m model) send(ev core.Event) {
	if m.handler != nil {
		m.handler.Handle(ev)
	}
}

func (m *model) recordEnergy() {
	provider, ok := m.sim.(energyProvider)
	if !ok {
		return
	}
	m.history = append(m.history, provider.Energy())
	if len(m.history) > historyCap {
		m.history = m.history[1:]
	}
}

func (m model) View() string {
	var b strings.Builder
	size := m.sim.Size()

	cols := size.W
	if m.width > 0 && cols > m.width/2 {
		cols = m.width / 2
	}
	rows := size.H
	if m.height > gridTop+2 && rows > m.height-gridTop-2 {
		rows = m.height - gridTop - 2
	}

	b.WriteString(m.titleLine() + "\n")
	b.WriteString(m.paramsLine() + "\n")

	cells := m.sim.Cells()
	for y := 0; y < rows; y++ {
		row := y * size.W
		for x := 0; x < cols; x++ {
			b.WriteString(m.cells[cells[row+x]])
		}
		b.WriteString("\n")
	}

	if graph := m.energyGraph(); graph != "" {
		b.WriteString(graph + "\n")
	}
	if m.showHelp {
		b.WriteString(dimStyle.Render(helpText) + "\n")
	}
	return b.String()
}

func (m model) titleLine() string {
	size := m.sim.Size()
	line := titleStyle.Render("ripple-tank") +
		statusStyle.Render(fmt.Sprintf("  %s %dx%d", m.sim.Name(), size.W, size.H))
	if provider, ok := m.sim.(stateProvider); ok {
		if provider.Paused() {
			line += "  " + alertStyle.Render("paused")
		} else {
			line += "  " + statusStyle.Render("running")
		}
		if provider.Raining() {
			line += dimStyle.Render("  rain on")
		} else {
			line += dimStyle.Render("  rain off")
		}
	}
	return line + dimStyle.Render("  palette "+m.paletteNames[m.paletteIdx])
}

func (m model) paramsLine() string {
	var parts []string
	if provider, ok := m.sim.(parameterProvider); ok {
		for _, g := range provider.Parameters().Groups {
			for _, p := range g.Params {
				if p.Type == core.ParamTypeFloat {
					parts = append(parts, p.Key+" "+p.Value)
				}
			}
		}
	}
	if provider, ok := m.sim.(energyProvider); ok {
		parts = append(parts, fmt.Sprintf("energy %.3f", provider.Energy()))
	}
	if provider, ok := m.sim.(populationProvider); ok {
		parts = append(parts, fmt.Sprintf("drops %d", provider.DropCount()),
			fmt.Sprintf("rings %d", provider.RingCount()))
	}
	return dimStyle.Render(strings.Join(parts, "  "))
}

func (m model) energyGraph() string {
	if len(m.history) < 2 {
		return ""
	}
	data := m.history
	if m.width > 12 && len(data) > m.width-12 {
		data = data[len(data)-(m.width-12):]
	}
	return asciigraph.Plot(data, asciigraph.Height(4), asciigraph.Caption("surface energy"))
}

func main() {
	var (
		simName = flag.String("sim", "water", "simulation to run (water, rings)")
		width   = flag.Int("w", 48, "grid width in cells")
		height  = flag.Int("h", 32, "grid height in cells")
		seed    = flag.Int64("seed", 0, "rain seed (0 = simulation default)")
		tps     = flag.Int("tps", 30, "simulation ticks per second")
		palette = flag.String("palette", "ocean", "color palette (ocean, thermal)")
		params  = flag.String("params", "", "comma-separated parameter overrides, e.g. speed=0.5,rain=7")
	)
	flag.Parse()

	factory, ok := core.Sims()[*simName]
	if !ok {
		log.Fatalf("unknown sim %q", *simName)
	}
	if _, ok := render.PaletteByName(*palette); !ok {
		log.Fatalf("unknown palette %q", *palette)
	}

	opts := map[string]string{}
	for _, pair := range strings.Split(*params, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if key = strings.TrimSpace(key); ok && key != "" {
			opts[key] = strings.TrimSpace(value)
		}
	}
	opts["w"] = strconv.Itoa(*width)
	opts["h"] = strconv.Itoa(*height)
	if *seed != 0 {
		opts["seed"] = strconv.FormatInt(*seed, 10)
	}
	sim, err := factory(opts)
	if err != nil {
		log.Fatalf("init %s: %v", *simName, err)
	}

	p := tea.NewProgram(newModel(sim, *seed, *tps, *palette), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
