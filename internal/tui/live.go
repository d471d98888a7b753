package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/queueloop/internal/experiment"
	"github.com/san-kum/queueloop/internal/metrics"
	"github.com/san-kum/queueloop/internal/sim"
)

const (
	historyCapacity = 240
	frameInterval   = time.Second / 30
	maxSpeed        = 64
)

type TickMsg time.Time

// Factory builds a fresh, set-up experiment. It is called again on reset.
type Factory func() (*experiment.Experiment, error)

// Model steps one loop per frame and keeps a rolling window of samples.
type Model struct {
	factory  Factory
	exp      *experiment.Experiment
	metrics  []sim.Metric
	steps    int
	t, y     int
	last     sim.Sample
	history  []sim.Sample
	running  bool
	speed    int
	theme    Theme
	showHelp bool
}

func NewModel(factory Factory) (Model, error) {
	m := Model{
		factory: factory,
		running: true,
		speed:   1,
		theme:   Themes[0],
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// WithTheme returns a copy of m using the named theme.
func (m Model) WithTheme(name string) Model {
	m.theme = GetTheme(name)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, 1)
		case "r":
			if err := m.reset(); err != nil {
				return m, tea.Quit
			}
		case "t":
			m.theme = nextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.speed && !m.Done(); i++ {
				m.step()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) reset() error {
	exp, err := m.factory()
	if err != nil {
		return err
	}
	if exp.Controller() == nil {
		if err := exp.Setup(); err != nil {
			return err
		}
	}
	m.exp = exp
	m.metrics = metrics.Default()
	m.steps = exp.Config().Steps
	if m.steps == 0 {
		m.steps = sim.DefaultSteps
	}
	m.t, m.y = 0, 0
	m.last = sim.Sample{}
	m.history = make([]sim.Sample, 0, historyCapacity)
	return nil
}

func (m *Model) step() {
	s := sim.Step(m.exp.Controller(), m.exp.Buffer(), m.exp.SetPoint(), m.t, m.y)
	m.t++
	m.y = s.Y
	m.last = s
	for _, mt := range m.metrics {
		mt.Observe(s)
	}
	m.history = append(m.history, s)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

// Done reports whether the configured number of steps has been taken.
func (m Model) Done() bool { return m.t >= m.steps }

func (m Model) Steps() int { return m.t }

func (m Model) Last() sim.Sample { return m.last }

func (m Model) Running() bool { return m.running }

func (m Model) Speed() int { return m.speed }

func (m Model) Theme() Theme { return m.theme }

// View renders the chart and stats panel.
func (m Model) View() string {
	st := m.theme.styles()

	var status string
	switch {
	case m.Done():
		status = st.done.Render("DONE")
	case !m.running:
		status = st.paused.Render("PAUSED")
	default:
		status = st.running.Render(fmt.Sprintf("RUNNING x%d", m.speed))
	}

	chart := "waiting for samples"
	if len(m.history) > 1 {
		r := make([]float64, len(m.history))
		y := make([]float64, len(m.history))
		for i, s := range m.history {
			r[i], y[i] = float64(s.R), float64(s.Y)
		}
		chart = asciigraph.PlotMany([][]float64{r, y},
			asciigraph.Height(14),
			asciigraph.Width(60),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.SeriesLegends("r", "y"),
		)
	}
	graphView := st.graph.Render(chart)

	row := func(label, value string) string {
		return st.label.Render(label) + st.value.Render(value) + "\n"
	}

	var s strings.Builder
	s.WriteString(st.header.Render("QUEUE LOOP") + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(row("t", fmt.Sprintf("%d / %d", m.t, m.steps)))
	s.WriteString(row("setpoint", fmt.Sprintf("%d", m.last.R)))
	s.WriteString(row("queued", fmt.Sprintf("%d", m.last.Y)))
	s.WriteString(row("error", fmt.Sprintf("%d", m.last.E)))
	s.WriteString(row("effort", fmt.Sprintf("%.2f", m.last.U)))
	if b := m.exp.Buffer(); b != nil {
		s.WriteString(row("wip", fmt.Sprintf("%d / %d", b.WIP(), b.MaxWIP())))
	}
	if c := m.exp.Controller(); c != nil {
		s.WriteString(row("integral", fmt.Sprintf("%d", c.Integral())))
		s.WriteString(row("kp / ki", fmt.Sprintf("%g / %g", c.Kp(), c.Ki())))
	}
	s.WriteString("\nMETRICS\n")
	for _, mt := range m.metrics {
		s.WriteString(row(mt.Name(), fmt.Sprintf("%.3f", mt.Value())))
	}
	s.WriteString(st.help.Render("SP:Pause +/-:Speed R:Reset\nT:Theme ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, graphView, st.stats.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  +/=      - Double steps per frame   ║
║  -/_      - Halve steps per frame    ║
║  R        - Restart the loop         ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
