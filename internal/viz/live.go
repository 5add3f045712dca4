package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astroloom/alpmix/internal/alp"
	"github.com/astroloom/alpmix/internal/analysis"
	"github.com/astroloom/alpmix/internal/environ"
	"github.com/astroloom/alpmix/internal/grid"
	"github.com/astroloom/alpmix/internal/mixing"
)

const liveGridPoints = 120

// Model is the live spectrum explorer: the conversion probability curve is
// recomputed whenever a parameter changes.
type Model struct {
	massNeV float64
	g11     float64
	b0MuG   float64
	seed    int64

	env    *environ.CellICM
	grid   []float64
	result *mixing.Result
	runErr error

	cursor int // which parameter +/- adjusts
	width  int
	height int
}

var liveParams = []string{"mass", "coupling", "field", "seed"}

func NewModel(massNeV, g11 float64, env *environ.CellICM, eminGeV, emaxGeV float64) Model {
	m := Model{
		massNeV: massNeV,
		g11:     g11,
		b0MuG:   env.B0MuG,
		seed:    env.Seed,
		env:     env,
		grid:    grid.LogSpace(eminGeV, emaxGeV, liveGridPoints),
		width:   80,
		height:  24,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) recompute() {
	m.env.B0MuG = m.b0MuG
	m.env.Realize(m.seed)

	particle := alp.ALP{MassNeV: m.massNeV, G11: m.g11}
	s := mixing.New(particle, m.env)
	m.result, m.runErr = s.Run(context.Background(), m.grid)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.cursor = (m.cursor + 1) % len(liveParams)
			return m, nil
		case "up":
			m.cursor = (m.cursor + len(liveParams) - 1) % len(liveParams)
			return m, nil
		case "+", "=", "right":
			m.adjust(true)
			m.recompute()
			return m, nil
		case "-", "left":
			m.adjust(false)
			m.recompute()
			return m, nil
		case "r":
			m.seed++
			m.recompute()
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) adjust(up bool) {
	factor := 1.25
	if !up {
		factor = 1 / 1.25
	}
	switch liveParams[m.cursor] {
	case "mass":
		m.massNeV *= factor
	case "coupling":
		m.g11 *= factor
	case "field":
		m.b0MuG *= factor
	case "seed":
		if up {
			m.seed++
		} else {
			m.seed--
		}
	}
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("alpmix live spectrum"))
	sb.WriteString("\n")

	if m.runErr != nil {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("solver error: %v", m.runErr)))
		sb.WriteString("\n")
		return sb.String()
	}

	plotWidth := m.width - 10
	if plotWidth < 40 {
		plotWidth = 40
	}
	plotHeight := m.height - 12
	if plotHeight < 8 {
		plotHeight = 8
	}
	sb.WriteString(graphStyle.Render(ConversionPlot(m.result, plotWidth, plotHeight)))
	sb.WriteString("\n")

	particle := alp.ALP{MassNeV: m.massNeV, G11: m.g11}
	summary := analysis.Summarize(m.result)
	values := []struct {
		name string
		text string
	}{
		{"mass", fmt.Sprintf("%.3g neV", m.massNeV)},
		{"coupling", fmt.Sprintf("%.3g x 1e-11/GeV", m.g11)},
		{"field", fmt.Sprintf("%.3g muG", m.b0MuG)},
		{"seed", fmt.Sprintf("%d", m.seed)},
	}
	for i, v := range values {
		style := valueStyle
		if i == m.cursor {
			style = activeStyle
		}
		sb.WriteString(labelStyle.Render(v.name) + style.Render(v.text) + "\n")
	}

	ec := particle.CriticalEnergyGeV(m.env.N0Cm3, m.b0MuG)
	sb.WriteString(labelStyle.Render("E_crit") + valueStyle.Render(fmt.Sprintf("%.3g GeV", ec)) + "\n")
	sb.WriteString(labelStyle.Render("max P(g->a)") + valueStyle.Render(fmt.Sprintf("%.4f", summary.MaxPaa)) + "\n")

	sb.WriteString(helpStyle.Render("tab/arrows select  +/- adjust  r reseed  q quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
