// Package browser provides an interactive terminal browser over the
// predefined color palettes.
package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prismkit/prism/ansi"
	"github.com/prismkit/prism/convert"
)

const (
	swatchText   = "      "
	tableHeight  = 16
	detailPlaces = 2
)

// KeyMap defines the key bindings for the color browser.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	ToggleLayer key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleLayer, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.ToggleLayer, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		ToggleLayer: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "fg/bg"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the Bubble Tea model for the color browser.
type Model struct {
	layer    ansi.Layer
	names    []string
	table    table.Model
	help     help.Model
	keys     KeyMap
	width    int
	quitting bool
}

// NewModel creates a browser over the predefined palette for the given layer.
func NewModel(layer ansi.Layer) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		layer: layer,
		names: ansi.FGColors.Names(),
		keys:  DefaultKeyMap(),
		help:  h,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *Model) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 26},
		{Title: "Hex", Width: 9},
		{Title: "RGB", Width: 15},
		{Title: "Sample", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows rebuilds the rows for the current layer.
func (m *Model) updateTableRows() {
	rows := make([]table.Row, 0, len(m.names))
	for _, name := range m.names {
		rgb, hex, ok := m.lookup(name)
		if !ok {
			continue
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(swatchText)
		if m.layer == ansi.Foreground {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██████")
		}
		rows = append(rows, table.Row{
			name,
			hex,
			fmt.Sprintf("%d;%d;%d", rgb.R, rgb.G, rgb.B),
			swatch,
		})
	}
	m.table.SetRows(rows)
}

// lookup resolves a preset name to its RGB triple and #-prefixed hex string.
func (m *Model) lookup(name string) (convert.RGB, string, bool) {
	palette := ansi.FGColors
	if m.layer == ansi.Background {
		palette = ansi.BGColors
	}
	c, err := palette.Get(name)
	if err != nil {
		return convert.RGB{}, "", false
	}
	rgb, err := c.RGB()
	if err != nil {
		return convert.RGB{}, "", false
	}
	hex, err := c.Hex()
	if err != nil {
		return convert.RGB{}, "", false
	}
	return rgb, string(hex.WithHash()), true
}

// Init initializes the browser model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleLayer):
			if m.layer == ansi.Foreground {
				m.layer = ansi.Background
			} else {
				m.layer = ansi.Foreground
			}
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(fmt.Sprintf("COLORS - %s", strings.ToUpper(m.layer.String()))))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")

	b.WriteString(m.renderDetail())
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderDetail shows the selected color in every supported color space.
func (m Model) renderDetail() string {
	row := m.table.SelectedRow()
	if row == nil {
		return ""
	}
	rgb, hex, ok := m.lookup(row[0])
	if !ok {
		return ""
	}

	hsl, err := convert.RGBToHSL(rgb, detailPlaces)
	if err != nil {
		return ""
	}
	hsv, err := convert.RGBToHSV(rgb, detailPlaces)
	if err != nil {
		return ""
	}
	cmyk, err := convert.RGBToCMYK(rgb, detailPlaces)
	if err != nil {
		return ""
	}

	detailStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return detailStyle.Render(fmt.Sprintf(
		"%s  hsl(%g, %g%%, %g%%)  hsv(%g, %g%%, %g%%)  cmyk(%g, %g, %g, %g)",
		hex, hsl.H, hsl.S, hsl.L, hsv.H, hsv.S, hsv.V, cmyk.C, cmyk.M, cmyk.Y, cmyk.K,
	))
}

// Run starts the interactive color browser.
func Run(layer ansi.Layer) error {
	p := tea.NewProgram(
		NewModel(layer),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
