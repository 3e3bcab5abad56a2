// Package tui provides a terminal user interface for exploring chords
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/daviddekleer/EasyMIDI/pkg/theory"
)

// Piano-roll inspired color scheme
var (
	ivory    = lipgloss.Color("#FFFFF0")
	keyGold  = lipgloss.Color("#FFD700")
	deepBlue = lipgloss.Color("#5F87FF")
	darkGray = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(keyGold).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(deepBlue).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(ivory).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(keyGold).
			Padding(1, 2)
)

// Model represents the TUI model
type Model struct {
	symbol textinput.Model
	keys   []string
	keyIdx int
	minor  bool
	octave int
	width  int
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "I, V7, IVsus2, Imaj7**..."
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 20

	return Model{
		symbol: ti,
		keys:   theory.Tonics(),
		octave: 4,
	}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "left":
			m.keyIdx = (m.keyIdx + len(m.keys) - 1) % len(m.keys)
			return m, nil
		case "right":
			m.keyIdx = (m.keyIdx + 1) % len(m.keys)
			return m, nil
		case "up":
			if m.octave < 8 {
				m.octave++
			}
			return m, nil
		case "down":
			if m.octave > 1 {
				m.octave--
			}
			return m, nil
		case "tab":
			m.minor = !m.minor
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.symbol, cmd = m.symbol.Update(msg)
	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("EasyMIDI chord explorer"))
	b.WriteString("\n\n")

	mode := theory.Major
	if m.minor {
		mode = theory.Minor
	}
	key := m.keys[m.keyIdx]

	b.WriteString(labelStyle.Render("Key: "))
	b.WriteString(noteStyle.Render(fmt.Sprintf("%s %s", key, mode)))
	b.WriteString("   ")
	b.WriteString(labelStyle.Render("Octave: "))
	b.WriteString(noteStyle.Render(fmt.Sprintf("%d", m.octave)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Symbol: "))
	b.WriteString(m.symbol.View())
	b.WriteString("\n\n")

	b.WriteString(m.renderChord(key, mode))

	b.WriteString(helpStyle.Render("←/→ key · ↑/↓ octave · tab major/minor · esc quit"))
	return b.String()
}

func (m Model) renderChord(key string, mode theory.Mode) string {
	symbol := strings.TrimSpace(m.symbol.Value())
	if symbol == "" {
		return boxStyle.Render("type a roman numeral to resolve it") + "\n"
	}

	spec := theory.ChordSpec{
		Symbol: symbol,
		Key:    key,
		Mode:   mode,
		Octave: m.octave,
	}
	chord, err := spec.Resolve()
	if err != nil {
		return boxStyle.Render(errorStyle.Render(err.Error())) + "\n"
	}

	var lines []string
	for _, n := range chord.Notes() {
		lines = append(lines, fmt.Sprintf("%s  (midi %d)", noteStyle.Render(n.String()), n.Number()))
	}
	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// Run starts the TUI
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
