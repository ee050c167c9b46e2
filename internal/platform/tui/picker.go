package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/picofb/internal/registry"
)

// PickerKeyMap defines the key bindings for the demo picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Quit},
	}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model listing runnable demos.
type PickerModel struct {
	demos    []registry.DemoInfo
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	chosen   string
	quitting bool
}

// NewPickerModel creates a picker over demos.
func NewPickerModel(demos []registry.DemoInfo, width, height int) PickerModel {
	h := help.New()
	h.ShowAll = false

	m := PickerModel{
		demos:  demos,
		help:   h,
		keys:   DefaultPickerKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Title", Width: 24},
		{Title: "Size", Width: 9},
		{Title: "Rate", Width: 6},
	}

	// Give the title column whatever is left
	if extra := m.width - 4 - 12 - 9 - 6 - 8; extra > 24 {
		columns[1].Width = min(extra, 40)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.demos))
	for i, d := range m.demos {
		rows[i] = table.Row{
			d.ID,
			d.Title,
			fmt.Sprintf("%dx%d", d.Defaults.Width, d.Defaults.Height),
			fmt.Sprintf("%d", d.Defaults.UpdateRate),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.demos) {
				m.chosen = m.demos[i].ID
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.chosen != "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.MarginBottom(1).Render("PICOFB DEMOS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.demos) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No demos registered.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Chosen returns the selected demo ID, or "" if the picker was dismissed.
func (m PickerModel) Chosen() string {
	return m.chosen
}

// RunPicker shows the picker and returns the chosen demo ID, or "" if the
// user quit.
func RunPicker(demos []registry.DemoInfo, width, height int) (string, error) {
	p := tea.NewProgram(
		NewPickerModel(demos, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return "", nil
	}
	return m.Chosen(), nil
}
