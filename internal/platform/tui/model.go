package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/engine"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// Model is the Bubble Tea model that forwards terminal input to the engine
// and draws the presented surfaces.
type Model struct {
	b        *Backend
	keys     KeyMap
	held     map[core.Key]time.Time
	now      func() time.Time
	lastX    int
	lastY    int
	hasMouse bool
	done     bool
}

// NewModel creates the model for b.
func NewModel(b *Backend) Model {
	return Model{
		b:    b,
		keys: DefaultKeyMap(),
		held: make(map[core.Key]time.Time),
		now:  time.Now,
	}
}

// Init starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(RefreshRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.b.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.releaseExpired(time.Time(msg))
		return m, tickCmd(RefreshRate)

	case engineDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards a press. Repeats of a held key only extend its hold.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.b.requestQuit()
		return m, nil
	}

	k := TranslateKey(msg)
	if k == core.KeyUnknown {
		m.b.emit(engine.RawEvent{Kind: engine.RawKeyDown, Key: k})
		return m, nil
	}
	if _, down := m.held[k]; !down {
		m.b.emit(engine.RawEvent{Kind: engine.RawKeyDown, Key: k})
	}
	m.held[k] = m.now()
	return m, nil
}

// releaseExpired synthesizes releases for keys not repeated within the hold.
func (m Model) releaseExpired(now time.Time) {
	for k, last := range m.held {
		if now.Sub(last) >= m.b.hold {
			delete(m.held, k)
			m.b.emit(engine.RawEvent{Kind: engine.RawKeyUp, Key: k})
		}
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion {
		return m, nil
	}
	if m.hasMouse && (msg.X != m.lastX || msg.Y != m.lastY) {
		m.b.emit(engine.RawEvent{Kind: engine.RawMouseMotion, DX: msg.X - m.lastX, DY: msg.Y - m.lastY})
	}
	m.lastX, m.lastY, m.hasMouse = msg.X, msg.Y, true
	m.b.setPointer(msg.X, msg.Y)
	return m, nil
}

// View draws every surface side by side, each with its title above it and
// scaled to its share of the terminal width.
func (m Model) View() string {
	if m.done {
		return ""
	}

	frames, cols, rows := m.b.frames()
	if len(frames) == 0 {
		return ""
	}

	total := 0
	for _, f := range frames {
		total += f.width
	}
	gaps := len(frames) - 1
	avail := max(cols-gaps, len(frames))
	pixRows := max((rows-1)*2, 2)

	blocks := make([]string, 0, 2*len(frames))
	tiles := make([]tile, 0, len(frames))
	col := 0
	for i, f := range frames {
		share := max(avail*f.width/total, 1)
		dw, dh := Fit(f.width, f.height, share, pixRows)
		img := Scale(f.img, dw, dh)

		title := titleStyle.MaxWidth(max(dw, 1)).Render(f.title)
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, title, RenderHalfBlocks(img)))
		if i < gaps {
			blocks = append(blocks, " ")
		}
		tiles = append(tiles, tile{col: col, row: 1, cols: dw, rows: (dh + 1) / 2, surface: f.owner})
		col += dw + 1
	}
	m.b.setTiles(tiles)

	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
