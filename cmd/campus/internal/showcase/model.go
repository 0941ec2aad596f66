// Package showcase runs the admin screen as a full-screen terminal program.
package showcase

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/campusui/campus/cmd/campus/internal/screen"
)

// headerLines is the number of rows drawn above the document.
const headerLines = 2

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type frameMsg time.Time

// Model is the bubbletea model wrapping a screen driver.
type Model struct {
	driver  *screen.Driver
	keys    KeyMap
	title   string
	width   int
	height  int
	ticking bool
}

// New creates a model for driver.
func New(driver *screen.Driver, title string) *Model {
	return &Model{driver: driver, keys: DefaultKeyMap(), title: title}
}

// Run starts the program on the alternate screen with mouse support.
func Run(driver *screen.Driver, title string) error {
	p := tea.NewProgram(New(driver, title), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.flush()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		m.ticking = false

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.driver.PressAt(msg.X, msg.Y-headerLines)
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}

	return m, m.flush()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if m.driver.Type(string(msg.Runes)) {
			return
		}
	case key.Matches(msg, m.keys.Backspace):
		m.driver.Backspace()
		return
	}
	for _, k := range m.keys.domKeys() {
		if key.Matches(msg, k.binding) {
			m.driver.Key(k.key, k.shift)
			return
		}
	}
}

// flush runs pending frames and keeps a tick going while timers are
// active.
func (m *Model) flush() tea.Cmd {
	m.driver.Frame()
	if m.ticking || !m.driver.Engine().NeedsFrame() {
		return nil
	}
	m.ticking = true
	return tea.Tick(screen.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// View implements tea.Model.
func (m *Model) View() string {
	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	return titleStyle.Render(m.title) + "\n\n" +
		m.driver.Screen().String() + "\n\n" +
		helpStyle.Render(strings.Join(help, " • "))
}
