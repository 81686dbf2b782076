package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/keys"
	"github.com/ticksolve/ticksolve/internal/theme"
)

// Model is the help overlay: the full keymap plus a reminder of the
// ticket workflow, shown over whatever view the user came from.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(k *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	h.ShowAll = true
	return Model{
		keys:   k,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view. Closing the overlay is the
// root model's job; nothing here reacts to input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay, centered in the content area.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite)
	workflowStyle := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		MarginBottom(1)

	m.help.Width = m.width - 8

	panel := theme.DetailPanelStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Keyboard Shortcuts"),
		workflowStyle.Render("open a ticket with enter, then e to edit or d to delete"),
		m.help.View(m.keys),
		"",
		theme.HelpStyle.Render("? or esc to close"),
	))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(panel)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 8
}
