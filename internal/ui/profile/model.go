package profile

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/theme"
)

// Model is the Profile tab: a static card with the locally configured
// student identity. There is no account backend to edit.
type Model struct {
	profile model.ProfileConfig
	width   int
	height  int
}

// New creates a new profile view model.
func New(p model.ProfileConfig, width, height int) Model {
	return Model{
		profile: p,
		width:   width,
		height:  height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the profile view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the profile card.
func (m Model) View() string {
	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite)
	metaStyle := lipgloss.NewStyle().
		Foreground(theme.ColorGray)

	card := lipgloss.JoinVertical(
		lipgloss.Center,
		nameStyle.Render(m.profile.Name),
		metaStyle.Render("ID: "+m.profile.StudentID),
		metaStyle.Render(m.profile.Email),
	)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(theme.DetailPanelStyle.Render(card))
}

// SetSize updates the profile view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
