package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/keys"
	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// EditRequestMsg signals the parent to open the edit form for a ticket.
type EditRequestMsg struct {
	TicketID string
}

// DeleteConfirmedMsg signals that the user explicitly confirmed deletion.
// The parent invokes the repository only after receiving this.
type DeleteConfirmedMsg struct {
	TicketID string
}

// Model is the ticket detail view component.
type Model struct {
	ticket     model.Ticket
	hasTicket  bool
	confirming bool
	viewport   viewport.Model
	keys       *keys.KeyMap
	width      int
	height     int
}

// New creates a new detail view model.
func New(k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetTicket updates the ticket being displayed and re-renders the content.
// Any pending delete confirmation is discarded.
func (m *Model) SetTicket(t model.Ticket) {
	m.ticket = t
	m.hasTicket = true
	m.confirming = false
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Confirming reports whether the delete confirmation prompt is showing.
func (m Model) Confirming() bool {
	return m.confirming
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.confirming {
			return m.handleConfirmKeys(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Edit):
			if m.hasTicket {
				id := m.ticket.ID
				return m, func() tea.Msg { return EditRequestMsg{TicketID: id} }
			}

		case key.Matches(msg, m.keys.Delete):
			if m.hasTicket {
				m.confirming = true
				return m, nil
			}
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleConfirmKeys processes input while the confirmation prompt is up.
// Only an explicit "y" deletes; everything else keeps the ticket.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		id := m.ticket.ID
		return m, func() tea.Msg { return DeleteConfirmedMsg{TicketID: id} }

	case "esc", "n", "N":
		m.confirming = false
		return m, nil
	}
	return m, nil
}

// View renders the detail view.
func (m Model) View() string {
	if !m.hasTicket {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No ticket selected")
	}

	if m.confirming {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.viewport.View(),
			m.renderConfirmPrompt(),
		)
	}

	return m.viewport.View()
}

// renderConfirmPrompt draws the destructive-action confirmation line.
func (m Model) renderConfirmPrompt() string {
	prompt := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorRed).
		Render("Delete this ticket? This action cannot be undone.")

	hint := theme.HelpStyle.Render("  y delete | esc cancel")

	return lipgloss.JoinHorizontal(lipgloss.Top, prompt, hint)
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	t := m.ticket
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, titleStyle.Render(t.Title))

	// Badges line: status + priority + category
	statusBadge := theme.StatusStyle(t.Status).Render(t.Status)
	priBadge := theme.PriorityStyle(t.Priority).Render(strings.ToUpper(t.Priority))
	catBadge := lipgloss.NewStyle().
		Foreground(theme.ColorBlue).
		Render(t.Category)

	badgeLine := lipgloss.JoinHorizontal(
		lipgloss.Top, statusBadge, "  ", priBadge, "  ", catBadge,
	)
	sections = append(sections, badgeLine)
	sections = append(sections, "")

	// Metadata
	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	sections = append(sections, fmt.Sprintf(
		"%s   %s",
		metaStyle.Render("Created:"),
		valStyle.Render(t.CreatedAt.Format("2006-01-02 15:04")),
	))
	sections = append(sections, fmt.Sprintf(
		"%s   %s",
		metaStyle.Render("Updated:"),
		valStyle.Render(t.UpdatedAt.Format("2006-01-02 15:04")),
	))

	// Separator
	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", min(m.width-4, 80)))
	sections = append(sections, "")
	sections = append(sections, separator)
	sections = append(sections, "")

	// Description
	descHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	sections = append(sections, descHeaderStyle.Render("Description"))
	sections = append(sections, t.Description)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
}
