package ticketlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/keys"
	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/theme"
)

// SelectedTicketMsg is sent when the user opens a ticket's detail view.
type SelectedTicketMsg struct {
	TicketID string
}

// Model is the ticket list view component. The same component backs the
// Dashboard and History tabs; only the heading and empty message differ
// (both tabs show the identical unfiltered collection).
type Model struct {
	list         list.Model
	keys         *keys.KeyMap
	emptyMessage string
	width        int
	height       int
}

// New creates a new ticket list model.
func New(k *keys.KeyMap, width, height int) Model {
	delegate := ItemDelegate{}
	l := list.New([]list.Item{}, delegate, width, height-2)
	l.Title = "Dashboard"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:         l,
		keys:         k,
		emptyMessage: "No tickets yet.",
		width:        width,
		height:       height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetTickets replaces the displayed items with the given collection,
// preserving the cursor position where possible.
func (m *Model) SetTickets(tickets []model.Ticket) tea.Cmd {
	items := make([]list.Item, len(tickets))
	for i, t := range tickets {
		items[i] = TicketItem{Ticket: t}
	}
	return m.list.SetItems(items)
}

// SetHeading switches the list title and empty-state message when the
// active tab changes.
func (m *Model) SetHeading(title, emptyMessage string) {
	m.list.Title = title
	m.emptyMessage = emptyMessage
}

// SelectedTicket returns the ticket under the cursor, if any.
func (m Model) SelectedTicket() (model.Ticket, bool) {
	item, ok := m.list.SelectedItem().(TicketItem)
	if !ok {
		return model.Ticket{}, false
	}
	return item.Ticket, true
}

// Update handles messages for the ticket list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Select) {
			item, ok := m.list.SelectedItem().(TicketItem)
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return SelectedTicketMsg{TicketID: item.Ticket.ID}
			}
		}
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the ticket list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

// renderEmptyState shows guidance text when no tickets exist.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	return style.Render(m.emptyMessage + "\n\nPress n to create a ticket.")
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}
