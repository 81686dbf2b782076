package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ticksolve/ticksolve/internal/repo"
	"github.com/ticksolve/ticksolve/internal/ui"
	loginview "github.com/ticksolve/ticksolve/internal/ui/login"
	"github.com/ticksolve/ticksolve/internal/ui/ticketform"
)

// loginFresh builds a login view sized to the current layout.
func loginFresh(rememberedID string, l ui.Layout) loginview.Model {
	return loginview.New(rememberedID, l.ContentWidth(), l.ContentHeight())
}

// refreshTickets pushes the repository's current collection into the
// list view.
func (m *Model) refreshTickets() tea.Cmd {
	return m.ticketList.SetTickets(m.tickets.List())
}

// openDetail resolves the selected id through the repository and shows
// its detail view. A ticket that vanished between render and keypress
// degrades to a refreshed list.
func (m Model) openDetail(id string) (tea.Model, tea.Cmd) {
	t, ok := m.tickets.FindByID(id)
	if !ok {
		m.statusMessage = "Ticket no longer exists"
		return m, m.refreshTickets()
	}

	m.selectedID = t.ID
	m.detailView.SetTicket(t)
	m.currentView = ViewDetail
	return m, nil
}

// openEditForm seeds the form with the ticket's current values. The
// ticket stays selected while the form is open.
func (m Model) openEditForm(id string) (tea.Model, tea.Cmd) {
	t, ok := m.tickets.FindByID(id)
	if !ok {
		m.statusMessage = "Ticket no longer exists"
		m.selectedID = ""
		m.currentView = ViewList
		return m, m.refreshTickets()
	}

	m.selectedID = t.ID
	m.currentView = ViewTicketEdit
	return m, m.formView.StartEdit(t)
}

// submitForm routes a completed form to the repository: create for new
// tickets, update for edits. An edit keeps the ticket selected and
// returns to its (updated) detail; a create returns to the list.
func (m Model) submitForm(msg ticketform.SubmittedMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	if !msg.Editing {
		m.tickets.Create(ctx, msg.Draft)
		m.currentView = ViewList
		m.statusMessage = "Ticket created"
		return m, m.refreshTickets()
	}

	t, err := m.tickets.Update(ctx, msg.TicketID, msg.Draft)
	if errors.Is(err, repo.ErrNotFound) {
		m.statusMessage = "Ticket no longer exists"
		m.selectedID = ""
		m.currentView = ViewList
		return m, m.refreshTickets()
	}

	m.detailView.SetTicket(t)
	m.currentView = ViewDetail
	m.statusMessage = "Ticket updated"
	return m, m.refreshTickets()
}

// deleteTicket runs after the user confirmed the prompt in the detail
// view. Deleting an id that is already gone changes nothing beyond a
// visible notice.
func (m Model) deleteTicket(id string) (tea.Model, tea.Cmd) {
	if m.tickets.Delete(context.Background(), id) {
		m.statusMessage = "Ticket deleted"
	} else {
		m.statusMessage = "Ticket no longer exists"
	}

	m.selectedID = ""
	m.currentView = ViewList
	return m, m.refreshTickets()
}

// switchTab changes the active tab only. Selection and form state are
// untouched: a detail view or form stays on screen across tab switches.
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd, bool) {
	m.activeTab = tab

	switch tab {
	case TabHistory:
		m.ticketList.SetHeading("Ticket History", "No ticket history available.")
	default:
		m.ticketList.SetHeading("Dashboard", "No tickets yet.")
	}

	return m, nil, true
}

// logout drops the in-process session and returns to the login screen
// with the student ID pre-filled. The ticket collection is untouched.
func (m Model) logout() (tea.Model, tea.Cmd, bool) {
	m.session.End()
	m.selectedID = ""
	m.currentView = ViewLogin
	m.activeTab = TabDashboard
	m.loginView = loginFresh(m.session.RememberedStudentID(), m.layout)
	return m, m.loginView.Init(), true
}
