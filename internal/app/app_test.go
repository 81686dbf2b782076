package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/repo"
	"github.com/ticksolve/ticksolve/internal/session"
	"github.com/ticksolve/ticksolve/internal/ui/detail"
	loginview "github.com/ticksolve/ticksolve/internal/ui/login"
	"github.com/ticksolve/ticksolve/internal/ui/ticketform"
	"github.com/ticksolve/ticksolve/internal/ui/ticketlist"
	"github.com/ticksolve/ticksolve/tests/testutil"
)

func newTestApp(t *testing.T) (Model, *repo.Repository) {
	t.Helper()

	tickets := repo.New(context.Background(), testutil.NewTestTicketStore(t), nil)
	cfg := &model.AppConfig{
		Profile: model.ProfileConfig{
			Name:      "Test Student",
			StudentID: "20260042",
			Email:     "test@example.com",
		},
	}

	sess := session.NewWithStore(testutil.NewMemoryCredentials(), nil)
	m := New(cfg, tickets, sess)
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, tickets
}

// apply sends a message through Update and returns the resulting root model.
func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	mdl, _ := m.Update(msg)
	got, ok := mdl.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want app.Model", mdl)
	}
	return got
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func loggedIn(t *testing.T, m Model) Model {
	t.Helper()
	return apply(t, m, loginview.SubmittedMsg{StudentID: "20260042"})
}

func seedTicket(t *testing.T, tickets *repo.Repository) model.Ticket {
	t.Helper()
	return tickets.Create(context.Background(), model.Draft{
		Title:       "Wi-Fi down",
		Description: "Cannot connect in dorm B",
		Priority:    model.PriorityHigh,
		Category:    "Technical",
	})
}

func TestStartsAtLogin(t *testing.T) {
	m, _ := newTestApp(t)

	if m.currentView != ViewLogin {
		t.Fatalf("currentView = %v, want ViewLogin", m.currentView)
	}
}

func TestLoginEntersDashboard(t *testing.T) {
	m, _ := newTestApp(t)

	m = loggedIn(t, m)

	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList", m.currentView)
	}
	if m.activeTab != TabDashboard {
		t.Errorf("activeTab = %v, want TabDashboard", m.activeTab)
	}
	if !m.session.Active() {
		t.Error("session not active after login")
	}
	if m.session.StudentID != "20260042" {
		t.Errorf("session StudentID = %q", m.session.StudentID)
	}
}

func TestSelectOpensDetail(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)

	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})

	if m.currentView != ViewDetail {
		t.Errorf("currentView = %v, want ViewDetail", m.currentView)
	}
	if m.selectedID != ticket.ID {
		t.Errorf("selectedID = %q, want %q", m.selectedID, ticket.ID)
	}
}

func TestSelectMissingTicketStaysOnList(t *testing.T) {
	m, _ := newTestApp(t)
	m = loggedIn(t, m)

	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: "no-such-id"})

	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList", m.currentView)
	}
	if m.statusMessage != "Ticket no longer exists" {
		t.Errorf("statusMessage = %q", m.statusMessage)
	}
}

func TestBackFromDetailClearsSelection(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})

	m = apply(t, m, detail.BackMsg{})

	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList", m.currentView)
	}
	if m.selectedID != "" {
		t.Errorf("selectedID = %q, want empty", m.selectedID)
	}
}

func TestTabSwitchKeepsDetailOpen(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})

	m = apply(t, m, keyPress("2"))

	if m.activeTab != TabHistory {
		t.Errorf("activeTab = %v, want TabHistory", m.activeTab)
	}
	if m.currentView != ViewDetail {
		t.Errorf("tab switch closed the detail view: currentView = %v", m.currentView)
	}
	if m.selectedID != ticket.ID {
		t.Errorf("tab switch dropped the selection: %q", m.selectedID)
	}
}

func TestTabKeyCycles(t *testing.T) {
	m, _ := newTestApp(t)
	m = loggedIn(t, m)

	want := []Tab{TabHistory, TabProfile, TabDashboard}
	for _, tab := range want {
		m = apply(t, m, keyPress("tab"))
		if m.activeTab != tab {
			t.Fatalf("activeTab = %v, want %v", m.activeTab, tab)
		}
	}
}

func TestEditRequestOpensSeededForm(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})

	m = apply(t, m, detail.EditRequestMsg{TicketID: ticket.ID})

	if m.currentView != ViewTicketEdit {
		t.Errorf("currentView = %v, want ViewTicketEdit", m.currentView)
	}
	if m.selectedID != ticket.ID {
		t.Errorf("selectedID = %q, want %q", m.selectedID, ticket.ID)
	}
}

func TestFormCancelReturnsToDetailWhenEditing(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})
	m = apply(t, m, detail.EditRequestMsg{TicketID: ticket.ID})

	m = apply(t, m, ticketform.CancelMsg{})

	if m.currentView != ViewDetail {
		t.Errorf("currentView = %v, want ViewDetail", m.currentView)
	}
	if m.selectedID != ticket.ID {
		t.Errorf("cancel dropped the selection: %q", m.selectedID)
	}
}

func TestFormCancelReturnsToListWhenCreating(t *testing.T) {
	m, _ := newTestApp(t)
	m = loggedIn(t, m)
	m = apply(t, m, keyPress("n"))

	if m.currentView != ViewTicketCreate {
		t.Fatalf("currentView = %v, want ViewTicketCreate", m.currentView)
	}

	m = apply(t, m, ticketform.CancelMsg{})

	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList", m.currentView)
	}
}

func TestSubmitCreateAddsTicket(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	m = apply(t, m, keyPress("n"))

	m = apply(t, m, ticketform.SubmittedMsg{
		Draft: model.Draft{
			Title:       "Projector broken",
			Description: "Blue screen in Lecture Hall A",
		},
	})

	if tickets.Len() != 1 {
		t.Fatalf("repository has %d tickets, want 1", tickets.Len())
	}
	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList", m.currentView)
	}
	if m.statusMessage != "Ticket created" {
		t.Errorf("statusMessage = %q", m.statusMessage)
	}
}

func TestSubmitEditReturnsToDetail(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})
	m = apply(t, m, detail.EditRequestMsg{TicketID: ticket.ID})

	m = apply(t, m, ticketform.SubmittedMsg{
		Draft: model.Draft{
			Title:       "Wi-Fi still down",
			Description: "Cannot connect in dorm B or the library",
			Priority:    model.PriorityLow,
			Category:    "Technical",
		},
		Editing:  true,
		TicketID: ticket.ID,
	})

	if m.currentView != ViewDetail {
		t.Errorf("currentView = %v, want ViewDetail", m.currentView)
	}
	if m.statusMessage != "Ticket updated" {
		t.Errorf("statusMessage = %q", m.statusMessage)
	}
	got, _ := tickets.FindByID(ticket.ID)
	if got.Title != "Wi-Fi still down" {
		t.Errorf("repository title = %q, edit not applied", got.Title)
	}
}

func TestSubmitEditOfMissingTicket(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)

	m = apply(t, m, ticketform.SubmittedMsg{
		Draft: model.Draft{
			Title:       "Wi-Fi still down",
			Description: "Cannot connect in dorm B or the library",
		},
		Editing:  true,
		TicketID: "no-such-id",
	})

	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList", m.currentView)
	}
	if m.selectedID != "" {
		t.Errorf("selectedID = %q, want empty", m.selectedID)
	}
	if m.statusMessage != "Ticket no longer exists" {
		t.Errorf("statusMessage = %q", m.statusMessage)
	}
	if tickets.Len() != 0 {
		t.Errorf("repository has %d tickets, want 0", tickets.Len())
	}
}

func TestDeleteConfirmedRemovesTicket(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})

	m = apply(t, m, detail.DeleteConfirmedMsg{TicketID: ticket.ID})

	if tickets.Len() != 0 {
		t.Fatalf("repository has %d tickets after delete, want 0", tickets.Len())
	}
	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList", m.currentView)
	}
	if m.selectedID != "" {
		t.Errorf("selectedID = %q, want empty", m.selectedID)
	}
	if m.statusMessage != "Ticket deleted" {
		t.Errorf("statusMessage = %q", m.statusMessage)
	}
}

func TestHelpTogglesBackToPreviousView(t *testing.T) {
	m, _ := newTestApp(t)
	m = loggedIn(t, m)

	m = apply(t, m, keyPress("?"))
	if m.currentView != ViewHelp {
		t.Fatalf("currentView = %v, want ViewHelp", m.currentView)
	}

	m = apply(t, m, keyPress("?"))
	if m.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList after closing help", m.currentView)
	}
}

func TestEscClosesHelp(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})

	m = apply(t, m, keyPress("?"))
	if m.currentView != ViewHelp {
		t.Fatalf("currentView = %v, want ViewHelp", m.currentView)
	}

	m = apply(t, m, keyPress("esc"))

	if m.currentView != ViewDetail {
		t.Errorf("currentView = %v, want ViewDetail after esc closes help", m.currentView)
	}
	if m.selectedID != ticket.ID {
		t.Errorf("closing help dropped the selection: %q", m.selectedID)
	}
}

func TestNewTicketKeyClearsSelection(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})
	m = apply(t, m, detail.BackMsg{})

	m = apply(t, m, keyPress("n"))

	if m.currentView != ViewTicketCreate {
		t.Errorf("currentView = %v, want ViewTicketCreate", m.currentView)
	}
	if m.selectedID != "" {
		t.Errorf("selectedID = %q, want empty", m.selectedID)
	}
}

func TestDigitKeysAreTextInsideForm(t *testing.T) {
	m, _ := newTestApp(t)
	m = loggedIn(t, m)
	m = apply(t, m, keyPress("n"))

	m = apply(t, m, keyPress("2"))

	if m.activeTab != TabDashboard {
		t.Errorf("digit keypress switched tabs while a form was open: %v", m.activeTab)
	}
	if m.currentView != ViewTicketCreate {
		t.Errorf("currentView = %v, want ViewTicketCreate", m.currentView)
	}
}

func TestStatusMessageClearedByNextKeypress(t *testing.T) {
	m, tickets := newTestApp(t)
	m = loggedIn(t, m)
	ticket := seedTicket(t, tickets)
	m = apply(t, m, ticketlist.SelectedTicketMsg{TicketID: ticket.ID})
	m = apply(t, m, detail.DeleteConfirmedMsg{TicketID: ticket.ID})

	if m.statusMessage == "" {
		t.Fatal("expected a transient status message after delete")
	}

	m = apply(t, m, keyPress("2"))

	if m.statusMessage != "" {
		t.Errorf("statusMessage = %q, want cleared", m.statusMessage)
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m, _ := newTestApp(t)
	m = loggedIn(t, m)

	m = apply(t, m, keyPress("L"))

	if m.currentView != ViewLogin {
		t.Errorf("currentView = %v, want ViewLogin", m.currentView)
	}
	if m.session.Active() {
		t.Error("session still active after logout")
	}
	if m.activeTab != TabDashboard {
		t.Errorf("activeTab = %v, want TabDashboard", m.activeTab)
	}
}

func TestHistoryTabHeading(t *testing.T) {
	m, _ := newTestApp(t)
	m = loggedIn(t, m)

	m = apply(t, m, keyPress("2"))
	if m.activeTab != TabHistory {
		t.Fatalf("activeTab = %v, want TabHistory", m.activeTab)
	}

	m = apply(t, m, keyPress("1"))
	if m.activeTab != TabDashboard {
		t.Fatalf("activeTab = %v, want TabDashboard", m.activeTab)
	}
}
