package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ticksolve/ticksolve/internal/keys"
	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/repo"
	"github.com/ticksolve/ticksolve/internal/session"
	"github.com/ticksolve/ticksolve/internal/ui"
	"github.com/ticksolve/ticksolve/internal/ui/detail"
	helpview "github.com/ticksolve/ticksolve/internal/ui/help"
	loginview "github.com/ticksolve/ticksolve/internal/ui/login"
	"github.com/ticksolve/ticksolve/internal/ui/profile"
	"github.com/ticksolve/ticksolve/internal/ui/ticketform"
	"github.com/ticksolve/ticksolve/internal/ui/ticketlist"
)

// ViewState represents the current active view in the application.
// Exactly one view is active at a time; the reachable-but-unintended
// combinations of independent boolean flags do not exist here.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewList
	ViewDetail
	ViewTicketCreate
	ViewTicketEdit
	ViewHelp
)

// Tab identifies the bottom-bar tabs. The active tab is independent of
// the view state: switching tabs never closes a form or a detail view,
// tab content simply stays hidden until the user returns to the list.
type Tab int

const (
	TabDashboard Tab = iota
	TabHistory
	TabProfile
)

// tabNames are the tab bar labels, indexed by Tab.
var tabNames = []string{"Dashboard", "History", "Profile"}

// Model is the root Bubble Tea model that manages view routing, layout,
// and access to the ticket repository.
type Model struct {
	currentView  ViewState
	previousView ViewState
	activeTab    Tab

	// selectedID is a weak reference: always resolved through the
	// repository, never an independent ticket copy.
	selectedID string

	layout  ui.Layout
	tickets *repo.Repository
	session *session.Session
	keys    *keys.KeyMap

	loginView   loginview.Model
	ticketList  ticketlist.Model
	detailView  detail.Model
	formView    ticketform.Model
	profileView profile.Model
	helpView    helpview.Model

	ready         bool
	statusMessage string
}

// New creates the root application model. The repository has already
// loaded the persisted collection; view state always starts fresh.
func New(cfg *model.AppConfig, tickets *repo.Repository, sess *session.Session) Model {
	k := keys.DefaultKeyMap()

	m := Model{
		currentView: ViewLogin,
		tickets:     tickets,
		session:     sess,
		keys:        k,
		loginView:   loginview.New(sess.RememberedStudentID(), 80, 24),
		ticketList:  ticketlist.New(k, 80, 24),
		detailView:  detail.New(k, 80, 24),
		formView:    ticketform.New(80, 24),
		profileView: profile.New(cfg.Profile, 80, 24),
		helpView:    helpview.New(k, 80, 24),
	}
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.loginView.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.loginView.SetSize(contentWidth, contentHeight)
		m.ticketList.SetSize(contentWidth, contentHeight)
		m.detailView.SetSize(contentWidth, contentHeight)
		m.formView.SetSize(contentWidth, contentHeight)
		m.profileView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		cmd := m.refreshTickets()
		// Forward to the active view so huh forms can calculate layout.
		mdl, viewCmd := m.updateActiveView(msg)
		return mdl, tea.Batch(cmd, viewCmd)

	case loginview.SubmittedMsg:
		m.session.Begin(msg.StudentID)
		m.currentView = ViewList
		m.activeTab = TabDashboard
		m.statusMessage = ""
		return m, m.refreshTickets()

	case ticketlist.SelectedTicketMsg:
		return m.openDetail(msg.TicketID)

	case detail.BackMsg:
		m.currentView = ViewList
		m.selectedID = ""
		return m, nil

	case detail.EditRequestMsg:
		return m.openEditForm(msg.TicketID)

	case detail.DeleteConfirmedMsg:
		return m.deleteTicket(msg.TicketID)

	case ticketform.SubmittedMsg:
		return m.submitForm(msg)

	case ticketform.CancelMsg:
		// Cancel keeps the selection: an edit returns to the ticket's
		// detail, a create returns to the list.
		if m.selectedID != "" {
			m.currentView = ViewDetail
		} else {
			m.currentView = ViewList
		}
		return m, nil

	case tea.KeyMsg:
		if mdl, cmd, handled := m.handleGlobalKeys(msg); handled {
			return mdl, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that are routed by the root model
// rather than the active view. Returns handled=false when the key should
// fall through to the view.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	// A new keypress retires any transient status message.
	m.statusMessage = ""

	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	// Form and login views own their keys entirely; digits and letters
	// are text there.
	if m.currentView == ViewLogin ||
		m.currentView == ViewTicketCreate ||
		m.currentView == ViewTicketEdit {
		mdl, cmd := m.updateActiveView(msg)
		return mdl, cmd, true
	}

	switch msg.String() {
	case "q":
		if m.currentView == ViewList {
			return m, tea.Quit, true
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}

	case "n":
		if m.currentView == ViewList {
			m.selectedID = ""
			m.currentView = ViewTicketCreate
			return m, m.formView.StartCreate(), true
		}

	case "L":
		if m.currentView == ViewList {
			return m.logout()
		}

	case "1":
		return m.switchTab(TabDashboard)
	case "2":
		return m.switchTab(TabHistory)
	case "3":
		return m.switchTab(TabProfile)
	case "tab":
		return m.switchTab((m.activeTab + 1) % Tab(len(tabNames)))
	}

	mdl, cmd := m.updateActiveView(msg)
	return mdl, cmd, true
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewList:
		if m.activeTab == TabProfile {
			m.profileView, cmd = m.profileView.Update(msg)
		} else {
			m.ticketList, cmd = m.ticketList.Update(msg)
		}
	case ViewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case ViewTicketCreate, ViewTicketEdit:
		m.formView, cmd = m.formView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.currentView == ViewLogin {
		return m.loginView.View()
	}

	right := ""
	if m.session.Active() {
		right = "ID " + m.session.StudentID
	}
	header := m.layout.RenderHeader("TickSolve", right)
	content := m.renderContent()
	tabBar := m.layout.RenderTabBar(tabNames, int(m.activeTab))
	statusBar := m.layout.RenderStatusBar(m.statusLine())

	return m.layout.RenderWithFrame(header, content, tabBar, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		if m.activeTab == TabProfile {
			return m.profileView.View()
		}
		return m.ticketList.View()
	case ViewDetail:
		return m.detailView.View()
	case ViewTicketCreate, ViewTicketEdit:
		return m.formView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// statusLine returns the status bar content: a transient message when
// one is pending, otherwise keyboard hints for the active view.
func (m Model) statusLine() string {
	if m.statusMessage != "" {
		return m.statusMessage
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewDetail:
		if m.detailView.Confirming() {
			return "y delete | esc cancel"
		}
		return "esc back | e edit | d delete | j/k scroll"
	case ViewTicketCreate, ViewTicketEdit:
		return "enter submit | esc cancel"
	default:
		if m.activeTab == TabProfile {
			return "1 dashboard | 2 history | L log out | ? help"
		}
		return "q quit | ? help | n new | enter open | 1/2/3 tabs"
	}
}
