package ticketform

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/theme"
	"github.com/ticksolve/ticksolve/internal/validate"
)

// SubmittedMsg is dispatched when the form completes. For edits, TicketID
// names the ticket being updated.
type SubmittedMsg struct {
	Draft    model.Draft
	Editing  bool
	TicketID string
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title       string
	description string
	priority    string
	category    string
}

// Model is the Bubble Tea model for the ticket create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string
	width    int
	height   int
}

// New creates a new ticket form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{priority: model.PriorityMedium, category: model.Categories[0]},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new ticket.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.fb.title = ""
	m.fb.description = ""
	m.fb.priority = model.PriorityMedium
	m.fb.category = model.Categories[0]
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing ticket, seeded
// with its current field values.
func (m *Model) StartEdit(t model.Ticket) tea.Cmd {
	m.editMode = true
	m.editID = t.ID
	m.fb.title = t.Title
	m.fb.description = t.Description
	m.fb.priority = t.Priority
	m.fb.category = t.Category
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the ticket form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the ticket form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "Create New Ticket"
	if m.editMode {
		titleText = "Edit Ticket"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// buildForm assembles the huh form. Title and description carry the
// validator's rules so errors surface inline next to the field; priority
// and category are pick-lists and cannot fail.
func (m *Model) buildForm() *huh.Form {
	categoryOpts := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		categoryOpts[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Enter ticket title").
				Value(&m.fb.title).
				Validate(validate.Title),
			huh.NewText().
				Title("Description").
				Placeholder("Describe your issue").
				Value(&m.fb.description).
				Validate(validate.Description),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", model.PriorityLow),
					huh.NewOption("Medium", model.PriorityMedium),
					huh.NewOption("High", model.PriorityHigh),
				).
				Value(&m.fb.priority),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&m.fb.category),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	draft := model.Draft{
		Title:       m.fb.title,
		Description: m.fb.description,
		Priority:    m.fb.priority,
		Category:    m.fb.category,
	}

	editing := m.editMode
	id := m.editID
	return func() tea.Msg {
		return SubmittedMsg{Draft: draft, Editing: editing, TicketID: id}
	}
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}
