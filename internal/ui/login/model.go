package login

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/theme"
	"github.com/ticksolve/ticksolve/internal/validate"
)

// SubmittedMsg is dispatched when the login form validates. There is no
// backend: a valid form is a successful login.
type SubmittedMsg struct {
	StudentID string
}

const (
	fieldStudentID = iota
	fieldPassword
)

// Model is the login screen: a student ID field, a password field, and
// inline validation errors. It always "succeeds" once the form validates.
type Model struct {
	studentID textinput.Model
	password  textinput.Model
	focused   int
	errors    map[string]string
	width     int
	height    int
}

// New creates the login model, pre-filling the student ID from the
// previous session when one is remembered.
func New(rememberedID string, width, height int) Model {
	id := textinput.New()
	id.Placeholder = "Enter your student ID"
	id.Prompt = "  "
	id.SetValue(rememberedID)

	pw := textinput.New()
	pw.Placeholder = "Enter your password"
	pw.Prompt = "  "
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'

	m := Model{
		studentID: id,
		password:  pw,
		errors:    map[string]string{},
		width:     width,
		height:    height,
	}
	m.focusField(fieldStudentID)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			m.focusField((m.focused + 1) % 2)
			return m, nil

		case "shift+tab", "up":
			m.focusField((m.focused + 1) % 2)
			return m, nil

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focused == fieldStudentID {
		m.studentID, cmd = m.studentID.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submit validates the form; on success it reports the login upward, on
// failure it records the field errors for inline display.
func (m Model) submit() (Model, tea.Cmd) {
	result := validate.Login(m.studentID.Value(), m.password.Value())
	if !result.Valid {
		m.errors = result.FieldErrors
		return m, nil
	}

	m.errors = map[string]string{}
	id := m.studentID.Value()
	return m, func() tea.Msg { return SubmittedMsg{StudentID: id} }
}

// View renders the login screen.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(theme.ColorGray)
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		MarginTop(1)

	sections := []string{
		titleStyle.Render("TickSolve"),
		subtitleStyle.Render("Login to manage your support tickets"),
		"",
		labelStyle.Render("Student ID"),
		m.studentID.View(),
	}
	if msg := m.errors["student_id"]; msg != "" {
		sections = append(sections, theme.ErrorStyle.Render("  "+msg))
	}

	sections = append(sections,
		labelStyle.Render("Password"),
		m.password.View(),
	)
	if msg := m.errors["password"]; msg != "" {
		sections = append(sections, theme.ErrorStyle.Render("  "+msg))
	}

	sections = append(sections, "", theme.HelpStyle.Render("enter login | tab switch field"))

	form := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(form)
}

// SetSize updates the login view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) focusField(field int) {
	m.focused = field
	if field == fieldStudentID {
		m.studentID.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.studentID.Blur()
	}
}
