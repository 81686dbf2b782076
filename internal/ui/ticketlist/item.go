package ticketlist

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/theme"
)

// TicketItem wraps a model.Ticket so it can be used in a bubbles/list.
type TicketItem struct {
	Ticket model.Ticket
}

// FilterValue returns the string used for fuzzy filtering.
func (i TicketItem) FilterValue() string { return i.Ticket.Title }

// Title returns the ticket title for the list.
func (i TicketItem) Title() string { return i.Ticket.Title }

// Description returns a short summary line for the list.
func (i TicketItem) Description() string {
	parts := []string{
		i.Ticket.Status,
		i.Ticket.Category,
		relativeTime(i.Ticket.CreatedAt),
	}
	return strings.Join(parts, " | ")
}

// ItemDelegate implements list.ItemDelegate for rendering ticket lines.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single ticket line: status glyph, status and priority
// badges, title, and creation date.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TicketItem)
	if !ok {
		return
	}

	t := ti.Ticket
	isSelected := index == m.Index()

	statusBadge := theme.StatusStyle(t.Status).Render(statusGlyph(t.Status) + " " + t.Status)
	priBadge := theme.PriorityStyle(t.Priority).Render(strings.ToUpper(t.Priority))

	dateStr := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Render(t.CreatedAt.Format("Jan 02, 2006"))

	line := fmt.Sprintf("%s %s %s  %s", statusBadge, priBadge, t.Title, dateStr)

	if isSelected {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// statusGlyph mirrors the status iconography of the list: attention for
// open, done for closed, waiting for pending.
func statusGlyph(status string) string {
	switch status {
	case model.StatusOpen:
		return "!"
	case model.StatusClosed:
		return "✓"
	case model.StatusPending:
		return "◷"
	default:
		return "·"
	}
}

// relativeTime returns a human-friendly relative time string.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case d < 24*time.Hour:
		hrs := int(d.Hours())
		if hrs == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hrs)
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		weeks := int(d.Hours() / 24 / 7)
		if weeks == 1 {
			return "1w ago"
		}
		return fmt.Sprintf("%dw ago", weeks)
	}
}
