package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/theme"
)

// Layout manages the terminal layout dimensions: a one-line header, the
// content area, a one-line tab bar, and a one-line status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	TabBarHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		TabBarHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header, tab bar, and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.TabBarHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with the app title on the left
// and session info on the right.
func (l Layout) RenderHeader(title string, right string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	rightRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(right)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(rightRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		rightRendered,
	)
}

// RenderTabBar renders the bottom navigation tabs, highlighting the
// active one.
func (l Layout) RenderTabBar(tabs []string, activeIndex int) string {
	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == activeIndex {
			rendered[i] = theme.TabActiveStyle.Render("● " + tab)
		} else {
			rendered[i] = theme.TabInactiveStyle.Render("○ " + tab)
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	gap := l.Width - lipgloss.Width(bar)
	if gap < 0 {
		gap = 0
	}
	filler := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, bar, filler)
}

// RenderStatusBar renders the bottom status bar with keyboard hints or a
// transient status message.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, tab bar, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	tabBar string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		tabBar,
		statusBar,
	)
}
