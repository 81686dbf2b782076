package theme_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/ticksolve/ticksolve/internal/model"
	"github.com/ticksolve/ticksolve/internal/theme"
)

func TestStatusStyleColors(t *testing.T) {
	tests := []struct {
		status string
		want   lipgloss.AdaptiveColor
	}{
		{model.StatusOpen, theme.ColorRed},
		{model.StatusInProgress, theme.ColorOrange},
		{model.StatusClosed, theme.ColorGreen},
		{model.StatusPending, theme.ColorYellow},
		{model.StatusResolved, theme.ColorGray},
		{"unheard-of", theme.ColorGray},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := theme.StatusStyle(tt.status).GetForeground()
			if got != tt.want {
				t.Errorf("StatusStyle(%q) foreground = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestPriorityStyleColors(t *testing.T) {
	tests := []struct {
		priority string
		want     lipgloss.AdaptiveColor
	}{
		{model.PriorityHigh, theme.ColorRed},
		{model.PriorityMedium, theme.ColorYellow},
		{model.PriorityLow, theme.ColorBlue},
		{"", theme.ColorGray},
	}

	for _, tt := range tests {
		got := theme.PriorityStyle(tt.priority).GetForeground()
		if got != tt.want {
			t.Errorf("PriorityStyle(%q) foreground = %v, want %v", tt.priority, got, tt.want)
		}
	}
}
