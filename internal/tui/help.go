package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type keyHelp struct {
	key  string
	desc string
}

func renderHelp() string {
	var sections []string

	sections = append(sections, panelTitleStyle.Render("Keyboard Shortcuts"))

	sections = append(sections, renderHelpSection("Map", []keyHelp{
		{"arrows / hjkl", "Move the crosshair"},
		{"enter", "Log a workout here"},
		{"+ / -", "Zoom in / out"},
		{"tab", "Switch to workout list"},
	}))

	sections = append(sections, renderHelpSection("Form", []keyHelp{
		{"tab / shift+tab", "Next / previous field"},
		{"ctrl+t", "Toggle running / cycling"},
		{"enter", "Save workout"},
		{"esc", "Back to map"},
	}))

	sections = append(sections, renderHelpSection("Workouts", []keyHelp{
		{"j / k", "Move cursor"},
		{"enter", "Show on map"},
		{"tab", "Switch to map"},
	}))

	sections = append(sections, renderHelpSection("Global", []keyHelp{
		{"g", "Toggle stats"},
		{"R", "Reset: delete all workouts"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHelpSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(runningColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}
