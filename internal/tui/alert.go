package tui

import "github.com/charmbracelet/lipgloss"

// alertBox is a blocking message dismissed by any key. It implements
// session.Alerter.
type alertBox struct {
	msg  string
	open bool
}

// Alert opens the box with msg
func (a *alertBox) Alert(msg string) {
	a.msg = msg
	a.open = true
}

func (a *alertBox) dismiss() {
	a.open = false
}

func (a *alertBox) View(width, height int) string {
	box := alertStyle.Render(a.msg + "\n\n" + helpDescStyle.Render("press any key"))
	if width == 0 || height == 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
