package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HandleConfirmResetKey handles key presses while the reset confirmation is open.
func HandleConfirmResetKey(m Model, key string) (Model, tea.Cmd) {
	switch key {
	case "esc", "n", "N":
		m.actionMode = ActionModeNone
		return m, nil
	case "y", "Y", "enter":
		return m.resetSession(), nil
	}
	return m, nil
}

// RenderConfirmResetModal renders the confirmation shown before answers are discarded.
func RenderConfirmResetModal(m Model) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	buttonStyle := lipgloss.NewStyle().
		Padding(0, 2).
		Margin(0, 1).
		Foreground(lipgloss.Color("15")).
		Bold(true)
	yesButton := buttonStyle.Background(lipgloss.Color("196")).Render("[ Yes ]")
	noButton := buttonStyle.Background(lipgloss.Color("240")).Render("[ No ]")

	lines := []string{
		titleStyle.Render("⚠ Start over?"),
		"",
		textStyle.Render("All answers and the report will be discarded."),
		textStyle.Render("Save the report first with [s] if you want to keep it."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Left, yesButton, noButton),
		"",
		helpStyle.Render("Y/Enter: Yes • N/ESC: No"),
	}

	modalWidth := 60
	if m.windowWidth > 0 && m.windowWidth < modalWidth+4 {
		modalWidth = m.windowWidth - 4
	}
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("220")).
		Padding(1, 2).
		Width(modalWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if m.windowWidth <= 0 || m.contentHeight() <= 0 {
		return modal
	}
	return lipgloss.Place(m.windowWidth, m.contentHeight(), lipgloss.Center, lipgloss.Center, modal)
}
