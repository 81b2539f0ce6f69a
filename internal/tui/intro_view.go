package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/intimate/internal/assessment"
)

func (m Model) handleIntroKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		if err := m.session.Start(); err != nil {
			m.actionOutput = &ActionOutput{Message: err.Error(), IsError: true}
			return m, nil
		}
		m.actionOutput = nil
		m.cursor = 0
		m.perspective = assessment.PerspectiveSelf
		m.logger.Debug("assessment started")
	}
	return m, nil
}

func RenderIntroView(m Model) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	taglineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bulletStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	actionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	shortcutStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	c := m.session.Catalog()
	lines := []string{
		titleStyle.Render("intimate"),
		taglineStyle.Render("A relationship compatibility check-up for two"),
		"",
		bulletStyle.Render("•") + " " + fmt.Sprintf("%d dimensions, %d questions", c.Len(), c.ItemCount()),
		bulletStyle.Render("•") + " Rate yourself and your partner from 1 to 5",
		bulletStyle.Render("•") + " Get a compatibility index and a written analysis",
		"",
		mutedStyle.Render("Answers stay in memory and are discarded when you quit."),
	}
	if m.generator != nil && !m.generator.Configured() {
		lines = append(lines, warnStyle.Render("No API key set: the written analysis will be skipped."))
	}
	lines = append(lines,
		"",
		renderActionLine("[enter]", "Start", shortcutStyle, actionStyle),
		renderActionLine("[ctrl+c]", "Quit", shortcutStyle, actionStyle),
	)

	content := strings.Join(lines, "\n")
	if m.windowWidth <= 0 || m.contentHeight() <= 0 {
		return content
	}
	return lipgloss.Place(m.windowWidth, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}

func renderActionLine(shortcut string, label string, shortcutStyle lipgloss.Style, actionStyle lipgloss.Style) string {
	return shortcutStyle.Render(shortcut) + " " + actionStyle.Render(label)
}
