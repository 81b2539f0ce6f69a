package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/intimate/internal/session"
)

func RenderBottomBar(model Model) string {
	left := strings.Join(actionHints(model), " ")
	right := statusText(model)

	if model.phase() == session.PhaseAnalyzing {
		left = fmt.Sprintf("%s | %s analyzing", left, model.spinner.View())
	}

	contentWidth := model.windowWidth
	padding := 1
	if contentWidth > 0 {
		contentWidth = contentWidth - padding*2
		if contentWidth < 0 {
			contentWidth = 0
		}
	}
	bar := layoutBar(left, right, contentWidth)

	style := lipgloss.NewStyle().Reverse(true).Padding(0, padding)
	return style.Render(bar)
}

func actionHints(model Model) []string {
	if model.actionMode == ActionModeConfirmReset {
		return []string{"[y]es", "[n]o", "[ctrl+c]quit"}
	}
	switch model.phase() {
	case session.PhaseIntro:
		return []string{"[enter]start", "[ctrl+c]quit"}
	case session.PhaseAssessment:
		actions := []string{
			"[↑/↓]item",
			"[tab]self/partner",
			"[1-5]rate",
			"[0]clear",
			"[n]ext",
			"[p]rev",
			"[ctrl+c]quit",
		}
		if model.session.IsLastStep() {
			actions[4] = "[n]analyze"
		}
		return actions
	case session.PhaseResults:
		return []string{"[r]eset", "[s]ave", "[pgup/pgdn]scroll", "[ctrl+c]quit"}
	}
	return []string{"[ctrl+c]quit"}
}

func statusText(model Model) string {
	switch model.phase() {
	case session.PhaseAssessment:
		c := model.session.Catalog()
		rated, total := model.session.Scores().Progress(c)
		return fmt.Sprintf("step:%d/%d rated:%d/%d", model.session.Step()+1, c.Len(), rated, total)
	case session.PhaseResults:
		return fmt.Sprintf("score:%d", model.session.Result().Breakdown.Score)
	}
	return ""
}

func layoutBar(left string, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := width - leftWidth - rightWidth
	if gap < 1 {
		availableLeft := width - rightWidth - 1
		if availableLeft < 0 {
			return truncate(right, width)
		}
		left = truncate(left, availableLeft)
		leftWidth = lipgloss.Width(left)
		gap = width - leftWidth - rightWidth
		if gap < 1 {
			gap = 1
		}
	}
	bar := left + strings.Repeat(" ", gap) + right
	return truncate(bar, width)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
