package tui

import "github.com/charmbracelet/lipgloss"

// ActionOutput is a one-off message shown above the current view.
type ActionOutput struct {
	Message string
	IsError bool
}

// RenderActionOutput renders action output or error messages
func RenderActionOutput(output *ActionOutput, width int) string {
	if output == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	if output.IsError {
		style = style.BorderForeground(lipgloss.Color("196")) // red
	} else {
		style = style.BorderForeground(lipgloss.Color("46")) // green
	}

	if width > 4 {
		style = style.Width(width - 4)
	}

	return style.Render(output.Message)
}
