package tui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/report"
	"github.com/jbonatakis/intimate/internal/scoring"
	"github.com/jbonatakis/intimate/internal/session"
)

func RenderAnalyzingView(m Model) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	content := strings.Join([]string{
		style.Render(m.spinner.View() + " Analyzing your answers..."),
		"",
		mutedStyle.Render("This can take up to a minute."),
	}, "\n")
	if m.windowWidth <= 0 || m.contentHeight() <= 0 {
		return content
	}
	return lipgloss.Place(m.windowWidth, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.actionOutput = nil
		if m.confirmReset {
			m.actionMode = ActionModeConfirmReset
			return m, nil
		}
		return m.resetSession(), nil
	case "s":
		m.actionOutput = m.saveReport()
		m.layoutResults()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) saveReport() *ActionOutput {
	result := m.session.Result()
	path := report.NextFreePath(filepath.Join(m.exportDir, report.DefaultExportFilename(m.now())))
	if err := report.Export(path, result); err != nil {
		m.logger.Error("save report: %v", err)
		return &ActionOutput{Message: fmt.Sprintf("Save failed: %v", err), IsError: true}
	}
	m.logger.Info("report saved to %s", path)
	return &ActionOutput{Message: fmt.Sprintf("Report saved to %s", path)}
}

func (m Model) resetSession() Model {
	m.session.Reset()
	m.actionMode = ActionModeNone
	m.cursor = 0
	m.perspective = assessment.PerspectiveSelf
	m.viewport.SetContent("")
	m.logger.Debug("session reset")
	return m
}

// layoutResults sizes the report viewport to the space left under the
// summary and refreshes its content.
func (m *Model) layoutResults() {
	if m.phase() != session.PhaseResults {
		return
	}
	width := m.windowWidth
	if width <= 0 {
		width = 80
	}
	height := 20
	if m.windowHeight > 0 {
		used := lipgloss.Height(renderResultsSummary(*m)) + 1
		if m.actionOutput != nil {
			used += lipgloss.Height(RenderActionOutput(m.actionOutput, m.windowWidth)) + 1
		}
		height = max(m.contentHeight()-used, 3)
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(renderMarkdown(m.session.Result().Narrative, width, m.glamourStyle))
}

func RenderResultsView(m Model) string {
	return renderResultsSummary(m) + "\n" + m.viewport.View()
}

func renderResultsSummary(m Model) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	riskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	result := m.session.Result()
	score := result.Breakdown.Score
	band := scoring.BandFor(score)

	lines := []string{
		titleStyle.Render("Compatibility index") + "  " +
			bandStyle(band).Render(fmt.Sprintf("%d / 100", score)) + " " +
			mutedStyle.Render(fmt.Sprintf("(%s)", band)),
		"",
	}

	titleWidth := 0
	for _, avg := range result.Averages {
		titleWidth = max(titleWidth, lipgloss.Width(shortTitle(avg.Title)))
	}
	for _, avg := range result.Averages {
		lines = append(lines, fmt.Sprintf("%s  you %s %.1f  partner %s %.1f  %s",
			padRight(shortTitle(avg.Title), titleWidth),
			ratingBar(avg.Self), avg.Self,
			ratingBar(avg.Partner), avg.Partner,
			mutedStyle.Render(fmt.Sprintf("gap %.1f", avg.Gap)),
		))
	}

	if len(result.RiskFlags) > 0 {
		lines = append(lines, "")
		for _, f := range result.RiskFlags {
			lines = append(lines, riskStyle.Render("▲ "+f.Item.Label)+
				mutedStyle.Render(fmt.Sprintf("  you %s, partner %s", f.Self, f.Partner)))
		}
	}
	return strings.Join(lines, "\n")
}

// shortTitle drops the "Dimension N:" prefix.
func shortTitle(title string) string {
	if _, rest, ok := strings.Cut(title, ": "); ok {
		return rest
	}
	return title
}

func bandStyle(band scoring.Band) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch band {
	case scoring.BandStrong:
		return style.Foreground(lipgloss.Color("42"))
	case scoring.BandModerate:
		return style.Foreground(lipgloss.Color("214"))
	default:
		return style.Foreground(lipgloss.Color("196"))
	}
}

const ratingBarWidth = 10

func ratingBar(avg float64) string {
	filled := int(math.Round(avg / assessment.MaxRating * ratingBarWidth))
	filled = min(max(filled, 0), ratingBarWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", ratingBarWidth-filled)
}

func renderMarkdown(md string, width int, style string) string {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
