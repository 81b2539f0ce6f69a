package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
)

func (m Model) activePerspective() assessment.Perspective {
	if m.perspective == assessment.PerspectivePartner {
		return assessment.PerspectivePartner
	}
	return assessment.PerspectiveSelf
}

func (m Model) currentItem() (catalog.Item, bool) {
	dim, ok := m.session.Dimension()
	if !ok || m.cursor < 0 || m.cursor >= len(dim.Items) {
		return catalog.Item{}, false
	}
	return dim.Items[m.cursor], true
}

func (m Model) handleAssessmentKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.actionOutput = nil
	dim, _ := m.session.Dimension()

	key := msg.String()
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(dim.Items)-1 {
			m.cursor++
		}
	case "tab":
		if m.activePerspective() == assessment.PerspectiveSelf {
			m.perspective = assessment.PerspectivePartner
		} else {
			m.perspective = assessment.PerspectiveSelf
		}
	case "left":
		m.perspective = assessment.PerspectiveSelf
	case "right":
		m.perspective = assessment.PerspectivePartner
	case "1", "2", "3", "4", "5":
		return m.rateCurrent(int(key[0] - '0'))
	case "0", "backspace":
		item, ok := m.currentItem()
		if !ok {
			return m, nil
		}
		if err := m.session.Unrate(item.ID, m.activePerspective()); err != nil {
			m.actionOutput = &ActionOutput{Message: err.Error(), IsError: true}
		}
	case "n", "enter":
		return m.advance()
	case "p", "esc":
		if err := m.session.Previous(); err != nil {
			m.actionOutput = &ActionOutput{Message: err.Error(), IsError: true}
			return m, nil
		}
		m.cursor = 0
		m.perspective = assessment.PerspectiveSelf
	}
	return m, nil
}

// rateCurrent stores value and moves focus to the next cell: self to
// partner on the same item, partner to self on the following item.
func (m Model) rateCurrent(value int) (Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}
	p := m.activePerspective()
	if err := m.session.Rate(item.ID, p, value); err != nil {
		m.actionOutput = &ActionOutput{Message: err.Error(), IsError: true}
		return m, nil
	}
	if p == assessment.PerspectiveSelf {
		m.perspective = assessment.PerspectivePartner
		return m, nil
	}
	dim, _ := m.session.Dimension()
	if m.cursor < len(dim.Items)-1 {
		m.cursor++
		m.perspective = assessment.PerspectiveSelf
	}
	return m, nil
}

func (m Model) advance() (Model, tea.Cmd) {
	if !m.session.CanAdvance() {
		dim, _ := m.session.Dimension()
		done := 0
		for _, it := range dim.Items {
			if m.session.Scores().Entry(it.ID).Complete() {
				done++
			}
		}
		m.actionOutput = &ActionOutput{
			Message: fmt.Sprintf("Rate every item for both of you before continuing (%d/%d complete).", done, len(dim.Items)),
			IsError: true,
		}
		return m, nil
	}

	analyze, err := m.session.Next()
	if err != nil {
		m.actionOutput = &ActionOutput{Message: err.Error(), IsError: true}
		return m, nil
	}
	m.cursor = 0
	m.perspective = assessment.PerspectiveSelf
	if !analyze {
		return m, nil
	}

	m.logger.Info("assessment complete, requesting report")
	return m, tea.Batch(m.spinner.Tick, generateReportCmd(m.generator, m.session.Scores().Clone()))
}

func RenderAssessmentView(m Model) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	riskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	focusStyle := lipgloss.NewStyle().Reverse(true).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	dim, ok := m.session.Dimension()
	if !ok {
		return ""
	}
	c := m.session.Catalog()
	scores := m.session.Scores()

	rated, total := scores.Progress(c)
	percent := 0.0
	if total > 0 {
		percent = float64(rated) / float64(total)
	}
	prog := m.progress
	prog.Width = progressWidth(m.windowWidth)

	labelWidth := 44
	if m.windowWidth > 0 && m.windowWidth-24 < labelWidth {
		labelWidth = max(m.windowWidth-24, 10)
	}

	lines := []string{
		titleStyle.Render(dim.Title) + " " + mutedStyle.Render(fmt.Sprintf("(%d/%d)", m.session.Step()+1, c.Len())),
		mutedStyle.Render(dim.Description),
		"",
		prog.ViewAs(percent) + " " + mutedStyle.Render(fmt.Sprintf("%d / %d", rated, total)),
		"",
		"  " + padRight("", labelWidth) + " " + headerStyle.Render(padRight("Self", 8)) + headerStyle.Render("Partner"),
	}

	for i, it := range dim.Items {
		entry := scores.Entry(it.ID)
		marker := "  "
		label := truncate(it.Label, labelWidth)
		if it.Reverse {
			label = truncate(it.Label, labelWidth-2) + " " + riskStyle.Render("▲")
		}
		cells := make([]string, 0, 2)
		for _, p := range []assessment.Perspective{assessment.PerspectiveSelf, assessment.PerspectivePartner} {
			cell := fmt.Sprintf("[%s]", entry.Get(p))
			if i == m.cursor && p == m.activePerspective() {
				cell = focusStyle.Render(cell)
			}
			cells = append(cells, cell)
		}
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		if entry.Complete() {
			label = doneStyle.Render("✓") + " " + label
		} else {
			label = "  " + label
		}
		lines = append(lines, marker+padRight(label, labelWidth+2)+" "+padRight(cells[0], 8)+cells[1])
		if i == m.cursor && it.SubLabel != "" {
			lines = append(lines, "      "+mutedStyle.Render(it.SubLabel))
		}
	}

	lines = append(lines, "", mutedStyle.Render("1 = low  3 = moderate  5 = high"))
	if hasReverse(dim) {
		lines = append(lines, riskStyle.Render("▲")+mutedStyle.Render(" risk indicator: higher means more risk"))
	}
	return strings.Join(lines, "\n")
}

func hasReverse(dim catalog.Dimension) bool {
	for _, it := range dim.Items {
		if it.Reverse {
			return true
		}
	}
	return false
}

func progressWidth(windowWidth int) int {
	if windowWidth <= 0 {
		return 40
	}
	w := windowWidth - 20
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
