package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/logging"
	"github.com/jbonatakis/intimate/internal/report"
	"github.com/jbonatakis/intimate/internal/session"
)

type ActionMode int

const (
	ActionModeNone ActionMode = iota
	ActionModeConfirmReset
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

const defaultGlamourStyle = "dark"

// Options configure a Model. Session is required; everything else has a
// usable zero value.
type Options struct {
	Session      *session.Session
	Generator    *report.Generator
	Logger       logging.Logger
	ConfirmReset bool
	ExportDir    string
	GlamourStyle string
	Now          func() time.Time
}

type Model struct {
	session      *session.Session
	generator    *report.Generator
	logger       logging.Logger
	confirmReset bool
	exportDir    string
	glamourStyle string
	now          func() time.Time

	actionMode   ActionMode
	actionOutput *ActionOutput
	windowWidth  int
	windowHeight int

	cursor      int
	perspective assessment.Perspective

	spinner  spinner.Model
	progress progress.Model
	viewport viewport.Model
}

// ReportReadyMsg carries the narrative once the generator returns. It is
// always delivered, with a fallback message when generation failed.
type ReportReadyMsg struct {
	Narrative string
}

func NewModel(opts Options) Model {
	generator := opts.Generator
	if generator == nil && opts.Session != nil {
		generator = report.New(opts.Session.Catalog(), nil)
	}
	style := opts.GlamourStyle
	if style == "" {
		style = defaultGlamourStyle
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return Model{
		session:      opts.Session,
		generator:    generator,
		logger:       logging.OrNop(opts.Logger),
		confirmReset: opts.ConfirmReset,
		exportDir:    opts.ExportDir,
		glamourStyle: style,
		now:          now,
		perspective:  assessment.PerspectiveSelf,
		spinner: spinner.New(spinner.WithSpinner(spinner.Spinner{
			Frames: spinnerFrames,
			FPS:    120 * time.Millisecond,
		})),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		viewport: viewport.New(80, 20),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) phase() session.Phase {
	if m.session == nil {
		return ""
	}
	return m.session.Phase()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = typed.Width
		m.windowHeight = typed.Height
		m.layoutResults()
		return m, nil
	case spinner.TickMsg:
		if m.phase() != session.PhaseAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case ReportReadyMsg:
		if m.phase() != session.PhaseAnalyzing {
			return m, nil
		}
		if err := m.session.Finish(typed.Narrative); err != nil {
			m.logger.Error("finish session: %v", err)
			m.actionOutput = &ActionOutput{Message: err.Error(), IsError: true}
			return m, nil
		}
		m.logger.Info("report ready (score %d)", m.session.Result().Breakdown.Score)
		m.layoutResults()
		m.viewport.GotoTop()
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.session == nil {
			return m, nil
		}
		if m.actionMode == ActionModeConfirmReset {
			return HandleConfirmResetKey(m, typed.String())
		}
		switch m.phase() {
		case session.PhaseIntro:
			return m.handleIntroKey(typed)
		case session.PhaseAssessment:
			return m.handleAssessmentKey(typed)
		case session.PhaseResults:
			return m.handleResultsKey(typed)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var content string
	switch m.phase() {
	case session.PhaseIntro:
		content = RenderIntroView(m)
	case session.PhaseAssessment:
		content = RenderAssessmentView(m)
	case session.PhaseAnalyzing:
		content = RenderAnalyzingView(m)
	case session.PhaseResults:
		content = RenderResultsView(m)
	}

	if m.actionOutput != nil {
		content = RenderActionOutput(m.actionOutput, m.windowWidth) + "\n" + content
	}

	if m.actionMode == ActionModeConfirmReset {
		if modal := RenderConfirmResetModal(m); modal != "" {
			content = modal
		}
	}

	return content + "\n" + RenderBottomBar(m)
}

// generateReportCmd runs the generator off the update loop. scores must be a
// snapshot the UI no longer mutates.
func generateReportCmd(gen *report.Generator, scores assessment.ScoreSet) tea.Cmd {
	return func() tea.Msg {
		return ReportReadyMsg{Narrative: gen.Generate(context.Background(), scores)}
	}
}

func (m Model) contentHeight() int {
	// One line for the bottom bar and one spare to avoid exact-height redraws.
	h := m.windowHeight - 2
	if h < 0 {
		return 0
	}
	return h
}
