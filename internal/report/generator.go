package report

import (
	"context"
	"strings"

	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/catalog"
	"github.com/jbonatakis/intimate/internal/logging"
)

const (
	MissingKeyMessage  = "API key is missing. Set GEMINI_API_KEY to get the AI analysis."
	UnavailableMessage = "The analysis service is temporarily unavailable. Check your network connection or API key configuration."
)

// TextGenerator turns a prompt into generated text. Implementations own the
// transport; Generator owns every fallback.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Generator struct {
	catalog catalog.Catalog
	text    TextGenerator
	logger  logging.Logger
}

type Option func(*Generator)

func WithLogger(logger logging.Logger) Option {
	return func(g *Generator) {
		g.logger = logging.OrNop(logger)
	}
}

// New builds a report generator. A nil text generator means no credential is
// configured; Generate then returns MissingKeyMessage without any I/O.
func New(c catalog.Catalog, text TextGenerator, opts ...Option) *Generator {
	g := &Generator{catalog: c, text: text, logger: logging.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configured reports whether a text generator is available.
func (g *Generator) Configured() bool {
	return g != nil && g.text != nil
}

// Generate always returns displayable markdown. Transport failures, empty
// output and panics in the text generator are logged and mapped to
// UnavailableMessage.
func (g *Generator) Generate(ctx context.Context, scores assessment.ScoreSet) (out string) {
	if !g.Configured() {
		return MissingKeyMessage
	}
	if ctx == nil {
		ctx = context.Background()
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("report generation panicked: %v", r)
			out = UnavailableMessage
		}
	}()

	for _, verr := range assessment.Validate(g.catalog, scores) {
		g.logger.Warn("score set: %v", verr)
	}
	if !scores.Complete(g.catalog) {
		rated, total := scores.Progress(g.catalog)
		g.logger.Warn("score set incomplete (%d/%d rated); unset ratings are sent as 0", rated, total)
	}

	prompt := BuildPrompt(g.catalog, scores)
	g.logger.Debug("requesting report (%d prompt chars)", len(prompt))

	text, err := g.text.Generate(ctx, prompt)
	if err != nil {
		g.logger.Error("report generation failed: %v", err)
		return UnavailableMessage
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Warn("report generation returned empty text")
		return UnavailableMessage
	}
	return text
}
