package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jbonatakis/intimate/internal/scoring"
)

// Result is everything shown on the results screen.
type Result struct {
	Breakdown   scoring.Breakdown
	Averages    []scoring.DimensionAverage
	RiskFlags   []scoring.RiskFlag
	Narrative   string
	GeneratedAt time.Time
}

// DefaultExportFilename is the file name used when the user saves a report
// without choosing a path.
func DefaultExportFilename(now time.Time) string {
	return fmt.Sprintf("intimate-report-%s.md", now.Format("20060102-150405"))
}

// NextFreePath returns path, or the first of path-2, path-3, ... (before
// the extension) that does not exist yet.
func NextFreePath(path string) string {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); errors.Is(err, os.ErrNotExist) {
			return candidate
		}
	}
}

// Markdown renders r as a standalone markdown document.
func Markdown(r Result) string {
	var b strings.Builder
	b.WriteString("# Relationship Assessment Report\n\n")
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "_Generated %s_\n\n", r.GeneratedAt.Format(time.RFC1123))
	}
	fmt.Fprintf(&b, "**Compatibility index:** %d / 100 (%s)\n\n", r.Breakdown.Score, scoring.BandFor(r.Breakdown.Score))

	if len(r.Averages) > 0 {
		b.WriteString("| Dimension | Self | Partner | Gap |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, avg := range r.Averages {
			fmt.Fprintf(&b, "| %s | %.1f | %.1f | %.1f |\n", avg.Title, avg.Self, avg.Partner, avg.Gap)
		}
		b.WriteString("\n")
	}

	if len(r.RiskFlags) > 0 {
		b.WriteString("**Risk flags:**\n\n")
		for _, f := range r.RiskFlags {
			fmt.Fprintf(&b, "- %s: self %s, partner %s\n", f.Item.Label, f.Self, f.Partner)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(r.Narrative))
	b.WriteString("\n")
	return b.String()
}

// Export writes the markdown rendering of r to path atomically.
func Export(path string, r Result) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export path is required")
	}
	if err := atomicWriteFile(path, []byte(Markdown(r)), 0o644); err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	return nil
}
