package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jbonatakis/intimate/internal/catalog"
	"github.com/jbonatakis/intimate/internal/config"
	"github.com/jbonatakis/intimate/internal/logging"
	"github.com/jbonatakis/intimate/internal/report"
	"github.com/jbonatakis/intimate/internal/report/gemini"
	"github.com/jbonatakis/intimate/internal/session"
	"github.com/jbonatakis/intimate/internal/tui"
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

var ErrNoTerminal = errors.New("intimate needs an interactive terminal (try `intimate catalog` or `intimate prompt`)")

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var startTUI = tui.Start

var defaultCatalog = catalog.Default

// loadCatalog returns the built-in catalog after structural validation.
func loadCatalog() (catalog.Catalog, error) {
	c := defaultCatalog()
	if errs := catalog.Validate(c); len(errs) > 0 {
		var b strings.Builder
		b.WriteString("invalid catalog:")
		for _, e := range errs {
			fmt.Fprintf(&b, "\n- %s: %s", e.Path, e.Message)
		}
		return catalog.Catalog{}, errors.New(b.String())
	}
	return c, nil
}

type options struct {
	model   string
	baseURL string
	debug   bool
	logFile string
}

// Run executes the command line and returns the first error.
func Run(args []string, stdout io.Writer, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	return root.Execute()
}

func NewRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "intimate",
		Short:         "Relationship compatibility questionnaire",
		Long:          "intimate walks two partners through a 34-question compatibility check-up and writes an analysis of the answers.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return UsageError{Message: err.Error()}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&opts.model, "model", "", "text-generation model (overrides config)")
	flags.StringVar(&opts.baseURL, "base-url", "", "text-generation API base URL (overrides config)")
	flags.BoolVar(&opts.debug, "debug", false, "write debug logs (also "+logging.EnvDebug+"=1)")
	flags.StringVar(&opts.logFile, "log-file", filepath.Join(os.TempDir(), "intimate-debug.log"), "debug log path")

	root.AddCommand(
		newCatalogCommand(),
		newPromptCommand(),
		newConfigCommand(opts),
		newVersionCommand(),
	)
	return root
}

func loadConfig(opts *options) (config.ResolvedConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.ResolvedConfig{}, fmt.Errorf("getwd: %w", err)
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return config.ResolvedConfig{}, err
	}
	return cfg.WithOverrides(config.Overrides{Model: opts.model, BaseURL: opts.baseURL}), nil
}

func runInteractive(opts *options) error {
	if !isTerminal() {
		return ErrNoTerminal
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	// stdout belongs to the alternate screen, so logs only exist as a file.
	// Info and above are always kept; the debug switch adds Debug lines.
	prevOut, prevPrefix := log.Writer(), log.Prefix()
	f, err := tea.LogToFile(opts.logFile, "intimate")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		_ = f.Close()
	}()
	logger := logging.New(nil, "app", opts.debug || logging.DebugFromEnv())
	logger.Info("config: model=%s baseUrl=%s riskWarnThreshold=%d", cfg.Report.Model, cfg.Report.BaseURL, cfg.Report.RiskWarnThreshold)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}

	return startTUI(tui.Options{
		Session:      session.New(c, session.WithRiskThreshold(cfg.Report.RiskWarnThreshold)),
		Generator:    newGenerator(c, cfg, logger),
		Logger:       logger,
		ConfirmReset: cfg.TUI.ConfirmReset,
		ExportDir:    cwd,
	})
}

// newGenerator wires the Gemini client when a key is present. Without one the
// generator reports the missing key instead of calling out.
func newGenerator(c catalog.Catalog, cfg config.ResolvedConfig, logger logging.Logger) *report.Generator {
	logger = logging.OrNop(logger)
	var text report.TextGenerator
	if key := config.APIKey(); key != "" {
		client := gemini.New(gemini.Config{
			APIKey:  key,
			Model:   cfg.Report.Model,
			BaseURL: cfg.Report.BaseURL,
			Logger:  logger,
		})
		logger.Info("report model: %s", client.Model())
		text = client
	} else {
		logger.Warn("%s is not set; report generation disabled", config.EnvAPIKey)
	}
	return report.New(c, text, report.WithLogger(logger))
}
