package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jbonatakis/intimate/internal/assessment"
	"github.com/jbonatakis/intimate/internal/report"
)

var (
	bold = color.New(color.Bold).SprintFunc()
	red  = color.New(color.FgRed).SprintFunc()
	gray = color.New(color.FgHiBlack).SprintFunc()
)

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every dimension and question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, dim := range c.Dimensions {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, bold(dim.Title))
				fmt.Fprintln(out, gray(dim.Description))
				w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
				for _, it := range dim.Items {
					sub := gray(it.SubLabel)
					if it.Reverse {
						sub += " " + red("[risk]")
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\n", it.ID, it.Label, sub)
				}
				_ = w.Flush()
			}
			fmt.Fprintf(out, "\n%d dimensions, %d items\n", c.Len(), c.ItemCount())
			return nil
		},
	}
}

func newPromptCommand() *cobra.Command {
	var fill int
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the analysis prompt for a score set",
		Long:  "Print the prompt the analysis request would carry. Every rating is unset unless --fill is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog()
			if err != nil {
				return err
			}
			scores := assessment.NewScoreSet()
			if cmd.Flags().Changed("fill") {
				for _, it := range c.Items() {
					for _, p := range []assessment.Perspective{assessment.PerspectiveSelf, assessment.PerspectivePartner} {
						if err := scores.Set(c, it.ID, p, fill); err != nil {
							return UsageError{Message: fmt.Sprintf("--fill: %v", err)}
						}
					}
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), report.BuildPrompt(c, scores))
			return nil
		},
	}
	cmd.Flags().IntVar(&fill, "fill", 0, "rate every item with this value (1-5) for both partners")
	return cmd
}

func newConfigCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "intimate %s\n", Version)
		},
	}
}
