package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/engine/pipeline"
	"go.trai.ch/esb/internal/ui/output"
	"go.trai.ch/esb/internal/ui/style"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the Elm modules once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			if err := c.load(ctx, false); err != nil {
				return err
			}
			defer func() {
				if closeErr := c.app.Close(ctx); err == nil {
					err = closeErr
				}
			}()

			report, err := c.app.OnBeforeBuild(ctx)
			if report != nil {
				printReport(cmd.OutOrStdout(), c.app.Options().ProjectRoot, report)
			}
			return err
		},
	}
}

// printReport writes one line per artifact followed by the totals.
func printReport(w io.Writer, root string, report *pipeline.Report) {
	out := output.New(w)

	for _, result := range report.Results() {
		icon, color := style.Outcome(result.Outcome)

		target := result.Output
		if target == "" {
			target = result.Source
		}
		if rel, err := filepath.Rel(root, target); err == nil && filepath.IsAbs(target) {
			target = rel
		}

		_, _ = fmt.Fprintf(out, "%s %s %s\n",
			out.String(icon).Foreground(out.Color(string(color))),
			result.Kind,
			target,
		)
	}

	_, _ = fmt.Fprintf(out, "%d written, %d unchanged, %d cached, %d failed\n",
		report.Count(domain.OutcomeWritten),
		report.Count(domain.OutcomeUnchanged),
		report.Count(domain.OutcomeCached),
		report.Count(domain.OutcomeFailed),
	)
}
