package cli

import (
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a table of workout summaries with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs := domain.SamplePackages()
			if file != "" {
				var err error
				if pkgs, err = loadPackages(file); err != nil {
					return err
				}
			}

			summaries, err := app.Tracker.SummarizeAll(cmd.Context(), pkgs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReport(summaries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Package file to report on instead of the samples")

	return cmd
}
