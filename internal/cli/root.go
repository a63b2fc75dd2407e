package cli

import (
	"fmt"

	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/spf13/cobra"
)

// UnknownCodeMessage is printed before the process stops on an unknown workout code.
const UnknownCodeMessage = "Код тренировки не найден. Исполнение программы остановлено"

// App holds references to the services used by CLI commands.
type App struct {
	Tracker service.TrackerService

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fittrack" command and registers all
// subcommands against the provided App. Without arguments it processes the
// built-in sample packages.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fittrack",
		Short:         "Workout statistics for running, walking and swimming",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSummaries(cmd, app, domain.SamplePackages())
		},
	}

	root.AddCommand(
		newShowCmd(app),
		newRunCmd(app),
		newReportCmd(app),
		newEnterCmd(app),
	)

	return root
}

// printSummaries writes the summaries built before any failure, then
// returns the failure. No summary is printed for the failing package.
func printSummaries(cmd *cobra.Command, app *App, pkgs []domain.Package) error {
	summaries, err := app.Tracker.SummarizeAll(cmd.Context(), pkgs)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummaries(summaries))
	return err
}
