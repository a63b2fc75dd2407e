package cli

import (
	"errors"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("enter requires an interactive terminal; use 'fittrack show CODE VALUE...' instead")

func newEnterCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "enter",
		Short: "Enter a workout interactively and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}

			in, out := cmd.InOrStdin(), cmd.ErrOrStderr()

			var code string
			if err := runForm(wizardSelectCode(&code), in, out); err != nil {
				return err
			}

			values := make([]string, len(packageFields(code)))
			if err := runForm(wizardInputValues(code, values), in, out); err != nil {
				return err
			}

			pkg, err := packageFromForm(code, values)
			if err != nil {
				return err
			}
			return printSummaries(cmd, app, []domain.Package{pkg})
		},
	}
}
