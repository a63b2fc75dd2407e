package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE VALUE...",
		Short: "Summarize one workout package given on the command line",
		Example: `  fittrack show RUN 15000 1 75
  fittrack show WLK 9000 1 75 180
  fittrack show SWM 720 1 80 25 40`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			return printSummaries(cmd, app, []domain.Package{{Code: args[0], Data: data}})
		},
	}
}

func parseValues(args []string) ([]float64, error) {
	data := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: must be a number", a)
		}
		data = append(data, v)
	}
	return data, nil
}
