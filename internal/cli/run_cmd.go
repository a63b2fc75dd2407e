package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/importer"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Summarize every workout package in a JSON or YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, err := loadPackages(file)
			if err != nil {
				return err
			}
			return printSummaries(cmd, app, pkgs)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to a package file (.json, .yaml, .yml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// loadPackages reads and validates a package file. All validation
// problems are joined into one error.
func loadPackages(path string) ([]domain.Package, error) {
	file, err := importer.LoadPackageFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if errs := importer.ValidatePackageFile(file); len(errs) > 0 {
		return nil, fmt.Errorf("invalid package file %s: %w", path, errors.Join(errs...))
	}
	return importer.Convert(file), nil
}
