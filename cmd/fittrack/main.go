package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/fittrack/internal/cli"
	"github.com/alexanderramin/fittrack/internal/cli/formatter"
	"github.com/alexanderramin/fittrack/internal/config"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(reportError(os.Stdout, os.Stderr, run()))
}

// reportError prints err and returns the process exit code. An unknown
// workout code stops the program with the tracker's fixed message on stdout;
// any other errors joined with it still go to stderr.
func reportError(stdout, stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}

	if !errors.Is(err, domain.ErrUnknownWorkoutCode) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, cli.UnknownCodeMessage)
	for _, e := range splitJoined(err) {
		if !errors.Is(e, domain.ErrUnknownWorkoutCode) {
			fmt.Fprintf(stderr, "Error: %v\n", e)
		}
	}
	return 1
}

// splitJoined flattens errors.Join trees, looking through single-error
// wrappers. An error with nothing joined beneath it is returned as is.
func splitJoined(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var out []error
		for _, inner := range e.Unwrap() {
			out = append(out, splitJoined(inner)...)
		}
		return out
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			if parts := splitJoined(inner); len(parts) > 1 {
				return parts
			}
		}
	}
	return []error{err}
}

func run() error {
	cfg := config.Load()

	formatter.SetColorEnabled(cfg.UseColor(isTerminal(os.Stdout.Fd())))

	// Events go to stderr so stdout carries only summaries.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogEvents {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Tracker: service.NewTrackerService(observer),
	}

	// Detect interactive terminal for the form-driven entry command.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
