package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/fittrack/internal/cli"
	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReportError_Nil(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, reportError(&stdout, &stderr, nil))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestReportError_UnknownCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := fmt.Errorf("package 1: %w", &domain.UnknownCodeError{Code: "BIK"})

	assert.Equal(t, 1, reportError(&stdout, &stderr, err))
	assert.Equal(t, cli.UnknownCodeMessage+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestReportError_Generic(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := errors.New("open packages.json: no such file or directory")

	assert.Equal(t, 1, reportError(&stdout, &stderr, err))
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error: open packages.json: no such file or directory\n", stderr.String())
}

func TestReportError_JoinedKeepsOtherErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := fmt.Errorf("invalid package file p.json: %w", errors.Join(
		fmt.Errorf("workouts[0].code: %w", &domain.UnknownCodeError{Code: "BIK"}),
		errors.New("workouts[1].data[1]: duration must be positive, got 0"),
		fmt.Errorf("workouts[2].data: %w", domain.ErrInvalidArity),
	))

	assert.Equal(t, 1, reportError(&stdout, &stderr, err))
	assert.Equal(t, cli.UnknownCodeMessage+"\n", stdout.String())
	assert.Equal(t,
		"Error: workouts[1].data[1]: duration must be positive, got 0\n"+
			"Error: workouts[2].data: invalid number of package values\n",
		stderr.String())
	assert.NotContains(t, stderr.String(), "BIK")
}

func TestSplitJoined_SingleErrorKeepsWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New("inner"))
	parts := splitJoined(err)
	assert.Equal(t, []error{err}, parts)
}
