package testutil

import (
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// Package options
type PackageOption func(*domain.Package)

// WithDuration sets the duration in hours (data position 1).
func WithDuration(h float64) PackageOption {
	return func(p *domain.Package) {
		setAt(p, 1, h)
	}
}

// WithWeight sets the body weight in kg (data position 2).
func WithWeight(kg float64) PackageOption {
	return func(p *domain.Package) {
		setAt(p, 2, kg)
	}
}

// WithAction sets the step or stroke count (data position 0).
func WithAction(n int) PackageOption {
	return func(p *domain.Package) {
		setAt(p, 0, float64(n))
	}
}

// WithData replaces all values. Options applied after it still work when
// data is shorter than their position.
func WithData(data ...float64) PackageOption {
	return func(p *domain.Package) {
		p.Data = append([]float64(nil), data...)
	}
}

// setAt writes v at position i, padding Data with zeros when it is too short.
func setAt(p *domain.Package, i int, v float64) {
	for len(p.Data) <= i {
		p.Data = append(p.Data, 0)
	}
	p.Data[i] = v
}

// NewTestPackage returns the sample package for code with opts applied.
// Unknown codes get three placeholder values.
func NewTestPackage(code string, opts ...PackageOption) domain.Package {
	p := domain.Package{Code: code, Data: []float64{1000, 1, 70}}
	for _, sample := range domain.SamplePackages() {
		if sample.Code == code {
			p.Data = append([]float64(nil), sample.Data...)
			break
		}
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestTraining dispatches NewTestPackage and fails the test on error.
func NewTestTraining(t *testing.T, code string, opts ...PackageOption) domain.Training {
	t.Helper()
	tr, err := NewTestPackage(code, opts...).Read()
	if err != nil {
		t.Fatalf("building %s training: %v", code, err)
	}
	return tr
}
