package domain

import "fmt"

// Package is a raw tracker record: a workout code plus its values in
// constructor order.
type Package struct {
	Code string
	Data []float64
}

type constructor struct {
	kind  WorkoutKind
	build func(data []float64) Training
}

var constructors = map[string]constructor{
	CodeSwimming: {KindSwimming, func(d []float64) Training {
		return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
	}},
	CodeRunning: {KindRunning, func(d []float64) Training {
		return NewRunning(int(d[0]), d[1], d[2])
	}},
	CodeWalking: {KindWalking, func(d []float64) Training {
		return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
	}},
}

// KindForCode returns the workout kind selected by code.
func KindForCode(code string) (WorkoutKind, bool) {
	c, ok := constructors[code]
	return c.kind, ok
}

// ReadPackage builds the training selected by code, assigning data to the
// constructor parameters in declaration order. Integral parameters (action
// count, pool lap count) are truncated. An unknown code yields an
// *UnknownCodeError and no training.
func ReadPackage(code string, data []float64) (Training, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, &UnknownCodeError{Code: code}
	}
	if want := c.kind.Arity(); len(data) != want {
		return nil, fmt.Errorf("%s expects %d values, got %d: %w", code, want, len(data), ErrInvalidArity)
	}
	return c.build(data), nil
}

// Read dispatches p through ReadPackage.
func (p Package) Read() (Training, error) {
	return ReadPackage(p.Code, p.Data)
}

// SamplePackages is the fixed list the tracker processes when no input is given.
func SamplePackages() []Package {
	return []Package{
		{Code: CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: CodeRunning, Data: []float64{15000, 1, 75}},
		{Code: CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}
