package importer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/fittrack/internal/domain"
)

// ValidatePackageFile checks every workout before conversion.
// Returns a slice of all validation errors found. Unknown codes are reported
// as errors matching domain.ErrUnknownWorkoutCode.
func ValidatePackageFile(file *PackageFile) []error {
	var errs []error

	if len(file.Workouts) == 0 {
		errs = append(errs, fmt.Errorf("workouts: at least one workout is required"))
	}
	for i, w := range file.Workouts {
		errs = append(errs, validateWorkout(fmt.Sprintf("workouts[%d]", i), w)...)
	}

	return errs
}

func validateWorkout(prefix string, w WorkoutImport) []error {
	// An empty code is just another code outside the known set.
	kind, ok := domain.KindForCode(w.Code)
	if !ok {
		return []error{fmt.Errorf("%s.code: %w", prefix, &domain.UnknownCodeError{Code: w.Code})}
	}

	if want := kind.Arity(); len(w.Data) != want {
		return []error{fmt.Errorf("%s.data: %s expects %d values, got %d: %w",
			prefix, w.Code, want, len(w.Data), domain.ErrInvalidArity)}
	}

	var errs []error
	if !nonNegative(w.Data[0]) {
		errs = append(errs, fmt.Errorf("%s.data[0]: action count must be a finite number of zero or more, got %g", prefix, w.Data[0]))
	}
	if !positive(w.Data[1]) {
		errs = append(errs, fmt.Errorf("%s.data[1]: duration must be positive, got %g", prefix, w.Data[1]))
	}
	if !positive(w.Data[2]) {
		errs = append(errs, fmt.Errorf("%s.data[2]: weight must be positive, got %g", prefix, w.Data[2]))
	}

	switch kind {
	case domain.KindWalking:
		if !positive(w.Data[3]) {
			errs = append(errs, fmt.Errorf("%s.data[3]: height must be positive, got %g", prefix, w.Data[3]))
		}
	case domain.KindSwimming:
		if !positive(w.Data[3]) {
			errs = append(errs, fmt.Errorf("%s.data[3]: pool length must be positive, got %g", prefix, w.Data[3]))
		}
		if !nonNegative(w.Data[4]) {
			errs = append(errs, fmt.Errorf("%s.data[4]: pool laps must be a finite number of zero or more, got %g", prefix, w.Data[4]))
		}
	}

	return errs
}

// positive is false for NaN and +Inf as well as for v <= 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// nonNegative is false for NaN and +Inf as well as for v < 0.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
