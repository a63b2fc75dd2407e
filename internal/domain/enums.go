package domain

// WorkoutKind identifies one of the supported activity types.
type WorkoutKind string

const (
	KindRunning  WorkoutKind = "running"
	KindWalking  WorkoutKind = "walking"
	KindSwimming WorkoutKind = "swimming"
)

// Workout codes reported by the tracker device.
const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// Codes lists the accepted workout codes in the order the sample run uses.
var Codes = []string{CodeSwimming, CodeRunning, CodeWalking}

// Label returns the training type name printed in summaries.
func (k WorkoutKind) Label() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return string(k)
	}
}

// Arity is the number of raw values a package of this kind carries.
func (k WorkoutKind) Arity() int {
	switch k {
	case KindRunning:
		return 3
	case KindWalking:
		return 4
	case KindSwimming:
		return 5
	default:
		return 0
	}
}
