package domain

const (
	runningCalorieSpeedMultiplier = 18
	runningCalorieSpeedShift      = 20
)

// Running is a run measured in steps.
type Running struct {
	Workout
}

// NewRunning builds a run from the tracker package values.
func NewRunning(action int, durationH, weightKg float64) *Running {
	return &Running{Workout: Workout{Action: action, DurationH: durationH, WeightKg: weightKg}}
}

func (r *Running) Kind() WorkoutKind {
	return KindRunning
}

func (r *Running) SpentCalories() float64 {
	return (runningCalorieSpeedMultiplier*r.MeanSpeed() - runningCalorieSpeedShift) *
		r.WeightKg / MInKm * r.DurationH * MinInH
}

func (r *Running) TrainingInfo() InfoMessage {
	return infoMessage(r)
}
