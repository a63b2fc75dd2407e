package domain

// Shared conversion constants.
const (
	LenStep = 0.65
	MInKm   = 1000
	MinInH  = 60
)

// Training is implemented by every concrete workout. There is no base
// implementation of SpentCalories: only Running, SportsWalking and
// Swimming can be constructed.
type Training interface {
	Kind() WorkoutKind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
	TrainingInfo() InfoMessage
}

// Workout holds the raw values common to every activity.
type Workout struct {
	Action    int
	DurationH float64
	WeightKg  float64
}

func (w Workout) Duration() float64 {
	return w.DurationH
}

// distance converts the action count to kilometres using the given step length.
func (w Workout) distance(lenStep float64) float64 {
	return float64(w.Action) * lenStep / MInKm
}

// Distance uses the generic step length shared by running and walking.
func (w Workout) Distance() float64 {
	return w.distance(LenStep)
}

// MeanSpeed is in km/h. DurationH must be positive.
func (w Workout) MeanSpeed() float64 {
	return w.Distance() / w.DurationH
}

// infoMessage snapshots t. Every concrete TrainingInfo delegates here so the
// variant's own Distance/MeanSpeed/SpentCalories are used.
func infoMessage(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Kind().Label(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
