package domain

const (
	swimmingLenStep             = 1.38
	swimmingCalorieSpeedShift   = 1.1
	swimmingCalorieWeightFactor = 2
)

// Swimming is a pool swim measured in strokes and completed laps.
type Swimming struct {
	Workout
	LengthPoolM float64
	CountPool   int
}

// NewSwimming builds a pool swim from the tracker package values.
func NewSwimming(action int, durationH, weightKg, lengthPoolM float64, countPool int) *Swimming {
	return &Swimming{
		Workout:     Workout{Action: action, DurationH: durationH, WeightKg: weightKg},
		LengthPoolM: lengthPoolM,
		CountPool:   countPool,
	}
}

func (s *Swimming) Kind() WorkoutKind {
	return KindSwimming
}

// Distance counts strokes with the swimming stroke length.
func (s *Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

// MeanSpeed is derived from pool geometry, not from the stroke count.
func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPoolM * float64(s.CountPool) / MInKm / s.DurationH
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCalorieSpeedShift) * swimmingCalorieWeightFactor * s.WeightKg
}

func (s *Swimming) TrainingInfo() InfoMessage {
	return infoMessage(s)
}
