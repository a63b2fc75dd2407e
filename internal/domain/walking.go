package domain

import "math"

const (
	walkingCalorieWeightMultiplier = 0.035
	walkingCalorieSpeedMultiplier  = 0.029
	walkingSpeedExponent           = 2
)

// SportsWalking is a walk measured in steps, with height in the calorie formula.
type SportsWalking struct {
	Workout
	HeightCm float64
}

// NewSportsWalking builds a sports walk from the tracker package values.
func NewSportsWalking(action int, durationH, weightKg, heightCm float64) *SportsWalking {
	return &SportsWalking{
		Workout:  Workout{Action: action, DurationH: durationH, WeightKg: weightKg},
		HeightCm: heightCm,
	}
}

func (w *SportsWalking) Kind() WorkoutKind {
	return KindWalking
}

// SpentCalories floors speed²/height before scaling. The truncation is part
// of the formula, not a rounding step.
func (w *SportsWalking) SpentCalories() float64 {
	speedTerm := math.Floor(math.Pow(w.MeanSpeed(), walkingSpeedExponent) / w.HeightCm)
	return (walkingCalorieWeightMultiplier*w.WeightKg +
		speedTerm*walkingCalorieSpeedMultiplier*w.WeightKg) * w.DurationH * MinInH
}

func (w *SportsWalking) TrainingInfo() InfoMessage {
	return infoMessage(w)
}
