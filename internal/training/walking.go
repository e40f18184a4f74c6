package training

import (
	"math"

	"github.com/garrettladley/ftracker/internal/validator"
)

// SportsWalking is race walking. Calories depend on the walker's height.
type SportsWalking struct {
	Training
	HeightCm float64
}

func NewSportsWalking(action int, duration, weight, height float64) (SportsWalking, error) {
	return newSample(SportsWalking{
		Training: Training{Action: action, DurationHours: duration, WeightKg: weight},
		HeightCm: height,
	})
}

func (SportsWalking) Code() Code { return CodeWalking }
func (SportsWalking) Label() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

func (w SportsWalking) MeanSpeed() float64 {
	return w.meanSpeed(w.Distance())
}

func (w SportsWalking) SpentCalories() float64 {
	speedMs := w.MeanSpeed() * kmhInMsec
	return (walkingCaloriesWeightMultiplier*w.WeightKg +
		(math.Pow(speedMs, 2)/(w.HeightCm/cmInM))*walkingSpeedHeightMultiplier*w.WeightKg) *
		minInH * w.DurationHours
}

func (w SportsWalking) Validate() map[string]string {
	var f validator.Fields
	w.validate(&f)
	f.Positive("height_cm", w.HeightCm)
	return f.Map()
}
