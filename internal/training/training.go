// Package training computes distance, mean speed and spent calories for
// swimming, running and race-walking workouts.
package training

import (
	"github.com/garrettladley/ftracker/internal/report"
	"github.com/garrettladley/ftracker/internal/validator"
)

// Sample is one recorded workout. Implementations are immutable values.
type Sample interface {
	validator.Validator

	Code() Code
	Label() string
	// Duration is the workout length in hours.
	Duration() float64
	// Distance is the covered distance in kilometres.
	Distance() float64
	// MeanSpeed is the average speed in km/h.
	MeanSpeed() float64
	// SpentCalories is the energy spent in kcal.
	SpentCalories() float64
}

// Training holds the inputs every activity shares.
type Training struct {
	Action        int // steps or strokes
	DurationHours float64
	WeightKg      float64
}

func (t Training) Duration() float64 {
	return t.DurationHours
}

func (t Training) distance(step float64) float64 {
	return float64(t.Action) * step / mInKm
}

func (t Training) meanSpeed(distance float64) float64 {
	return distance / t.DurationHours
}

func (t Training) validate(f *validator.Fields) {
	f.NonNegative("action", float64(t.Action))
	f.Positive("duration_hours", t.DurationHours)
	f.Positive("weight_kg", t.WeightKg)
}

// Summarize builds the report for a sample.
func Summarize(s Sample) report.Info {
	return report.Info{
		TrainingType: s.Label(),
		Duration:     s.Duration(),
		Distance:     s.Distance(),
		Speed:        s.MeanSpeed(),
		Calories:     s.SpentCalories(),
	}
}

func newSample[S Sample](s S) (S, error) {
	if err := validator.Validate(s); err != nil {
		var zero S
		return zero, err
	}
	return s, nil
}
