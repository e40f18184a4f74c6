package training

import "github.com/garrettladley/ftracker/internal/validator"

type Running struct {
	Training
}

func NewRunning(action int, duration, weight float64) (Running, error) {
	return newSample(Running{Training{Action: action, DurationHours: duration, WeightKg: weight}})
}

func (Running) Code() Code { return CodeRunning }
func (Running) Label() string { return "Running" }

func (r Running) Distance() float64 {
	return r.distance(lenStep)
}

func (r Running) MeanSpeed() float64 {
	return r.meanSpeed(r.Distance())
}

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() + runningCaloriesMeanSpeedShift) *
		r.WeightKg / mInKm * (r.DurationHours * minInH)
}

func (r Running) Validate() map[string]string {
	var f validator.Fields
	r.validate(&f)
	return f.Map()
}
