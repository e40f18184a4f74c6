package training

import "github.com/garrettladley/ftracker/internal/validator"

// Swimming counts strokes for distance but derives speed from the pool
// dimensions.
type Swimming struct {
	Training
	PoolLengthM float64
	PoolCount   int
}

func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) (Swimming, error) {
	return newSample(Swimming{
		Training:    Training{Action: action, DurationHours: duration, WeightKg: weight},
		PoolLengthM: poolLength,
		PoolCount:   poolCount,
	})
}

func (Swimming) Code() Code { return CodeSwimming }
func (Swimming) Label() string { return "Swimming" }

func (s Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

func (s Swimming) MeanSpeed() float64 {
	return s.PoolLengthM * float64(s.PoolCount) / mInKm / s.DurationHours
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.WeightKg * s.DurationHours
}

func (s Swimming) Validate() map[string]string {
	var f validator.Fields
	s.validate(&f)
	f.NonNegative("pool_length_m", s.PoolLengthM)
	f.NonNegative("pool_count", float64(s.PoolCount))
	return f.Map()
}
