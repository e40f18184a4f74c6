// Package report turns computed workout values into the fixed
// human-readable sentence and its machine-readable siblings.
package report

import (
	"fmt"
	"math"
)

// Info is the summary of one workout. Values are kept unrounded; rounding
// happens only when the report is rendered.
type Info struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the report sentence. The wording and the three-decimal
// precision are fixed.
func (i Info) Message() string {
	return i.message(i.TrainingType)
}

// message renders the sentence around an already rendered label.
func (i Info) message(label string) string {
	return fmt.Sprintf("Тип тренировки: %s; "+
		"Длительность: %.3f ч.; "+
		"Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; "+
		"Потрачено ккал: %.3f.",
		label, i.Duration, i.Distance, i.Speed, i.Calories)
}

func (i Info) String() string {
	return i.Message()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
