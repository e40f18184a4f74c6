package training

import (
	"fmt"
	"math"
	"strings"

	"github.com/garrettladley/ftracker/internal/validator"
	"github.com/garrettladley/ftracker/internal/xerrors"
)

type entry struct {
	label  string
	fields []string
	whole  []int // indexes of fields that must hold integers
	build  func(data []float64) (Sample, error)
}

var registry = map[Code]entry{
	CodeSwimming: {
		label:  Swimming{}.Label(),
		fields: []string{"action", "duration_hours", "weight_kg", "pool_length_m", "pool_count"},
		whole:  []int{0, 4},
		build: func(d []float64) (Sample, error) {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
		},
	},
	CodeRunning: {
		label:  Running{}.Label(),
		fields: []string{"action", "duration_hours", "weight_kg"},
		whole:  []int{0},
		build: func(d []float64) (Sample, error) {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	CodeWalking: {
		label:  SportsWalking{}.Label(),
		fields: []string{"action", "duration_hours", "weight_kg", "height_cm"},
		whole:  []int{0},
		build: func(d []float64) (Sample, error) {
			return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// Read turns one sensor package into a sample. data must hold exactly the
// fields the code expects, in the order Code.Fields reports.
func Read(code string, data []float64) (Sample, error) {
	e, ok := registry[Code(code)]
	if !ok {
		return nil, unknownCode(code)
	}

	if len(data) != len(e.fields) {
		return nil, xerrors.Arity(xerrors.WithMessage(fmt.Sprintf(
			"%s expects %d fields (%s), got %d",
			code, len(e.fields), strings.Join(e.fields, ", "), len(data),
		)))
	}

	// integer fields are checked before conversion so 1.5 laps is rejected
	// rather than truncated and 1e19 steps cannot overflow int
	var f validator.Fields
	for _, i := range e.whole {
		f.NonNegative(e.fields[i], data[i])
		f.Whole(e.fields[i], data[i])
		f.AtMost(e.fields[i], data[i], math.MaxInt32)
	}
	if fields := f.Map(); fields != nil {
		return nil, xerrors.Validation(fields)
	}

	s, err := e.build(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s package: %w", code, err)
	}
	return s, nil
}
