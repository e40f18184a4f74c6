package validator

import (
	"math"
	"strconv"

	"github.com/garrettladley/ftracker/internal/xerrors"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

func Validate(v Validator) *xerrors.Error {
	if err := v.Validate(); err != nil {
		return xerrors.Validation(err)
	}
	return nil
}

// Fields accumulates per-field problems. The zero value is ready to use.
type Fields map[string]string

func (f *Fields) add(name, msg string) {
	if *f == nil {
		*f = make(Fields)
	}
	if _, ok := (*f)[name]; !ok {
		(*f)[name] = msg
	}
}

func (f *Fields) Positive(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		f.add(name, "must be a finite number")
		return
	}
	if v <= 0 {
		f.add(name, "must be positive")
	}
}

func (f *Fields) NonNegative(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		f.add(name, "must be a finite number")
		return
	}
	if v < 0 {
		f.add(name, "must not be negative")
	}
}

func (f *Fields) Whole(name string, v float64) {
	if v != math.Trunc(v) {
		f.add(name, "must be a whole number")
	}
}

func (f *Fields) AtMost(name string, v, limit float64) {
	if v > limit {
		f.add(name, "must be at most "+strconv.FormatFloat(limit, 'f', -1, 64))
	}
}

// Map returns nil when nothing was recorded.
func (f Fields) Map() map[string]string {
	if len(f) == 0 {
		return nil
	}
	return f
}
