package training

import (
	"fmt"
	"slices"
	"strings"

	"github.com/garrettladley/ftracker/internal/xerrors"
)

// Code is the short activity code a sensor package is tagged with.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

func (c Code) String() string {
	return string(c)
}

// ParseCode accepts any letter case and surrounding whitespace. Unknown codes
// yield an error matching xerrors.ErrUnknownActivity.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := registry[c]; !ok {
		return "", unknownCode(s)
	}
	return c, nil
}

// Codes lists the registered codes in lexical order.
func Codes() []Code {
	codes := make([]Code, 0, len(registry))
	for c := range registry {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Label returns the training type name used in reports, or "" for unknown
// codes.
func (c Code) Label() string {
	return registry[c].label
}

// Fields returns the ordered field names a package with this code carries.
func (c Code) Fields() []string {
	return slices.Clone(registry[c].fields)
}

func unknownCode(code string) *xerrors.Error {
	return xerrors.UnknownActivity(
		xerrors.WithMessage(fmt.Sprintf("unknown activity code %q", code)),
	)
}
