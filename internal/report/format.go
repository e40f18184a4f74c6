package report

import (
	"encoding"
	"fmt"
	"strings"
)

type Format string

var (
	_ fmt.Stringer             = (*Format)(nil)
	_ encoding.TextUnmarshaler = (*Format)(nil)
)

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatPretty Format = "pretty"
)

func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatPretty}
}

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatPretty:
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("invalid format: %q (valid: text, json, pretty)", s)
	}
}

func (f *Format) UnmarshalText(text []byte) error {
	format, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = format
	return nil
}

func (f Format) String() string {
	return string(f)
}

// Set and Type let a Format be bound directly as a pflag value.
func (f *Format) Set(s string) error {
	return f.UnmarshalText([]byte(s))
}

func (f *Format) Type() string {
	return "format"
}
