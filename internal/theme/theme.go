package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	foreground color.Color
	accents    map[string]color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)
	t.accents = map[string]color.Color{
		"Swimming":      ColorSwim,
		"Running":       ColorRun,
		"SportsWalking": ColorWalk,
	}

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

// Accent returns the colour for a training label, dim for labels it does
// not know.
func (t Theme) Accent(label string) color.Color {
	if c, ok := t.accents[label]; ok {
		return c
	}
	return ColorDim
}

func (t Theme) Label(label string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent(label))
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}
