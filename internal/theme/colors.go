package theme

import "charm.land/lipgloss/v2"

var (
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorSwim = lipgloss.Color("#67AEE6") // pool blue
	ColorRun  = lipgloss.Color("#0093E7") // strain blue
	ColorWalk = lipgloss.Color("#00F19F") // teal
)
