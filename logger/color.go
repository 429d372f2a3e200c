package logger

import (
	"strconv"

	"github.com/fatih/color"
)

// Color identifies a display color. It holds the ANSI SGR sequence that
// selects the color; the zero value means no color was applied.
type Color string

func sgr(attr color.Attribute) Color {
	return Color("\033[" + strconv.Itoa(int(attr)) + "m")
}

// Console colors.
var (
	Black         = sgr(color.FgBlack)
	Red           = sgr(color.FgRed)
	Green         = sgr(color.FgGreen)
	Yellow        = sgr(color.FgYellow)
	Blue          = sgr(color.FgBlue)
	Magenta       = sgr(color.FgMagenta)
	Cyan          = sgr(color.FgCyan)
	White         = sgr(color.FgWhite)
	Gray          = sgr(color.FgHiBlack)
	BrightRed     = sgr(color.FgHiRed)
	BrightGreen   = sgr(color.FgHiGreen)
	BrightYellow  = sgr(color.FgHiYellow)
	BrightBlue    = sgr(color.FgHiBlue)
	BrightMagenta = sgr(color.FgHiMagenta)
	BrightCyan    = sgr(color.FgHiCyan)
	BrightWhite   = sgr(color.FgHiWhite)

	// Reset restores the terminal default after a colored line.
	Reset = sgr(color.Reset)
)

var defaultColors = map[Level]Color{
	VerboseLevel: Gray,
	InfoLevel:    BrightBlue,
	DebugLevel:   BrightMagenta,
	WarnLevel:    BrightYellow,
	SuccessLevel: BrightGreen,
	ErrorLevel:   BrightRed,
}

// DefaultColor returns the built-in color for level, or "" for an unknown level.
func DefaultColor(level Level) Color {
	return defaultColors[level]
}
