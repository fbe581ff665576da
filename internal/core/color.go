package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the field, HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)

// ansiCodes holds the ANSI 256-color code of each palette entry.
var ansiCodes = [...]string{
	ColorDefault:     "",
	ColorRed:         "1",
	ColorYellow:      "3",
	ColorMagenta:     "5",
	ColorCyan:        "6",
	ColorWhite:       "7",
	ColorBrightRed:   "9",
	ColorBrightCyan:  "14",
	ColorBrightWhite: "15",
	ColorGray:        "245",
	ColorDarkGray:    "238",
}

// ANSI returns the ANSI 256-color code of c, empty for the terminal default
// and for colors outside the palette.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
