package core

// Color is a foreground color for a screen cell. The platform maps it to a
// terminal palette entry; the stream ships it as a name.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorTable = [...]struct {
	name string
	ansi string // ANSI 256-color index, empty for the terminal default
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright_red", "9"},
	ColorBrightGreen:   {"bright_green", "10"},
	ColorBrightYellow:  {"bright_yellow", "11"},
	ColorBrightBlue:    {"bright_blue", "12"},
	ColorBrightMagenta: {"bright_magenta", "13"},
	ColorBrightCyan:    {"bright_cyan", "14"},
	ColorBrightWhite:   {"bright_white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// ANSI returns the 256-color palette index, or "" for the default color.
func (c Color) ANSI() string {
	if int(c) >= len(colorTable) {
		return ""
	}
	return colorTable[c].ansi
}

// String returns the color name.
func (c Color) String() string {
	if int(c) >= len(colorTable) {
		return "default"
	}
	return colorTable[c].name
}
