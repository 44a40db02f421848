package core

// Color is the foreground color of a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorYellow
	ColorCyan
	ColorGray
)
