package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors used by the HUD, board and pumpkin palettes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorMagenta
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkOrange
	ColorAmber
	ColorBrown
	ColorPink
	ColorPurple
	ColorIndigo
	ColorLightGray
	ColorDarkGray
	ColorGold
)
