package seesaw

import (
	"github.com/vovakirdan/pumpkin-seesaw/internal/config"
	"github.com/vovakirdan/pumpkin-seesaw/internal/core"
)

// pumpkinPalettes holds four colors per preset, light to heavy.
var pumpkinPalettes = map[config.ColorPreset][4]core.Color{
	config.ColorDefault:    {core.ColorBrightYellow, core.ColorOrange, core.ColorDarkOrange, core.ColorRed},
	config.ColorAutumn:     {core.ColorGold, core.ColorAmber, core.ColorDarkOrange, core.ColorBrown},
	config.ColorPastel:     {core.ColorPink, core.ColorPurple, core.ColorBrightBlue, core.ColorIndigo},
	config.ColorVibrant:    {core.ColorBrightYellow, core.ColorBrightGreen, core.ColorBrightRed, core.ColorPurple},
	config.ColorMonochrome: {core.ColorBrightWhite, core.ColorLightGray, core.ColorGray, core.ColorDarkGray},
}

// PumpkinColor returns the color of a pumpkin of the given weight.
func PumpkinColor(preset config.ColorPreset, weight int) core.Color {
	palette, ok := pumpkinPalettes[preset]
	if !ok {
		palette = pumpkinPalettes[config.ColorDefault]
	}
	switch {
	case weight <= 3:
		return palette[0]
	case weight <= 6:
		return palette[1]
	case weight <= 9:
		return palette[2]
	default:
		return palette[3]
	}
}

// boardStyle colors the seesaw parts.
type boardStyle struct {
	Board      core.Color
	Pivot      core.Color
	SlotEmpty  core.Color
	SlotFilled core.Color
	Label      core.Color
}

var boardStyles = map[config.SeesawStyle]boardStyle{
	config.StyleClassic: {
		Board: core.ColorAmber, Pivot: core.ColorBrown,
		SlotEmpty: core.ColorGold, SlotFilled: core.ColorBrown, Label: core.ColorAmber,
	},
	config.StyleModern: {
		Board: core.ColorGray, Pivot: core.ColorDarkGray,
		SlotEmpty: core.ColorLightGray, SlotFilled: core.ColorDarkGray, Label: core.ColorLightGray,
	},
	config.StylePlayful: {
		Board: core.ColorPurple, Pivot: core.ColorIndigo,
		SlotEmpty: core.ColorBrightYellow, SlotFilled: core.ColorPink, Label: core.ColorMagenta,
	},
}

func styleFor(s config.SeesawStyle) boardStyle {
	if st, ok := boardStyles[s]; ok {
		return st
	}
	return boardStyles[config.StyleClassic]
}
