package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 95, 120)   // Muted slate
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbPaused     = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbSnakeHead    = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeSegment = tcell.NewRGBColor(0, 170, 0)   // Normal Green
	RgbFoodFresh    = tcell.NewRGBColor(255, 80, 80) // Normal Red
	RgbFoodStale    = tcell.NewRGBColor(130, 90, 40) // Brown, about to rot
	RgbUnknown      = tcell.NewRGBColor(200, 0, 200) // Magenta, unmapped asset
)

// assetColors maps material handles to their base color
var assetColors = map[core.AssetHandle]tcell.Color{
	core.AssetHead:    RgbSnakeHead,
	core.AssetSegment: RgbSnakeSegment,
	core.AssetFood:    RgbFoodFresh,
}

// AssetColor returns the color for a handle, magenta when unmapped
func AssetColor(asset core.AssetHandle) tcell.Color {
	if c, ok := assetColors[asset]; ok {
		return c
	}
	return RgbUnknown
}

// Glyph returns the rune that best approximates a logical size within one cell
func Glyph(size float64) rune {
	switch {
	case size >= 0.75:
		return '█'
	case size >= 0.5:
		return '▓'
	case size > 0:
		return '▒'
	}
	return ' '
}
