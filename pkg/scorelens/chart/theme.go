// Package chart renders distribution charts for score columns.
package chart

import "image/color"

// Theme holds the chart's colors. It is passed into Render explicitly
// rather than kept as package state.
type Theme struct {
	// Background fills the plot area.
	Background color.Color
	// Text colors titles and annotations.
	Text color.Color
	// Main colors the histogram and the normal curve.
	Main color.Color
	// Accent colors the mean marker.
	Accent color.Color
}

// DefaultTheme is the ivory/green/gold palette of the analysis UI.
func DefaultTheme() Theme {
	return Theme{
		Background: rgb(0xFF, 0xFF, 0xF0),
		Text:       rgb(0x1C, 0x1C, 0x1C),
		Main:       rgb(0x00, 0x42, 0x25),
		Accent:     rgb(0xD4, 0xAF, 0x37),
	}
}

func rgb(r, g, b uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// alpha returns c with its opacity replaced by a.
func alpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
