package ui

import "image/color"

// Theme colors - these are variables so they can be modified for dark mode
var (
	colWhite     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colBlack     = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	colGray      = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	colLightGray = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colSelected  = color.NRGBA{R: 200, G: 220, B: 255, A: 255}
	colToolbar   = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	colFolder    = color.NRGBA{R: 234, G: 179, B: 8, A: 255}
	colFile      = color.NRGBA{R: 107, G: 114, B: 128, A: 255}
	colAccent    = color.NRGBA{R: 66, G: 133, B: 244, A: 255}
	colDisabled  = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
	colBackdrop  = color.NRGBA{R: 0, G: 0, B: 0, A: 128}
	colOnAccent  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// applyDarkMode swaps the palette used by every layout function
func applyDarkMode(dark bool) {
	if !dark {
		colWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		colBlack = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
		colLightGray = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
		colSelected = color.NRGBA{R: 200, G: 220, B: 255, A: 255}
		colToolbar = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
		return
	}
	colWhite = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	colBlack = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	colLightGray = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	colSelected = color.NRGBA{R: 40, G: 70, B: 120, A: 255}
	colToolbar = color.NRGBA{R: 45, G: 45, B: 45, A: 255}
}
