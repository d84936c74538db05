package render

import "github.com/gdamore/tcell/v2"

// UI colors
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbHeading    = tcell.NewRGBColor(255, 255, 255) // White
	RgbText       = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbHint       = tcell.NewRGBColor(120, 120, 140) // Muted gray
	RgbCorrect    = tcell.NewRGBColor(22, 163, 74)   // Green
	RgbWrong      = tcell.NewRGBColor(220, 38, 38)   // Red
	RgbButton     = tcell.NewRGBColor(59, 130, 246)  // Blue
	RgbButtonText = tcell.NewRGBColor(255, 255, 255) // White
)
