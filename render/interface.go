package render

import "github.com/gdamore/tcell/v2"

// Screen is the subset of tcell.Screen the renderer draws through
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// View carries host UI state that is not game state
type View struct {
	Focus int  // Focused option index, -1 for none
	Muted bool // Sound muted indicator
}
