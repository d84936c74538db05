package render

import (
	"github.com/lixenwraith/color-guess/constants"
)

// Rect is a cell rectangle in screen coordinates
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Control identifies a clickable element
type Control uint8

const (
	ControlNone Control = iota
	ControlOption
	ControlNewGame
)

// Fixed rows: top margin, heading, gap, gap, score, status, gap, grid row gap, gap, new game, gap, hint
const fixedRows = 12

// Compact sizes used when the terminal is short
const (
	compactSwatchHeight = 2
	compactButtonHeight = 1
)

// Layout is the placement of every element for one screen size
type Layout struct {
	Width, Height int
	TooSmall      bool

	Heading Rect
	Swatch  Rect
	Score   Rect
	Status  Rect
	Options [constants.OptionCount]Rect
	NewGame Rect
	Hint    Rect
}

// NewLayout places the panel centered on a width x height screen
// Swatch and buttons shrink toward a compact form on short terminals
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	panelW := constants.PanelWidth
	if width-2 < panelW {
		panelW = width - 2
	}
	if panelW < constants.MinPanelWidth || height < constants.MinHeight {
		l.TooSmall = true
		return l
	}

	swatchH, buttonH := compactSwatchHeight, compactButtonHeight
	rows := constants.OptionCount / constants.GridColumns
	extra := height - constants.MinHeight
	for extra > 0 {
		grown := false
		if swatchH < constants.SwatchHeight {
			swatchH++
			extra--
			grown = true
		}
		if extra >= rows && buttonH < constants.ButtonHeight {
			buttonH++
			extra -= rows
			grown = true
		}
		if !grown {
			break
		}
	}

	needed := fixedRows + swatchH + rows*buttonH
	top := (height - needed) / 2
	if top < 0 {
		top = 0
	}
	x0 := (width - panelW) / 2

	y := top + 1
	l.Heading = Rect{X: x0, Y: y, W: panelW, H: 1}
	y += 2
	l.Swatch = Rect{X: x0, Y: y, W: panelW, H: swatchH}
	y += swatchH + 1
	l.Score = Rect{X: x0, Y: y, W: panelW, H: 1}
	y++
	l.Status = Rect{X: x0, Y: y, W: panelW, H: 1}
	y += 2

	cols := constants.GridColumns
	gap := constants.ButtonGap
	buttonW := (panelW - (cols-1)*gap) / cols
	gridW := buttonW*cols + gap*(cols-1)
	gridX := x0 + (panelW-gridW)/2
	for i := range l.Options {
		row, col := i/cols, i%cols
		l.Options[i] = Rect{
			X: gridX + col*(buttonW+gap),
			Y: y + row*(buttonH+1),
			W: buttonW,
			H: buttonH,
		}
	}
	y += rows*buttonH + (rows - 1) + 1

	l.NewGame = Rect{X: gridX, Y: y, W: gridW, H: 1}
	y += 2
	l.Hint = Rect{X: 0, Y: y, W: width, H: 1}

	return l
}

// HitTest returns the control under cell (x, y) and, for options, its index
func (l Layout) HitTest(x, y int) (Control, int) {
	if l.TooSmall {
		return ControlNone, -1
	}
	for i, r := range l.Options {
		if r.Contains(x, y) {
			return ControlOption, i
		}
	}
	if l.NewGame.Contains(x, y) {
		return ControlNewGame, -1
	}
	return ControlNone, -1
}
