package render

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/color-guess/constants"
	"github.com/lixenwraith/color-guess/game"
	"github.com/lixenwraith/color-guess/palette"
)

// Box drawing runes for the focus ring
const (
	boxH  = '─'
	boxV  = '│'
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
)

// Draw paints the whole screen from snap; the caller is responsible for Show
func Draw(s Screen, l Layout, snap game.Snapshot, view View) {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	fill(s, Rect{X: 0, Y: 0, W: l.Width, H: l.Height}, base)

	if l.TooSmall {
		drawCentered(s, Rect{X: 0, Y: l.Height / 2, W: l.Width, H: 1}, constants.TooSmallNotice, base.Foreground(RgbWrong))
		return
	}

	drawCentered(s, l.Heading, constants.Heading, base.Foreground(RgbHeading).Bold(true))

	if snap.Target != "" {
		fill(s, l.Swatch, tcell.StyleDefault.Background(snap.Target.Tcell()))
	}

	drawCentered(s, l.Score, constants.ScorePrefix+strconv.Itoa(snap.Score), base.Foreground(RgbHeading).Bold(true))

	if msg := snap.Status.Message(); msg != "" {
		statusStyle := base.Foreground(RgbWrong)
		if snap.Status == game.StatusCorrect {
			statusStyle = base.Foreground(RgbCorrect)
		}
		drawCentered(s, l.Status, msg, statusStyle)
	}

	for i, r := range l.Options {
		if i >= len(snap.Options) {
			break
		}
		drawOption(s, r, snap.Options[i], i, i == view.Focus)
	}

	button := tcell.StyleDefault.Background(RgbButton).Foreground(RgbButtonText).Bold(true)
	fill(s, l.NewGame, button)
	drawCentered(s, l.NewGame, constants.NewGameLabel, button)

	hint := constants.KeyHint
	if view.Muted {
		hint += "  ♪ off"
	}
	drawCentered(s, l.Hint, hint, base.Foreground(RgbHint))
}

// drawOption fills the button with its color and labels it with its key
func drawOption(s Screen, r Rect, c palette.Color, index int, focused bool) {
	bg := tcell.StyleDefault.Background(c.Tcell())
	fill(s, r, bg)

	ink := bg.Foreground(c.Contrast())
	label := string(rune('1' + index))
	if focused {
		label = "[" + label + "]"
		ink = ink.Bold(true)
		if r.H >= 3 && r.W >= 3 {
			drawFrame(s, r, ink)
		}
	}
	drawCentered(s, Rect{X: r.X, Y: r.Y + r.H/2, W: r.W, H: 1}, label, ink)
}

// drawFrame outlines r with box runes, keeping its fill
func drawFrame(s Screen, r Rect, style tcell.Style) {
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, boxH, nil, style)
		s.SetContent(x, bottom, boxH, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, boxV, nil, style)
		s.SetContent(right, y, boxV, nil, style)
	}
	s.SetContent(r.X, r.Y, boxTL, nil, style)
	s.SetContent(right, r.Y, boxTR, nil, style)
	s.SetContent(r.X, bottom, boxBL, nil, style)
	s.SetContent(right, bottom, boxBR, nil, style)
}

// fill sets every cell of r to a blank with style, clipped to the screen
func fill(s Screen, r Rect, style tcell.Style) {
	w, h := s.Size()
	for y := r.Y; y < r.Y+r.H; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := r.X; x < r.X+r.W; x++ {
			if x < 0 || x >= w {
				continue
			}
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawCentered writes text centered on the first row of r, truncated to fit
func drawCentered(s Screen, r Rect, text string, style tcell.Style) {
	if r.Empty() {
		return
	}
	text = runewidth.Truncate(text, r.W, "…")
	x := r.X + (r.W-runewidth.StringWidth(text))/2
	drawText(s, x, r.Y, text, style)
}

// drawText writes text left to right, advancing by display width
func drawText(s Screen, x, y int, text string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x >= 0 && x+cw <= w {
			s.SetContent(x, y, ch, nil, style)
		}
		x += cw
	}
}
