package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/color-guess/constants"
	"github.com/lixenwraith/color-guess/game"
	"github.com/lixenwraith/color-guess/palette"
)

var sampleOptions = []palette.Color{
	"rgb(10, 20, 30)", "rgb(1, 2, 3)", "rgb(4, 5, 6)",
	"rgb(7, 8, 9)", "rgb(11, 12, 13)", "rgb(250, 240, 230)",
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText reads one screen row as a string
func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func bgAt(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestLayoutFullSize(t *testing.T) {
	l := NewLayout(80, 24)
	if l.TooSmall {
		t.Fatal("80x24 should fit")
	}

	if l.Swatch.H != constants.SwatchHeight {
		t.Errorf("Expected swatch height %d, got %d", constants.SwatchHeight, l.Swatch.H)
	}
	for i, r := range l.Options {
		if r.H != constants.ButtonHeight {
			t.Errorf("Option %d height %d, want %d", i, r.H, constants.ButtonHeight)
		}
		if r.X < 0 || r.Y < 0 || r.X+r.W > 80 || r.Y+r.H > 24 {
			t.Errorf("Option %d %+v outside screen", i, r)
		}
		for j := i + 1; j < len(l.Options); j++ {
			o := l.Options[j]
			if r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H {
				t.Errorf("Options %d and %d overlap: %+v %+v", i, j, r, o)
			}
		}
	}
	if l.Hint.Y >= 24 {
		t.Errorf("Hint row %d off screen", l.Hint.Y)
	}
}

func TestLayoutCompact(t *testing.T) {
	l := NewLayout(40, constants.MinHeight)
	if l.TooSmall {
		t.Fatalf("%dx%d should fit compact layout", 40, constants.MinHeight)
	}
	if l.Swatch.H != compactSwatchHeight {
		t.Errorf("Expected compact swatch %d, got %d", compactSwatchHeight, l.Swatch.H)
	}
	if l.Options[0].H != compactButtonHeight {
		t.Errorf("Expected compact buttons %d, got %d", compactButtonHeight, l.Options[0].H)
	}
	if l.Hint.Y != constants.MinHeight-1 {
		t.Errorf("Expected hint on last row %d, got %d", constants.MinHeight-1, l.Hint.Y)
	}
}

func TestLayoutTooSmall(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"Narrow", constants.MinPanelWidth, 30},
		{"Short", 80, constants.MinHeight - 1},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.w, tt.h)
			if !l.TooSmall {
				t.Errorf("Expected %dx%d too small", tt.w, tt.h)
			}
			if c, _ := l.HitTest(tt.w/2, tt.h/2); c != ControlNone {
				t.Errorf("Too-small layout hit %v", c)
			}
		})
	}
}

func TestHitTest(t *testing.T) {
	l := NewLayout(80, 24)

	for i, r := range l.Options {
		for _, pt := range [][2]int{{r.X, r.Y}, {r.X + r.W - 1, r.Y + r.H - 1}, {r.X + r.W/2, r.Y + r.H/2}} {
			c, idx := l.HitTest(pt[0], pt[1])
			if c != ControlOption || idx != i {
				t.Errorf("HitTest(%d,%d) = %v,%d; want option %d", pt[0], pt[1], c, idx, i)
			}
		}
	}

	if c, _ := l.HitTest(l.NewGame.X+1, l.NewGame.Y); c != ControlNewGame {
		t.Errorf("Expected New Game hit, got %v", c)
	}
	if c, _ := l.HitTest(l.Heading.X, l.Heading.Y); c != ControlNone {
		t.Errorf("Heading should not be clickable, got %v", c)
	}
	if c, _ := l.HitTest(l.Swatch.X, l.Swatch.Y); c != ControlNone {
		t.Errorf("Swatch should not be clickable, got %v", c)
	}
}

func TestDrawSurface(t *testing.T) {
	screen := newScreen(t, 80, 24)
	l := NewLayout(80, 24)
	snap := game.Snapshot{
		Target:  "rgb(10, 20, 30)",
		Options: sampleOptions,
		Score:   3,
		Status:  game.StatusIncorrect,
		Round:   4,
	}

	Draw(screen, l, snap, View{Focus: -1})

	if got := rowText(screen, l.Heading.Y); !strings.Contains(got, "Guess the Color!") {
		t.Errorf("Heading row %q", got)
	}
	if got := bgAt(screen, l.Swatch.X, l.Swatch.Y); got != snap.Target.Tcell() {
		t.Errorf("Swatch background %v, want %v", got, snap.Target.Tcell())
	}
	if got := rowText(screen, l.Score.Y); !strings.Contains(got, "Score: 3") {
		t.Errorf("Score row %q", got)
	}

	status := rowText(screen, l.Status.Y)
	if !strings.Contains(status, "Wrong") {
		t.Errorf("Status row %q", status)
	}
	idx := strings.Index(status, "W")
	_, _, style, _ := screen.GetContent(idx, l.Status.Y)
	if fg, _, _ := style.Decompose(); fg != RgbWrong {
		t.Errorf("Wrong status fg %v, want %v", fg, RgbWrong)
	}

	for i, r := range l.Options {
		if got := bgAt(screen, r.X, r.Y); got != sampleOptions[i].Tcell() {
			t.Errorf("Option %d background %v, want %v", i, got, sampleOptions[i].Tcell())
		}
		label := rowText(screen, r.Y+r.H/2)[r.X : r.X+r.W]
		if !strings.Contains(label, string(rune('1'+i))) {
			t.Errorf("Option %d label row %q missing key", i, label)
		}
	}

	if got := rowText(screen, l.NewGame.Y); !strings.Contains(got, "New Game") {
		t.Errorf("New Game row %q", got)
	}
	if got := bgAt(screen, l.NewGame.X, l.NewGame.Y); got != RgbButton {
		t.Errorf("New Game background %v", got)
	}
}

func TestDrawStatusStates(t *testing.T) {
	tests := []struct {
		status game.Status
		want   string
		fg     tcell.Color
	}{
		{game.StatusCorrect, "Correct", RgbCorrect},
		{game.StatusIncorrect, "Wrong", RgbWrong},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			screen := newScreen(t, 80, 24)
			l := NewLayout(80, 24)
			Draw(screen, l, game.Snapshot{Target: sampleOptions[0], Options: sampleOptions, Status: tt.status}, View{Focus: -1})

			row := rowText(screen, l.Status.Y)
			idx := strings.Index(row, tt.want)
			if idx < 0 {
				t.Fatalf("Status row %q missing %q", row, tt.want)
			}
			_, _, style, _ := screen.GetContent(idx, l.Status.Y)
			if fg, _, _ := style.Decompose(); fg != tt.fg {
				t.Errorf("Status fg %v, want %v", fg, tt.fg)
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		screen := newScreen(t, 80, 24)
		l := NewLayout(80, 24)
		Draw(screen, l, game.Snapshot{Target: sampleOptions[0], Options: sampleOptions}, View{Focus: -1})
		if row := strings.TrimSpace(rowText(screen, l.Status.Y)); row != "" {
			t.Errorf("Expected blank status row, got %q", row)
		}
	})
}

func TestDrawFocusRing(t *testing.T) {
	screen := newScreen(t, 80, 24)
	l := NewLayout(80, 24)
	Draw(screen, l, game.Snapshot{Target: sampleOptions[0], Options: sampleOptions}, View{Focus: 2})

	r := l.Options[2]
	if mainc, _, _, _ := screen.GetContent(r.X, r.Y); mainc != boxTL {
		t.Errorf("Expected focus corner at option 2, got %q", mainc)
	}
	if label := rowText(screen, r.Y+r.H/2); !strings.Contains(label, "[3]") {
		t.Errorf("Expected bracketed focus label, row %q", label)
	}

	other := l.Options[0]
	if mainc, _, _, _ := screen.GetContent(other.X, other.Y); mainc == boxTL {
		t.Error("Unfocused option drew a frame")
	}
}

func TestDrawMutedHint(t *testing.T) {
	screen := newScreen(t, 80, 24)
	l := NewLayout(80, 24)
	Draw(screen, l, game.Snapshot{Target: sampleOptions[0], Options: sampleOptions}, View{Focus: -1, Muted: true})

	if row := rowText(screen, l.Hint.Y); !strings.Contains(row, "off") {
		t.Errorf("Expected muted indicator in hint row %q", row)
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := newScreen(t, 20, 8)
	l := NewLayout(20, 8)
	Draw(screen, l, game.Snapshot{Target: sampleOptions[0], Options: sampleOptions}, View{Focus: -1})

	if row := rowText(screen, 4); !strings.Contains(row, "too small") {
		t.Errorf("Expected too-small notice, got %q", row)
	}
}
