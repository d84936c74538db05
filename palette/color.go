package palette

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a string is not an rgb(R, G, B) triple
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB triple in its canonical text form "rgb(R, G, B)"
// The string is the identity: two colors are equal iff their strings are equal
type Color string

// lightnessThreshold splits fills that take a dark label from those that take a light one
const lightnessThreshold = 0.6

// FromRGB formats three channels into the canonical form
func FromRGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("rgb(%d, %d, %d)", r, g, b))
}

// Random draws each channel uniformly from [0,255]
// A nil rng falls back to the process-wide source
func Random(rng *rand.Rand) Color {
	if rng == nil {
		return FromRGB(uint8(rand.Intn(256)), uint8(rand.Intn(256)), uint8(rand.Intn(256)))
	}
	return FromRGB(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
}

// Parse accepts "rgb(R, G, B)" with any spacing around the commas and returns the canonical form
func Parse(s string) (Color, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(s), "rgb(")
	if !ok {
		return "", fmt.Errorf("%w: %q missing rgb( prefix", ErrInvalidColor, s)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return "", fmt.Errorf("%w: %q missing closing paren", ErrInvalidColor, s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %q needs 3 channels, got %d", ErrInvalidColor, s, len(parts))
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return "", fmt.Errorf("%w: %q channel %d: %v", ErrInvalidColor, s, i, err)
		}
		ch[i] = uint8(v)
	}

	return FromRGB(ch[0], ch[1], ch[2]), nil
}

// String implements fmt.Stringer
func (c Color) String() string {
	return string(c)
}

// RGB returns the channels, zero for a malformed value
func (c Color) RGB() (r, g, b uint8) {
	if _, err := fmt.Sscanf(string(c), "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}

// Tcell converts to a truecolor tcell color; tcell downsamples on 256-color terminals
func (c Color) Tcell() tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Contrast picks black or white, whichever is legible on top of c
func (c Color) Contrast() tcell.Color {
	r, g, b := c.RGB()
	l, _, _ := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Lab()

	if l > lightnessThreshold {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
