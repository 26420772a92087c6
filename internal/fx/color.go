package fx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrBadColor = errors.New("unsupported color syntax")

// Color is a straight-alpha colour. RGB lives in colorful.Color (0..1).
type Color struct {
	colorful.Color
	A float64
}

// RGBA builds a colour from 8-bit channels and a 0..1 alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{
		Color: colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0},
		A:     clampF(a, 0, 1),
	}
}

// ParseColor accepts rgba(r, g, b, a), rgb(r, g, b), #rrggbb and #rgb.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return Color{Color: c, A: 1}, nil
	}

	var args string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args, want = s[5:len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args, want = s[4:len(s)-1], 3
	default:
		return Color{}, fmt.Errorf("parse color %q: %w", s, ErrBadColor)
	}

	parts := strings.Split(args, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("parse color %q: want %d components, got %d: %w", s, want, len(parts), ErrBadColor)
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		v[i] = f
	}
	return Color{
		Color: colorful.Color{
			R: clampF(v[0], 0, 255) / 255.0,
			G: clampF(v[1], 0, 255) / 255.0,
			B: clampF(v[2], 0, 255) / 255.0,
		},
		A: clampF(v[3], 0, 1),
	}, nil
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) WithAlpha(a float64) Color {
	c.A = clampF(a, 0, 1)
	return c
}

// Float32 returns the channels ready for a GL vertex buffer.
func (c Color) Float32() (r, g, b, a float32) {
	return float32(c.R), float32(c.G), float32(c.B), float32(c.A)
}

func (c Color) String() string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.A, 'f', -1, 64))
}
