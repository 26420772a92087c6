package hud

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout: printable ASCII in a 16-column grid.
const (
	atlasCols  = 16
	firstGlyph = 32
	lastGlyph  = 126
)

// Atlas is a coverage mask of the basicfont 7x13 glyphs, ready to upload as a
// single-channel texture.
type Atlas struct {
	Image        *image.Alpha
	CellW, CellH int
}

func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	n := lastGlyph - firstGlyph + 1
	rows := (n + atlasCols - 1) / atlasCols

	img := image.NewAlpha(image.Rect(0, 0, atlasCols*cellW, rows*cellH))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		i := ch - firstGlyph
		x := (i % atlasCols) * cellW
		y := (i / atlasCols) * cellH
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(rune(ch)))
	}
	return &Atlas{Image: img, CellW: cellW, CellH: cellH}
}

// UV returns the normalised texture rectangle of ch. ok is false for runes
// outside printable ASCII.
func (a *Atlas) UV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < firstGlyph || ch > lastGlyph {
		return 0, 0, 0, 0, false
	}
	i := int(ch) - firstGlyph
	col, row := i%atlasCols, i/atlasCols
	w := float32(a.Image.Rect.Dx())
	h := float32(a.Image.Rect.Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1, true
}

// AppendQuads appends two triangles per glyph of text at screen position
// (x, y), top-left origin. Each vertex is pos(2) uv(2) rgba(4).
func (a *Atlas) AppendQuads(dst []float32, text string, x, y, scale float32, rgba [4]float32) []float32 {
	cw := float32(a.CellW) * scale
	ch := float32(a.CellH) * scale
	cr, cg, cb, ca := rgba[0], rgba[1], rgba[2], rgba[3]
	sx := x
	for _, r := range text {
		if r == '\n' {
			x = sx
			y += ch
			continue
		}
		u0, v0, u1, v1, ok := a.UV(r)
		if ok && r != ' ' {
			dst = append(dst,
				x, y, u0, v0, cr, cg, cb, ca,
				x+cw, y, u1, v0, cr, cg, cb, ca,
				x, y+ch, u0, v1, cr, cg, cb, ca,
				x+cw, y, u1, v0, cr, cg, cb, ca,
				x+cw, y+ch, u1, v1, cr, cg, cb, ca,
				x, y+ch, u0, v1, cr, cg, cb, ca,
			)
		}
		x += cw
	}
	return dst
}

// TextWidth is the width in pixels of the longest line of text.
func (a *Atlas) TextWidth(text string, scale float32) int {
	longest, n := 0, 0
	for _, r := range text {
		if r == '\n' {
			longest = max(longest, n)
			n = 0
			continue
		}
		n++
	}
	longest = max(longest, n)
	return int(float32(longest*a.CellW) * scale)
}

// Box is the rectangle lines cover when drawn from (x, y) at scale, grown by
// pad on every side.
func (a *Atlas) Box(lines []string, x, y int, scale float32, pad int) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	w := a.TextWidth(strings.Join(lines, "\n"), scale)
	h := int(float32(len(lines)*a.CellH) * scale)
	return image.Rect(x-pad, y-pad, x+w+pad, y+h+pad)
}
