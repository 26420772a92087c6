package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"herofx/internal/fx"
)

// Each terminal cell stands for a block of logical pixels, so the effects
// keep their pixel constants.
const (
	CellW = 8
	CellH = 16
)

// mark is one glyph of the particle layer.
type mark struct {
	ch  rune
	col colorful.Color
	a   float64 // blend weight over the background
	dot bool
}

// grid is the frame being composed: a background colour per cell, the cube
// layer drawn into it, and the particle layer on top.
type grid struct {
	cols, rows int
	bg         []colorful.Color
	base       []rune
	baseFg     []colorful.Color
	marks      []mark

	origin fx.Rect // particle surface box, logical px
}

func newGrid(cols, rows int) *grid {
	g := &grid{}
	g.resize(cols, rows)
	return g
}

func (g *grid) resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	n := cols * rows
	g.cols, g.rows = cols, rows
	g.bg = make([]colorful.Color, n)
	g.base = make([]rune, n)
	g.baseFg = make([]colorful.Color, n)
	g.marks = make([]mark, n)
}

func (g *grid) index(c, r int) (int, bool) {
	if c < 0 || r < 0 || c >= g.cols || r >= g.rows {
		return 0, false
	}
	return r*g.cols + c, true
}

// begin resets the frame to a black, empty grid.
func (g *grid) begin() {
	clear(g.bg)
	clear(g.baseFg)
	for i := range g.base {
		g.base[i] = ' '
	}
	clear(g.marks)
}

// cellOf maps a logical pixel to its cell.
func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellW)), int(math.Floor(y / CellH))
}

// Clear drops the particle layer.
func (g *grid) Clear() { clear(g.marks) }

// FillCircle marks the cell under the particle centre. Particles win over
// connection glyphs.
func (g *grid) FillCircle(x, y, _ float64, c fx.Color) {
	col, row := cellOf(g.origin.X+x, g.origin.Y+y)
	i, ok := g.index(col, row)
	if !ok {
		return
	}
	g.marks[i] = mark{ch: '•', col: c.Color, a: c.A, dot: true}
}

// StrokeLine rasterises the connection across cells. The glyph follows the
// slope; its weight is the connection alpha boosted 4x, capped at 1.
func (g *grid) StrokeLine(x0, y0, x1, y1, _ float64, c fx.Color) {
	c0, r0 := cellOf(g.origin.X+x0, g.origin.Y+y0)
	c1, r1 := cellOf(g.origin.X+x1, g.origin.Y+y1)
	ch := slopeGlyph(x1-x0, y1-y0)
	a := min(1, c.A*4)
	bresenham(c0, r0, c1, r1, func(col, row int) {
		i, ok := g.index(col, row)
		if !ok {
			return
		}
		m := &g.marks[i]
		if m.dot || (m.ch != 0 && m.a >= a) {
			return
		}
		*m = mark{ch: ch, col: c.Color, a: a}
	})
}

// slopeGlyph picks a line character for a segment in y-down pixel space.
// Cells are twice as tall as wide, which the thresholds account for.
func slopeGlyph(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)*2
	switch {
	case ay <= ax*0.4:
		return '-'
	case ax <= ay*0.4:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// bresenham visits every cell on the segment from (x0, y0) to (x1, y1),
// endpoints included.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// tint lays c over the cell background with weight a.
func (g *grid) tint(i int, c colorful.Color, a float64) {
	g.bg[i] = g.bg[i].BlendRgb(c, a)
}

// flush writes the composed frame to the screen.
func (g *grid) flush(s tcell.Screen) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i := r*g.cols + c
			bg := g.bg[i]
			ch, fg := g.base[i], g.baseFg[i]
			if m := g.marks[i]; m.ch != 0 {
				ch, fg = m.ch, bg.BlendRgb(m.col, m.a)
			}
			style := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(fg))
			s.SetContent(c, r, ch, nil, style)
		}
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
