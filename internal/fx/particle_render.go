package fx

import "math"

// Canvas2D is the immediate-mode drawing surface a ParticleField renders to.
// Coordinates are relative to the field's surface origin.
type Canvas2D interface {
	Clear()
	FillCircle(x, y, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// ConnectionAlpha fades a link from base at distance 0 to 0 at maxDist.
func ConnectionAlpha(dist, maxDist, base float64) float64 {
	if maxDist <= 0 || dist >= maxDist {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return (1 - dist/maxDist) * base
}

// Render clears the canvas, draws the particles, then links every pair closer
// than MaxDistance. Pair enumeration is O(n²); keep Count near 100 or below.
func (f *ParticleField) Render(c Canvas2D) {
	if f.surface == nil {
		return
	}
	c.Clear()

	for i := range f.P {
		p := &f.P[i]
		c.FillCircle(p.X, p.Y, p.Radius, f.cfg.ParticleColor)
	}

	maxD := f.cfg.MaxDistance
	base := f.cfg.ConnectionColor.A
	for i := 0; i < len(f.P); i++ {
		a := &f.P[i]
		for j := i + 1; j < len(f.P); j++ {
			b := &f.P[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= maxD {
				continue
			}
			col := f.cfg.ConnectionColor.WithAlpha(ConnectionAlpha(d, maxD, base))
			c.StrokeLine(a.X, a.Y, b.X, b.Y, ConnectionLineWidth, col)
		}
	}
}
