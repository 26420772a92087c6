package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"herofx/internal/fx"
)

// particleBatch is the fx.Canvas2D of the particle surface. Draw calls are
// queued in surface coordinates and flushed once per frame.
type particleBatch struct {
	origin fx.Rect
	disks  []float32 // x, y, radius, r, g, b, a
	lines  []float32 // x, y, r, g, b, a per endpoint
}

func (b *particleBatch) reset() {
	b.disks = b.disks[:0]
	b.lines = b.lines[:0]
}

func (b *particleBatch) Clear() { b.reset() }

func (b *particleBatch) FillCircle(x, y, radius float64, c fx.Color) {
	cr, cg, cb, ca := c.Float32()
	b.disks = append(b.disks,
		float32(b.origin.X+x), float32(b.origin.Y+y), float32(radius),
		cr, cg, cb, ca,
	)
}

// StrokeLine ignores width: core profile only guarantees 1px lines, which is
// what the field asks for.
func (b *particleBatch) StrokeLine(x0, y0, x1, y1, _ float64, c fx.Color) {
	cr, cg, cb, ca := c.Float32()
	ox, oy := b.origin.X, b.origin.Y
	b.lines = append(b.lines,
		float32(ox+x0), float32(oy+y0), cr, cg, cb, ca,
		float32(ox+x1), float32(oy+y1), cr, cg, cb, ca,
	)
}

// FlushParticles draws the queued disks, then the connections over them.
func (r *Renderer) FlushParticles() {
	b := r.particles
	if r.diskProg != 0 && len(b.disks) > 0 {
		count := min(len(b.disks)/7, maxDisks)

		gl.UseProgram(r.diskProg)
		gl.BindVertexArray(r.diskVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.diskVBO)
		gl.Uniform2f(r.diskUViewport, float32(r.vw), float32(r.vh))
		gl.Uniform1f(r.diskUScale, float32(r.scale))

		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.BufferData(gl.ARRAY_BUFFER, count*7*4, gl.Ptr(b.disks), gl.STREAM_DRAW)
		gl.DrawArrays(gl.POINTS, 0, int32(count))
		gl.Disable(gl.BLEND)
	}
	r.drawFlat(b.lines, gl.LINES)
}
