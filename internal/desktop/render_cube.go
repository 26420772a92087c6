package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"herofx/internal/fx"
)

// DrawShape paints the shape's faces back to front, each a translucent quad
// followed by its outline, projected around the container centre.
func (r *Renderer) DrawShape(s *fx.Shape, orientation mgl32.Mat4, container fx.Rect) {
	cx, cy := container.Center()
	centre := mgl32.Vec2{float32(cx), float32(cy)}
	er, eg, eb, ea := s.Edge.Float32()

	for _, i := range s.DepthOrder(orientation) {
		f := s.Faces[i]
		var p [4]mgl32.Vec2
		for k, c := range s.Corners(f, orientation) {
			p[k] = fx.Project(c, fx.CubePerspective).Add(centre)
		}

		buf := r.flatBuf[:0]
		fr, fg, fb, fa := f.Fill.Float32()
		for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
			buf = append(buf, p[k][0], p[k][1], fr, fg, fb, fa)
		}
		r.drawFlat(buf, gl.TRIANGLES)

		buf = buf[:0]
		for k := 0; k < 4; k++ {
			a, b := p[k], p[(k+1)%4]
			buf = append(buf,
				a[0], a[1], er, eg, eb, ea,
				b[0], b[1], er, eg, eb, ea,
			)
		}
		r.drawFlat(buf, gl.LINES)
		r.flatBuf = buf
	}
}
