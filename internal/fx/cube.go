package fx

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Face is one flat panel of a Shape. Model places the panel, a square of side
// Shape.Size centred on the origin in its local XY plane, into shape space.
// Shape space follows CSS conventions: x right, y down, z toward the viewer.
type Face struct {
	Name  string
	Fill  Color
	Model mgl32.Mat4
}

type Shape struct {
	Size  float64
	Edge  Color
	Faces []Face
}

// NewCube builds the six translucent panels of a cube with side size.
func NewCube(size float64) *Shape {
	h := float32(size / 2)
	rot := func(deg float64, axis func(float32) mgl32.Mat4) mgl32.Mat4 {
		return axis(float32(degToRad(deg)))
	}
	pushOut := mgl32.Translate3D(0, 0, h)
	cyan, violet := RGBA(0, 212, 255, 1), RGBA(176, 38, 255, 1)

	return &Shape{
		Size: size,
		Edge: RGBA(255, 255, 255, 0.1),
		Faces: []Face{
			{Name: "front", Fill: cyan.WithAlpha(0.1), Model: pushOut},
			{Name: "back", Fill: violet.WithAlpha(0.1), Model: mgl32.Translate3D(0, 0, -h).Mul4(rot(180, mgl32.HomogRotate3DY))},
			{Name: "right", Fill: cyan.WithAlpha(0.15), Model: rot(90, mgl32.HomogRotate3DY).Mul4(pushOut)},
			{Name: "left", Fill: violet.WithAlpha(0.15), Model: rot(-90, mgl32.HomogRotate3DY).Mul4(pushOut)},
			{Name: "top", Fill: cyan.WithAlpha(0.08), Model: rot(90, mgl32.HomogRotate3DX).Mul4(pushOut)},
			{Name: "bottom", Fill: violet.WithAlpha(0.08), Model: rot(-90, mgl32.HomogRotate3DX).Mul4(pushOut)},
		},
	}
}

// Corners returns the panel corners in shape space after orientation.
func (s *Shape) Corners(f Face, orientation mgl32.Mat4) [4]mgl32.Vec3 {
	h := float32(s.Size / 2)
	local := [4]mgl32.Vec4{{-h, -h, 0, 1}, {h, -h, 0, 1}, {h, h, 0, 1}, {-h, h, 0, 1}}
	m := orientation.Mul4(f.Model)
	var out [4]mgl32.Vec3
	for i, v := range local {
		out[i] = m.Mul4x1(v).Vec3()
	}
	return out
}

// Project applies a CSS-style perspective of distance d: points toward the
// viewer grow, points behind the z=0 plane shrink. The result is relative to
// the shape centre on screen.
func Project(p mgl32.Vec3, d float64) mgl32.Vec2 {
	den := float32(d) - p.Z()
	if den < 1 {
		den = 1
	}
	s := float32(d) / den
	return mgl32.Vec2{p.X() * s, p.Y() * s}
}

// DepthOrder returns face indices sorted back to front by mean depth, the
// order translucent panels have to be painted in.
func (s *Shape) DepthOrder(orientation mgl32.Mat4) []int {
	depth := make([]float32, len(s.Faces))
	idx := make([]int, len(s.Faces))
	for i, f := range s.Faces {
		c := s.Corners(f, orientation)
		depth[i] = (c[0].Z() + c[1].Z() + c[2].Z() + c[3].Z()) / 4
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return depth[idx[a]] < depth[idx[b]] })
	return idx
}
