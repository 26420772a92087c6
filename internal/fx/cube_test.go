package fx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func faceCentre(s *Shape, f Face, o mgl32.Mat4) mgl32.Vec3 {
	c := s.Corners(f, o)
	return c[0].Add(c[1]).Add(c[2]).Add(c[3]).Mul(0.25)
}

func TestCubeFacesSitOnTheirAxes(t *testing.T) {
	s := NewCube(200)
	want := map[string]mgl32.Vec3{
		"front":  {0, 0, 100},
		"back":   {0, 0, -100},
		"right":  {100, 0, 0},
		"left":   {-100, 0, 0},
		"top":    {0, -100, 0},
		"bottom": {0, 100, 0},
	}
	if len(s.Faces) != len(want) {
		t.Fatalf("got %d faces, want %d", len(s.Faces), len(want))
	}
	for _, f := range s.Faces {
		w, ok := want[f.Name]
		if !ok {
			t.Fatalf("unexpected face %q", f.Name)
		}
		got := faceCentre(s, f, mgl32.Ident4())
		for i := range got {
			if math.Abs(float64(got[i]-w[i])) > 1e-3 {
				t.Errorf("%s centre = %v, want %v", f.Name, got, w)
				break
			}
		}
		if f.Fill.A <= 0 || f.Fill.A >= 1 {
			t.Errorf("%s fill alpha %v should be translucent", f.Name, f.Fill.A)
		}
	}
}

func TestCubeDepthOrder(t *testing.T) {
	s := NewCube(200)
	name := func(i int) string { return s.Faces[i].Name }

	order := s.DepthOrder(mgl32.Ident4())
	if len(order) != 6 {
		t.Fatalf("order has %d entries", len(order))
	}
	if name(order[0]) != "back" || name(order[5]) != "front" {
		t.Errorf("at rest got %s first and %s last", name(order[0]), name(order[5]))
	}

	turned := mgl32.HomogRotate3DY(math.Pi)
	order = s.DepthOrder(turned)
	if name(order[0]) != "front" || name(order[5]) != "back" {
		t.Errorf("turned around got %s first and %s last", name(order[0]), name(order[5]))
	}

	quarter := mgl32.HomogRotate3DY(math.Pi / 2)
	order = s.DepthOrder(quarter)
	if name(order[5]) != "left" {
		t.Errorf("quarter turn brings left to the front, got %s", name(order[5]))
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		p    mgl32.Vec3
		want mgl32.Vec2
	}{
		{"on plane", mgl32.Vec3{50, -20, 0}, mgl32.Vec2{50, -20}},
		{"toward viewer", mgl32.Vec3{90, 0, 100}, mgl32.Vec2{100, 0}},
		{"away", mgl32.Vec3{110, 0, -100}, mgl32.Vec2{100, 0}},
		{"past the eye", mgl32.Vec3{1, 1, 5000}, mgl32.Vec2{1000, 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.p, CubePerspective)
			if !got.ApproxEqualThreshold(tt.want, 1e-3) {
				t.Errorf("Project(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
