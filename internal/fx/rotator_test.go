package fx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type shapeCall struct {
	shape       *Shape
	orientation mgl32.Mat4
	container   Rect
}

type recordingShapes struct {
	calls []shapeCall
}

func (r *recordingShapes) DrawShape(s *Shape, o mgl32.Mat4, c Rect) {
	r.calls = append(r.calls, shapeCall{s, o, c})
}

func newTestRotator(t *testing.T) (*Host, *PointerRotator) {
	t.Helper()
	host := newTestHost(800, 600)
	r := NewPointerRotator(host, CubeSurfaceID)
	if !r.Active() {
		t.Fatal("rotator should be active")
	}
	return host, r
}

func TestRotatorAimMapsViewportToTilt(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   Rotation
	}{
		{"centre", 400, 300, Rotation{0, 0}},
		{"bottom right", 800, 600, Rotation{X: -RotationTilt, Y: RotationTilt}},
		{"top left", 0, 0, Rotation{X: RotationTilt, Y: -RotationTilt}},
		{"half right", 600, 300, Rotation{X: 0, Y: RotationTilt / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := newTestRotator(t)
			r.Aim(tt.px, tt.py)
			if math.Abs(r.Target.X-tt.want.X) > 1e-12 || math.Abs(r.Target.Y-tt.want.Y) > 1e-12 {
				t.Errorf("target = %+v, want %+v", r.Target, tt.want)
			}
		})
	}
}

func TestRotatorFollowsHostPointer(t *testing.T) {
	host, r := newTestRotator(t)
	host.PointerMove(800, 300)
	if r.Target.Y != RotationTilt || r.Target.X != 0 {
		t.Fatalf("target = %+v after pointer at right edge", r.Target)
	}
	// Leaving does not reset the target.
	host.PointerLeave()
	if r.Target.Y != RotationTilt {
		t.Fatalf("target reset on leave: %+v", r.Target)
	}
}

func TestRotatorEasesTowardTarget(t *testing.T) {
	_, r := newTestRotator(t)
	r.Target = Rotation{X: 15, Y: 10}

	for n := 1; n <= 60; n++ {
		r.Update()
		want := 15 * (1 - math.Pow(1-RotationSmoothing, float64(n)))
		if math.Abs(r.Current.X-want) > 1e-9 {
			t.Fatalf("frame %d: X = %v, want %v", n, r.Current.X, want)
		}
	}
	for n := 0; n < 1000; n++ {
		r.Update()
	}
	if math.Abs(r.Current.X-15) > 1e-6 {
		t.Errorf("X did not converge: %v", r.Current.X)
	}
	wantY := r.Target.Y + AutoSpinStep/RotationSmoothing
	if math.Abs(r.Current.Y-wantY) > 1e-6 {
		t.Errorf("Y settled at %v, want %v", r.Current.Y, wantY)
	}
}

func TestRotatorSpinsWithoutPointer(t *testing.T) {
	_, r := newTestRotator(t)
	r.Update()
	if math.Abs(r.Current.Y-AutoSpinStep) > 1e-12 || r.Current.X != 0 {
		t.Fatalf("after one frame current = %+v", r.Current)
	}
}

func TestRotatorRendersEveryFrame(t *testing.T) {
	_, r := newTestRotator(t)
	var rec recordingShapes
	for i := 0; i < 3; i++ {
		r.Render(&rec)
	}
	if len(rec.calls) != 3 {
		t.Fatalf("DrawShape called %d times, want 3", len(rec.calls))
	}
	want := Rect{X: 220, Y: 120, W: 360, H: 360}
	if rec.calls[0].container != want {
		t.Errorf("container = %+v, want %+v", rec.calls[0].container, want)
	}
	if rec.calls[0].shape != r.Shape() || len(r.Shape().Faces) != 6 {
		t.Errorf("unexpected shape %+v", rec.calls[0].shape)
	}
	if !rec.calls[0].orientation.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("orientation at rest = %v, want identity", rec.calls[0].orientation)
	}
}

func TestRotatorMissingContainerIsDormant(t *testing.T) {
	host := NewHost(800, 600, 1, nil)
	r := NewPointerRotator(host, CubeSurfaceID)
	if r.Active() {
		t.Fatal("rotator without container should be dormant")
	}
	var rec recordingShapes
	r.Aim(10, 10)
	r.Update()
	r.Render(&rec)
	if len(rec.calls) != 0 || r.Current != (Rotation{}) {
		t.Fatalf("dormant rotator acted: %+v, %d draws", r.Current, len(rec.calls))
	}
}
