package fx

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Rotation is a pair of Euler angles in degrees.
type Rotation struct {
	X, Y float64
}

// ShapeRenderer draws a shape with the given orientation, centred in the
// container box.
type ShapeRenderer interface {
	DrawShape(s *Shape, orientation mgl32.Mat4, container Rect)
}

// PointerRotator tilts a static cube toward the pointer and keeps it spinning
// slowly around y.
type PointerRotator struct {
	host    *Host
	surface *Surface
	shape   *Shape

	Current Rotation
	Target  Rotation
}

func NewPointerRotator(host *Host, containerID string) *PointerRotator {
	surface, err := host.Surface(containerID)
	if err != nil {
		slog.Warn("pointer rotator disabled", "error", err)
		return &PointerRotator{}
	}
	r := &PointerRotator{
		host:    host,
		surface: surface,
		shape:   NewCube(CubeSize),
	}
	host.Subscribe(EventPointerMove, func(e Event) { r.Aim(e.X, e.Y) })
	return r
}

func (r *PointerRotator) Active() bool { return r.surface != nil }

func (r *PointerRotator) Shape() *Shape { return r.shape }

// Aim sets the target from a viewport position: the offset from the viewport
// centre, normalised by the half extent, maps to ±RotationTilt degrees.
// Moving the pointer down tilts the top away, hence the negated x.
func (r *PointerRotator) Aim(px, py float64) {
	if r.surface == nil {
		return
	}
	vw, vh := r.host.Viewport()
	cx, cy := vw/2, vh/2
	if cx <= 0 || cy <= 0 {
		return
	}
	r.Target.Y = (px - cx) / cx * RotationTilt
	r.Target.X = (py - cy) / cy * -RotationTilt
}

// Update eases toward the target by RotationSmoothing of the remaining
// distance, then adds the auto-spin step on y. With a fixed target the y axis
// settles AutoSpinStep/RotationSmoothing degrees ahead of it.
func (r *PointerRotator) Update() {
	if r.surface == nil {
		return
	}
	r.Current.X += (r.Target.X - r.Current.X) * RotationSmoothing
	r.Current.Y += (r.Target.Y - r.Current.Y) * RotationSmoothing
	r.Current.Y += AutoSpinStep
}

// Orientation is rotateX(x) rotateY(y) in CSS composition order.
func (r *PointerRotator) Orientation() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(float32(degToRad(r.Current.X)))
	ry := mgl32.HomogRotate3DY(float32(degToRad(r.Current.Y)))
	return rx.Mul4(ry)
}

// Render hands the shape to dst every frame, changed or not.
func (r *PointerRotator) Render(dst ShapeRenderer) {
	if r.surface == nil {
		return
	}
	dst.DrawShape(r.shape, r.Orientation(), r.surface.Rect)
}
