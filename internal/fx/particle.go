package fx

import (
	"log/slog"
	"math"
)

type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Pointer is the last pointer position relative to the surface. Present is
// false once the pointer has left it.
type Pointer struct {
	X, Y    float64
	Present bool
}

// ParticleField owns a fixed-size set of drifting particles on one surface.
// A field whose surface is missing stays dormant: every method is a no-op.
type ParticleField struct {
	cfg     ParticleConfig
	surface *Surface
	rng     *Rand

	P       []Particle
	pointer Pointer

	width, height float64
}

// NewParticleField binds to surfaceID on host. rng may be nil.
func NewParticleField(host *Host, surfaceID string, cfg ParticleConfig, rng *Rand) *ParticleField {
	surface, err := host.Surface(surfaceID)
	if err != nil {
		slog.Warn("particle field disabled", "error", err)
		return &ParticleField{}
	}
	if rng == nil {
		rng = NewRand(1)
	}

	f := &ParticleField{
		cfg:     cfg.normalized(),
		surface: surface,
		rng:     rng,
	}
	f.OnResize()

	host.Subscribe(EventResize, func(Event) { f.OnResize() })
	if f.cfg.Interactive {
		host.Subscribe(EventPointerMove, func(e Event) { f.pointerMoved(e.X, e.Y) })
		host.Subscribe(EventPointerLeave, func(Event) { f.ClearPointer() })
	}
	return f
}

func (f *ParticleField) Active() bool { return f.surface != nil }

func (f *ParticleField) Config() ParticleConfig { return f.cfg }

// Bounds returns the surface extent the particles live in.
func (f *ParticleField) Bounds() (float64, float64) { return f.width, f.height }

// Rect is the surface layout box; render output is relative to its origin.
func (f *ParticleField) Rect() Rect {
	if f.surface == nil {
		return Rect{}
	}
	return f.surface.Rect
}

func (f *ParticleField) Pointer() Pointer { return f.pointer }

// OnResize matches the surface to its layout box and regenerates the whole
// particle set over the new area.
func (f *ParticleField) OnResize() {
	if f.surface == nil {
		return
	}
	f.width = math.Floor(f.surface.Rect.W)
	f.height = math.Floor(f.surface.Rect.H)

	speed := f.cfg.Speed
	p := make([]Particle, f.cfg.Count)
	for i := range p {
		p[i] = Particle{
			X:      f.rng.RangeF(0, f.width),
			Y:      f.rng.RangeF(0, f.height),
			VX:     f.rng.RangeF(-speed/2, speed/2),
			VY:     f.rng.RangeF(-speed/2, speed/2),
			Radius: f.rng.RangeF(1, f.cfg.Size+1),
		}
	}
	f.P = p
}

// SetPointer records a surface-relative pointer position.
func (f *ParticleField) SetPointer(x, y float64) {
	if f.surface == nil {
		return
	}
	f.pointer = Pointer{X: x, Y: y, Present: true}
}

func (f *ParticleField) ClearPointer() {
	f.pointer = Pointer{}
}

// pointerMoved takes viewport coordinates; leaving the surface box counts as
// a pointer-leave.
func (f *ParticleField) pointerMoved(x, y float64) {
	r := f.surface.Rect
	if !r.Contains(x, y) {
		f.ClearPointer()
		return
	}
	f.SetPointer(x-r.X, y-r.Y)
}
