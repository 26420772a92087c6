package fx

import (
	"errors"
	"fmt"
	"math"
)

var ErrNoSurface = errors.New("surface not found")

// Rect is a layout box in viewport coordinates (logical pixels, y down).
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W*0.5, r.Y + r.H*0.5
}

// Surface is a named drawable region the effects bind to.
type Surface struct {
	ID   string
	Rect Rect
}

// LayoutFunc places a surface inside a viewport of size vw x vh.
type LayoutFunc func(id string, vw, vh float64) Rect

// HeroLayout stretches the particle canvas and the shader background over the
// whole viewport and centres a square container for the cube.
func HeroLayout(id string, vw, vh float64) Rect {
	if id == CubeSurfaceID {
		side := math.Floor(math.Min(vw, vh) * 0.6)
		return Rect{X: math.Floor((vw - side) / 2), Y: math.Floor((vh - side) / 2), W: side, H: side}
	}
	return Rect{W: vw, H: vh}
}

// Host is the viewport/input provider. Backends own one, register surfaces,
// and feed it platform events; the effects subscribe to its bus.
type Host struct {
	*EventBus

	width, height float64
	pixelRatio    float64
	layout        LayoutFunc
	surfaces      map[string]*Surface
}

func NewHost(width, height, pixelRatio float64, layout LayoutFunc) *Host {
	if layout == nil {
		layout = HeroLayout
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Host{
		EventBus:   NewEventBus(),
		width:      width,
		height:     height,
		pixelRatio: pixelRatio,
		layout:     layout,
		surfaces:   make(map[string]*Surface),
	}
}

// AddSurface registers id and lays it out against the current viewport.
func (h *Host) AddSurface(id string) *Surface {
	s := &Surface{ID: id, Rect: h.layout(id, h.width, h.height)}
	h.surfaces[id] = s
	return s
}

func (h *Host) Surface(id string) (*Surface, error) {
	s, ok := h.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("surface %q: %w", id, ErrNoSurface)
	}
	return s, nil
}

func (h *Host) Viewport() (float64, float64) { return h.width, h.height }

// PixelRatio is the device pixels per logical pixel reported by the platform.
func (h *Host) PixelRatio() float64 { return h.pixelRatio }

// Resize relayouts every surface, then notifies subscribers. Calling it again
// with the same size repeats the same work and leaves the same state.
func (h *Host) Resize(width, height, pixelRatio float64) {
	h.width, h.height = width, height
	if pixelRatio > 0 {
		h.pixelRatio = pixelRatio
	}
	for id, s := range h.surfaces {
		s.Rect = h.layout(id, width, height)
	}
	h.Emit(Event{Type: EventResize, W: width, H: height})
}

func (h *Host) PointerMove(x, y float64) {
	h.Emit(Event{Type: EventPointerMove, X: x, Y: y})
}

func (h *Host) PointerLeave() {
	h.Emit(Event{Type: EventPointerLeave})
}
