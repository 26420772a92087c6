package fx

import (
	"errors"
	"testing"
)

func TestHeroLayout(t *testing.T) {
	if r := HeroLayout(ParticleSurfaceID, 1024, 768); r != (Rect{W: 1024, H: 768}) {
		t.Errorf("particle surface = %+v", r)
	}
	if r := HeroLayout(AuroraSurfaceID, 1024, 768); r != (Rect{W: 1024, H: 768}) {
		t.Errorf("aurora surface = %+v", r)
	}
	cube := HeroLayout(CubeSurfaceID, 1000, 500)
	if cube.W != 300 || cube.H != 300 {
		t.Errorf("cube container = %+v", cube)
	}
	if cx, cy := cube.Center(); cx != 500 || cy != 250 {
		t.Errorf("cube container centre = (%v, %v)", cx, cy)
	}
}

func TestHostSurfaceLookup(t *testing.T) {
	host := NewHost(800, 600, 0, nil)
	if host.PixelRatio() != 1 {
		t.Errorf("pixel ratio defaults to 1, got %v", host.PixelRatio())
	}
	host.AddSurface(ParticleSurfaceID)

	if _, err := host.Surface(ParticleSurfaceID); err != nil {
		t.Fatalf("Surface: %v", err)
	}
	_, err := host.Surface("missing")
	if !errors.Is(err, ErrNoSurface) {
		t.Fatalf("err = %v, want ErrNoSurface", err)
	}
}

func TestHostResizeRelayoutsAndNotifies(t *testing.T) {
	host := NewHost(800, 600, 1, nil)
	s := host.AddSurface(CubeSurfaceID)

	var got []Event
	host.Subscribe(EventResize, func(e Event) {
		// Surfaces are already laid out when subscribers run.
		if s.Rect.W != 240 {
			t.Errorf("surface not relaid out before notify: %+v", s.Rect)
		}
		got = append(got, e)
	})
	host.Resize(400, 400, 2)
	host.Resize(400, 400, 2)

	if len(got) != 2 || got[0].W != 400 || got[0].H != 400 {
		t.Fatalf("resize events = %+v", got)
	}
	if w, h := host.Viewport(); w != 400 || h != 400 || host.PixelRatio() != 2 {
		t.Errorf("viewport %vx%v @%v", w, h, host.PixelRatio())
	}
	if s.Rect != (Rect{X: 80, Y: 80, W: 240, H: 240}) {
		t.Errorf("cube rect = %+v", s.Rect)
	}
}

func TestEventBusOrder(t *testing.T) {
	bus := NewEventBus()
	var order []int
	bus.Subscribe(EventPointerMove, func(Event) { order = append(order, 1) })
	bus.Subscribe(EventPointerMove, func(Event) { order = append(order, 2) })
	bus.Subscribe(EventPointerLeave, func(Event) { order = append(order, 99) })
	bus.Emit(Event{Type: EventPointerMove})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v", order)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	if !r.Contains(10, 10) || r.Contains(30, 30) || r.Contains(9.9, 15) {
		t.Error("Contains is half-open on [X, X+W) x [Y, Y+H)")
	}
}
