package hud

import (
	"image"
	"math"
	"testing"

	"herofx/internal/fx"
)

func glyphCoverage(a *Atlas, ch rune) int {
	i := int(ch) - firstGlyph
	x0 := (i % atlasCols) * a.CellW
	y0 := (i / atlasCols) * a.CellH
	n := 0
	for y := y0; y < y0+a.CellH; y++ {
		for x := x0; x < x0+a.CellW; x++ {
			if a.Image.AlphaAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestAtlasLayout(t *testing.T) {
	a := NewAtlas()
	if a.CellW != 7 || a.CellH != 13 {
		t.Fatalf("cell = %dx%d, want 7x13", a.CellW, a.CellH)
	}
	b := a.Image.Bounds()
	if b.Dx() != 16*7 || b.Dy() != 6*13 {
		t.Fatalf("atlas = %v", b)
	}
	if glyphCoverage(a, 'A') == 0 || glyphCoverage(a, '8') == 0 {
		t.Error("glyphs should have coverage")
	}
	if glyphCoverage(a, ' ') != 0 {
		t.Error("space should be empty")
	}
}

func TestAtlasUV(t *testing.T) {
	a := NewAtlas()
	u0, v0, u1, v1, ok := a.UV(' ')
	if !ok || u0 != 0 || v0 != 0 {
		t.Fatalf("space UV = %v %v %v %v %v", u0, v0, u1, v1, ok)
	}
	if math.Abs(float64(u1)-1.0/16) > 1e-6 || math.Abs(float64(v1)-1.0/6) > 1e-6 {
		t.Errorf("space UV extent = %v, %v", u1, v1)
	}
	if _, _, _, _, ok := a.UV('é'); ok {
		t.Error("non-ASCII rune should have no UV")
	}
}

func TestAppendQuads(t *testing.T) {
	a := NewAtlas()
	white := [4]float32{1, 1, 1, 1}

	buf := a.AppendQuads(nil, "ab c\nd", 10, 20, 2, white)
	const perGlyph = 6 * 8
	if len(buf) != 4*perGlyph {
		t.Fatalf("got %d floats, want %d", len(buf), 4*perGlyph)
	}
	// 'c' follows a skipped space, so it sits three cells in.
	if x := buf[2*perGlyph]; x != 10+3*14 {
		t.Errorf("'c' x = %v", x)
	}
	// 'd' starts a new line.
	if x, y := buf[3*perGlyph], buf[3*perGlyph+1]; x != 10 || y != 20+26 {
		t.Errorf("'d' at (%v, %v)", x, y)
	}
}

func TestTextWidth(t *testing.T) {
	a := NewAtlas()
	if w := a.TextWidth("abc\nabcde\nx", 1); w != 35 {
		t.Errorf("TextWidth = %d, want 35", w)
	}
	if w := a.TextWidth("", 3); w != 0 {
		t.Errorf("TextWidth(\"\") = %d", w)
	}
}

func TestBox(t *testing.T) {
	a := NewAtlas()
	got := a.Box([]string{"fps 60", "particles 80"}, 16, 16, 2, 8)
	// 12 cells of 7 px and 2 lines of 13 px, doubled, plus 8 px padding.
	want := image.Rect(8, 8, 16+168+8, 16+52+8)
	if got != want {
		t.Errorf("Box = %v, want %v", got, want)
	}
	if !a.Box(nil, 0, 0, 1, 4).Empty() {
		t.Error("no lines should give an empty box")
	}
}

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	for i := 0; i <= 60; i++ {
		c.Tick(float64(i) / 60)
	}
	if got := c.Tick(61.0 / 60); math.Abs(got-60) > 1e-9 {
		t.Errorf("fps = %v, want 60", got)
	}
}

func TestStatsLines(t *testing.T) {
	got := Stats{FPS: 59.7, Particles: 80, Time: 1.6, Variant: "aurora"}.Lines()
	want := []string{"fps 60", "particles 80", "aurora t=1.60"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	if n := len((Stats{FPS: 30}).Lines()); n != 1 {
		t.Errorf("bare stats produced %d lines", n)
	}
}

func TestFromScene(t *testing.T) {
	host := fx.NewHost(800, 600, 1, nil)
	host.AddSurface(fx.ParticleSurfaceID)
	host.AddSurface(fx.AuroraSurfaceID)
	cfg := fx.DefaultParticleConfig()
	cfg.Count = 12
	scene := fx.NewScene(host, fx.SceneConfig{Shader: true, Particles: true, Variant: fx.SciFi, ParticleConfig: cfg})
	scene.Update()

	s := FromScene(scene, 30)
	if s.Particles != 12 || s.Variant != "scifi" || s.Time != fx.ShaderTimeStep || s.FPS != 30 {
		t.Errorf("stats = %+v", s)
	}
}
