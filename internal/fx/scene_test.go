package fx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// orderRecorder implements every render target and logs the call order.
type orderRecorder struct {
	log []string
}

func (o *orderRecorder) DrawShader(*Variant, Uniforms) { o.log = append(o.log, "shader") }
func (o *orderRecorder) DrawShape(*Shape, mgl32.Mat4, Rect) { o.log = append(o.log, "cube") }
func (o *orderRecorder) Clear() { o.log = append(o.log, "particles") }
func (o *orderRecorder) FillCircle(float64, float64, float64, Color) {}
func (o *orderRecorder) StrokeLine(float64, float64, float64, float64, float64, Color) {}

func TestSceneRendersBackToFront(t *testing.T) {
	host := newTestHost(800, 600)
	s := NewScene(host, SceneConfig{
		Shader: true, Cube: true, Particles: true,
		Variant:        SciFi,
		ParticleConfig: DefaultParticleConfig(),
		Seed:           9,
	})
	s.Update()

	var rec orderRecorder
	s.Render(&rec, &rec, &rec)
	want := []string{"shader", "cube", "particles"}
	if len(rec.log) != len(want) {
		t.Fatalf("render log = %v", rec.log)
	}
	for i := range want {
		if rec.log[i] != want[i] {
			t.Fatalf("render log = %v, want %v", rec.log, want)
		}
	}
	if s.Shader.Uniforms().Time != ShaderTimeStep {
		t.Errorf("shader not updated: %+v", s.Shader.Uniforms())
	}
	if s.Rotator.Current.Y != AutoSpinStep {
		t.Errorf("rotator not updated: %+v", s.Rotator.Current)
	}
}

func TestSceneSkipsDisabledAndMissing(t *testing.T) {
	host := NewHost(800, 600, 1, nil)
	host.AddSurface(ParticleSurfaceID)
	s := NewScene(host, SceneConfig{Shader: false, Cube: true, Particles: true, ParticleConfig: DefaultParticleConfig()})

	if s.Shader != nil {
		t.Error("disabled shader should be nil")
	}
	if s.Rotator == nil || s.Rotator.Active() {
		t.Error("rotator without container should exist but be dormant")
	}

	var rec orderRecorder
	s.Update()
	s.Render(&rec, &rec, &rec)
	if len(rec.log) != 1 || rec.log[0] != "particles" {
		t.Fatalf("render log = %v", rec.log)
	}
}
