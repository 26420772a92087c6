package fx

import (
	"log/slog"
	"math"
)

// Uniforms are pushed to the fragment shader every frame. Width and Height
// are in device pixels.
type Uniforms struct {
	Time          float64
	Width, Height float64
	PixelRatio    float64
}

// ShaderTarget draws a full-surface pass of v with u.
type ShaderTarget interface {
	DrawShader(v *Variant, u Uniforms)
}

// ShaderCanvas drives a full-viewport fragment shader background.
type ShaderCanvas struct {
	host    *Host
	variant *Variant

	frames   uint64
	uniforms Uniforms
}

func NewShaderCanvas(host *Host, containerID string, v *Variant) *ShaderCanvas {
	if _, err := host.Surface(containerID); err != nil {
		slog.Warn("shader canvas disabled", "error", err)
		return &ShaderCanvas{}
	}
	if v == nil {
		v = Aurora
	}
	s := &ShaderCanvas{host: host, variant: v}
	s.OnResize()
	host.Subscribe(EventResize, func(Event) { s.OnResize() })
	return s
}

func (s *ShaderCanvas) Active() bool { return s.host != nil }

func (s *ShaderCanvas) Variant() *Variant { return s.variant }

func (s *ShaderCanvas) Uniforms() Uniforms { return s.uniforms }

// OnResize sizes the surface to the viewport with the pixel ratio capped at
// MaxPixelRatio.
func (s *ShaderCanvas) OnResize() {
	if s.host == nil {
		return
	}
	vw, vh := s.host.Viewport()
	ratio := math.Min(s.host.PixelRatio(), MaxPixelRatio)
	s.uniforms.PixelRatio = ratio
	s.uniforms.Width = math.Floor(vw * ratio)
	s.uniforms.Height = math.Floor(vh * ratio)
}

// Update advances time by one fixed step. Time is frames·step, not a running sum.
func (s *ShaderCanvas) Update() {
	if s.host == nil {
		return
	}
	s.frames++
	s.uniforms.Time = float64(s.frames) * ShaderTimeStep
}

func (s *ShaderCanvas) Render(t ShaderTarget) {
	if s.host == nil {
		return
	}
	t.DrawShader(s.variant, s.uniforms)
}
