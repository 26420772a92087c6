package fx

import (
	_ "embed"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/quad.vert
var quadVertSrc string

//go:embed shaders/aurora.frag
var auroraFragSrc string

//go:embed shaders/scifi.frag
var scifiFragSrc string

// Variant is one look of the shader canvas. Fragment is the GLSL program run
// by GPU backends; shade is its CPU twin, used by the terminal backend and
// for headless checks.
type Variant struct {
	Name     string
	Layers   int
	Vertex   string
	Fragment string

	shade func(uv mgl32.Vec2, u Uniforms) mgl32.Vec3
}

var (
	// Aurora is the muted purple/rose/blue band field.
	Aurora = &Variant{
		Name:     "aurora",
		Layers:   8,
		Vertex:   quadVertSrc,
		Fragment: auroraFragSrc,
		shade:    shadeAurora,
	}

	// SciFi is the saturated stream field with glints and a global pulse.
	SciFi = &Variant{
		Name:     "scifi",
		Layers:   6,
		Vertex:   quadVertSrc,
		Fragment: scifiFragSrc,
		shade:    shadeSciFi,
	}
)

// VariantByName resolves a variant, falling back to Aurora.
func VariantByName(name string) *Variant {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "aurora":
		return Aurora
	case "scifi", "sci-fi":
		return SciFi
	}
	slog.Warn("unknown shader variant, using aurora", "variant", name)
	return Aurora
}

// Shade evaluates the variant on the CPU at fragment coordinate (fx, fy),
// origin bottom-left in device pixels, matching gl_FragCoord.
func (v *Variant) Shade(fx, fy float64, u Uniforms) mgl32.Vec3 {
	if u.Height <= 0 {
		return mgl32.Vec3{}
	}
	uv := mgl32.Vec2{
		float32((fx - 0.5*u.Width) / u.Height),
		float32((fy - 0.5*u.Height) / u.Height),
	}
	return v.shade(uv, u)
}
