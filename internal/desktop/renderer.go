package desktop

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"herofx/internal/fx"
	"herofx/internal/hud"
)

// Vertex buffer capacities, in vertices.
const (
	maxDisks     = 4096
	maxFlatVerts = 65536
	maxTextVerts = 512 * 6
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer owns every GL object of the desktop backend. A program that fails
// to build is left at 0 and the effect drawing through it is skipped.
type Renderer struct {
	// Shader canvas: full-screen quad plus an optional offscreen target.
	quadProg    uint32
	quadVAO     uint32
	quadVBO     uint32
	quadUTime   int32
	quadURes    int32
	fbo         uint32
	fboTex      uint32
	fboW, fboH  int32
	fboDisabled bool

	// Particle disks: 7 floats per sprite (x, y, radius, r, g, b, a).
	diskProg      uint32
	diskVAO       uint32
	diskVBO       uint32
	diskUViewport int32
	diskUScale    int32

	// Lines and triangles: 6 floats per vertex (x, y, r, g, b, a).
	flatProg      uint32
	flatVAO       uint32
	flatVBO       uint32
	flatUViewport int32

	// HUD text.
	atlas        *hud.Atlas
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Per-frame state.
	fbW, fbH int
	vw, vh   float64
	scale    float64

	particles *particleBatch
	flatBuf   []float32
}

func NewRenderer(v *fx.Variant) (*Renderer, error) {
	r := &Renderer{particles: &particleBatch{}}

	if v != nil {
		if err := r.initShaderCanvas(v); err != nil {
			slog.Warn("shader canvas disabled", "variant", v.Name, "error", err)
		}
	}
	if err := r.initDisks(); err != nil {
		slog.Warn("particle disks disabled", "error", err)
	}
	if err := r.initFlat(); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("flat program: %w", err)
	}
	return r, nil
}

func (r *Renderer) initShaderCanvas(v *fx.Variant) error {
	prog, err := linkProgram(v.Vertex, v.Fragment)
	if err != nil {
		return err
	}
	r.quadProg = prog
	gl.UseProgram(prog)
	r.quadUTime = uniform(prog, "iTime")
	r.quadURes = uniform(prog, "iResolution")

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	quadVerts := [12]float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = vao
	r.quadVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) initDisks() error {
	prog, err := linkProgram(diskVertSrc, diskFragSrc)
	if err != nil {
		return err
	}
	r.diskProg = prog
	gl.UseProgram(prog)
	r.diskUViewport = uniform(prog, "uViewport")
	r.diskUScale = uniform(prog, "uScale")

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(7 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxDisks*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aRadius
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.diskVAO = vao
	r.diskVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) initFlat() error {
	prog, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return err
	}
	r.flatProg = prog
	gl.UseProgram(prog)
	r.flatUViewport = uniform(prog, "uViewport")

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxFlatVerts*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.flatVAO = vao
	r.flatVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.diskVBO, r.flatVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.diskVAO, r.flatVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.diskProg, r.flatProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.fontTex, r.fboTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
	}
}

// BeginFrame clears the window framebuffer and records the viewport for the
// draws that follow. Effects draw in logical pixels.
func (r *Renderer) BeginFrame(fbW, fbH int, host *fx.Host) {
	r.fbW, r.fbH = fbW, fbH
	r.vw, r.vh = host.Viewport()
	r.scale = host.PixelRatio()

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.particles.reset()
}

// drawFlat uploads buf (6 floats per vertex) and draws it as mode with
// straight alpha blending.
func (r *Renderer) drawFlat(buf []float32, mode uint32) {
	if r.flatProg == 0 || len(buf) == 0 {
		return
	}
	count := min(len(buf)/6, maxFlatVerts)

	gl.UseProgram(r.flatProg)
	gl.BindVertexArray(r.flatVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.flatVBO)
	gl.Uniform2f(r.flatUViewport, float32(r.vw), float32(r.vh))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, count*6*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(count))
	gl.Disable(gl.BLEND)
}
