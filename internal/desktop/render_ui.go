package desktop

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"herofx/internal/fx"
	"herofx/internal/hud"
)

var (
	hudColor = fx.RGBA(0, 212, 255, 0.9)
	hudPanel = fx.RGBA(0, 0, 0, 0.55)
)

// InitFont rasterises the HUD glyph atlas and sets up the text pipeline.
func (r *Renderer) InitFont() error {
	atlas := hud.NewAtlas()
	b := atlas.Image.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = uniform(prog, "uResolution")
	r.textUFontTex = uniform(prog, "uFontTex")
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	// Per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxTextVerts*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	r.atlas = atlas
	gl.BindVertexArray(0)
	return nil
}

// DrawString queues text at device pixel position (x, y).
func (r *Renderer) DrawString(text string, x, y int, scale float32, col fx.Color) {
	if r.atlas == nil {
		return
	}
	cr, cg, cb, ca := col.Float32()
	r.textBuf = r.atlas.AppendQuads(r.textBuf, text, float32(x), float32(y), scale, [4]float32{cr, cg, cb, ca})
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if r.textProg == 0 || len(r.textBuf) == 0 {
		r.textBuf = r.textBuf[:0]
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(r.fbW), float32(r.fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := min(len(r.textBuf)/8, maxTextVerts)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}

// RenderHUD writes the stats in the top-left corner over a dark panel,
// scaled with the display.
func (r *Renderer) RenderHUD(s hud.Stats) {
	if r.atlas == nil {
		return
	}
	scale := float32(max(1, int(r.scale+0.5)))
	lineH := int(float32(r.atlas.CellH) * scale)
	pad := int(8 * scale)
	lines := s.Lines()

	r.drawPanel(r.atlas.Box(lines, pad, pad, scale, pad/2))
	for i, line := range lines {
		r.DrawString(line, pad, pad+i*lineH, scale, hudColor)
	}
	r.FlushText()
}

// drawPanel fills a framebuffer-pixel rectangle. The flat program works in
// logical pixels, so the corners are divided by the pixel ratio.
func (r *Renderer) drawPanel(box image.Rectangle) {
	if box.Empty() || r.scale <= 0 {
		return
	}
	s := float32(r.scale)
	x0, y0 := float32(box.Min.X)/s, float32(box.Min.Y)/s
	x1, y1 := float32(box.Max.X)/s, float32(box.Max.Y)/s
	cr, cg, cb, ca := hudPanel.Float32()
	buf := r.flatBuf[:0]
	for _, v := range [6][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y0}, {x1, y1}, {x0, y1}} {
		buf = append(buf, v[0], v[1], cr, cg, cb, ca)
	}
	r.drawFlat(buf, gl.TRIANGLES)
	r.flatBuf = buf
}
