package desktop

import (
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"herofx/internal/fx"
)

// DrawShader runs the variant's fragment program over the whole window. When
// the display is denser than the capped ratio in u, the pass renders into an
// offscreen target of u's size and is scaled up to the window.
func (r *Renderer) DrawShader(_ *fx.Variant, u fx.Uniforms) {
	if r.quadProg == 0 || u.Width <= 0 || u.Height <= 0 {
		return
	}
	w, h := int32(u.Width), int32(u.Height)
	offscreen := (w < int32(r.fbW) || h < int32(r.fbH)) && r.ensureFBO(w, h)

	if offscreen {
		gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
		gl.Viewport(0, 0, w, h)
	}

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)
	gl.Uniform1f(r.quadUTime, float32(u.Time))
	gl.Uniform2f(r.quadURes, float32(u.Width), float32(u.Height))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	if offscreen {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.fbo)
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
		gl.BlitFramebuffer(0, 0, w, h, 0, 0, int32(r.fbW), int32(r.fbH), gl.COLOR_BUFFER_BIT, gl.LINEAR)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(r.fbW), int32(r.fbH))
	}
}

// ensureFBO (re)allocates the offscreen colour target at w x h. It reports
// false, once and for good, if the driver rejects the framebuffer.
func (r *Renderer) ensureFBO(w, h int32) bool {
	if r.fboDisabled {
		return false
	}
	if r.fbo != 0 && r.fboW == w && r.fboH == h {
		return true
	}
	if r.fbo == 0 {
		gl.GenFramebuffers(1, &r.fbo)
		gl.GenTextures(1, &r.fboTex)
	}

	gl.BindTexture(gl.TEXTURE_2D, r.fboTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.fboTex, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		slog.Warn("offscreen shader target unavailable, drawing at full density", "status", status)
		r.fboDisabled = true
		return false
	}
	r.fboW, r.fboH = w, h
	return true
}
