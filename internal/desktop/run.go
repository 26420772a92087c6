package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"herofx/internal/fx"
	"herofx/internal/hud"
)

type Config struct {
	Width, Height int
	Title         string
	HUD           bool
	Scene         fx.SceneConfig
}

// Run opens the window and drives the scene until it is closed. One Update
// per displayed frame; vsync paces the loop.
func Run(cfg Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if cfg.Title == "" {
		cfg.Title = "herofx"
	}
	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Debug("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0, 0, 0, 1)

	winW, winH := window.GetSize()
	fbW, _ := window.GetFramebufferSize()
	host := fx.NewHost(float64(winW), float64(winH), pixelRatio(fbW, winW), fx.HeroLayout)
	host.AddSurface(fx.AuroraSurfaceID)
	host.AddSurface(fx.CubeSurfaceID)
	host.AddSurface(fx.ParticleSurfaceID)

	scene := fx.NewScene(host, cfg.Scene)

	var variant *fx.Variant
	if scene.Shader != nil && scene.Shader.Active() {
		variant = scene.Shader.Variant()
	}
	rend, err := NewRenderer(variant)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		slog.Warn("hud disabled", "error", err)
	}

	input := NewInput(window, host)
	showHUD := cfg.HUD
	var fps hud.FPSCounter

	for !window.ShouldClose() {
		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyH) {
			showHUD = !showHUD
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		scene.Update()

		rend.BeginFrame(fbW, fbH, host)
		if scene.Particles != nil {
			rend.particles.origin = scene.Particles.Rect()
		}
		scene.Render(rend, rend, rend.particles)
		rend.FlushParticles()

		rate := fps.Tick(glfw.GetTime())
		if showHUD {
			rend.RenderHUD(hud.FromScene(scene, rate))
		}

		window.SwapBuffers()
	}
	return nil
}
