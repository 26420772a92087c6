package hud

import (
	"fmt"

	"herofx/internal/fx"
)

// Stats is what the overlay shows each frame.
type Stats struct {
	FPS       float64
	Particles int
	Time      float64
	Variant   string
}

// FromScene collects the stats of whatever effects scene runs.
func FromScene(scene *fx.Scene, fps float64) Stats {
	s := Stats{FPS: fps}
	if scene.Particles != nil {
		s.Particles = len(scene.Particles.P)
	}
	if scene.Shader != nil && scene.Shader.Active() {
		s.Variant = scene.Shader.Variant().Name
		s.Time = scene.Shader.Uniforms().Time
	}
	return s
}

func (s Stats) Lines() []string {
	lines := []string{fmt.Sprintf("fps %.0f", s.FPS)}
	if s.Particles > 0 {
		lines = append(lines, fmt.Sprintf("particles %d", s.Particles))
	}
	if s.Variant != "" {
		lines = append(lines, fmt.Sprintf("%s t=%.2f", s.Variant, s.Time))
	}
	return lines
}

// FPSCounter averages frame rate over one-second windows.
type FPSCounter struct {
	started bool
	start   float64
	frames  int
	fps     float64
}

// Tick counts a frame at time now (seconds) and returns the last full
// window's rate.
func (c *FPSCounter) Tick(now float64) float64 {
	if !c.started {
		c.started, c.start = true, now
		return c.fps
	}
	c.frames++
	if el := now - c.start; el >= 1 {
		c.fps = float64(c.frames) / el
		c.frames = 0
		c.start = now
	}
	return c.fps
}
