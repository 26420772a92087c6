package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"herofx/internal/fx"
)

// Input forwards window events to the host and tracks key edges for the
// backend's own toggles.
type Input struct {
	host     *fx.Host
	prevKeys map[glfw.Key]bool
	lastSize [3]int // window w, h and framebuffer w last forwarded
}

// NewInput installs the glfw callbacks. They fire from glfw.PollEvents on the
// loop goroutine.
func NewInput(window *glfw.Window, host *fx.Host) *Input {
	in := &Input{
		host:     host,
		prevKeys: make(map[glfw.Key]bool),
	}
	w, h := window.GetSize()
	fbW, _ := window.GetFramebufferSize()
	in.lastSize = [3]int{w, h, fbW}

	// A window resize also resizes the framebuffer, and a move to a display
	// of another density changes only the framebuffer, so this one callback
	// sees every change.
	window.SetFramebufferSizeCallback(func(w *glfw.Window, _, _ int) {
		in.resize(w)
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		host.PointerMove(x, y)
	})
	window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			host.PointerLeave()
		}
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// resize reports the window size in logical pixels and the framebuffer
// density. Minimised windows (zero size) are ignored.
func (in *Input) resize(window *glfw.Window) {
	w, h := window.GetSize()
	fbW, _ := window.GetFramebufferSize()
	in.applySize(w, h, fbW)
}

// applySize forwards a size to the host unless it is the one last forwarded.
func (in *Input) applySize(w, h, fbW int) {
	if w <= 0 || h <= 0 || fbW <= 0 {
		return
	}
	size := [3]int{w, h, fbW}
	if size == in.lastSize {
		return
	}
	in.lastSize = size
	in.host.Resize(float64(w), float64(h), pixelRatio(fbW, w))
}

func pixelRatio(fbW, winW int) float64 {
	if winW <= 0 || fbW <= 0 {
		return 1
	}
	return float64(fbW) / float64(winW)
}
