package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"herofx/internal/fx"
	"herofx/internal/hud"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type Config struct {
	HUD   bool
	Scene fx.SceneConfig
}

// Backend renders a scene onto a tcell screen. The caller owns the screen:
// it must be initialised before New and finalised after Run returns.
type Backend struct {
	screen tcell.Screen
	host   *fx.Host
	scene  *fx.Scene
	grid   *grid

	shaded  []colorful.Color // background cache, refreshed every other frame
	frame   uint64
	showHUD bool
	fps     hud.FPSCounter
	start   time.Time
}

func New(screen tcell.Screen, cfg Config) *Backend {
	cols, rows := screen.Size()
	host := fx.NewHost(float64(cols*CellW), float64(rows*CellH), 1, fx.HeroLayout)
	host.AddSurface(fx.AuroraSurfaceID)
	host.AddSurface(fx.CubeSurfaceID)
	host.AddSurface(fx.ParticleSurfaceID)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	return &Backend{
		screen:  screen,
		host:    host,
		scene:   fx.NewScene(host, cfg.Scene),
		grid:    newGrid(cols, rows),
		showHUD: cfg.HUD,
		start:   time.Now(),
	}
}

func (b *Backend) Host() *fx.Host { return b.host }

func (b *Backend) Scene() *fx.Scene { return b.scene }

// Run polls events on a goroutine and renders on a ticker until ctx is done
// or the user quits.
func (b *Backend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !b.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			b.Frame()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (b *Backend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'h', 'H':
				b.showHUD = !b.showHUD
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		b.host.PointerMove((float64(x)+0.5)*CellW, (float64(y)+0.5)*CellH)

	case *tcell.EventFocus:
		if !ev.Focused {
			b.host.PointerLeave()
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		b.grid.resize(cols, rows)
		b.shaded = nil
		b.host.Resize(float64(cols*CellW), float64(rows*CellH), 1)
		b.screen.Sync()
	}
	return true
}

// Frame advances the scene by one step and draws it.
func (b *Backend) Frame() {
	b.scene.Update()

	b.grid.begin()
	if b.scene.Particles != nil {
		b.grid.origin = b.scene.Particles.Rect()
	}
	b.scene.Render(b, b, b.grid)
	b.grid.flush(b.screen)

	rate := b.fps.Tick(time.Since(b.start).Seconds())
	if b.showHUD {
		style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(0, 212, 255))
		for i, line := range hud.FromScene(b.scene, rate).Lines() {
			drawText(b.screen, 1, i, line, style)
		}
	}
	b.screen.Show()
	b.frame++
}

// DrawShader samples the variant at every cell centre. Shading is the
// expensive part of a frame, so odd frames reuse the previous result.
func (b *Backend) DrawShader(v *fx.Variant, u fx.Uniforms) {
	n := len(b.grid.bg)
	if b.frame%2 == 0 || len(b.shaded) != n {
		if len(b.shaded) != n {
			b.shaded = make([]colorful.Color, n)
		}
		ratio := u.PixelRatio
		for r := 0; r < b.grid.rows; r++ {
			// gl_FragCoord has its origin at the bottom-left.
			py := u.Height - (float64(r)+0.5)*CellH*ratio
			for c := 0; c < b.grid.cols; c++ {
				px := (float64(c) + 0.5) * CellW * ratio
				rgb := v.Shade(px, py, u)
				b.shaded[r*b.grid.cols+c] = colorful.Color{R: float64(rgb[0]), G: float64(rgb[1]), B: float64(rgb[2])}
			}
		}
	}
	copy(b.grid.bg, b.shaded)
}

// DrawShape tints the cells each face covers, back to front, and traces the
// face outlines.
func (b *Backend) DrawShape(s *fx.Shape, orientation mgl32.Mat4, container fx.Rect) {
	cx, cy := container.Center()
	centre := mgl32.Vec2{float32(cx), float32(cy)}
	g := b.grid

	for _, fi := range s.DepthOrder(orientation) {
		f := s.Faces[fi]
		var quad [4]mgl32.Vec2
		for k, c := range s.Corners(f, orientation) {
			quad[k] = fx.Project(c, fx.CubePerspective).Add(centre)
		}

		c0, r0, c1, r1 := quadCells(quad)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				i, ok := g.index(c, r)
				if !ok {
					continue
				}
				p := mgl32.Vec2{(float32(c) + 0.5) * CellW, (float32(r) + 0.5) * CellH}
				if insideQuad(quad, p) {
					g.tint(i, f.Fill.Color, f.Fill.A)
				}
			}
		}

		edgeA := min(1, s.Edge.A*5)
		for k := 0; k < 4; k++ {
			a, e := quad[k], quad[(k+1)%4]
			ac, ar := cellOf(float64(a[0]), float64(a[1]))
			ec, er := cellOf(float64(e[0]), float64(e[1]))
			bresenham(ac, ar, ec, er, func(c, r int) {
				if i, ok := g.index(c, r); ok {
					g.base[i] = '·'
					g.baseFg[i] = g.bg[i].BlendRgb(s.Edge.Color, edgeA)
				}
			})
		}
	}
}

// quadCells is the cell bounding box of quad.
func quadCells(q [4]mgl32.Vec2) (c0, r0, c1, r1 int) {
	minX, minY := q[0][0], q[0][1]
	maxX, maxY := minX, minY
	for _, p := range q[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	c0, r0 = cellOf(float64(minX), float64(minY))
	c1, r1 = cellOf(float64(maxX), float64(maxY))
	return
}

// insideQuad tests p against a convex quad of either winding.
func insideQuad(q [4]mgl32.Vec2, p mgl32.Vec2) bool {
	var pos, neg bool
	for k := 0; k < 4; k++ {
		a, e := q[k], q[(k+1)%4]
		cross := (e[0]-a[0])*(p[1]-a[1]) - (e[1]-a[1])*(p[0]-a[0])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
