package fx

// Scene groups the effects a backend drives. Any member may be nil.
type Scene struct {
	Shader    *ShaderCanvas
	Rotator   *PointerRotator
	Particles *ParticleField
}

// SceneConfig selects which effects to build.
type SceneConfig struct {
	Shader    bool
	Cube      bool
	Particles bool

	Variant        *Variant
	ParticleConfig ParticleConfig
	Seed           uint64
}

// NewScene initialises the enabled effects against the well-known surface
// ids. Effects whose surface the host does not provide come back dormant.
func NewScene(host *Host, cfg SceneConfig) *Scene {
	s := &Scene{}
	if cfg.Shader {
		s.Shader = NewShaderCanvas(host, AuroraSurfaceID, cfg.Variant)
	}
	if cfg.Cube {
		s.Rotator = NewPointerRotator(host, CubeSurfaceID)
	}
	if cfg.Particles {
		s.Particles = NewParticleField(host, ParticleSurfaceID, cfg.ParticleConfig, NewRand(cfg.Seed))
	}
	return s
}

// Update advances every effect by one frame.
func (s *Scene) Update() {
	if s.Shader != nil {
		s.Shader.Update()
	}
	if s.Rotator != nil {
		s.Rotator.Update()
	}
	if s.Particles != nil {
		s.Particles.Update()
	}
}

// Render draws back to front: background shader, cube, particles.
func (s *Scene) Render(shader ShaderTarget, shape ShapeRenderer, canvas Canvas2D) {
	if s.Shader != nil {
		s.Shader.Render(shader)
	}
	if s.Rotator != nil {
		s.Rotator.Render(shape)
	}
	if s.Particles != nil {
		s.Particles.Render(canvas)
	}
}
