package fx

// Surface ids the backends register.
const (
	ParticleSurfaceID = "heroParticlesCanvas"
	CubeSurfaceID     = "hero3DContainer"
	AuroraSurfaceID   = "aurora-background"
)

// Particle field defaults.
const (
	DefaultParticleCount   = 80
	DefaultParticleColor   = "rgba(0, 212, 255, 0.8)"
	DefaultConnectionColor = "rgba(0, 212, 255, 0.2)"
	DefaultParticleSize    = 2.0
	DefaultMaxDistance     = 120.0
	DefaultParticleSpeed   = 0.5
)

// Particle physics.
const (
	PointerRadius       = 150.0
	PointerForce        = 0.2
	ParticleDamping     = 0.99
	VelocityClampFactor = 2.0
	ConnectionLineWidth = 1.0
)

// Narrow viewports get a lighter field (hero preset).
const (
	MobileBreakpoint    = 768
	MobileParticleCount = 40
	HeroParticleSpeed   = 0.3
)

// Cube.
const (
	CubeSize          = 200.0
	CubePerspective   = 1000.0
	RotationSmoothing = 0.05
	RotationTilt      = 20.0 // degrees at the viewport edge
	AutoSpinStep      = 0.2  // degrees per frame
)

// Shader canvas.
const (
	ShaderTimeStep = 0.016 // one 60 Hz frame, independent of wall time
	MaxPixelRatio  = 2.0
)
