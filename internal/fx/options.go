package fx

import (
	"log/slog"
	"strconv"
	"strings"
)

// ParticleConfig tunes a ParticleField.
type ParticleConfig struct {
	Count           int
	ParticleColor   Color
	ConnectionColor Color
	Size            float64 // disk radius is drawn from [1, Size+1)
	MaxDistance     float64
	Speed           float64
	Interactive     bool
}

func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Count:           DefaultParticleCount,
		ParticleColor:   MustParseColor(DefaultParticleColor),
		ConnectionColor: MustParseColor(DefaultConnectionColor),
		Size:            DefaultParticleSize,
		MaxDistance:     DefaultMaxDistance,
		Speed:           DefaultParticleSpeed,
		Interactive:     true,
	}
}

// HeroParticleConfig is the preset used on the landing page: a lighter field
// on narrow viewports and a slower drift.
func HeroParticleConfig(viewportWidth float64) ParticleConfig {
	cfg := DefaultParticleConfig()
	cfg.Count = ResponsiveParticleCount(viewportWidth)
	cfg.Speed = HeroParticleSpeed
	return cfg
}

func ResponsiveParticleCount(viewportWidth float64) int {
	if viewportWidth < MobileBreakpoint {
		return MobileParticleCount
	}
	return DefaultParticleCount
}

// normalized replaces non-positive numeric fields with their defaults.
func (c ParticleConfig) normalized() ParticleConfig {
	def := DefaultParticleConfig()
	if c.Count <= 0 {
		c.Count = def.Count
	}
	if c.Size <= 0 {
		c.Size = def.Size
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = def.MaxDistance
	}
	if c.Speed <= 0 {
		c.Speed = def.Speed
	}
	return c
}

// Options is a flat set of named settings, e.g. from repeated -opt flags.
type Options map[string]string

// ParseOptions splits "key=value" pairs. Pairs without '=' are ignored.
func ParseOptions(pairs []string) Options {
	o := make(Options, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		o[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return o
}

// Apply overlays the recognised options onto base. Unknown keys are ignored;
// zero, negative or malformed values keep the base value.
func (o Options) Apply(base ParticleConfig) ParticleConfig {
	cfg := base
	for k, v := range o {
		switch k {
		case "particleCount":
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.Count = n
			} else {
				warnOption(k, v)
			}
		case "particleColor":
			if c, err := ParseColor(v); err == nil {
				cfg.ParticleColor = c
			} else {
				warnOption(k, v)
			}
		case "connectionColor":
			if c, err := ParseColor(v); err == nil {
				cfg.ConnectionColor = c
			} else {
				warnOption(k, v)
			}
		case "particleSize":
			cfg.Size = positiveFloat(k, v, cfg.Size)
		case "maxDistance":
			cfg.MaxDistance = positiveFloat(k, v, cfg.MaxDistance)
		case "speed":
			cfg.Speed = positiveFloat(k, v, cfg.Speed)
		case "interactive":
			// Only an explicit false disables interaction.
			if b, err := strconv.ParseBool(v); err == nil {
				cfg.Interactive = b
			} else {
				warnOption(k, v)
			}
		}
	}
	return cfg
}

func positiveFloat(key, v string, fallback float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		warnOption(key, v)
		return fallback
	}
	return f
}

func warnOption(key, value string) {
	slog.Warn("ignoring particle option", "key", key, "value", value)
}
