package fx

import "math"

// Update advances every particle by one frame.
func (f *ParticleField) Update() {
	if f.surface == nil {
		return
	}
	maxV := f.cfg.Speed * VelocityClampFactor
	repel := f.pointer.Present && f.cfg.Interactive

	for i := range f.P {
		p := &f.P[i]

		// A particle left outside by the previous frame is mirrored back
		// across the wall it crossed.
		p.X = reflectInto(p.X, f.width)
		p.Y = reflectInto(p.Y, f.height)

		p.X += p.VX
		p.Y += p.VY

		// Elastic bounce: the axis velocity is turned back toward the inside.
		if p.X < 0 {
			p.VX = math.Abs(p.VX)
		} else if p.X > f.width {
			p.VX = -math.Abs(p.VX)
		}
		if p.Y < 0 {
			p.VY = math.Abs(p.VY)
		} else if p.Y > f.height {
			p.VY = -math.Abs(p.VY)
		}

		if repel {
			dx := f.pointer.X - p.X
			dy := f.pointer.Y - p.Y
			dist := math.Hypot(dx, dy)
			if dist < PointerRadius {
				force := (PointerRadius - dist) / PointerRadius
				angle := math.Atan2(dy, dx)
				p.VX -= math.Cos(angle) * force * PointerForce
				p.VY -= math.Sin(angle) * force * PointerForce
			}
		}

		p.VX = clampF(p.VX, -maxV, maxV)
		p.VY = clampF(p.VY, -maxV, maxV)

		p.VX *= ParticleDamping
		p.VY *= ParticleDamping
	}
}

func reflectInto(v, extent float64) float64 {
	if v < 0 {
		return clampF(-v, 0, extent)
	}
	if v > extent {
		return clampF(2*extent-v, 0, extent)
	}
	return v
}
