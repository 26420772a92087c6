package fx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CPU twins of shaders/*.frag. Arithmetic stays in float32 like the GPU;
// transcendental functions go through float64 math.

const fbmOctaves = 5

var (
	fbmRot   = mgl32.Mat2{cos32(0.5), sin32(0.5), -sin32(0.5), cos32(0.5)}
	fbmShift = mgl32.Vec2{100, 100}
)

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

func fract32(x float32) float32 { return x - float32(math.Floor(float64(x))) }

func mix32(a, b, t float32) float32 { return a + (b-a)*t }

func pow32(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }

func smooth32(e0, e1, x float32) float32 {
	return float32(smoothstep(float64(e0), float64(e1), float64(x)))
}

func mixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func floor2(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{float32(math.Floor(float64(p[0]))), float32(math.Floor(float64(p[1])))}
}

func hash2(n mgl32.Vec2) float32 {
	return fract32(sin32(n.Dot(mgl32.Vec2{12.9898, 4.1414})) * 43758.5453)
}

// valueNoise interpolates the hash lattice with a smoothstep fade and squares
// the result.
func valueNoise(p mgl32.Vec2) float32 {
	ip := floor2(p)
	ux, uy := fract32(p[0]), fract32(p[1])
	ux = ux * ux * (3 - 2*ux)
	uy = uy * uy * (3 - 2*uy)
	res := mix32(
		mix32(hash2(ip), hash2(ip.Add(mgl32.Vec2{1, 0})), ux),
		mix32(hash2(ip.Add(mgl32.Vec2{0, 1})), hash2(ip.Add(mgl32.Vec2{1, 1})), ux),
		uy,
	)
	return res * res
}

// fbm sums fbmOctaves of value noise, rotating, doubling and shifting the
// domain between octaves while halving the amplitude.
func fbm(x mgl32.Vec2) float32 {
	var v float32
	a := float32(0.5)
	for i := 0; i < fbmOctaves; i++ {
		v += a * valueNoise(x)
		x = fbmRot.Mul2x1(x).Mul(2).Add(fbmShift)
		a *= 0.5
	}
	return v
}

func clampVec3(c mgl32.Vec3, lo, hi float32) mgl32.Vec3 {
	for i := range c {
		c[i] = mgl32.Clamp(c[i], lo, hi)
	}
	return c
}

func powVec3(c mgl32.Vec3, e float32) mgl32.Vec3 {
	for i := range c {
		c[i] = pow32(max(c[i], 0), e)
	}
	return c
}

func shadeAurora(uv mgl32.Vec2, u Uniforms) mgl32.Vec3 {
	p := uv.Mul(2)
	t := float32(u.Time) * 0.15
	var color mgl32.Vec3

	for i := float32(0); i < 8; i++ {
		layer := i / 8

		wave := mgl32.Vec2{
			sin32(p[1]*3+t+i*0.5) * 0.3,
			cos32(p[0]*2+t*0.8+i*0.3) * 0.2,
		}
		pos := p.Add(wave)

		n := fbm(pos.Mul(1.5).Add(mgl32.Vec2{t * 0.3, -t * 0.2}))
		n += fbm(pos.Mul(3).Sub(mgl32.Vec2{t * 0.2, t * 0.4})) * 0.5

		col := mixVec3(mgl32.Vec3{0.4, 0.2, 0.8}, mgl32.Vec3{0.8, 0.3, 0.6}, layer)
		col = mixVec3(col, mgl32.Vec3{0.2, 0.5, 0.9}, sin32(layer*3.14159+t)*0.5+0.5)

		band := smooth32(0.3, 0.7, n)
		band *= smooth32(0, 0.2, n)
		band *= (1 - mgl32.Vec2{uv[0] * 1.5, uv[1]}.Len()) * 0.8

		color = color.Add(col.Mul(band * 0.15))
	}

	glow := 1 - mgl32.Vec2{uv[0] * 0.8, uv[1] * 1.2}.Len()
	glow = pow32(max(glow, 0), 3) * 0.1
	color = color.Add(mgl32.Vec3{0.3, 0.4, 0.8}.Mul(glow))

	return powVec3(color, 1.2)
}

func shadeSciFi(uv mgl32.Vec2, u Uniforms) mgl32.Vec3 {
	p := uv.Mul(2.5)
	time := float32(u.Time)
	t := time * 0.25
	pulse := 0.75 + 0.25*sin32(time*2)
	var color mgl32.Vec3

	const layers = 6
	for i := float32(0); i < layers; i++ {
		layer := i / layers

		wave := mgl32.Vec2{
			sin32(p[1]*4+t*1.3+i*0.7) * 0.25,
			cos32(p[0]*3+t+i*0.4) * 0.25,
		}
		pos := p.Add(wave)

		a := i*0.6 + t*0.1
		r := mgl32.Mat2{cos32(a), sin32(a), -sin32(a), cos32(a)}

		n := fbm(r.Mul2x1(pos).Mul(2).Add(mgl32.Vec2{t * 0.5, -t * 0.3}))
		n += fbm(pos.Mul(4).Sub(mgl32.Vec2{t * 0.3, t * 0.6})) * 0.5

		col := mixVec3(mgl32.Vec3{0, 0.9, 1}, mgl32.Vec3{1, 0.1, 0.8}, layer)
		col = mixVec3(col, mgl32.Vec3{0.4, 1, 0.3}, sin32(layer*6.28318+t*2)*0.5+0.5)

		stream := smooth32(0.35, 0.65, n) * (1 - smooth32(0.6, 0.9, n))
		stream *= max(1-mgl32.Vec2{uv[0] * 1.2, uv[1]}.Len(), 0)

		color = color.Add(col.Mul(stream * 0.22 * pulse))
	}

	h := hash2(floor2(p.Mul(40)))
	twinkle := pow32(max(sin32(time*(2+h*4)+h*40), 0), 12)
	var glint float32
	if h >= 0.985 {
		glint = 1
	}
	color = color.Add(mgl32.Vec3{0.6, 0.9, 1}.Mul(glint * twinkle * 0.8))

	glow := max(1-mgl32.Vec2{uv[0] * 0.7, uv[1] * 1.1}.Len(), 0)
	color = color.Add(mgl32.Vec3{0.1, 0.6, 0.9}.Mul(pow32(glow, 2.5) * 0.15 * pulse))

	color = powVec3(color, 1.1)
	for i := range color {
		color[i] = (color[i]-0.5)*1.15 + 0.5
	}
	return clampVec3(color, 0, 1)
}
