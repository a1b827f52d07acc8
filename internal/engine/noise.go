package engine

import (
	"math"
	"math/rand"
)

// Noise is a seeded 2D gradient-noise sampler. Every generation call builds
// its own instance, so concurrent callers never share permutation state.
type Noise struct {
	perm [512]int
}

// NewNoise creates a noise generator whose permutation table is shuffled by
// the given seed.
func NewNoise(seed int64) *Noise {
	n := &Noise{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	// Duplicate to 512 entries to avoid wrap checks on corner lookups.
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// fade is the quintic smoothing curve t^3(t(6t-15)+10).
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad selects one of four diagonal gradients from the low 2 bits of the
// corner hash and returns its dot product with (x, y).
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Noise2D samples classic gradient noise at (x, y). Output stays in
// approximately [-1, 1] for any finite input.
func (n *Noise) Noise2D(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	xf := x - fx
	yf := y - fy

	u := fade(xf)
	v := fade(yf)

	aa := n.perm[n.perm[xi]+yi]
	ab := n.perm[n.perm[xi]+yi+1]
	ba := n.perm[n.perm[xi+1]+yi]
	bb := n.perm[n.perm[xi+1]+yi+1]

	x1 := lerp(grad(aa, xf, yf), grad(ba, xf-1, yf), u)
	x2 := lerp(grad(ab, xf, yf-1), grad(bb, xf-1, yf-1), u)
	return lerp(x1, x2, v)
}

// FBM sums octaves rounds of Noise2D, doubling frequency and halving
// amplitude each round (fractal Brownian motion). Callers clamp octaves >= 1.
func (n *Noise) FBM(x, y float64, octaves int, baseFrequency float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := baseFrequency
	for i := 0; i < octaves; i++ {
		total += n.Noise2D(x*frequency, y*frequency) * amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return total
}
