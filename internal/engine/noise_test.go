package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoise2DRange(t *testing.T) {
	noise := NewNoise(42)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		x := (rng.Float64() - 0.5) * 2000
		y := (rng.Float64() - 0.5) * 2000
		v := noise.Noise2D(x, y)

		require.False(t, math.IsNaN(v), "NaN at (%f, %f)", x, y)
		require.False(t, math.IsInf(v, 0), "Inf at (%f, %f)", x, y)
		// Slight numeric overshoot from interpolation is tolerated.
		assert.GreaterOrEqual(t, v, -1.2, "below range at (%f, %f)", x, y)
		assert.LessOrEqual(t, v, 1.2, "above range at (%f, %f)", x, y)
	}
}

func TestNoise2DDeterministic(t *testing.T) {
	a := NewNoise(7)
	b := NewNoise(7)
	c := NewNoise(8)

	same := true
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.37, float64(i)*0.91
		assert.Equal(t, a.Noise2D(x, y), b.Noise2D(x, y), "same seed must match at sample %d", i)
		if a.Noise2D(x, y) != c.Noise2D(x, y) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge somewhere")
}

func TestNoise2DContinuity(t *testing.T) {
	// Neighboring samples must not jump: gradient noise is smooth.
	noise := NewNoise(3)
	const eps = 0.001
	for i := 0; i < 500; i++ {
		x := float64(i) * 0.173
		d := math.Abs(noise.Noise2D(x, x) - noise.Noise2D(x+eps, x))
		assert.Less(t, d, 0.1, "discontinuity near x=%f", x)
	}
}

func TestFBMOctaves(t *testing.T) {
	noise := NewNoise(99)

	// One octave equals the base sample.
	x, y := 12.3, 45.6
	assert.Equal(t, noise.Noise2D(x*0.01, y*0.01), noise.FBM(x, y, 1, 0.01))

	// Summed amplitude is bounded by the geometric series: 1 + 1/2 + ... < 2.
	for i := 0; i < 1000; i++ {
		v := noise.FBM(float64(i)*1.7, float64(i)*2.3, 5, 0.01)
		assert.Less(t, math.Abs(v), 2.4)
	}
}
