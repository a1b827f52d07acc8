package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseGridCellCount(t *testing.T) {
	// Same tiling as the uniform grid: 8x6 cells at density 10, gutter 5.
	spec := LayerSpec{
		Algorithm:    "noise-grid",
		Params:       Params{"density": 10.0, "gutter": 5.0},
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         4,
	}
	commands := Generate(spec)
	require.Len(t, commands, 48)

	for _, c := range commands {
		assert.Equal(t, KindPolygon, c.Kind)
		assert.GreaterOrEqual(t, len(c.Points), 6)
		assert.LessOrEqual(t, len(c.Points), 12)
		assert.NotEmpty(t, c.Color)
	}
}

func TestNoiseGridZeroIntensity(t *testing.T) {
	// Displacement still has a 5px floor, so centers stay near the uniform
	// lattice without snapping to it exactly.
	spec := LayerSpec{
		Algorithm:    "noise-grid",
		Params:       Params{"density": 10.0, "gutter": 5.0, "displacementIntensity": 0.0},
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         4,
	}
	commands := Generate(spec)
	require.Len(t, commands, 48)
	for _, c := range commands {
		// spacing 97, offset 60.5: every center within floor distance of
		// its lattice point.
		assert.Greater(t, c.Position.X, 0.0)
		assert.Less(t, c.Position.X, 800.0)
	}
}

func TestBlobVertexRange(t *testing.T) {
	noise := NewNoise(rand.New(rand.NewSource(2)).Int63())
	palette := ResolvePalette([]string{"pink"})

	for i := 0; i < 100; i++ {
		cmd := blob(noise, Point{X: float64(i) * 37, Y: float64(i) * 53}, 30, palette)
		assert.GreaterOrEqual(t, len(cmd.Points), 6)
		assert.LessOrEqual(t, len(cmd.Points), 12)
		assert.Contains(t, palette, cmd.Color)

		// Vertex radius stays within the wobble envelope [0.6r, 1.3r].
		for _, p := range cmd.Points {
			d := Point{X: p.X - cmd.Position.X, Y: p.Y - cmd.Position.Y}.Length()
			assert.GreaterOrEqual(t, d, 30*0.6-1e-9)
			assert.LessOrEqual(t, d, 30*1.3+1e-9)
		}
	}
}
