package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsometricGenerate(t *testing.T) {
	spec := LayerSpec{
		Algorithm:    "isometric",
		Params:       Params{"density": 50.0, "perspective": 0.6, "colorPalette": "blue"},
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         17,
	}
	commands := Generate(spec)
	require.NotEmpty(t, commands)
	for _, c := range commands {
		assert.LessOrEqual(t, c.Position.X, 800.0+100)
		assert.GreaterOrEqual(t, c.Position.X, -100.0)
	}
}

func TestIsometricFallbackTile(t *testing.T) {
	// A canvas smaller than one tile still renders a single centered shape.
	spec := LayerSpec{
		Algorithm:    "isometric",
		Params:       Params{"density": 50.0},
		CanvasWidth:  20,
		CanvasHeight: 20,
		Seed:         1,
	}
	commands := Generate(spec)
	require.Len(t, commands, 1)
	assert.Equal(t, KindRect, commands[0].Kind)
	assert.Equal(t, 10.0, commands[0].Position.X)
	assert.Equal(t, 10.0, commands[0].Position.Y)
}

func TestIsometricPerspectiveClamped(t *testing.T) {
	// Out-of-range perspective values are clamped rather than folding the
	// grid through itself; both extremes still draw.
	for _, perspective := range []float64{-5.0, 0.0, 1.2, 50.0} {
		spec := LayerSpec{
			Algorithm:    "isometric",
			Params:       Params{"perspective": perspective},
			CanvasWidth:  800,
			CanvasHeight: 600,
			Seed:         2,
		}
		assert.NotEmpty(t, Generate(spec), "perspective %f", perspective)
	}
}

func TestIsoCubeFaces(t *testing.T) {
	commands := isoCube(Point{X: 100, Y: 100}, 20, 10, 30, "#808080")
	require.Len(t, commands, 3, "left face, right face, top")
	for _, c := range commands {
		assert.Equal(t, KindQuad, c.Kind)
	}
	// Side faces are darker than the top.
	assert.NotEqual(t, commands[2].Color, commands[0].Color)
	assert.NotEqual(t, commands[0].Color, commands[1].Color)
}

func TestIsoTileKinds(t *testing.T) {
	center := Point{X: 50, Y: 50}
	tests := []struct {
		kind int
		want int
	}{
		{0, 1}, // hexagon
		{1, 3}, // cube
		{2, 2}, // pyramid
		{3, 1}, // ellipse
		{4, 3}, // cylinder
	}
	for _, tt := range tests {
		commands := isoTile(tt.kind, center, 20, 30, math.Pi/6, "#3b82f6")
		assert.Len(t, commands, tt.want, "kind %d", tt.kind)
	}
}
