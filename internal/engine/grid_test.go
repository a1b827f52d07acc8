package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDimensions(t *testing.T) {
	// density 10 -> cell size 92; gutter 5 -> spacing 97.
	// 800x600 fits floor(800/97)=8 columns and floor(600/97)=6 rows.
	spec := LayerSpec{
		Algorithm: "grid",
		Params: Params{
			"density":       10.0,
			"gutter":        5.0,
			"shapeVariety":  1.0,
			"sizeVariation": 0.0,
		},
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         1,
	}

	commands := Generate(spec)
	require.Len(t, commands, 48)
	for _, c := range commands {
		assert.Equal(t, KindRect, c.Kind, "shapeVariety 1 only emits rects")
		require.NotNil(t, c.Size)
		assert.Equal(t, 92.0, c.Size.Width)
		assert.Equal(t, 92.0, c.Size.Height)
		assert.NotEmpty(t, c.Color)
	}
}

func TestGridCentered(t *testing.T) {
	spec := LayerSpec{
		Algorithm:    "grid",
		Params:       Params{"density": 10.0, "gutter": 5.0, "shapeVariety": 1.0, "sizeVariation": 0.0},
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         1,
	}
	commands := Generate(spec)
	require.NotEmpty(t, commands)

	minX, maxX := commands[0].Position.X, commands[0].Position.X
	for _, c := range commands {
		if c.Position.X < minX {
			minX = c.Position.X
		}
		if c.Position.X > maxX {
			maxX = c.Position.X
		}
	}
	// Symmetric margins on both sides of the column band.
	assert.InDelta(t, 800-maxX, minX, 1e-9)
}

func TestGridTooSmallCanvas(t *testing.T) {
	spec := LayerSpec{
		Algorithm:    "grid",
		Params:       Params{"density": 10.0, "gutter": 5.0},
		CanvasWidth:  50,
		CanvasHeight: 50,
		Seed:         1,
	}
	commands := Generate(spec)
	assert.NotNil(t, commands)
	assert.Empty(t, commands, "canvas smaller than one cell yields no shapes")
}

func TestGridShapeVariety(t *testing.T) {
	spec := LayerSpec{
		Algorithm:    "grid",
		Params:       Params{"density": 50.0, "gutter": 10.0, "shapeVariety": 7.0},
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         99,
	}
	commands := Generate(spec)
	require.NotEmpty(t, commands)

	kinds := make(map[ShapeKind]bool)
	for _, c := range commands {
		kinds[c.Kind] = true
	}
	// At full variety a big grid should exercise more than one shape kind.
	assert.Greater(t, len(kinds), 2)
}

func TestCellShapePlusCross(t *testing.T) {
	commands := cellShape(5, Point{X: 100, Y: 100}, 30, "#ffffff")
	require.Len(t, commands, 2, "plus cross is two bars")
	require.NotNil(t, commands[0].Size)
	require.NotNil(t, commands[1].Size)
	assert.Equal(t, KindRect, commands[0].Kind)
	assert.Equal(t, KindRect, commands[1].Kind)
	assert.Equal(t, commands[0].Size.Width, commands[1].Size.Height)
}

func TestStarPoints(t *testing.T) {
	points := starPoints(Point{X: 0, Y: 0}, 10, 4, 5)
	require.Len(t, points, 10)
	// First vertex is the upward tip at outer radius.
	assert.InDelta(t, 0, points[0].X, 1e-9)
	assert.InDelta(t, -10, points[0].Y, 1e-9)
}
