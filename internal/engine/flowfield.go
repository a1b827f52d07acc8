package engine

import (
	"math"
	"math/rand"
)

// flowField samples a regular grid of noise-driven flow angles and draws a
// short oriented segment at each sample: a vector-field visualization.
type flowField struct{}

func (g *flowField) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "flow-field",
		Name: "Perlin Noise Field",
		Controls: []Control{
			{Key: "density", Label: "Density", Type: ControlSlider, Min: 1, Max: 100, Step: 1, Default: 50.0},
			{Key: "flowSpeed", Label: "Flow Speed", Type: ControlSlider, Min: 0.001, Max: 0.05, Step: 0.001, Default: 0.01},
			{Key: "fieldStrength", Label: "Field Strength", Type: ControlSlider, Min: 0, Max: 3, Step: 0.1, Default: 1.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "purple"},
		},
	}
}

func (g *flowField) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	density := spec.Params.ClampedFloat("density", 50, 1, 100)
	flowSpeed := spec.Params.ClampedFloat("flowSpeed", 0.01, 0.0001, 0.1)
	strength := spec.Params.ClampedFloat("fieldStrength", 1, 0, 3)
	palette := spec.Params.Colors("colorPalette")

	noise := NewNoise(rng.Int63())

	// Higher density means tighter sample spacing.
	resolution := math.Max(8, math.Min(w, h)/20)
	resolution = math.Max(6, resolution*(1.3-density/100))

	commands := []DrawCommand{}
	for y := resolution / 2; y < h; y += resolution {
		for x := resolution / 2; x < w; x += resolution {
			angle := noise.Noise2D(x*flowSpeed, y*flowSpeed) * 2 * math.Pi
			length := resolution * 0.7 * strength
			start := Point{X: x, Y: y}
			end := Point{
				X: x + math.Cos(angle)*length,
				Y: y + math.Sin(angle)*length,
			}
			commands = append(commands,
				Line(start, end, PickColor(rng, palette), 1.5).WithAlpha(0.85))
		}
	}
	return commands
}
