package engine

import (
	"math"
	"math/rand"
)

// particleField emits a single-frame particle scatter. There is no time
// integration here; velocity rides along for the renderer's motion blur.
type particleField struct{}

func (g *particleField) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "particles",
		Name: "Particle System",
		Controls: []Control{
			{Key: "density", Label: "Density", Type: ControlSlider, Min: 1, Max: 100, Step: 1, Default: 50.0},
			{Key: "particleCount", Label: "Particles", Type: ControlSlider, Min: 10, Max: 500, Step: 10, Default: 100.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "purple"},
		},
	}
}

func (g *particleField) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	density := spec.Params.ClampedFloat("density", 50, 1, 100)
	requested := spec.Params.ClampedFloat("particleCount", 100, 1, 500)
	palette := spec.Params.Colors("colorPalette")

	// Cap the count by canvas area so tiny canvases stay sparse and huge
	// ones stay bounded.
	count := int(math.Min(requested, w*h/5000) * density / 50)
	if count <= 0 {
		return []DrawCommand{}
	}

	baseRadius := math.Max(1.5, math.Min(w, h)/150)
	maxSpeed := math.Min(w, h) / 200

	commands := make([]DrawCommand, 0, count)
	for i := 0; i < count; i++ {
		pos := Point{X: rng.Float64() * w, Y: rng.Float64() * h}
		velocity := Point{
			X: (rng.Float64()*2 - 1) * maxSpeed,
			Y: (rng.Float64()*2 - 1) * maxSpeed,
		}
		radius := baseRadius * (0.5 + rng.Float64())
		commands = append(commands,
			Particle(pos, radius, velocity, PickColor(rng, palette)).WithAlpha(0.8))
	}
	return commands
}
