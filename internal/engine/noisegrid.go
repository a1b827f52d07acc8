package engine

import (
	"math"
	"math/rand"
)

// noiseGrid is the uniform grid tiling with cell positions displaced by
// fractal noise and cells rendered as noise-perturbed organic blobs. Color
// and vertex count are noise-driven rather than independently random, so the
// field stays spatially coherent.
type noiseGrid struct{}

func (g *noiseGrid) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "noise-grid",
		Name: "Noise Displacement Grid",
		Controls: []Control{
			{Key: "density", Label: "Density", Type: ControlSlider, Min: 1, Max: 100, Step: 1, Default: 50.0},
			{Key: "gutter", Label: "Gutter", Type: ControlSlider, Min: 0, Max: 50, Step: 1, Default: 10.0},
			{Key: "noiseScale", Label: "Noise Scale", Type: ControlSlider, Min: 0.001, Max: 0.05, Step: 0.001, Default: 0.01},
			{Key: "octaves", Label: "Octaves", Type: ControlSlider, Min: 1, Max: 6, Step: 1, Default: 3.0},
			{Key: "displacementIntensity", Label: "Displacement", Type: ControlSlider, Min: 0, Max: 3, Step: 0.1, Default: 1.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "purple"},
		},
	}
}

func (g *noiseGrid) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	density := spec.Params.ClampedFloat("density", 50, 1, 100)
	gutter := spec.Params.ClampedFloat("gutter", 10, 0, 50)
	noiseScale := spec.Params.ClampedFloat("noiseScale", 0.01, 0.0001, 0.1)
	octaves := spec.Params.ClampedInt("octaves", 3, 1, 6)
	intensity := spec.Params.ClampedFloat("displacementIntensity", 1, 0, 3)
	palette := spec.Params.Colors("colorPalette")

	noise := NewNoise(rng.Int63())

	cellSize := math.Max(10, 100-density*0.8)
	spacing := cellSize + gutter
	cols := int(w / spacing)
	rows := int(h / spacing)
	if cols <= 0 || rows <= 0 {
		return []DrawCommand{}
	}

	offsetX := (w-float64(cols)*spacing)/2 + spacing/2
	offsetY := (h-float64(rows)*spacing)/2 + spacing/2
	displacement := math.Max(5, cellSize*0.8*intensity)

	commands := make([]DrawCommand, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			baseX := offsetX + float64(col)*spacing
			baseY := offsetY + float64(row)*spacing

			// Two independent fractal samples; the second is offset by
			// +1000 on both axes to decorrelate it from the first.
			dx := noise.FBM(baseX, baseY, octaves, noiseScale) * displacement
			dy := noise.FBM(baseX+1000, baseY+1000, octaves, noiseScale) * displacement
			center := Point{X: baseX + dx, Y: baseY + dy}

			commands = append(commands, blob(noise, center, cellSize/2, palette))
		}
	}
	return commands
}

// blob renders one cell as an irregular polygon whose vertex count and
// per-vertex radius are both noise-perturbed.
func blob(noise *Noise, center Point, radius float64, palette []string) DrawCommand {
	countNoise := noise.Noise2D(center.X*0.01+500, center.Y*0.01+500)
	pointCount := 6 + int((countNoise+1)/2*6)
	pointCount = clampInt(pointCount, 6, 12)

	points := make([]Point, 0, pointCount)
	for i := 0; i < pointCount; i++ {
		a := 2 * math.Pi * float64(i) / float64(pointCount)
		rim := Point{X: center.X + math.Cos(a)*radius, Y: center.Y + math.Sin(a)*radius}
		wobble := (noise.Noise2D(rim.X*0.05, rim.Y*0.05) + 1) / 2
		r := radius * (0.6 + 0.7*wobble)
		points = append(points, Point{
			X: center.X + math.Cos(a)*r,
			Y: center.Y + math.Sin(a)*r,
		})
	}

	colorNoise := (noise.Noise2D(center.X*0.005, center.Y*0.005) + 1) / 2
	idx := clampInt(int(colorNoise*float64(len(palette))), 0, len(palette)-1)
	return Polygon(center, points, palette[idx])
}
