package engine

import (
	"math"
	"math/rand"
)

const (
	maxTreeDepth = 12
	maxTreeCount = 5
	// Branches thinner than this stop recursing regardless of depth.
	minBranchThickness = 0.5
)

// fractalTrees grows deterministic binary branching trees from the bottom of
// the canvas. Branch thickness follows the biological scaling law
// t' = t / 2^(1/alpha); recursion stops on depth or thickness, whichever
// hits first, so the command count is always bounded.
type fractalTrees struct{}

func (g *fractalTrees) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "fractal-trees",
		Name: "Fractal Trees",
		Controls: []Control{
			{Key: "branchLength", Label: "Branch Length", Type: ControlSlider, Min: 0.3, Max: 1.2, Step: 0.01, Default: 0.67},
			{Key: "branchAngle", Label: "Branch Angle", Type: ControlSlider, Min: 5, Max: 60, Step: 1, Default: 25.0},
			{Key: "iterations", Label: "Iterations", Type: ControlSlider, Min: 1, Max: maxTreeDepth, Step: 1, Default: 9.0},
			{Key: "treeCount", Label: "Trees", Type: ControlSlider, Min: 1, Max: maxTreeCount, Step: 1, Default: 1.0},
			{Key: "scalingExponent", Label: "Thickness Exponent", Type: ControlSlider, Min: 1, Max: 4, Step: 0.1, Default: 2.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "green"},
		},
	}
}

func (g *fractalTrees) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	lengthFactor := spec.Params.ClampedFloat("branchLength", 0.67, 0.3, 1.2)
	angle := spec.Params.ClampedFloat("branchAngle", 25, 1, 90) * math.Pi / 180
	iterations := spec.Params.ClampedInt("iterations", 9, 1, maxTreeDepth)
	treeCount := spec.Params.ClampedInt("treeCount", 1, 1, maxTreeCount)
	alpha := spec.Params.ClampedFloat("scalingExponent", 2, 1, 4)
	palette := spec.Params.Colors("colorPalette")

	trunkLength := math.Min(w, h) * 0.22
	trunkThickness := math.Max(2, trunkLength/14)
	thicknessFalloff := 1 / math.Pow(2, 1/alpha)
	baseY := h * 0.95

	var commands []DrawCommand
	for t := 0; t < treeCount; t++ {
		// Space the trees evenly across a centered horizontal band.
		var baseX float64
		if treeCount == 1 {
			baseX = w / 2
		} else {
			band := w * 0.7
			baseX = w/2 - band/2 + band*float64(t)/float64(treeCount-1)
		}

		trunk := Point{X: 0, Y: -trunkLength}
		growBranch(&commands, Point{X: baseX, Y: baseY}, trunk, iterations,
			trunkThickness, lengthFactor, angle, thicknessFalloff, palette)
	}
	return commands
}

// growBranch appends one branch segment and recurses into the two children.
// Depth and the thickness floor both terminate the recursion.
func growBranch(commands *[]DrawCommand, pos, dir Point, depth int,
	thickness, lengthFactor, angle, thicknessFalloff float64, palette []string) {

	if depth <= 0 || thickness < minBranchThickness {
		return
	}

	end := pos.Add(dir)
	color := palette[clampInt(depth*len(palette)/(maxTreeDepth+1), 0, len(palette)-1)]
	*commands = append(*commands, Line(pos, end, color, thickness))

	child := dir.Scale(lengthFactor)
	childThickness := thickness * thicknessFalloff
	growBranch(commands, end, child.Rotate(angle), depth-1,
		childThickness, lengthFactor, angle, thicknessFalloff, palette)
	growBranch(commands, end, child.Rotate(-angle), depth-1,
		childThickness, lengthFactor, angle, thicknessFalloff, palette)
}
