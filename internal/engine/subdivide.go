package engine

import (
	"math"
	"math/rand"
)

const maxSubdivisionDepth = 12

// region is a transient work-queue entry of the subdivision pass.
type region struct {
	x, y, w, h float64
	depth      int
}

// subdivision recursively partitions the canvas into a gapless, overlap-free
// mosaic of rectangular regions and emits one shape per leaf. The traversal
// is an iterative FIFO queue rather than call-stack recursion.
type subdivision struct{}

func (g *subdivision) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "subdivision",
		Name: "Recursive Subdivision",
		Controls: []Control{
			{Key: "subdivisions", Label: "Max Depth", Type: ControlSlider, Min: 1, Max: maxSubdivisionDepth, Step: 1, Default: 6.0},
			{Key: "threshold", Label: "Split Threshold", Type: ControlSlider, Min: 0, Max: 1, Step: 0.05, Default: 0.7},
			{Key: "density", Label: "Density", Type: ControlSlider, Min: 1, Max: 100, Step: 1, Default: 50.0},
			{Key: "shapeVariety", Label: "Shape Variety", Type: ControlSlider, Min: 1, Max: 5, Step: 1, Default: 3.0},
			{Key: "colorVariation", Label: "Color Variation", Type: ControlSlider, Min: 0, Max: 10, Step: 1, Default: 5.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "purple"},
		},
	}
}

func (g *subdivision) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	maxDepth := spec.Params.ClampedInt("subdivisions", 6, 1, maxSubdivisionDepth)
	threshold := spec.Params.ClampedFloat("threshold", 0.7, 0, 1)
	density := spec.Params.ClampedFloat("density", 50, 1, 100)
	variety := spec.Params.ClampedInt("shapeVariety", 3, 1, 5)
	colorVariation := spec.Params.ClampedFloat("colorVariation", 5, 0, 10)
	palette := spec.Params.Colors("colorPalette")

	minSize := math.Max(8, math.Min(w, h)/(10+density/3))
	leaves := subdivideRegions(rng, w, h, maxDepth, threshold, minSize)

	commands := make([]DrawCommand, 0, len(leaves))
	for _, r := range leaves {
		commands = append(commands, leafShape(r, variety, colorVariation, palette))
	}
	return commands
}

// subdivideRegions runs the breadth-first split loop. The returned leaves
// exactly tile the w x h rectangle: every split conserves area and no region
// is ever dropped or emitted twice.
func subdivideRegions(rng *rand.Rand, w, h float64, maxDepth int, threshold, minSize float64) []region {
	queue := []region{{x: 0, y: 0, w: w, h: h, depth: 0}}
	var leaves []region

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		if r.depth >= maxDepth || r.w <= minSize || r.h <= minSize {
			leaves = append(leaves, r)
			continue
		}

		split := false
		if r.depth < 2 {
			// Force the first two levels so the layer always shows structure.
			split = true
		} else {
			p := math.Max(0.2, threshold*(1-float64(r.depth)*0.1))
			split = rng.Float64() < p
		}
		if !split {
			leaves = append(leaves, r)
			continue
		}

		ratio := 0.3 + rng.Float64()*0.4

		// Wide regions split vertically, tall ones horizontally,
		// square-ish ones flip a coin.
		vertical := false
		switch {
		case r.w > r.h*1.3:
			vertical = true
		case r.h > r.w*1.3:
			vertical = false
		default:
			vertical = rng.Float64() < 0.5
		}

		if vertical {
			cut := r.w * ratio
			queue = append(queue,
				region{x: r.x, y: r.y, w: cut, h: r.h, depth: r.depth + 1},
				region{x: r.x + cut, y: r.y, w: r.w - cut, h: r.h, depth: r.depth + 1},
			)
		} else {
			cut := r.h * ratio
			queue = append(queue,
				region{x: r.x, y: r.y, w: r.w, h: cut, depth: r.depth + 1},
				region{x: r.x, y: r.y + cut, w: r.w, h: r.h - cut, depth: r.depth + 1},
			)
		}
	}
	return leaves
}

// leafShape emits one shape for a leaf region. Shape kind and color come
// from a hash of position and depth, not from the RNG, so visually adjacent
// leaves stay coherent across regenerations of neighboring regions.
func leafShape(r region, variety int, colorVariation float64, palette []string) DrawCommand {
	hash := regionHash(r)
	kind := hash % variety
	color := palette[(hash/7)%len(palette)]

	center := Point{X: r.x + r.w/2, Y: r.y + r.h/2}
	inset := math.Min(r.w, r.h) * 0.08
	cw, ch := r.w-inset*2, r.h-inset*2
	half := math.Min(cw, ch) / 2

	var cmd DrawCommand
	switch kind {
	case 1:
		cmd = Ellipse(center, cw/2, ch/2, color)
	case 2:
		cmd = Triangle(
			Point{X: center.X, Y: center.Y - ch/2},
			Point{X: center.X + cw/2, Y: center.Y + ch/2},
			Point{X: center.X - cw/2, Y: center.Y + ch/2},
			color,
		)
	case 3: // diamond
		cmd = Quad(
			Point{X: center.X, Y: center.Y - ch/2},
			Point{X: center.X + cw/2, Y: center.Y},
			Point{X: center.X, Y: center.Y + ch/2},
			Point{X: center.X - cw/2, Y: center.Y},
			color,
		)
	case 4: // cross
		cmd = Rect(center, half*2, half*0.7, color)
	default:
		cmd = Rect(center, cw, ch, color)
	}

	if colorVariation > 0 {
		alpha := 1 - float64((hash/13)%10)/10*colorVariation/20
		cmd = cmd.WithAlpha(alpha)
	}
	return cmd
}

func regionHash(r region) int {
	h := int(r.x)*73856093 ^ int(r.y)*19349663 ^ r.depth*83492791
	if h < 0 {
		h = -h
	}
	return h
}
