package engine

import (
	"math"
	"math/rand"
)

// uniformGrid tiles the canvas with a centered grid of randomly varied
// shapes.
type uniformGrid struct{}

func (g *uniformGrid) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "grid",
		Name: "Uniform Grid",
		Controls: []Control{
			{Key: "density", Label: "Density", Type: ControlSlider, Min: 1, Max: 100, Step: 1, Default: 50.0},
			{Key: "gutter", Label: "Gutter", Type: ControlSlider, Min: 0, Max: 50, Step: 1, Default: 10.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "purple"},
			{Key: "shapeVariety", Label: "Shape Variety", Type: ControlSlider, Min: 1, Max: 7, Step: 1, Default: 3.0},
			{Key: "sizeVariation", Label: "Size Variation", Type: ControlSlider, Min: 0, Max: 10, Step: 1, Default: 3.0},
		},
	}
}

func (g *uniformGrid) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	density := spec.Params.ClampedFloat("density", 50, 1, 100)
	gutter := spec.Params.ClampedFloat("gutter", 10, 0, 50)
	variety := spec.Params.ClampedInt("shapeVariety", 3, 1, 7)
	sizeVariation := spec.Params.ClampedFloat("sizeVariation", 3, 0, 10)
	palette := spec.Params.Colors("colorPalette")

	cellSize := math.Max(10, 100-density*0.8)
	spacing := cellSize + gutter
	cols := int(w / spacing)
	rows := int(h / spacing)
	if cols <= 0 || rows <= 0 {
		// Canvas smaller than a single cell.
		return []DrawCommand{}
	}

	// Center the grid with a symmetric offset; cells anchor at their centers.
	offsetX := (w-float64(cols)*spacing)/2 + spacing/2
	offsetY := (h-float64(rows)*spacing)/2 + spacing/2

	commands := make([]DrawCommand, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := Point{
				X: offsetX + float64(col)*spacing,
				Y: offsetY + float64(row)*spacing,
			}
			kind := rng.Intn(variety)
			size := cellSize * math.Max(0.3, 1+(rng.Float64()-0.5)*sizeVariation/10)
			color := PickColor(rng, palette)
			commands = append(commands, cellShape(kind, center, size, color)...)
		}
	}
	return commands
}

// cellShape renders one grid cell as the kind-indexed shape. The plus cross
// is the only kind that emits more than one command.
func cellShape(kind int, center Point, size float64, color string) []DrawCommand {
	half := size / 2
	switch kind {
	case 1:
		return []DrawCommand{Circle(center, half, color)}
	case 2:
		return []DrawCommand{Triangle(
			Point{X: center.X, Y: center.Y - half},
			Point{X: center.X + half, Y: center.Y + half},
			Point{X: center.X - half, Y: center.Y + half},
			color,
		)}
	case 3: // diamond
		return []DrawCommand{Quad(
			Point{X: center.X, Y: center.Y - half},
			Point{X: center.X + half, Y: center.Y},
			Point{X: center.X, Y: center.Y + half},
			Point{X: center.X - half, Y: center.Y},
			color,
		)}
	case 4:
		return []DrawCommand{Polygon(center, regularPolygon(center, half, 6, -math.Pi/2), color)}
	case 5: // plus cross, two overlapping bars
		arm := size / 3
		return []DrawCommand{
			Rect(center, size, arm, color),
			Rect(center, arm, size, color),
		}
	case 6:
		return []DrawCommand{Polygon(center, starPoints(center, half, half*0.45, 5), color)}
	default:
		return []DrawCommand{Rect(center, size, size, color)}
	}
}

// starPoints returns the 2n vertices of an n-point star, alternating outer
// and inner radius, tip up.
func starPoints(center Point, outer, inner float64, n int) []Point {
	points := make([]Point, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(n)
		points = append(points, Point{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
		})
	}
	return points
}
