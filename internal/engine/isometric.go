package engine

import (
	"math"
	"math/rand"
)

// isoGrid projects a staggered grid at an isometric angle driven by the
// perspective parameter and fills it with pseudo-3D tiles.
type isoGrid struct{}

func (g *isoGrid) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "isometric",
		Name: "Isometric Grid",
		Controls: []Control{
			{Key: "density", Label: "Density", Type: ControlSlider, Min: 1, Max: 100, Step: 1, Default: 50.0},
			{Key: "perspective", Label: "Perspective", Type: ControlSlider, Min: 0, Max: 1.2, Step: 0.05, Default: 0.6},
			{Key: "shapeVariety", Label: "Shape Variety", Type: ControlSlider, Min: 1, Max: 5, Step: 1, Default: 3.0},
			{Key: "heightVariation", Label: "Height Variation", Type: ControlSlider, Min: 0, Max: 10, Step: 1, Default: 5.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "purple"},
		},
	}
}

func (g *isoGrid) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	density := spec.Params.ClampedFloat("density", 50, 1, 100)
	// Perspective beyond 1.2 collapses the grid into a line.
	perspective := spec.Params.ClampedFloat("perspective", 0.6, 0, 1.2)
	variety := spec.Params.ClampedInt("shapeVariety", 3, 1, 5)
	heightVariation := spec.Params.ClampedFloat("heightVariation", 5, 0, 10)
	palette := spec.Params.Colors("colorPalette")

	cellSize := math.Max(16, 70-density*0.5)
	// Interpolate the isometric angle between 15 and 45 degrees.
	angle := (15 + perspective/1.2*30) * math.Pi / 180
	hSpacing := cellSize * 1.6
	vSpacing := math.Max(4, cellSize*math.Sin(angle)*1.6)

	cols := int(w/hSpacing) + 2
	rows := int(h/vSpacing) + 2

	commands := []DrawCommand{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := hSpacing/2 + float64(col)*hSpacing
			if row%2 == 1 {
				x += hSpacing / 2
			}
			y := vSpacing/2 + float64(row)*vSpacing

			// Skip tiles whose base footprint spills off the canvas.
			if x+cellSize/2 > w || y+cellSize/2*math.Sin(angle) > h {
				continue
			}

			center := Point{X: x, Y: y}
			height := cellSize * (0.5 + rng.Float64()*heightVariation/10*1.5)
			kind := rng.Intn(variety)
			base := PickColor(rng, palette)
			commands = append(commands, isoTile(kind, center, cellSize/2, height, angle, base)...)
		}
	}

	if len(commands) == 0 {
		// Degenerate perspective/size combinations must not leave the layer
		// silently blank.
		commands = append(commands, Rect(Point{X: w / 2, Y: h / 2}, cellSize, cellSize, PickColor(rng, palette)))
	}
	return commands
}

// isoTile renders one cell of the isometric grid. Multi-face shapes shade
// their side faces by darkening the base color.
func isoTile(kind int, center Point, half, height, angle float64, base string) []DrawCommand {
	dy := half * math.Sin(angle)
	switch kind {
	case 1:
		return isoCube(center, half, dy, height, base)
	case 2:
		return isoPyramid(center, half, dy, height, base)
	case 3:
		return []DrawCommand{Ellipse(center, half, dy, base)}
	case 4:
		return isoCylinder(center, half, dy, height, base)
	default:
		return []DrawCommand{Polygon(center, regularPolygon(center, half, 6, math.Pi/6), base)}
	}
}

// isoCube draws three visible faces: top diamond plus left and right sides.
func isoCube(center Point, half, dy, height float64, base string) []DrawCommand {
	top := Point{X: center.X, Y: center.Y - height}
	n := Point{X: top.X, Y: top.Y - dy}
	e := Point{X: top.X + half, Y: top.Y}
	s := Point{X: top.X, Y: top.Y + dy}
	w := Point{X: top.X - half, Y: top.Y}

	down := Point{X: 0, Y: height}
	return []DrawCommand{
		Quad(w, s, s.Add(down), w.Add(down), shadeHex(base, 0.75)), // left face
		Quad(s, e, e.Add(down), s.Add(down), shadeHex(base, 0.55)), // right face
		Quad(n, e, s, w, base),                                     // top
	}
}

// isoPyramid draws the two visible triangular faces of a four-sided pyramid.
func isoPyramid(center Point, half, dy, height float64, base string) []DrawCommand {
	apex := Point{X: center.X, Y: center.Y - height}
	e := Point{X: center.X + half, Y: center.Y}
	s := Point{X: center.X, Y: center.Y + dy}
	w := Point{X: center.X - half, Y: center.Y}
	return []DrawCommand{
		Triangle(apex, w, s, shadeHex(base, 0.75)),
		Triangle(apex, s, e, shadeHex(base, 0.55)),
	}
}

// isoCylinder draws a side quad capped by two ellipses.
func isoCylinder(center Point, half, dy, height float64, base string) []DrawCommand {
	top := Point{X: center.X, Y: center.Y - height}
	return []DrawCommand{
		Quad(
			Point{X: center.X - half, Y: top.Y},
			Point{X: center.X + half, Y: top.Y},
			Point{X: center.X + half, Y: center.Y},
			Point{X: center.X - half, Y: center.Y},
			shadeHex(base, 0.7),
		),
		Ellipse(center, half, dy, shadeHex(base, 0.7)),
		Ellipse(top, half, dy, base),
	}
}
