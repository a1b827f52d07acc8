package engine

import (
	"encoding/json"
)

// ShapeKind identifies the primitive a DrawCommand describes.
type ShapeKind string

const (
	KindRect     ShapeKind = "rect"
	KindEllipse  ShapeKind = "ellipse"
	KindCircle   ShapeKind = "circle"
	KindLine     ShapeKind = "line"
	KindTriangle ShapeKind = "triangle"
	KindQuad     ShapeKind = "quad"
	KindPolygon  ShapeKind = "polygon"
	KindPath     ShapeKind = "path"
	KindParticle ShapeKind = "particle"
)

// Size is the extent of a rect command.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DrawCommand is a single drawing operation for the frontend to execute on a
// Canvas2D context. The engine returns a list of these in painter's order
// (back to front). Which optional fields are set depends on Kind; the
// constructors below are the only way commands are built, so a command never
// carries fields that are meaningless for its kind.
type DrawCommand struct {
	Kind         ShapeKind `json:"kind"`
	Position     Point     `json:"position"`
	Size         *Size     `json:"size,omitempty"`         // rect
	Radius       float64   `json:"radius,omitempty"`       // ellipse, circle, particle
	RadiusY      float64   `json:"radiusY,omitempty"`      // ellipse
	Points       []Point   `json:"points,omitempty"`       // line, triangle, quad, polygon, path
	Color        string    `json:"color"`                  // fill (or stroke for line kinds)
	StrokeColor  string    `json:"strokeColor,omitempty"`
	StrokeWeight float64   `json:"strokeWeight,omitempty"` // 0 means no stroke
	Alpha        float64   `json:"alpha,omitempty"`        // 0 or absent means opaque
	Rotation     float64   `json:"rotation,omitempty"`     // radians, about Position
	Velocity     *Point    `json:"velocity,omitempty"`     // particle
}

// Rect builds a center-anchored filled rectangle.
func Rect(center Point, width, height float64, color string) DrawCommand {
	return DrawCommand{
		Kind:     KindRect,
		Position: center,
		Size:     &Size{Width: width, Height: height},
		Color:    color,
	}
}

// Ellipse builds a center-anchored filled ellipse with independent radii.
func Ellipse(center Point, rx, ry float64, color string) DrawCommand {
	return DrawCommand{
		Kind:     KindEllipse,
		Position: center,
		Radius:   rx,
		RadiusY:  ry,
		Color:    color,
	}
}

// Circle builds a center-anchored filled circle.
func Circle(center Point, radius float64, color string) DrawCommand {
	return DrawCommand{
		Kind:     KindCircle,
		Position: center,
		Radius:   radius,
		Color:    color,
	}
}

// Line builds a stroked segment from a to b. Position is the midpoint so
// rotation, if any, pivots sensibly.
func Line(a, b Point, color string, weight float64) DrawCommand {
	return DrawCommand{
		Kind:         KindLine,
		Position:     Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2},
		Points:       []Point{a, b},
		Color:        color,
		StrokeWeight: weight,
	}
}

// Triangle builds a filled triangle from three vertices.
func Triangle(a, b, c Point, color string) DrawCommand {
	return DrawCommand{
		Kind:     KindTriangle,
		Position: Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3},
		Points:   []Point{a, b, c},
		Color:    color,
	}
}

// Quad builds a filled quadrilateral; vertex order matters, the consumer
// closes the shape.
func Quad(a, b, c, d Point, color string) DrawCommand {
	return DrawCommand{
		Kind:     KindQuad,
		Position: Point{X: (a.X + b.X + c.X + d.X) / 4, Y: (a.Y + b.Y + c.Y + d.Y) / 4},
		Points:   []Point{a, b, c, d},
		Color:    color,
	}
}

// Polygon builds a closed filled polygon from an ordered vertex list.
func Polygon(center Point, points []Point, color string) DrawCommand {
	return DrawCommand{
		Kind:     KindPolygon,
		Position: center,
		Points:   points,
		Color:    color,
	}
}

// Path builds an open stroked polyline.
func Path(points []Point, color string, weight float64) DrawCommand {
	var center Point
	if len(points) > 0 {
		for _, p := range points {
			center.X += p.X
			center.Y += p.Y
		}
		center.X /= float64(len(points))
		center.Y /= float64(len(points))
	}
	return DrawCommand{
		Kind:         KindPath,
		Position:     center,
		Points:       points,
		Color:        color,
		StrokeWeight: weight,
	}
}

// Particle builds a single scatter particle. Velocity is advisory for
// renderer-side motion blur; the engine never integrates it.
func Particle(center Point, radius float64, velocity Point, color string) DrawCommand {
	return DrawCommand{
		Kind:     KindParticle,
		Position: center,
		Radius:   radius,
		Velocity: &velocity,
		Color:    color,
	}
}

// WithStroke returns a copy of the command with an outline.
func (c DrawCommand) WithStroke(color string, weight float64) DrawCommand {
	c.StrokeColor = color
	c.StrokeWeight = weight
	return c
}

// WithAlpha returns a copy of the command with the given opacity in [0, 1].
func (c DrawCommand) WithAlpha(alpha float64) DrawCommand {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.Alpha = alpha
	return c
}

// WithRotation returns a copy of the command rotated about its position.
func (c DrawCommand) WithRotation(radians float64) DrawCommand {
	c.Rotation = radians
	return c
}

// CommandsToJSON serializes draw commands for the frontend. A nil slice
// serializes as an empty array, never null.
func CommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
