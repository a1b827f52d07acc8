package engine

import "math"

// Default canvas dimensions used when a LayerSpec omits them.
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// Point is an immutable 2D coordinate or vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Rotate returns p rotated about the origin by the given angle in radians.
func (p Point) Rotate(radians float64) Point {
	sin, cos := math.Sincos(radians)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Length returns the vector magnitude of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// resolveCanvas maps the caller-supplied dimensions to working floats,
// substituting the defaults for anything non-positive.
func resolveCanvas(width, height int) (float64, float64) {
	w, h := float64(width), float64(height)
	if w <= 0 {
		w = DefaultCanvasWidth
	}
	if h <= 0 {
		h = DefaultCanvasHeight
	}
	return w, h
}

// regularPolygon returns n vertices of a regular polygon around center,
// starting at startAngle radians.
func regularPolygon(center Point, radius float64, n int, startAngle float64) []Point {
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		a := startAngle + 2*math.Pi*float64(i)/float64(n)
		points[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return points
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
