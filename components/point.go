package components

import "github.com/chewxy/math32"

// Point is an integer cell coordinate on the map
type Point struct {
	X, Y int
}

// NewPoint creates a point from its coordinates
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// DistanceTo returns the straight-line (Pythagorean) distance between two points
func (p Point) DistanceTo(o Point) float32 {
	dx := float32(p.X - o.X)
	dy := float32(p.Y - o.Y)
	return math32.Sqrt(dx*dx + dy*dy)
}
