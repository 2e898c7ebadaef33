package components

// Rect is an axis-aligned region of the map, used for rooms and prefab footprints.
// X2 and Y2 are exclusive when enumerating cells and inclusive when testing overlap,
// which keeps a one-cell wall between rooms that do not intersect.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRectWithSize creates a rect from its top-left corner and size.
// Negative sizes give an empty rect at x, y.
func NewRectWithSize(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + max(width, 0), Y2: y + max(height, 0)}
}

// Width returns the horizontal extent of the rect
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rect
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Intersects reports whether two rects overlap, treating both as closed intervals
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Center returns the integer midpoint of the rect
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether p is one of the cells visited by ForEach
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// ForEach calls fn for every cell inside the rect, row by row
func (r Rect) ForEach(fn func(p Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Points returns every cell inside the rect in ForEach order
func (r Rect) Points() []Point {
	points := make([]Point, 0, max(r.Width(), 0)*max(r.Height(), 0))
	r.ForEach(func(p Point) {
		points = append(points, p)
	})
	return points
}
