package generation

import (
	"github.com/chewxy/math32"

	"ebiten-dungeon/components"
)

// Unreachable is the depth of every cell the flood never reached
const Unreachable float32 = math32.MaxFloat32

// DistanceField holds the walking distance from one source cell to every
// other cell of a map, moving in the four cardinal directions over
// walkable tiles
type DistanceField struct {
	Width    int
	Height   int
	Source   components.Point
	MaxDepth float32
	Depths   []float32 // Indexed like MapComponent.Tiles
}

// NewDistanceField floods the map breadth-first from source. Cells further
// than maxDepth steps away are left Unreachable.
func NewDistanceField(m *components.MapComponent, source components.Point, maxDepth float32) *DistanceField {
	df := &DistanceField{
		Width:    m.Width,
		Height:   m.Height,
		Source:   source,
		MaxDepth: maxDepth,
		Depths:   make([]float32, len(m.Tiles)),
	}
	for i := range df.Depths {
		df.Depths[i] = Unreachable
	}

	start, ok := m.TryIdx(source)
	if !ok {
		return df
	}
	df.Depths[start] = 0

	queue := []int{start}
	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		depth := df.Depths[idx] + 1
		if depth > maxDepth {
			continue
		}

		p := m.IndexToPoint(idx)
		for _, dir := range cardinals {
			next, ok := m.TryIdx(p.Add(dir))
			if !ok || !m.Tiles[next].IsWalkable() {
				continue
			}
			if df.Depths[next] <= depth {
				continue
			}
			df.Depths[next] = depth
			queue = append(queue, next)
		}
	}

	return df
}

// Reachable reports whether the cell at idx was reached by the flood
func (df *DistanceField) Reachable(idx int) bool {
	return idx >= 0 && idx < len(df.Depths) && df.Depths[idx] < Unreachable
}

// Distance returns the depth of p, or false if p is off the map or unreached
func (df *DistanceField) Distance(p components.Point) (float32, bool) {
	if p.X < 0 || p.X >= df.Width || p.Y < 0 || p.Y >= df.Height {
		return Unreachable, false
	}
	d := df.Depths[p.Y*df.Width+p.X]
	return d, d < Unreachable
}

// MostDistant returns the reachable cell furthest from the source. Ties go to
// the lowest index. When nothing but the source itself is reachable the
// source is returned with ok set to false.
func (df *DistanceField) MostDistant() (p components.Point, depth float32, ok bool) {
	best := -1
	var bestDepth float32
	for idx, d := range df.Depths {
		if d >= Unreachable {
			continue
		}
		if best < 0 || d > bestDepth {
			best = idx
			bestDepth = d
		}
	}

	if best < 0 || bestDepth == 0 {
		return df.Source, 0, false
	}
	return components.Point{X: best % df.Width, Y: best / df.Width}, bestDepth, true
}
