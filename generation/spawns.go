package generation

import (
	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/components"
)

// SampleSpawns picks up to count distinct floor tiles further than
// minDistance from start. When the map has fewer candidates than requested,
// every candidate is returned and capped is true.
func SampleSpawns(m *components.MapComponent, start components.Point, count int, minDistance float32, rng Rand) (spawns []components.Point, capped bool) {
	return SelectSpawns(m, start, nil, nil, count, minDistance, rng)
}

// SelectSpawns fills up to count spawn points. Anchors come first, in order,
// as long as they are eligible floor tiles; the rest are sampled at random
// from the remaining candidates. Cells in avoid are never used.
func SelectSpawns(m *components.MapComponent, start components.Point, anchors, avoid []components.Point,
	count int, minDistance float32, rng Rand) (spawns []components.Point, capped bool) {
	taken := mapset.New[components.Point]()
	for _, p := range avoid {
		taken.Put(p)
	}

	eligible := func(p components.Point) bool {
		tile, ok := m.Tile(p)
		return ok && tile == components.TileFloor && !taken.Has(p) && start.DistanceTo(p) > minDistance
	}

	n := max(count, 0)
	spawns = make([]components.Point, 0, n)
	for _, p := range anchors {
		if len(spawns) == n {
			break
		}
		if eligible(p) {
			spawns = append(spawns, p)
			taken.Put(p)
		}
	}

	var candidates []components.Point
	for idx := range m.Tiles {
		if p := m.IndexToPoint(idx); eligible(p) {
			candidates = append(candidates, p)
		}
	}

	remaining := n - len(spawns)
	if len(candidates) < remaining {
		remaining = len(candidates)
		capped = true
	}

	for i := 0; i < remaining; i++ {
		target, _ := randomSliceIndex(rng, len(candidates))
		spawns = append(spawns, candidates[target])

		// Spawn order carries no meaning, so swap-remove the drawn candidate
		last := len(candidates) - 1
		candidates[target] = candidates[last]
		candidates = candidates[:last]
	}

	return spawns, capped
}
