package generation

import (
	"fmt"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// cardinals are the four directions a walker (and the distance field) can move in
var cardinals = []components.Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// buildDrunkardsWalk digs caves by letting random walkers stumble around until
// enough of the map is floor. Walkers that end up cut off from the start are
// filled back in so the level stays a single connected cave.
func buildDrunkardsWalk(cfg config.LevelConfig, rng Rand) (*MapBuilder, error) {
	mb := newMapBuilder(ArchitectDrunkardsWalk, cfg)
	mb.fill(components.TileWall)

	center := mb.Map.Center()
	drunkard(mb.Map, center, cfg.DrunkardStaggerDistance, rng)

	desiredFloor := int(float64(len(mb.Map.Tiles)) * cfg.DrunkardFloorFraction)
	walkers := 1
	for mb.Map.CountTiles(components.TileFloor) < desiredFloor {
		if walkers >= cfg.DrunkardMaxWalkers {
			return nil, &GenerationError{
				Architect: ArchitectDrunkardsWalk,
				Reason: fmt.Sprintf("%d walkers dug %d of %d floor tiles",
					walkers, mb.Map.CountTiles(components.TileFloor), desiredFloor),
			}
		}

		start := components.Point{
			X: rangeInt(rng, 0, mb.Map.Width),
			Y: rangeInt(rng, 0, mb.Map.Height),
		}
		drunkard(mb.Map, start, cfg.DrunkardStaggerDistance, rng)
		walkers++

		cullUnreachable(mb.Map, center)
	}

	mb.PlayerStart = center
	return mb, nil
}

// drunkard carves floor along a random walk from start. The walker stops when
// it leaves the map or has taken staggerDistance steps.
func drunkard(m *components.MapComponent, start components.Point, staggerDistance int, rng Rand) {
	pos := start
	for staggered := 0; ; staggered++ {
		m.SetTile(pos, components.TileFloor)

		pos = pos.Add(cardinals[rangeInt(rng, 0, len(cardinals))])
		if !m.InBounds(pos) || staggered >= staggerDistance {
			return
		}
	}
}

// cullUnreachable turns every floor tile that cannot be walked to from start
// back into wall, returning how many were removed. The flood has no depth
// cutoff: a path can never be longer than the number of cells.
func cullUnreachable(m *components.MapComponent, start components.Point) int {
	df := NewDistanceField(m, start, float32(len(m.Tiles)))
	culled := 0
	for idx, tile := range m.Tiles {
		if tile == components.TileFloor && !df.Reachable(idx) {
			m.Tiles[idx] = components.TileWall
			culled++
		}
	}
	return culled
}
