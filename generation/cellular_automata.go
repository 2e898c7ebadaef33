package generation

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// buildCellularAutomata grows organic caves from random noise
func buildCellularAutomata(cfg config.LevelConfig, rng Rand) (*MapBuilder, error) {
	mb := newMapBuilder(ArchitectCellularAutomata, cfg)
	randomNoiseMap(mb.Map, cfg.CellularWallChance, rng)

	for i := 0; i < cfg.CellularIterations; i++ {
		smooth(mb.Map, cfg.CellularNeighborThreshold)
	}

	start, ok := findStart(mb.Map)
	if !ok {
		return nil, &GenerationError{
			Architect: ArchitectCellularAutomata,
			Reason:    "smoothing left no floor tiles",
		}
	}
	mb.PlayerStart = start

	// Isolated pockets would only hold monsters nobody can reach
	cullUnreachable(mb.Map, start)

	return mb, nil
}

// randomNoiseMap makes each cell a wall with the given chance, floor otherwise
func randomNoiseMap(m *components.MapComponent, wallChance float64, rng Rand) {
	for i := range m.Tiles {
		if rng.Float64() < wallChance {
			m.Tiles[i] = components.TileWall
		} else {
			m.Tiles[i] = components.TileFloor
		}
	}
}

// countNeighbors counts the walls among the 8 cells around p.
// Cells off the edge of the map count as walls.
func countNeighbors(m *components.MapComponent, p components.Point) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			tile, ok := m.Tile(components.Point{X: p.X + dx, Y: p.Y + dy})
			if !ok || tile == components.TileWall {
				count++
			}
		}
	}
	return count
}

// smooth runs one cellular automata iteration over the whole map.
// Every cell is decided from the previous generation, never a half-updated one.
func smooth(m *components.MapComponent, threshold int) {
	next := make([]components.TileType, len(m.Tiles))
	for idx := range m.Tiles {
		if countNeighbors(m, m.IndexToPoint(idx)) > threshold {
			next[idx] = components.TileWall
		} else {
			next[idx] = components.TileFloor
		}
	}
	m.Tiles = next
}

// findStart returns the floor tile closest to the center of the map,
// preferring the lowest index when several are equally close
func findStart(m *components.MapComponent) (components.Point, bool) {
	center := m.Center()
	best := -1
	var bestDistance float32
	for idx, tile := range m.Tiles {
		if tile != components.TileFloor {
			continue
		}
		d := center.DistanceTo(m.IndexToPoint(idx))
		if best < 0 || d < bestDistance {
			best = idx
			bestDistance = d
		}
	}
	if best < 0 {
		return components.Point{}, false
	}
	return m.IndexToPoint(best), true
}
