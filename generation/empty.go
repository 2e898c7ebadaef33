package generation

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// buildEmpty creates an open level with no walls at all, mostly useful for tests
func buildEmpty(cfg config.LevelConfig) *MapBuilder {
	mb := newMapBuilder(ArchitectEmpty, cfg)
	mb.fill(components.TileFloor)
	mb.PlayerStart = mb.Map.Center()
	return mb
}
