package generation

import (
	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// MapBuilder is a generated level. Architects fill in the map, rooms and
// player start; LevelBuilder then adds the prefab, amulet, theme and spawns.
// Once returned from LevelBuilder it is complete and owned by the caller.
type MapBuilder struct {
	Map   *components.MapComponent
	Rooms []components.Rect // In the order the architect placed them

	// SpawnAnchors are architect-suggested monster spots: room centers and
	// prefab 'M' cells. The overlay drops any it covers.
	SpawnAnchors  []components.Point
	MonsterSpawns []components.Point

	PlayerStart components.Point
	AmuletStart components.Point
	GoalDepth   float32 // Walking distance from the player start to the amulet

	Theme     ThemeKind
	Architect ArchitectKind
	Prefab    *PrefabPlacement // nil when no prefab was stamped

	GoalDegenerate bool // Nothing but the start was reachable; amulet sits on the player
	SpawnsCapped   bool // Fewer spawn candidates than requested monsters
}

func newMapBuilder(kind ArchitectKind, cfg config.LevelConfig) *MapBuilder {
	return &MapBuilder{
		Map:       components.NewMapComponent(cfg.Width, cfg.Height),
		Architect: kind,
	}
}

func (mb *MapBuilder) fill(tile components.TileType) {
	mb.Map.Fill(tile)
}

// TileMapper returns the theme used to draw this level
func (mb *MapBuilder) TileMapper() components.TileMapper {
	return mb.Theme
}
