package generation

import (
	"fmt"
	"image/color"

	"ebiten-dungeon/components"
)

// ThemeKind selects how a level looks. It never changes what is walkable.
type ThemeKind int

const (
	ThemeDungeon ThemeKind = iota
	ThemeForest
)

var themes = []ThemeKind{ThemeDungeon, ThemeForest}

var (
	dungeonTiles = map[components.TileType]components.TileDefinition{
		components.TileFloor: components.NewTileDefinition('.', color.RGBA{64, 64, 64, 255}),
		components.TileWall:  components.NewTileDefinition('#', color.RGBA{128, 128, 128, 255}),
		components.TileExit:  components.NewTileDefinition('>', color.RGBA{255, 255, 255, 255}),
	}

	forestTiles = map[components.TileType]components.TileDefinition{
		components.TileFloor: components.NewTileDefinition(';', color.RGBA{0, 128, 0, 255}), // Grass
		components.TileWall:  components.NewTileDefinition('"', color.RGBA{0, 100, 0, 255}), // Trees
		components.TileExit:  components.NewTileDefinition('>', color.RGBA{255, 255, 255, 255}),
	}
)

func (t ThemeKind) String() string {
	switch t {
	case ThemeDungeon:
		return "dungeon"
	case ThemeForest:
		return "forest"
	default:
		return fmt.Sprintf("theme(%d)", int(t))
	}
}

// TileToRender returns the glyph and colors used to draw a tile
func (t ThemeKind) TileToRender(tile components.TileType) components.TileDefinition {
	table := dungeonTiles
	if t == ThemeForest {
		table = forestTiles
	}
	if def, exists := table[tile]; exists {
		return def
	}
	return components.UnknownTileDefinition
}

func randomTheme(rng Rand) ThemeKind {
	return themes[rangeInt(rng, 0, len(themes))]
}
