package components

import (
	"image/color"
)

// PositionComponent stores entity position
type PositionComponent struct {
	X, Y int
}

// NewPositionComponent creates a position component from a map point
func NewPositionComponent(p Point) *PositionComponent {
	return &PositionComponent{X: p.X, Y: p.Y}
}

// Point returns the position as a map point
func (p *PositionComponent) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Char rune        // The character in the tileset
	FG   color.Color // Foreground color
	BG   color.Color // Background color (optional)
	// Layer orders drawing; higher layers are drawn on top
	Layer int
}

// NewRenderableComponent creates a renderable component using a character code
func NewRenderableComponent(glyph rune, fg color.Color, layer int) *RenderableComponent {
	return &RenderableComponent{
		Char:  glyph,
		FG:    fg,
		BG:    color.RGBA{0, 0, 0, 255}, // Default black background
		Layer: layer,
	}
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// MonsterComponent marks an enemy placed on one of the level's spawn points
type MonsterComponent struct {
	SpawnIndex int // Position of the spawn point in the level's spawn list
}

// AmuletComponent marks the win-condition item placed at the level goal
type AmuletComponent struct {
	Depth float32 // Walking distance from the player start
}

// TileMapper converts a tile type into its on-screen appearance.
// Level themes implement it.
type TileMapper interface {
	TileToRender(tile TileType) TileDefinition
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Theme TileMapper
}

// NewTileMappingComponent creates a tile mapping backed by a theme
func NewTileMappingComponent(theme TileMapper) *TileMappingComponent {
	return &TileMappingComponent{Theme: theme}
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tile TileType) TileDefinition {
	if t.Theme == nil {
		return UnknownTileDefinition
	}
	return t.Theme.TileToRender(tile)
}

// NameComponent is the display name of an entity or level
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{Name: name}
}
