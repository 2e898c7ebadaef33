package components

import (
	"image/color"
)

// TileType identifies what occupies a single map cell
type TileType int

// Tile types
const (
	TileWall TileType = iota
	TileFloor
	TileExit // Stairs down to the next level
)

// String returns a short name for the tile type, used in logs and test failures
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileExit:
		return "exit"
	default:
		return "other"
	}
}

// IsWalkable reports whether an entity may stand on the tile.
// Anything outside the known walkable kinds is treated as blocking.
func (t TileType) IsWalkable() bool {
	return t == TileFloor || t == TileExit
}

// MapComponent stores the level grid as a flat row-major slice.
// A cell (x, y) lives at index y*Width + x.
type MapComponent struct {
	Width  int
	Height int
	Tiles  []TileType
}

// NewMapComponent creates a new map with the given dimensions, filled with walls
func NewMapComponent(width, height int) *MapComponent {
	m := &MapComponent{
		Width:  width,
		Height: height,
		Tiles:  make([]TileType, width*height),
	}
	m.Fill(TileWall)
	return m
}

// Fill sets every cell of the map to the given tile type
func (m *MapComponent) Fill(tile TileType) {
	for i := range m.Tiles {
		m.Tiles[i] = tile
	}
}

// InBounds reports whether the point lies inside the map
func (m *MapComponent) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TryIdx converts a point to a tile index. The second return value is false
// when the point is outside the map, in which case the index must not be used.
func (m *MapComponent) TryIdx(p Point) (int, bool) {
	if !m.InBounds(p) {
		return -1, false
	}
	return p.Y*m.Width + p.X, true
}

// IndexToPoint converts a tile index back into map coordinates
func (m *MapComponent) IndexToPoint(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// Tile returns the tile at p, or false if p is out of bounds
func (m *MapComponent) Tile(p Point) (TileType, bool) {
	idx, ok := m.TryIdx(p)
	if !ok {
		return TileWall, false
	}
	return m.Tiles[idx], true
}

// SetTile sets the tile at the given position. Out of range points are ignored
// and reported by a false return.
func (m *MapComponent) SetTile(p Point, tile TileType) bool {
	idx, ok := m.TryIdx(p)
	if !ok {
		return false
	}
	m.Tiles[idx] = tile
	return true
}

// IsWall returns true if the tile at p is not walkable.
// Out of bounds is considered a wall.
func (m *MapComponent) IsWall(p Point) bool {
	return !m.IsWalkable(p)
}

// IsWalkable returns true if p is inside the map and its tile can be entered
func (m *MapComponent) IsWalkable(p Point) bool {
	tile, ok := m.Tile(p)
	return ok && tile.IsWalkable()
}

// CountTiles returns how many cells hold the given tile type
func (m *MapComponent) CountTiles(tile TileType) int {
	n := 0
	for _, t := range m.Tiles {
		if t == tile {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the map
func (m *MapComponent) Clone() *MapComponent {
	tiles := make([]TileType, len(m.Tiles))
	copy(tiles, m.Tiles)
	return &MapComponent{Width: m.Width, Height: m.Height, Tiles: tiles}
}

// Center returns the middle cell of the map
func (m *MapComponent) Center() Point {
	return Point{X: m.Width / 2, Y: m.Height / 2}
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // The character in the tileset (Code Page 437 layout)
	FG    color.Color // Foreground color
	BG    color.Color // Background color (optional)
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg color.Color) TileDefinition {
	return TileDefinition{
		Glyph: glyph,
		FG:    fg,
	}
}

// UnknownTileDefinition is drawn for tile types a theme does not know about
var UnknownTileDefinition = TileDefinition{
	Glyph: '?',
	FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
}
