package components

import (
	"ebiten-dungeon/ecs"
)

// Define component IDs for the level viewer
const (
	Position ecs.ComponentID = iota
	Renderable
	Player
	Monster
	Amulet
	MapComponentID
	Appearance // Tile mapping (theme) used to draw the map
	Name       // Name component for storing entity display names
)
