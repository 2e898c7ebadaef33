package generation

import (
	"cmp"
	"fmt"
	"slices"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// Room sizes are drawn from [minRoomSize, maxRoomSize)
const (
	minRoomSize = 2
	maxRoomSize = 10
)

// buildRooms scatters non-overlapping rectangular rooms over a solid map and
// joins them with L-shaped corridors
func buildRooms(cfg config.LevelConfig, rng Rand) (*MapBuilder, error) {
	mb := newMapBuilder(ArchitectRooms, cfg)
	mb.fill(components.TileWall)

	if err := buildRandomRooms(mb, cfg, rng); err != nil {
		return nil, err
	}
	buildCorridors(mb, rng)

	mb.PlayerStart = mb.Rooms[0].Center()
	for _, room := range mb.Rooms[1:] {
		mb.SpawnAnchors = append(mb.SpawnAnchors, room.Center())
	}

	return mb, nil
}

// buildRandomRooms keeps proposing rooms until cfg.NumRooms of them fit
// without overlapping, or the attempt budget runs out
func buildRandomRooms(mb *MapBuilder, cfg config.LevelConfig, rng Rand) error {
	width, height := mb.Map.Width, mb.Map.Height

	for attempts := 0; len(mb.Rooms) < cfg.NumRooms; attempts++ {
		if attempts >= cfg.MaxRoomAttempts {
			return &GenerationError{
				Architect: ArchitectRooms,
				Reason: fmt.Sprintf("placed %d of %d rooms in %d attempts",
					len(mb.Rooms), cfg.NumRooms, attempts),
			}
		}

		room := components.NewRectWithSize(
			rangeInt(rng, 1, width-10),
			rangeInt(rng, 1, height-10),
			rangeInt(rng, minRoomSize, maxRoomSize),
			rangeInt(rng, minRoomSize, maxRoomSize),
		)

		overlap := false
		for _, r := range mb.Rooms {
			if r.Intersects(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		// Carve the room, never touching the outer border
		room.ForEach(func(p components.Point) {
			if p.X > 0 && p.X < width-1 && p.Y > 0 && p.Y < height-1 {
				mb.Map.SetTile(p, components.TileFloor)
			}
		})
		mb.Rooms = append(mb.Rooms, room)
	}

	return nil
}

// buildCorridors connects the rooms left to right. The room list itself keeps
// placement order; only a copy is sorted.
func buildCorridors(mb *MapBuilder, rng Rand) {
	rooms := slices.Clone(mb.Rooms)
	slices.SortStableFunc(rooms, func(a, b components.Rect) int {
		return cmp.Compare(a.Center().X, b.Center().X)
	})

	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1].Center()
		next := rooms[i].Center()

		// Randomly choose between horizontal-first or vertical-first
		if rangeInt(rng, 0, 2) == 1 {
			applyHorizontalTunnel(mb.Map, prev.X, next.X, prev.Y)
			applyVerticalTunnel(mb.Map, prev.Y, next.Y, next.X)
		} else {
			applyVerticalTunnel(mb.Map, prev.Y, next.Y, prev.X)
			applyHorizontalTunnel(mb.Map, prev.X, next.X, next.Y)
		}
	}
}

// applyHorizontalTunnel carves floor from x1 to x2 at y; cells off the map are skipped
func applyHorizontalTunnel(m *components.MapComponent, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(components.Point{X: x, Y: y}, components.TileFloor)
	}
}

// applyVerticalTunnel carves floor from y1 to y2 at x; cells off the map are skipped
func applyVerticalTunnel(m *components.MapComponent, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(components.Point{X: x, Y: y}, components.TileFloor)
	}
}
