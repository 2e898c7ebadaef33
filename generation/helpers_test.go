package generation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// mapFromRows builds a map from ASCII rows: '#' wall, '.' floor
func mapFromRows(t *testing.T, rows ...string) *components.MapComponent {
	t.Helper()
	m := components.NewMapComponent(len(rows[0]), len(rows))
	for y, row := range rows {
		require.Len(t, row, m.Width, "row %d", y)
		for x, c := range row {
			if c == '.' {
				m.SetTile(components.Point{X: x, Y: y}, components.TileFloor)
			}
		}
	}
	return m
}

// floodWalkable collects every walkable cell connected to start, independently
// of DistanceField
func floodWalkable(m *components.MapComponent, start components.Point) mapset.Set[components.Point] {
	seen := mapset.New[components.Point]()
	if !m.IsWalkable(start) {
		return seen
	}
	stack := []components.Point{start}
	seen.Put(start)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dir := range cardinals {
			n := p.Add(dir)
			if m.IsWalkable(n) && !seen.Has(n) {
				seen.Put(n)
				stack = append(stack, n)
			}
		}
	}
	return seen
}

// requireValidLevel checks everything a finished level promises the game
func requireValidLevel(t *testing.T, mb *MapBuilder, cfg config.LevelConfig) {
	t.Helper()

	start, ok := mb.Map.Tile(mb.PlayerStart)
	require.True(t, ok, "player start off the map")
	require.Equal(t, components.TileFloor, start, "player start %v", mb.PlayerStart)

	df := NewDistanceField(mb.Map, mb.PlayerStart, cfg.MaxDistanceDepth)
	goalIdx, ok := mb.Map.TryIdx(mb.AmuletStart)
	require.True(t, ok, "amulet off the map")
	goalDepth, ok := df.Distance(mb.AmuletStart)
	require.True(t, ok, "amulet %v unreachable", mb.AmuletStart)
	require.Equal(t, mb.GoalDepth, goalDepth)
	for idx, d := range df.Depths {
		if d >= Unreachable {
			continue
		}
		require.LessOrEqual(t, d, goalDepth, "cell %v is further than the amulet", mb.Map.IndexToPoint(idx))
		if d == goalDepth {
			require.GreaterOrEqual(t, idx, goalIdx, "tie should go to the lowest index")
		}
	}

	require.LessOrEqual(t, len(mb.MonsterSpawns), cfg.NumMonsters)
	if !mb.SpawnsCapped {
		require.Len(t, mb.MonsterSpawns, cfg.NumMonsters)
	}
	seen := mapset.New[components.Point]()
	for _, p := range mb.MonsterSpawns {
		tile, ok := mb.Map.Tile(p)
		require.True(t, ok)
		require.Equal(t, components.TileFloor, tile, "spawn %v", p)
		require.Greater(t, mb.PlayerStart.DistanceTo(p), cfg.MonsterMinDistance, "spawn %v", p)
		require.False(t, seen.Has(p), "duplicate spawn %v", p)
		seen.Put(p)
	}

	require.False(t, seen.Has(mb.AmuletStart), "monster spawned on the amulet")

	// Every eligible anchor is guarded while there are monsters to spare
	guarded := mapset.New[components.Point]()
	for _, p := range mb.SpawnAnchors {
		require.True(t, mb.Map.IsWalkable(p), "stale spawn anchor %v", p)
		tile, _ := mb.Map.Tile(p)
		if tile == components.TileFloor && p != mb.AmuletStart && mb.PlayerStart.DistanceTo(p) > cfg.MonsterMinDistance {
			guarded.Put(p)
		}
	}
	if guarded.Size() <= cfg.NumMonsters {
		guarded.Each(func(p components.Point) {
			require.True(t, seen.Has(p), "anchor %v has no monster", p)
		})
	}
}
