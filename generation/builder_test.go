package generation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

type captureLog struct {
	messages []string
}

func (c *captureLog) add(message string) {
	c.messages = append(c.messages, message)
}

func (c *captureLog) count(substr string) int {
	n := 0
	for _, m := range c.messages {
		if strings.Contains(m, substr) {
			n++
		}
	}
	return n
}

func TestBuildProducesValidLevels(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	architects := map[ArchitectKind]int{}

	for seed := int64(1); seed <= 30; seed++ {
		logs := &captureLog{}
		mb, err := NewLevelBuilder(cfg, logs.add).Build(NewRand(seed))
		require.NoError(t, err, "seed %d", seed)

		requireValidLevel(t, mb, cfg)
		assert.NotEqual(t, ArchitectEmpty, mb.Architect)
		assert.Equal(t, 1, logs.count("Generated a"))
		architects[mb.Architect]++
	}

	assert.Len(t, architects, 3, "every architect should come up in 30 levels")
}

func TestBuildWithEveryArchitect(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	for _, k := range []ArchitectKind{ArchitectEmpty, ArchitectRooms, ArchitectDrunkardsWalk, ArchitectCellularAutomata} {
		t.Run(k.String(), func(t *testing.T) {
			mb, err := NewLevelBuilder(cfg, nil).BuildWith(k, NewRand(11))
			require.NoError(t, err)
			assert.Equal(t, k, mb.Architect)
			requireValidLevel(t, mb, cfg)
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	b := NewLevelBuilder(cfg, nil)

	for seed := int64(1); seed <= 5; seed++ {
		first, err := b.Build(NewRand(seed))
		require.NoError(t, err)
		second, err := b.Build(NewRand(seed))
		require.NoError(t, err)
		assert.Equal(t, first, second, "seed %d", seed)
	}
}

func TestBuildRoomsScenario(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	b := NewLevelBuilder(cfg, nil)
	b.SetPrefab(nil)

	mb, err := b.BuildWith(ArchitectRooms, NewRand(1))
	require.NoError(t, err)

	require.Len(t, mb.Rooms, 20)
	for i, a := range mb.Rooms {
		for _, c := range mb.Rooms[i+1:] {
			require.False(t, a.Intersects(c))
		}
	}
	assert.Equal(t, mb.Rooms[0].Center(), mb.PlayerStart)
	assert.Nil(t, mb.Prefab)

	df := NewDistanceField(mb.Map, mb.PlayerStart, cfg.MaxDistanceDepth)
	for _, room := range mb.Rooms {
		_, ok := df.Distance(room.Center())
		assert.True(t, ok, "room %v not connected", room)
	}
	requireValidLevel(t, mb, cfg)
}

func TestBuildStampsPrefab(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	mb, err := NewLevelBuilder(cfg, nil).BuildWith(ArchitectEmpty, NewRand(2))
	require.NoError(t, err)

	require.NotNil(t, mb.Prefab)
	assert.Equal(t, "fortress", mb.Prefab.Name)
	assert.Equal(t, 32, mb.Map.CountTiles(components.TileWall))
	assert.Len(t, mb.SpawnAnchors, 3)

	// The fortress gates are guarded
	for _, p := range mb.SpawnAnchors {
		if p != mb.AmuletStart && mb.PlayerStart.DistanceTo(p) > cfg.MonsterMinDistance {
			assert.Contains(t, mb.MonsterSpawns, p)
		}
	}
	assert.NotContains(t, mb.MonsterSpawns, mb.AmuletStart)
	requireValidLevel(t, mb, cfg)
}

func TestBuildExitAtGoal(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	cfg.ExitAtGoal = true

	mb, err := NewLevelBuilder(cfg, nil).BuildWith(ArchitectRooms, NewRand(4))
	require.NoError(t, err)

	tile, ok := mb.Map.Tile(mb.AmuletStart)
	require.True(t, ok)
	assert.Equal(t, components.TileExit, tile)
	assert.Equal(t, 1, mb.Map.CountTiles(components.TileExit))
	requireValidLevel(t, mb, cfg)
}

func TestBuildRetriesThenFails(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	cfg.Width, cfg.Height = 12, 12
	cfg.MaxRoomAttempts = 50
	cfg.MaxBuildAttempts = 3

	logs := &captureLog{}
	_, err := NewLevelBuilder(cfg, logs.add).BuildWith(ArchitectRooms, NewRand(1))
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrGenerationFailed))
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, ArchitectRooms, genErr.Architect)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, logs.count("WARNING: level attempt"))
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	cfg.Width = 4

	_, err := NewLevelBuilder(cfg, nil).Build(NewRand(1))
	require.Error(t, err)

	var verr *config.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "width", verr.Field)
	assert.False(t, errors.Is(err, ErrGenerationFailed))
}

func TestPlaceAmuletDegenerate(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	cfg.ExitAtGoal = true
	logs := &captureLog{}
	b := NewLevelBuilder(cfg, logs.add)

	mb := &MapBuilder{
		Map:         mapFromRows(t, "#####", "#.#.#", "#####"),
		PlayerStart: components.Point{X: 1, Y: 1},
	}
	b.placeAmulet(mb)

	assert.True(t, mb.GoalDegenerate)
	assert.Equal(t, mb.PlayerStart, mb.AmuletStart)
	assert.Equal(t, 1, logs.count("WARNING"))

	// The player keeps standing on floor
	tile, _ := mb.Map.Tile(mb.PlayerStart)
	assert.Equal(t, components.TileFloor, tile)
}

func TestBuildCapsSpawnsOnSmallLevels(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	cfg.Width, cfg.Height = 20, 16
	cfg.NumRooms = 3
	cfg.NumMonsters = 500

	logs := &captureLog{}
	b := NewLevelBuilder(cfg, logs.add)
	mb, err := b.BuildWith(ArchitectEmpty, NewRand(1))
	require.NoError(t, err)

	assert.True(t, mb.SpawnsCapped)
	assert.Less(t, len(mb.MonsterSpawns), 500)
	assert.Equal(t, 1, logs.count("monster spawns fit"))
	requireValidLevel(t, mb, cfg)
}
