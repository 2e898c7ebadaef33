package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

func TestFortressPrefab(t *testing.T) {
	assert.Equal(t, "fortress", Fortress.Name)
	assert.Equal(t, 12, Fortress.Width)
	assert.Equal(t, 11, Fortress.Height)
	require.Len(t, Fortress.Cells, 12*11)

	var spawns []components.Point
	walls := 0
	for _, cell := range Fortress.Cells {
		if cell.Spawn {
			spawns = append(spawns, cell.Offset)
			assert.Equal(t, components.TileFloor, cell.Tile)
		}
		if cell.Tile == components.TileWall {
			walls++
		}
	}
	assert.Equal(t, []components.Point{{X: 5, Y: 3}, {X: 2, Y: 5}, {X: 9, Y: 5}}, spawns)
	assert.Equal(t, 32, walls)
}

func TestParsePrefabErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		layout string
		errMsg string
	}{
		{"empty", "\n\n  \n", "empty"},
		{"ragged", "###\n##\n", "row 1"},
		{"unknown rune", "#?#\n", "no idea"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePrefab(tc.name, tc.layout)
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}

	assert.Panics(t, func() { MustParsePrefab("bad", "x") })
}

func TestParsePrefabWindowsLineEndings(t *testing.T) {
	p, err := ParsePrefab("vault", "\r\n#>#\r\n#M#\r\n")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 2, p.Height)
	assert.Equal(t, components.TileExit, p.Cells[1].Tile)
	assert.True(t, p.Cells[4].Spawn)
}

func TestLoadPrefab(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "shrine.txt", []byte("#-#\n-M-\n#-#\n"), 0644))

	p, err := LoadPrefab(fs, "shrine.txt")
	require.NoError(t, err)
	assert.Equal(t, "shrine", p.Name)
	assert.Equal(t, 3, p.Width)
	assert.Equal(t, 3, p.Height)

	_, err = LoadPrefab(fs, "missing.txt")
	assert.Error(t, err)
}

func TestApplyPrefab(t *testing.T) {
	cfg := config.DefaultLevelConfig()

	for seed := int64(1); seed <= 10; seed++ {
		mb := buildEmpty(cfg)

		// Sprinkle anchors over the whole map
		var before []components.Point
		for y := 1; y < cfg.Height; y += 3 {
			for x := 1; x < cfg.Width; x += 3 {
				before = append(before, components.Point{X: x, Y: y})
			}
		}
		mb.SpawnAnchors = append([]components.Point(nil), before...)

		placement, ok := ApplyPrefab(mb, Fortress, cfg, NewRand(seed))
		require.True(t, ok, "seed %d", seed)
		fp := placement.Footprint
		assert.Equal(t, "fortress", placement.Name)
		assert.Equal(t, Fortress.Width, fp.Width())
		assert.Equal(t, Fortress.Height, fp.Height())
		assert.False(t, fp.Contains(mb.PlayerStart))
		assert.GreaterOrEqual(t, fp.X1, 0)
		assert.GreaterOrEqual(t, fp.Y1, 0)
		assert.LessOrEqual(t, fp.X2, cfg.Width)
		assert.LessOrEqual(t, fp.Y2, cfg.Height)

		origin := components.Point{X: fp.X1, Y: fp.Y1}
		for _, cell := range Fortress.Cells {
			tile, ok := mb.Map.Tile(origin.Add(cell.Offset))
			require.True(t, ok)
			require.Equal(t, cell.Tile, tile)
		}

		var kept []components.Point
		for _, p := range before {
			if !fp.Contains(p) {
				kept = append(kept, p)
			}
		}
		want := append(kept,
			origin.Add(components.Point{X: 5, Y: 3}),
			origin.Add(components.Point{X: 2, Y: 5}),
			origin.Add(components.Point{X: 9, Y: 5}),
		)
		assert.Equal(t, want, mb.SpawnAnchors, "seed %d", seed)
	}
}

func TestApplyPrefabNoRoom(t *testing.T) {
	cfg := config.DefaultLevelConfig()

	t.Run("prefab covers the player", func(t *testing.T) {
		cfg := cfg
		cfg.Width, cfg.Height = Fortress.Width, Fortress.Height
		mb := buildEmpty(cfg)
		before := mb.Map.Clone()

		_, ok := ApplyPrefab(mb, Fortress, cfg, NewRand(1))
		assert.False(t, ok)
		assert.Equal(t, before, mb.Map)
	})

	t.Run("prefab larger than the map", func(t *testing.T) {
		cfg := cfg
		cfg.Width, cfg.Height = 8, 8
		mb := buildEmpty(cfg)
		_, ok := ApplyPrefab(mb, Fortress, cfg, NewRand(1))
		assert.False(t, ok)
	})

	t.Run("too close to the player", func(t *testing.T) {
		cfg := cfg
		cfg.PrefabMinDepth = 500
		cfg.PrefabMaxDepth = 600
		mb := buildEmpty(cfg)
		_, ok := ApplyPrefab(mb, Fortress, cfg, NewRand(1))
		assert.False(t, ok)
		assert.Zero(t, mb.Map.CountTiles(components.TileWall))
	})
}
