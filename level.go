package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/src-d/go-billy.v4"

	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/spawners"
	"ebiten-dungeon/systems"
)

// noPrefab disables the prefab overlay when passed as -prefab
const noPrefab = "none"

// Options are the viewer settings taken from the command line
type Options struct {
	Seed       int64
	Architect  string // empty picks one at random for every level
	ConfigPath string
	PrefabPath string // empty keeps the built-in fortress
	Tileset    string
	Dump       bool
}

// newLevelBuilder loads the level config and prefab named in opts from fs
func newLevelBuilder(fs billy.Filesystem, opts Options, logFunc func(string)) (*generation.LevelBuilder, error) {
	cfg := config.DefaultLevelConfig()
	if opts.ConfigPath != "" {
		loaded, err := config.LoadLevelConfig(fs, opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	builder := generation.NewLevelBuilder(cfg, logFunc)
	switch {
	case strings.EqualFold(opts.PrefabPath, noPrefab):
		builder.SetPrefab(nil)
	case opts.PrefabPath != "":
		prefab, err := generation.LoadPrefab(fs, opts.PrefabPath)
		if err != nil {
			return nil, err
		}
		builder.SetPrefab(prefab)
	}
	return builder, nil
}

// architectChooser returns the function used to build each level
func architectChooser(name string) (func(*generation.LevelBuilder, generation.Rand) (*generation.MapBuilder, error), error) {
	if name == "" {
		return (*generation.LevelBuilder).Build, nil
	}
	kind, err := generation.ParseArchitectKind(name)
	if err != nil {
		return nil, err
	}
	return func(b *generation.LevelBuilder, rng generation.Rand) (*generation.MapBuilder, error) {
		return b.BuildWith(kind, rng)
	}, nil
}

// loadLevel replaces the world contents with a freshly built level
func loadLevel(world *ecs.World, mb *generation.MapBuilder, logFunc func(string)) error {
	world.Clear()
	_, err := spawners.NewLevelSpawner(world, logFunc).Populate(mb)
	return err
}

// dumpLevel writes one level as themed ASCII followed by a summary line
func dumpLevel(w io.Writer, mb *generation.MapBuilder) error {
	world := ecs.NewWorld()
	if err := loadLevel(world, mb, nil); err != nil {
		return err
	}
	frame, err := systems.ComposeFrame(world)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, frame.String()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "architect=%s theme=%s start=%d,%d amulet=%d,%d depth=%d monsters=%d\n",
		mb.Architect, mb.Theme,
		mb.PlayerStart.X, mb.PlayerStart.Y,
		mb.AmuletStart.X, mb.AmuletStart.Y,
		int(mb.GoalDepth), len(mb.MonsterSpawns))
	return err
}
