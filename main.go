package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"ebiten-dungeon/config"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/systems"
)

func logToTerminal(message string) {
	log.Print(message)
}

func parseFlags() Options {
	var opts Options
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&opts.Architect, "architect", "", "empty, rooms, drunkard or cellular (default: random per level)")
	flag.StringVar(&opts.ConfigPath, "config", "", "JSON level config overlaid on the defaults")
	flag.StringVar(&opts.PrefabPath, "prefab", "", "ASCII prefab file, or \"none\" to disable the fortress")
	flag.StringVar(&opts.Tileset, "tileset", "Nice_curses_12x12.png", "12x12 Code Page 437 tileset image")
	flag.BoolVar(&opts.Dump, "dump", false, "print one level as ASCII and exit")
	flag.Parse()

	if opts.Seed == 0 {
		opts.Seed = generation.NewTimeSeed()
	}
	return opts
}

func main() {
	opts := parseFlags()
	fs := osfs.New(".")

	if opts.Dump {
		builder, err := newLevelBuilder(fs, opts, logToTerminal)
		if err != nil {
			log.Fatal(err)
		}
		build, err := architectChooser(opts.Architect)
		if err != nil {
			log.Fatal(err)
		}
		mb, err := build(builder, generation.NewRand(opts.Seed))
		if err != nil {
			log.Fatal(err)
		}
		if err := dumpLevel(os.Stdout, mb); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Generator messages go to the on-screen log and the terminal
	logFunc := systems.GetMessageLog().Tee(logToTerminal)

	builder, err := newLevelBuilder(fs, opts, logFunc)
	if err != nil {
		log.Fatal(err)
	}

	tileset, err := systems.NewTileset(fs, opts.Tileset, config.TileSize)
	if err != nil {
		logFunc("WARNING: " + err.Error() + "; drawing without a tileset")
		tileset = nil
	}

	game, err := NewGame(builder, opts, tileset, logFunc)
	if err != nil {
		log.Fatal(err)
	}

	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Ebiten Dungeon")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
