package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
	"ebiten-dungeon/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	world        *ecs.World
	renderSystem *systems.RenderSystem
	builder      *generation.LevelBuilder
	build        func(*generation.LevelBuilder, generation.Rand) (*generation.MapBuilder, error)
	rng          generation.Rand
	logMessage   func(string)
	levels       int
}

// NewGame creates a new viewer and builds its first level
func NewGame(builder *generation.LevelBuilder, opts Options, tileset *systems.Tileset, logFunc func(string)) (*Game, error) {
	build, err := architectChooser(opts.Architect)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	renderSystem := systems.NewRenderSystem(tileset)
	world.AddSystem(renderSystem)

	game := &Game{
		world:        world,
		renderSystem: renderSystem,
		builder:      builder,
		build:        build,
		rng:          generation.NewRand(opts.Seed),
		logMessage:   logFunc,
	}

	logFunc(fmt.Sprintf("INFO: Seed %d", opts.Seed))
	game.nextLevel()

	return game, nil
}

// nextLevel builds a level from the game's random stream and loads it.
// A failed build keeps the previous level on screen.
func (g *Game) nextLevel() {
	mb, err := g.build(g.builder, g.rng)
	if err != nil {
		g.logMessage(fmt.Sprintf("ERROR: %v", err))
		return
	}

	if err := loadLevel(g.world, mb, g.logMessage); err != nil {
		g.logMessage(fmt.Sprintf("ERROR: %v", err))
		return
	}
	g.levels++
}

// Update updates the game state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.nextLevel()
	}

	g.world.Update(1.0 / 60.0) // passing approximate dt value
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(g.world, screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d  FPS: %.1f", g.levels, ebiten.ActualFPS()),
		config.WindowWidth-140, 0)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
