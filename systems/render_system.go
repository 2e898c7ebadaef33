package systems

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
)

// RenderSystem draws the loaded level and the message log
type RenderSystem struct {
	tileset  *Tileset // nil draws solid blocks and debug text
	frame    *Frame
	frameErr error
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(tileset *Tileset) *RenderSystem {
	return &RenderSystem{tileset: tileset}
}

// Update recomposes the level frame from the world
func (s *RenderSystem) Update(world *ecs.World, dt float64) {
	s.frame, s.frameErr = ComposeFrame(world)
}

// Frame returns the frame composed by the last Update
func (s *RenderSystem) Frame() (*Frame, error) {
	return s.frame, s.frameErr
}

// Draw renders the level frame and the status panel
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	if s.frame == nil {
		msg := "No level loaded"
		if s.frameErr != nil {
			msg = fmt.Sprintf("No level loaded: %v", s.frameErr)
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	} else {
		s.drawFrame(screen)
	}

	s.drawStatusPanel(world, screen)
}

// drawFrame draws the part of the frame that fits the game screen
func (s *RenderSystem) drawFrame(screen *ebiten.Image) {
	width := min(s.frame.Width, config.GameScreenWidth)
	height := min(s.frame.Height, config.GameScreenHeight)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := s.frame.At(x, y)
			if cell.BG != nil {
				s.fillCell(screen, x, y, cell.BG)
			}
			if s.tileset != nil {
				s.tileset.DrawTile(screen, cell.Glyph, x, y, cell.FG)
			} else if cell.Glyph != ' ' && cell.FG != nil {
				s.fillCell(screen, x, y, cell.FG)
			}
		}
	}
}

func (s *RenderSystem) fillCell(screen *ebiten.Image, x, y int, clr color.Color) {
	size := config.TileSize
	if s.tileset != nil {
		size = s.tileset.TileSize
	}
	r := image.Rect(x*size, y*size, (x+1)*size, (y+1)*size)
	screen.SubImage(r).(*ebiten.Image).Fill(clr)
}

// drawStatusPanel draws the level name, controls and recent messages below the map
func (s *RenderSystem) drawStatusPanel(world *ecs.World, screen *ebiten.Image) {
	lines := make([]ColoredMessage, 0, config.ScreenHeight-config.GameScreenHeight)

	title := "No level"
	if mapEntities := world.GetEntitiesWithTag("map"); len(mapEntities) > 0 {
		if comp, exists := world.GetComponent(mapEntities[0].ID, components.Name); exists {
			title = comp.(*components.NameComponent).Name
		}
	}
	lines = append(lines, ColoredMessage{
		Text: title + "  |  Space/R: new level  F: fullscreen  Esc: quit",
		Type: MessageTypeInfo,
	})

	// Oldest of the shown messages on top
	recent := GetMessageLog().RecentMessages(cap(lines) - 1)
	for i := len(recent) - 1; i >= 0; i-- {
		lines = append(lines, recent[i])
	}

	for i, line := range lines {
		y := config.GameScreenHeight + i
		if s.tileset != nil {
			s.tileset.DrawString(screen, line.Text, 0, y, line.GetColor())
		} else {
			ebitenutil.DebugPrintAt(screen, line.Text, 0, y*config.TileSize)
		}
	}
}
