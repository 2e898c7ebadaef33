package systems

import (
	"errors"
	"image/color"
	"slices"
	"strings"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
)

// ErrNoLevel is returned when the world holds no map entity to draw
var ErrNoLevel = errors.New("no map entity in world")

// Cell is one drawn grid position
type Cell struct {
	Glyph rune
	FG    color.Color
	BG    color.Color
}

// Frame is the composed picture of a level: themed map tiles with the
// renderable entities drawn over them.
type Frame struct {
	Width, Height int
	Cells         []Cell
}

// At returns the cell at x, y; the zero Cell when out of range
func (f *Frame) At(x, y int) Cell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// String renders the frame glyphs row by row
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			sb.WriteRune(f.Cells[y*f.Width+x].Glyph)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type placedRenderable struct {
	pos  *components.PositionComponent
	rend *components.RenderableComponent
}

// ComposeFrame builds the frame for the first map entity in the world
func ComposeFrame(world *ecs.World) (*Frame, error) {
	mapEntities := world.GetEntitiesWithTag("map")
	if len(mapEntities) == 0 {
		return nil, ErrNoLevel
	}
	mapID := mapEntities[0].ID

	mapComp, exists := world.GetComponent(mapID, components.MapComponentID)
	if !exists {
		return nil, errors.New("map entity has no map component")
	}
	mapData := mapComp.(*components.MapComponent)

	// A map without a theme still draws, with the fallback glyph everywhere
	tileMapping := components.NewTileMappingComponent(nil)
	if comp, exists := world.GetComponent(mapID, components.Appearance); exists {
		tileMapping = comp.(*components.TileMappingComponent)
	}

	frame := &Frame{
		Width:  mapData.Width,
		Height: mapData.Height,
		Cells:  make([]Cell, len(mapData.Tiles)),
	}
	for i, tile := range mapData.Tiles {
		def := tileMapping.GetTileDefinition(tile)
		frame.Cells[i] = Cell{Glyph: def.Glyph, FG: def.FG, BG: def.BG}
	}

	var placed []placedRenderable
	for _, entity := range world.GetEntitiesWithComponents(components.Position, components.Renderable) {
		posComp, _ := world.GetComponent(entity.ID, components.Position)
		rendComp, _ := world.GetComponent(entity.ID, components.Renderable)
		placed = append(placed, placedRenderable{
			pos:  posComp.(*components.PositionComponent),
			rend: rendComp.(*components.RenderableComponent),
		})
	}
	// Higher layers last so they end up on top; equal layers keep entity order
	slices.SortStableFunc(placed, func(a, b placedRenderable) int {
		return a.rend.Layer - b.rend.Layer
	})

	for _, p := range placed {
		idx, ok := mapData.TryIdx(p.pos.Point())
		if !ok {
			continue
		}
		bg := frame.Cells[idx].BG
		if p.rend.BG != nil {
			bg = p.rend.BG
		}
		frame.Cells[idx] = Cell{Glyph: p.rend.Char, FG: p.rend.FG, BG: bg}
	}

	return frame, nil
}
