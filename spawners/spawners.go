package spawners

import (
	"fmt"
	"image/color"

	"ebiten-dungeon/components"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
)

// Draw layers, lowest first
const (
	LayerItems = iota + 1
	LayerMonsters
	LayerPlayer
)

// monsterTemplate describes one kind of monster the viewer can place
type monsterTemplate struct {
	Name  string
	Glyph rune
	Color color.RGBA
}

// Monsters are assigned round-robin over the spawn list so the same level
// always gets the same roster.
var monsterRoster = []monsterTemplate{
	{Name: "Goblin", Glyph: 'g', Color: color.RGBA{80, 200, 80, 255}},
	{Name: "Orc", Glyph: 'o', Color: color.RGBA{200, 80, 60, 255}},
	{Name: "Ogre", Glyph: 'O', Color: color.RGBA{180, 140, 60, 255}},
	{Name: "Ettin", Glyph: 'E', Color: color.RGBA{170, 90, 200, 255}},
}

// LevelSpawner turns a generated level into entities
type LevelSpawner struct {
	world      *ecs.World
	logMessage func(string) // Function for logging messages
}

// NewLevelSpawner creates a new level spawner
func NewLevelSpawner(world *ecs.World, logFunc func(string)) *LevelSpawner {
	return &LevelSpawner{
		world:      world,
		logMessage: logFunc,
	}
}

// Populate creates the map, player, amulet and monster entities for a level.
// It returns the map entity.
func (s *LevelSpawner) Populate(mb *generation.MapBuilder) (*ecs.Entity, error) {
	if mb == nil || mb.Map == nil {
		return nil, fmt.Errorf("populate: level has no map")
	}

	mapEntity := s.CreateMap(mb)
	s.CreatePlayer(mb.PlayerStart)
	s.CreateAmulet(mb.AmuletStart, mb.GoalDepth)
	for i, spawn := range mb.MonsterSpawns {
		s.CreateMonster(spawn, i)
	}

	s.log(fmt.Sprintf("INFO: Populated %s level: %d monsters, amulet %d steps from start",
		mb.Architect, len(mb.MonsterSpawns), int(mb.GoalDepth)))
	return mapEntity, nil
}

// CreateMap creates the entity holding the tile grid and its theme
func (s *LevelSpawner) CreateMap(mb *generation.MapBuilder) *ecs.Entity {
	mapEntity := s.world.CreateEntity("map")
	s.world.AddComponent(mapEntity.ID, components.MapComponentID, mb.Map)
	s.world.AddComponent(mapEntity.ID, components.Appearance, components.NewTileMappingComponent(mb.TileMapper()))
	s.world.AddComponent(mapEntity.ID, components.Name,
		components.NewNameComponent(fmt.Sprintf("%s (%s)", mb.Architect, mb.Theme)))
	return mapEntity
}

// CreatePlayer creates a player entity at the given position
func (s *LevelSpawner) CreatePlayer(p components.Point) *ecs.Entity {
	playerEntity := s.world.CreateEntity("player")

	s.world.AddComponent(playerEntity.ID, components.Position, components.NewPositionComponent(p))
	s.world.AddComponent(playerEntity.ID, components.Renderable,
		components.NewRenderableComponent('@', color.RGBA{255, 255, 255, 255}, LayerPlayer))
	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{})
	s.world.AddComponent(playerEntity.ID, components.Name, components.NewNameComponent("Player"))

	s.log(fmt.Sprintf("Player created at %d,%d", p.X, p.Y))
	return playerEntity
}

// CreateAmulet creates the amulet entity at the level goal
func (s *LevelSpawner) CreateAmulet(p components.Point, depth float32) *ecs.Entity {
	amuletEntity := s.world.CreateEntity("item", "amulet")

	s.world.AddComponent(amuletEntity.ID, components.Position, components.NewPositionComponent(p))
	s.world.AddComponent(amuletEntity.ID, components.Renderable,
		components.NewRenderableComponent('|', color.RGBA{255, 215, 0, 255}, LayerItems))
	s.world.AddComponent(amuletEntity.ID, components.Amulet, &components.AmuletComponent{Depth: depth})
	s.world.AddComponent(amuletEntity.ID, components.Name, components.NewNameComponent("Amulet of Yala"))
	return amuletEntity
}

// CreateMonster creates a monster for the spawn point at index
func (s *LevelSpawner) CreateMonster(p components.Point, index int) *ecs.Entity {
	template := monsterRoster[index%len(monsterRoster)]
	monsterEntity := s.world.CreateEntity("monster")

	s.world.AddComponent(monsterEntity.ID, components.Position, components.NewPositionComponent(p))
	s.world.AddComponent(monsterEntity.ID, components.Renderable,
		components.NewRenderableComponent(template.Glyph, template.Color, LayerMonsters))
	s.world.AddComponent(monsterEntity.ID, components.Monster, &components.MonsterComponent{SpawnIndex: index})
	s.world.AddComponent(monsterEntity.ID, components.Name, components.NewNameComponent(template.Name))
	return monsterEntity
}

func (s *LevelSpawner) log(message string) {
	if s.logMessage != nil {
		s.logMessage(message)
	}
}
