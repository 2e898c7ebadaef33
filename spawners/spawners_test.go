package spawners

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
	"ebiten-dungeon/ecs"
	"ebiten-dungeon/generation"
)

func buildLevel(t *testing.T, seed int64) *generation.MapBuilder {
	t.Helper()
	builder := generation.NewLevelBuilder(config.DefaultLevelConfig(), nil)
	mb, err := builder.BuildWith(generation.ArchitectRooms, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return mb
}

func positionOf(t *testing.T, world *ecs.World, entity *ecs.Entity) components.Point {
	t.Helper()
	comp, ok := world.GetComponent(entity.ID, components.Position)
	require.True(t, ok)
	return comp.(*components.PositionComponent).Point()
}

func TestPopulate(t *testing.T) {
	mb := buildLevel(t, 7)
	world := ecs.NewWorld()
	var logs []string
	spawner := NewLevelSpawner(world, func(msg string) { logs = append(logs, msg) })

	mapEntity, err := spawner.Populate(mb)
	require.NoError(t, err)

	mapComp, ok := world.GetComponent(mapEntity.ID, components.MapComponentID)
	require.True(t, ok)
	assert.Same(t, mb.Map, mapComp)

	appearance, ok := world.GetComponent(mapEntity.ID, components.Appearance)
	require.True(t, ok)
	tiles := appearance.(*components.TileMappingComponent)
	assert.Equal(t, mb.Theme.TileToRender(components.TileWall), tiles.GetTileDefinition(components.TileWall))

	players := world.GetEntitiesWithTag("player")
	require.Len(t, players, 1)
	assert.Equal(t, mb.PlayerStart, positionOf(t, world, players[0]))

	amulets := world.GetEntitiesWithTag("amulet")
	require.Len(t, amulets, 1)
	assert.Equal(t, mb.AmuletStart, positionOf(t, world, amulets[0]))
	amulet, ok := world.GetComponent(amulets[0].ID, components.Amulet)
	require.True(t, ok)
	assert.Equal(t, mb.GoalDepth, amulet.(*components.AmuletComponent).Depth)

	monsters := world.GetEntitiesWithComponents(components.Monster)
	require.Len(t, monsters, len(mb.MonsterSpawns))
	for i, monster := range monsters {
		assert.Equal(t, mb.MonsterSpawns[i], positionOf(t, world, monster))
		comp, _ := world.GetComponent(monster.ID, components.Monster)
		assert.Equal(t, i, comp.(*components.MonsterComponent).SpawnIndex)
	}

	assert.Len(t, world.GetEntitiesWithComponents(components.Position, components.Renderable), len(mb.MonsterSpawns)+2)
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[len(logs)-1], "INFO: Populated rooms level")
}

func TestPopulateRejectsEmptyLevel(t *testing.T) {
	world := ecs.NewWorld()
	_, err := NewLevelSpawner(world, nil).Populate(&generation.MapBuilder{})
	assert.Error(t, err)
	assert.Zero(t, world.EntityCount())
}

func TestMonsterRosterIsStable(t *testing.T) {
	world := ecs.NewWorld()
	spawner := NewLevelSpawner(world, nil)

	first := spawner.CreateMonster(components.NewPoint(1, 1), 0)
	wrapped := spawner.CreateMonster(components.NewPoint(2, 2), len(monsterRoster))

	a, _ := world.GetComponent(first.ID, components.Name)
	b, _ := world.GetComponent(wrapped.ID, components.Name)
	assert.Equal(t, a.(*components.NameComponent).Name, b.(*components.NameComponent).Name)

	r, _ := world.GetComponent(first.ID, components.Renderable)
	assert.Equal(t, LayerMonsters, r.(*components.RenderableComponent).Layer)
}

func TestPopulateGuardsPrefabAnchors(t *testing.T) {
	cfg := config.DefaultLevelConfig()
	mb, err := generation.NewLevelBuilder(cfg, nil).BuildWith(generation.ArchitectEmpty, rand.New(rand.NewSource(2)))
	require.NoError(t, err)
	require.NotNil(t, mb.Prefab)
	require.NotEmpty(t, mb.SpawnAnchors)

	world := ecs.NewWorld()
	_, err = NewLevelSpawner(world, nil).Populate(mb)
	require.NoError(t, err)

	var monsterCells []components.Point
	for _, monster := range world.GetEntitiesWithComponents(components.Monster) {
		monsterCells = append(monsterCells, positionOf(t, world, monster))
	}
	for _, anchor := range mb.SpawnAnchors {
		if anchor != mb.AmuletStart && mb.PlayerStart.DistanceTo(anchor) > cfg.MonsterMinDistance {
			assert.Contains(t, monsterCells, anchor)
		}
	}
}
