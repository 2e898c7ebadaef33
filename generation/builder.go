package generation

import (
	"fmt"

	"go.uber.org/multierr"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// LevelBuilder handles creation of complete levels: it runs an architect,
// stamps the prefab, places the amulet, picks a theme and samples spawns,
// always in that order and always from the same random stream
type LevelBuilder struct {
	cfg        config.LevelConfig
	prefab     *Prefab
	logMessage func(string) // Function for logging messages
}

// NewLevelBuilder creates a level builder using the built-in fortress prefab.
// logFunc may be nil.
func NewLevelBuilder(cfg config.LevelConfig, logFunc func(string)) *LevelBuilder {
	return &LevelBuilder{
		cfg:        cfg,
		prefab:     Fortress,
		logMessage: logFunc,
	}
}

// SetPrefab replaces the prefab stamped onto each level; nil disables the overlay
func (b *LevelBuilder) SetPrefab(prefab *Prefab) {
	b.prefab = prefab
}

// Config returns the configuration levels are built with
func (b *LevelBuilder) Config() config.LevelConfig {
	return b.cfg
}

// Build generates a level with a randomly chosen architect. A new architect is
// drawn for every retry.
func (b *LevelBuilder) Build(rng Rand) (*MapBuilder, error) {
	return b.buildWithRetries(rng, func() ArchitectKind {
		return randomArchitect(rng)
	})
}

// BuildWith generates a level with the given architect
func (b *LevelBuilder) BuildWith(kind ArchitectKind, rng Rand) (*MapBuilder, error) {
	return b.buildWithRetries(rng, func() ArchitectKind {
		return kind
	})
}

func (b *LevelBuilder) buildWithRetries(rng Rand, pick func() ArchitectKind) (*MapBuilder, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	var errs error
	for attempt := 1; attempt <= b.cfg.MaxBuildAttempts; attempt++ {
		kind := pick()
		mb, err := b.generate(kind, rng)
		if err == nil {
			return mb, nil
		}
		if !IsRetryable(err) {
			return nil, err
		}

		b.log(fmt.Sprintf("WARNING: level attempt %d/%d failed: %v", attempt, b.cfg.MaxBuildAttempts, err))
		errs = multierr.Append(errs, err)
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, b.cfg.MaxBuildAttempts, errs)
}

// generate runs every stage once
func (b *LevelBuilder) generate(kind ArchitectKind, rng Rand) (*MapBuilder, error) {
	mb, err := kind.Build(b.cfg, rng)
	if err != nil {
		return nil, err
	}

	if b.prefab != nil {
		if placement, ok := ApplyPrefab(mb, b.prefab, b.cfg, rng); ok {
			mb.Prefab = placement
			b.log(fmt.Sprintf("Placed %s prefab at (%d,%d)", placement.Name, placement.Footprint.X1, placement.Footprint.Y1))
		} else {
			b.log(fmt.Sprintf("No room for %s prefab", b.prefab.Name))
		}
	}

	b.placeAmulet(mb)

	mb.Theme = randomTheme(rng)

	// Anchors are guarded first; nothing starts on top of the amulet
	mb.MonsterSpawns, mb.SpawnsCapped = SelectSpawns(mb.Map, mb.PlayerStart, mb.SpawnAnchors,
		[]components.Point{mb.AmuletStart}, b.cfg.NumMonsters, b.cfg.MonsterMinDistance, rng)
	if mb.SpawnsCapped {
		b.log(fmt.Sprintf("WARNING: only %d of %d monster spawns fit", len(mb.MonsterSpawns), b.cfg.NumMonsters))
	}

	b.log(fmt.Sprintf("Generated a %s level using the %s architect: %d rooms, %d monsters, amulet %.0f steps away",
		mb.Theme, mb.Architect, len(mb.Rooms), len(mb.MonsterSpawns), mb.GoalDepth))

	return mb, nil
}

// placeAmulet puts the amulet on the reachable tile furthest from the player
func (b *LevelBuilder) placeAmulet(mb *MapBuilder) {
	df := NewDistanceField(mb.Map, mb.PlayerStart, b.cfg.MaxDistanceDepth)
	goal, depth, ok := df.MostDistant()
	mb.AmuletStart = goal
	mb.GoalDepth = depth

	if !ok {
		mb.GoalDegenerate = true
		b.log("WARNING: nothing reachable from the player start, amulet placed on the player")
		return
	}

	if b.cfg.ExitAtGoal {
		mb.Map.SetTile(goal, components.TileExit)
	}
}

func (b *LevelBuilder) log(message string) {
	if b.logMessage != nil {
		b.logMessage(message)
	}
}
