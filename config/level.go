package config

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// LevelConfig holds every tunable used while generating a level.
// The zero value is not usable; start from DefaultLevelConfig.
type LevelConfig struct {
	Width  int `json:"width"`  // Map width in tiles
	Height int `json:"height"` // Map height in tiles

	// Rooms architect
	NumRooms        int `json:"num_rooms"`         // Rooms to place before carving corridors
	MaxRoomAttempts int `json:"max_room_attempts"` // Rejection sampling ceiling

	// Drunkard's walk architect
	DrunkardStaggerDistance int     `json:"drunkard_stagger_distance"` // Steps before a walker passes out
	DrunkardFloorFraction   float64 `json:"drunkard_floor_fraction"`   // Target share of floor tiles
	DrunkardMaxWalkers      int     `json:"drunkard_max_walkers"`      // Ceiling on walkers per level

	// Cellular automata architect
	CellularWallChance        float64 `json:"cellular_wall_chance"`        // Chance a cell starts as wall
	CellularIterations        int     `json:"cellular_iterations"`         // Smoothing passes
	CellularNeighborThreshold int     `json:"cellular_neighbor_threshold"` // Walls above this count make a wall

	// Prefab overlay
	PrefabAttempts int     `json:"prefab_attempts"`  // Random placements tried before giving up
	PrefabMinDepth float32 `json:"prefab_min_depth"` // Footprint must reach past this depth from the player
	PrefabMaxDepth float32 `json:"prefab_max_depth"` // ...while staying below this depth

	// Goal placement
	MaxDistanceDepth float32 `json:"max_distance_depth"` // Distance field cutoff
	ExitAtGoal       bool    `json:"exit_at_goal"`       // Stamp an exit tile under the amulet

	// Monster spawns
	NumMonsters        int     `json:"num_monsters"`
	MonsterMinDistance float32 `json:"monster_min_distance"` // Minimum distance from the player start

	// Orchestrator retries after a generation failure
	MaxBuildAttempts int `json:"max_build_attempts"`
}

// DefaultLevelConfig returns the standard 80x50 level configuration
func DefaultLevelConfig() LevelConfig {
	return LevelConfig{
		Width:  80,
		Height: 50,

		NumRooms:        20,
		MaxRoomAttempts: 5000,

		DrunkardStaggerDistance: 400,
		DrunkardFloorFraction:   1.0 / 3.0,
		DrunkardMaxWalkers:      5000,

		CellularWallChance:        0.45,
		CellularIterations:        10,
		CellularNeighborThreshold: 4,

		PrefabAttempts: 10,
		PrefabMinDepth: 20,
		PrefabMaxDepth: 2000,

		MaxDistanceDepth: 1024,
		ExitAtGoal:       false,

		NumMonsters:        50,
		MonsterMinDistance: 10,

		MaxBuildAttempts: 5,
	}
}

// ValidationError reports a single invalid configuration field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid level config: %s %s", e.Field, e.Reason)
}

// Validate checks the configuration and returns every problem found
func (c LevelConfig) Validate() error {
	var err error
	check := func(ok bool, field, reason string) {
		if !ok {
			err = multierr.Append(err, &ValidationError{Field: field, Reason: reason})
		}
	}

	// Rooms are placed at x in [1, width-10), so anything narrower cannot hold one
	check(c.Width >= 12, "width", "must be at least 12")
	check(c.Height >= 12, "height", "must be at least 12")
	check(c.NumRooms >= 1, "num_rooms", "must be positive")
	check(c.MaxRoomAttempts >= c.NumRooms, "max_room_attempts", "must be at least num_rooms")
	check(c.DrunkardStaggerDistance > 0, "drunkard_stagger_distance", "must be positive")
	check(c.DrunkardFloorFraction > 0 && c.DrunkardFloorFraction < 1, "drunkard_floor_fraction", "must be in (0, 1)")
	check(c.DrunkardMaxWalkers > 0, "drunkard_max_walkers", "must be positive")
	check(c.CellularWallChance >= 0 && c.CellularWallChance <= 1, "cellular_wall_chance", "must be in [0, 1]")
	check(c.CellularIterations >= 0, "cellular_iterations", "must not be negative")
	check(c.CellularNeighborThreshold >= 0 && c.CellularNeighborThreshold <= 8, "cellular_neighbor_threshold", "must be in [0, 8]")
	check(c.PrefabAttempts >= 0, "prefab_attempts", "must not be negative")
	check(c.PrefabMinDepth < c.PrefabMaxDepth, "prefab_min_depth", "must be below prefab_max_depth")
	check(c.MaxDistanceDepth > 0, "max_distance_depth", "must be positive")
	check(c.NumMonsters >= 0, "num_monsters", "must not be negative")
	check(c.MonsterMinDistance >= 0, "monster_min_distance", "must not be negative")
	check(c.MaxBuildAttempts >= 1, "max_build_attempts", "must be at least 1")

	return err
}

// LoadLevelConfig reads a JSON file and applies it on top of the defaults.
// Fields missing from the file keep their default value.
func LoadLevelConfig(fs billy.Filesystem, path string) (LevelConfig, error) {
	cfg := DefaultLevelConfig()

	f, err := fs.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open level config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return cfg, fmt.Errorf("failed to read level config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse level config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
