package generation

import (
	"fmt"
	"strings"

	"ebiten-dungeon/config"
)

// ArchitectKind enum to identify the different map generation methods
type ArchitectKind int

const (
	ArchitectEmpty ArchitectKind = iota
	ArchitectRooms
	ArchitectDrunkardsWalk
	ArchitectCellularAutomata
)

// randomArchitects is the pool Build picks from. The empty architect is only
// ever requested explicitly.
var randomArchitects = []ArchitectKind{
	ArchitectDrunkardsWalk,
	ArchitectRooms,
	ArchitectCellularAutomata,
}

func (k ArchitectKind) String() string {
	switch k {
	case ArchitectEmpty:
		return "empty"
	case ArchitectRooms:
		return "rooms"
	case ArchitectDrunkardsWalk:
		return "drunkard"
	case ArchitectCellularAutomata:
		return "cellular"
	default:
		return fmt.Sprintf("architect(%d)", int(k))
	}
}

// ParseArchitectKind maps a name as printed by String back to its kind
func ParseArchitectKind(name string) (ArchitectKind, error) {
	for _, k := range []ArchitectKind{ArchitectEmpty, ArchitectRooms, ArchitectDrunkardsWalk, ArchitectCellularAutomata} {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown architect %q", name)
}

// Build runs the architect and returns the initial level: map carved, player
// start chosen, rooms and spawn anchors filled in where the method has them.
func (k ArchitectKind) Build(cfg config.LevelConfig, rng Rand) (*MapBuilder, error) {
	switch k {
	case ArchitectEmpty:
		return buildEmpty(cfg), nil
	case ArchitectRooms:
		return buildRooms(cfg, rng)
	case ArchitectDrunkardsWalk:
		return buildDrunkardsWalk(cfg, rng)
	case ArchitectCellularAutomata:
		return buildCellularAutomata(cfg, rng)
	default:
		return nil, fmt.Errorf("no architect registered for %s", k)
	}
}

func randomArchitect(rng Rand) ArchitectKind {
	return randomArchitects[rangeInt(rng, 0, len(randomArchitects))]
}
