package generation

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/zyedidia/generic/mapset"
	billy "gopkg.in/src-d/go-billy.v4"

	"ebiten-dungeon/components"
	"ebiten-dungeon/config"
)

// Prefab layout characters
const (
	prefabWall  = '#'
	prefabFloor = '-'
	prefabSpawn = 'M' // Floor with a monster spawn anchor
	prefabExit  = '>'
)

// fortressLayout is a small walled keep with monsters guarding the gates
const fortressLayout = `
------------
---######---
---#----#---
---#-M--#---
-###----###-
--M------M--
-###----###-
---#----#---
---#----#---
---######---
------------
`

// Fortress is the prefab stamped onto levels by default
var Fortress = MustParsePrefab("fortress", fortressLayout)

// PrefabCell is one tile of a prefab, relative to the prefab's top-left corner
type PrefabCell struct {
	Offset components.Point
	Tile   components.TileType
	Spawn  bool // The cell also becomes a monster spawn anchor
}

// Prefab is a fixed hand-made structure that can be stamped onto a level
type Prefab struct {
	Name   string
	Width  int
	Height int
	Cells  []PrefabCell // Row by row, left to right
}

// PrefabPlacement records where a prefab ended up
type PrefabPlacement struct {
	Name      string
	Footprint components.Rect
}

// ParsePrefab reads an ASCII prefab layout. Blank lines before and after the
// layout are ignored; every remaining row must have the same width.
func ParsePrefab(name, layout string) (*Prefab, error) {
	lines := strings.Split(strings.ReplaceAll(layout, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("prefab %s is empty", name)
	}

	p := &Prefab{
		Name:   name,
		Width:  len([]rune(lines[0])),
		Height: len(lines),
	}

	for y, line := range lines {
		row := []rune(line)
		if len(row) != p.Width {
			return nil, fmt.Errorf("prefab %s: row %d is %d wide, expected %d", name, y, len(row), p.Width)
		}
		for x, c := range row {
			cell := PrefabCell{Offset: components.Point{X: x, Y: y}}
			switch c {
			case prefabWall:
				cell.Tile = components.TileWall
			case prefabFloor:
				cell.Tile = components.TileFloor
			case prefabSpawn:
				cell.Tile = components.TileFloor
				cell.Spawn = true
			case prefabExit:
				cell.Tile = components.TileExit
			default:
				return nil, fmt.Errorf("prefab %s: no idea what to do with %q at %d,%d", name, c, x, y)
			}
			p.Cells = append(p.Cells, cell)
		}
	}

	return p, nil
}

// MustParsePrefab is like ParsePrefab but panics on a malformed layout.
// It is meant for layouts compiled into the program.
func MustParsePrefab(name, layout string) *Prefab {
	p, err := ParsePrefab(name, layout)
	if err != nil {
		panic(err)
	}
	return p
}

// LoadPrefab reads a prefab layout file. The prefab is named after the file.
func LoadPrefab(fs billy.Filesystem, filename string) (*Prefab, error) {
	f, err := fs.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open prefab: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefab: %w", err)
	}

	base := path.Base(filename)
	return ParsePrefab(strings.TrimSuffix(base, path.Ext(base)), string(data))
}

// ApplyPrefab tries to stamp the prefab somewhere on the level. A spot is
// accepted when the footprint does not cover the player start and at least one
// of its cells is reachable at a depth between cfg.PrefabMinDepth and
// cfg.PrefabMaxDepth, so the structure sits in the played area without landing
// on top of the player. Spawn anchors under the footprint are dropped and the
// prefab's own anchors added. It returns false when no spot was found in
// cfg.PrefabAttempts tries; the level is then left untouched.
func ApplyPrefab(mb *MapBuilder, prefab *Prefab, cfg config.LevelConfig, rng Rand) (*PrefabPlacement, bool) {
	m := mb.Map
	if prefab.Width > m.Width || prefab.Height > m.Height {
		return nil, false
	}

	df := NewDistanceField(m, mb.PlayerStart, cfg.MaxDistanceDepth)

	for attempt := 0; attempt < cfg.PrefabAttempts; attempt++ {
		footprint := components.NewRectWithSize(
			rangeInt(rng, 0, m.Width-prefab.Width+1),
			rangeInt(rng, 0, m.Height-prefab.Height+1),
			prefab.Width,
			prefab.Height,
		)

		if footprint.Contains(mb.PlayerStart) {
			continue
		}

		canPlace := false
		footprint.ForEach(func(p components.Point) {
			d, ok := df.Distance(p)
			if ok && d > cfg.PrefabMinDepth && d < cfg.PrefabMaxDepth {
				canPlace = true
			}
		})
		if !canPlace {
			continue
		}

		stampPrefab(mb, prefab, footprint)
		return &PrefabPlacement{Name: prefab.Name, Footprint: footprint}, true
	}

	return nil, false
}

// stampPrefab overwrites the footprint with the prefab's tiles
func stampPrefab(mb *MapBuilder, prefab *Prefab, footprint components.Rect) {
	covered := mapset.New[components.Point]()
	footprint.ForEach(covered.Put)

	anchors := mb.SpawnAnchors[:0]
	for _, p := range mb.SpawnAnchors {
		if !covered.Has(p) {
			anchors = append(anchors, p)
		}
	}
	mb.SpawnAnchors = anchors

	origin := components.Point{X: footprint.X1, Y: footprint.Y1}
	for _, cell := range prefab.Cells {
		p := origin.Add(cell.Offset)
		mb.Map.SetTile(p, cell.Tile)
		if cell.Spawn {
			mb.SpawnAnchors = append(mb.SpawnAnchors, p)
		}
	}
}
