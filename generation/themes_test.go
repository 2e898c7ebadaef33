package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ebiten-dungeon/components"
)

func TestThemeTileToRender(t *testing.T) {
	for _, tc := range []struct {
		theme ThemeKind
		tile  components.TileType
		glyph rune
	}{
		{ThemeDungeon, components.TileFloor, '.'},
		{ThemeDungeon, components.TileWall, '#'},
		{ThemeDungeon, components.TileExit, '>'},
		{ThemeForest, components.TileFloor, ';'},
		{ThemeForest, components.TileWall, '"'},
		{ThemeForest, components.TileExit, '>'},
		{ThemeDungeon, components.TileType(77), '?'},
		{ThemeForest, components.TileType(77), '?'},
	} {
		def := tc.theme.TileToRender(tc.tile)
		assert.Equal(t, tc.glyph, def.Glyph, "%s %s", tc.theme, tc.tile)
		assert.NotNil(t, def.FG)
	}
}

func TestRandomThemeCoversBoth(t *testing.T) {
	rng := NewRand(3)
	seen := map[ThemeKind]bool{}
	for i := 0; i < 100; i++ {
		seen[randomTheme(rng)] = true
	}
	assert.Equal(t, map[ThemeKind]bool{ThemeDungeon: true, ThemeForest: true}, seen)
}
