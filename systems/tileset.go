package systems

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Tilesets ship as PNG

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/src-d/go-billy.v4"
)

// SourceTileSize is the pixel size of one glyph in the tileset image
const SourceTileSize = 12

// Tileset handles loading and drawing the tile spritesheet
type Tileset struct {
	Image    *ebiten.Image
	TileSize int
	Width    int // Number of tiles horizontally in the tileset
	Height   int // Number of tiles vertically in the tileset
}

// NewTileset loads a Code Page 437 tileset image from fs
func NewTileset(fs billy.Filesystem, filename string, tileSize int) (*Tileset, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open tileset: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode tileset %s: %w", filename, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < SourceTileSize || bounds.Dy() < SourceTileSize {
		return nil, fmt.Errorf("tileset %s is smaller than one %dpx tile", filename, SourceTileSize)
	}

	return &Tileset{
		Image:    ebiten.NewImageFromImage(img),
		TileSize: tileSize,
		Width:    bounds.Dx() / SourceTileSize,
		Height:   bounds.Dy() / SourceTileSize,
	}, nil
}

// GetTileCoords returns the x, y coordinates of a tile in the tileset
// based on the character code
func GetTileCoords(char rune) (int, int) {
	index := int(char)
	// Code Page 437 tileset layout
	return index % 16, index / 16
}

// DrawTile draws a single glyph at grid position x, y
func (t *Tileset) DrawTile(target *ebiten.Image, char rune, x, y int, clr color.Color) {
	tileX, tileY := GetTileCoords(char)
	if tileX >= t.Width || tileY >= t.Height {
		// Glyph outside the sheet
		tileX, tileY = GetTileCoords('?')
		clr = color.RGBA{255, 0, 255, 255}
	}

	sx := tileX * SourceTileSize
	sy := tileY * SourceTileSize

	op := &ebiten.DrawImageOptions{}
	scale := float64(t.TileSize) / float64(SourceTileSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x*t.TileSize), float64(y*t.TileSize))
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}

	rect := image.Rect(sx, sy, sx+SourceTileSize, sy+SourceTileSize)
	target.DrawImage(t.Image.SubImage(rect).(*ebiten.Image), op)
}

// DrawString draws a string of characters starting at grid position x, y
func (t *Tileset) DrawString(target *ebiten.Image, text string, x, y int, clr color.Color) {
	for i, char := range []rune(text) {
		t.DrawTile(target, char, x+i, y, clr)
	}
}
