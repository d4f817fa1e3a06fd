package systems

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"dangian/generation"
)

// ErrTextureNotFound is returned when a tile kind has no sprite
var ErrTextureNotFound = errors.New("texture not found")

// Tile colors used by the generated sprites and the vector renderer
var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	RoomColor       = color.RGBA{255, 255, 255, 255}
	PathColor       = color.RGBA{200, 200, 200, 255}
	GridColor       = color.RGBA{40, 40, 40, 255}
)

// TileColor returns the fill color for a tile kind
func TileColor(tile generation.Tile) color.RGBA {
	switch tile {
	case generation.TileRoom:
		return RoomColor
	case generation.TilePath:
		return PathColor
	default:
		return BackgroundColor
	}
}

// Tileset holds one sprite per tile kind
type Tileset struct {
	// TileSize is the sprite side in pixels
	TileSize int
	sprites  map[generation.Tile]*ebiten.Image
}

// SpriteSize returns the pixel side of a sprite covering one tile of tileSize world units
func SpriteSize(tileSize float64) int {
	if math.IsNaN(tileSize) || math.IsInf(tileSize, 0) || tileSize < 1 {
		return 1
	}
	return int(math.Ceil(tileSize))
}

// NewTileset builds solid sprites for every tile kind with a one pixel grid line
func NewTileset(tileSize int) *Tileset {
	tileSize = max(tileSize, 1)
	t := &Tileset{
		TileSize: tileSize,
		sprites:  make(map[generation.Tile]*ebiten.Image),
	}

	for _, tile := range []generation.Tile{generation.TileNone, generation.TileRoom, generation.TilePath} {
		img := ebiten.NewImage(tileSize, tileSize)
		img.Fill(GridColor)
		if tileSize > 2 {
			inner := img.SubImage(image.Rect(1, 1, tileSize, tileSize)).(*ebiten.Image)
			inner.Fill(TileColor(tile))
		}
		t.sprites[tile] = img
	}

	return t
}

// NewTilesetFromFile loads a horizontal strip of srcTileSize sprites where the
// sprite at column i is used for the tile kind with value i
func NewTilesetFromFile(filename string, srcTileSize int) (*Tileset, error) {
	if srcTileSize <= 0 {
		return nil, fmt.Errorf("tileset %s: tile size %d must be positive", filename, srcTileSize)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode tileset %s: %w", filename, err)
	}

	sheet := ebiten.NewImageFromImage(img)
	t := &Tileset{
		TileSize: srcTileSize,
		sprites:  make(map[generation.Tile]*ebiten.Image),
	}

	columns := sheet.Bounds().Dx() / srcTileSize
	for i := 0; i < columns && i <= int(generation.TilePath); i++ {
		rect := image.Rect(i*srcTileSize, 0, (i+1)*srcTileSize, srcTileSize)
		t.sprites[generation.Tile(i)] = sheet.SubImage(rect).(*ebiten.Image)
	}

	return t, nil
}

// Sprite returns the image for a tile kind
func (t *Tileset) Sprite(tile generation.Tile) (*ebiten.Image, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrTextureNotFound, tile)
	}
	img, ok := t.sprites[tile]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTextureNotFound, tile)
	}
	return img, nil
}

// DrawTile draws a tile sprite with its top-left corner at (x, y) in screen
// pixels, scaled to size pixels square
func (t *Tileset) DrawTile(target *ebiten.Image, tile generation.Tile, x, y, size float64) error {
	sprite, err := t.Sprite(tile)
	if err != nil {
		return err
	}

	op := &ebiten.DrawImageOptions{}

	// Scale the sprite to the requested size (if different from source size)
	bounds := sprite.Bounds()
	op.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)

	target.DrawImage(sprite, op)
	return nil
}
