package generation

import (
	"math"
	"strconv"
	"strings"

	"dangian/geometry"
)

// Tile is the state of one grid cell
type Tile uint8

const (
	TileNone Tile = iota
	TileRoom
	TilePath
)

func (t Tile) String() string {
	switch t {
	case TileRoom:
		return "room"
	case TilePath:
		return "path"
	default:
		return "none"
	}
}

// MarshalJSON encodes the tile as its integer code so rows are JSON arrays
// rather than base64 strings
func (t Tile) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(t), 10), nil
}

// Rune returns the ASCII glyph used for text dumps
func (t Tile) Rune() rune {
	switch t {
	case TileRoom:
		return '#'
	case TilePath:
		return '+'
	default:
		return ' '
	}
}

// TileMatrix is the dungeon discretised into tileSize squares, indexed Tiles[row][col]
type TileMatrix struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	TileSize float64  `json:"tileSize"`
	Tiles    [][]Tile `json:"tiles"`
}

// NewTileMatrix allocates a grid covering canvas, every cell TileNone
func NewTileMatrix(canvas Rect, tileSize float64) TileMatrix {
	width := int(math.Ceil(canvas.W / tileSize))
	height := int(math.Ceil(canvas.H / tileSize))

	tiles := make([][]Tile, height)
	for row := range tiles {
		tiles[row] = make([]Tile, width)
	}
	return TileMatrix{Width: width, Height: height, TileSize: tileSize, Tiles: tiles}
}

// At returns the tile at (col, row), TileNone when out of range
func (m TileMatrix) At(col, row int) Tile {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return TileNone
	}
	return m.Tiles[row][col]
}

// Count returns how many cells hold tile
func (m TileMatrix) Count(tile Tile) int {
	n := 0
	for _, row := range m.Tiles {
		for _, t := range row {
			if t == tile {
				n++
			}
		}
	}
	return n
}

// Fill marks every cell whose center falls inside rect
func (m TileMatrix) Fill(rect Rect, tile Tile) {
	if rect.Empty() {
		return
	}

	firstCol := max(int(math.Floor(rect.X/m.TileSize-0.5)), 0)
	lastCol := min(int(math.Ceil(rect.Right()/m.TileSize)), m.Width-1)
	firstRow := max(int(math.Floor(rect.Y/m.TileSize-0.5)), 0)
	lastRow := min(int(math.Ceil(rect.Bottom()/m.TileSize)), m.Height-1)

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			if rect.ContainsPoint(m.cellCenter(col, row)) {
				m.Tiles[row][col] = tile
			}
		}
	}
}

func (m TileMatrix) cellCenter(col, row int) Vec {
	return geometry.Pt((float64(col)+0.5)*m.TileSize, (float64(row)+0.5)*m.TileSize)
}

// String dumps the matrix as rows of tile codes separated by spaces
func (m TileMatrix) String() string {
	var sb strings.Builder
	for _, row := range m.Tiles {
		for col, t := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(t)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Runes renders the matrix as ASCII art, one line per row
func (m TileMatrix) Runes() []string {
	lines := make([]string, 0, m.Height)
	for _, row := range m.Tiles {
		var sb strings.Builder
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
		lines = append(lines, sb.String())
	}
	return lines
}
