package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"dangian/config"
	"dangian/generation"
)

const (
	hudFontSize   = 12
	hudLineHeight = 16
	hudPadding    = 6
)

// partition outline colors, cycled by tree depth
var partitionColors = []color.RGBA{
	{255, 80, 80, 255},
	{80, 200, 80, 255},
	{80, 140, 255, 255},
	{230, 200, 60, 255},
	{200, 90, 220, 255},
}

// HUDInfo is the status shown in the top-left corner
type HUDInfo struct {
	Seed      int64
	Rooms     int
	Paths     int
	Leaves    int
	Zoom      float64
	TileView  bool
	Outlines  bool
	Generated int
}

// RenderSystem draws the current dungeon through the camera
type RenderSystem struct {
	tileset      *Tileset
	cameraSystem *CameraSystem
	face         *text.GoTextFace

	// ShowTiles draws the tile matrix instead of the raw rectangles
	ShowTiles bool
	// ShowPartitions outlines every partition node
	ShowPartitions bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(tileset *Tileset) (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load HUD font: %w", err)
	}

	return &RenderSystem{
		tileset: tileset,
		face:    &text.GoTextFace{Source: source, Size: hudFontSize},
	}, nil
}

// SetCameraSystem sets the camera system to be used for rendering
func (s *RenderSystem) SetCameraSystem(cameraSystem *CameraSystem) {
	s.cameraSystem = cameraSystem
}

// Face returns the HUD font face
func (s *RenderSystem) Face() *text.GoTextFace {
	return s.face
}

// Draw renders the dungeon. tiles may be nil when the tile view is off.
func (s *RenderSystem) Draw(screen *ebiten.Image, dungeon *generation.Dungeon, tiles *generation.TileMatrix) {
	screen.Fill(BackgroundColor)
	if dungeon == nil || s.cameraSystem == nil {
		return
	}

	if s.ShowTiles && tiles != nil {
		s.drawTiles(screen, tiles)
	} else {
		s.drawLayout(screen, dungeon)
	}

	if s.ShowPartitions {
		s.drawPartitions(screen, dungeon.Tree())
	}
}

// drawLayout fills paths first so rooms paint over them
func (s *RenderSystem) drawLayout(screen *ebiten.Image, dungeon *generation.Dungeon) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	for _, path := range dungeon.Paths() {
		s.fillRect(screen, path.Rect(), PathColor, w, h)
	}
	for _, room := range dungeon.Rooms() {
		s.fillRect(screen, room.Rect, RoomColor, w, h)
	}
}

func (s *RenderSystem) fillRect(screen *ebiten.Image, r generation.Rect, clr color.Color, viewportW, viewportH int) {
	if !s.cameraSystem.IsVisible(r, viewportW, viewportH) {
		return
	}
	sr := s.cameraSystem.RectToScreen(r)
	vector.DrawFilledRect(screen, float32(sr.X), float32(sr.Y), float32(sr.W), float32(sr.H), clr, false)
}

func (s *RenderSystem) drawTiles(screen *ebiten.Image, tiles *generation.TileMatrix) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	size := tiles.TileSize

	for row := 0; row < tiles.Height; row++ {
		for col := 0; col < tiles.Width; col++ {
			tile := tiles.At(col, row)
			if tile == generation.TileNone {
				continue
			}

			cell := generation.Rect{X: float64(col) * size, Y: float64(row) * size, W: size, H: size}
			if !s.cameraSystem.IsVisible(cell, w, h) {
				continue
			}

			x, y := s.cameraSystem.WorldToScreen(cell.X, cell.Y)
			if err := s.tileset.DrawTile(screen, tile, x, y, size*s.cameraSystem.Zoom); err != nil {
				// fall back to a plain fill so a missing sprite is still visible
				s.fillRect(screen, cell, TileColor(tile), w, h)
			}
		}
	}
}

func (s *RenderSystem) drawPartitions(screen *ebiten.Image, tree *generation.PartitionNode) {
	if tree == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	tree.Walk(func(node *generation.PartitionNode, depth int) bool {
		if !s.cameraSystem.IsVisible(node.Rect, w, h) {
			// children lie inside the parent
			return false
		}
		sr := s.cameraSystem.RectToScreen(node.Rect)
		clr := partitionColors[depth%len(partitionColors)]
		vector.StrokeRect(screen, float32(sr.X), float32(sr.Y), float32(sr.W), float32(sr.H), 1, clr, false)
		return true
	})
}

// DrawHUD draws the status lines and the most recent messages
func (s *RenderSystem) DrawHUD(screen *ebiten.Image, info HUDInfo, messages []ColoredMessage) {
	lines := []string{
		fmt.Sprintf("Seed %d  (#%d)", info.Seed, info.Generated),
		fmt.Sprintf("Leaves %d  Rooms %d  Paths %d", info.Leaves, info.Rooms, info.Paths),
		fmt.Sprintf("Zoom %.0f%%", info.Zoom*100),
	}
	if info.TileView {
		lines = append(lines, "Tile view")
	}
	if info.Outlines {
		lines = append(lines, "Partitions")
	}

	panelH := float32(len(lines)*hudLineHeight + hudPadding*2)
	vector.DrawFilledRect(screen, 0, 0, 260, panelH, color.RGBA{0, 0, 0, 180}, false)

	for i, line := range lines {
		s.drawText(screen, line, hudPadding, float64(hudPadding+i*hudLineHeight), color.RGBA{230, 230, 230, 255})
	}

	// Messages along the bottom edge, newest at the bottom
	if len(messages) > config.HUDMessages {
		messages = messages[:config.HUDMessages]
	}
	bottom := float64(screen.Bounds().Dy() - hudPadding)
	for i, msg := range messages {
		y := bottom - float64((i+1)*hudLineHeight)
		s.drawText(screen, msg.Text, hudPadding, y, msg.GetColor())
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
