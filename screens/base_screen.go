package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"dangian/config"
)

// BaseScreen provides the fixed logical size shared by all screens
type BaseScreen struct {
	// Outside window dimensions from the last Layout call
	width  int
	height int
}

// NewBaseScreen creates a new base screen
func NewBaseScreen() *BaseScreen {
	return &BaseScreen{}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {}

// Layout records the window size and keeps the logical screen at the
// configured resolution
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width = outsideWidth
	s.height = outsideHeight
	return config.WindowWidth, config.WindowHeight
}

// GetWidth returns the outside window width
func (s *BaseScreen) GetWidth() int {
	return s.width
}

// GetHeight returns the outside window height
func (s *BaseScreen) GetHeight() int {
	return s.height
}
