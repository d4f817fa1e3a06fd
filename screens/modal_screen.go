package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const modalLineHeight = 18

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	lines      []string
	face       text.Face
	width      int
	height     int
	closeKeys  []ebiten.Key
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen closed by Escape or any of closeKeys
func NewModalScreen(title string, lines []string, face text.Face, width, height int, closeKeys ...ebiten.Key) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(),
		title:      title,
		lines:      lines,
		face:       face,
		width:      width,
		height:     height,
		closeKeys:  append([]ebiten.Key{ebiten.KeyEscape}, closeKeys...),
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
	}
}

// Title returns the modal title
func (s *ModalScreen) Title() string {
	return s.title
}

// Lines returns the body text
func (s *ModalScreen) Lines() []string {
	return s.lines
}

// Update implements the Screen interface
func (s *ModalScreen) Update() error {
	for _, key := range s.closeKeys {
		if inpututil.IsKeyJustPressed(key) {
			return ErrCloseScreen
		}
	}
	return nil
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	// Title centered on the top edge
	titleW, _ := text.Measure(s.title, s.face, 0)
	s.drawLine(screen, s.title, float64(x)+(float64(s.width)-titleW)/2, float64(y)+10)

	for i, line := range s.lines {
		s.drawLine(screen, line, float64(x)+12, float64(y)+20+float64((i+1)*modalLineHeight))
	}
}

func (s *ModalScreen) drawLine(screen *ebiten.Image, str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(s.textColor)
	text.Draw(screen, str, s.face, op)
}
