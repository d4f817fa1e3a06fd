package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dangian/systems"
)

// LogScreen shows the full message history in a scrollable window
type LogScreen struct {
	*BaseScreen
	log          *systems.MessageLog
	face         text.Face
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

const (
	logStartY     = 30
	logLineHeight = 16
)

// NewLogScreen creates a history window over log
func NewLogScreen(log *systems.MessageLog, face text.Face) *LogScreen {
	return &LogScreen{
		BaseScreen: NewBaseScreen(),
		log:        log,
		face:       face,
		width:      560,
		height:     380,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:  color.White,
	}
}

// Update handles input for the log screen
func (s *LogScreen) Update() error {
	// Handle scrolling through messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.ScrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.ScrollDown()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyL) {
		return ErrCloseScreen
	}

	return nil
}

// ScrollUp moves the view up by one line
func (s *LogScreen) ScrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// ScrollDown moves the view down by one line
func (s *LogScreen) ScrollDown() {
	if s.scrollOffset < len(s.log.Messages)-1 {
		s.scrollOffset++
	}
}

// visibleRange returns the slice bounds of the messages that fit the window
func (s *LogScreen) visibleRange() (start, end int) {
	total := len(s.log.Messages)
	maxLines := (s.height - logStartY - 20) / logLineHeight

	start = s.scrollOffset
	if start > total-maxLines {
		start = max(total-maxLines, 0)
	}
	end = min(start+maxLines, total)
	return start, end
}

// Draw renders the log screen
func (s *LogScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := float32(bounds.Dx()-s.width) / 2
	y := float32(bounds.Dy()-s.height) / 2

	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, color.White, false)

	s.drawLine(screen, "MESSAGE LOG", float64(x)+10, float64(y)+8, s.textColor)

	start, end := s.visibleRange()
	for i, msg := range s.log.Messages[start:end] {
		s.drawLine(screen, msg.Text, float64(x)+10, float64(y)+logStartY+float64(i*logLineHeight), msg.GetColor())
	}

	// Scroll indicator
	if total := len(s.log.Messages); total > end-start {
		trackH := float32(s.height - logStartY - 20)
		barH := float32(end-start) / float32(total) * trackH
		barY := y + logStartY + float32(start)/float32(total)*trackH
		vector.DrawFilledRect(screen, x+float32(s.width)-10, barY, 5, barH, color.White, false)
	}

	s.drawLine(screen, "Up/Down: Scroll  L/ESC: Close", float64(x)+10, float64(y)+float64(s.height)-20, s.textColor)
}

func (s *LogScreen) drawLine(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
