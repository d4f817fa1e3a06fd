package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var helpLines = []string{
	"Drag with the left mouse button to pan",
	"Mouse wheel zooms around the cursor",
	"",
	"R      new dungeon",
	"T      toggle tile view",
	"G      toggle partition outlines",
	"L      message history",
	"Space  reset camera",
	"H/Esc  close this window",
}

// NewHelpScreen creates the controls overlay
func NewHelpScreen(face text.Face) *ModalScreen {
	return NewModalScreen("Controls", helpLines, face, 360, 230, ebiten.KeyH)
}
