package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dangian/config"
	"dangian/generation"
	"dangian/systems"
)

// Action is a viewer command bound to a key
type Action int

const (
	ActionRegenerate Action = iota
	ActionToggleTiles
	ActionTogglePartitions
	ActionHelp
	ActionMessageLog
	ActionResetCamera
)

var keyBindings = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyR, ActionRegenerate},
	{ebiten.KeyT, ActionToggleTiles},
	{ebiten.KeyG, ActionTogglePartitions},
	{ebiten.KeyH, ActionHelp},
	{ebiten.KeyL, ActionMessageLog},
	{ebiten.KeySpace, ActionResetCamera},
}

// DungeonScreen shows the generated dungeon and handles camera input
type DungeonScreen struct {
	*BaseScreen
	dungeons     *systems.DungeonSystem
	cameraSystem *systems.CameraSystem
	renderSystem *systems.RenderSystem
	messageLog   *systems.MessageLog
	screenStack  *ScreenStack
}

// NewDungeonScreen creates the main viewer screen
func NewDungeonScreen(
	dungeons *systems.DungeonSystem,
	cameraSystem *systems.CameraSystem,
	renderSystem *systems.RenderSystem,
	messageLog *systems.MessageLog,
) *DungeonScreen {
	return &DungeonScreen{
		BaseScreen:   NewBaseScreen(),
		dungeons:     dungeons,
		cameraSystem: cameraSystem,
		renderSystem: renderSystem,
		messageLog:   messageLog,
		screenStack:  NewScreenStack(),
	}
}

// Overlays returns the stack of modal windows drawn over the dungeon
func (s *DungeonScreen) Overlays() *ScreenStack {
	return s.screenStack
}

// Update handles input and advances the camera animation
func (s *DungeonScreen) Update() error {
	s.cameraSystem.Update(float32(1.0 / float64(ebiten.TPS())))

	// Modal windows take all keyboard input while open
	if s.screenStack.Peek() != nil {
		return s.screenStack.Update()
	}

	for _, binding := range keyBindings {
		if inpututil.IsKeyJustPressed(binding.key) {
			s.Apply(binding.action)
		}
	}

	s.handleMouse()
	return nil
}

func (s *DungeonScreen) handleMouse() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.cameraSystem.BeginDrag(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.cameraSystem.EndDrag()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.cameraSystem.DragTo(x, y)
	}

	if _, wheelY := ebiten.Wheel(); wheelY > 0 {
		s.cameraSystem.ZoomAt(x, y, 1)
	} else if wheelY < 0 {
		s.cameraSystem.ZoomAt(x, y, -1)
	}
}

// Apply runs a viewer command
func (s *DungeonScreen) Apply(action Action) {
	switch action {
	case ActionRegenerate:
		// failures are reported through the message log
		_ = s.dungeons.RegenerateRandom()
	case ActionToggleTiles:
		s.renderSystem.ShowTiles = !s.renderSystem.ShowTiles
	case ActionTogglePartitions:
		s.renderSystem.ShowPartitions = !s.renderSystem.ShowPartitions
	case ActionHelp:
		s.screenStack.Push(NewHelpScreen(s.renderSystem.Face()))
	case ActionMessageLog:
		s.screenStack.Push(NewLogScreen(s.messageLog, s.renderSystem.Face()))
	case ActionResetCamera:
		s.cameraSystem.Reset()
	}
}

// HUD returns the status shown over the dungeon
func (s *DungeonScreen) HUD() systems.HUDInfo {
	info := systems.HUDInfo{
		Seed:      s.dungeons.Seed(),
		Generated: s.dungeons.Generated(),
		Zoom:      s.cameraSystem.Zoom,
		TileView:  s.renderSystem.ShowTiles,
		Outlines:  s.renderSystem.ShowPartitions,
	}
	if d := s.dungeons.Dungeon(); d != nil {
		info.Rooms = len(d.Rooms())
		info.Paths = len(d.Paths())
		info.Leaves = len(d.Leaves())
	}
	return info
}

// Draw draws the dungeon, the HUD and any open overlay
func (s *DungeonScreen) Draw(screen *ebiten.Image) {
	var tiles *generation.TileMatrix
	if s.renderSystem.ShowTiles {
		tiles = s.dungeons.Tiles()
	}
	s.renderSystem.Draw(screen, s.dungeons.Dungeon(), tiles)
	s.renderSystem.DrawHUD(screen, s.HUD(), s.messageLog.RecentMessages(config.HUDMessages))

	s.screenStack.Draw(screen)
}
