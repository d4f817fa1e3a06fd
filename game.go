package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"dangian/config"
	"dangian/screens"
	"dangian/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	screenStack *screens.ScreenStack
}

// NewGame creates the viewer and generates the first dungeon
func NewGame(settings *config.Settings, logger *slog.Logger) (*Game, error) {
	events := systems.NewEventManager()

	messageLog := systems.GetMessageLog()
	messageLog.SetLogger(logger)
	messageLog.Listen(events)

	tileset := systems.NewTileset(systems.SpriteSize(settings.TileSize))
	if settings.Tileset != "" {
		loaded, err := systems.NewTilesetFromFile(settings.Tileset, settings.TilesetSize)
		if err != nil {
			logger.Warn("using built-in tiles", "tileset", settings.Tileset, "error", err)
		} else {
			tileset = loaded
		}
	}

	renderSystem, err := systems.NewRenderSystem(tileset)
	if err != nil {
		return nil, err
	}

	cameraSystem := systems.NewCameraSystem()
	cameraSystem.SetEventManager(events)

	// Connect the camera system to the render system
	renderSystem.SetCameraSystem(cameraSystem)

	events.Subscribe(systems.EventCameraUpdate, func(e systems.Event) {
		ev := e.(systems.CameraUpdateEvent)
		logger.Debug("camera", "x", ev.X, "y", ev.Y, "zoom", ev.Zoom)
	})

	if settings.Sound != "" {
		audioSystem, err := systems.NewAudioSystem(settings.Sound, settings.Volume)
		if err != nil {
			logger.Warn("sound disabled", "sound", settings.Sound, "error", err)
		} else {
			audioSystem.Listen(events)
		}
	}

	rng := settings.NewRandom()
	dungeons := systems.NewDungeonSystem(settings.DungeonOptions(), rng, events)

	// There is no previous dungeon to fall back on for the first one
	if err := dungeons.Regenerate(rng.Seed()); err != nil {
		return nil, fmt.Errorf("generate initial dungeon: %w", err)
	}

	screenStack := screens.NewScreenStack()
	screenStack.Push(screens.NewDungeonScreen(dungeons, cameraSystem, renderSystem, messageLog))

	messageLog.Add("Press H for help.")

	return &Game{screenStack: screenStack}, nil
}

// Update updates the game state.
func (g *Game) Update() error {
	return g.screenStack.Update()
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)

	// Print FPS for debugging
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), screen.Bounds().Dx()-70, 0)
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenStack.Layout(outsideWidth, outsideHeight)
}
