package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"dangian/generation"
	"dangian/geometry"
)

// Viewer layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 640
	WindowHeight = 480

	WindowTitle = "Dangian"

	// Tile size in pixels for the demo dungeon
	TileSize = 10

	// Depth of the partition tree for the demo dungeon
	Iterations = 4

	// Zoom limits and the per-notch step of the mouse wheel
	ZoomMin  = 0.5
	ZoomMax  = 1.5
	ZoomStep = 0.05

	// Duration of the zoom animation in seconds
	ZoomDuration = 0.12

	// Number of HUD messages kept on screen
	HUDMessages = 5
)

// Settings are the environment overrides, read with the DANGIAN_ prefix
type Settings struct {
	Iterations     int     `envconfig:"ITERATIONS" default:"4"`
	Width          float64 `envconfig:"WIDTH" default:"640"`
	Height         float64 `envconfig:"HEIGHT" default:"480"`
	TileSize       float64 `envconfig:"TILE_SIZE" default:"10"`
	RatioX         float64 `envconfig:"RATIO_X" default:"0.45"`
	RatioY         float64 `envconfig:"RATIO_Y" default:"0.45"`
	Seed           int64   `envconfig:"SEED" default:"0"` // 0 picks a seed from the clock
	Snap           bool    `envconfig:"SNAP" default:"true"`
	PathWidth      float64 `envconfig:"PATH_WIDTH" default:"0"`
	MaxAttempts    int     `envconfig:"MAX_ATTEMPTS" default:"1000"`
	Tileset        string  `envconfig:"TILESET"` // optional PNG strip replacing the built-in tile sprites
	TilesetSize    int     `envconfig:"TILESET_TILE_SIZE" default:"12"`
	Sound          string  `envconfig:"SOUND"` // optional mp3/ogg cue played on each new dungeon
	Volume         float64 `envconfig:"VOLUME" default:"0.5"`
	Addr           string  `envconfig:"ADDR" default:":8080"`
	AllowedOrigins string  `envconfig:"ALLOWED_ORIGINS" default:"localhost:*"`
	LogLevel       string  `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string  `envconfig:"LOG_FILE"`
	LogBoth        bool    `envconfig:"LOG_BOTH" default:"false"`
	NoColor        bool    `envconfig:"NO_COLOR" default:"false"`
}

// Load reads Settings from the environment
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("dangian", &s); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &s, nil
}

// DungeonOptions converts the settings into generator options
func (s *Settings) DungeonOptions() generation.Options {
	return generation.Options{
		Iterations:       s.Iterations,
		Size:             geometry.Pt(s.Width, s.Height),
		TileSize:         s.TileSize,
		RatioToDiscard:   geometry.Pt(s.RatioX, s.RatioY),
		SnapToTiles:      s.Snap,
		PathWidth:        s.PathWidth,
		MaxSplitAttempts: s.MaxAttempts,
	}
}

// NewRandom returns a generator source honouring the configured seed
func (s *Settings) NewRandom() *generation.Random {
	if s.Seed == 0 {
		return generation.NewRandom()
	}
	return generation.NewSeededRandom(s.Seed)
}

// GetWindowSize returns the initial window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
