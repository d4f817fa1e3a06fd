package systems

import (
	"time"

	"dangian/generation"
)

// DungeonSystem owns the dungeon currently shown and regenerates it on demand
type DungeonSystem struct {
	options   generation.Options
	rng       *generation.Random
	events    *EventManager
	dungeon   *generation.Dungeon
	tiles     *generation.TileMatrix
	seed      int64
	generated int
}

// NewDungeonSystem creates a dungeon system. events may be nil.
func NewDungeonSystem(options generation.Options, rng *generation.Random, events *EventManager) *DungeonSystem {
	return &DungeonSystem{
		options: options,
		rng:     rng,
		events:  events,
	}
}

// Regenerate builds a dungeon from seed. On failure the previous dungeon
// stays current and a GenerationFailedEvent is emitted.
func (s *DungeonSystem) Regenerate(seed int64) error {
	s.rng.SetSeed(seed)

	dungeon, err := generation.NewDungeon(s.options, s.rng)
	if err != nil {
		if s.events != nil {
			s.events.Emit(GenerationFailedEvent{Seed: seed, Err: err})
		}
		return err
	}

	s.dungeon = dungeon
	s.seed = seed
	s.tiles = nil
	s.generated++

	if s.events != nil {
		s.events.Emit(DungeonGeneratedEvent{Dungeon: dungeon, Seed: seed})
	}
	return nil
}

// RegenerateRandom builds a dungeon from a fresh clock seed
func (s *DungeonSystem) RegenerateRandom() error {
	return s.Regenerate(time.Now().UnixNano())
}

// Dungeon returns the current dungeon, nil before the first success
func (s *DungeonSystem) Dungeon() *generation.Dungeon {
	return s.dungeon
}

// Tiles returns the tile matrix of the current dungeon, computed on first use
func (s *DungeonSystem) Tiles() *generation.TileMatrix {
	if s.dungeon == nil {
		return nil
	}
	if s.tiles == nil {
		m := s.dungeon.GenerateTileMatrix()
		s.tiles = &m
	}
	return s.tiles
}

// Seed returns the seed the current dungeon was built from
func (s *DungeonSystem) Seed() int64 {
	return s.seed
}

// Generated counts successful generations
func (s *DungeonSystem) Generated() int {
	return s.generated
}

// Options returns the generator options
func (s *DungeonSystem) Options() generation.Options {
	return s.options
}

// SetOptions replaces the options used by later generations
func (s *DungeonSystem) SetOptions(options generation.Options) {
	s.options = options
}
