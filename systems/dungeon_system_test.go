package systems

import (
	"errors"
	"reflect"
	"testing"

	"dangian/generation"
	"dangian/geometry"
)

func smallOptions() generation.Options {
	opts := generation.DefaultOptions()
	opts.Iterations = 3
	opts.Size = geometry.Pt(320.0, 240.0)
	return opts
}

func TestDungeonSystemRegenerateIsDeterministic(t *testing.T) {
	a := NewDungeonSystem(smallOptions(), generation.NewRandom(), nil)
	b := NewDungeonSystem(smallOptions(), generation.NewRandom(), nil)

	if err := a.Regenerate(42); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if err := b.Regenerate(42); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}

	if !reflect.DeepEqual(a.Dungeon().Layout(), b.Dungeon().Layout()) {
		t.Error("same seed produced different layouts")
	}
	if a.Seed() != 42 || a.Generated() != 1 {
		t.Errorf("seed = %d, generated = %d, want 42 and 1", a.Seed(), a.Generated())
	}
}

func TestDungeonSystemKeepsPreviousOnFailure(t *testing.T) {
	em := NewEventManager()
	var failed []GenerationFailedEvent
	em.Subscribe(EventGenerationFailed, func(e Event) {
		failed = append(failed, e.(GenerationFailedEvent))
	})

	s := NewDungeonSystem(smallOptions(), generation.NewRandom(), em)
	if err := s.Regenerate(1); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	previous := s.Dungeon()

	bad := smallOptions()
	bad.TileSize = 0
	s.SetOptions(bad)

	err := s.Regenerate(2)
	if !errors.Is(err, generation.ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
	if s.Dungeon() != previous {
		t.Error("failed regeneration replaced the current dungeon")
	}
	if s.Seed() != 1 {
		t.Errorf("seed = %d, want 1", s.Seed())
	}
	if len(failed) != 1 || failed[0].Seed != 2 {
		t.Errorf("failure events = %+v, want one for seed 2", failed)
	}
}

func TestDungeonSystemTilesCached(t *testing.T) {
	s := NewDungeonSystem(smallOptions(), generation.NewRandom(), nil)
	if s.Tiles() != nil {
		t.Fatal("Tiles before generation should be nil")
	}

	if err := s.Regenerate(5); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	first := s.Tiles()
	if first == nil || first.Count(generation.TileRoom) == 0 {
		t.Fatalf("tile matrix has no room tiles: %+v", first)
	}
	if s.Tiles() != first {
		t.Error("Tiles recomputed without regeneration")
	}

	if err := s.Regenerate(6); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if s.Tiles() == first {
		t.Error("Tiles not recomputed after regeneration")
	}
}
