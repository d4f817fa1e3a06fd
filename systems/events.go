package systems

import "dangian/generation"

// Event type constants
const (
	EventDungeonGenerated EventType = "dungeon_generated"
	EventGenerationFailed EventType = "generation_failed"
	EventCameraUpdate     EventType = "camera_update"
)

// DungeonGeneratedEvent is emitted after a new dungeon replaces the current one
type DungeonGeneratedEvent struct {
	Dungeon *generation.Dungeon
	Seed    int64
}

// Type returns the event type
func (e DungeonGeneratedEvent) Type() EventType {
	return EventDungeonGenerated
}

// GenerationFailedEvent is emitted when a regeneration attempt returns an error
type GenerationFailedEvent struct {
	Seed int64
	Err  error
}

// Type returns the event type
func (e GenerationFailedEvent) Type() EventType {
	return EventGenerationFailed
}

// CameraUpdateEvent is emitted when a pan, zoom or reset settles
type CameraUpdateEvent struct {
	X, Y float64 // Translation in screen pixels
	Zoom float64
}

// Type returns the event type
func (e CameraUpdateEvent) Type() EventType {
	return EventCameraUpdate
}
