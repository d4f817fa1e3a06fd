package systems

import (
	"context"
	"fmt"
	"log/slog"
)

// MessageLog stores HUD messages and mirrors them to a logger
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
	logger      *slog.Logger
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// SetLogger mirrors every added message to logger
func (ml *MessageLog) SetLogger(logger *slog.Logger) {
	ml.logger = logger
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddTyped adds a message with the given type
func (ml *MessageLog) AddTyped(message string, msgType MessageType) {
	msg := ColoredMessage{Text: message, Type: msgType}
	ml.Messages = append(ml.Messages, msg)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}

	if ml.logger != nil {
		ml.logger.Log(context.Background(), msg.Level(), message)
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// Listen reports generation results published on em
func (ml *MessageLog) Listen(em *EventManager) {
	em.Subscribe(EventDungeonGenerated, func(e Event) {
		ev := e.(DungeonGeneratedEvent)
		ml.AddTyped(fmt.Sprintf("Generated dungeon: seed %d, %d rooms, %d paths",
			ev.Seed, len(ev.Dungeon.Rooms()), len(ev.Dungeon.Paths())), MessageTypeSystem)
	})
	em.Subscribe(EventGenerationFailed, func(e Event) {
		ev := e.(GenerationFailedEvent)
		ml.AddTyped(fmt.Sprintf("Generation failed (seed %d): %v", ev.Seed, ev.Err), MessageTypeError)
	})
}
