package systems

import (
	"image/color"
	"log/slog"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for standard messages (white/gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeSystem is for generation reports (purple/magenta)
	MessageTypeSystem
	// MessageTypeAlert is for warnings worth noticing (bright yellow)
	MessageTypeAlert
	// MessageTypeError is for failures (red)
	MessageTypeError
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid (Purple)
	case MessageTypeAlert:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeError:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}

// Level maps the message type onto a log level
func (cm ColoredMessage) Level() slog.Level {
	switch cm.Type {
	case MessageTypeAlert:
		return slog.LevelWarn
	case MessageTypeError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
