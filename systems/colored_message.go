package systems

import (
	"image/color"
)

// MessageType selects the color a message is shown in
type MessageType int

const (
	// MessageTypeNormal is for standard messages (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeLevel is for level load messages (gold)
	MessageTypeLevel
	// MessageTypeCamera is for viewport messages (cyan)
	MessageTypeCamera
	// MessageTypeSystem is for errors and diagnostics (red)
	MessageTypeSystem
)

// ColoredMessage stores a message with its type
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeLevel:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeCamera:
		return color.RGBA{120, 220, 230, 255}
	case MessageTypeSystem:
		return color.RGBA{255, 100, 100, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}
