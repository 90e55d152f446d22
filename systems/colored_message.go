package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for standard game messages
	MessageTypeNormal MessageType = iota
	// MessageTypeRoll is for dice results
	MessageTypeRoll
	// MessageTypePig is for busts
	MessageTypePig
	// MessageTypeBank is for banked turn scores
	MessageTypeBank
	// MessageTypeAlert is for important alerts such as a winner
	MessageTypeAlert
	// MessageTypeSystem is for system and debug messages
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type. Colours are
// chosen to read on the light play-screen background.
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeRoll:
		return color.RGBA{40, 40, 40, 255} // Near black
	case MessageTypePig:
		return color.RGBA{200, 30, 30, 255} // Red
	case MessageTypeBank:
		return color.RGBA{30, 110, 200, 255} // Blue
	case MessageTypeAlert:
		return color.RGBA{205, 140, 0, 255} // Amber
	case MessageTypeSystem:
		return color.RGBA{150, 60, 180, 255} // Purple
	default:
		return color.RGBA{90, 90, 90, 255} // Gray
	}
}
