package systems

import (
	"image/color"
	"strings"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for plain progress messages (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeInfo is for generation summaries (gold)
	MessageTypeInfo
	// MessageTypeWarning is for recoverable generation problems (yellow)
	MessageTypeWarning
	// MessageTypeError is for failed builds (red)
	MessageTypeError
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// ClassifyMessage picks the message type from the log prefix the generator uses
func ClassifyMessage(text string) MessageType {
	upper := strings.ToUpper(text)
	switch {
	case strings.HasPrefix(upper, "ERROR"):
		return MessageTypeError
	case strings.HasPrefix(upper, "WARNING"):
		return MessageTypeWarning
	case strings.HasPrefix(upper, "INFO"):
		return MessageTypeInfo
	default:
		return MessageTypeNormal
	}
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeInfo:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeWarning:
		return color.RGBA{255, 255, 0, 255} // Bright Yellow
	case MessageTypeError:
		return color.RGBA{255, 100, 100, 255} // Red
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray (default)
	}
}
