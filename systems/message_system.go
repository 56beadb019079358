package systems

import (
	"fmt"
	"strings"

	"ebiten-platformer/ecs"
)

// DefaultMaxMessages is how many messages a log keeps
const DefaultMaxMessages = 100

// MessageLog keeps the most recent in-game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int

	edges [4]bool // left, right, top, bottom
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{MaxMessages: DefaultMaxMessages}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddColored adds a typed message and drops the oldest past MaxMessages
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})
	if ml.MaxMessages > 0 && len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages returns up to n messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}
	if n < 0 {
		n = 0
	}
	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
	ml.edges = [4]bool{}
}

// Subscribe records level loads, newly reached camera edges and trace failures
func (ml *MessageLog) Subscribe(world *ecs.World) {
	world.Events().Subscribe(EventLevelLoaded, func(e ecs.Event) {
		ev := e.(LevelLoadedEvent)
		ml.AddColored(fmt.Sprintf("Loaded %s (%dx%d)", ev.Name, ev.Width, ev.Height), MessageTypeLevel)
	})
	world.Events().Subscribe(EventTraceStopped, func(e ecs.Event) {
		ev := e.(TraceStoppedEvent)
		ml.AddColored(fmt.Sprintf("Trace stopped: %v", ev.Err), MessageTypeSystem)
	})
	world.Events().Subscribe(EventCameraUpdate, func(e ecs.Event) {
		ev := e.(CameraUpdateEvent)
		now := [4]bool{ev.AtLeft, ev.AtRight, ev.AtTop, ev.AtBottom}
		names := [4]string{"left", "right", "top", "bottom"}
		var reached []string
		for i := range now {
			if now[i] && !ml.edges[i] {
				reached = append(reached, names[i])
			}
		}
		ml.edges = now
		if len(reached) > 0 {
			ml.AddColored("Camera at "+strings.Join(reached, ", ")+" edge", MessageTypeCamera)
		}
	})
}
