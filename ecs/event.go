package ecs

// EventType identifies a kind of event
type EventType string

// Event is anything that can be dispatched through the EventManager
type Event interface {
	Type() EventType
}

// EventHandler processes one event
type EventHandler func(Event)

// EventManager dispatches events to subscribers in subscription order
type EventManager struct {
	subscribers map[EventType][]EventHandler
}

// NewEventManager creates an empty event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for an event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Clear drops every handler for an event type
func (em *EventManager) Clear(eventType EventType) {
	delete(em.subscribers, eventType)
}

// Emit calls every handler subscribed to the event's type
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}
