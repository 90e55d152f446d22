package events

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// Handler is a function that processes events
type Handler func(Event)

// Bus manages event subscriptions and dispatches
type Bus struct {
	subscribers map[EventType][]Handler
	all         []Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// SubscribeAll registers a handler that receives every event
func (b *Bus) SubscribeAll(handler Handler) {
	b.all = append(b.all, handler)
}

// Emit dispatches an event to all subscribed handlers. Type-specific handlers
// run before catch-all handlers, each group in subscription order.
func (b *Bus) Emit(event Event) {
	if b == nil {
		return
	}
	for _, handler := range b.subscribers[event.Type()] {
		handler(event)
	}
	for _, handler := range b.all {
		handler(event)
	}
}
