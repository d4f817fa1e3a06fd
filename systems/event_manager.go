package systems

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies one registered handler
type Subscription struct {
	eventType EventType
	id        int
}

type subscriber struct {
	id      int
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches synchronously
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      int
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return Subscription{eventType: eventType, id: em.nextID}
}

// Unsubscribe removes a previously registered handler
func (em *EventManager) Unsubscribe(sub Subscription) {
	handlers := em.subscribers[sub.eventType]
	kept := handlers[:0]
	for _, s := range handlers {
		if s.id != sub.id {
			kept = append(kept, s)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, sub.eventType)
	} else {
		em.subscribers[sub.eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	for _, s := range em.subscribers[event.Type()] {
		s.handler(event)
	}
}
