// internal/event/manager.go
package event

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching. The editor is
// single-threaded, so dispatch is synchronous and unlocked.
type Manager struct {
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch sends an event to all registered handlers for its type.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	handlers := m.handlers[eventType]
	if len(handlers) == 0 {
		return
	}

	// A copy keeps dispatch stable if a handler subscribes during iteration.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	for _, handler := range handlersCopy {
		if handler(Event{Type: eventType, Data: data}) {
			break
		}
	}
}
