package fx

type EventType int

const (
	EventResize EventType = iota
	EventPointerMove
	EventPointerLeave
)

// Event carries viewport coordinates for pointer events and the new
// viewport size for resize events.
type Event struct {
	Type EventType
	X, Y float64
	W, H float64
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the caller's goroutine, in
// subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
