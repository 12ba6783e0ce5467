// internal/event/event.go
package event

// EventType tags an event and selects its listeners.
type EventType string

// Event carries a type and an optional payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// Payload returns the event data as a T.
func Payload[T any](e Event) (T, bool) {
	p, ok := e.Data.(T)
	return p, ok
}

// typedListener forwards events carrying a T payload.
type typedListener[T any] struct {
	fn func(EventType, T)
}

func (l *typedListener[T]) OnEvent(e Event) {
	if p, ok := Payload[T](e); ok {
		l.fn(e.Type, p)
	}
}

// On subscribes fn to the given event types, or to all of them when none
// is given. Events whose payload is not a T never reach fn. The returned
// listener can be passed to Unsubscribe.
func On[T any](d *Dispatcher, fn func(EventType, T), types ...EventType) Listener {
	l := &typedListener[T]{fn: fn}
	if len(types) == 0 {
		d.SubscribeAll(l)
		return l
	}
	for _, t := range types {
		d.Subscribe(t, l)
	}
	return l
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe removes a listener registered with Subscribe, or with
// SubscribeAll when eventType is empty.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if eventType == "" {
		d.all = remove(d.all, listener)
		return
	}
	if listeners, exists := d.listeners[eventType]; exists {
		d.listeners[eventType] = remove(listeners, listener)
	}
}

func remove(listeners []Listener, listener Listener) []Listener {
	for i, l := range listeners {
		if l == listener {
			return append(listeners[:i], listeners[i+1:]...)
		}
	}
	return listeners
}

// Dispatch sends the event to the type listeners, then to the catch-all ones.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}
