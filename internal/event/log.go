package event

// Log keeps the most recent events, oldest first. It is the narration
// shown next to the fight.
type Log struct {
	capacity int
	events   []Event
}

// NewLog creates a log holding at most capacity events.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{capacity: capacity, events: make([]Event, 0, capacity)}
}

// OnEvent appends the event, dropping the oldest one when full.
func (l *Log) OnEvent(e Event) {
	if len(l.events) == l.capacity {
		copy(l.events, l.events[1:])
		l.events = l.events[:len(l.events)-1]
	}
	l.events = append(l.events, e)
}

// Events returns a copy of the retained events.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Last returns up to n most recent events, oldest first.
func (l *Log) Last(n int) []Event {
	if n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, n)
	copy(out, l.events[len(l.events)-n:])
	return out
}

// Len is the number of retained events.
func (l *Log) Len() int { return len(l.events) }

// Clear drops every event.
func (l *Log) Clear() { l.events = l.events[:0] }
