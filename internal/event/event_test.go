package event

import "testing"

type recorder struct{ got []EventType }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	typed := &recorder{}
	all := &recorder{}
	d.Subscribe(Healed, typed)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: Healed})
	d.Dispatch(Event{Type: DamageDealt})

	if len(typed.got) != 1 || typed.got[0] != Healed {
		t.Fatalf("typed listener got %v", typed.got)
	}
	if len(all.got) != 2 {
		t.Fatalf("catch-all listener got %v", all.got)
	}

	d.Unsubscribe(Healed, typed)
	d.Dispatch(Event{Type: Healed})
	if len(typed.got) != 1 {
		t.Fatalf("unsubscribed listener still called: %v", typed.got)
	}
}

type payload struct{ n int }

func TestOnRoutesTypedPayloads(t *testing.T) {
	d := NewDispatcher()
	var got []int
	l := On(d, func(_ EventType, p payload) { got = append(got, p.n) }, Healed, DamageDealt)
	var all int
	On(d, func(EventType, payload) { all++ })

	d.Dispatch(Event{Type: Healed, Data: payload{1}})
	d.Dispatch(Event{Type: DamageDealt, Data: payload{2}})
	d.Dispatch(Event{Type: Healed, Data: "not a payload"})
	d.Dispatch(Event{Type: NewRound, Data: payload{3}})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("typed listener got %v", got)
	}
	if all != 3 {
		t.Fatalf("catch-all typed listener called %d times, want 3", all)
	}

	d.Unsubscribe(Healed, l)
	d.Dispatch(Event{Type: Healed, Data: payload{4}})
	if len(got) != 2 {
		t.Fatalf("unsubscribed listener still called: %v", got)
	}

	if p, ok := Payload[payload](Event{Data: payload{5}}); !ok || p.n != 5 {
		t.Fatalf("payload = %v, %v", p, ok)
	}
	if _, ok := Payload[payload](Event{}); ok {
		t.Fatal("an empty event has no payload")
	}
}

func TestUnsubscribeCatchAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r)
	d.Unsubscribe("", r)
	d.Dispatch(Event{Type: Healed})
	if len(r.got) != 0 {
		t.Fatalf("removed catch-all listener got %v", r.got)
	}
}

func TestLogIsBounded(t *testing.T) {
	l := NewLog(3)
	for i := 0; i < 5; i++ {
		l.OnEvent(Event{Type: NewRound, Data: i})
	}
	if l.Len() != 3 {
		t.Fatalf("len = %d, want 3", l.Len())
	}
	events := l.Events()
	for i, e := range events {
		if e.Data.(int) != i+2 {
			t.Fatalf("event %d = %v, want %d", i, e.Data, i+2)
		}
	}
	last := l.Last(2)
	if len(last) != 2 || last[1].Data.(int) != 4 {
		t.Fatalf("last = %v", last)
	}
	if got := l.Last(10); len(got) != 3 {
		t.Fatalf("last(10) len = %d", len(got))
	}
	l.Clear()
	if l.Len() != 0 {
		t.Fatal("clear kept events")
	}
}
