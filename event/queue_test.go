package event

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(8)
	for i := 0; i < 5; i++ {
		q.Push(Key(KeyDown, uint16(i)))
	}
	if q.Len() != 5 {
		t.Errorf("Expected 5 pending, got %d", q.Len())
	}
	for i := 0; i < 5; i++ {
		ev, ok := q.Poll()
		if !ok {
			t.Fatalf("Expected event %d", i)
		}
		if ev.Code != uint16(i) {
			t.Errorf("Expected code %d in order, got %d", i, ev.Code)
		}
	}
	if _, ok := q.Poll(); ok {
		t.Error("Expected empty queue after drain")
	}
}

func TestQueuePeek(t *testing.T) {
	q := NewQueue(4)
	if _, ok := q.Peek(); ok {
		t.Error("Expected empty peek to report false")
	}
	q.Push(Key(KeyDown, 7))
	q.Push(Key(KeyDown, 8))

	ev, ok := q.Peek()
	if !ok || ev.Code != 7 {
		t.Errorf("Peek = (%v, %v), want code 7", ev.Code, ok)
	}
	if q.Len() != 2 {
		t.Errorf("Expected peek to leave both events pending, got %d", q.Len())
	}
	if ev, _ := q.Poll(); ev.Code != 7 {
		t.Errorf("Expected poll to return the peeked event, got %d", ev.Code)
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	const capacity, pushed = 4, 11
	q := NewQueue(capacity)
	for i := 0; i < pushed; i++ {
		q.Push(Key(KeyDown, uint16(i)))
	}
	if got := q.Dropped(); got != pushed-capacity {
		t.Errorf("Expected %d dropped events, got %d", pushed-capacity, got)
	}
	// Exactly the most recent K events remain, relative order preserved
	for i := pushed - capacity; i < pushed; i++ {
		ev, ok := q.Poll()
		if !ok {
			t.Fatalf("Expected event with code %d", i)
		}
		if ev.Code != uint16(i) {
			t.Errorf("Expected code %d, got %d", i, ev.Code)
		}
	}
	if _, ok := q.Poll(); ok {
		t.Error("Expected queue drained")
	}
}

func TestQueueCapacityRounding(t *testing.T) {
	if got := NewQueue(5).Cap(); got != 8 {
		t.Errorf("Expected capacity rounded to 8, got %d", got)
	}
	if got := NewQueue(0).Cap(); got == 0 {
		t.Error("Expected default capacity for zero request")
	}
}

func TestQueueInterleaved(t *testing.T) {
	q := NewQueue(4)
	q.Push(Move(1, 2))
	q.Push(Click(ButtonLeft, true))

	ev, _ := q.Poll()
	if ev.Type != PointerMove || ev.X != 1 || ev.Y != 2 {
		t.Errorf("Expected pointer move (1, 2), got %+v", ev)
	}
	q.Push(Click(ButtonLeft, false))

	ev, _ = q.Poll()
	if ev.Type != PointerButton || ev.Button != ButtonLeft || !ev.Pressed {
		t.Errorf("Expected left press, got %+v", ev)
	}
	ev, _ = q.Poll()
	if ev.Type != PointerButton || ev.Pressed {
		t.Errorf("Expected left release, got %+v", ev)
	}
}

func TestEventTimestampsMonotonic(t *testing.T) {
	q := NewQueue(4)
	q.Push(Key(KeyDown, 1))
	q.Push(Key(KeyDown, 2))
	a, _ := q.Poll()
	b, _ := q.Poll()
	if b.Time.Before(a.Time) {
		t.Error("Expected arrival timestamps to be non-decreasing")
	}
}
