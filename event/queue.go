package event

import (
	"sync/atomic"

	"github.com/lixenwraith/pixelterm/parameter"
)

// Queue is a bounded lock-free ring buffer for input events
// Thread-Safety:
//   - Push: single producer (the terminal backend's pump goroutine)
//   - Poll/Peek: single consumer (application loop)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are dropped and counted; the producer never
// blocks and events are never reordered
type Queue struct {
	events    []Event
	published []atomic.Bool // true = slot fully written
	mask      uint64
	head      atomic.Uint64 // read index
	tail      atomic.Uint64 // write index
	dropped   atomic.Uint64
}

// NewQueue creates a queue with at least the given capacity. Capacities
// round up to a power of two for mask indexing; zero or negative selects
// the default.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = parameter.DefaultQueueCapacity
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &Queue{
		events:    make([]Event, size),
		published: make([]atomic.Bool, size),
		mask:      uint64(size - 1),
	}
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return len(q.events)
}

// Push appends an event. When the ring is full the oldest pending event
// is evicted and the drop counter incremented; intermediate pointer moves
// are tolerable losses, a stalled producer is not.
func (q *Queue) Push(ev Event) {
	tail := q.tail.Load()
	if tail-q.head.Load() >= uint64(len(q.events)) {
		head := q.head.Load()
		if head < tail && q.head.CompareAndSwap(head, head+1) {
			q.dropped.Add(1)
		}
	}
	idx := tail & q.mask
	q.events[idx] = ev
	q.published[idx].Store(true) // MUST be after the event write
	q.tail.Store(tail + 1)
}

// Poll pops the oldest pending event in FIFO order.
func (q *Queue) Poll() (Event, bool) {
	for {
		head := q.head.Load()
		if head == q.tail.Load() {
			return Event{}, false
		}
		idx := head & q.mask
		if !q.published[idx].Load() {
			// Writer incomplete; nothing consumable yet
			return Event{}, false
		}
		ev := q.events[idx]
		if q.head.CompareAndSwap(head, head+1) {
			q.published[idx].Store(false)
			return ev, true
		}
	}
}

// Peek returns the oldest pending event without removing it.
func (q *Queue) Peek() (Event, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return Event{}, false
	}
	idx := head & q.mask
	if !q.published[idx].Load() {
		return Event{}, false
	}
	return q.events[idx], true
}

// Len returns the approximate pending event count.
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	n := int(tail - head)
	if n > len(q.events) {
		return len(q.events)
	}
	return n
}

// Dropped returns the number of events evicted by overflow.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
