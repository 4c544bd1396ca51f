// Package event carries normalized input events from an external device
// layer to the application through a bounded ring queue.
package event

import "time"

// Type discriminates the input event variants
type Type uint8

const (
	// KeyDown reports a key press. Payload: Code
	KeyDown Type = iota

	// KeyUp reports a key release. Payload: Code
	KeyUp

	// PointerMove reports pointer motion. Payload: X, Y
	PointerMove

	// PointerButton reports a button transition. Payload: Button, Pressed
	PointerButton
)

// Button identifies a pointer button
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Event is a tagged variant over the input types. Only the fields named
// for the event's Type are meaningful; the rest stay zero.
type Event struct {
	Type    Type
	Time    time.Time // monotonic arrival timestamp
	Code    uint16    // key code, KeyDown/KeyUp
	X, Y    int       // pointer position, PointerMove
	Button  Button    // PointerButton
	Pressed bool      // PointerButton
}

// Key creates a key press or release event stamped with the current time.
func Key(t Type, code uint16) Event {
	return Event{Type: t, Time: time.Now(), Code: code}
}

// Move creates a pointer motion event stamped with the current time.
func Move(x, y int) Event {
	return Event{Type: PointerMove, Time: time.Now(), X: x, Y: y}
}

// Click creates a pointer button event stamped with the current time.
func Click(b Button, pressed bool) Event {
	return Event{Type: PointerButton, Time: time.Now(), Button: b, Pressed: pressed}
}
