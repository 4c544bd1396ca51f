package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixelterm/event"
)

func newTestBackend() (*TcellBackend, *event.Queue) {
	q := event.NewQueue(16)
	return NewTcellBackend(q), q
}

func TestKeyCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want uint16
	}{
		{"printable ascii", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), uint16('a')},
		{"cp437 box drawing", tcell.NewEventKey(tcell.KeyRune, '═', tcell.ModNone), 0xCD},
		{"unmappable rune", tcell.NewEventKey(tcell.KeyRune, '中', tcell.ModNone), uint16('?')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CodeEscape},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), CodeEnter},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), CodeUp},
	}
	for _, tt := range tests {
		if got := keyCode(tt.ev); got != tt.want {
			t.Errorf("%s: keyCode = %#04x, want %#04x", tt.name, got, tt.want)
		}
	}
}

func TestTranslateKeyPush(t *testing.T) {
	b, q := newTestBackend()
	b.translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	ev, ok := q.Poll()
	if !ok || ev.Type != event.KeyDown || ev.Code != uint16('x') {
		t.Errorf("Expected KeyDown 'x', got %+v ok=%v", ev, ok)
	}
}

func TestTranslateMouseMoveDedup(t *testing.T) {
	b, q := newTestBackend()
	b.translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	b.translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))

	ev, ok := q.Poll()
	if !ok || ev.Type != event.PointerMove || ev.X != 3 || ev.Y != 4 {
		t.Fatalf("Expected move to (3, 4), got %+v", ev)
	}
	if _, ok := q.Poll(); ok {
		t.Error("Expected repeated position to produce no event")
	}
}

func TestTranslateButtonEdges(t *testing.T) {
	b, q := newTestBackend()
	// Press at a fresh position: one move, one press
	b.translate(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	// Held during drag to the same position: no extra events
	b.translate(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	// Release
	b.translate(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))

	var got []event.Event
	for {
		ev, ok := q.Poll()
		if !ok {
			break
		}
		got = append(got, ev)
	}
	if len(got) != 3 {
		t.Fatalf("Expected move+press+release, got %d events: %+v", len(got), got)
	}
	if got[0].Type != event.PointerMove {
		t.Errorf("Expected first event to be the move, got %+v", got[0])
	}
	press, release := got[1], got[2]
	if press.Type != event.PointerButton || press.Button != event.ButtonLeft || !press.Pressed {
		t.Errorf("Expected left press, got %+v", press)
	}
	if release.Type != event.PointerButton || release.Button != event.ButtonLeft || release.Pressed {
		t.Errorf("Expected left release, got %+v", release)
	}
}
