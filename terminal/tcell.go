package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixelterm/event"
	"github.com/lixenwraith/pixelterm/font"
	"github.com/lixenwraith/pixelterm/render"
)

// TcellBackend displays the flattened grid on a real terminal through
// tcell and converts tcell input into normalized queue events. One cell
// of the grid maps to one terminal cell; glyph indices are displayed via
// their Unicode equivalents.
type TcellBackend struct {
	screen  tcell.Screen
	queue   *event.Queue
	buttons tcell.ButtonMask
	lastX   int
	lastY   int
	resize  func(width, height int)
}

// NewTcellBackend creates a backend that pushes input into queue.
func NewTcellBackend(queue *event.Queue) *TcellBackend {
	return &TcellBackend{queue: queue, lastX: -1, lastY: -1}
}

func (b *TcellBackend) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	b.screen = screen
	return nil
}

func (b *TcellBackend) Fini() {
	if b.screen != nil {
		b.screen.Fini()
	}
}

func (b *TcellBackend) Size() (width, height int) {
	return b.screen.Size()
}

// SetResizeHandler registers a callback for terminal resize events.
func (b *TcellBackend) SetResizeHandler(handler func(width, height int)) {
	b.resize = handler
}

// Present flattens the grid and pushes every cell to the terminal. tcell
// diffs against its own back buffer, so a full walk stays cheap; the
// grid's dirty bitmap is left for the rasterizer handshake.
func (b *TcellBackend) Present(g *render.Grid) error {
	g.Flatten()
	cells := g.Flattened()
	w := g.Width()
	for idx, c := range cells {
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
			Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
		r := font.RuneFor(c.Glyph)
		if r == 0 {
			r = ' '
		}
		b.screen.SetContent(idx%w, idx/w, r, nil, style)
	}
	b.screen.Show()
	return nil
}

// Pump blocks on tcell's event stream, translating until stop closes.
func (b *TcellBackend) Pump(stop <-chan struct{}) {
	evCh := make(chan tcell.Event)
	quit := make(chan struct{})
	go b.screen.ChannelEvents(evCh, quit)
	for {
		select {
		case <-stop:
			close(quit)
			return
		case ev, ok := <-evCh:
			if !ok {
				return
			}
			b.translate(ev)
		}
	}
}

func (b *TcellBackend) translate(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Terminals report presses only; key-up never fires here
		b.queue.Push(event.Key(event.KeyDown, keyCode(ev)))
	case *tcell.EventMouse:
		x, y := ev.Position()
		if x != b.lastX || y != b.lastY {
			b.lastX, b.lastY = x, y
			b.queue.Push(event.Move(x, y))
		}
		b.pushButtonEdges(ev.Buttons())
	case *tcell.EventResize:
		if b.resize != nil {
			b.resize(ev.Size())
		}
	}
}

// pushButtonEdges emits one PointerButton event per changed button.
func (b *TcellBackend) pushButtonEdges(buttons tcell.ButtonMask) {
	changed := buttons ^ b.buttons
	b.buttons = buttons
	edges := []struct {
		mask tcell.ButtonMask
		btn  event.Button
	}{
		{tcell.Button1, event.ButtonLeft},
		{tcell.Button2, event.ButtonMiddle},
		{tcell.Button3, event.ButtonRight},
	}
	for _, e := range edges {
		if changed&e.mask != 0 {
			b.queue.Push(event.Click(e.btn, buttons&e.mask != 0))
		}
	}
}

var specialKeys = map[tcell.Key]uint16{
	tcell.KeyEnter:      CodeEnter,
	tcell.KeyEscape:     CodeEscape,
	tcell.KeyTab:        CodeTab,
	tcell.KeyBackspace:  CodeBackspace,
	tcell.KeyBackspace2: CodeBackspace,
	tcell.KeyUp:         CodeUp,
	tcell.KeyDown:       CodeDown,
	tcell.KeyLeft:       CodeLeft,
	tcell.KeyRight:      CodeRight,
	tcell.KeyHome:       CodeHome,
	tcell.KeyEnd:        CodeEnd,
	tcell.KeyPgUp:       CodePgUp,
	tcell.KeyPgDn:       CodePgDn,
	tcell.KeyDelete:     CodeDelete,
	tcell.KeyInsert:     CodeInsert,
}

// keyCode normalizes a tcell key event: printable runes are coded as
// their CP437 glyph index, specials through the code table.
func keyCode(ev *tcell.EventKey) uint16 {
	if ev.Key() == tcell.KeyRune {
		if idx, ok := font.IndexOf(ev.Rune()); ok {
			return uint16(idx)
		}
		return uint16('?')
	}
	if code, ok := specialKeys[ev.Key()]; ok {
		return code
	}
	return CodeF1 + uint16(ev.Key()-tcell.KeyF1)
}
