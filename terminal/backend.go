// Package terminal bridges the compositor to a concrete display. The
// render core only ever writes a pixel buffer; backends here are the
// external collaborators that put a frame in front of the user and feed
// normalized input back through an event queue.
package terminal

import (
	"github.com/lixenwraith/pixelterm/render"
)

// Backend abstracts a display surface for the flattened grid.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size returns the backend's visible area in cells.
	Size() (width, height int)

	// Present flattens pending changes and displays the grid.
	// It does not consume the grid's dirty bitmap; that handshake
	// belongs to the pixel rasterizer.
	Present(g *render.Grid) error

	// Pump translates native input into the backend's event queue until
	// the stop channel is closed. Intended to run on its own goroutine.
	Pump(stop <-chan struct{})
}

// Normalized key codes for non-printable keys. Printable input is coded
// as its CP437 glyph index (0x00-0xFF).
const (
	CodeBackspace uint16 = 0x08
	CodeTab       uint16 = 0x09
	CodeEnter     uint16 = 0x0D
	CodeEscape    uint16 = 0x1B
)

const (
	CodeUp uint16 = 0x100 + iota
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
	CodePgUp
	CodePgDn
	CodeDelete
	CodeInsert
	CodeF1
)
