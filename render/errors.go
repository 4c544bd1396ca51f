package render

import "errors"

// Structural misconfiguration is reported to the caller; coordinate misuse
// (out-of-bounds put/clear/pick) is silently clipped instead. The grid
// stays in its last consistent state after any failed operation.
var (
	// ErrCapacityExceeded is returned when the layer arena is full.
	ErrCapacityExceeded = errors.New("layer capacity exceeded")

	// ErrDuplicateZOrder is returned when a layer requests a z already
	// taken; z collisions are disallowed to keep composition order
	// deterministic.
	ErrDuplicateZOrder = errors.New("duplicate layer z-order")

	// ErrInvalidGlyph is returned by Put for glyph indices outside the
	// atlas, surfacing the mistake at write time rather than render time.
	ErrInvalidGlyph = errors.New("glyph index outside atlas")

	// ErrBufferTooSmall is returned by Render when the pixel buffer
	// cannot hold the terminal's full pixel extent.
	ErrBufferTooSmall = errors.New("pixel buffer too small")

	// ErrInvalidLayer is returned for handles that do not name a live
	// layer.
	ErrInvalidLayer = errors.New("invalid layer handle")

	// ErrInvalidConfig is returned by NewGrid for unusable dimensions.
	ErrInvalidConfig = errors.New("invalid grid configuration")
)
