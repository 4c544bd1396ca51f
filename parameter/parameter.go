// Package parameter holds creation-time defaults and hard limits.
// Values are consumed when a grid or queue is constructed; nothing here
// is reconfigurable mid-session.
package parameter

// Terminal Defaults
const (
	// DefaultWidth is the default terminal width in cells
	DefaultWidth = 80

	// DefaultHeight is the default terminal height in cells
	DefaultHeight = 25
)

// Resource Limits
const (
	// DefaultMaxLayers is the default layer stack capacity
	DefaultMaxLayers = 8

	// MaxLayers is the hard ceiling on layer stack capacity
	MaxLayers = 64

	// MaxCells is the hard ceiling on width*height, guarding against
	// accidental huge allocations from untrusted configuration
	MaxCells = 1 << 22
)

// Input Queue
const (
	// DefaultQueueCapacity is the default input event ring capacity.
	// Capacities are rounded up to a power of two for mask indexing
	DefaultQueueCapacity = 256
)
