package constants

// Event Queue Sizing
const (
	// EventQueueSize is the input event ring buffer capacity (power of two)
	EventQueueSize = 256

	// EventBufferMask converts a monotonically increasing index into a
	// ring buffer slot
	EventBufferMask = EventQueueSize - 1
)
