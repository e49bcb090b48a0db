package events

// ResizePayload carries the new terminal dimensions
type ResizePayload struct {
	Width  int
	Height int
}
