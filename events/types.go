package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventMoveLeft shifts the active piece one column left
	// Trigger: input poller (h / left arrow)
	// Consumer: Session | Payload: nil
	EventMoveLeft EventType = iota

	// EventMoveRight shifts the active piece one column right
	// Trigger: input poller (l / right arrow)
	// Consumer: Session | Payload: nil
	EventMoveRight

	// EventSoftDrop advances the active piece one row down
	// Trigger: input poller (j / down arrow)
	// Consumer: Session | Payload: nil
	EventSoftDrop

	// EventRotate rotates the active piece 90 degrees clockwise
	// Trigger: input poller (k / z / up arrow)
	// Consumer: Session | Payload: nil
	EventRotate

	// EventHold stores or swaps the active piece with the hold slot
	// Trigger: input poller (c)
	// Consumer: Session | Payload: nil
	EventHold

	// EventHardDrop drops the active piece to its projected position
	// Trigger: input poller (space)
	// Consumer: Session | Payload: nil
	EventHardDrop

	// EventActivateAbility attempts to trigger the ultimate ability
	// Trigger: input poller (b)
	// Consumer: Session | Payload: nil
	EventActivateAbility

	// EventTogglePause pauses or resumes the game clock
	// Trigger: input poller (p)
	// Consumer: Session | Payload: nil
	EventTogglePause

	// EventReset cancels all pending windows and reallocates game state
	// Trigger: input poller (r)
	// Consumer: Session | Payload: nil
	EventReset

	// EventStart begins a session from the title state
	// Trigger: input poller (enter)
	// Consumer: Session | Payload: nil
	EventStart

	// EventQuit terminates the program
	// Trigger: input poller (q / Ctrl+C)
	// Consumer: main loop | Payload: nil
	EventQuit

	// EventToggleMute toggles the audio backend mute flag
	// Trigger: input poller (m)
	// Consumer: main loop | Payload: nil
	EventToggleMute

	// EventResize signals a terminal geometry change
	// Trigger: tcell resize event
	// Consumer: main loop | Payload: *ResizePayload
	EventResize
)

// String returns a human-readable event type name for logging
func (t EventType) String() string {
	switch t {
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventSoftDrop:
		return "SoftDrop"
	case EventRotate:
		return "Rotate"
	case EventHold:
		return "Hold"
	case EventHardDrop:
		return "HardDrop"
	case EventActivateAbility:
		return "ActivateAbility"
	case EventTogglePause:
		return "TogglePause"
	case EventReset:
		return "Reset"
	case EventStart:
		return "Start"
	case EventQuit:
		return "Quit"
	case EventToggleMute:
		return "ToggleMute"
	case EventResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// GameEvent is a single queued event with its payload and enqueue time
type GameEvent struct {
	Type    EventType
	Time    time.Time
	Payload any
}
