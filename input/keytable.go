// Package input translates tcell key events into game command events.
// The core performs no key-code parsing: the poller is the only place
// keys are interpreted
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/events"
)

// KeyTable maps keys to command events
type KeyTable struct {
	// Special keys (arrows, space, enter, Ctrl+*)
	SpecialKeys map[tcell.Key]events.EventType

	// Plain rune bindings
	Runes map[rune]events.EventType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]events.EventType{
			tcell.KeyLeft:  events.EventMoveLeft,
			tcell.KeyRight: events.EventMoveRight,
			tcell.KeyDown:  events.EventSoftDrop,
			tcell.KeyUp:    events.EventRotate,
			tcell.KeyEnter: events.EventStart,
			tcell.KeyCtrlC: events.EventQuit,
			tcell.KeyEsc:   events.EventTogglePause,
		},
		Runes: map[rune]events.EventType{
			'h': events.EventMoveLeft,
			'l': events.EventMoveRight,
			'j': events.EventSoftDrop,
			'k': events.EventRotate,
			'z': events.EventRotate,
			' ': events.EventHardDrop,
			'c': events.EventHold,
			'b': events.EventActivateAbility,
			'p': events.EventTogglePause,
			'r': events.EventReset,
			'm': events.EventToggleMute,
			'q': events.EventQuit,
		},
	}
}

// Translate resolves a tcell event to a command event. ok is false for
// keys with no binding and for non-key events other than resize
func (kt *KeyTable) Translate(ev tcell.Event) (events.GameEvent, bool) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		if tev.Key() == tcell.KeyRune {
			if t, ok := kt.Runes[tev.Rune()]; ok {
				return events.GameEvent{Type: t, Time: tev.When()}, true
			}
			return events.GameEvent{}, false
		}
		if t, ok := kt.SpecialKeys[tev.Key()]; ok {
			return events.GameEvent{Type: t, Time: tev.When()}, true
		}
	case *tcell.EventResize:
		w, h := tev.Size()
		return events.GameEvent{
			Type:    events.EventResize,
			Time:    tev.When(),
			Payload: &events.ResizePayload{Width: w, Height: h},
		}, true
	}
	return events.GameEvent{}, false
}

// Poller reads terminal events and pushes translated commands onto the
// game event queue. Runs on its own goroutine; PollEvent returns nil
// after screen Fini, which ends the loop
type Poller struct {
	screen tcell.Screen
	table  *KeyTable
	queue  *events.Queue
}

// NewPoller creates a poller bound to the screen and queue
func NewPoller(screen tcell.Screen, table *KeyTable, queue *events.Queue) *Poller {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Poller{screen: screen, table: table, queue: queue}
}

// Run blocks reading events until the screen is finalized
func (p *Poller) Run() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		if cmd, ok := p.table.Translate(ev); ok {
			p.queue.Push(cmd)
		}
	}
}
