package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockfall/events"
)

func TestTranslateSpecialKeys(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		key  tcell.Key
		want events.EventType
	}{
		{tcell.KeyLeft, events.EventMoveLeft},
		{tcell.KeyRight, events.EventMoveRight},
		{tcell.KeyDown, events.EventSoftDrop},
		{tcell.KeyUp, events.EventRotate},
		{tcell.KeyEnter, events.EventStart},
		{tcell.KeyEsc, events.EventTogglePause},
		{tcell.KeyCtrlC, events.EventQuit},
	}
	for _, tt := range tests {
		ev, ok := kt.Translate(tcell.NewEventKey(tt.key, 0, tcell.ModNone))
		if !ok {
			t.Errorf("key %v: no translation", tt.key)
			continue
		}
		if ev.Type != tt.want {
			t.Errorf("key %v -> %v, want %v", tt.key, ev.Type, tt.want)
		}
	}
}

func TestTranslateRunes(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		r    rune
		want events.EventType
	}{
		{'h', events.EventMoveLeft},
		{'l', events.EventMoveRight},
		{'j', events.EventSoftDrop},
		{'k', events.EventRotate},
		{'z', events.EventRotate},
		{' ', events.EventHardDrop},
		{'c', events.EventHold},
		{'b', events.EventActivateAbility},
		{'p', events.EventTogglePause},
		{'r', events.EventReset},
		{'m', events.EventToggleMute},
		{'q', events.EventQuit},
	}
	for _, tt := range tests {
		ev, ok := kt.Translate(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone))
		if !ok {
			t.Errorf("rune %q: no translation", tt.r)
			continue
		}
		if ev.Type != tt.want {
			t.Errorf("rune %q -> %v, want %v", tt.r, ev.Type, tt.want)
		}
	}
}

func TestTranslateUnbound(t *testing.T) {
	kt := DefaultKeyTable()

	if _, ok := kt.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); ok {
		t.Error("unbound rune should not translate")
	}
	if _, ok := kt.Translate(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)); ok {
		t.Error("unbound special key should not translate")
	}
}

func TestTranslateResize(t *testing.T) {
	kt := DefaultKeyTable()

	ev, ok := kt.Translate(tcell.NewEventResize(120, 40))
	if !ok {
		t.Fatal("resize events should translate")
	}
	if ev.Type != events.EventResize {
		t.Fatalf("resize -> %v", ev.Type)
	}
	payload, ok := ev.Payload.(*events.ResizePayload)
	if !ok {
		t.Fatal("resize payload has wrong type")
	}
	if payload.Width != 120 || payload.Height != 40 {
		t.Errorf("payload = %dx%d, want 120x40", payload.Width, payload.Height)
	}
}
