package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestClockSchedulerTicks(t *testing.T) {
	clock := NewPausableClock(nil)

	var ticks atomic.Int64
	cs := NewClockScheduler(clock, 5*time.Millisecond, func(now time.Time) {
		ticks.Add(1)
	})
	cs.Start()
	defer cs.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("scheduler produced %d ticks in 2s, want at least 3", ticks.Load())
		}
		time.Sleep(time.Millisecond)
	}

	if cs.TickCount() < 3 {
		t.Errorf("TickCount = %d, want at least 3", cs.TickCount())
	}
}

func TestClockSchedulerTicksWhileClockPaused(t *testing.T) {
	clock := NewPausableClock(nil)
	clock.Pause()
	frozen := clock.Now()

	var got atomic.Value
	var ticks atomic.Int64
	cs := NewClockScheduler(clock, 5*time.Millisecond, func(now time.Time) {
		got.Store(now)
		ticks.Add(1)
	})
	cs.Start()
	defer cs.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("scheduler stalled while the game clock was paused")
		}
		time.Sleep(time.Millisecond)
	}

	// The loop keeps running on real time; the tick payload is the
	// frozen game time
	if now := got.Load().(time.Time); !now.Equal(frozen) {
		t.Errorf("tick received game time %v, want frozen %v", now, frozen)
	}
}

func TestClockSchedulerStopIdempotent(t *testing.T) {
	clock := NewPausableClock(nil)
	cs := NewClockScheduler(clock, time.Millisecond, func(time.Time) {})
	cs.Start()

	cs.Stop()
	cs.Stop() // Second stop must not panic or block

	count := cs.TickCount()
	time.Sleep(20 * time.Millisecond)
	if cs.TickCount() != count {
		t.Error("scheduler ticked after stop")
	}
}
