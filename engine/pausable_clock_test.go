package engine

import (
	"testing"
	"time"
)

func TestPausableClockAdvances(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(100, 0))
	clock := NewPausableClock(mock)

	start := clock.Now()
	mock.Advance(3 * time.Second)

	if got := clock.Now().Sub(start); got != 3*time.Second {
		t.Errorf("game time advanced %v, want 3s", got)
	}
}

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(100, 0))
	clock := NewPausableClock(mock)

	mock.Advance(time.Second)
	clock.Pause()
	frozen := clock.Now()

	mock.Advance(10 * time.Second)
	if got := clock.Now(); !got.Equal(frozen) {
		t.Errorf("game time moved during pause: %v -> %v", frozen, got)
	}
	if !clock.IsPaused() {
		t.Error("clock should report paused")
	}

	// Real time keeps flowing regardless
	if clock.RealTime().Sub(time.Unix(100, 0)) != 11*time.Second {
		t.Errorf("real time = %v", clock.RealTime())
	}

	clock.Resume()
	mock.Advance(2 * time.Second)
	if got := clock.Now().Sub(frozen); got != 2*time.Second {
		t.Errorf("game time after resume advanced %v, want 2s", got)
	}
	if clock.TotalPauseDuration() != 10*time.Second {
		t.Errorf("total pause duration = %v, want 10s", clock.TotalPauseDuration())
	}
}

func TestPausableClockRepeatedPauseResume(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)

	for i := 0; i < 3; i++ {
		mock.Advance(time.Second)
		clock.Pause()
		clock.Pause() // Redundant calls are no-ops
		mock.Advance(time.Second)
		clock.Resume()
		clock.Resume()
	}

	if clock.TotalPauseDuration() != 3*time.Second {
		t.Errorf("total pause duration = %v, want 3s", clock.TotalPauseDuration())
	}
	elapsed := clock.Now().Sub(time.Unix(0, 0))
	if elapsed != 3*time.Second {
		t.Errorf("game elapsed = %v, want 3s", elapsed)
	}
}

func TestPauseDurationIncludesOpenPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	clock := NewPausableClock(mock)

	clock.Pause()
	mock.Advance(4 * time.Second)
	if clock.TotalPauseDuration() != 4*time.Second {
		t.Errorf("open pause duration = %v, want 4s", clock.TotalPauseDuration())
	}
}
