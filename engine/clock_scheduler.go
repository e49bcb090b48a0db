package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickFunc is invoked once per scheduler tick on the scheduler goroutine.
// It receives the current game time (pausable clock)
type TickFunc func(now time.Time)

// ClockScheduler drives game logic on a fixed real-time tick.
// The loop cadence uses real time so that queued input (including the
// unpause command) keeps flowing while game time is frozen; anything
// pause-sensitive must measure elapsed game time from the value passed
// to the tick callback
type ClockScheduler struct {
	clock        *PausableClock
	tickInterval time.Duration
	tick         TickFunc

	// Next tick deadline in real time, for drift correction
	nextTickDeadline time.Time

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64
	mu        sync.RWMutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler with the specified tick interval
func NewClockScheduler(clock *PausableClock, tickInterval time.Duration, tick TickFunc) *ClockScheduler {
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		tick:         tick,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		go cs.schedulerLoop()
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks processed so far
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with drift correction
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.RealTime().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		realNow := cs.clock.RealTime()

		cs.mu.RLock()
		deadline := cs.nextTickDeadline
		cs.mu.RUnlock()

		if !realNow.Before(deadline) {
			cs.tick(cs.clock.Now())
			cs.tickCount.Add(1)

			cs.mu.Lock()
			cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)

			// Re-anchor when badly behind instead of bursting catch-up ticks
			maxBehind := cs.tickInterval * 2
			if realNow.Sub(cs.nextTickDeadline) > maxBehind {
				cs.nextTickDeadline = realNow.Add(cs.tickInterval)
			}
			deadline = cs.nextTickDeadline
			cs.mu.Unlock()
		}

		sleepDuration := deadline.Sub(cs.clock.RealTime())
		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}
