package game

import (
	"testing"

	"github.com/lixenwraith/blockfall/constants"
)

func TestBaseScore(t *testing.T) {
	p := NewProgression()

	tests := []struct {
		level int
		n     int
		want  int
	}{
		{1, 0, 0},
		{1, 1, 40},
		{1, 2, 100},
		{1, 3, 300},
		{1, 4, 1200},
		{2, 4, 2400},
		{3, 1, 120},
	}
	for _, tt := range tests {
		p.Level = tt.level
		if got := p.BaseScore(tt.n); got != tt.want {
			t.Errorf("BaseScore(%d) at level %d = %d, want %d", tt.n, tt.level, got, tt.want)
		}
	}

	// Counts above 4 clamp to the tetris multiplier
	p.Level = 1
	if got := p.BaseScore(7); got != 1200 {
		t.Errorf("BaseScore(7) = %d, want 1200", got)
	}
}

func TestApplyClearLevelCurve(t *testing.T) {
	p := NewProgression()

	if p.Level != 1 || p.DropInterval != constants.InitialDropInterval {
		t.Fatalf("starting state: level %d interval %v", p.Level, p.DropInterval)
	}

	leveledUp := p.ApplyClear(4, p.BaseScore(4))
	if leveledUp || p.Level != 1 {
		t.Error("4 lines should not level up from 0")
	}
	if p.Score != 1200 || p.Lines != 4 {
		t.Errorf("score=%d lines=%d, want 1200/4", p.Score, p.Lines)
	}

	p.ApplyClear(4, 0)
	if !p.ApplyClear(2, 0) {
		t.Error("crossing 10 lines should level up")
	}
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
	if p.DropInterval >= constants.InitialDropInterval {
		t.Error("drop interval must shrink on level up")
	}
}

func TestDropIntervalMonotonicAndClamped(t *testing.T) {
	prev := dropIntervalForLevel(1)
	if prev != constants.InitialDropInterval {
		t.Errorf("level 1 interval = %v, want %v", prev, constants.InitialDropInterval)
	}

	for level := 2; level <= 60; level++ {
		cur := dropIntervalForLevel(level)
		if cur > prev {
			t.Fatalf("interval increased from %v to %v at level %d", prev, cur, level)
		}
		if cur < constants.MinDropInterval {
			t.Fatalf("interval %v below floor at level %d", cur, level)
		}
		prev = cur
	}

	// Deep levels pin at the clamped tempo
	if dropIntervalForLevel(100) != dropIntervalForLevel(200) {
		t.Error("interval should be constant once tempo is capped")
	}
}

func TestAddScoreIgnoresNonPositive(t *testing.T) {
	p := NewProgression()
	p.AddScore(10)
	p.AddScore(-5)
	p.AddScore(0)
	if p.Score != 10 {
		t.Errorf("score = %d, want 10", p.Score)
	}
}
