package game

import "testing"

func TestRenSequence(t *testing.T) {
	var c ComboTracker

	// Clears on three consecutive locks, then a lock with no clear
	want := []int{1, 2, 3}
	for i, w := range want {
		if got := c.OnClear(); got != w {
			t.Fatalf("clear %d: ren = %d, want %d", i+1, got, w)
		}
	}

	c.OnNoClear()
	if c.Ren() != 0 {
		t.Errorf("ren after no-clear = %d, want 0", c.Ren())
	}

	// The chain restarts at 1, not where it left off
	if got := c.OnClear(); got != 1 {
		t.Errorf("ren after restart = %d, want 1", got)
	}
}

func TestRenBonus(t *testing.T) {
	var c ComboTracker

	tests := []struct {
		base int
		ren  int
		want int
	}{
		{40, 1, 20},
		{40, 2, 40},
		{100, 3, 150},
		{1200, 10, 6000},
		{1200, 15, 6000}, // capped at 10
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := c.Bonus(tt.base, tt.ren); got != tt.want {
			t.Errorf("Bonus(%d, %d) = %d, want %d", tt.base, tt.ren, got, tt.want)
		}
	}
}
