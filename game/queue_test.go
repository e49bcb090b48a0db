package game

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/blockfall/constants"
)

func TestQueueDepthInvariant(t *testing.T) {
	q := NewPieceQueue(rand.New(rand.NewSource(1)))

	if got := len(q.Preview()); got != constants.QueueDepth {
		t.Fatalf("initial depth = %d, want %d", got, constants.QueueDepth)
	}
	for i := 0; i < 50; i++ {
		q.Pop()
		if got := len(q.Preview()); got != constants.QueueDepth {
			t.Fatalf("depth after pop %d = %d, want %d", i, got, constants.QueueDepth)
		}
	}
}

func TestQueuePopMatchesPreview(t *testing.T) {
	q := NewPieceQueue(rand.New(rand.NewSource(7)))

	preview := q.Preview()
	got := q.Pop()
	if got != preview[0] {
		t.Errorf("popped %v, preview promised %v", got, preview[0])
	}

	after := q.Preview()
	for i := 1; i < constants.QueueDepth; i++ {
		if after[i-1] != preview[i] {
			t.Errorf("preview slot %d = %v, want %v", i-1, after[i-1], preview[i])
		}
	}
}

func TestQueueNeverYieldsBombs(t *testing.T) {
	q := NewPieceQueue(rand.New(rand.NewSource(42)))
	for i := 0; i < 500; i++ {
		k := q.Pop()
		if k < 0 || int(k) >= StandardKinds {
			t.Fatalf("pop %d yielded out-of-range kind %v", i, k)
		}
	}
}

func TestQueuePreviewIsolation(t *testing.T) {
	q := NewPieceQueue(rand.New(rand.NewSource(3)))
	preview := q.Preview()
	preview[0] = Kind(99)
	if q.Preview()[0] == Kind(99) {
		t.Error("mutating the preview slice leaked into queue state")
	}
}
