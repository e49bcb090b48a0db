package game

import (
	"math/rand"

	"github.com/lixenwraith/blockfall/constants"
)

// PieceQueue is the fixed-depth lookahead of upcoming pieces. Slots are
// refilled one-in/one-out on every spawn by independent uniform choice
// over the 7 standard kinds; the queue never holds bomb pieces
type PieceQueue struct {
	next []Kind
	rng  *rand.Rand
}

// NewPieceQueue creates a queue filled to the target depth
func NewPieceQueue(rng *rand.Rand) *PieceQueue {
	q := &PieceQueue{
		next: make([]Kind, 0, constants.QueueDepth),
		rng:  rng,
	}
	q.refill()
	return q
}

// Pop removes and returns the front kind and refills the tail
func (q *PieceQueue) Pop() Kind {
	if len(q.next) == 0 {
		q.refill()
	}
	k := q.next[0]
	q.next = q.next[1:]
	q.refill()
	return k
}

// Preview returns the upcoming kinds in order, front first
func (q *PieceQueue) Preview() []Kind {
	out := make([]Kind, len(q.next))
	copy(out, q.next)
	return out
}

func (q *PieceQueue) refill() {
	for len(q.next) < constants.QueueDepth {
		q.next = append(q.next, Kind(q.rng.Intn(StandardKinds)))
	}
}
