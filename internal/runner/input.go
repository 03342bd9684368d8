package runner

import (
	"math/rand"

	"github.com/ugaemi/campus-maze/internal/game"
)

// RandomWalk holds a random direction set for a number of frames, then picks
// another. It never returns an empty intent.
type RandomWalk struct {
	rng  *rand.Rand
	hold int
	left int
	cur  game.Intent
}

func NewRandomWalk(seed int64, hold int) *RandomWalk {
	return &RandomWalk{
		rng:  rand.New(rand.NewSource(seed)),
		hold: max(1, hold),
	}
}

func (w *RandomWalk) Next(game.State) game.Intent {
	if w.left == 0 {
		w.cur = w.pick()
		w.left = w.hold
	}
	w.left--
	return w.cur
}

func (w *RandomWalk) pick() game.Intent {
	for {
		bits := w.rng.Intn(16)
		in := game.Intent{
			Up:    bits&1 != 0,
			Down:  bits&2 != 0,
			Left:  bits&4 != 0,
			Right: bits&8 != 0,
		}
		if x, y := in.Axes(); x != 0 || y != 0 {
			return in
		}
	}
}
