package agent

import (
	"connectn/game"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

const RandomName = "RANDOM_COMPUTER"

type Random struct {
	name string
	rng  *rand.Rand
}

// NewRandom returns an agent that plays uniformly random legal columns. An
// empty name selects RandomName; a zero seed seeds from the clock.
func NewRandom(name string, seed uint64) *Random {
	if name == "" {
		name = RandomName
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Describe() string {
	return r.name
}

// Play samples columns until one is playable.
func (r *Random) Play(b *game.Board, color game.Player) (uint, error) {
	if !b.CanPlay(color) {
		return 0, fmt.Errorf("%w: %s has no open column", game.ErrNoLegalMove, r.name)
	}
	width := int(b.Width())
	for {
		col := uint(r.rng.Intn(width))
		if b.CanPlayMove(color, col) {
			return col, nil
		}
	}
}
