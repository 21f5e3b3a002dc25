package agent

import "connectn/game"

// Agent picks a column for color on the given board. Implementations must
// not modify the board and report game.ErrNoLegalMove when every column is
// full.
type Agent interface {
	Describe() string
	Play(b *game.Board, color game.Player) (uint, error)
}
