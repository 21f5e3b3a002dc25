package game

import (
	"errors"
	"strconv"
)

// Player is the content of a board cell: empty or one of the two colors.
type Player uint8

const (
	Empty Player = iota
	PlayerA
	PlayerB
)

// Opponent returns the other color. Empty has no opponent and maps to itself.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (p Player) String() string {
	return strconv.Itoa(int(p))
}

// Outcome is the terminal state reported by Board.HasWinner.
type Outcome int

const (
	Continue Outcome = iota
	Win
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "continue"
	}
}

var (
	ErrOutOfBounds  = errors.New("position is outside the board")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoLegalMove  = errors.New("no legal move available")
	ErrInvalidBoard = errors.New("invalid board configuration")
)
