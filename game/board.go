package game

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// Board is a width x height grid where pieces drop to the lowest empty cell
// of a column. Cells are stored row-major with row 0 at the bottom.
//
// The board only answers legality questions. It does not track whose turn
// it is; alternating colors is the caller's responsibility.
type Board struct {
	width  uint
	height uint
	run    uint
	cells  []Player
}

// New creates a board. If initial is non-nil it must hold exactly
// width*height valid cells in row-major order, otherwise all cells start Empty.
func New(height, width, run uint, initial []Player) (*Board, error) {
	if width == 0 || height == 0 || run == 0 {
		return nil, fmt.Errorf("%w: %dx%d board with run %d", ErrInvalidBoard, width, height, run)
	}

	hi, cellCount := bits.Mul(width, height)
	if hi != 0 || cellCount > math.MaxInt {
		return nil, fmt.Errorf("%w: %dx%d board is too large", ErrInvalidBoard, width, height)
	}
	size := int(cellCount)
	cells := make([]Player, size)
	if initial != nil {
		if len(initial) != size {
			return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, size, len(initial))
		}
		for i, p := range initial {
			if p > PlayerB {
				return nil, fmt.Errorf("%w: cell %d holds unknown value %d", ErrInvalidBoard, i, p)
			}
		}
		copy(cells, initial)
	}

	return &Board{
		width:  width,
		height: height,
		run:    run,
		cells:  cells,
	}, nil
}

func (b *Board) Height() uint { return b.height }
func (b *Board) Width() uint  { return b.width }
func (b *Board) Run() uint    { return b.run }

// index is the single place where (row, col) is mapped onto the cell buffer.
func (b *Board) index(row, col uint) (int, error) {
	if row >= b.height || col >= b.width {
		return 0, fmt.Errorf("%w: row %d, column %d on %dx%d board", ErrOutOfBounds, row, col, b.width, b.height)
	}
	return int(row*b.width + col), nil
}

// Get returns the piece at the given position.
func (b *Board) Get(row, col uint) (Player, error) {
	i, err := b.index(row, col)
	if err != nil {
		return Empty, err
	}
	return b.cells[i], nil
}

func (b *Board) top(col uint) Player {
	return b.cells[(b.height-1)*b.width+col]
}

// CanPlayMove reports whether col is on the board and not yet full.
// The player is accepted for symmetry with Play; legality does not depend on it.
func (b *Board) CanPlayMove(player Player, col uint) bool {
	if col >= b.width {
		return false
	}
	return b.top(col) == Empty
}

// CanPlay reports whether any column still has room. Win state is not
// consulted; use HasWinner for that.
func (b *Board) CanPlay(player Player) bool {
	for col := uint(0); col < b.width; col++ {
		if b.top(col) == Empty {
			return true
		}
	}
	return false
}

// LegalColumns lists the playable columns in ascending order.
func (b *Board) LegalColumns(player Player) []uint {
	var cols []uint
	for col := uint(0); col < b.width; col++ {
		if b.CanPlayMove(player, col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Play drops a piece of the given color into col. It returns false and
// leaves the board untouched when the move is illegal.
func (b *Board) Play(col uint, player Player) bool {
	if player != PlayerA && player != PlayerB {
		return false
	}
	if !b.CanPlayMove(player, col) {
		return false
	}
	for row := uint(0); row < b.height; row++ {
		i := int(row*b.width + col)
		if b.cells[i] == Empty {
			b.cells[i] = player
			return true
		}
	}
	return false
}

// Drop is Play with an error describing why the move was rejected.
func (b *Board) Drop(col uint, player Player) error {
	if !b.Play(col, player) {
		return fmt.Errorf("%w: player %s cannot play column %d", ErrIllegalMove, player, col)
	}
	return nil
}

// Unplay empties the topmost occupied cell of col. It returns false when
// the column is out of range or already empty.
func (b *Board) Unplay(col uint) bool {
	if col >= b.width {
		return false
	}
	for row := b.height; row > 0; row-- {
		i := int((row-1)*b.width + col)
		if b.cells[i] != Empty {
			b.cells[i] = Empty
			return true
		}
	}
	return false
}

// Undo is Unplay with an error.
func (b *Board) Undo(col uint) error {
	if !b.Unplay(col) {
		return fmt.Errorf("%w: nothing to remove from column %d", ErrIllegalMove, col)
	}
	return nil
}

// Duplicate returns a deep copy with an independent cell buffer.
func (b *Board) Duplicate() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		run:    b.run,
		cells:  cells,
	}
}

// Clear resets every cell to Empty.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Cells returns a copy of the row-major cell buffer.
func (b *Board) Cells() []Player {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	if b.width != other.width || b.height != other.height || b.run != other.run {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders one digit per cell with the top row first, followed by a
// blank line.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(int((b.width+1)*b.height) + 1)
	for h := uint(0); h < b.height; h++ {
		row := b.height - h - 1
		for col := uint(0); col < b.width; col++ {
			sb.WriteString(b.cells[row*b.width+col].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}
