package game

// streak counts consecutive identical non-empty pieces along one line.
type streak struct {
	need  uint
	last  Player
	count uint
}

func (s *streak) reset() {
	s.last = Empty
	s.count = 0
}

// add feeds the next cell of the line and reports whether it completes a run.
func (s *streak) add(p Player) bool {
	if p != Empty && p == s.last {
		s.count++
	} else {
		s.last = p
		s.count = 1
	}
	return s.last != Empty && s.count >= s.need
}

// HasWinner looks for run consecutive pieces of one color. Lines are
// scanned horizontally, vertically, then along both diagonals, and the
// first completed run decides the winner. Without a winner the game is a
// Tie once no column can be played.
func (b *Board) HasWinner() (Outcome, Player) {
	s := &streak{need: b.run}
	w, h := int(b.width), int(b.height)

	// Rows, bottom to top.
	for row := 0; row < h; row++ {
		if p, ok := b.scan(s, row, 0, 0, 1); ok {
			return Win, p
		}
	}

	// Columns, left to right.
	for col := 0; col < w; col++ {
		if p, ok := b.scan(s, 0, col, 1, 0); ok {
			return Win, p
		}
	}

	// Rising diagonals from the left edge, then from the bottom edge.
	for row := 0; row < h; row++ {
		if p, ok := b.scan(s, row, 0, 1, 1); ok {
			return Win, p
		}
	}
	for col := 1; col < w; col++ {
		if p, ok := b.scan(s, 0, col, 1, 1); ok {
			return Win, p
		}
	}

	// Falling diagonals from the right edge, then from the bottom edge.
	for row := 0; row < h; row++ {
		if p, ok := b.scan(s, row, w-1, 1, -1); ok {
			return Win, p
		}
	}
	for col := 0; col < w; col++ {
		if p, ok := b.scan(s, 0, col, 1, -1); ok {
			return Win, p
		}
	}

	if b.CanPlay(Empty) {
		return Continue, Empty
	}
	return Tie, Empty
}

// scan walks one line from (row, col) in steps of (dRow, dCol) until it
// leaves the board.
func (b *Board) scan(s *streak, row, col, dRow, dCol int) (Player, bool) {
	s.reset()
	w, h := int(b.width), int(b.height)
	for row >= 0 && row < h && col >= 0 && col < w {
		p := b.cells[row*w+col]
		if s.add(p) {
			return p, true
		}
		row += dRow
		col += dCol
	}
	return Empty, false
}
