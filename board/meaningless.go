package board

// delta returns the unit (dx,dy) step for d, or (0,0) for NoDirection.
func delta(d Direction) (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsMeaninglessWhiteCell reports whether the White cell at (x,y) can
// never actually be used in a solution: a White cell with no arrow, whose
// wind set conflicts with its arrow, or whose arrow points at the edge of
// the board or into another colored cell with a different arrow.
func (b *Board) IsMeaninglessWhiteCell(x, y int) bool {
	if b.ColorXY(x, y) != White {
		return false
	}

	d := b.DirectionsXY(x, y)[0]
	if d == NoDirection {
		return true
	}

	win := b.Winds(x, y)
	if len(win) > 1 || (len(win) == 1 && win[0] != d) {
		return true
	}

	dx, dy := delta(d)
	if !b.IsOnBoardXY(x+dx, y+dy) || !b.IsOnBoardXY(x-dx, y-dy) {
		return true
	}

	cf, cb := b.ColorXY(x+dx, y+dy), b.ColorXY(x-dx, y-dy)
	if cf == Black || cb == Black {
		return true
	}
	if cf == White && b.DirectionsXY(x+dx, y+dy)[0] != d {
		return true
	}
	if cb == White && b.DirectionsXY(x-dx, y-dy)[0] != d {
		return true
	}

	return false
}

// IsMeaninglessBlackCell reports whether the Black cell at (x,y) is
// self-contradictory: its wind propagation conflicts with a wind already
// blowing into it from the opposite direction, or its emitted ray faces
// off-board or straight into another Black cell.
func (b *Board) IsMeaninglessBlackCell(x, y int) bool {
	if b.ColorXY(x, y) != Black {
		return false
	}

	d := b.DirectionsXY(x, y)[0]

	for _, w := range b.Winds(x, y) {
		if w == d.Opposite() {
			return true
		}
	}

	dx, dy := delta(d)
	if d != NoDirection {
		if !b.IsOnBoardXY(x+dx, y+dy) {
			return true
		}
		if b.ColorXY(x+dx, y+dy) == Black {
			return true
		}
	}

	return false
}

// IsMeaningless reports whether any cell on the board is meaningless.
// Used only by the generator to reject edits; not part of solver
// correctness.
func (b *Board) IsMeaningless() bool {
	for x := 1; x <= b.w; x++ {
		for y := 1; y <= b.h; y++ {
			if b.IsMeaninglessWhiteCell(x, y) || b.IsMeaninglessBlackCell(x, y) {
				return true
			}
		}
	}

	return false
}

// IsProper reports whether the board matches the properized invariants:
// every White cell has exactly one non-None direction, every Black cell
// has exactly one direction, every Gray cell's direction multiset equals
// (as a set) the winds reaching it, and every None cell carries no
// direction.
func (b *Board) IsProper() bool {
	for x := 1; x <= b.w; x++ {
		for y := 1; y <= b.h; y++ {
			col := b.ColorXY(x, y)
			dirs := b.DirectionsXY(x, y)

			switch col {
			case White:
				if len(dirs) != 1 || dirs[0] == NoDirection {
					return false
				}
			case Black:
				if len(dirs) != 1 {
					return false
				}
			case Gray:
				win := b.Winds(x, y)
				if len(dirs) != len(win) {
					return false
				}
				for _, d := range dirs {
					found := false
					for _, w := range win {
						if d == w {
							found = true
							break
						}
					}
					if !found {
						return false
					}
				}
			default:
				if len(dirs) != 0 {
					return false
				}
			}
		}
	}

	return true
}
