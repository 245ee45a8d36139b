package board

// Properize normalizes the board after a batch of SetCell/ResetCell
// edits: it resets every Gray cell, re-propagates wind from every Black
// cell into Gray cells along its ray (stopping at the next Black cell,
// passing through White cells without marking them), rebuilds the edge
// list in row-major scan order, and recomputes the White-cell/White-edge
// counters. Idempotent: Properize(); Properize() leaves the board
// unchanged the second time (testable property 3).
func (b *Board) Properize() {
	for i := range b.color {
		if b.color[i] == Gray {
			b.color[i] = None
			b.dirs[i] = nil
		}
	}

	for x := 1; x <= b.w; x++ {
		for y := 1; y <= b.h; y++ {
			if b.ColorXY(x, y) != Black {
				continue
			}
			d := b.DirectionsXY(x, y)[0]
			switch d {
			case Up:
				for z := y - 1; z > 0; z-- {
					if b.ColorXY(x, z) == Black {
						break
					}
					if b.ColorXY(x, z) == White {
						continue
					}
					i := b.Pos(x, z)
					b.setColorAt(i, Gray)
					b.addDirectionAt(i, d)
				}
			case Down:
				for z := y + 1; z <= b.h; z++ {
					if b.ColorXY(x, z) == Black {
						break
					}
					if b.ColorXY(x, z) == White {
						continue
					}
					i := b.Pos(x, z)
					b.setColorAt(i, Gray)
					b.addDirectionAt(i, d)
				}
			case Left:
				for z := x - 1; z > 0; z-- {
					if b.ColorXY(z, y) == Black {
						break
					}
					if b.ColorXY(z, y) == White {
						continue
					}
					i := b.Pos(z, y)
					b.setColorAt(i, Gray)
					b.addDirectionAt(i, d)
				}
			case Right:
				for z := x + 1; z <= b.w; z++ {
					if b.ColorXY(z, y) == Black {
						break
					}
					if b.ColorXY(z, y) == White {
						continue
					}
					i := b.Pos(z, y)
					b.setColorAt(i, Gray)
					b.addDirectionAt(i, d)
				}
			}
		}
	}

	n := b.w * b.h
	b.edges = b.edges[:0]
	for i := 0; i < n; i++ {
		if b.IsValidEdge(i, i+1) {
			b.edges = append(b.edges, Edge{i, i + 1})
		}
		if b.IsValidEdge(i, i+b.w) {
			b.edges = append(b.edges, Edge{i, i + b.w})
		}
	}

	b.numWhiteCells = 0
	for i := 0; i < n; i++ {
		if b.color[i] == White {
			b.numWhiteCells++
		}
	}

	b.numWhiteEdges = 0
	b.lastWhiteEdge = 0
	for k, e := range b.edges {
		if b.color[e.V1] == White || b.color[e.V2] == White {
			b.numWhiteEdges++
			b.lastWhiteEdge = k
		}
	}
}
