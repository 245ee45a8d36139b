package board

// IsValidNode reports whether cell i can appear in the problem graph: it
// must be on-board, non-Black, and if Gray, its direction multiset must
// not contain a direction and its own opposite (an impossible wind
// combination: wind can never blow simultaneously from opposite sides
// into the same interior crossing, given a single Black emitter per
// ray).
func (b *Board) IsValidNode(i int) bool {
	if !b.IsOnBoard(i) {
		return false
	}
	if b.color[i] == Black {
		return false
	}
	if b.color[i] == Gray && len(b.dirs[i]) > 1 {
		ds := b.dirs[i]
		for j := 0; j < len(ds)-1; j++ {
			for k := j + 1; k < len(ds); k++ {
				if ds[j] == ds[k].Opposite() {
					return false
				}
			}
		}
	}

	return true
}

// IsValidEdge reports whether the grid edge between i and j belongs in
// the problem graph: the two indices must be orthogonally adjacent
// without wrapping across a row, both must be valid nodes, and any White
// endpoint's edge must run parallel to that endpoint's arrow.
func (b *Board) IsValidEdge(i, j int) bool {
	if i > j {
		return b.IsValidEdge(j, i)
	}

	if i+1 != j && i+b.w != j {
		return false
	}
	if i+1 == j && (i+1)%b.w == 0 {
		return false
	}
	if i+b.w == j && i+b.w >= b.w*b.h {
		return false
	}
	if !b.IsValidNode(i) || !b.IsValidNode(j) {
		return false
	}

	dij := b.RelativeDirection(i, j)
	dji := b.RelativeDirection(j, i)
	if b.color[i] == White && dij != b.dirs[i][0] && dji != b.dirs[i][0] {
		return false
	}
	if b.color[j] == White && dij != b.dirs[j][0] && dji != b.dirs[j][0] {
		return false
	}

	return true
}
