// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. ExpandIsland finds the minimum-cost path of water-to-land conversions
// connecting two components.
package gridgraph

// ExpandIsland computes a minimal-cost path connecting component srcComp to
// component dstComp, where both indices refer to entries of a
// ConnectedComponents() result. Moving into a land cell costs 0; into a
// water cell costs 1. Returns the sequence of row-major cell indices along
// the shortest path (including endpoints) and its total cost.
//
// O(W×H×d) time and O(W×H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	src, dst := comps[srcComp], comps[dstComp]

	N := gg.Width * gg.Height
	dstSet := make(map[int]struct{}, len(dst))
	for _, idx := range dst {
		dstSet[idx] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	capDeque := N + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	// Seed sources at the tail so they are dequeued in component order.
	for _, idx := range src {
		dist[idx] = 0
		deque[tail] = idx
		tail = (tail + 1) % capDeque
	}

	offsets := gg.NeighborOffsets()
	target := -1

	// 0-1 BFS
	for head != tail {
		u := deque[head]
		head = (head + 1) % capDeque
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		x0, y0 := gg.Coordinate(u)
		for _, d := range offsets {
			nx, ny := x0+d[0], y0+d[1]
			if !gg.InBounds(nx, ny) {
				continue
			}
			v := gg.index(nx, ny)
			step := 0
			if gg.CellValues[ny][nx] < gg.LandThreshold {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = v
				} else {
					deque[tail] = v
					tail = (tail + 1) % capDeque
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var idxPath []int
	for at := target; at >= 0; at = prev[at] {
		idxPath = append([]int{at}, idxPath...)
	}

	return idxPath, dist[target], nil
}
