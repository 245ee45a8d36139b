// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. ConnectedComponents identifies contiguous regions ("islands") of
// cells with value >= LandThreshold.
package gridgraph

// ConnectedComponents returns the list of connected land components, each
// given as a slice of row-major cell indices. Cells with value < LandThreshold
// are treated as water and excluded. Component order follows the first cell
// discovered during the row-major scan.
//
// Complexity: O(W×H×d) time, Memory: O(W×H), where d = number of neighbors (4 or 8).
func (gg *GridGraph) ConnectedComponents() [][]int {
	if gg.Width == 0 || gg.Height == 0 {
		return nil
	}

	total := gg.Width * gg.Height
	visited := make([]bool, total)
	var components [][]int
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] < gg.LandThreshold {
				continue
			}
			startIdx := gg.index(x, y)
			if visited[startIdx] {
				continue
			}

			queue := []int{startIdx}
			visited[startIdx] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				idx := queue[qi]
				comp = append(comp, idx)

				x0, y0 := gg.Coordinate(idx)
				for _, d := range offsets {
					nx, ny := x0+d[0], y0+d[1]
					if !gg.InBounds(nx, ny) {
						continue
					}
					if gg.CellValues[ny][nx] < gg.LandThreshold {
						continue
					}
					nIdx := gg.index(nx, ny)
					if !visited[nIdx] {
						visited[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}

			components = append(components, comp)
		}
	}

	return components
}
