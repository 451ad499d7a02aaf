package forest

// frontOffsets is 8-connectivity: N, NE, E, SE, S, SW, W, NW.
var frontOffsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Fronts finds all contiguous regions of burning cells under 8-connectivity.
// Returns a slice of fronts; each front is a slice of cell-indices
// (row-major) in BFS order from its top-left-most cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (f *Forest) Fronts() [][]int {
	seen := make([]bool, len(f.cells))
	var fronts [][]int

	for i0, s := range f.cells {
		if s != Fire || seen[i0] {
			continue
		}
		// BFS to collect the front
		queue := []int{i0}
		seen[i0] = true
		var front []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			front = append(front, u)
			ux, uy := f.Coordinate(u)
			for _, d := range frontOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !f.InBounds(vx, vy) {
					continue
				}
				vi := f.index(vx, vy)
				if f.cells[vi] == Fire && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		fronts = append(fronts, front)
	}

	return fronts
}
