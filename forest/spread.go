package forest

// windOffsets holds the {dx,dy} ignition footprint for each wind direction.
// y grows downwards, so North is dy = -1.
var windOffsets = map[Weather][][2]int{
	North: {{0, -1}, {-1, -1}, {1, -1}},
	South: {{0, 1}, {-1, 1}, {1, 1}},
	West:  {{-1, 0}, {-1, -1}, {-1, 1}},
	East:  {{1, 0}, {1, -1}, {1, 1}},
}

// Footprint returns the {dx,dy} cells a burning tree ignites under w.
// Rain has no footprint. The result is a copy.
func Footprint(w Weather) [][2]int {
	return append([][2]int(nil), windOffsets[w]...)
}

// Step advances the forest by one day under weather w.
//
// Behavior:
//  1. Snapshot the cells burning at the start of the day.
//  2. Unless it rains, every snapshot cell ignites the in-bounds Tree cells
//     of its wind footprint. Burnt, Empty and burning cells are untouched,
//     and cells lit today neither spread nor count a burn day until tomorrow.
//  3. Every snapshot cell counts one more burn day and becomes Burnt when the
//     count reaches BurnDuration.
//
// Complexity: O(W×H).
func (f *Forest) Step(w Weather) {
	var burning []int
	for i, s := range f.cells {
		if s == Fire {
			burning = append(burning, i)
		}
	}

	for _, i := range burning {
		x, y := f.Coordinate(i)
		for _, d := range windOffsets[w] {
			nx, ny := x+d[0], y+d[1]
			if !f.InBounds(nx, ny) {
				continue
			}
			if ni := f.index(nx, ny); f.cells[ni] == Tree {
				f.cells[ni] = Fire
			}
		}
	}

	for _, i := range burning {
		f.burnDays[i]++
		if f.burnDays[i] >= f.BurnDuration {
			f.cells[i] = Burnt
		}
	}
}
