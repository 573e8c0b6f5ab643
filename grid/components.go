package grid

// Components finds all connected regions of free cells under the grid's
// movement policy. Components are ordered by their first cell in row-major
// order, and each component lists its cells in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8, on the first call per obstacle state.
// Memory: O(W·H) for the labels and output.
func (g *Grid) Components() [][]Coord {
	st := g.st.Load()
	g.label(st)

	comps := make([][]Coord, st.labelCount)
	for i, l := range st.labels {
		if l < 0 {
			continue
		}
		comps[l] = append(comps[l], g.Coordinate(i))
	}

	return comps
}

// Reachable reports whether b can be reached from a by a sequence of moves
// through free cells. Both cells must be valid and free. The labelling is
// computed once per obstacle state, so repeated queries are O(1).
func (g *Grid) Reachable(a, b Coord) bool {
	if !g.IsValid(a) || !g.IsValid(b) {
		return false
	}
	st := g.st.Load()
	g.label(st)
	la, lb := st.labels[g.Index(a)], st.labels[g.Index(b)]

	return la >= 0 && la == lb
}

// label fills st.labels with component ids by breadth-first flood fill.
func (g *Grid) label(st *state) {
	st.labelsOnce.Do(func() {
		total := g.width * g.height
		labels := make([]int, total)
		for i := range labels {
			labels[i] = -1
		}
		offsets := g.movement.Offsets()
		next := 0

		for i0 := 0; i0 < total; i0++ {
			c0 := g.Coordinate(i0)
			if _, blocked := st.obstacles[c0]; blocked || labels[i0] >= 0 {
				continue
			}
			labels[i0] = next
			queue := []int{i0}
			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				for _, d := range offsets {
					v := u.Add(d)
					if !g.isAdjacent(st, u, v) {
						continue
					}
					vi := g.Index(v)
					if labels[vi] < 0 {
						labels[vi] = next
						queue = append(queue, vi)
					}
				}
			}
			next++
		}

		st.labels = labels
		st.labelCount = next
	})
}
