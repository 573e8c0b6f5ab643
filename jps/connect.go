package jps

import "github.com/katalvlaran/jumppoint/grid"

// ConnectPath expands jump points into the dense path they describe.
//
// For each consecutive pair (begin, end) it emits begin.Coord and the cells
// stepped along end.Dir, Chebyshev(begin, end) cells in total, then appends
// the last coordinate once. A pair whose end has no direction is joined with
// unit steps toward end. Empty input yields an empty path.
//
// Complexity: O(L) for a dense path of L cells.
func ConnectPath(points []Node) []grid.Coord {
	if len(points) == 0 {
		return []grid.Coord{}
	}

	path := make([]grid.Coord, 0, pathLen(points))
	for i := 0; i+1 < len(points); i++ {
		begin, end := points[i], points[i+1]
		d := end.Dir
		if d.IsZero() {
			d = grid.Step(begin.Coord, end.Coord)
		}
		for k, n := 0, grid.Chebyshev(begin.Coord, end.Coord); k < n; k++ {
			path = append(path, begin.Coord.Add(d.Scale(k)))
		}
	}

	return append(path, points[len(points)-1].Coord)
}

func pathLen(points []Node) int {
	n := 1
	for i := 0; i+1 < len(points); i++ {
		n += grid.Chebyshev(points[i].Coord, points[i+1].Coord)
	}

	return n
}
