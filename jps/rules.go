package jps

import "github.com/katalvlaran/jumppoint/grid"

// rules is the movement-specific part of the search: which neighbors survive
// pruning, which are forced by obstacles, and which straight probes a ray
// runs at every cell.
type rules interface {
	natural(c, d grid.Coord) []grid.Coord
	forced(s Space, c, d grid.Coord) []grid.Coord
	probes(d grid.Coord) []grid.Coord
}

func rulesFor(m grid.Movement) rules {
	if m != nil && m.AllowsDiagonal() {
		return diagonalRules{}
	}

	return orthogonalRules{}
}

// diagonalRules apply to 8-connected grids.
type diagonalRules struct{}

func (diagonalRules) natural(c, d grid.Coord) []grid.Coord {
	if !d.IsDiagonal() {
		return []grid.Coord{c.Add(d)}
	}

	return []grid.Coord{
		grid.C(c.X+d.X, c.Y),
		grid.C(c.X, c.Y+d.Y),
		c.Add(d),
	}
}

func (diagonalRules) forced(s Space, c, d grid.Coord) []grid.Coord {
	if d.IsDiagonal() {
		if back := grid.C(c.X, c.Y-d.Y); s.IsObstacle(back) {
			return []grid.Coord{grid.C(c.X+d.X, back.Y)}
		}

		return nil
	}

	o := grid.C(d.Y, d.X)
	var out []grid.Coord
	for _, side := range [2]grid.Coord{c.Add(o), c.Sub(o)} {
		if s.IsObstacle(side) {
			out = append(out, side.Add(d))
		}
	}

	return out
}

func (diagonalRules) probes(d grid.Coord) []grid.Coord {
	if !d.IsDiagonal() {
		return nil
	}

	return []grid.Coord{grid.C(0, d.Y), grid.C(d.X, 0)}
}

// orthogonalRules apply to 4-connected grids.
type orthogonalRules struct{}

var horizontalProbes = []grid.Coord{grid.East, grid.West}

func (orthogonalRules) natural(c, d grid.Coord) []grid.Coord {
	o := grid.C(d.Y, d.X)

	return []grid.Coord{c.Add(d), c.Add(o), c.Sub(o)}
}

func (orthogonalRules) forced(s Space, c, d grid.Coord) []grid.Coord {
	o := grid.C(d.Y, d.X)
	var out []grid.Coord
	for _, side := range [2]grid.Coord{c.Add(o), c.Sub(o)} {
		if walkable(s, side) && !walkable(s, side.Sub(d)) {
			out = append(out, side)
		}
	}

	return out
}

func (orthogonalRules) probes(d grid.Coord) []grid.Coord {
	if d.X == 0 {
		return horizontalProbes
	}

	return nil
}

func walkable(s Space, c grid.Coord) bool {
	return s.IsValid(c) && !s.IsObstacle(c)
}
