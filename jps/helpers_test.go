package jps_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/heuristic"
	"github.com/katalvlaran/jumppoint/jps"
)

// mustGrid builds a grid or fails the test.
func mustGrid(t testing.TB, w, h int, obstacles []grid.Coord, opts ...grid.Option) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, obstacles, opts...)
	require.NoError(t, err)

	return g
}

// mustEngine builds an engine with the diagonal heuristic or fails the test.
func mustEngine(t testing.TB, s jps.Space, opts ...jps.Option) *jps.Engine {
	t.Helper()
	e, err := jps.New(s, heuristic.Diagonal, opts...)
	require.NoError(t, err)

	return e
}

// randomObstacles returns every cell of a w×h grid independently with
// probability pct/100, excluding the keep cells.
func randomObstacles(r *rand.Rand, w, h, pct int, keep ...grid.Coord) []grid.Coord {
	skip := make(map[grid.Coord]bool, len(keep))
	for _, c := range keep {
		skip[c] = true
	}
	var out []grid.Coord
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := grid.C(x, y)
			if !skip[c] && r.Intn(100) < pct {
				out = append(out, c)
			}
		}
	}

	return out
}

// requireValidPath checks that path runs from start to goal through free
// cells, each one legal move from the previous.
func requireValidPath(t *testing.T, g *grid.Grid, path []grid.Coord, start, goal grid.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "path must begin at start")
	require.Equal(t, goal, path[len(path)-1], "path must end at goal")
	for i, c := range path {
		require.True(t, g.IsValid(c), "cell %v out of range", c)
		require.False(t, g.IsObstacle(c), "cell %v is an obstacle", c)
		if i == 0 {
			continue
		}
		d := c.Sub(path[i-1])
		require.Equal(t, 1, grid.Chebyshev(path[i-1], c), "cells %v and %v are not adjacent", path[i-1], c)
		if !g.Movement().AllowsDiagonal() {
			require.False(t, d.IsDiagonal(), "diagonal step %v -> %v on an orthogonal grid", path[i-1], c)
		}
	}
}

// requireMonotoneG checks that G never decreases along the jump points.
func requireMonotoneG(t *testing.T, points []jps.Node) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		require.LessOrEqual(t, points[i-1].G, points[i].G, "G decreased at jump point %d", i)
	}
}
