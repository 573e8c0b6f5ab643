// Package heuristic provides distance estimators for grid path searches.
//
// Manhattan suits 4-directional movement and Diagonal (Chebyshev) suits
// 8-directional unit-cost movement; both are admissible and consistent for
// their policy. The tie-breaker variants scale an estimate by (1 + 1/1000) to
// order plateau ties in favor of more direct paths. They only reorder
// priorities and must not be read as distances.
package heuristic

import (
	"math"
	"sync"

	"github.com/katalvlaran/jumppoint/grid"
)

// Func estimates the remaining cost from a to b. It must be non-negative and
// pure.
type Func func(a, b grid.Coord) float64

// TieBreakFactor is the multiplier applied by TieBreaker.
const TieBreakFactor = 1.0 + 1.0/1000

// Manhattan returns |ax-bx| + |ay-by|.
func Manhattan(a, b grid.Coord) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// Diagonal returns the Chebyshev distance max(|ax-bx|, |ay-by|): the number
// of unit moves between a and b when diagonal moves are allowed.
func Diagonal(a, b grid.Coord) float64 {
	return float64(grid.Chebyshev(a, b))
}

// TieBreaker wraps h so that each estimate is multiplied by TieBreakFactor.
func TieBreaker(h Func) Func {
	return func(a, b grid.Coord) float64 {
		return h(a, b) * TieBreakFactor
	}
}

var (
	// ManhattanTieBreaker is Manhattan scaled by TieBreakFactor.
	ManhattanTieBreaker = TieBreaker(Manhattan)
	// DiagonalTieBreaker is Diagonal scaled by TieBreakFactor.
	DiagonalTieBreaker = TieBreaker(Diagonal)
)

type pair struct{ a, b grid.Coord }

// Memoize returns a Func that caches the results of h per (a, b) pair.
// The cache is unbounded and safe for concurrent use; it is meant for
// expensive estimators evaluated over a bounded grid.
func Memoize(h Func) Func {
	var (
		mu    sync.RWMutex
		cache = make(map[pair]float64)
	)

	return func(a, b grid.Coord) float64 {
		k := pair{a, b}
		mu.RLock()
		v, ok := cache[k]
		mu.RUnlock()
		if ok {
			return v
		}

		v = h(a, b)
		mu.Lock()
		cache[k] = v
		mu.Unlock()

		return v
	}
}
