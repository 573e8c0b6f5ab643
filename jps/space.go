package jps

import "github.com/katalvlaran/jumppoint/grid"

// Space is the grid capability the engine consumes. *grid.Grid implements it.
//
// If a Space also provides Snapshot() *grid.Grid, every search runs on a
// snapshot taken when the search starts. If it provides
// Reachable(a, b grid.Coord) bool, WithReachabilityCheck can use it.
//
//go:generate mockgen -source=space.go -destination=mocks/mock_space.go -package=mocks
type Space interface {
	// IsValid reports whether c lies inside the space.
	IsValid(c grid.Coord) bool
	// IsObstacle reports obstacle membership; it does not imply IsValid.
	IsObstacle(c grid.Coord) bool
	// Neighbors returns the cells reachable from c in one move.
	Neighbors(c grid.Coord) []grid.Coord
	// Movement returns the neighbor policy, which selects the pruning rules.
	Movement() grid.Movement
}
