// Package jumppoint is a Jump Point Search toolkit for uniform-cost grids:
// 4- or 8-directional movement, sparse obstacles, and a search that scans
// rays instead of expanding every cell.
//
// 🚀 What is jumppoint?
//
//	A small, thread-safe library that brings together:
//		• Grids: bounds, obstacles, movement policy, memoized neighbors,
//		  copy-on-write snapshots and connected components
//		• Heuristics: Manhattan, Diagonal (Chebyshev), tie-breakers, memoization
//		• Frontier: a deduplicating min-priority queue with stable tie-breaks
//		• JPS engine: pruning, forced neighbors, iterative jumps, dense paths,
//		  context cancellation and concurrent batch search
//		• Layouts: ASCII rows and YAML documents in, ASCII renderings out
//
// ✨ Why choose jumppoint?
//
//   - Reproducible – equal priorities pop in insertion order
//   - Safe under concurrency – every search runs on a grid snapshot
//   - Bounded – no recursion hazard, and unreachable goals terminate
//
// Packages:
//
//	grid/      - Coord, Movement, Grid, Components
//	heuristic/ - distance estimators
//	frontier/  - the open set
//	jps/       - Engine, ConnectPath, SearchAll (mock Space in jps/mocks)
//	gridmap/   - Parse, Load, Encode, Render
//
// Quick ASCII example (start top-left, goal bottom-left, '#' blocks):
//
//	P . . .
//	. P . .
//	# P . .
//	P . . .
//
//	go get github.com/katalvlaran/jumppoint
package jumppoint
