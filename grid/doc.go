// Package grid models a uniform-cost rectangular grid of cells as the search
// space for jump point search.
//
// What:
//
//   - Coord is the (X, Y) value type used for cells and, with components in
//     {-1, 0, 1}, for unit directions. The zero Coord means "no direction".
//   - Grid stores width, height and a sparse obstacle set. Obstacles outside
//     [0,width)×[0,height) are dropped silently, both at construction and by
//     InsertObstacle.
//   - Movement selects the neighbor policy: Orthogonal (N, E, S, W) or
//     Diagonal (all eight compass directions). Validity and adjacency logic is
//     shared by both policies.
//   - Components and Reachable label connected regions of free cells.
//
// Why:
//
//   - Game maps and robot planners need cheap, allocation-light validity,
//     obstacle and neighbor queries in the hot loop of a path search.
//
// Caching and concurrency:
//
//   - Neighbors results are memoized per cell. Obstacle state is copy-on-write:
//     InsertObstacle publishes a fresh obstacle set with an empty neighbor cache
//     under a write lock, so a cached entry is never stale.
//   - Snapshot returns an O(1) immutable view of the current state. A search
//     running on a snapshot is unaffected by later insertions.
//   - All query methods are safe for concurrent use.
//
// Complexity:
//
//   - IsValid, IsObstacle, IsAdjacent: O(1).
//   - Neighbors: O(d) on first query of a cell (d = 4 or 8), O(1) afterwards.
//   - InsertObstacle: O(|obstacles|) for the copy.
//   - Components: O(W×H×d) time, O(W×H) memory.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrUnknownMovement: ParseMovement received an unrecognized name.
package grid
