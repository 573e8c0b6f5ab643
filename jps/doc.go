// Package jps implements Jump Point Search (JPS), an A* specialization for
// uniform-cost grids that prunes symmetric paths and replaces cell-by-cell
// expansion with straight and diagonal ray scans ("jumps").
//
// What:
//
//   - Engine.Execute(start, goal) returns the ordered jump points of a path:
//     the start (no direction, G 0), then every cell at which the search had
//     to branch, ending with the goal. Each jump point records the direction
//     of the ray that reached it.
//   - ConnectPath expands jump points into the dense, cell-by-cell path.
//   - SearchAll runs many queries concurrently over one shared grid.
//
// Pruning rules:
//
//   - 8-directional grids: straight travel keeps the cell ahead, diagonal
//     travel keeps (x+dx,y), (x,y+dy) and (x+dx,y+dy). An obstacle beside a
//     straight ray forces the cell diagonally past it; an obstacle at
//     (x, y-dy) beside a diagonal ray forces (x+dx, y-dy). A diagonal ray stops
//     early when one of its straight probes finds a jump point.
//   - 4-directional grids: travel keeps the cell ahead and both perpendicular
//     cells. A perpendicular cell is forced when it is free while the cell
//     behind it is blocked. Vertical rays probe east and west.
//
// Cost model:
//
//   - G counts jumps: every accepted jump costs 1 regardless of its length,
//     and F = G + h(cell, goal). The frontier pops by F, ties by admission
//     order, so results are reproducible.
//   - Search nodes are identified by (cell, direction). An identity is
//     admitted once while open and never again after it was expanded, so a
//     search ends after at most 8·W·H expansions even when the goal is
//     unreachable.
//
// Concurrency:
//
//   - A search is single-threaded. When the Space offers Snapshot, each
//     search runs on a snapshot taken at its start, so obstacles inserted
//     concurrently never affect it. An Engine is safe for concurrent use.
//
// Complexity:
//
//   - Execute: O(E·(W+H)) ray work for E expansions, E ≤ 8·W·H, plus
//     O(E log E) frontier work.
//   - ConnectPath: O(L) for a dense path of L cells.
//
// Errors:
//
//   - ErrNilSpace, ErrNilHeuristic: New received a nil argument.
//   - ErrReachabilityUnsupported: WithReachabilityCheck on a Space without
//     Reachable.
//   - ErrNoPath: the goal is unreachable. Always wrapped with the endpoints.
//   - ErrExpansionLimit: Options.MaxExpansions was exceeded.
//   - ErrBadMaxExpansions, ErrBadWorkers: invalid option arguments (panic).
//   - ctx.Err() from ExecuteContext and SearchAll on cancellation.
package jps
