// Package gridmap reads and writes grid layouts.
//
// What:
//
//   - Parse builds a grid from ASCII rows: '.' is a free cell, '#' or 'X' an
//     obstacle. rows[y][x] is the cell (x, y).
//   - Load and LoadFile read a YAML layout document; Encode writes one.
//   - Render draws a grid with a path overlaid: 'P' path, 'X' obstacle,
//     '.' free, one line per row.
//
// Layout document:
//
//	width: 5          # ignored when rows are present, but must agree
//	height: 3
//	movement: diagonal  # or orthogonal, 8, 4; default diagonal
//	obstacles: [[1, 1], [3, 2]]
//	rows:
//	  - "....."
//	  - ".#..."
//	  - "....."
//
// Obstacles from both lists are merged; out-of-range obstacles are dropped
// as grid.New does.
//
// Errors:
//
//   - ErrEmptyLayout: no rows, or an empty first row.
//   - ErrNonRectangular: rows of different lengths.
//   - ErrBadCell: a character other than '.', '#' or 'X'.
//   - ErrDimensionMismatch: width/height disagree with the rows.
//   - ErrBadObstacle: an obstacle entry is not an [x, y] pair.
//   - Decoding errors from gopkg.in/yaml.v3 and grid errors, wrapped.
package gridmap
