package grid

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Grid is a width × height uniform-cost grid with a sparse obstacle set.
//
// The obstacle set and the memoized neighbor lists live in an immutable state
// value. InsertObstacle replaces the whole state (copy-on-write), so readers
// and snapshots always observe one consistent version.
type Grid struct {
	width, height int
	movement      Movement

	mu sync.Mutex            // serializes writers
	st atomic.Pointer[state] // current immutable state
}

// state is one published version of the obstacle set plus caches derived
// from it. Nothing in a state is mutated after publication except the caches,
// which are append-only and internally synchronized.
type state struct {
	obstacles map[Coord]struct{}
	neighbors sync.Map // Coord -> []Coord

	labelsOnce sync.Once
	labels     []int // row-major component label, -1 for blocked cells
	labelCount int
}

// New constructs a Grid of the given dimensions. Obstacles outside
// [0,width)×[0,height) are silently dropped; duplicates collapse.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(|obstacles|).
func New(width, height int, obstacles []Coord, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Grid{width: width, height: height, movement: cfg.Movement}
	set := make(map[Coord]struct{}, len(obstacles))
	for _, c := range obstacles {
		if g.IsValid(c) {
			set[c] = struct{}{}
		}
	}
	g.st.Store(&state{obstacles: set})

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Movement returns the neighbor policy chosen at construction.
func (g *Grid) Movement() Movement { return g.movement }

// IsValid reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) IsValid(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// IsObstacle reports obstacle-set membership. It does not imply IsValid;
// out-of-range coordinates are never obstacles.
// Complexity: O(1).
func (g *Grid) IsObstacle(c Coord) bool {
	_, ok := g.st.Load().obstacles[c]

	return ok
}

// IsAdjacent reports whether a and b are both valid, free, and exactly one
// king move apart (Chebyshev distance 1).
func (g *Grid) IsAdjacent(a, b Coord) bool {
	return g.isAdjacent(g.st.Load(), a, b)
}

func (g *Grid) isAdjacent(st *state, a, b Coord) bool {
	if !g.IsValid(a) || !g.IsValid(b) {
		return false
	}
	if _, ok := st.obstacles[a]; ok {
		return false
	}
	if _, ok := st.obstacles[b]; ok {
		return false
	}

	return Chebyshev(a, b) == 1
}

// Neighbors returns the cells reachable from c in one move under the grid's
// movement policy, in policy offset order. Out-of-range or blocked cells
// have no neighbors.
//
// The result is memoized for the lifetime of the current obstacle state and
// shared between callers: it must not be modified.
func (g *Grid) Neighbors(c Coord) []Coord {
	if !g.IsValid(c) {
		return nil
	}
	st := g.st.Load()
	if cached, ok := st.neighbors.Load(c); ok {
		return cached.([]Coord)
	}

	offsets := g.movement.Offsets()
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d)
		if g.isAdjacent(st, c, n) {
			out = append(out, n)
		}
	}
	actual, _ := st.neighbors.LoadOrStore(c, out)

	return actual.([]Coord)
}

// InsertObstacle adds c to the obstacle set if it is valid; otherwise it is
// a no-op. The insertion publishes a new state, which discards every memoized
// neighbor list and component labelling. Snapshots taken earlier keep the old
// state.
// Complexity: O(|obstacles|).
func (g *Grid) InsertObstacle(c Coord) {
	if !g.IsValid(c) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	old := g.st.Load()
	if _, ok := old.obstacles[c]; ok {
		return
	}
	set := make(map[Coord]struct{}, len(old.obstacles)+1)
	for k := range old.obstacles {
		set[k] = struct{}{}
	}
	set[c] = struct{}{}
	g.st.Store(&state{obstacles: set})
}

// Snapshot returns an immutable view of the grid as it is now. The view
// shares the current state, so taking it is O(1); insertions on g after the
// call are not visible through the snapshot.
func (g *Grid) Snapshot() *Grid {
	s := &Grid{width: g.width, height: g.height, movement: g.movement}
	s.st.Store(g.st.Load())

	return s
}

// Obstacles returns a copy of the obstacle set ordered by row, then column.
func (g *Grid) Obstacles() []Coord {
	st := g.st.Load()
	out := make([]Coord, 0, len(st.obstacles))
	for c := range st.obstacles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}

		return out[i].X < out[j].X
	})

	return out
}

// Index maps c to its row-major index y*Width + x. c must be valid.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}
