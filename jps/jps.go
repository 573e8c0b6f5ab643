package jps

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/jumppoint/frontier"
	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/heuristic"
)

// snapshotter is implemented by spaces that can freeze their obstacle state.
type snapshotter interface {
	Snapshot() *grid.Grid
}

// reacher is implemented by spaces that know their connected components.
type reacher interface {
	Reachable(a, b grid.Coord) bool
}

// Engine runs jump point searches over one Space with one heuristic.
// An Engine holds no per-search state and is safe for concurrent use.
type Engine struct {
	space Space
	h     heuristic.Func
	opts  Options
}

// New creates an Engine for space guided by h.
//
// Returns ErrNilSpace or ErrNilHeuristic for nil arguments, and
// ErrReachabilityUnsupported if WithReachabilityCheck is set but space does
// not implement Reachable.
func New(space Space, h heuristic.Func, opts ...Option) (*Engine, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ReachabilityCheck {
		if _, ok := space.(reacher); !ok {
			return nil, ErrReachabilityUnsupported
		}
	}

	return &Engine{space: space, h: h, opts: cfg}, nil
}

// Execute finds the jump points of a path from start to goal.
// It is ExecuteContext with context.Background().
func (e *Engine) Execute(start, goal grid.Coord) (Result, error) {
	return e.ExecuteContext(context.Background(), start, goal)
}

// ExecuteContext finds the jump points of a path from start to goal.
//
// If start equals goal the result is the single start node and the space is
// not consulted. If either endpoint has no neighbors, or the goal cannot be
// reached, the error wraps ErrNoPath. The context is checked once per
// expansion.
func (e *Engine) ExecuteContext(ctx context.Context, start, goal grid.Coord) (Result, error) {
	if start == goal {
		return Result{JumpPoints: []Node{{Coord: start}}}, nil
	}

	space := e.space
	if s, ok := space.(snapshotter); ok {
		space = s.Snapshot()
	}
	if len(space.Neighbors(start)) == 0 || len(space.Neighbors(goal)) == 0 {
		return Result{}, fmt.Errorf("%w: %v -> %v: endpoint has no neighbors", ErrNoPath, start, goal)
	}
	if e.opts.ReachabilityCheck {
		if r, ok := space.(reacher); ok && !r.Reachable(start, goal) {
			return Result{}, fmt.Errorf("%w: %v -> %v: different components", ErrNoPath, start, goal)
		}
	}

	r := &runner{
		space:  space,
		rules:  rulesFor(space.Movement()),
		h:      e.h,
		goal:   goal,
		limit:  e.opts.MaxExpansions,
		log:    e.opts.Logger,
		open:   frontier.New[key, *entry](),
		closed: make(map[key]struct{}),
		forced: make(map[key][]grid.Coord),
	}
	res, err := r.run(ctx, start)
	if err != nil {
		return Result{}, err
	}
	e.opts.Logger.Debug("jps search done",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("expanded", res.Expanded),
		zap.Int("jump_points", len(res.JumpPoints)),
	)

	return res, nil
}

// ConnectPath expands jump points into a dense path. See the package
// function ConnectPath.
func (e *Engine) ConnectPath(points []Node) []grid.Coord {
	return ConnectPath(points)
}

// entry is a frontier member together with the node it was expanded from.
type entry struct {
	Node
	parent *entry
}

// runner holds the state of one search.
type runner struct {
	space Space
	rules rules
	h     heuristic.Func
	goal  grid.Coord
	limit int
	log   *zap.Logger

	open     *frontier.Queue[key, *entry]
	closed   map[key]struct{}
	forced   map[key][]grid.Coord
	expanded int
}

func (r *runner) run(ctx context.Context, start grid.Coord) (Result, error) {
	r.admit(&entry{Node: Node{Coord: start, F: r.h(start, r.goal)}})

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		top, ok := r.open.Top()
		if !ok {
			return Result{}, fmt.Errorf("%w: %v -> %v: frontier exhausted after %d expansions",
				ErrNoPath, start, r.goal, r.expanded)
		}
		if top.Coord == r.goal {
			return Result{JumpPoints: chain(top), Expanded: r.expanded}, nil
		}
		if r.limit > 0 && r.expanded >= r.limit {
			r.log.Warn("jps expansion limit reached",
				zap.Stringer("start", start),
				zap.Stringer("goal", r.goal),
				zap.Int("limit", r.limit),
			)
			return Result{}, fmt.Errorf("%w: %d", ErrExpansionLimit, r.limit)
		}

		cur, _ := r.open.Pop()
		r.closed[cur.key()] = struct{}{}
		r.expanded++
		r.expand(cur)
	}
}

// admit adds e to the frontier unless its identity was already expanded.
func (r *runner) admit(e *entry) {
	k := e.key()
	if _, done := r.closed[k]; done {
		return
	}
	r.open.Add(k, e.F, e)
}

// expand jumps from cur along every pruned direction and admits each jump
// point found.
func (r *runner) expand(cur *entry) {
	for _, n := range r.prune(cur.Node) {
		d := n.Sub(cur.Coord)
		jp, ok := r.jump(cur.Coord, d)
		if !ok {
			continue
		}
		g := cur.G + 1
		r.admit(&entry{
			Node:   Node{Coord: jp, Dir: d, G: g, F: float64(g) + r.h(jp, r.goal)},
			parent: cur,
		})
	}
}

// prune returns the candidate neighbors of n in deterministic order: every
// grid neighbor for the start node, natural then forced neighbors otherwise,
// without duplicates or obstacles.
func (r *runner) prune(n Node) []grid.Coord {
	if n.Dir.IsZero() {
		return r.space.Neighbors(n.Coord)
	}

	nat := r.rules.natural(n.Coord, n.Dir)
	frc := r.forcedAt(n.Coord, n.Dir)
	out := make([]grid.Coord, 0, len(nat)+len(frc))
	seen := make(map[grid.Coord]struct{}, len(nat)+len(frc))
	for _, group := range [2][]grid.Coord{nat, frc} {
		for _, c := range group {
			if _, dup := seen[c]; dup || r.space.IsObstacle(c) {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

// forcedAt memoizes the forced neighbors of c when arrived at along d. The
// space is a fixed snapshot for the whole search, so entries never go stale.
func (r *runner) forcedAt(c, d grid.Coord) []grid.Coord {
	k := key{coord: c, dir: d}
	if f, ok := r.forced[k]; ok {
		return f
	}
	f := r.rules.forced(r.space, c, d)
	r.forced[k] = f

	return f
}

// jump scans from `from` along d and returns the first jump point: the goal,
// a cell with forced neighbors, or a cell whose straight probes find one.
// The scan fails at the first invalid or blocked cell. Probes are straight
// scans without probes of their own, so recursion is at most one level deep.
func (r *runner) jump(from, d grid.Coord) (grid.Coord, bool) {
	cur := from
	for {
		next := cur.Add(d)
		if !r.space.IsValid(next) || r.space.IsObstacle(next) {
			return grid.Coord{}, false
		}
		if next == r.goal || len(r.forcedAt(next, d)) > 0 {
			return next, true
		}
		for _, p := range r.rules.probes(d) {
			if _, ok := r.jump(next, p); ok {
				return next, true
			}
		}
		cur = next
	}
}

// chain walks parent links back from the goal entry and returns the nodes
// from start to goal.
func chain(goal *entry) []Node {
	n := 0
	for e := goal; e != nil; e = e.parent {
		n++
	}
	out := make([]Node, n)
	for e := goal; e != nil; e = e.parent {
		n--
		out[n] = e.Node
	}

	return out
}
