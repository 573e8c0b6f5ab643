package jps

import (
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/jumppoint/grid"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilSpace indicates that New received a nil Space.
	ErrNilSpace = errors.New("jps: space is nil")

	// ErrNilHeuristic indicates that New received a nil heuristic.
	ErrNilHeuristic = errors.New("jps: heuristic is nil")

	// ErrNoPath indicates that the goal cannot be reached from the start:
	// an endpoint has no neighbors, the endpoints lie in different
	// components, or the frontier was exhausted.
	ErrNoPath = errors.New("jps: no path between start and goal")

	// ErrExpansionLimit indicates that a search hit Options.MaxExpansions
	// before reaching the goal.
	ErrExpansionLimit = errors.New("jps: expansion limit reached")

	// ErrReachabilityUnsupported indicates that WithReachabilityCheck was
	// requested for a Space that does not implement Reachable.
	ErrReachabilityUnsupported = errors.New("jps: space does not support reachability checks")

	// ErrBadMaxExpansions indicates a negative MaxExpansions.
	ErrBadMaxExpansions = errors.New("jps: MaxExpansions must be non-negative")

	// ErrBadWorkers indicates a non-positive worker count for SearchAll.
	ErrBadWorkers = errors.New("jps: worker count must be positive")
)

// Node is one jump point: the cell, the unit direction of the ray that
// reached it (zero for the start), the number of jumps from the start G, and
// the priority F = G + h(Coord, goal).
//
// Two nodes are the same frontier member when Coord and Dir match; G and F
// do not take part in identity.
type Node struct {
	Coord grid.Coord
	Dir   grid.Coord
	G     int
	F     float64
}

// key is the frontier identity of a Node.
type key struct {
	coord, dir grid.Coord
}

func (n Node) key() key { return key{coord: n.Coord, dir: n.Dir} }

// Result is the outcome of a successful search.
type Result struct {
	// JumpPoints runs from the start to the goal. Consecutive entries are
	// joined by a straight or diagonal ray along the later entry's Dir.
	JumpPoints []Node
	// Expanded counts the nodes popped from the frontier.
	Expanded int
}

// Options configures an Engine.
//
// Logger            – structured logger; default zap.NewNop().
// MaxExpansions     – stop with ErrExpansionLimit after this many pops; 0 means no limit.
// ReachabilityCheck – reject endpoints in different components before searching.
type Options struct {
	Logger            *zap.Logger
	MaxExpansions     int
	ReachabilityCheck bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithLogger sets the logger used for per-search diagnostics. A nil logger
// keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions caps the number of frontier pops per search.
// Must be non-negative; negative values panic with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	if n < 0 {
		panic(ErrBadMaxExpansions.Error())
	}

	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithReachabilityCheck makes Execute consult the space's connected
// components first, so an unreachable goal fails in O(1) after the first
// labelling instead of exhausting the frontier.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// DefaultOptions returns Options with a no-op logger, no expansion limit and
// no reachability check.
func DefaultOptions() Options {
	return Options{
		Logger:            zap.NewNop(),
		MaxExpansions:     0,
		ReachabilityCheck: false,
	}
}

// Query is one start/goal pair for SearchAll.
type Query struct {
	Start, Goal grid.Coord
}

// Outcome pairs a Query with its Result. Err is nil, or wraps ErrNoPath or
// ErrExpansionLimit.
type Outcome struct {
	Query  Query
	Result Result
	Err    error
}

// BatchOptions configures SearchAll.
type BatchOptions struct {
	// Workers bounds the number of concurrent searches. Default: runtime.NumCPU().
	Workers int
}

// BatchOption is a functional option for SearchAll.
type BatchOption func(*BatchOptions)

// WithWorkers sets how many searches SearchAll runs at once.
// Must be positive; otherwise it panics with ErrBadWorkers.
func WithWorkers(n int) BatchOption {
	if n <= 0 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *BatchOptions) {
		o.Workers = n
	}
}

// DefaultBatchOptions returns BatchOptions with one worker per CPU.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{Workers: runtime.NumCPU()}
}
