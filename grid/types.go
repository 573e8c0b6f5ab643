// Package grid defines core types, movement policies, options and sentinel
// errors for the grid subpackage of github.com/katalvlaran/jumppoint.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrUnknownMovement indicates an unrecognized movement policy name.
	ErrUnknownMovement = errors.New("grid: unknown movement policy")
)

// Coord addresses a cell by column X and row Y. Row 0 is the top (north) row.
//
// A Coord whose components are each in {-1, 0, 1} and not both zero is a unit
// direction; the zero Coord stands for "no direction".
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the component-wise difference c - d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// Scale multiplies both components by k.
func (c Coord) Scale(k int) Coord {
	return Coord{X: c.X * k, Y: c.Y * k}
}

// IsZero reports whether c is the zero Coord ("no direction").
func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// IsDiagonal reports whether both components are non-zero.
func (c Coord) IsDiagonal() bool {
	return c.X != 0 && c.Y != 0
}

// String formats c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the unit direction pointing from a towards b: the sign of each
// component of b - a. Step(a, a) is the zero Coord.
func Step(a, b Coord) Coord {
	return Coord{X: sign(b.X - a.X), Y: sign(b.Y - a.Y)}
}

// Chebyshev returns max(|ax-bx|, |ay-by|), the number of unit moves between a
// and b when diagonal moves are allowed.
func Chebyshev(a, b Coord) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}

	return dy
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Compass directions. North is toward row 0.
var (
	North     = Coord{X: 0, Y: -1}
	NorthEast = Coord{X: 1, Y: -1}
	East      = Coord{X: 1, Y: 0}
	SouthEast = Coord{X: 1, Y: 1}
	South     = Coord{X: 0, Y: 1}
	SouthWest = Coord{X: -1, Y: 1}
	West      = Coord{X: -1, Y: 0}
	NorthWest = Coord{X: -1, Y: -1}
)

// Movement is a neighbor-generation policy: the candidate offsets a cell may
// step to in one move. Grid filters the candidates through its shared
// validity and adjacency checks.
type Movement interface {
	// Offsets returns the candidate unit offsets in a fixed order.
	// Callers must not modify the returned slice.
	Offsets() []Coord
	// AllowsDiagonal reports whether diagonal offsets are part of the policy.
	AllowsDiagonal() bool
	// String names the policy.
	String() string
}

type orthogonal struct{}

var orthogonalOffsets = []Coord{North, East, South, West}

func (orthogonal) Offsets() []Coord     { return orthogonalOffsets }
func (orthogonal) AllowsDiagonal() bool { return false }
func (orthogonal) String() string       { return "orthogonal" }

type diagonal struct{}

var diagonalOffsets = []Coord{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (diagonal) Offsets() []Coord     { return diagonalOffsets }
func (diagonal) AllowsDiagonal() bool { return true }
func (diagonal) String() string       { return "diagonal" }

var (
	// Orthogonal moves in the four cardinal directions: N, E, S, W.
	Orthogonal Movement = orthogonal{}
	// Diagonal moves in all eight directions: N, NE, E, SE, S, SW, W, NW.
	Diagonal Movement = diagonal{}
)

// ParseMovement maps a policy name to its Movement. Accepted names are
// "orthogonal"/"4" and "diagonal"/"8", case-insensitive.
func ParseMovement(name string) (Movement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "orthogonal", "4":
		return Orthogonal, nil
	case "diagonal", "8":
		return Diagonal, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMovement, name)
}

// Options configures Grid construction.
type Options struct {
	// Movement selects the neighbor policy. Default: Diagonal.
	Movement Movement
}

// Option is a functional option for New.
type Option func(*Options)

// WithMovement sets the neighbor policy. A nil Movement panics, since every
// neighbor query depends on it.
func WithMovement(m Movement) Option {
	if m == nil {
		panic("grid: WithMovement(nil)")
	}

	return func(o *Options) {
		o.Movement = m
	}
}

// DefaultOptions returns Options with Movement set to Diagonal.
func DefaultOptions() Options {
	return Options{Movement: Diagonal}
}
