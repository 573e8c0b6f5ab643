package gridmap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jumppoint/grid"
)

// Sentinel errors for layout parsing.
var (
	ErrEmptyLayout       = errors.New("gridmap: empty layout")
	ErrNonRectangular    = errors.New("gridmap: rows differ in length")
	ErrBadCell           = errors.New("gridmap: unknown cell character")
	ErrDimensionMismatch = errors.New("gridmap: width/height disagree with rows")
	ErrBadObstacle       = errors.New("gridmap: obstacle must be an [x, y] pair")
)

// Layout is the YAML form of a grid.
type Layout struct {
	Width     int      `yaml:"width,omitempty"`
	Height    int      `yaml:"height,omitempty"`
	Movement  string   `yaml:"movement,omitempty"`
	Obstacles [][]int  `yaml:"obstacles,omitempty"`
	Rows      []string `yaml:"rows,omitempty"`
}

// Parse builds a grid from ASCII rows. Every row must have the same length.
func Parse(rows []string, m grid.Movement) (*grid.Grid, error) {
	obstacles, w, err := parseRows(rows)
	if err != nil {
		return nil, err
	}

	return newGrid(w, len(rows), obstacles, m)
}

func parseRows(rows []string) ([]grid.Coord, int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, 0, ErrEmptyLayout
	}
	w := len(rows[0])
	var obstacles []grid.Coord
	for y, row := range rows {
		if len(row) != w {
			return nil, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '.':
			case '#', 'X':
				obstacles = append(obstacles, grid.C(x, y))
			default:
				return nil, 0, fmt.Errorf("%w: %q at %v", ErrBadCell, row[x], grid.C(x, y))
			}
		}
	}

	return obstacles, w, nil
}

func newGrid(w, h int, obstacles []grid.Coord, m grid.Movement) (*grid.Grid, error) {
	var opts []grid.Option
	if m != nil {
		opts = append(opts, grid.WithMovement(m))
	}
	g, err := grid.New(w, h, obstacles, opts...)
	if err != nil {
		return nil, fmt.Errorf("gridmap: %w", err)
	}

	return g, nil
}

// Load decodes one YAML layout from r and builds its grid. Unknown fields
// are rejected.
func Load(r io.Reader) (*grid.Grid, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var l Layout
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyLayout
		}
		return nil, fmt.Errorf("gridmap: decode layout: %w", err)
	}

	return l.Grid()
}

// LoadFile reads a YAML layout from path.
func LoadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: %w", err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Grid builds the grid the layout describes.
func (l Layout) Grid() (*grid.Grid, error) {
	var m grid.Movement = grid.Diagonal
	if l.Movement != "" {
		var err error
		if m, err = grid.ParseMovement(l.Movement); err != nil {
			return nil, fmt.Errorf("gridmap: %w", err)
		}
	}

	w, h := l.Width, l.Height
	var obstacles []grid.Coord
	if len(l.Rows) > 0 {
		var err error
		if obstacles, w, err = parseRows(l.Rows); err != nil {
			return nil, err
		}
		h = len(l.Rows)
		if (l.Width != 0 && l.Width != w) || (l.Height != 0 && l.Height != h) {
			return nil, fmt.Errorf("%w: %dx%d declared, rows are %dx%d",
				ErrDimensionMismatch, l.Width, l.Height, w, h)
		}
	}
	for i, p := range l.Obstacles {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrBadObstacle, i, p)
		}
		obstacles = append(obstacles, grid.C(p[0], p[1]))
	}

	return newGrid(w, h, obstacles, m)
}

// LayoutOf describes g as rows plus its movement policy.
func LayoutOf(g *grid.Grid) Layout {
	return Layout{
		Movement: g.Movement().String(),
		Rows:     rows(g, nil, '#'),
	}
}

// Encode writes g to w as a YAML layout.
func Encode(w io.Writer, g *grid.Grid) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(LayoutOf(g)); err != nil {
		return fmt.Errorf("gridmap: encode layout: %w", err)
	}

	return enc.Close()
}
