package gridmap

import (
	"strings"

	"github.com/katalvlaran/jumppoint/grid"
)

// Render draws g with path overlaid, one line per row: 'P' for path cells,
// 'X' for obstacles, '.' for free cells. Path cells outside the grid are
// ignored.
func Render(g *grid.Grid, path []grid.Coord) string {
	var b strings.Builder
	for _, row := range rows(g, path, 'X') {
		b.WriteString(row)
		b.WriteByte('\n')
	}

	return b.String()
}

// rows returns one string per grid row using block for obstacles.
func rows(g *grid.Grid, path []grid.Coord, block byte) []string {
	onPath := make(map[grid.Coord]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}

	out := make([]string, g.Height())
	line := make([]byte, g.Width())
	for y := range out {
		for x := range line {
			c := grid.C(x, y)
			switch _, p := onPath[c]; {
			case p:
				line[x] = 'P'
			case g.IsObstacle(c):
				line[x] = block
			default:
				line[x] = '.'
			}
		}
		out[y] = string(line)
	}

	return out
}
