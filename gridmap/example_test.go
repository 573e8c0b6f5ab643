package gridmap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/gridmap"
	"github.com/katalvlaran/jumppoint/heuristic"
	"github.com/katalvlaran/jumppoint/jps"
)

// Example loads a layout, searches it and draws the route.
func Example() {
	g, err := gridmap.Load(strings.NewReader(`
movement: diagonal
rows:
  - "...."
  - "...."
  - "#..."
  - "...."
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e, _ := jps.New(g, heuristic.Diagonal)
	res, err := e.Execute(grid.C(0, 0), grid.C(0, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(gridmap.Render(g, e.ConnectPath(res.JumpPoints)))

	// Output:
	// P...
	// .P..
	// XP..
	// P...
}
