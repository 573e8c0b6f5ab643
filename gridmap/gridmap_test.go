package gridmap_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/gridmap"
)

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse(t *testing.T) {
	g, err := gridmap.Parse([]string{
		"..#.",
		"X...",
		"....",
	}, grid.Orthogonal)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, grid.Orthogonal, g.Movement())
	if diff := cmp.Diff([]grid.Coord{grid.C(2, 0), grid.C(0, 1)}, g.Obstacles()); diff != "" {
		t.Errorf("obstacles mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_DefaultMovement(t *testing.T) {
	g, err := gridmap.Parse([]string{".."}, nil)
	require.NoError(t, err)
	assert.Equal(t, grid.Diagonal, g.Movement())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"NoRows", nil, gridmap.ErrEmptyLayout},
		{"EmptyRow", []string{""}, gridmap.ErrEmptyLayout},
		{"Ragged", []string{"...", ".."}, gridmap.ErrNonRectangular},
		{"BadCell", []string{"..", ".?"}, gridmap.ErrBadCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridmap.Parse(tc.rows, grid.Diagonal)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestParse_BadCellPosition(t *testing.T) {
	_, err := gridmap.Parse([]string{"..", ".?"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(1,1)")
}

//----------------------------------------------------------------------------//
// Load
//----------------------------------------------------------------------------//

func TestLoad(t *testing.T) {
	cases := []struct {
		name      string
		doc       string
		w, h      int
		m         grid.Movement
		obstacles []grid.Coord
	}{
		{
			name: "DimensionsAndObstacles",
			doc: `
width: 4
height: 3
movement: orthogonal
obstacles: [[1, 1], [9, 9]]
`,
			w: 4, h: 3, m: grid.Orthogonal,
			obstacles: []grid.Coord{grid.C(1, 1)},
		},
		{
			name: "RowsDefineSize",
			doc: `
rows:
  - "..."
  - ".#."
obstacles: [[0, 0]]
`,
			w: 3, h: 2, m: grid.Diagonal,
			obstacles: []grid.Coord{grid.C(0, 0), grid.C(1, 1)},
		},
		{
			name: "RowsAgreeWithSize",
			doc: `
width: 2
height: 1
movement: "8"
rows: ["X."]
`,
			w: 2, h: 1, m: grid.Diagonal,
			obstacles: []grid.Coord{grid.C(0, 0)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridmap.Load(strings.NewReader(tc.doc))
			require.NoError(t, err)
			assert.Equal(t, tc.w, g.Width())
			assert.Equal(t, tc.h, g.Height())
			assert.Equal(t, tc.m, g.Movement())
			assert.Equal(t, tc.obstacles, g.Obstacles())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty", "", gridmap.ErrEmptyLayout},
		{"Mismatch", "width: 3\nrows: [\"..\"]\n", gridmap.ErrDimensionMismatch},
		{"BadObstacle", "width: 2\nheight: 2\nobstacles: [[1]]\n", gridmap.ErrBadObstacle},
		{"BadMovement", "width: 2\nheight: 2\nmovement: hex\n", grid.ErrUnknownMovement},
		{"NoSize", "movement: diagonal\n", grid.ErrBadDimensions},
		{"Ragged", "rows: [\"..\", \".\"]\n", gridmap.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := gridmap.Load(strings.NewReader("width: 2\nheight: 2\ncolour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: [\"..\", \"#.\"]\n"), 0o600))

	g, err := gridmap.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{grid.C(0, 1)}, g.Obstacles())

	_, err = gridmap.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestEncode_LoadsBack writes a grid and reads it again.
func TestEncode_LoadsBack(t *testing.T) {
	g, err := gridmap.Parse([]string{".#.", "..."}, grid.Orthogonal)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridmap.Encode(&buf, g))
	assert.Contains(t, buf.String(), "movement: orthogonal")

	back, err := gridmap.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Width(), back.Width())
	assert.Equal(t, g.Height(), back.Height())
	assert.Equal(t, g.Movement(), back.Movement())
	assert.Equal(t, g.Obstacles(), back.Obstacles())
}

//----------------------------------------------------------------------------//
// Render
//----------------------------------------------------------------------------//

func TestRender(t *testing.T) {
	g, err := gridmap.Parse([]string{
		"....",
		"..#.",
		"....",
	}, nil)
	require.NoError(t, err)

	got := gridmap.Render(g, []grid.Coord{grid.C(0, 0), grid.C(1, 1), grid.C(2, 2), grid.C(9, 9)})
	want := "P...\n" +
		".PX.\n" +
		"..P.\n"
	assert.Equal(t, want, got)
	assert.Equal(t, "....\n..X.\n....\n", gridmap.Render(g, nil))
}
