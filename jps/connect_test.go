package jps_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/jps"
)

func TestConnectPath(t *testing.T) {
	cases := []struct {
		name   string
		points []jps.Node
		want   []grid.Coord
	}{
		{"Empty", nil, []grid.Coord{}},
		{"Single", []jps.Node{{Coord: grid.C(2, 2)}}, []grid.Coord{grid.C(2, 2)}},
		{
			name: "Straight",
			points: []jps.Node{
				{Coord: grid.C(0, 0)},
				{Coord: grid.C(0, 3), Dir: grid.South},
			},
			want: []grid.Coord{grid.C(0, 0), grid.C(0, 1), grid.C(0, 2), grid.C(0, 3)},
		},
		{
			name: "DiagonalThenStraight",
			points: []jps.Node{
				{Coord: grid.C(0, 0)},
				{Coord: grid.C(2, 2), Dir: grid.SouthEast},
				{Coord: grid.C(5, 2), Dir: grid.East},
			},
			want: []grid.Coord{
				grid.C(0, 0), grid.C(1, 1), grid.C(2, 2), grid.C(3, 2), grid.C(4, 2), grid.C(5, 2),
			},
		},
		{
			name: "BackwardsSegments",
			points: []jps.Node{
				{Coord: grid.C(3, 3)},
				{Coord: grid.C(1, 1), Dir: grid.NorthWest},
				{Coord: grid.C(1, 0), Dir: grid.North},
			},
			want: []grid.Coord{grid.C(3, 3), grid.C(2, 2), grid.C(1, 1), grid.C(1, 0)},
		},
		{
			// Without a recorded direction the segment steps toward its end.
			name: "MissingDirection",
			points: []jps.Node{
				{Coord: grid.C(0, 0)},
				{Coord: grid.C(2, 0)},
			},
			want: []grid.Coord{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, jps.ConnectPath(tc.points)); diff != "" {
				t.Errorf("ConnectPath mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
