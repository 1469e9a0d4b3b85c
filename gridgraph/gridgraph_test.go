package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfind/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGrid / NewGridFromCells Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs and bad options.
func TestNewGrid_Errors(t *testing.T) {
	def := gridgraph.DefaultGridOptions()
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, def, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, def, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, def, gridgraph.ErrNonRectangular},
		{"ZeroThreshold", [][]int{{0}}, gridgraph.GridOptions{}, gridgraph.ErrBadThreshold},
		{"BadConn", [][]int{{0}}, gridgraph.GridOptions{BlockedThreshold: 1, Conn: 9}, gridgraph.ErrBadConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
			if !errors.Is(err, gridgraph.ErrInvalidInput) {
				t.Errorf("NewGrid(%v) error = %v; want it to wrap ErrInvalidInput", tc.grid, err)
			}
		})
	}
}

func TestNewGridFromCells_BadCell(t *testing.T) {
	_, err := gridgraph.NewGridFromCells([][]gridgraph.Cell{{gridgraph.Walkable, 7}}, gridgraph.Conn4)
	require.ErrorIs(t, err, gridgraph.ErrBadCell)

	gg, err := gridgraph.NewGridFromCells([][]gridgraph.Cell{
		{gridgraph.Walkable, gridgraph.Blocked},
	}, gridgraph.Conn8)
	require.NoError(t, err)
	require.Equal(t, gridgraph.Conn8, gg.Conn())
	require.True(t, gg.Walkable(gridgraph.Position{Row: 0, Col: 0}))
	require.False(t, gg.Walkable(gridgraph.Position{Row: 0, Col: 1}))
}

// TestNewGrid_Threshold checks that values at or above the threshold are blocked.
func TestNewGrid_Threshold(t *testing.T) {
	gg, err := gridgraph.NewGrid([][]int{{0, 1, 2, 3}}, gridgraph.GridOptions{BlockedThreshold: 2})
	require.NoError(t, err)

	want := []gridgraph.Cell{gridgraph.Walkable, gridgraph.Walkable, gridgraph.Blocked, gridgraph.Blocked}
	for c, w := range want {
		got, err := gg.At(gridgraph.Position{Row: 0, Col: c})
		require.NoError(t, err)
		if got != w {
			t.Errorf("At(0,%d) = %v; want %v", c, got, w)
		}
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak into the Grid.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int{{0, 0}, {0, 0}}
	gg, err := gridgraph.NewGrid(in, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	in[1][1] = 1
	require.True(t, gg.Walkable(gridgraph.Position{Row: 1, Col: 1}))
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds and At on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, 2, gg.Rows())
	require.Equal(t, 3, gg.Cols())
	require.Equal(t, 6, gg.Len())

	valid := []gridgraph.Position{{0, 0}, {1, 2}, {1, 1}}
	for _, p := range valid {
		if !gg.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []gridgraph.Position{{-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, p := range invalid {
		if gg.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
		if gg.Walkable(p) {
			t.Errorf("Walkable(%v)=true; want false", p)
		}
		if _, err := gg.At(p); !errors.Is(err, gridgraph.ErrOutOfBounds) {
			t.Errorf("At(%v) error = %v; want ErrOutOfBounds", p, err)
		}
	}
}

func TestIndexPositionRoundTrip(t *testing.T) {
	gg, err := gridgraph.NewGrid(make3x4(), gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	for idx := 0; idx < gg.Len(); idx++ {
		p := gg.Position(idx)
		require.True(t, gg.InBounds(p))
		require.Equal(t, idx, gg.Index(p))
	}
}

func TestNeighbors(t *testing.T) {
	values := [][]int{
		{0, 0, 0},
		{0, 0, 1},
		{0, 0, 0},
	}
	center := gridgraph.Position{Row: 1, Col: 1}

	t.Run("Conn4", func(t *testing.T) {
		gg, err := gridgraph.NewGrid(values, gridgraph.DefaultGridOptions())
		require.NoError(t, err)
		got := gg.Neighbors(center, nil)
		want := []gridgraph.Position{{0, 1}, {2, 1}, {1, 0}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Neighbors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Conn8", func(t *testing.T) {
		opts := gridgraph.DefaultGridOptions()
		opts.Conn = gridgraph.Conn8
		gg, err := gridgraph.NewGrid(values, opts)
		require.NoError(t, err)
		got := gg.Neighbors(center, nil)
		want := []gridgraph.Position{{0, 1}, {0, 2}, {2, 2}, {2, 1}, {2, 0}, {1, 0}, {0, 0}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Neighbors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("CornerReusesBuffer", func(t *testing.T) {
		gg, err := gridgraph.NewGrid(values, gridgraph.DefaultGridOptions())
		require.NoError(t, err)
		buf := make([]gridgraph.Position, 0, 8)
		got := gg.Neighbors(gridgraph.Position{Row: 0, Col: 0}, buf)
		require.Len(t, got, 2)
		require.Equal(t, cap(buf), cap(got))
	})
}

//----------------------------------------------------------------------------//
// ToGraph Tests
//----------------------------------------------------------------------------//

// TestToGraph_Conn4 verifies vertex numbering and that blocked cells stay isolated.
func TestToGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGrid([][]int{{0, 1}, {0, 0}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g := gg.ToGraph()

	require.Equal(t, 4, g.Order())
	// 0↔2, 2↔3 each contribute two directed edges.
	require.Equal(t, 4, g.Size())

	blocked, err := g.Edges(1)
	require.NoError(t, err)
	require.Empty(t, blocked, "blocked cell must have no outgoing edges")

	from0, _ := g.Edges(0)
	require.Len(t, from0, 1)
	require.Equal(t, 2, from0[0].To)
	require.Equal(t, int64(1), from0[0].Weight)
}

// TestToGraph_Conn8 verifies diagonal connectivity.
func TestToGraph_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGrid([][]int{{0, 1}, {1, 0}}, opts)
	require.NoError(t, err)
	g := gg.ToGraph()

	from0, _ := g.Edges(0)
	require.Len(t, from0, 1)
	require.Equal(t, 3, from0[0].To, "expected diagonal edge (0,0)→(1,1)")
}

func make3x4() [][]int {
	return [][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	}
}
