package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Neighbor offsets as (dRow, dCol). Conn4 order follows N, E, S, W.
var (
	offsets4 = []Position{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = []Position{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of values.
// A value >= opts.BlockedThreshold marks a Blocked cell, anything lower a
// Walkable one. The input is copied.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if opts.BlockedThreshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, opts.BlockedThreshold)
	}
	gg, err := newEmpty(len(values), rowLengths(values), opts.Conn)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		for c, v := range row {
			if v >= opts.BlockedThreshold {
				gg.cells[r*gg.cols+c] = Blocked
			}
		}
	}

	return gg, nil
}

// NewGridFromCells constructs a Grid from explicit cell markers.
// Returns ErrBadCell for any marker other than Walkable or Blocked.
func NewGridFromCells(cells [][]Cell, conn Connectivity) (*Grid, error) {
	gg, err := newEmpty(len(cells), rowLengths(cells), conn)
	if err != nil {
		return nil, err
	}
	for r, row := range cells {
		for c, v := range row {
			if v != Walkable && v != Blocked {
				return nil, fmt.Errorf("%w: %v at %v", ErrBadCell, v, Position{r, c})
			}
			gg.cells[r*gg.cols+c] = v
		}
	}

	return gg, nil
}

func rowLengths[T any](rows [][]T) []int {
	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = len(row)
	}

	return out
}

// newEmpty validates the shape and returns an all-Walkable grid.
func newEmpty(h int, widths []int, conn Connectivity) (*Grid, error) {
	if h == 0 || widths[0] == 0 {
		return nil, ErrEmptyGrid
	}
	w := widths[0]
	for r, rw := range widths {
		if rw != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, rw, w)
		}
	}
	var offsets []Position
	switch conn {
	case Conn4:
		offsets = offsets4
	case Conn8:
		offsets = offsets8
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadConnectivity, conn)
	}

	return &Grid{
		rows:    h,
		cols:    w,
		cells:   make([]Cell, h*w),
		conn:    conn,
		offsets: offsets,
	}, nil
}

// Rows returns the number of rows.
func (gg *Grid) Rows() int { return gg.rows }

// Cols returns the number of columns.
func (gg *Grid) Cols() int { return gg.cols }

// Len returns the number of cells, Rows()*Cols().
func (gg *Grid) Len() int { return len(gg.cells) }

// Conn returns the grid's movement model.
func (gg *Grid) Conn() Connectivity { return gg.conn }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.rows && p.Col >= 0 && p.Col < gg.cols
}

// Walkable reports whether p is in bounds and its cell is Walkable.
// Complexity: O(1).
func (gg *Grid) Walkable(p Position) bool {
	return gg.InBounds(p) && gg.cells[gg.Index(p)] == Walkable
}

// At returns the cell at p, or ErrOutOfBounds.
func (gg *Grid) At(p Position) (Cell, error) {
	if !gg.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, gg.rows, gg.cols)
	}

	return gg.cells[gg.Index(p)], nil
}

// Index maps p to its row-major index: Row*Cols + Col.
// p must be in bounds.
func (gg *Grid) Index(p Position) int {
	return p.Row*gg.cols + p.Col
}

// Position converts a row-major index back to a Position.
func (gg *Grid) Position(idx int) Position {
	return Position{Row: idx / gg.cols, Col: idx % gg.cols}
}

// Neighbors appends to buf[:0] every walkable neighbor of p under the grid's
// connectivity and returns the result. Passing the previous result back in
// as buf avoids allocation in search loops.
// Complexity: O(d).
func (gg *Grid) Neighbors(p Position, buf []Position) []Position {
	buf = buf[:0]
	for _, d := range gg.offsets {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if gg.Walkable(n) {
			buf = append(buf, n)
		}
	}

	return buf
}

// ToGraph converts the grid into a directed *core.Graph. Every cell p
// becomes vertex Index(p); every walkable cell gets a unit-weight edge to
// each walkable neighbor. Blocked cells stay isolated vertices.
// Complexity: O(R×C×d) time, Memory: O(R×C + E).
func (gg *Grid) ToGraph() *core.Graph {
	adj := make([][]core.Edge, len(gg.cells))
	var buf []Position
	for idx := range gg.cells {
		p := gg.Position(idx)
		if !gg.Walkable(p) {
			continue
		}
		buf = gg.Neighbors(p, buf)
		row := make([]core.Edge, 0, len(buf))
		for _, n := range buf {
			row = append(row, core.Edge{To: gg.Index(n), Weight: 1})
		}
		adj[idx] = row
	}
	// Every edge was produced from in-range indices with weight 1.
	g, _ := core.FromAdjacency(adj)

	return g
}
