// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/pathfind.
package gridgraph

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella error for malformed grid input.
var ErrInvalidInput = errors.New("gridgraph: invalid input")

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)
	// ErrBadThreshold indicates a BlockedThreshold below 1.
	ErrBadThreshold = fmt.Errorf("%w: BlockedThreshold must be at least 1", ErrInvalidInput)
	// ErrBadConnectivity indicates an unknown Connectivity value.
	ErrBadConnectivity = fmt.Errorf("%w: unknown connectivity", ErrInvalidInput)
	// ErrBadCell indicates a cell marker other than Walkable or Blocked.
	ErrBadCell = fmt.Errorf("%w: cell must be Walkable or Blocked", ErrInvalidInput)
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: position out of bounds", ErrInvalidInput)
)

// Cell is the marker stored for every grid position.
type Cell uint8

const (
	// Walkable cells may be entered.
	Walkable Cell = iota
	// Blocked cells may never be entered.
	Blocked
)

// String returns "Walkable" or "Blocked".
func (c Cell) String() string {
	switch c {
	case Walkable:
		return "Walkable"
	case Blocked:
		return "Blocked"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Position addresses one cell.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// BlockedThreshold is the minimum input value treated as Blocked.
	BlockedThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns BlockedThreshold=1 (0 walkable, >=1 blocked) and Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		BlockedThreshold: 1,
		Conn:             Conn4,
	}
}

// Grid is an immutable walkability map. Cells are stored row-major.
type Grid struct {
	rows, cols int
	cells      []Cell
	conn       Connectivity
	offsets    []Position
}
