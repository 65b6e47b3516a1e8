package battleship

import "fmt"

type CellState uint8

const (
	CellFree CellState = iota
	CellMiss
	CellHit
)

func (s CellState) String() string {
	switch s {
	case CellFree:
		return "free"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	}
	return fmt.Sprintf("cell(%d)", uint8(s))
}

// Grid is stored row-major: Grid[row][col], both 0-based.
type Grid [][]CellState

// Creates a new default grid
// All cells are CellFree
func NewGrid(width, height int) Grid {
	grid := make(Grid, height)

	for i := 0; i < height; i++ {
		grid[i] = make([]CellState, width)
	}
	return grid
}

func (g Grid) clone() Grid {
	cp := make(Grid, len(g))
	for i, row := range g {
		cp[i] = append([]CellState(nil), row...)
	}
	return cp
}
