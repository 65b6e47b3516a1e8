package battleship

import "fmt"

// Coordinates addresses a cell on a board. Both fields are 1-based:
// Col runs from 1 to the board width and Row from 1 to its height.
type Coordinates struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

func NewCoordinates(col, row int) Coordinates {
	return Coordinates{Col: col, Row: row}
}

// Label renders the coordinates the way the board labels them, e.g. "C3".
func (c Coordinates) Label() string {
	if c.Row < 1 || c.Row > MaxBoardHeight {
		return c.String()
	}
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row-1), c.Col)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

func (c Coordinates) step(dir Direction) (Coordinates, bool) {
	switch dir {
	case DirectionUp:
		c.Row--
	case DirectionDown:
		c.Row++
	case DirectionLeft:
		c.Col--
	case DirectionRight:
		c.Col++
	default:
		return c, false
	}
	return c, true
}

func (c Coordinates) within(width, height int) bool {
	return c.Col >= 1 && c.Col <= width && c.Row >= 1 && c.Row <= height
}

// index converts to 0-based (row, col) storage indexes.
func (c Coordinates) index() (int, int) {
	return c.Row - 1, c.Col - 1
}

type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}
