package battleship

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const (
	MaxBoardWidth  = 99
	MaxBoardHeight = 26 // one letter per row
)

// Cosmetics of the board. Not configurable at runtime.
const (
	fieldSeparate = "  "
	fieldFree     = "."
	fieldMiss     = "x"
	fieldHit      = "o"
)

// Surface is the part of tcell.Screen the board draws on.
// Size reports (columns, rows).
type Surface interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	ShowCursor(x, y int)
	Clear()
}

var _ Surface = (tcell.Screen)(nil)

type screenPos struct {
	x int
	y int
}

// Board is a targeting grid: the cells a player has fired at and the
// cursor they aim with.
type Board struct {
	width   int
	height  int
	grid    Grid
	cursor  Coordinates
	surface Surface

	// recomputed from the surface size on every draw
	origin screenPos
}

func NewBoard(width, height int, surface Surface) (*Board, error) {
	if width < 1 || width > MaxBoardWidth || height < 1 || height > MaxBoardHeight {
		return nil, cerr.ErrInvalidBoardDimensions(width, height)
	}

	return &Board{
		width:   width,
		height:  height,
		grid:    NewGrid(width, height),
		cursor:  NewCoordinates(1, 1),
		surface: surface,
	}, nil
}

// Draw prints the board in the middle of the surface with column numbers
// on top and row letters on the left, then puts the cursor back on the
// targeted cell.
func (b *Board) Draw() {
	b.surface.Clear()
	b.updateOrigin()

	b.writeString(b.origin.x, b.origin.y, " ", tcell.StyleDefault)
	for col := 1; col <= b.width; col++ {
		x, _ := b.cellScreenPos(NewCoordinates(col, 0))
		b.writeString(x, b.origin.y, strconv.Itoa(col), tcell.StyleDefault.Bold(true))
	}

	for row, cells := range b.grid {
		y := b.origin.y + row + 1
		b.writeString(b.origin.x, y, string(rune('A'+row))+fieldSeparate, tcell.StyleDefault.Bold(true))

		for col, state := range cells {
			x, _ := b.cellScreenPos(NewCoordinates(col+1, row+1))
			b.writeString(x, y, cellSymbol(state)+fieldSeparate, cellStyle(state))
		}
	}

	b.ResetCursorDisplay()
}

// DrawCaption writes status lines centered under the grid.
func (b *Board) DrawCaption(lines ...string) {
	b.updateOrigin()
	cols, _ := b.surface.Size()

	for i, line := range lines {
		x := (cols - len([]rune(line))) / 2
		if x < 0 {
			x = 0
		}
		b.writeString(x, b.origin.y+b.height+2+i, line, tcell.StyleDefault)
	}

	b.ResetCursorDisplay()
}

// SetField marks a free cell as a miss or a hit. It returns false and
// leaves the grid untouched when the cell was already marked.
func (b *Board) SetField(pos Coordinates, mark CellState) (bool, error) {
	if !pos.within(b.width, b.height) {
		return false, cerr.ErrPositionOutOfBoard(pos.Col, pos.Row, b.width, b.height)
	}

	switch mark {
	case CellMiss, CellHit:
	default:
		return false, cerr.ErrInvalidMark(uint8(mark))
	}

	row, col := pos.index()
	if b.grid[row][col] != CellFree {
		return false, nil
	}

	b.grid[row][col] = mark
	return true, nil
}

func (b *Board) CellAt(pos Coordinates) (CellState, error) {
	if !pos.within(b.width, b.height) {
		return CellFree, cerr.ErrPositionOutOfBoard(pos.Col, pos.Row, b.width, b.height)
	}
	row, col := pos.index()
	return b.grid[row][col], nil
}

func (b *Board) CursorPosition() Coordinates {
	return b.cursor
}

// Grid returns a copy of the cell states, indexed [row][col] from 0.
func (b *Board) Grid() Grid {
	return b.grid.clone()
}

func (b *Board) Dimensions() (int, int) {
	return b.width, b.height
}

// Origin is the top-left screen cell of the most recent draw.
func (b *Board) Origin() (int, int) {
	return b.origin.x, b.origin.y
}

// loop through board and check if you find a field which is still free
func (b *Board) IsFull() bool {
	for _, row := range b.grid {
		for _, state := range row {
			if state == CellFree {
				return false
			}
		}
	}
	return true
}

// MoveCursor shifts the cursor by one cell. Moves that would leave the
// board are refused and reported as false.
func (b *Board) MoveCursor(dir Direction) bool {
	next, ok := b.cursor.step(dir)
	if !ok || !next.within(b.width, b.height) {
		return false
	}

	b.cursor = next
	b.ResetCursorDisplay()
	return true
}

func (b *Board) ResetCursorDisplay() {
	b.surface.ShowCursor(b.cellScreenPos(b.cursor))
}

func (b *Board) updateOrigin() {
	cols, rows := b.surface.Size()
	sepLength := len(fieldSeparate)

	// the labels take one extra row and column
	x := (cols - b.width*(sepLength+1) - 1) / 2
	y := (rows - b.height - 1) / 2
	b.origin = screenPos{x: max(x, 0), y: max(y, 0)}
}

func (b *Board) cellScreenPos(pos Coordinates) (int, int) {
	return b.origin.x + pos.Col*(len(fieldSeparate)+1), b.origin.y + pos.Row
}

func (b *Board) writeString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		b.surface.SetContent(x+i, y, r, nil, style)
	}
}

func cellSymbol(state CellState) string {
	switch state {
	case CellMiss:
		return fieldMiss
	case CellHit:
		return fieldHit
	}
	return fieldFree
}

func cellStyle(state CellState) tcell.Style {
	switch state {
	case CellMiss:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case CellHit:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault
}

// AsciiRows renders the grid without screen placement, one string per row
// including the header. Used for logging finished games.
func (b *Board) AsciiRows() []string {
	lines := make([]string, 0, b.height+1)

	header := []string{" "}
	for col := 1; col <= b.width; col++ {
		header = append(header, strconv.Itoa(col))
	}
	lines = append(lines, joinFields(header))

	for row, cells := range b.grid {
		symbols := make([]string, 0, len(cells)+1)
		symbols = append(symbols, string(rune('A'+row)))
		for _, state := range cells {
			symbols = append(symbols, cellSymbol(state))
		}
		lines = append(lines, joinFields(symbols))
	}
	return lines
}

// each field is followed by the separator, including the last one
func joinFields(fields []string) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f)
		sb.WriteString(fieldSeparate)
	}
	return sb.String()
}
