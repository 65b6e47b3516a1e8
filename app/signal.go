package app

import (
	"github.com/gdamore/tcell/v2"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

const (
	CodeNone uint8 = iota
	CodeMoveUp
	CodeMoveDown
	CodeMoveLeft
	CodeMoveRight
	CodeFire
	CodeQuit

	// Start a new game with fresh fleets once the current one is over
	CodeRematch
)

// SignalFromKey maps a key press to an input code. Unmapped keys give
// CodeNone.
func SignalFromKey(ev *tcell.EventKey) uint8 {
	switch ev.Key() {
	case tcell.KeyUp:
		return CodeMoveUp
	case tcell.KeyDown:
		return CodeMoveDown
	case tcell.KeyLeft:
		return CodeMoveLeft
	case tcell.KeyRight:
		return CodeMoveRight
	case tcell.KeyEnter:
		return CodeFire
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CodeQuit
	case tcell.KeyRune:
	default:
		return CodeNone
	}

	switch ev.Rune() {
	case 'k':
		return CodeMoveUp
	case 'j':
		return CodeMoveDown
	case 'h':
		return CodeMoveLeft
	case 'l':
		return CodeMoveRight
	case ' ':
		return CodeFire
	case 'q', 'Q':
		return CodeQuit
	case 'r', 'R':
		return CodeRematch
	}
	return CodeNone
}

func directionFromCode(code uint8) (mb.Direction, bool) {
	switch code {
	case CodeMoveUp:
		return mb.DirectionUp, true
	case CodeMoveDown:
		return mb.DirectionDown, true
	case CodeMoveLeft:
		return mb.DirectionLeft, true
	case CodeMoveRight:
		return mb.DirectionRight, true
	}
	return 0, false
}
