package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange          = errors.New("out of range")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInternalConsistency = errors.New("internal consistency violated")
)

func ErrPositionOutOfBoard(col, row, width, height int) error {
	return fmt.Errorf("%w: position is not on board\tcol: %d\trow: %d\tboard: %dx%d", ErrOutOfRange, col, row, width, height)
}

func ErrInvalidMark(mark uint8) error {
	return fmt.Errorf("%w: mark must be miss or hit\tgot: %d", ErrInvalidArgument, mark)
}

func ErrInvalidBoardDimensions(width, height int) error {
	return fmt.Errorf("%w: board dimensions not supported\twidth: %d\theight: %d", ErrInvalidArgument, width, height)
}

func ErrInvalidDifficulty(difficulty string) error {
	return fmt.Errorf("%w: difficulty must be easy, normal or hard\tgot: %s", ErrInvalidArgument, difficulty)
}

func ErrInvalidFleet(desc string) error {
	return fmt.Errorf("%w: invalid fleet: %s", ErrInvalidArgument, desc)
}

func ErrInvalidFootprint(desc string) error {
	return fmt.Errorf("%w: invalid ship footprint: %s", ErrInvalidArgument, desc)
}

func ErrShipHitsExceedFootprint(name string, hits, length int) error {
	return fmt.Errorf("%w: ship %q has more hits than cells\thits: %d\tlength: %d", ErrInternalConsistency, name, hits, length)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("game is already finished, uuid: %s", gameUuid)
}
