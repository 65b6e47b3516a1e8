package battleship

import (
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const (
	ShipDestroyer  = "destroyer"
	ShipCruiser    = "cruiser"
	ShipBattleship = "battleship"
)

// Ship tracks the cells it occupies and the distinct cells that were hit.
type Ship struct {
	name           string
	length         int
	position       []Coordinates
	hitCoordinates []Coordinates
}

func NewShip(name string, length int) *Ship {
	return &Ship{
		name:           name,
		length:         length,
		hitCoordinates: make([]Coordinates, 0, length),
	}
}

func (sh *Ship) Name() string {
	return sh.name
}

// Length is the planned size of the ship, used when placing it.
func (sh *Ship) Length() int {
	return sh.length
}

// SetPosition replaces the footprint. The caller guarantees the cells are
// on the board and free of other ships.
func (sh *Ship) SetPosition(cells []Coordinates) {
	sh.position = append([]Coordinates(nil), cells...)
}

func (sh *Ship) Position() []Coordinates {
	return append([]Coordinates(nil), sh.position...)
}

func (sh *Ship) Occupies(pos Coordinates) bool {
	for _, p := range sh.position {
		if p == pos {
			return true
		}
	}
	return false
}

// Hit records damage at pos. Hitting the same cell twice changes nothing.
// More distinct hits than cells means the caller hit a cell the ship does
// not occupy; that is a bug and it panics.
func (sh *Ship) Hit(pos Coordinates) {
	for _, p := range sh.hitCoordinates {
		if p == pos {
			return
		}
	}
	sh.hitCoordinates = append(sh.hitCoordinates, pos)

	if len(sh.hitCoordinates) > len(sh.position) {
		panic(cerr.ErrShipHitsExceedFootprint(sh.name, len(sh.hitCoordinates), len(sh.position)))
	}
}

func (sh *Ship) HitCount() int {
	return len(sh.hitCoordinates)
}

func (sh *Ship) GetHitCoordinates() []Coordinates {
	return append([]Coordinates(nil), sh.hitCoordinates...)
}

func (sh *Ship) IsSunk() bool {
	return len(sh.hitCoordinates) == len(sh.position)
}
