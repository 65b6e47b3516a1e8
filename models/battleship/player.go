package battleship

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// Player owns a fleet and a targeting board that records the shots fired
// at the opponent.
type Player struct {
	Uuid        string
	IsTurn      bool
	IsHost      bool
	MatchStatus int
	SunkenShips int
	Board       *Board
	Ships       []*Ship
}

func NewPlayer(isHost, isTurn bool, board *Board, ships []*Ship) *Player {
	return &Player{
		IsTurn:      isTurn,
		IsHost:      isHost,
		MatchStatus: PlayerMatchStatusUndefined,
		SunkenShips: 0,
		Uuid:        uuid.NewString()[:10],
		Board:       board,
		Ships:       ships,
	}
}

func (p *Player) Name() string {
	if p.IsHost {
		return "Player 1"
	}
	return "Player 2"
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name(), p.Uuid)
}

func (p *Player) IsLoser() bool {
	return p.SunkenShips == len(p.Ships)
}

// ShipAt returns the ship occupying pos, or nil for open water.
func (p *Player) ShipAt(pos Coordinates) *Ship {
	for _, ship := range p.Ships {
		if ship.Occupies(pos) {
			return ship
		}
	}
	return nil
}

func (p *Player) SunkShip() {
	p.SunkenShips++
}
