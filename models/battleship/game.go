package battleship

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const (
	GameDifficultyEasy int = iota
	GameDifficultyNormal
	GameDifficultyHard
)

const (
	GridSizeEasy   int = 5
	GridSizeNormal int = 6
	GridSizeHard   int = 7
)

func ParseDifficulty(s string) (int, error) {
	switch s {
	case "easy":
		return GameDifficultyEasy, nil
	case "normal", "":
		return GameDifficultyNormal, nil
	case "hard":
		return GameDifficultyHard, nil
	}
	return 0, cerr.ErrInvalidDifficulty(s)
}

func gridSize(difficulty int) int {
	switch difficulty {
	case GameDifficultyEasy:
		return GridSizeEasy
	case GameDifficultyNormal:
		return GridSizeNormal
	}
	return GridSizeHard
}

type Game struct {
	isFinished bool
	Uuid       string
	HostPlayer *Player
	JoinPlayer *Player
	Difficulty int
	GridSize   int
}

// NewGame sets up two players with their own randomly placed fleets. Both
// targeting boards draw on the same surface; only the attacker's is shown.
func NewGame(difficulty int, surface Surface, fleet []ShipSpec, rng *rand.Rand) (*Game, error) {
	game := &Game{
		Uuid:       uuid.NewString()[:6],
		Difficulty: difficulty,
		GridSize:   gridSize(difficulty),
	}

	if err := ValidateFleet(fleet, game.GridSize, game.GridSize); err != nil {
		return nil, err
	}

	players := make([]*Player, 2)
	for i := range players {
		board, err := NewBoard(game.GridSize, game.GridSize, surface)
		if err != nil {
			return nil, err
		}

		ships := NewFleet(fleet)
		if err := PlaceFleet(rng, game.GridSize, game.GridSize, ships); err != nil {
			return nil, err
		}

		isHost := i == 0
		players[i] = NewPlayer(isHost, isHost, board, ships)
	}
	game.HostPlayer, game.JoinPlayer = players[0], players[1]

	return game, nil
}

// returns a slice of players in the order of host then join.
func (g *Game) GetPlayers() []*Player {
	return []*Player{g.HostPlayer, g.JoinPlayer}
}

func (g *Game) Attacker() *Player {
	if g.HostPlayer.IsTurn {
		return g.HostPlayer
	}
	return g.JoinPlayer
}

func (g *Game) Defender() *Player {
	if g.HostPlayer.IsTurn {
		return g.JoinPlayer
	}
	return g.HostPlayer
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

// Winner is nil until a fleet has been sunk.
func (g *Game) Winner() *Player {
	for _, p := range g.GetPlayers() {
		if p.MatchStatus == PlayerMatchStatusWon {
			return p
		}
	}
	return nil
}

type FireResult struct {
	Target Coordinates
	Mark   CellState

	// Repeated is set when the cell had been fired at before. Nothing
	// changes and the attacker keeps the turn.
	Repeated bool
	Ship     *Ship
	Sunk     bool
	GameOver bool

	// TurnPassed is set on a miss; a hit lets the attacker fire again.
	TurnPassed bool
}

func (r FireResult) String() string {
	switch {
	case r.Repeated:
		return fmt.Sprintf("%s was already fired at", r.Target.Label())
	case r.GameOver && r.Ship != nil:
		return fmt.Sprintf("%s: hit, %s sunk, last ship down", r.Target.Label(), r.Ship.Name())
	case r.Sunk:
		return fmt.Sprintf("%s: hit, %s sunk", r.Target.Label(), r.Ship.Name())
	case r.Mark == CellHit:
		return fmt.Sprintf("%s: hit", r.Target.Label())
	}
	return fmt.Sprintf("%s: miss", r.Target.Label())
}

// Fire shoots at the cell under the attacker's cursor.
func (g *Game) Fire() (FireResult, error) {
	if g.isFinished {
		return FireResult{}, cerr.ErrGameFinished(g.Uuid)
	}
	attacker, defender := g.Attacker(), g.Defender()

	target := attacker.Board.CursorPosition()
	result := FireResult{Target: target, Mark: CellMiss}

	ship := defender.ShipAt(target)
	if ship != nil {
		result.Mark = CellHit
	}

	marked, err := attacker.Board.SetField(target, result.Mark)
	if err != nil {
		return FireResult{}, err
	}
	if !marked {
		result.Repeated = true
		result.Mark, _ = attacker.Board.CellAt(target)
		return result, nil
	}

	if ship != nil {
		ship.Hit(target)
		result.Ship = ship

		if ship.IsSunk() {
			defender.SunkShip()
			result.Sunk = true
		}
		if defender.IsLoser() {
			attacker.MatchStatus = PlayerMatchStatusWon
			defender.MatchStatus = PlayerMatchStatusLost
			g.FinishGame()
			result.GameOver = true
		}
		return result, nil
	}

	// nothing left to shoot at
	if attacker.Board.IsFull() {
		g.FinishGame()
		result.GameOver = true
		return result, nil
	}

	g.switchTurn()
	result.TurnPassed = true
	return result, nil
}

func (g *Game) switchTurn() {
	g.HostPlayer.IsTurn = !g.HostPlayer.IsTurn
	g.JoinPlayer.IsTurn = !g.JoinPlayer.IsTurn
}
