package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

const (
	StatePlaying uint8 = iota

	// The previous attacker missed. The screen stays blank until the next
	// player presses a key, so nobody sees the other's shots.
	StateHandover
	StateFinished
)

const controlsHint = "arrows/hjkl move   enter/space fire   q quit"

type App struct {
	screen     tcell.Screen
	difficulty int
	fleet      []mb.ShipSpec
	seed       int64
	rng        *rand.Rand
	game       *mb.Game
	state      uint8
	status     string
}

type Option func(*App) error

func NewApp(screen tcell.Screen, optFuncs ...Option) (*App, error) {
	app := App{
		screen:     screen,
		difficulty: mb.GameDifficultyNormal,
		fleet:      mb.DefaultFleet(),
		seed:       time.Now().UnixNano(),
	}
	for _, opt := range optFuncs {
		if err := opt(&app); err != nil {
			return nil, err
		}
	}
	app.rng = rand.New(rand.NewSource(app.seed))

	if err := app.newGame(); err != nil {
		return nil, err
	}
	return &app, nil
}

func WithDifficulty(difficulty int) Option {
	return func(a *App) error {
		if difficulty != mb.GameDifficultyEasy && difficulty != mb.GameDifficultyNormal && difficulty != mb.GameDifficultyHard {
			return fmt.Errorf("invalid game difficulty: %d", difficulty)
		}
		a.difficulty = difficulty
		return nil
	}
}

func WithFleet(fleet []mb.ShipSpec) Option {
	return func(a *App) error {
		if len(fleet) == 0 {
			return fmt.Errorf("fleet must contain at least one ship")
		}
		a.fleet = fleet
		return nil
	}
}

func WithSeed(seed int64) Option {
	return func(a *App) error {
		a.seed = seed
		return nil
	}
}

func (a *App) Game() *mb.Game {
	return a.game
}

func (a *App) State() uint8 {
	return a.state
}

func (a *App) newGame() error {
	game, err := mb.NewGame(a.difficulty, a.screen, a.fleet, a.rng)
	if err != nil {
		return err
	}

	a.game = game
	a.state = StatePlaying
	a.status = fmt.Sprintf("%s starts", game.Attacker().Name())
	log.Printf("new game created\tuuid: %s\tgrid: %dx%d", game.Uuid, game.GridSize, game.GridSize)
	return nil
}

// Run draws the game and processes input until a quit key is pressed or
// the screen is finalized.
func (a *App) Run() error {
	a.draw()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			log.Printf("player quit\tgame: %s", a.game.Uuid)
			return nil
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the
// player asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()

	case *tcell.EventKey:
		code := SignalFromKey(ev)
		if code == CodeQuit {
			return false
		}

		switch a.state {
		case StateHandover:
			a.state = StatePlaying
			a.draw()

		case StateFinished:
			if code == CodeRematch {
				if err := a.newGame(); err != nil {
					log.Println("failed to start rematch:", err)
					return false
				}
				a.draw()
			}

		case StatePlaying:
			a.handlePlayingCode(code)
		}
	}
	return true
}

func (a *App) handlePlayingCode(code uint8) {
	board := a.game.Attacker().Board

	if dir, ok := directionFromCode(code); ok {
		if board.MoveCursor(dir) {
			a.screen.Show()
		}
		return
	}
	if code != CodeFire {
		return
	}

	attacker := a.game.Attacker()
	result, err := a.game.Fire()
	if err != nil {
		log.Println("failed to fire:", err)
		return
	}
	log.Printf("%s fired\tgame: %s\tresult: %s", attacker, a.game.Uuid, result)
	a.status = fmt.Sprintf("%s - %s", attacker.Name(), result)

	switch {
	case result.GameOver:
		a.state = StateFinished
		for _, line := range board.AsciiRows() {
			log.Println(line)
		}
	case result.TurnPassed:
		a.state = StateHandover
	}
	a.draw()
}

func (a *App) draw() {
	attacker := a.game.Attacker()

	switch a.state {
	case StateHandover:
		a.screen.Clear()
		attacker.Board.DrawCaption(
			a.status,
			"",
			fmt.Sprintf("%s, your turn. Press any key.", attacker.Name()),
		)
		a.screen.HideCursor()

	case StateFinished:
		attacker.Board.Draw()
		outcome := "no ships left to find"
		if winner := a.game.Winner(); winner != nil {
			outcome = fmt.Sprintf("%s wins!", winner.Name())
		}
		attacker.Board.DrawCaption(a.status, outcome, "r rematch   q quit")
		a.screen.HideCursor()

	default:
		defender := a.game.Defender()
		attacker.Board.Draw()
		attacker.Board.DrawCaption(
			a.status,
			fmt.Sprintf("%s firing - enemy ships left: %d/%d", attacker.Name(), len(defender.Ships)-defender.SunkenShips, len(defender.Ships)),
			controlsHint,
		)
	}

	a.screen.Show()
}
