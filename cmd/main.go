package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/saeidalz13/battleship-terminal/app"
	"github.com/saeidalz13/battleship-terminal/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// the terminal belongs to tcell, logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatalln(err)
	}
}

func run(cfg config.Config) error {
	fleet, err := cfg.Fleet()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	a, err := app.NewApp(
		screen,
		app.WithDifficulty(cfg.Difficulty),
		app.WithFleet(fleet),
		app.WithSeed(cfg.Seed),
	)
	if err != nil {
		return err
	}

	log.Printf("starting battleship\tstage: %s\tseed: %d", cfg.Stage, cfg.Seed)
	return a.Run()
}
