package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/world"
)

func main() {
	logger := config.NewLogger(os.Stderr)

	settings, err := config.Load()
	if err != nil {
		logger.Fatal("invalid settings", "err", err)
	}
	sim, err := world.New(world.Options{Settings: settings, Logger: logger})
	if err != nil {
		logger.Fatal("new world", "err", err)
	}

	ebiten.SetWindowSize(int(settings.FieldWidth), int(settings.FieldHeight))
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetTPS(config.TargetFPS)

	g := newGame(sim, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("window closed", "survived", g.snap.Elapsed)
}
