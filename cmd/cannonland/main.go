//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"cannonland/internal/app"
	"cannonland/internal/config"
	"cannonland/internal/core"
	"cannonland/internal/logging"
	_ "cannonland/internal/sims/battlefield"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Merge(settings, flag.CommandLine)
	if err := logging.Setup(cfg.LogLevel, os.Stderr); err != nil {
		log.Fatal(err)
	}

	sim, err := core.Lookup(cfg.Sim, cfg.SimConfig(settings))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("cannonland - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	log.WithFields(log.Fields{"sim": sim.Name(), "tps": cfg.TPS, "scale": cfg.Scale}).Info("starting viewer")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
