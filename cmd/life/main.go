//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"sparse-life/internal/app"
	"sparse-life/internal/audio"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudWidth = 240

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctl, err := cfg.Build(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("sparse-life: %v", err)
	}
	if cfg.Bell {
		bell := audio.NewBell(80 * time.Millisecond)
		if err := bell.Init(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer bell.Close()
			ctl.SetNotifier(bell)
		}
	}

	game := app.New(ctl, hudWidth)

	ebiten.SetWindowTitle("sparse-life")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Width+hudWidth, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
