package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"sparse-life/internal/app"
	"sparse-life/internal/audio"
	"sparse-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("sparse-life: %v", err)
	}
}

func run(cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctl, err := cfg.Build(term.ViewSize(screen.Size()))
	if err != nil {
		return err
	}
	if cfg.Bell {
		bell := audio.NewBell(80 * time.Millisecond)
		// Without a speaker the frontend simply stays silent.
		if bell.Init() == nil {
			defer bell.Close()
			ctl.SetNotifier(bell)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := term.New(screen, ctl).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
