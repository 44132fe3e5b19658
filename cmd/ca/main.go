//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/life"
	"lifegrid/internal/pattern"
	"lifegrid/internal/watch"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "YAML file with default settings")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
		// Flags given on the command line win over the file.
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	board, ok := factory(cfg.SimConfig()).(app.Board)
	if !ok {
		log.Fatalf("sim %q cannot be edited interactively", cfg.Sim)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloads chan pattern.Pattern
	if cfg.Watch && cfg.Pattern != "" {
		w, err := watch.New(cfg.Pattern, watch.DefaultDebounce)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		reloads = make(chan pattern.Pattern, 1)
		go w.Run(ctx, func(p pattern.Pattern, _ pattern.Diagnostics) {
			select {
			case reloads <- p:
			default:
			}
		})
	}

	game := app.New(board, cfg, reloads)
	if cfg.Pattern != "" {
		p, diag, err := pattern.Load(cfg.Pattern)
		if err != nil {
			log.Fatal(err)
		}
		if n := len(diag.Ignored); n > 0 {
			log.Printf("%s: ignored %d characters", cfg.Pattern, n)
		}
		game.Session().Load(p)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("lifegrid: " + board.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
