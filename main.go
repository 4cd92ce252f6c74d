package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/swingpong/config"
	"github.com/meghashyamc/swingpong/game"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start game: %s\n", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running game: %s\n", err)
		os.Exit(1)
	}
}
