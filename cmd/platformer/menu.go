package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/devil"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the launcher menu",
	Long: `Start in interactive launcher mode.

Pick a difficulty or open the scoreboard. Leaving a game with B from its
title screen returns here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	sounds := newSoundPlayer()
	defer sounds.Close()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(devil.ID, "Level Devil", store, cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(devil.ID, "Level Devil", store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(devil.ID)
		if err != nil {
			logger.Error("creating game", "err", err)
			return
		}
		if g, ok := game.(*devil.Game); ok {
			g.SetPreset(result.Preset)
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		sounds.StartMusic()
		backToMenu, err := tui.Run(game, store, sounds, cfg)
		sounds.StopMusic()
		if err != nil {
			logger.Error("running game", "err", err)
			return
		}
		if !backToMenu {
			return
		}
	}
}
