package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/devil"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/sfx"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Level Devil",
	Long: `Start playing immediately.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  Enter            - Start / next level
  P/Esc            - Pause
  R                - Restart
  B                - Back to title
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 3 lives, slower bombs
  normal - 3 lives, level 1
  hard   - 2 lives, starts at level 6 where bombs begin

Examples:
  platformer play
  platformer play --difficulty easy
  platformer play --seed 42 --mute
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
		c.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound effect volume (0-1)")
	}
}

// newSoundPlayer opens the speaker unless muted. A failed speaker is logged
// by the player and play continues silently.
func newSoundPlayer() *sfx.Player {
	volume := flagVolume
	if flagMute {
		volume = 0
	}
	p := sfx.NewPlayer(logger.WithPrefix("sfx"), volume)
	if volume > 0 {
		//nolint:errcheck // Logged by the player
		p.Init()
	}
	return p
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := registry.Create(devil.ID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStore()
	sounds := newSoundPlayer()

	sounds.StartMusic()
	_, runErr := tui.Run(game, store, sounds, runtimeConfig())

	sounds.Close()
	closeStore(store)

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
