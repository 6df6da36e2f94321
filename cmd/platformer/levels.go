package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/devil"
)

var levelsCmd = &cobra.Command{
	Use:   "levels <n> [m]",
	Short: "Preview generated levels",
	Long: `Print entity counts, countdown and goal bonus for level n, or for every
level from n to m. Uses --config and --seed like play does.

Examples:
  platformer levels 1
  platformer levels 1 100
  platformer levels 12 --seed 7`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		fail("level %q is not a number", args[0])
	}
	to := from
	if len(args) == 2 {
		if to, err = strconv.Atoi(args[1]); err != nil {
			fail("level %q is not a number", args[1])
		}
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	gen := devil.NewGenerator(cfg, flagSeed)

	fmt.Printf("  %-5s  %-9s  %-6s  %-9s  %-5s  %-5s  %-5s  %s\n",
		"Level", "Platforms", "Moving", "Obstacles", "Bombs", "Time", "Bonus", "Spawn")
	for n := from; n <= to; n++ {
		lvl, err := gen.Generate(n)
		if err != nil {
			fail("%v", err)
		}
		fmt.Printf("  %-5d  %-9d  %-6d  %-9d  %-5d  %-5d  %-5d  (%.0f, %.0f)\n",
			lvl.Number, len(lvl.Platforms), len(lvl.Moving), len(lvl.Obstacles), len(lvl.Bombs),
			lvl.Duration, cfg.Session.GoalScore(n), lvl.Spawn.X, lvl.Spawn.Y)
	}
}
