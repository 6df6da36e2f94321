// platformer is a single-screen terminal platformer: run, jump, dodge spikes
// and falling bombs, and reach the flag before the countdown runs out.
//
// Usage:
//
//	platformer play            - Play directly
//	platformer menu            - Launcher with difficulty picker and scoreboard
//	platformer serve           - Start SSH server for remote play
//	platformer scores          - Show high scores
//	platformer levels <n>      - Preview the layout of a level
//	platformer list            - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <target>         - SQLite path or redis:// URL (default: ~/.arcade/scores.db)
//	--config <path>       - Custom platformer YAML
//	--difficulty <name>   - easy, normal or hard
package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/devil"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "platformer",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Level Devil - a platformer in your terminal",
	Long: `Level Devil is a single-screen platformer for the terminal.
Cross the platforms, avoid spikes and falling bombs, and reach the flag
before time runs out. 100 levels, up to 3 lives.

Available commands:
  play     - Play directly
  menu     - Launcher with difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Preview a generated level
  list     - Show registered games

Examples:
  platformer play
  platformer play --difficulty hard
  platformer menu --db redis://localhost:6379/0
  platformer serve --ssh :2222
  platformer levels 25`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		devil.SetConfigPath(flagConfig)
		devil.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Scores database path or redis:// URL")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score store. Play continues without one on failure.
func openStore() storage.ScoreStore {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := storage.Open(ctx, flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "target", flagDBPath, "err", err)
		return nil
	}
	return store
}

func closeStore(store storage.ScoreStore) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "err", err)
	}
}

// fail reports a fatal command error through the logger and exits.
func fail(format string, args ...any) {
	reportError(logger, format, args...)
	os.Exit(1)
}

func reportError(l *log.Logger, format string, args ...any) {
	l.Errorf(format, args...)
}
