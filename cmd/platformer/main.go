// platformer is a side-scrolling platformer that runs in the terminal.
//
// Usage:
//
//	platformer list               - List level packs
//	platformer play [pack]        - Play a level pack (default: classic)
//	platformer menu               - Pick packs interactively
//	platformer levels check DIR   - Validate level files
//	platformer levels export DIR  - Write the built-in packs to disk
//	platformer scores [pack]      - Show high scores
//	platformer serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.arcade/platformer.db)
//	--config <path>       - Custom simulation config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write session events to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	// Import the built-in packs to register them
	_ "github.com/vovakirdan/tui-platformer/internal/levels/packs"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal platformer - run, jump and stomp through level packs",
	Long: `A side-scrolling platformer for the terminal.

Run right past each level's goal line, stomp the soft enemies, shoot the
rest and grab power-ups on the way. Levels come in packs; the built-in
packs are written in YAML, TOML and Tiled TMX, and any directory of level
files can be played with --levels.

Available commands:
  list     - Show all level packs
  play     - Play a pack directly
  menu     - Interactive pack picker
  levels   - Validate or export level files
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play skyline --difficulty hard
  platformer play --levels ./my-levels
  platformer levels check ./my-levels --watch
  platformer serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/platformer.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write session events to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLevelsDir, "levels", "", "Play level files from a directory instead of a built-in pack")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the simulation config and applies --difficulty.
func loadGameConfig() (config.PlatformerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return config.PlatformerConfig{}, err
	}
	config.ApplyPlatformerPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the session logger. Interactive commands default to
// discarding output so the alt-screen is not corrupted; fallback is used
// when no --log-file is given.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, io.Closer(nopCloser{})
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// runtimeConfig sizes the viewport from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// loadLevels resolves the level registry to play: --levels wins over a
// pack ID.
func loadLevels(packID string) (*levels.Registry, error) {
	if flagLevelsDir != "" {
		id := filepath.Base(filepath.Clean(flagLevelsDir))
		return levels.NewDirLoader(flagLevelsDir).LoadRegistry(id)
	}
	if !registry.Exists(packID) {
		return nil, fmt.Errorf("unknown pack %q, run 'platformer list' to see available packs", packID)
	}
	return registry.Load(packID)
}
