package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const defaultPack = "classic"

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the specified level pack (default: classic).

Controls:
  A/D, Left/Right  - Move
  Space, W/Up      - Jump (W/Up also aims up while held)
  J/Z/X            - Shoot
  R                - Restart (after game over or win)
  Esc              - Leave (after game over or win)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - More health and longer power-ups
  normal - Defaults
  hard   - Less health, shorter power-ups, enemies speed up per level
  fixed  - No enemy speed progression

Examples:
  platformer play
  platformer play caverns --difficulty easy
  platformer play --levels ./my-levels
  platformer play --config ./my-physics.yaml --log-file ./play.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	packID := defaultPack
	if len(args) == 1 {
		packID = args[0]
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	reg, err := loadLevels(packID)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("platformer", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Continue without storage if the database cannot be opened
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	game := platformer.New(reg, gameCfg)
	return tui.Run(game, store, runtimeConfig(), tui.ModelOptions{
		Player: os.Getenv("USER"),
		Logger: logger,
	})
}
