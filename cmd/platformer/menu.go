package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level pack picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a pack, Tab for the
scoreboard. After a run ends, Esc returns to the menu.

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --db ./runs.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger("platformer", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		selected, scoreboard, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		if scoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if selected == nil {
			return nil
		}

		reg, err := registry.Load(selected.PackID)
		if err != nil {
			return err
		}

		model := tui.NewModel(platformer.New(reg, gameCfg), store, cfg, tui.ModelOptions{
			Player:    os.Getenv("USER"),
			Logger:    logger,
			AllowBack: true,
		})
		final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}
		if m, ok := final.(tui.Model); ok && m.IsQuitting() {
			return nil
		}
	}
}
