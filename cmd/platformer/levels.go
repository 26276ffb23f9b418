package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/levels/packs"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var flagWatch bool

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Validate or export level files",
	Long: `Tools for level authors.

Level files are YAML (.yaml, .yml), TOML (.toml) or Tiled maps (.tmx).

Examples:
  platformer levels check ./my-levels
  platformer levels check ./my-levels --watch
  platformer levels export ./my-levels skyline`,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate every level file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsCheck,
}

var levelsExportCmd = &cobra.Command{
	Use:   "export <dir> [pack]",
	Short: "Write built-in level packs to a directory",
	Long: `Copy the files of a built-in pack (or all packs) to disk as a starting
point for custom levels. Existing files are never overwritten.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLevelsExport,
}

func init() {
	levelsCheckCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-check files whenever they change")
	levelsCmd.AddCommand(levelsCheckCmd)
	levelsCmd.AddCommand(levelsExportCmd)
}

func runLevelsCheck(_ *cobra.Command, args []string) error {
	dir := args[0]
	loader := levels.NewDirLoader(dir)

	failed, err := checkAll(loader)
	if err != nil {
		return err
	}

	if !flagWatch {
		if failed > 0 {
			return fmt.Errorf("%d level file(s) failed validation", failed)
		}
		return nil
	}

	w, err := levels.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("\nWatching %s for changes (Ctrl+C to stop)\n", dir)
	for {
		select {
		case <-ctx.Done():
			return nil
		case p, ok := <-w.Events:
			if !ok {
				return nil
			}
			rel, relErr := filepath.Rel(dir, p)
			if relErr != nil {
				rel = filepath.Base(p)
			}
			if _, statErr := os.Stat(p); errors.Is(statErr, fs.ErrNotExist) {
				fmt.Printf("%s removed\n", rel)
				continue
			}
			lvl, loadErr := loader.LoadFile(filepath.ToSlash(rel))
			printResult(levels.FileResult{Path: rel, Level: lvl, Err: loadErr})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// checkAll prints one line per level file and returns the failure count.
func checkAll(loader *levels.Loader) (int, error) {
	results, err := loader.CheckAll()
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, levels.ErrNoLevels
	}

	failed := 0
	for _, r := range results {
		printResult(r)
		if r.Err != nil {
			failed++
		}
	}

	fmt.Println()
	fmt.Printf("%d file(s), %d ok, %d failed\n", len(results), len(results)-failed, failed)
	return failed, nil
}

func printResult(r levels.FileResult) {
	if r.Err == nil {
		fmt.Printf("%s  %s  %s (%d platforms, %d enemies)\n",
			okStyle.Render(" OK "), r.Path, r.Level.Title(), len(r.Level.Platforms), len(r.Level.Enemies))
		return
	}
	fmt.Printf("%s  %s\n", failStyle.Render("FAIL"), r.Path)
	for line := range strings.SplitSeq(r.Err.Error(), "\n") {
		fmt.Printf("        %s\n", line)
	}
}

func runLevelsExport(_ *cobra.Command, args []string) error {
	dest := args[0]

	ids := make([]string, 0, len(packs.Builtin))
	if len(args) == 2 {
		if !registry.Exists(args[1]) {
			return fmt.Errorf("unknown pack %q", args[1])
		}
		ids = append(ids, args[1])
	} else {
		for _, p := range packs.Builtin {
			ids = append(ids, p.ID)
		}
	}

	for _, id := range ids {
		sub, err := fs.Sub(packs.FS(), id)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, id)
		if err := os.CopyFS(target, sub); err != nil {
			return fmt.Errorf("exporting %s: %w", id, err)
		}
		fmt.Printf("Exported %s to %s\n", id, target)
	}
	return nil
}
