package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level packs",
	Long:  `Shows every built-in level pack with its level count.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return nil
	}

	fmt.Println("Available level packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----------")

	for _, p := range packs {
		count := "?"
		if reg, err := registry.Load(p.ID); err == nil {
			count = fmt.Sprint(reg.Len())
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, p.ID, count, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a pack.")
	return nil
}
