// Package packs embeds the built-in level packs and registers them.
package packs

import (
	"embed"
	"io/fs"

	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

//go:embed classic caverns skyline
var packFS embed.FS

// Builtin lists the embedded packs in menu order.
var Builtin = []registry.PackInfo{
	{ID: "classic", Title: "Classic", Description: "Three meadow levels (YAML)"},
	{ID: "caverns", Title: "Caverns", Description: "Gaps and hovering guards (TOML)"},
	{ID: "skyline", Title: "Skyline", Description: "Rooftop runs drawn in Tiled (TMX)"},
}

func init() {
	for _, info := range Builtin {
		registry.Register(info, loader(info.ID))
	}
}

func loader(id string) registry.Factory {
	return func() (*levels.Registry, error) {
		return levels.NewLoader(packFS, id).LoadRegistry(id)
	}
}

// FS exposes the embedded pack files, e.g. for `levels export`.
func FS() fs.FS {
	return packFS
}
