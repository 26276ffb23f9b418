// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, allowing the platform to
// discover and load them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// PackInfo contains metadata about a registered level pack.
type PackInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory loads the levels of a pack.
type Factory func() (*levels.Registry, error)

type entry struct {
	info    PackInfo
	factory Factory
}

var (
	packs = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a level pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(info PackInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[info.ID]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	packs[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for _, e := range packs {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered pack.
func Info(id string) (PackInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := packs[id]
	return e.info, ok
}

// Load loads the levels of a pack by its ID.
// Returns an error if the pack is not registered or fails to load.
func Load(id string) (*levels.Registry, error) {
	mu.RLock()
	e, ok := packs[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}
	reg, err := e.factory()
	if err != nil {
		return nil, fmt.Errorf("registry: loading pack %q: %w", id, err)
	}
	return reg, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
