package levels

import "errors"

// ErrNoLevels is returned when a registry would be empty.
var ErrNoLevels = errors.New("levels: no levels")

// Registry is an ordered, read-only sequence of levels.
type Registry struct {
	id     string
	levels []Level
}

// NewRegistry creates a registry over the given levels in play order.
func NewRegistry(id string, lvls []Level) (*Registry, error) {
	if len(lvls) == 0 {
		return nil, ErrNoLevels
	}
	cp := make([]Level, len(lvls))
	copy(cp, lvls)
	return &Registry{id: id, levels: cp}, nil
}

// ID returns the identifier of the level pack.
func (r *Registry) ID() string {
	return r.id
}

// Len returns the number of levels.
func (r *Registry) Len() int {
	return len(r.levels)
}

// Has reports whether i is a valid level index.
func (r *Registry) Has(i int) bool {
	return i >= 0 && i < len(r.levels)
}

// At returns the level at index i. ok is false past either end.
func (r *Registry) At(i int) (lvl Level, ok bool) {
	if !r.Has(i) {
		return Level{}, false
	}
	return r.levels[i], true
}

// First returns the first level.
func (r *Registry) First() Level {
	return r.levels[0]
}

// Levels returns a copy of all levels in order.
func (r *Registry) Levels() []Level {
	cp := make([]Level, len(r.levels))
	copy(cp, r.levels)
	return cp
}
