package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/levels/formats"
)

// Loader reads level files from a file system. Root is a directory inside
// FS; use "." for the whole tree.
type Loader struct {
	FS   fs.FS
	Root string
}

// NewLoader creates a loader over fsys rooted at root.
func NewLoader(fsys fs.FS, root string) *Loader {
	if root == "" {
		root = "."
	}
	return &Loader{FS: fsys, Root: root}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir), ".")
}

// FileResult is the outcome of loading one level file.
type FileResult struct {
	Path  string
	Level Level
	Err   error
}

// CheckAll loads and validates every level file under Root. Unlike LoadAll
// it never stops at the first bad file; results are sorted by path.
func (l *Loader) CheckAll() ([]FileResult, error) {
	var results []FileResult

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.IsLevelFile(p) {
			return nil
		}
		lvl, err := l.LoadFile(p)
		results = append(results, FileResult{Path: p, Level: lvl, Err: err})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// LoadAll loads every level file under Root. Levels are sorted by ID for
// deterministic play order. Any invalid file fails the whole load.
func (l *Loader) LoadAll() ([]Level, error) {
	results, err := l.CheckAll()
	if err != nil {
		return nil, err
	}

	var (
		lvls []Level
		errs []error
		seen = make(map[string]string)
	)
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		if prev, dup := seen[r.Level.ID]; dup {
			errs = append(errs, fmt.Errorf("levels: duplicate id %q in %s and %s", r.Level.ID, prev, r.Path))
			continue
		}
		seen[r.Level.ID] = r.Path
		lvls = append(lvls, r.Level)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, l.Root)
	}

	sort.Slice(lvls, func(i, j int) bool {
		return lvls[i].ID < lvls[j].ID
	})
	return lvls, nil
}

// LoadRegistry loads all levels and wraps them in a registry named id.
func (l *Loader) LoadRegistry(id string) (*Registry, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return NewRegistry(id, lvls)
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	parsed, err := l.parse(p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}
	if parsed.ID == "" {
		base := path.Base(p)
		parsed.ID = strings.TrimSuffix(base, path.Ext(base))
	}

	lvl, err := fromParsed(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", p, err)
	}
	lvl.FilePath = p

	if err := Validate(lvl); err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", p, err)
	}
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range lvls {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in play order.
func (l *Loader) ListIDs() ([]string, error) {
	lvls, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(lvls))
	for i, lvl := range lvls {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// parse routes to the parser for the file extension.
func (l *Loader) parse(p string) (formats.Level, error) {
	ext := strings.ToLower(path.Ext(p))
	if ext == ".tmx" {
		return formats.ParseTMX(l.FS, p)
	}

	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return formats.Level{}, err
	}
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".toml":
		return formats.ParseTOML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func fromParsed(p formats.Level) (Level, error) {
	lvl := Level{
		ID:        p.ID,
		Name:      p.Name,
		Start:     p.Start,
		GoalX:     p.GoalX,
		Platforms: p.Platforms,
		Enemies:   make([]EnemySpawn, 0, len(p.Enemies)),
		Bonuses:   make([]BonusSpawn, 0, len(p.Bonuses)),
		PowerUps:  make([]PowerUpSpawn, 0, len(p.PowerUps)),
	}
	for _, e := range p.Enemies {
		lvl.Enemies = append(lvl.Enemies, EnemySpawn{
			Pos:       e.Pos,
			Left:      e.Left,
			Right:     e.Right,
			Dir:       e.Dir,
			Stompable: e.Stompable,
			Hover:     e.Hover,
		})
	}
	for _, b := range p.Bonuses {
		lvl.Bonuses = append(lvl.Bonuses, BonusSpawn{Pos: b})
	}
	for _, pu := range p.PowerUps {
		kind, err := ParsePowerUpKind(pu.Kind)
		if err != nil {
			return Level{}, err
		}
		lvl.PowerUps = append(lvl.PowerUps, PowerUpSpawn{Pos: pu.Pos, Kind: kind})
	}
	return lvl, nil
}
