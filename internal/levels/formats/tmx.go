package formats

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Object group names recognised in Tiled maps.
const (
	groupPlatforms = "platforms"
	groupEnemies   = "enemies"
	groupBonuses   = "bonuses"
	groupPowerUps  = "powerups"
	groupStart     = "start"
	groupGoal      = "goal"
)

// ParseTMX loads a Tiled map from fsys and reads the level from its object
// groups. Tile layers are ignored; platforms are rectangle objects.
// The level ID is the file stem and the name comes from the start object's
// name, falling back to the ID.
func ParseTMX(fsys fs.FS, path string) (Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", path, err)
	}

	lvl := Level{ID: idFromPath(path)}
	var haveStart, haveGoal bool

	for _, og := range levelMap.ObjectGroups {
		switch strings.ToLower(og.Name) {
		case groupPlatforms:
			for _, o := range og.Objects {
				lvl.Platforms = append(lvl.Platforms, core.NewRect(o.X, o.Y, o.Width, o.Height))
			}
		case groupEnemies:
			for _, o := range og.Objects {
				lvl.Enemies = append(lvl.Enemies, Enemy{
					Pos:       core.Vec2{X: o.X, Y: o.Y},
					Left:      o.Properties.GetFloat("left"),
					Right:     o.Properties.GetFloat("right"),
					Dir:       normalizeDir(float64(o.Properties.GetInt("dir"))),
					Stompable: o.Properties.GetBool("stompable"),
					Hover:     o.Properties.GetBool("hover"),
				})
			}
		case groupBonuses:
			for _, o := range og.Objects {
				lvl.Bonuses = append(lvl.Bonuses, core.Vec2{X: o.X, Y: o.Y})
			}
		case groupPowerUps:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Class
				}
				if kind == "" {
					kind = o.Type //nolint:staticcheck // older maps use type=
				}
				lvl.PowerUps = append(lvl.PowerUps, PowerUp{Pos: core.Vec2{X: o.X, Y: o.Y}, Kind: kind})
			}
		case groupStart:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				lvl.Start = core.Vec2{X: o.X, Y: o.Y}
				lvl.Name = o.Name
				haveStart = true
			}
		case groupGoal:
			if len(og.Objects) > 0 {
				lvl.GoalX = og.Objects[0].X
				haveGoal = true
			}
		}
	}

	if !haveStart {
		return Level{}, fmt.Errorf("load TMX %s: missing %q object group", path, groupStart)
	}
	if !haveGoal {
		return Level{}, fmt.Errorf("load TMX %s: missing %q object group", path, groupGoal)
	}
	return lvl, nil
}
