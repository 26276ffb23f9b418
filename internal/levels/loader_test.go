package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

const yamlLevel = `
id: b-second
name: Second
start: {x: 10, y: 20}
goal_x: 500
platforms:
  - {x: 0, y: 400, w: 600, h: 40}
enemies:
  - {x: 100, y: 350, left: 50, right: 150, dir: -1, stompable: true}
bonuses:
  - {x: 200, y: 370}
powerups:
  - {x: 300, y: 370, kind: HighJump}
`

const tomlLevel = `
id = "a-first"
goal_x = 300

[start]
x = 0
y = 0

[[platforms]]
x = 0
y = 100
w = 400
h = 20

[[powerups]]
x = 50
y = 80
kind = "high-jump"
`

const tmxLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="20" tileheight="20" infinite="0" nextlayerid="4" nextobjectid="6">
 <objectgroup id="1" name="platforms">
  <object id="1" x="0" y="180" width="200" height="20"/>
 </objectgroup>
 <objectgroup id="2" name="enemies">
  <object id="2" x="60" y="140">
   <properties>
    <property name="left" type="float" value="40"/>
    <property name="right" type="float" value="120"/>
    <property name="dir" type="int" value="-1"/>
    <property name="stompable" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="powerups">
  <object id="3" x="100" y="160">
   <properties>
    <property name="kind" value="invincibility"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="start">
  <object id="4" name="Tiny" x="10" y="50"/>
 </objectgroup>
 <objectgroup id="5" name="goal">
  <object id="5" x="190" y="0"/>
 </objectgroup>
</map>
`

func TestLoadAllSortsByIDAcrossFormats(t *testing.T) {
	fsys := fstest.MapFS{
		"pack/second.yaml": {Data: []byte(yamlLevel)},
		"pack/first.toml":  {Data: []byte(tomlLevel)},
		"pack/c-third.tmx": {Data: []byte(tmxLevel)},
		"pack/README.md":   {Data: []byte("not a level")},
	}

	lvls, err := NewLoader(fsys, "pack").LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 3)

	assert.Equal(t, "a-first", lvls[0].ID)
	assert.Equal(t, "b-second", lvls[1].ID)
	assert.Equal(t, "c-third", lvls[2].ID)

	second := lvls[1]
	assert.Equal(t, "Second", second.Title())
	assert.Equal(t, core.Vec2{X: 10, Y: 20}, second.Start)
	assert.Equal(t, 500.0, second.GoalX)
	require.Len(t, second.Enemies, 1)
	assert.Equal(t, EnemySpawn{Pos: core.Vec2{X: 100, Y: 350}, Left: 50, Right: 150, Dir: -1, Stompable: true}, second.Enemies[0])
	require.Len(t, second.PowerUps, 1)
	assert.Equal(t, PowerUpHighJump, second.PowerUps[0].Kind)
	assert.Equal(t, "pack/second.yaml", second.FilePath)

	assert.Equal(t, PowerUpHighJump, lvls[0].PowerUps[0].Kind)

	third := lvls[2]
	assert.Equal(t, "Tiny", third.Name)
	assert.Equal(t, core.Vec2{X: 10, Y: 50}, third.Start)
	assert.Equal(t, 190.0, third.GoalX)
	assert.Equal(t, []core.Rect{core.NewRect(0, 180, 200, 20)}, third.Platforms)
	require.Len(t, third.Enemies, 1)
	assert.Equal(t, -1.0, third.Enemies[0].Dir)
	assert.True(t, third.Enemies[0].Stompable)
	assert.Equal(t, 40.0, third.Enemies[0].Left)
	assert.Equal(t, PowerUpInvincibility, third.PowerUps[0].Kind)
}

func TestLoadAllRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"unknown powerup", "x.yaml", "id: x\ngoal_x: 10\nplatforms: [{x: 0, y: 0, w: 1, h: 1}]\npowerups: [{x: 0, y: 0, kind: flight}]\n"},
		{"unknown toml key", "x.toml", "id = \"x\"\ngoal_x = 10\ngaol = 3\n[[platforms]]\nx = 0\ny = 0\nw = 1\nh = 1\n"},
		{"no platforms", "x.yaml", "id: x\ngoal_x: 10\n"},
		{"malformed yaml", "x.yaml", "id: [x"},
		{"tmx without start", "x.tmx", `<?xml version="1.0"?><map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="1" tileheight="1"><objectgroup id="1" name="goal"><object id="1" x="5" y="0"/></objectgroup></map>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{tc.file: {Data: []byte(tc.data)}}
			_, err := NewLoader(fsys, ".").LoadAll()
			assert.Error(t, err)
		})
	}
}

func TestLoadAllDuplicateAndEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte(yamlLevel)},
		"b.yaml": {Data: []byte(yamlLevel)},
	}
	_, err := NewLoader(fsys, ".").LoadAll()
	assert.ErrorContains(t, err, "duplicate id")

	_, err = NewLoader(fstest.MapFS{"notes.txt": {Data: []byte("x")}}, ".").LoadAll()
	assert.True(t, errors.Is(err, ErrNoLevels))
}

func TestCheckAllReportsEveryFile(t *testing.T) {
	fsys := fstest.MapFS{
		"good.yaml": {Data: []byte(yamlLevel)},
		"bad.yaml":  {Data: []byte("id: bad\ngoal_x: 10\n")},
	}

	results, err := NewLoader(fsys, ".").CheckAll()
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "bad.yaml", results[0].Path)
	assert.Error(t, results[0].Err)
	var verr ValidationError
	assert.True(t, errors.As(results[0].Err, &verr))
	assert.Equal(t, CodeNoPlatforms, verr.Code)

	assert.Equal(t, "good.yaml", results[1].Path)
	assert.NoError(t, results[1].Err)
}

func TestLoadByIDAndListIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"second.yaml": {Data: []byte(yamlLevel)},
		"first.toml":  {Data: []byte(tomlLevel)},
	}
	l := NewLoader(fsys, "")

	ids, err := l.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a-first", "b-second"}, ids)

	lvl, err := l.LoadByID("b-second")
	require.NoError(t, err)
	assert.Equal(t, "Second", lvl.Name)

	_, err = l.LoadByID("nope")
	assert.Error(t, err)
}

func TestIDFallsBackToFileStem(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/plain.yaml": {Data: []byte("goal_x: 10\nplatforms: [{x: 0, y: 5, w: 20, h: 5}]\n")},
	}
	lvl, err := NewLoader(fsys, "levels").LoadFile("levels/plain.yaml")
	require.NoError(t, err)
	assert.Equal(t, "plain", lvl.ID)
	assert.Equal(t, "plain", lvl.Title())
}
