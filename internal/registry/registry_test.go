package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

func testLevels() (*levels.Registry, error) {
	return levels.NewRegistry("test-pack", []levels.Level{{
		ID:        "only",
		Start:     core.Vec2{X: 0, Y: 0},
		GoalX:     100,
		Platforms: []core.Rect{core.NewRect(0, 100, 200, 20)},
	}})
}

func TestRegisterAndLoad(t *testing.T) {
	Register(PackInfo{ID: "test-pack", Title: "Test Pack"}, testLevels)

	if !Exists("test-pack") {
		t.Fatal("Exists() = false after Register")
	}
	info, ok := Info("test-pack")
	if !ok || info.Title != "Test Pack" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	reg, err := Load("test-pack")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", reg.Len())
	}

	found := false
	for _, p := range List() {
		if p.ID == "test-pack" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include registered pack")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(PackInfo{ID: "dup-pack"}, testLevels)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(PackInfo{ID: "dup-pack"}, testLevels)
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("missing-pack"); err == nil {
		t.Error("Load() of unknown pack should fail")
	}

	boom := errors.New("boom")
	Register(PackInfo{ID: "broken-pack"}, func() (*levels.Registry, error) { return nil, boom })
	if _, err := Load("broken-pack"); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, expected wrapped boom", err)
	}
}
