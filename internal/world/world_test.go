package world

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/gridcaster/internal/geom"
)

func TestWallMapContains(t *testing.T) {
	m := NewWallMap([]Cell{{X: 1, Y: 2}, {X: -3, Y: 0}, {X: 1, Y: 2}})

	if !m.Contains(Cell{X: 1, Y: 2}) {
		t.Error("Expected (1,2) to be a wall")
	}
	if !m.Contains(Cell{X: -3, Y: 0}) {
		t.Error("Expected (-3,0) to be a wall")
	}
	if m.Contains(Cell{X: 0, Y: 0}) {
		t.Error("Expected (0,0) to be open")
	}

	// Duplicates collapse: a set, not a sequence.
	if m.Len() != 2 {
		t.Errorf("Expected 2 cells, got %d", m.Len())
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		pos  geom.Vec2
		want Cell
	}{
		{geom.Vec2{X: 0.5, Y: 0.5}, Cell{X: 0, Y: 0}},
		{geom.Vec2{X: -0.5, Y: 1.9}, Cell{X: -1, Y: 1}},
		{geom.Vec2{X: 2, Y: -3}, Cell{X: 2, Y: -3}},
	}

	for _, c := range cases {
		if got := CellAt(c.pos); got != c.want {
			t.Errorf("CellAt(%v): expected %v, got %v", c.pos, c.want, got)
		}
	}
}

func TestLoadWorld(t *testing.T) {
	jsonData := `{
		"name": "test_world",
		"player_spawn": { "x": 0.5, "y": 0.5, "facing": 1.5 },
		"walls": [[2, 0], [0, 2], [-1, -1]]
	}`

	path := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(path, []byte(jsonData), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("Failed to load world: %v", err)
	}

	if w.Data.Name != "test_world" {
		t.Errorf("Expected name 'test_world', got '%s'", w.Data.Name)
	}
	if w.Data.PlayerSpawn.X != 0.5 || w.Data.PlayerSpawn.Y != 0.5 {
		t.Errorf("Expected spawn (0.5, 0.5), got (%g, %g)",
			w.Data.PlayerSpawn.X, w.Data.PlayerSpawn.Y)
	}
	if w.Data.PlayerSpawn.Facing != 1.5 {
		t.Errorf("Expected facing 1.5, got %g", w.Data.PlayerSpawn.Facing)
	}
	if w.Walls.Len() != 3 {
		t.Errorf("Expected 3 wall cells, got %d", w.Walls.Len())
	}
	if !w.Walls.Contains(Cell{X: -1, Y: -1}) {
		t.Error("Expected (-1,-1) to be a wall")
	}
}

func TestLoadWorldMissingFileReturnsDefault(t *testing.T) {
	w, err := LoadWorld(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Missing file should fall back to the sample world: %v", err)
	}
	if w.Data.Name != "loop" {
		t.Errorf("Expected sample world 'loop', got '%s'", w.Data.Name)
	}
}

func TestLoadWorldRejectsEmptyWalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(path, []byte(`{"name": "empty", "walls": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWorld(path); err == nil {
		t.Error("Expected an error for a world with no walls")
	}
}

func TestLoadWorldRejectsSpawnInsideWall(t *testing.T) {
	jsonData := `{
		"name": "bad",
		"player_spawn": { "x": 1.5, "y": 0.5 },
		"walls": [[1, 0]]
	}`

	path := filepath.Join(t.TempDir(), "world.json")
	if err := os.WriteFile(path, []byte(jsonData), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWorld(path); err == nil {
		t.Error("Expected an error for a spawn inside a wall cell")
	}
}

func TestDefaultWorldEnclosesSpawn(t *testing.T) {
	w := DefaultWorld()

	if w.Walls.Len() != 24 {
		t.Errorf("Expected 24 wall cells, got %d", w.Walls.Len())
	}

	spawn := geom.Vec2{X: w.Data.PlayerSpawn.X, Y: w.Data.PlayerSpawn.Y}
	if w.Walls.Contains(CellAt(spawn)) {
		t.Error("Spawn cell must be open")
	}
}
