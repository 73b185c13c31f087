package world

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/gridcaster/internal/geom"
)

// SpawnPoint defines where the player starts and which way they face
type SpawnPoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Facing float64 `json:"facing"` // radians
}

// WorldData represents the loaded world configuration
type WorldData struct {
	Name        string     `json:"name"`
	PlayerSpawn SpawnPoint `json:"player_spawn"`
	Walls       [][2]int   `json:"walls"` // list of [cx, cy] occupied cells
}

// World represents a loaded world: the wall map plus spawn information
type World struct {
	Data  *WorldData
	Walls *WallMap
}

// LoadWorld loads a world from a JSON file. A missing file falls back to
// the built-in sample world.
func LoadWorld(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultWorld(), nil
		}
		return nil, fmt.Errorf("failed to read world file %s: %w", path, err)
	}

	var worldData WorldData
	if err := json.Unmarshal(data, &worldData); err != nil {
		return nil, fmt.Errorf("failed to parse world file %s: %w", path, err)
	}

	if err := validateWorldData(&worldData); err != nil {
		return nil, fmt.Errorf("invalid world data in %s: %w", path, err)
	}

	return buildWorld(&worldData), nil
}

// validateWorldData checks if the world data is valid
func validateWorldData(data *WorldData) error {
	if len(data.Walls) == 0 {
		return fmt.Errorf("world has no wall cells")
	}

	spawn := geom.Vec2{X: data.PlayerSpawn.X, Y: data.PlayerSpawn.Y}
	spawnCell := CellAt(spawn)
	for _, w := range data.Walls {
		if (Cell{X: w[0], Y: w[1]}) == spawnCell {
			return fmt.Errorf("player spawn (%g, %g) is inside wall cell (%d, %d)",
				spawn.X, spawn.Y, w[0], w[1])
		}
	}

	return nil
}

func buildWorld(data *WorldData) *World {
	cells := make([]Cell, len(data.Walls))
	for i, w := range data.Walls {
		cells[i] = Cell{X: w[0], Y: w[1]}
	}
	return &World{
		Data:  data,
		Walls: NewWallMap(cells),
	}
}

// DefaultWorld returns the built-in sample world: a 1-cell-thick loop of
// walls enclosing the origin, with the player spawning at the origin
// facing along +x.
func DefaultWorld() *World {
	return buildWorld(&WorldData{
		Name:        "loop",
		PlayerSpawn: SpawnPoint{X: 0, Y: 0, Facing: 0},
		Walls: [][2]int{
			{-3, -3}, {-2, -3}, {-1, -3}, {-1, -4}, {0, -4}, {1, -4},
			{2, -4}, {2, -3}, {2, -2}, {3, -2}, {3, -1}, {3, 0},
			{3, 1}, {3, 2}, {2, 2}, {1, 2}, {0, 2}, {-1, 2},
			{-2, 2}, {-3, 2}, {-3, 1}, {-3, 0}, {-3, -1}, {-3, -2},
		},
	})
}
