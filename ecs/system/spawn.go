package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/entity"
	"github.com/milk9111/roadrush/prefabs"
)

// SpawnInterval is the number of ticks between obstacles at the given speed.
func SpawnInterval(speed float64, spec prefabs.SpawnSpec) float64 {
	return math.Max(spec.MinInterval, spec.BaseInterval-speed*spec.PerSpeed)
}

// SpawnSystem counts ticks and drops a new obstacle at a random lateral
// position once the interval for the current speed has passed.
type SpawnSystem struct {
	rng      *rand.Rand
	spawn    prefabs.SpawnSpec
	obstacle prefabs.ObstacleSpec
}

func NewSpawnSystem(rng *rand.Rand, spawn prefabs.SpawnSpec, obstacle prefabs.ObstacleSpec) *SpawnSystem {
	return &SpawnSystem{rng: rng, spawn: spawn, obstacle: obstacle}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	session, field, ok := sessionState(w)
	if !ok {
		return
	}

	session.SpawnTimer++
	if float64(session.SpawnTimer) <= SpawnInterval(session.Speed, s.spawn) {
		return
	}

	minX, maxX := field.LaneBounds(s.obstacle.Width)
	x := minX + s.rng.Float64()*(maxX-minX)
	color := ""
	if n := len(s.obstacle.Palette); n > 0 {
		color = s.obstacle.Palette[s.rng.IntN(n)]
	}

	if _, err := SpawnObstacle(w, s.obstacle, x, s.obstacle.StartY, color); err != nil {
		return
	}
	session.SpawnTimer = 0
}

// SpawnObstacle creates an obstacle and announces it on the world event queue.
func SpawnObstacle(w *ecs.World, spec prefabs.ObstacleSpec, x, y float64, color string) (ecs.Entity, error) {
	e, err := entity.NewObstacle(w, spec, x, y, color)
	if err != nil {
		return 0, err
	}
	w.Events().Push(ecs.Event{
		Type: EventObstacleSpawned,
		Data: ObstacleSpawned{Entity: e, X: x, Y: y, Color: color},
	})
	return e, nil
}
