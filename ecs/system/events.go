package system

import "github.com/milk9111/roadrush/ecs"

const (
	EventObstacleSpawned = "obstacle_spawned"
	EventObstacleRemoved = "obstacle_removed"
	EventCollision       = "collision"
	EventSpeedIncreased  = "speed_increased"
)

type ObstacleSpawned struct {
	Entity ecs.Entity
	X, Y   float64
	Color  string
}

type ObstacleRemoved struct {
	Entity ecs.Entity
}

type Collision struct {
	Player   ecs.Entity
	Obstacle ecs.Entity
}

type SpeedIncreased struct {
	Score int
	Speed float64
}
