package entity

import (
	"fmt"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

func NewObstacle(w *ecs.World, spec prefabs.ObstacleSpec, x, y float64, color string) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), &component.Obstacle{Color: color}); err != nil {
		return 0, fmt.Errorf("obstacle: add obstacle: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("obstacle: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Width,
		Height: spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("obstacle: add collider: %w", err)
	}

	return e, nil
}
