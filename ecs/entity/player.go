package entity

import (
	"fmt"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Width,
		Height: spec.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	return e, nil
}

// PlacePlayer centers the player horizontally and parks it bottomMargin
// above the bottom of the field.
func PlacePlayer(w *ecs.World, player ecs.Entity, field component.Field, bottomMargin float64) error {
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("player: place: %w", component.ErrEntityNotAlive)
	}
	c, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return fmt.Errorf("player: place: missing collider")
	}
	t.X = field.Width/2 - c.Width/2
	t.Y = field.Height - c.Height - bottomMargin
	if in, ok := ecs.Get(w, player, component.InputComponent.Kind()); ok {
		*in = component.Input{}
	}
	return nil
}
