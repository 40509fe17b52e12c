package system

import (
	"github.com/milk9111/roadrush/common"
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// PlayerControllerSystem steers the player sideways and keeps it on the road.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	_, field, ok := sessionState(w)
	if !ok {
		return
	}

	for _, e := range w.Query(component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind()) {
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())

		x := t.X
		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			// Left and right are applied one after the other, so holding both
			// cancels out.
			if input.Left {
				x -= player.MoveSpeed
			}
			if input.Right {
				x += player.MoveSpeed
			}
		}

		minX, maxX := field.LaneBounds(c.Width)
		t.X = common.Clamp(x, minX, maxX)
	}
}
