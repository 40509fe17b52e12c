package system

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// CollisionSystem ends the race when the player overlaps any obstacle.
type CollisionSystem struct {
	geometry Geometry
}

func NewCollisionSystem(geometry Geometry) *CollisionSystem {
	if geometry == nil {
		geometry = TransformGeometry{}
	}
	return &CollisionSystem{geometry: geometry}
}

func (c *CollisionSystem) Update(w *ecs.World) {
	session, _, ok := sessionState(w)
	if !ok || session.Phase != component.PhaseRunning {
		return
	}

	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	playerBox, ok := c.geometry.Bounds(w, player)
	if !ok {
		return
	}

	for _, e := range w.Query(component.ObstacleComponent.Kind()) {
		box, ok := c.geometry.Bounds(w, e)
		if !ok || !playerBox.Intersects(box) {
			continue
		}
		session.Phase = component.PhaseGameOver
		w.Events().Push(ecs.Event{Type: EventCollision, Data: Collision{Player: player, Obstacle: e}})
		return
	}
}
