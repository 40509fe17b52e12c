package system

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// ObstacleMotionSystem moves obstacles down by the current speed and destroys
// the ones that left the bottom of the field in the same tick.
type ObstacleMotionSystem struct{}

func NewObstacleMotionSystem() *ObstacleMotionSystem {
	return &ObstacleMotionSystem{}
}

func (o *ObstacleMotionSystem) Update(w *ecs.World) {
	session, field, ok := sessionState(w)
	if !ok {
		return
	}

	// Query hands back a snapshot, so destroying inside the loop is safe.
	for _, e := range w.Query(component.ObstacleComponent.Kind(), component.TransformComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		t.Y += session.Speed
		if t.Y <= field.Height {
			continue
		}
		w.DestroyEntity(e)
		w.Events().Push(ecs.Event{Type: EventObstacleRemoved, Data: ObstacleRemoved{Entity: e}})
	}
}
