package race

import (
	"github.com/google/uuid"
	"github.com/milk9111/roadrush/common"
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/system"
)

// Snapshot is a copy of the race state. Mutating it does not affect the race.
type Snapshot struct {
	SessionID  uuid.UUID
	Phase      component.Phase
	Score      int
	Speed      float64
	SpawnTimer int
	Ticks      int

	Field     component.Field
	Player    common.Rect
	Obstacles []Obstacle
}

// Snapshot copies out everything a renderer or a test needs.
func (r *Race) Snapshot() Snapshot {
	snap := Snapshot{SessionID: r.sessionID}
	if s, ok := ecs.Get(r.world, r.sessionEntity, component.SessionComponent.Kind()); ok {
		snap.Phase = s.Phase
		snap.Score = s.Score
		snap.Speed = s.Speed
		snap.SpawnTimer = s.SpawnTimer
		snap.Ticks = s.Ticks
	}
	if f, ok := ecs.Get(r.world, r.sessionEntity, component.FieldComponent.Kind()); ok {
		snap.Field = *f
	}
	geometry := system.TransformGeometry{}
	snap.Player, _ = geometry.Bounds(r.world, r.player)

	for _, e := range r.world.Query(component.ObstacleComponent.Kind(), component.TransformComponent.Kind()) {
		b, ok := geometry.Bounds(r.world, e)
		if !ok {
			continue
		}
		o, _ := ecs.Get(r.world, e, component.ObstacleComponent.Kind())
		snap.Obstacles = append(snap.Obstacles, Obstacle{Entity: e, Bounds: b, Color: o.Color})
	}
	return snap
}
