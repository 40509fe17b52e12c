package entity

import (
	"fmt"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

// NewSession creates the singleton carrying the race state and field size.
// The race starts Idle.
func NewSession(w *ecs.World, field prefabs.FieldSpec, speed prefabs.SpeedSpec) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{
		Speed: speed.Initial,
		Phase: component.PhaseIdle,
	}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}

	if err := ecs.Add(w, e, component.FieldComponent.Kind(), &component.Field{
		Width:  field.Width,
		Height: field.Height,
		Margin: field.Margin,
	}); err != nil {
		return 0, fmt.Errorf("session: add field: %w", err)
	}

	return e, nil
}
