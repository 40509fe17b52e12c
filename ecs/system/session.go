package system

import (
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// sessionState returns the singleton session and field components.
func sessionState(w *ecs.World) (*component.Session, *component.Field, bool) {
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	s, ok := ecs.Get(w, e, component.SessionComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	f, ok := ecs.Get(w, e, component.FieldComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return s, f, true
}
