package system

import (
	"github.com/milk9111/roadrush/controls"
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// InputSystem copies the held steering keys into every Input component.
type InputSystem struct {
	source controls.Source
}

func NewInputSystem(source controls.Source) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	left := controls.Left(i.source)
	right := controls.Right(i.source)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
	})
}
