package system

import (
	"github.com/milk9111/roadrush/common"
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
)

// Geometry reports the box an entity occupies in the space collisions are
// tested in.
type Geometry interface {
	Bounds(w *ecs.World, e ecs.Entity) (common.Rect, bool)
}

// TransformGeometry reads boxes straight from Transform and Collider.
type TransformGeometry struct{}

func (TransformGeometry) Bounds(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return common.Rect{X: t.X, Y: t.Y, Width: c.Width, Height: c.Height}, true
}

// LayoutGeometry maps stored boxes through the renderer's layout transform
// (uniform scale, then offset), so overlap is judged on what is drawn.
type LayoutGeometry struct {
	Scale            float64
	OffsetX, OffsetY float64
}

func (l LayoutGeometry) Bounds(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	r, ok := TransformGeometry{}.Bounds(w, e)
	if !ok {
		return common.Rect{}, false
	}
	scale := l.Scale
	if scale <= 0 {
		scale = 1
	}
	return r.Scale(scale).Translate(l.OffsetX, l.OffsetY), true
}
