package component

// Collider is the axis-aligned box an entity occupies, anchored at its
// Transform.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()
