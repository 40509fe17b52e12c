package component

type Player struct {
	// MoveSpeed is the lateral displacement per tick while a direction is held.
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
