package component

// Input stores per-tick steering intent for an entity.
type Input struct {
	Left  bool
	Right bool
}

var InputComponent = NewComponent[Input]()
