package component

// Obstacle marks a descending car. Color is a palette name and only matters
// to the presentation.
type Obstacle struct {
	Color string
}

var ObstacleComponent = NewComponent[Obstacle]()
