package race

import (
	"github.com/milk9111/roadrush/common"
	"github.com/milk9111/roadrush/ecs"
)

// Obstacle is what the presentation needs to draw one obstacle car.
type Obstacle struct {
	Entity ecs.Entity
	Bounds common.Rect
	Color  string
}

// Presentation is everything the race asks of whoever draws it.
//
// FieldSize and PlayerSize are read on every Start. The remaining hooks are
// called from inside the frame callback, after the tick that caused them.
type Presentation interface {
	FieldSize() (width, height float64)
	PlayerSize() (width, height float64)
	ObstacleCreated(o Obstacle)
	ObstacleRemoved(e ecs.Entity)
	ScoreChanged(score int)
	GameOver(finalScore int)
	SetDecorPaused(paused bool)
}

// headless reports the tuned sizes and ignores every hook.
type headless struct {
	r *Race
}

func (h headless) FieldSize() (float64, float64) {
	return h.r.tuning.Field.Width, h.r.tuning.Field.Height
}

func (h headless) PlayerSize() (float64, float64) {
	return h.r.tuning.Player.Width, h.r.tuning.Player.Height
}

func (headless) ObstacleCreated(Obstacle)   {}
func (headless) ObstacleRemoved(ecs.Entity) {}
func (headless) ScoreChanged(int)           {}
func (headless) GameOver(int)               {}
func (headless) SetDecorPaused(bool)        {}
