package system

import (
	"math"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
)

// ScoreSystem awards a point for every tick survived and steps the speed up
// every StepEvery points until Max.
type ScoreSystem struct {
	speed prefabs.SpeedSpec
}

func NewScoreSystem(speed prefabs.SpeedSpec) *ScoreSystem {
	return &ScoreSystem{speed: speed}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	session, _, ok := sessionState(w)
	if !ok || session.Phase != component.PhaseRunning {
		return
	}

	session.Score++
	if s.speed.StepEvery <= 0 || session.Score%s.speed.StepEvery != 0 || session.Speed >= s.speed.Max {
		return
	}
	session.Speed = math.Min(session.Speed+s.speed.Step, s.speed.Max)
	w.Events().Push(ecs.Event{
		Type: EventSpeedIncreased,
		Data: SpeedIncreased{Score: session.Score, Speed: session.Speed},
	})
}
