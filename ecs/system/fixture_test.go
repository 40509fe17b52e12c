package system

import (
	"testing"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/entity"
	"github.com/milk9111/roadrush/prefabs"
	"github.com/stretchr/testify/require"
)

func testTuning() prefabs.Tuning {
	return prefabs.Tuning{
		Name:     "test",
		Field:    prefabs.FieldSpec{Width: 400, Height: 600, Margin: 10},
		Player:   prefabs.PlayerSpec{Width: 40, Height: 70, MoveSpeed: 7, BottomMargin: 20},
		Obstacle: prefabs.ObstacleSpec{Width: 40, Height: 70, StartY: -100, Palette: []string{"red", "yellow", "purple", "orange", "cyan"}},
		Speed:    prefabs.SpeedSpec{Initial: 5, Max: 15, Step: 0.5, StepEvery: 100},
		Spawn:    prefabs.SpawnSpec{BaseInterval: 150, PerSpeed: 5, MinInterval: 50},
	}
}

type fixture struct {
	world   *ecs.World
	tuning  prefabs.Tuning
	session ecs.Entity
	player  ecs.Entity
}

// newFixture builds a running session with the player centered at the bottom.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	tuning := testTuning()
	w := ecs.NewWorld()

	session, err := entity.NewSession(w, tuning.Field, tuning.Speed)
	require.NoError(t, err)
	player, err := entity.NewPlayer(w, tuning.Player)
	require.NoError(t, err)

	f := &fixture{world: w, tuning: tuning, session: session, player: player}
	require.NoError(t, entity.PlacePlayer(w, player, *f.field(), tuning.Player.BottomMargin))
	f.state().Phase = component.PhaseRunning
	return f
}

func (f *fixture) state() *component.Session {
	s, _ := ecs.Get(f.world, f.session, component.SessionComponent.Kind())
	return s
}

func (f *fixture) field() *component.Field {
	fl, _ := ecs.Get(f.world, f.session, component.FieldComponent.Kind())
	return fl
}

func (f *fixture) playerTransform() *component.Transform {
	tr, _ := ecs.Get(f.world, f.player, component.TransformComponent.Kind())
	return tr
}

func (f *fixture) obstacle(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewObstacle(f.world, f.tuning.Obstacle, x, y, "red")
	require.NoError(t, err)
	return e
}

func eventsOfType(events []ecs.Event, kind string) []ecs.Event {
	var out []ecs.Event
	for _, e := range events {
		if e.Type == kind {
			out = append(out, e)
		}
	}
	return out
}
