package system

import (
	"testing"

	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSystemRampsSpeed(t *testing.T) {
	f := newFixture(t)
	score := NewScoreSystem(f.tuning.Speed)

	for i := 0; i < 99; i++ {
		score.Update(f.world)
	}
	assert.Equal(t, 99, f.state().Score)
	assert.Equal(t, 5.0, f.state().Speed)
	assert.Zero(t, f.world.Events().Len())

	score.Update(f.world)
	assert.Equal(t, 100, f.state().Score)
	assert.Equal(t, 5.5, f.state().Speed)

	events := eventsOfType(f.world.Events().Drain(), EventSpeedIncreased)
	require.Len(t, events, 1)
	assert.Equal(t, SpeedIncreased{Score: 100, Speed: 5.5}, events[0].Data)
}

func TestScoreSystemCapsSpeed(t *testing.T) {
	f := newFixture(t)
	score := NewScoreSystem(f.tuning.Speed)

	prev := f.state().Speed
	for i := 0; i < 5000; i++ {
		score.Update(f.world)
		speed := f.state().Speed
		require.GreaterOrEqual(t, speed, prev, "speed must never decrease")
		require.LessOrEqual(t, speed, 15.0)
		prev = speed
	}
	assert.Equal(t, 15.0, f.state().Speed)
	assert.Equal(t, 5000, f.state().Score)
}

func TestScoreSystemClampsOddStep(t *testing.T) {
	f := newFixture(t)
	score := NewScoreSystem(prefabs.SpeedSpec{Initial: 5, Max: 5.2, Step: 0.5, StepEvery: 10})

	for i := 0; i < 30; i++ {
		score.Update(f.world)
	}
	assert.Equal(t, 5.2, f.state().Speed)
}

func TestScoreSystemSkipsFinishedRace(t *testing.T) {
	f := newFixture(t)
	f.state().Phase = component.PhaseGameOver

	NewScoreSystem(f.tuning.Speed).Update(f.world)
	assert.Zero(t, f.state().Score)
}
