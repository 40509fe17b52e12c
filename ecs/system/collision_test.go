package system

import (
	"testing"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollisionSystem(t *testing.T) {
	// Player sits at x=180, y=510, 40x70.
	cases := []struct {
		name     string
		x, y     float64
		geometry Geometry
		hit      bool
	}{
		{"edge_to_edge_right", 220, 510, nil, false},
		{"edge_to_edge_left", 140, 510, nil, false},
		{"edge_to_edge_above", 180, 440, nil, false},
		{"one_unit_overlap", 219, 441, nil, true},
		{"exact_overlap", 180, 510, nil, true},
		{"far_away", 10, -100, nil, false},
		{"layout_edge_to_edge", 220, 510, LayoutGeometry{Scale: 1.5, OffsetX: 12, OffsetY: -4}, false},
		{"layout_overlap", 219, 441, LayoutGeometry{Scale: 1.5, OffsetX: 12, OffsetY: -4}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			require.Equal(t, component.Transform{X: 180, Y: 510}, *f.playerTransform())
			obstacle := f.obstacle(t, c.x, c.y)

			NewCollisionSystem(c.geometry).Update(f.world)

			events := eventsOfType(f.world.Events().Drain(), EventCollision)
			if !c.hit {
				assert.Equal(t, component.PhaseRunning, f.state().Phase)
				assert.Empty(t, events)
				return
			}
			assert.Equal(t, component.PhaseGameOver, f.state().Phase)
			require.Len(t, events, 1)
			assert.Equal(t, Collision{Player: f.player, Obstacle: obstacle}, events[0].Data)
		})
	}
}

func TestCollisionSystemStopsAtFirstHit(t *testing.T) {
	f := newFixture(t)
	f.obstacle(t, 180, 510)
	f.obstacle(t, 181, 511)

	NewCollisionSystem(TransformGeometry{}).Update(f.world)
	assert.Len(t, eventsOfType(f.world.Events().Drain(), EventCollision), 1)
}

func TestCollisionSystemIgnoresIdleSession(t *testing.T) {
	f := newFixture(t)
	f.state().Phase = component.PhaseIdle
	f.obstacle(t, 180, 510)

	NewCollisionSystem(nil).Update(f.world)
	assert.Equal(t, component.PhaseIdle, f.state().Phase)
	assert.Zero(t, f.world.Events().Len())
}

func TestLayoutGeometryDefaultsToUnitScale(t *testing.T) {
	f := newFixture(t)
	r, ok := LayoutGeometry{OffsetX: 5}.Bounds(f.world, f.player)
	require.True(t, ok)
	assert.Equal(t, 185.0, r.X)
	assert.Equal(t, 40.0, r.Width)

	_, ok = LayoutGeometry{}.Bounds(f.world, ecs.Entity(0))
	assert.False(t, ok)
}
