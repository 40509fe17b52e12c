package ecs

import (
	"testing"

	"github.com/milk9111/roadrush/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPos struct{ X, Y float64 }
type testTag struct{ Name string }

var (
	testPosComponent = component.NewComponent[testPos]()
	testTagComponent = component.NewComponent[testTag]()
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := w.CreateEntity()
				require.True(t, e.Valid())
				ents = append(ents, e)
			}
			require.Len(t, w.Entities(), c.create)

			if c.destroyIndex >= 0 {
				require.True(t, w.DestroyEntity(ents[c.destroyIndex]))
				assert.False(t, w.IsAlive(ents[c.destroyIndex]))
				assert.False(t, w.DestroyEntity(ents[c.destroyIndex]), "second destroy must report false")
				assert.Len(t, w.Entities(), c.create-1)
			}
		})
	}
}

func TestWorldRecyclesIDsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	require.True(t, w.DestroyEntity(a))

	b := w.CreateEntity()
	assert.Equal(t, a.id(), b.id())
	assert.NotEqual(t, a, b)
	assert.False(t, w.IsAlive(a), "stale handle must stay dead")
	assert.True(t, w.IsAlive(b))

	_, ok := Get(w, a, testPosComponent.Kind())
	assert.False(t, ok)
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	require.NoError(t, Add(w, e1, testPosComponent.Kind(), &testPos{X: 1, Y: 2}))
	require.NoError(t, Add(w, e1, testTagComponent.Kind(), &testTag{Name: "one"}))
	require.NoError(t, Add(w, e2, testPosComponent.Kind(), &testPos{X: 3}))

	pos, ok := Get(w, e1, testPosComponent.Kind())
	require.True(t, ok)
	pos.X = 10

	again, _ := Get(w, e1, testPosComponent.Kind())
	assert.Equal(t, 10.0, again.X, "Get must return the stored pointer")

	assert.True(t, Has(w, e1, testTagComponent.Kind()))
	assert.False(t, Has(w, e2, testTagComponent.Kind()))
	assert.ElementsMatch(t, []Entity{e1}, w.Query(testPosComponent.Kind(), testTagComponent.Kind()))
	assert.ElementsMatch(t, []Entity{e1, e2}, w.Query(testPosComponent.Kind()))

	assert.True(t, Remove(w, e1, testTagComponent.Kind()))
	assert.False(t, Remove(w, e1, testTagComponent.Kind()))
	assert.Empty(t, w.Query(testPosComponent.Kind(), testTagComponent.Kind()))

	require.True(t, w.DestroyEntity(e2))
	assert.Equal(t, 1, Count(w, testPosComponent.Kind()), "destroy must drop every component")
}

func TestWorldAddErrors(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	assert.ErrorIs(t, Add(w, e, testPosComponent.Kind(), nil), component.ErrNilComponent)
	assert.ErrorIs(t, Add(w, e, component.ComponentKind[testPos]{}, &testPos{}), component.ErrInvalidComponentKind)

	w.DestroyEntity(e)
	assert.ErrorIs(t, Add(w, e, testPosComponent.Kind(), &testPos{}), component.ErrEntityNotAlive)
}

func TestForEachSurvivesDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	const n = 6
	for i := 0; i < n; i++ {
		e := w.CreateEntity()
		require.NoError(t, Add(w, e, testPosComponent.Kind(), &testPos{Y: float64(i)}))
	}

	visited := 0
	ForEach(w, testPosComponent.Kind(), func(e Entity, p *testPos) {
		visited++
		if int(p.Y)%2 == 0 {
			w.DestroyEntity(e)
		}
	})

	assert.Equal(t, n, visited, "every entity must be visited exactly once")
	assert.Equal(t, n/2, Count(w, testPosComponent.Kind()))
	ForEach(w, testPosComponent.Kind(), func(_ Entity, p *testPos) {
		assert.Equal(t, 1, int(p.Y)%2)
	})
}

func TestFirstAndEvents(t *testing.T) {
	w := NewWorld()
	_, ok := First(w, testTagComponent.Kind())
	assert.False(t, ok)

	w.CreateEntity()
	e := w.CreateEntity()
	require.NoError(t, Add(w, e, testTagComponent.Kind(), &testTag{Name: "singleton"}))

	got, ok := First(w, testTagComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, e, got)

	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b"})
	assert.Equal(t, 2, w.Events().Len())
	events := w.Events().Drain()
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].Type)
	assert.Nil(t, w.Events().Drain())
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(*World) { *s.calls = append(*s.calls, s.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var calls []string
	s := NewScheduler(countingSystem{&calls, "a"}, nil, countingSystem{&calls, "b"})
	s.Add(countingSystem{&calls, "c"})

	s.Update(NewWorld())
	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.Len(t, s.Systems(), 3)
}
