package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsRequestsOnNextFrame(t *testing.T) {
	l := NewLoop()
	var calls []string

	l.Request(func() { calls = append(calls, "a") })
	l.Request(func() { calls = append(calls, "b") })
	assert.Empty(t, calls, "requests must not run before the frame")
	assert.Equal(t, 2, l.Pending())

	assert.Equal(t, 2, l.Run())
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Zero(t, l.Pending())
	assert.Zero(t, l.Run())
	assert.Equal(t, uint64(2), l.Frames())
}

func TestLoopDefersRequestsMadeDuringRun(t *testing.T) {
	l := NewLoop()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		l.Request(tick)
	}
	l.Request(tick)

	for i := 0; i < 10; i++ {
		require.Equal(t, 1, l.Run(), "a self-rescheduling callback runs once per frame")
	}
	assert.Equal(t, 10, ticks)
}

func TestLoopCancel(t *testing.T) {
	l := NewLoop()
	ran := false
	h := l.Request(func() { ran = true })
	l.Cancel(h)
	l.Cancel(h)
	l.Cancel(0)

	assert.Zero(t, l.Run())
	assert.False(t, ran)
	assert.Zero(t, l.Request(nil))
}

func TestLoopCancelDuringRun(t *testing.T) {
	l := NewLoop()
	var second Handle
	secondRan := false

	l.Request(func() { l.Cancel(second) })
	second = l.Request(func() { secondRan = true })

	assert.Equal(t, 1, l.Run())
	assert.False(t, secondRan)
}
