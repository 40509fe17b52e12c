package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionSynonyms(t *testing.T) {
	cases := []struct {
		name        string
		held        []Binding
		left, right bool
	}{
		{"nothing", nil, false, false},
		{"left_primary", []Binding{MoveLeftPrimary}, true, false},
		{"left_secondary", []Binding{MoveLeftSecondary}, true, false},
		{"right_primary", []Binding{MoveRightPrimary}, false, true},
		{"right_secondary", []Binding{MoveRightSecondary}, false, true},
		{"both_directions", []Binding{MoveLeftSecondary, MoveRightPrimary}, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			keys := NewKeySet()
			for _, b := range c.held {
				keys.Press(b)
			}
			assert.Equal(t, c.left, Left(keys))
			assert.Equal(t, c.right, Right(keys))
		})
	}
}

func TestKeySetRelease(t *testing.T) {
	keys := NewKeySet()
	keys.Press(MoveLeftPrimary)
	keys.Press(MoveRightSecondary)

	keys.Release(MoveLeftPrimary)
	assert.False(t, keys.IsPressed(MoveLeftPrimary))
	assert.True(t, keys.IsPressed(MoveRightSecondary))

	keys.Reset()
	assert.False(t, Right(keys))
	assert.False(t, Left(nil))
	assert.Equal(t, "move_right_secondary", MoveRightSecondary.String())
}
