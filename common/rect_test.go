package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	player := Rect{X: 100, Y: 500, Width: 40, Height: 70}

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", player, true},
		{"touching_right_edge", Rect{X: 140, Y: 500, Width: 40, Height: 70}, false},
		{"touching_left_edge", Rect{X: 60, Y: 500, Width: 40, Height: 70}, false},
		{"touching_top_edge", Rect{X: 100, Y: 430, Width: 40, Height: 70}, false},
		{"touching_bottom_edge", Rect{X: 100, Y: 570, Width: 40, Height: 70}, false},
		{"one_unit_overlap_corner", Rect{X: 139, Y: 569, Width: 40, Height: 70}, true},
		{"far_apart", Rect{X: 300, Y: 0, Width: 40, Height: 70}, false},
		{"fractional_overlap", Rect{X: 139.5, Y: 431, Width: 40, Height: 70}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, player.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(player), "intersection must be symmetric")
		})
	}
}

func TestRectTransforms(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 4, Height: 8}

	assert.Equal(t, Rect{X: 15, Y: 17, Width: 4, Height: 8}, r.Translate(5, -3))
	assert.Equal(t, Rect{X: 20, Y: 40, Width: 8, Height: 16}, r.Scale(2))
	assert.Equal(t, 14.0, r.Right())
	assert.Equal(t, 28.0, r.Bottom())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 10.0, Clamp(3, 10, 20))
	assert.Equal(t, 20.0, Clamp(25, 10, 20))
	assert.Equal(t, 12.5, Clamp(12.5, 10, 20))
	assert.Equal(t, 10.0, Clamp(12, 10, 5))
	assert.Equal(t, 7.5, Lerp(5, 10, 0.5))
}
