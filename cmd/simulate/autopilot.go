package main

import (
	"github.com/milk9111/roadrush/common"
	"github.com/milk9111/roadrush/controls"
	"github.com/milk9111/roadrush/race"
)

// autopilot steers away from the closest obstacle in the player's column.
// Plan must be called before every frame; IsPressed replays the plan.
type autopilot struct {
	lookahead float64
	clearance float64
	left      bool
	right     bool
}

func newAutopilot(lookahead float64) *autopilot {
	return &autopilot{lookahead: lookahead, clearance: 8}
}

func (a *autopilot) IsPressed(b controls.Binding) bool {
	switch b {
	case controls.MoveLeftPrimary:
		return a.left
	case controls.MoveRightPrimary:
		return a.right
	default:
		return false
	}
}

func (a *autopilot) Plan(snap race.Snapshot) {
	a.left, a.right = false, false
	p := snap.Player
	column := common.Rect{X: p.X - a.clearance, Y: p.Y - a.lookahead, Width: p.Width + 2*a.clearance, Height: a.lookahead + p.Height}

	var threat *common.Rect
	for i := range snap.Obstacles {
		b := snap.Obstacles[i].Bounds
		if !column.Intersects(b) {
			continue
		}
		if threat == nil || b.Bottom() > threat.Bottom() {
			threat = &b
		}
	}
	if threat == nil {
		return
	}

	minX, maxX := snap.Field.LaneBounds(p.Width)
	roomLeft := threat.Left() - minX
	roomRight := maxX + p.Width - threat.Right()
	if roomLeft > roomRight {
		a.left = true
	} else {
		a.right = true
	}
}
