package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/prefabs"
	"github.com/milk9111/roadrush/race"
)

const (
	laneLineWidth  = 6
	laneLineLength = 40
	laneLineGap    = 30
)

var (
	roadColor   = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	lineColor   = colornames.White
	playerColor = colornames.Dodgerblue
	hudColor    = colornames.White
)

func newFontFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load goregular: %w", err)
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

// RoadView draws the race and receives its presentation callbacks.
type RoadView struct {
	width, height    float64
	playerW, playerH float64
	obstacleColors   map[ecs.Entity]color.Color

	score      int
	finalScore int
	over       bool

	decorPaused bool
	decorOffset float64
	decorSpeed  float64

	face       text.Face
	onGameOver func(finalScore int)
}

var _ race.Presentation = (*RoadView)(nil)

func NewRoadView(tuning prefabs.Tuning, face text.Face) *RoadView {
	v := &RoadView{
		obstacleColors: make(map[ecs.Entity]color.Color),
		decorPaused:    true,
		face:           face,
	}
	v.ApplyTuning(tuning)
	return v
}

// ApplyTuning resizes the view. It takes effect on the next Start, which is
// when the race asks for the sizes.
func (v *RoadView) ApplyTuning(tuning prefabs.Tuning) {
	v.width, v.height = tuning.Field.Width, tuning.Field.Height
	v.playerW, v.playerH = tuning.Player.Width, tuning.Player.Height
	v.decorSpeed = tuning.Speed.Initial
}

func (v *RoadView) FieldSize() (float64, float64)  { return v.width, v.height }
func (v *RoadView) PlayerSize() (float64, float64) { return v.playerW, v.playerH }

func (v *RoadView) ObstacleCreated(o race.Obstacle) {
	c, ok := colornames.Map[o.Color]
	if !ok {
		c = colornames.Red
	}
	v.obstacleColors[o.Entity] = c
}

func (v *RoadView) ObstacleRemoved(e ecs.Entity) {
	delete(v.obstacleColors, e)
}

func (v *RoadView) ScoreChanged(score int) {
	v.score = score
	// A fresh session reports 0 before its first tick.
	if score == 0 {
		v.over = false
	}
}

func (v *RoadView) GameOver(finalScore int) {
	v.over = true
	v.finalScore = finalScore
	if v.onGameOver != nil {
		v.onGameOver(finalScore)
	}
}

func (v *RoadView) SetDecorPaused(paused bool) {
	v.decorPaused = paused
}

// Update scrolls the lane markings with the race speed.
func (v *RoadView) Update(speed float64) {
	if v.decorPaused {
		return
	}
	if speed > 0 {
		v.decorSpeed = speed
	}
	v.decorOffset = math.Mod(v.decorOffset+v.decorSpeed, laneLineLength+laneLineGap)
}

func (v *RoadView) Draw(screen *ebiten.Image, snap race.Snapshot) {
	// The race keeps its field until the next Start, even if tuning changed.
	w, h := snap.Field.Width, snap.Field.Height
	vector.FillRect(screen, 0, 0, float32(w), float32(h), roadColor, false)
	v.drawLaneLines(screen, w, h)

	for _, o := range snap.Obstacles {
		c, ok := v.obstacleColors[o.Entity]
		if !ok {
			c = colornames.Red
		}
		drawCar(screen, o.Bounds.X, o.Bounds.Y, o.Bounds.Width, o.Bounds.Height, c)
	}
	p := snap.Player
	if p.Width > 0 {
		drawCar(screen, p.X, p.Y, p.Width, p.Height, playerColor)
	}

	if !v.over {
		v.drawText(screen, fmt.Sprintf("Score: %d", v.score), 10, 10)
	}
}

func (v *RoadView) drawLaneLines(screen *ebiten.Image, width, height float64) {
	x := float32(width/2 - laneLineWidth/2)
	for y := v.decorOffset - laneLineLength; y < height; y += laneLineLength + laneLineGap {
		vector.FillRect(screen, x, float32(y), laneLineWidth, laneLineLength, lineColor, false)
	}
}

// drawCar draws a body with a windshield and four wheels.
func drawCar(screen *ebiten.Image, x, y, w, h float64, body color.Color) {
	wheelW, wheelH := float32(w*0.15), float32(h*0.2)
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	for _, wy := range []float32{fy + fh*0.1, fy + fh*0.7} {
		vector.FillRect(screen, fx-wheelW/2, wy, wheelW, wheelH, colornames.Black, false)
		vector.FillRect(screen, fx+fw-wheelW/2, wy, wheelW, wheelH, colornames.Black, false)
	}
	vector.FillRect(screen, fx, fy, fw, fh, body, false)
	vector.FillRect(screen, fx+fw*0.15, fy+fh*0.2, fw*0.7, fh*0.2, colornames.Lightskyblue, false)
}

func (v *RoadView) drawText(screen *ebiten.Image, s string, x, y float64) {
	if v.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, s, v.face, op)
}
