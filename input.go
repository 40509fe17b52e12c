package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/roadrush/controls"
)

var keyBindings = map[controls.Binding]ebiten.Key{
	controls.MoveLeftPrimary:    ebiten.KeyArrowLeft,
	controls.MoveLeftSecondary:  ebiten.KeyA,
	controls.MoveRightPrimary:   ebiten.KeyArrowRight,
	controls.MoveRightSecondary: ebiten.KeyD,
}

// Keyboard turns ebiten key transitions into press/release events on a
// KeySet, which the race reads as its input source.
type Keyboard struct {
	keys *controls.KeySet
}

func NewKeyboard() *Keyboard {
	return &Keyboard{keys: controls.NewKeySet()}
}

func (k *Keyboard) Source() controls.Source {
	return k.keys
}

func (k *Keyboard) Update() {
	for binding, key := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			k.keys.Press(binding)
		}
		if inpututil.IsKeyJustReleased(key) {
			k.keys.Release(binding)
		}
	}
}

// StartPressed reports the keyboard shortcut for the Start button.
func (k *Keyboard) StartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
