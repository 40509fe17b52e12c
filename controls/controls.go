// Package controls describes the steering input the race reads each tick.
package controls

import "sync"

// Binding is a logical key. Each direction has two synonyms.
type Binding int

const (
	MoveLeftPrimary Binding = iota
	MoveLeftSecondary
	MoveRightPrimary
	MoveRightSecondary
)

func (b Binding) String() string {
	switch b {
	case MoveLeftPrimary:
		return "move_left_primary"
	case MoveLeftSecondary:
		return "move_left_secondary"
	case MoveRightPrimary:
		return "move_right_primary"
	case MoveRightSecondary:
		return "move_right_secondary"
	default:
		return "unknown"
	}
}

// Source reports which bindings are currently held.
type Source interface {
	IsPressed(b Binding) bool
}

// Left reports whether either left binding is held.
func Left(src Source) bool {
	if src == nil {
		return false
	}
	return src.IsPressed(MoveLeftPrimary) || src.IsPressed(MoveLeftSecondary)
}

// Right reports whether either right binding is held.
func Right(src Source) bool {
	if src == nil {
		return false
	}
	return src.IsPressed(MoveRightPrimary) || src.IsPressed(MoveRightSecondary)
}

// KeySet is a pressed-key set fed by key-down/key-up events.
type KeySet struct {
	mu      sync.RWMutex
	pressed map[Binding]bool
}

func NewKeySet() *KeySet {
	return &KeySet{pressed: make(map[Binding]bool)}
}

func (k *KeySet) Press(b Binding) {
	k.mu.Lock()
	k.pressed[b] = true
	k.mu.Unlock()
}

func (k *KeySet) Release(b Binding) {
	k.mu.Lock()
	delete(k.pressed, b)
	k.mu.Unlock()
}

// Reset releases every binding.
func (k *KeySet) Reset() {
	k.mu.Lock()
	clear(k.pressed)
	k.mu.Unlock()
}

func (k *KeySet) IsPressed(b Binding) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.pressed[b]
}
