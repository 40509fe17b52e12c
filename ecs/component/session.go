package component

// Phase is the coarse state of a race.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the per-race game state. It lives on a singleton entity.
type Session struct {
	Score      int
	Speed      float64
	Phase      Phase
	SpawnTimer int
	// Ticks counts simulated ticks, including the one that ended the race.
	Ticks int
}

var SessionComponent = NewComponent[Session]()
