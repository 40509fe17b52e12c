// Package race runs one lane-dodging session on top of the ECS world: it owns
// the state, schedules a tick per frame and reports to a Presentation.
package race

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/milk9111/roadrush/common"
	"github.com/milk9111/roadrush/controls"
	"github.com/milk9111/roadrush/ecs"
	"github.com/milk9111/roadrush/ecs/component"
	"github.com/milk9111/roadrush/ecs/entity"
	"github.com/milk9111/roadrush/ecs/system"
	"github.com/milk9111/roadrush/frame"
	"github.com/milk9111/roadrush/logging"
	"github.com/milk9111/roadrush/prefabs"
)

var (
	// ErrDegenerateField is returned by Start when the presentation reports a
	// field with no room for the player.
	ErrDegenerateField = errors.New("race: degenerate field")
	ErrNoScheduler     = errors.New("race: frame scheduler is required")
)

type Options struct {
	Tuning prefabs.Tuning
	Frames frame.Scheduler

	// Optional.
	Presentation Presentation
	Controls     controls.Source
	Geometry     system.Geometry
	Rand         *rand.Rand
	Logger       *zap.Logger
}

type Race struct {
	world         *ecs.World
	scheduler     *ecs.Scheduler
	sessionEntity ecs.Entity
	player        ecs.Entity

	tuning prefabs.Tuning
	staged *prefabs.Tuning

	frames       frame.Scheduler
	pending      frame.Handle
	tickFn       func()
	presentation Presentation
	controls     controls.Source
	geometry     system.Geometry
	rng          *rand.Rand
	logger       *zap.Logger
	sessionID    uuid.UUID
}

// New builds an idle race. Nothing is scheduled until Start.
func New(opts Options) (*Race, error) {
	if opts.Frames == nil {
		return nil, ErrNoScheduler
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("race: tuning: %w", err)
	}

	r := &Race{
		world:        ecs.NewWorld(),
		tuning:       opts.Tuning,
		frames:       opts.Frames,
		presentation: opts.Presentation,
		controls:     opts.Controls,
		geometry:     opts.Geometry,
		rng:          opts.Rand,
		logger:       logging.OrNop(opts.Logger),
	}
	if r.presentation == nil {
		r.presentation = headless{r: r}
	}
	if r.rng == nil {
		seed := uint64(time.Now().UnixNano())
		r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	r.tickFn = r.tick

	var err error
	if r.sessionEntity, err = entity.NewSession(r.world, r.tuning.Field, r.tuning.Speed); err != nil {
		return nil, fmt.Errorf("race: %w", err)
	}
	if r.player, err = entity.NewPlayer(r.world, r.tuning.Player); err != nil {
		return nil, fmt.Errorf("race: %w", err)
	}
	if err := entity.PlacePlayer(r.world, r.player, *r.field(), r.tuning.Player.BottomMargin); err != nil {
		return nil, fmt.Errorf("race: %w", err)
	}
	r.buildScheduler()

	return r, nil
}

func (r *Race) buildScheduler() {
	r.scheduler = ecs.NewScheduler(
		system.NewInputSystem(r.controls),
		system.NewPlayerControllerSystem(),
		system.NewObstacleMotionSystem(),
		system.NewSpawnSystem(r.rng, r.tuning.Spawn, r.tuning.Obstacle),
		system.NewCollisionSystem(r.geometry),
		system.NewScoreSystem(r.tuning.Speed),
	)
}

func (r *Race) session() *component.Session {
	s, _ := ecs.Get(r.world, r.sessionEntity, component.SessionComponent.Kind())
	return s
}

func (r *Race) field() *component.Field {
	f, _ := ecs.Get(r.world, r.sessionEntity, component.FieldComponent.Kind())
	return f
}

// Tuning returns the tuning in effect for the current session.
func (r *Race) Tuning() prefabs.Tuning {
	return r.tuning
}

// SetTuning stages t for the next Start. The running session is unaffected.
func (r *Race) SetTuning(t prefabs.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("race: tuning: %w", err)
	}
	r.staged = &t
	return nil
}

// Start begins a fresh session from any phase. Calling it mid-race is a full
// reset.
func (r *Race) Start() error {
	tuning := r.tuning
	if r.staged != nil {
		tuning = *r.staged
	}

	fieldW, fieldH := r.presentation.FieldSize()
	playerW, playerH := r.presentation.PlayerSize()
	if playerW <= 0 || playerH <= 0 || fieldH <= 0 || fieldW <= playerW+2*tuning.Field.Margin {
		return fmt.Errorf("%w: field %vx%v, player %vx%v, margin %v",
			ErrDegenerateField, fieldW, fieldH, playerW, playerH, tuning.Field.Margin)
	}

	r.frames.Cancel(r.pending)
	r.pending = 0
	r.world.Events().Drain()

	for _, e := range r.world.Query(component.ObstacleComponent.Kind()) {
		r.world.DestroyEntity(e)
		r.presentation.ObstacleRemoved(e)
	}

	if r.staged != nil {
		r.tuning = *r.staged
		r.staged = nil
		r.buildScheduler()
		if p, ok := ecs.Get(r.world, r.player, component.PlayerComponent.Kind()); ok {
			p.MoveSpeed = r.tuning.Player.MoveSpeed
		}
	}

	*r.field() = component.Field{Width: fieldW, Height: fieldH, Margin: r.tuning.Field.Margin}
	*r.session() = component.Session{Speed: r.tuning.Speed.Initial, Phase: component.PhaseRunning}

	if c, ok := ecs.Get(r.world, r.player, component.ColliderComponent.Kind()); ok {
		*c = component.Collider{Width: playerW, Height: playerH}
	}
	if err := entity.PlacePlayer(r.world, r.player, *r.field(), r.tuning.Player.BottomMargin); err != nil {
		return fmt.Errorf("race: %w", err)
	}

	r.sessionID = uuid.New()
	r.logger.Info("race started",
		zap.Stringer("session", r.sessionID),
		zap.String("tuning", r.tuning.Name),
		zap.Float64("field_width", fieldW),
		zap.Float64("field_height", fieldH),
		zap.Float64("speed", r.tuning.Speed.Initial),
	)

	r.presentation.SetDecorPaused(false)
	r.presentation.ScoreChanged(0)
	r.pending = r.frames.Request(r.tickFn)
	return nil
}

// tick advances the race by one step. It only reschedules itself while the
// race is running.
func (r *Race) tick() {
	r.pending = 0
	session := r.session()
	if session.Phase != component.PhaseRunning {
		return
	}

	session.Ticks++
	r.scheduler.Update(r.world)
	r.dispatch(r.world.Events().Drain())

	if session.Phase == component.PhaseGameOver {
		r.logger.Info("race over",
			zap.Stringer("session", r.sessionID),
			zap.Int("score", session.Score),
			zap.Int("ticks", session.Ticks),
			zap.Float64("speed", session.Speed),
		)
		r.presentation.GameOver(session.Score)
		r.presentation.SetDecorPaused(true)
		return
	}

	r.presentation.ScoreChanged(session.Score)
	r.pending = r.frames.Request(r.tickFn)
}

func (r *Race) dispatch(events []ecs.Event) {
	for _, ev := range events {
		switch data := ev.Data.(type) {
		case system.ObstacleSpawned:
			r.presentation.ObstacleCreated(Obstacle{
				Entity: data.Entity,
				Bounds: r.obstacleBounds(data),
				Color:  data.Color,
			})
		case system.ObstacleRemoved:
			r.presentation.ObstacleRemoved(data.Entity)
		case system.SpeedIncreased:
			r.logger.Debug("speed increased",
				zap.Stringer("session", r.sessionID),
				zap.Int("score", data.Score),
				zap.Float64("speed", data.Speed),
			)
		case system.Collision:
			r.logger.Info("collision",
				zap.Stringer("session", r.sessionID),
				zap.Stringer("obstacle", data.Obstacle),
			)
		default:
			r.logger.Warn("unhandled event", zap.String("type", ev.Type))
		}
	}
}

func (r *Race) obstacleBounds(o system.ObstacleSpawned) (b common.Rect) {
	b.X, b.Y = o.X, o.Y
	if c, ok := ecs.Get(r.world, o.Entity, component.ColliderComponent.Kind()); ok {
		b.Width, b.Height = c.Width, c.Height
	}
	return b
}

// SpawnObstacleAt places an obstacle directly, bypassing the spawn timer.
func (r *Race) SpawnObstacleAt(x, y float64, color string) (ecs.Entity, error) {
	e, err := system.SpawnObstacle(r.world, r.tuning.Obstacle, x, y, color)
	if err != nil {
		return 0, fmt.Errorf("race: spawn obstacle: %w", err)
	}
	r.dispatch(r.world.Events().Drain())
	return e, nil
}

// Field returns the playing area of the current session.
func (r *Race) Field() component.Field {
	return *r.field()
}

// Running reports whether a tick is scheduled or about to be.
func (r *Race) Running() bool {
	return r.session().Phase == component.PhaseRunning
}
