package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TuningFile is the prefab holding every race constant.
const TuningFile = "race.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Tuning struct {
	Name     string       `yaml:"name"`
	Field    FieldSpec    `yaml:"field"`
	Player   PlayerSpec   `yaml:"player"`
	Obstacle ObstacleSpec `yaml:"obstacle"`
	Speed    SpeedSpec    `yaml:"speed"`
	Spawn    SpawnSpec    `yaml:"spawn"`
}

type FieldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

type PlayerSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MoveSpeed    float64 `yaml:"move_speed"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

type ObstacleSpec struct {
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	StartY  float64  `yaml:"start_y"`
	Palette []string `yaml:"palette"`
}

type SpeedSpec struct {
	Initial   float64 `yaml:"initial"`
	Max       float64 `yaml:"max"`
	Step      float64 `yaml:"step"`
	StepEvery int     `yaml:"step_every"`
}

type SpawnSpec struct {
	BaseInterval float64 `yaml:"base_interval"`
	PerSpeed     float64 `yaml:"per_speed"`
	MinInterval  float64 `yaml:"min_interval"`
}

// LoadTuning reads and validates race.yaml.
func LoadTuning() (Tuning, error) {
	t, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// MustLoadTuning is LoadTuning for the embedded defaults, which are known good.
func MustLoadTuning() Tuning {
	t, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return t
}

// Validate rejects degenerate geometry and speed settings.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	check(t.Field.Height > 0, "field.height must be positive, got %v", t.Field.Height)
	check(t.Field.Margin >= 0, "field.margin must not be negative, got %v", t.Field.Margin)
	check(t.Player.Width > 0 && t.Player.Height > 0, "player size must be positive, got %vx%v", t.Player.Width, t.Player.Height)
	check(t.Obstacle.Width > 0 && t.Obstacle.Height > 0, "obstacle size must be positive, got %vx%v", t.Obstacle.Width, t.Obstacle.Height)
	check(t.Field.Width > t.Player.Width+2*t.Field.Margin, "field.width %v leaves no room for the player", t.Field.Width)
	check(t.Field.Width > t.Obstacle.Width+2*t.Field.Margin, "field.width %v leaves no room for obstacles", t.Field.Width)
	check(t.Player.MoveSpeed >= 0, "player.move_speed must not be negative, got %v", t.Player.MoveSpeed)
	check(len(t.Obstacle.Palette) > 0, "obstacle.palette must not be empty")
	check(t.Speed.Initial > 0, "speed.initial must be positive, got %v", t.Speed.Initial)
	check(t.Speed.Max >= t.Speed.Initial, "speed.max %v is below speed.initial %v", t.Speed.Max, t.Speed.Initial)
	check(t.Speed.Step >= 0, "speed.step must not be negative, got %v", t.Speed.Step)
	check(t.Speed.StepEvery > 0, "speed.step_every must be positive, got %v", t.Speed.StepEvery)
	check(t.Spawn.MinInterval >= 0, "spawn.min_interval must not be negative, got %v", t.Spawn.MinInterval)

	return errors.Join(errs...)
}
