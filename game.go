package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/milk9111/roadrush/ecs/system"
	"github.com/milk9111/roadrush/frame"
	"github.com/milk9111/roadrush/logging"
	"github.com/milk9111/roadrush/prefabs"
	"github.com/milk9111/roadrush/race"
)

type GameOptions struct {
	Seed   uint64
	Debug  bool
	Logger *zap.Logger
}

type Game struct {
	logger *zap.Logger
	debug  bool

	frames   *frame.Loop
	race     *race.Race
	view     *RoadView
	keyboard *Keyboard
	crash    *CrashSound
	face     text.Face

	menu    *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(opts GameOptions) (*Game, error) {
	logger := logging.OrNop(opts.Logger)

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}

	face, err := newFontFace(18)
	if err != nil {
		return nil, err
	}

	g := &Game{
		logger:   logger,
		debug:    opts.Debug,
		frames:   frame.NewLoop(),
		keyboard: NewKeyboard(),
		crash:    NewCrashSound(opts.Seed),
		face:     face,
	}
	g.view = NewRoadView(tuning, face)
	g.view.onGameOver = g.gameOver

	g.race, err = race.New(race.Options{
		Tuning:       tuning,
		Frames:       g.frames,
		Presentation: g.view,
		Controls:     g.keyboard.Source(),
		// The road is drawn 1:1 in field coordinates.
		Geometry: system.LayoutGeometry{Scale: 1},
		Rand:     rand.New(rand.NewPCG(opts.Seed, opts.Seed>>1|1)),
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g.watcher, err = prefabs.NewWatcher(prefabs.Dir)
	if err != nil {
		// Running from outside the repo: embedded tuning only.
		logger.Debug("tuning hot reload disabled", zap.String("dir", prefabs.Dir), zap.Error(err))
		g.watcher = nil
	}

	logger.Info("game ready", zap.String("tuning", tuning.Name), zap.Uint64("seed", opts.Seed))
	g.showMenu("roadrush", "Arrow keys or A/D to steer", "Start")
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) start() {
	if err := g.race.Start(); err != nil {
		g.logger.Error("cannot start race", zap.Error(err))
		return
	}
	g.menu = nil
}

func (g *Game) gameOver(finalScore int) {
	g.crash.Play()
	g.showMenu("Game Over!", fmt.Sprintf("Final Score: %d", finalScore), "Restart")
}

func (g *Game) showMenu(title, subtitle, label string) {
	w, h := g.LayoutF(0, 0)
	g.menu = NewMenuUI(g, g.face, title, subtitle, label, int(w), int(h))
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.keyboard.Update()

	if g.menu != nil {
		g.menu.Update()
		if g.menu != nil && g.keyboard.StartPressed() {
			g.start()
		}
	}

	g.frames.Run()
	g.view.Update(g.race.Snapshot().Speed)
	return nil
}

// reloadTuning drains the prefab watcher. New tuning is staged for the next
// start; a broken file keeps the current tuning.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) != prefabs.TuningFile {
				continue
			}
			tuning, err := prefabs.LoadTuning()
			if err != nil {
				g.logger.Warn("tuning reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			if err := g.race.SetTuning(tuning); err != nil {
				g.logger.Warn("tuning rejected", zap.Error(err))
				continue
			}
			g.view.ApplyTuning(tuning)
			g.logger.Info("tuning staged for next start", zap.String("tuning", tuning.Name))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.race.Snapshot()
	g.view.Draw(screen, snap)

	if g.menu != nil {
		g.menu.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  tick: %d  speed: %.1f  obstacles: %d  %s",
			ebiten.ActualFPS(), snap.Ticks, snap.Speed, len(snap.Obstacles), snap.Phase), 0, int(snap.Field.Height)-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	f := g.race.Field()
	return f.Width, f.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
