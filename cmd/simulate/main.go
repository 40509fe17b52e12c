// Command simulate runs headless races with an autopilot and reports how far
// each one got. It is handy for checking a tuning file before playing it.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/roadrush/frame"
	"github.com/milk9111/roadrush/logging"
	"github.com/milk9111/roadrush/prefabs"
	"github.com/milk9111/roadrush/race"
)

type result struct {
	Score int
	Ticks int
	Speed float64
}

func main() {
	races := flag.Int("races", 10, "number of races to run")
	seed := flag.Uint64("seed", 1, "seed of the first race; race i uses seed+i")
	maxTicks := flag.Int("max-ticks", 20000, "stop a race that survives this long")
	lookahead := flag.Float64("lookahead", 200, "autopilot lookahead in field units")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	cfg := logging.DefaultConfig()
	cfg.Level = *level
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		logger.Fatal("load tuning", zap.Error(err))
	}

	var total, best int
	for i := 0; i < *races; i++ {
		res, err := simulate(tuning, *seed+uint64(i), *maxTicks, *lookahead, logger.Named("race"))
		if err != nil {
			logger.Fatal("simulate", zap.Int("race", i), zap.Error(err))
		}
		total += res.Score
		best = max(best, res.Score)
		logger.Info("race finished",
			zap.Int("race", i),
			zap.Int("score", res.Score),
			zap.Int("ticks", res.Ticks),
			zap.Float64("speed", res.Speed),
		)
	}

	if *races > 0 {
		logger.Info("summary",
			zap.String("tuning", tuning.Name),
			zap.Int("races", *races),
			zap.Float64("mean_score", float64(total)/float64(*races)),
			zap.Int("best_score", best),
		)
	}
}

// simulate runs one race to game over or maxTicks.
func simulate(tuning prefabs.Tuning, seed uint64, maxTicks int, lookahead float64, logger *zap.Logger) (result, error) {
	loop := frame.NewLoop()
	pilot := newAutopilot(lookahead)
	r, err := race.New(race.Options{
		Tuning:   tuning,
		Frames:   loop,
		Controls: pilot,
		Rand:     rand.New(rand.NewPCG(seed, seed^0x5bd1e995)),
		Logger:   logger,
	})
	if err != nil {
		return result{}, err
	}
	if err := r.Start(); err != nil {
		return result{}, err
	}

	for i := 0; i < maxTicks && r.Running(); i++ {
		pilot.Plan(r.Snapshot())
		loop.Run()
	}

	snap := r.Snapshot()
	return result{Score: snap.Score, Ticks: snap.Ticks, Speed: snap.Speed}, nil
}
