package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/milk9111/roadrush/logging"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	seed := flag.Uint64("seed", 0, "random seed (0 reads ROADRUSH_SEED, then falls back to the clock)")
	scale := flag.Float64("scale", 1, "window scale factor")
	flag.Parse()

	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := logging.DefaultConfig()
	if *debug {
		cfg = logging.DevelopmentConfig()
	}
	if level := os.Getenv("ROADRUSH_LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	game, err := NewGame(GameOptions{
		Seed:   resolveSeed(*seed, os.Getenv("ROADRUSH_SEED"), logger),
		Debug:  *debug,
		Logger: logger,
	})
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}
	defer game.Close()

	w, h := game.LayoutF(0, 0)
	if *scale <= 0 {
		*scale = 1
	}
	ebiten.SetWindowSize(int(w**scale), int(h**scale))
	ebiten.SetWindowTitle("roadrush")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func resolveSeed(flagSeed uint64, env string, logger *zap.Logger) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if env != "" {
		s, err := strconv.ParseUint(env, 10, 64)
		if err == nil {
			return s
		}
		logger.Warn("ignoring ROADRUSH_SEED", zap.String("value", env), zap.Error(err))
	}
	return uint64(time.Now().UnixNano())
}
