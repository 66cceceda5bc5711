package main

import (
	"flag"
	"os"

	"github.com/Garsondee/Tank-Skirmish/internal/config"
	"github.com/Garsondee/Tank-Skirmish/internal/game"
	"github.com/Garsondee/Tank-Skirmish/internal/sfx"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var envFile string
	var seed int64
	var scale int
	var mute bool

	flag.StringVar(&envFile, "env", ".env", "optional dotenv file with TANKS_* settings")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = use config or time)")
	flag.IntVar(&scale, "scale", 0, "window scale (0 = use config)")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tanks",
	})

	cfg, err := config.Load(envFile)
	if err != nil {
		logger.Fatal("bad configuration", "err", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if scale != 0 {
		cfg.WindowScale = scale
	}
	cfg.Muted = cfg.Muted || mute
	if err := cfg.Validate(); err != nil {
		logger.Fatal("bad configuration", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	opts := game.AppOptions{
		Seed:      cfg.Seed,
		Logger:    logger,
		Clipboard: clipboard.WriteAll,
	}
	if !cfg.Muted {
		opts.Sounds = sfx.NewPlayer(cfg.SFXVolume)
	}
	if clipboard.Unsupported {
		opts.Clipboard = nil
		logger.Warn("clipboard unavailable; copy key disabled")
	}

	ebiten.SetWindowTitle("Tank Skirmish")
	ebiten.SetWindowSize(game.ScreenWidth*cfg.WindowScale, (game.ScreenHeight+game.HUDBarHeight)*cfg.WindowScale)
	if err := ebiten.RunGame(game.NewApp(opts)); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
