package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/color-guess/app"
	"github.com/lixenwraith/color-guess/audio"
	"github.com/lixenwraith/color-guess/config"
	"github.com/lixenwraith/color-guess/core"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "color-guess: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.Level())
	if logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(cfg.ColorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)

	// Panic recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	opts := app.Options{
		Rand:   rand.New(rand.NewSource(seed(cfg.Seed))),
		Delay:  cfg.RevealDelay,
		Logger: logger,
	}

	if cfg.Sound {
		sound := audio.NewSoundManager(cfg.Audio())
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sound.Cleanup()
			opts.Sound = sound
		}
	}

	a := app.New(screen, opts)
	defer a.Close()

	logger.Info().
		Dur("delay", cfg.RevealDelay).
		Bool("sound", opts.Sound != nil).
		Int64("seed", cfg.Seed).
		Msg("session started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.Run(ctx)
	logger.Info().Int("score", a.Session().Score()).Msg("session ended")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyColorMode steers tcell's truecolor detection through its environment switches
func applyColorMode(mode string) {
	switch mode {
	case config.ColorModeTrueColor:
		os.Setenv("COLORTERM", "truecolor")
		os.Unsetenv("TCELL_TRUECOLOR")
	case config.ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}

// seed returns s, or a time-based seed when s is zero
func seed(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}
