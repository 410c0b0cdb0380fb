package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/constants"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/status"
	"github.com/lixenwraith/pong/terminal"
	"github.com/lixenwraith/pong/window"
	"github.com/pkg/errors"
)

var (
	configFlag     = flag.String("config", "", "Config file (default ~/.config/pong/config.toml)")
	variantFlag    = flag.String("variant", "", "Court variant: atari, classic")
	frontendFlag   = flag.String("frontend", "", "Frontend: terminal, window")
	backgroundFlag = flag.String("background", "", "Background image for the atari court (JPEG or PNG)")
	colorModeFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
	muteFlag       = flag.Bool("mute", false, "Start without sound")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/pong.log")
	saveFlag       = flag.String("save-config", "", "Write the resolved settings to this path and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig layers file, environment and flags
func resolveConfig() (*config.Config, string, error) {
	cfg, source, err := config.Load(*configFlag)
	if err != nil {
		return nil, "", err
	}
	cfg.ApplyEnv()

	if *variantFlag != "" {
		cfg.Variant = *variantFlag
	}
	if *frontendFlag != "" {
		cfg.Frontend = *frontendFlag
	}
	if *backgroundFlag != "" {
		cfg.Background = *backgroundFlag
	}
	if *colorModeFlag != "" {
		cfg.Color = *colorModeFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", errors.Wrap(err, "invalid config")
	}
	return cfg, source, nil
}

func run() error {
	cfg, source, err := resolveConfig()
	if err != nil {
		return err
	}

	if *saveFlag != "" {
		if err := cfg.Save(*saveFlag); err != nil {
			return err
		}
		fmt.Printf("Config written to %s\n", *saveFlag)
		return nil
	}

	logDir = cfg.Log.Dir
	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %s, variant %s, frontend %s", source, cfg.Variant, cfg.Frontend)

	variant, err := cfg.VariantSpec()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize audio; failure leaves the game silent
	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	// The atari court waits for its background; without it the game never starts
	var background image.Image
	var startErr error
	if variant.NeedsBackground {
		background, startErr = render.LoadImage(cfg.Background)
		if startErr != nil {
			log.Printf("background: %v", startErr)
		} else {
			log.Printf("background: loaded %s", cfg.Background)
		}
	}

	world := engine.NewWorld(variant)
	reg := status.NewRegistry()
	log.Printf("court: %.0fx%.0f ball %s paddles %s/%s",
		world.Width, world.Height, world.Ball.Color.Hex(), world.User.Color.Hex(), world.AI.Color.Hex())

	switch cfg.Frontend {
	case config.FrontendWindow:
		err = runWindow(ctx, cfg, world, reg, sound, background, startErr)
	default:
		err = runTerminal(ctx, cfg, world, reg, sound, background, startErr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	// Terminal is restored at this point
	log.Printf("exit: %s", reg.Summary())
	if startErr != nil {
		fmt.Printf("Game did not start: %v\n", startErr)
		return nil
	}
	printSummary(world, reg, sound)
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config, world *engine.World, reg *status.Registry,
	sound *audio.SoundManager, background image.Image, startErr error) error {
	mode, err := terminal.ParseColorMode(cfg.Color)
	if err != nil {
		return err
	}

	screen, err := terminal.Open(mode)
	if err != nil {
		return errors.Wrap(err, "terminal")
	}
	defer terminal.Close(screen)

	front := terminal.NewFrontend(screen, background, reg, world.Width, world.Height)
	front.SetMuter(sound)

	if startErr != nil {
		return front.Idle(ctx, fmt.Sprintf("background unavailable: %v  (q quits)", startErr))
	}

	driver := engine.NewDriver(world, engine.DriverConfig{
		Sound:  sound,
		Render: front.Render,
		Status: reg,
	})
	return front.Run(ctx, driver)
}

func runWindow(ctx context.Context, cfg *config.Config, world *engine.World, reg *status.Registry,
	sound *audio.SoundManager, background image.Image, startErr error) error {
	driver := engine.NewDriver(world, engine.DriverConfig{
		Sound:  sound,
		Status: reg,
	})

	var game *window.Game
	if startErr != nil {
		game = window.NewIdleGame(ctx, driver, fmt.Sprintf("background unavailable: %v", startErr))
	} else {
		game = window.NewGame(ctx, driver, background)
	}
	game.SetMuter(sound)

	if err := window.Run(game); err != nil {
		return errors.Wrap(err, "window")
	}
	return nil
}

func printSummary(world *engine.World, reg *status.Registry, sound *audio.SoundManager) {
	ints := reg.Ints
	fmt.Printf("Final score: user %d - ai %d\n", world.User.Score, world.AI.Score)
	fmt.Printf("Frames: %d (%.1fs)  Wall bounces: %d  Paddle hits: %d  Longest rally: %d  Peak speed: %.1f\n",
		ints.Get(status.KeyFrames).Load(),
		float64(ints.Get(status.KeyFrames).Load())/constants.FramesPerSecond,
		ints.Get(status.KeyWallBounces).Load(),
		ints.Get(status.KeyPaddleHits).Load(),
		ints.Get(status.KeyRallyMax).Load(),
		reg.Floats.Get(status.KeySpeedPeak).Get(),
	)
	fmt.Printf("Bounce tones played: %d\n", sound.Played())
}
