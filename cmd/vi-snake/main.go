package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/network"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	wallFlag     = flag.Bool("wall", false, "End the round when the snake leaves the arena")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 uses the clock")
	spectateFlag = flag.String("spectate", "", "Serve the websocket spectator feed on this address")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/vi-snake.log")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	keys, err := input.KeyTableFromConfig(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keys: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	kb := input.NewKeyboard(keys)
	g := game.New(cfg, game.NewRand(cfg.Seed), kb)

	player := audio.NewPlayer(cfg.Audio.Volume)
	player.SetMuted(*muteFlag)
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer player.Cleanup()
		}
	}
	g.RegisterHandler(player)

	var hub *network.Hub
	if cfg.Spectator.Enabled {
		hubCfg := network.DefaultConfig()
		hubCfg.MaxClients = cfg.Spectator.MaxClients
		hub = network.NewHub(hubCfg, g.Status())
		if _, err := hub.Start(cfg.Spectator.Addr); err != nil {
			log.Printf("spectator: %v (continuing without feed)", err)
			hub = nil
		} else {
			g.RegisterHandler(hub)
		}
	}

	scheduler := engine.NewClockScheduler(engine.NewMonotonicTimeProvider(), parameter.FrameInterval, g.Tick, g.Status())
	renderer := render.NewRenderer(screen, cfg.Food.Lifespan.Duration)
	scheduler.SetFrameHook(func() {
		snap := g.Snapshot()
		renderer.RenderFrame(snap, scheduler.IsPaused())
		if hub != nil {
			hub.Publish(snap)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core.Go(func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				// Screen finalized
				return
			case *tcell.EventKey:
				switch kb.HandleKey(ev.Key(), ev.Rune()) {
				case input.ActionQuit:
					cancel()
					return
				case input.ActionPause:
					log.Printf("paused=%t", scheduler.TogglePause())
				case input.ActionMute:
					log.Printf("muted=%t", player.ToggleMute())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})

	if err := scheduler.Run(ctx); err != nil && err != context.Canceled {
		log.Printf("scheduler: %v", err)
	}

	if hub != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
		if err := hub.Shutdown(shutdownCtx); err != nil {
			log.Printf("spectator shutdown: %v", err)
		}
		shutdownCancel()
	}
	log.Printf("exit: %s", g.Status().Dump())
}

// loadConfig reads the config file when given and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *wallFlag {
		cfg.Arena.Boundary = core.BoundaryWall.String()
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *spectateFlag != "" {
		cfg.Spectator.Enabled = true
		cfg.Spectator.Addr = *spectateFlag
	}
	return cfg, cfg.Validate()
}
