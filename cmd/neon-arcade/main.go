package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-arcade/audio"
	"github.com/lixenwraith/neon-arcade/config"
	"github.com/lixenwraith/neon-arcade/constants"
	"github.com/lixenwraith/neon-arcade/engine"
	"github.com/lixenwraith/neon-arcade/games/clicker"
	"github.com/lixenwraith/neon-arcade/games/react"
	"github.com/lixenwraith/neon-arcade/games/runner"
	"github.com/lixenwraith/neon-arcade/render"
	"github.com/lixenwraith/neon-arcade/router"
	"github.com/lixenwraith/neon-arcade/status"
	"github.com/lixenwraith/neon-arcade/store"
	"github.com/lixenwraith/neon-arcade/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML settings file")
	storeFlag  = flag.String("store", "", "Persistence backend: sqlite, file, memory, none")
	dataFlag   = flag.String("data", "", "Data directory for the sqlite and file backends")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/neon-arcade.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	seedFlag   = flag.Int64("seed", 0, "Fix the RNG seed of every game (0 = clock)")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "neon-arcade: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "neon-arcade: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the settings file, then applies flags the user set explicitly
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "store":
			cfg.Store.Backend = *storeFlag
		case "data":
			cfg.Store.Path = *dataFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		case "seed":
			cfg.Game.Seed = *seedFlag
		}
	})
	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	st := store.OpenOrDegrade(cfg.Store.Backend, store.Location(cfg.Store.Backend, cfg.Store.Path))
	defer st.Close()

	reg := status.NewRegistry()

	player := audio.NewPlayer(audio.Config{Enabled: cfg.Audio.Enabled, Volume: cfg.Audio.Volume})
	if err := player.Start(); err != nil {
		log.Printf("audio: %v", err)
	}
	defer player.Stop()
	reg.Bools.Get(status.AudioMuted).Store(player.Muted())

	term := terminal.NewService(nil)
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Stop()

	// Panic Recovery: finalize the screen before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			term.Stop()
			terminal.ReportCrash(os.Stderr, "NEON-ARCADE", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen := term.Screen()
	w, h := screen.Size()
	canvas := render.NewBuffer(w, h)
	display := engine.NewRefresher(engine.NewMonotonicTimeProvider(), reg)

	svc := engine.Services{Store: st, Cues: player, Status: reg, Seed: cfg.Game.Seed}
	rt := router.New(router.App{
		Store:   st,
		Status:  reg,
		Cues:    player,
		Display: display,
		Canvas:  canvas,
	}, runner.New(svc), clicker.New(svc), react.New(svc))

	log.Printf("neon-arcade: started store=%s fps=%d seed=%d", cfg.Store.Backend, cfg.Display.FPS, cfg.Game.Seed)
	rt.Render()
	term.Start()

	frameTicker := time.NewTicker(constants.FrameInterval(cfg.Display.FPS))
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-term.Events():
			if !rt.HandleEvent(ev) {
				log.Printf("neon-arcade: quit after %d frames", reg.Ints.Get(status.FrameCount).Load())
				for _, line := range reg.Snapshot() {
					log.Printf("status: %s", line)
				}
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-frameTicker.C:
			// Update then render every scheduled game frame, then overlay router chrome
			display.Flush()
			rt.Render()
			canvas.Blit(screen)
			screen.Show()
		}
	}
}
