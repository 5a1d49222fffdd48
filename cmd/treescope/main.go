package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/treescope/audio"
	"github.com/lixenwraith/treescope/config"
	"github.com/lixenwraith/treescope/constants"
	"github.com/lixenwraith/treescope/engine"
	"github.com/lixenwraith/treescope/input"
	"github.com/lixenwraith/treescope/render"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write an event log to treescope.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound cues muted")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.Nop()
	if *debugFlag {
		f, err := os.OpenFile("treescope.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits
	// stderr, or the trace is unreadable in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\ntreescope crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	width, height := screen.Size()
	ctx := engine.NewContext(cfg, width-constants.PanelWidth, height-constants.StatusBarHeight, logger)

	var sound *audio.Engine
	if cfg.Audio.Enabled {
		sound, err = audio.NewEngine()
		if err != nil {
			// Non-fatal, the visualizer runs silently
			logger.Warn().Err(err).Msg("audio unavailable")
			sound = nil
		} else {
			defer sound.Close()
			if *muteFlag {
				sound.ToggleMute()
			}
			ctx.Sound = sound
		}
	}

	renderer := render.New(screen)
	handler := input.New(ctx, sound)

	run(screen, ctx, renderer, handler, sound)
}

// run is the cooperative main loop: one update and one draw per tick,
// input handled between ticks.
func run(screen tcell.Screen, ctx *engine.Context, renderer *render.Renderer, handler *input.Handler, sound *audio.Engine) {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	width, height := screen.Size()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handler.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				width, height = screen.Size()
				ctx.SetViewport(width-constants.PanelWidth, height-constants.StatusBarHeight)
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			ctx.Update(dt)
			renderer.Draw(ctx, width, height, sound.Muted())
		}
	}
}
