// Command orbitald runs the compositor against a configured background and
// decoration set, driving it from an InputSource and presenting frames
// through a Display. The loopback driver wired in here stands in for a real
// display and input transport so the daemon runs end to end without one.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/orbitald/compositor/background"
	"github.com/orbitald/compositor/compositor"
	"github.com/orbitald/compositor/decor"
	"github.com/orbitald/compositor/inputevt"
	"github.com/orbitald/compositor/scheme"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to orbitald YAML config")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("orbitald: starting",
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height),
	)

	decorations := decor.Load(decor.Paths{
		CloseFocused:   cfg.Decoration.CloseFocused,
		CloseUnfocused: cfg.Decoration.CloseUnfocused,
		Minimize:       cfg.Decoration.Minimize,
		Cursor:         cfg.Decoration.Cursor,
	}, log)

	mode := background.ModeFromString(cfg.Background.Mode)
	backgrounds := background.Load(cfg.Background.Paths, mode, cfg.Display.Width, cfg.Display.Height, log)

	var watcher *background.Watcher
	if cfg.Background.WatchReloads && len(cfg.Background.Paths) > 0 {
		watcher = background.NewWatcher(cfg.Background.Paths, mode, cfg.Display.Width, cfg.Display.Height, log)
		go watcher.Run()
		defer watcher.Close()
	}

	c := compositor.New(cfg.Display.Width, cfg.Display.Height, backgrounds, decorations, log)
	// srv is what a real client transport (a listener accepting open/read/
	// write/close calls) would dispatch onto; none is wired up here.
	srv := scheme.NewServer(c)
	if _, err := srv.Open("r/40/40/320/240/orbitald"); err != nil {
		log.Warn("orbitald: failed to open startup window", zap.Error(err))
	}

	display := newLoopbackDisplay(log)
	input := newLoopbackInput()
	defer input.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	run(c, display, input, watcher, sig, log)
}

// run is the daemon's event loop: it dispatches input events into the
// compositor, applies hot-reloaded background stacks, redraws whenever
// either produces damage, and exits on SIGINT/SIGTERM.
func run(c *compositor.Compositor, display compositor.Display, input InputSource, watcher *background.Watcher, sig <-chan os.Signal, log *zap.Logger) {
	events := make(chan inputevt.Event)
	done := make(chan struct{})
	go func() {
		defer close(events)
		for {
			ev, ok := input.Next()
			if !ok {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	var reloads <-chan *background.Stack
	if watcher != nil {
		reloads = watcher.Reloaded()
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				log.Info("orbitald: input source closed, shutting down")
				return
			}
			dispatch(c, ev)
			if err := c.Redraw(display); err != nil {
				log.Error("orbitald: redraw failed", zap.Error(err))
			}

		case stack := <-reloads:
			log.Info("orbitald: background reloaded", zap.Int("count", stack.Len()))
			c.SetBackgrounds(stack)
			if err := c.Redraw(display); err != nil {
				log.Error("orbitald: redraw failed", zap.Error(err))
			}

		case <-sig:
			log.Info("orbitald: signal received, shutting down")
			return
		}
	}
}

func dispatch(c *compositor.Compositor, ev inputevt.Event) {
	switch ev.Code {
	case inputevt.CodeKey:
		c.HandleKey(ev)
	case inputevt.CodeMouse:
		c.HandleMouse(ev)
	case inputevt.CodeScroll:
		c.HandleScroll(ev)
	}
}
