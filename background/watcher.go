package background

import (
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a background Stack whenever its source directory changes
// on disk, letting an operator drop or remove wallpapers without
// restarting the compositor.
type Watcher struct {
	fsw      *fsnotify.Watcher
	configs  []string
	mode     Mode
	w, h     int
	log      *zap.Logger
	reloaded chan *Stack
}

// NewWatcher starts watching every path among configs, directories and
// individual files alike. Watch setup failures are logged rather than
// failing startup; if the underlying watcher cannot be created at all, the
// returned Watcher is inert.
func NewWatcher(configs []string, mode Mode, displayW, displayH int, log *zap.Logger) *Watcher {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("background: failed to start watcher, hot-reload disabled", zap.Error(err))
		return &Watcher{log: log, reloaded: make(chan *Stack)}
	}

	w := &Watcher{
		fsw:      fsw,
		configs:  configs,
		mode:     mode,
		w:        displayW,
		h:        displayH,
		log:      log,
		reloaded: make(chan *Stack, 1),
	}
	for _, c := range configs {
		if err := fsw.Add(c); err != nil {
			log.Warn("background: failed to watch path", zap.String("path", c), zap.Error(err))
		}
	}
	return w
}

// Reloaded delivers a freshly loaded Stack each time the watched
// directories change. It never blocks the watcher goroutine: a pending
// reload is replaced, not queued, since only the latest state matters.
func (w *Watcher) Reloaded() <-chan *Stack { return w.reloaded }

// Run processes filesystem events until the watcher is closed. It should be
// run in its own goroutine by the outer process, outside the compositor's
// single-threaded call path; only the *Stack values it emits ever cross
// back into compositor state.
func (w *Watcher) Run() {
	if w.fsw == nil {
		return
	}
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			stack := Load(w.configs, w.mode, w.w, w.h, w.log)
			select {
			case <-w.reloaded: // drop stale pending reload
			default:
			}
			w.reloaded <- stack
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("background: watch error", zap.Error(err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	return w.fsw.Close()
}
