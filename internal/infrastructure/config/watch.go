package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before reloading.
// Editors often write a file in several steps.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads tuning.yaml whenever it changes on disk.
// Reloaded configs arrive on Tuning; the game loop drains it between frames.
type Watcher struct {
	loader  *Loader
	watcher *fsnotify.Watcher
	Tuning  chan *TuningConfig
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the loader's base directory
func NewWatcher(loader *Loader) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(loader.BasePath()); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		loader:  loader,
		watcher: w,
		Tuning:  make(chan *TuningConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. The channels are closed once the watch loop exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	// trailing debounce: reload once the file has been quiet for a moment
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		close(w.Tuning)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isTuningFile(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			cfg, err := w.loader.LoadTuning()
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendTuning(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-w.closeCh:
			return
		}
	}
}

// sendTuning replaces any reload the game loop has not picked up yet
func (w *Watcher) sendTuning(cfg *TuningConfig) {
	select {
	case <-w.Tuning:
	default:
	}
	select {
	case w.Tuning <- cfg:
	case <-w.closeCh:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

func isTuningFile(p string) bool {
	return strings.EqualFold(filepath.Base(p), TuningFile)
}
