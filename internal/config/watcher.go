package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the event bursts editors produce when
// saving (truncate then write, or write a temp file then rename).
const defaultDebounce = 200 * time.Millisecond

// Watcher signals when the configuration file changes on disk.
//
// It watches the file's directory rather than the file itself so that
// editors which replace the file by rename stay observed. Each
// coalesced burst of events produces one signal on the channel
// returned by Start; the receiver is expected to reload the file.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan struct{}
	done     chan struct{}
	wg       sync.WaitGroup
}

// WatcherOption adjusts Watcher construction.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last event
// before signalling.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a watcher for the configuration file at path.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     path,
		debounce: defaultDebounce,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching and returns the change channel.
func (w *Watcher) Start() (<-chan struct{}, error) {
	dir := filepath.Dir(w.path)
	if err := w.fsw.Add(dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}

	w.wg.Add(1)
	go w.loop()

	return w.changes, nil
}

// Stop terminates the watcher and releases the underlying notifier.
// Stop may be called at most once.
func (w *Watcher) Stop() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			// Non-blocking send: one pending signal is enough, the
			// receiver reloads the whole file anyway.
			select {
			case w.changes <- struct{}{}:
			default:
			}
			timer = nil
			fire = nil

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep the loop running.

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevant reports whether ev concerns the configuration file. Write
// covers in-place saves, Create covers save-by-rename.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Base(ev.Name) == filepath.Base(w.path)
}
