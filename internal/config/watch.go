package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the quiet period before a change is reported. Editors
// often write a file in several steps.
const WatchDebounce = 150 * time.Millisecond

// Watcher reports changes of a config file. It watches the parent
// directory so files replaced by rename are still seen.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
	logf    func(string, ...any)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// Watch starts watching path.
func Watch(path string, logf func(string, ...any)) (*Watcher, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	clean := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(clean)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    clean,
		watcher: fw,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		logf:    logf,
	}
	go w.run()
	return w, nil
}

// Events delivers one value per debounced change. It is closed by Close.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.closed = true
		close(w.events)
	}()

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logf("config watch: %v", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(WatchDebounce, w.notify)
}

func (w *Watcher) notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- struct{}{}:
	default:
	}
}
