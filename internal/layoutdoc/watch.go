package layoutdoc

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/menunav/internal/logging/events"
)

// DefaultReloadInterval is the minimum time between two reloads.
const DefaultReloadInterval = 250 * time.Millisecond

// Event carries a freshly loaded document or the error that stopped it
// loading.
type Event struct {
	Doc *Document
	Err error
}

// Watcher reloads a layout file whenever it changes on disk.
type Watcher struct {
	path     string
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	fs     *fsnotify.Watcher
	events chan Event
	closed chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. The directory is watched rather than the
// file so editors that replace the file on save keep triggering reloads.
func NewWatcher(path string, interval time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		throttle: newThrottle(interval),
		ctx:      ctx,
		cancel:   cancel,
		fs:       fs,
		events:   make(chan Event, 4),
		closed:   make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	go func() {
		w.wg.Wait()
		fs.Close()
		close(w.events)
		close(w.closed)
	}()

	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns a channel of reloads. It is closed after Stop once the
// watcher has drained.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel is
// closed.
func (w *Watcher) Wait() {
	<-w.closed
}

func (w *Watcher) run() {
	defer w.wg.Done()

	target := filepath.Base(w.path)
	for {
		select {
		case <-w.ctx.Done():
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			events.Doc.Change(w.path, ev.Op.String())
			if !w.throttle.wait(w.ctx.Done()) {
				return
			}
			w.drain()
			doc, err := Load(w.path)
			if !w.emit(Event{Doc: doc, Err: err}) {
				return
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Doc.Error(w.path, err)
			if !w.emit(Event{Err: err}) {
				return
			}
		}
	}
}

// drain discards change notifications that queued up while throttled; the
// load that follows sees their writes.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.fs.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (w *Watcher) emit(ev Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- ev:
		return true
	}
}
