package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"

	"lookup/internal/domain"
	"lookup/internal/eventbus"
)

// debounce collapses the burst of events an editor produces for one save
const debounce = 100 * time.Millisecond

// WatchService reloads an item file whenever it changes
type WatchService interface {
	StartWatch(ctx context.Context, path string, onChange func([]domain.Item)) error
	StopWatch()
}

// watchService is the concrete implementation
type watchService struct {
	bus        eventbus.EventBus
	log        logr.Logger
	mu         sync.Mutex
	isWatching bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewWatchService creates a new watch service. Load failures are published
// on bus when it is not nil.
func NewWatchService(bus eventbus.EventBus, log logr.Logger) WatchService {
	return &watchService{
		bus: bus,
		log: log.WithName("dataset"),
	}
}

// StartWatch starts watching path. The parent directory is watched so
// files replaced by rename are still seen.
func (ws *watchService) StartWatch(ctx context.Context, path string, onChange func([]domain.Item)) error {
	ws.mu.Lock()
	if ws.isWatching {
		ws.mu.Unlock()
		return fmt.Errorf("watch already in progress")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		ws.mu.Unlock()
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		ws.mu.Unlock()
		watcher.Close()
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		ws.mu.Unlock()
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	ws.cancelFunc = cancel
	ws.isWatching = true
	ws.mu.Unlock()

	ws.log.V(1).Info("watching data file", "path", abs)

	ws.wg.Add(1)
	go func() {
		defer ws.wg.Done()
		defer func() {
			watcher.Close()
			ws.mu.Lock()
			ws.isWatching = false
			ws.cancelFunc = nil
			ws.mu.Unlock()
		}()
		ws.loop(watchCtx, watcher, abs, onChange)
	}()

	return nil
}

func (ws *watchService) loop(ctx context.Context, watcher *fsnotify.Watcher, path string, onChange func([]domain.Item)) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			ws.reload(path, onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			ws.log.Error(err, "watcher error", "path", path)
		}
	}
}

func (ws *watchService) reload(path string, onChange func([]domain.Item)) {
	items, err := Load(path)
	if err != nil {
		// A half-written file is common while an editor saves; keep the old data
		ws.log.Error(err, "reload failed", "path", path)
		if ws.bus != nil {
			ws.bus.Publish(eventbus.DataLoadFailedEvent{Path: path, Err: err})
		}
		return
	}
	ws.log.V(1).Info("data file reloaded", "path", path, "items", len(items))
	onChange(items)
}

// StopWatch stops the running watch and waits for it to finish
func (ws *watchService) StopWatch() {
	ws.mu.Lock()
	if ws.cancelFunc != nil {
		ws.cancelFunc()
	}
	ws.mu.Unlock()

	ws.wg.Wait()
}
