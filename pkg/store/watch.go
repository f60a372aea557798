package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventPageChanged indicates the snapshot for Event.Key was written or
	// removed.
	EventPageChanged EventType = iota

	// EventPagesInvalidated signals a change that could not be tied to a
	// single page; callers should reload everything they show.
	EventPagesInvalidated
)

// Event is emitted by Store.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Affects reports whether a page view of key should reload.
func (e Event) Affects(key string) bool {
	return e.Type == EventPagesInvalidated || e.Key == key
}

// ThrottleDelay is how long change bursts are coalesced before delivery.
var ThrottleDelay = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel. The channel is closed once ctx is done or the watcher
// fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	stateDir := filepath.Join(p.basePath, strings.TrimSuffix(Prefix, "/"))
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure state directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.log.Warn("watcher close", zap.Error(err))
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		var mu sync.Mutex
		done := false
		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if done {
				return
			}
			select {
			case events <- ev:
			default:
				// Consumer is behind; it reloads on the next event anyway.
			}
		}

		throttle := newEventThrottle(ThrottleDelay)
		defer func() {
			throttle.Stop()
			mu.Lock()
			done = true
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("watcher error", zap.Error(err))
				throttle.Enqueue(Event{Type: EventPagesInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								p.log.Warn("watch directory", zap.String("dir", absDir), zap.Error(err))
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Enqueue(Event{Type: EventPagesInvalidated}, send)
						continue
					}
				}

				key, ok := p.keyForPath(evt.Name)
				if !ok {
					continue
				}
				throttle.Enqueue(Event{Type: EventPageChanged, Key: key}, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// keyForPath derives the page key from a file path inside the store.
func (p *persistence) keyForPath(path string) (string, bool) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return "", false
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) != 2 || parts[0]+"/" != Prefix {
		return "", false
	}
	return decodeName(parts[1])
}

// eventThrottle coalesces rapid change notifications so views redraw once per
// burst of filesystem activity.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Key] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	if _, ok := pending[EventPagesInvalidated]; ok {
		send(Event{Type: EventPagesInvalidated})
		return
	}
	for key := range pending[EventPageChanged] {
		send(Event{Type: EventPageChanged, Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
