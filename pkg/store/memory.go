package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"tableflip.dev/timetable/pkg/lecture"
)

// Memory is a Store held in process memory. Snapshots are stored encoded so
// callers never share state with the store.
type Memory struct {
	mu       sync.Mutex
	pages    map[string][]byte
	watchers []chan Event
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{pages: make(map[string][]byte)}
}

func (m *Memory) Load(key string) (*lecture.State, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	m.mu.Lock()
	data, ok := m.pages[StorageKey(key)]
	m.mu.Unlock()
	if !ok {
		return nil, false, nil
	}
	s := &lecture.State{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, false, fmt.Errorf("store: decode %q: %w", key, err)
	}
	return normalize(s), true, nil
}

func (m *Memory) Save(key string, s *lecture.State) error {
	if key == "" {
		return ErrEmptyKey
	}
	if s == nil {
		return fmt.Errorf("store: save %q: nil state", key)
	}
	data, err := encode(s)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.pages[StorageKey(key)] = data
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *Memory) Remove(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	_, ok := m.pages[StorageKey(key)]
	delete(m.pages, StorageKey(key))
	m.mu.Unlock()
	if ok {
		m.notify(key)
	}
	return nil
}

func (m *Memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.pages))
	for k := range m.pages {
		if page, ok := PageKey(k); ok {
			keys = append(keys, page)
		}
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notify(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- Event{Type: EventPageChanged, Key: key}:
		default:
		}
	}
}
