// Package store persists page snapshots under the "state/" key namespace.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"tableflip.dev/timetable/pkg/lecture"
)

// Prefix namespaces every page key in the underlying key-value store.
const Prefix = "state/"

// ErrEmptyKey is returned for operations on the empty page key.
var ErrEmptyKey = errors.New("store: empty page key")

// Store defines the persistence contract for timetable pages.
type Store interface {
	// Load returns the snapshot saved under key. ok is false when nothing
	// has been saved there.
	Load(key string) (s *lecture.State, ok bool, err error)
	// Save overwrites the snapshot under key.
	Save(key string, s *lecture.State) error
	// Remove deletes the snapshot under key; removing a missing key is not an error.
	Remove(key string) error
	// Keys lists saved page keys without the prefix, sorted.
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// StorageKey returns the namespaced key for a page.
func StorageKey(page string) string {
	return Prefix + page
}

// PageKey strips the namespace from a storage key.
func PageKey(key string) (string, bool) {
	if !strings.HasPrefix(key, Prefix) {
		return "", false
	}
	return strings.TrimPrefix(key, Prefix), true
}

// encode marshals s with a version filled in, leaving the caller's state
// untouched.
func encode(s *lecture.State) ([]byte, error) {
	cp := *s
	if cp.Version == "" {
		cp.Version = lecture.CurrentVersion
	}
	return json.Marshal(&cp)
}

// normalize fills a missing version and drops null list entries of a
// decoded snapshot.
func normalize(s *lecture.State) *lecture.State {
	if s.Version == "" {
		s.Version = lecture.CurrentVersion
	}
	lectures := s.Lectures[:0]
	for _, l := range s.Lectures {
		if l == nil {
			continue
		}
		times := l.Times[:0]
		for _, t := range l.Times {
			if t != nil {
				times = append(times, t)
			}
		}
		l.Times = times
		links := l.Links[:0]
		for _, k := range l.Links {
			if k != nil {
				links = append(links, k)
			}
		}
		l.Links = links
		lectures = append(lectures, l)
	}
	s.Lectures = lectures
	return s
}
