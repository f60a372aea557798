package app

import (
	"time"

	"go.uber.org/zap"

	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/reducer"
	"tableflip.dev/timetable/pkg/store"
	"tableflip.dev/timetable/pkg/validate"
)

// Session is one page held in memory between open and save. Its state is
// replaced, never mutated, on every dispatched action.
type Session struct {
	store store.Store
	log   *zap.Logger

	key   string
	title string
	state *lecture.State
	saved bool
	dirty bool
}

// Key is the key the page is currently persisted under.
func (s *Session) Key() string { return s.key }

// Title is the page title; Save persists under it.
func (s *Session) Title() string { return s.title }

func (s *Session) State() *lecture.State { return s.state }

// Saved reports whether a snapshot exists under Key.
func (s *Session) Saved() bool { return s.saved }

// Dirty reports whether there are unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// Dispatch applies a to the page. Removing the last time slot of a lecture
// is refused with ErrLastTimeSlot.
func (s *Session) Dispatch(a reducer.Action) error {
	if reducer.RemovesLastTime(s.state.Lectures, a) {
		return ErrLastTimeSlot
	}
	next := reducer.Apply(s.state.Lectures, a)
	s.log.Debug("dispatch", zap.String("action", reducer.Describe(a)))
	if sameLectures(next, s.state.Lectures) {
		return nil
	}
	s.state = &lecture.State{Version: s.state.Version, Lectures: next}
	s.dirty = true
	return nil
}

// SetTitle renames the page. The old snapshot is removed on the next Save.
func (s *Session) SetTitle(title string) {
	if title == s.title {
		return
	}
	s.title = title
	s.dirty = true
}

// Validate lists every problem that would block Save.
func (s *Session) Validate() []validate.Error {
	return validate.Page(s.title, s.state.Lectures)
}

// Save validates the page, removes the snapshot under the opened key and
// writes the page under its title. An invalid page is returned as
// *InvalidError and nothing is written.
func (s *Session) Save() error {
	if errs := s.Validate(); len(errs) > 0 {
		return &InvalidError{Errors: errs}
	}
	if s.title != s.key {
		if err := s.store.Remove(s.key); err != nil {
			return err
		}
		s.log.Info("renamed page", zap.String("from", s.key), zap.String("to", s.title))
	}
	if err := s.store.Save(s.title, s.state); err != nil {
		return err
	}
	s.key = s.title
	s.saved = true
	s.dirty = false
	return nil
}

// Delete removes the snapshot under the opened key. The in-memory page stays
// available and can be saved again.
func (s *Session) Delete() error {
	if err := s.store.Remove(s.key); err != nil {
		return err
	}
	s.saved = false
	s.dirty = true
	return nil
}

// Reload replaces the page with the snapshot under Key, discarding unsaved
// changes. It reports whether a snapshot was found.
func (s *Session) Reload() (bool, error) {
	state, ok, err := s.store.Load(s.key)
	if err != nil {
		return false, err
	}
	s.saved = ok
	if ok {
		s.state = state
		s.dirty = false
	}
	return ok, nil
}

// Layout computes the page geometry at now.
func (s *Session) Layout(now time.Time) (*layout.Timetable, error) {
	return layout.Compute(s.state, now)
}

func sameLectures(a, b []*lecture.Lecture) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
