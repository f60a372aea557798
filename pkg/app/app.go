// Package app holds the editing lifecycle of timetable pages: open a page or
// synthesize a fresh one, dispatch actions, validate and save, delete.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/reducer"
	"tableflip.dev/timetable/pkg/store"
	"tableflip.dev/timetable/pkg/validate"
)

var (
	ErrNoStore = errors.New("app: no store configured")
	// ErrLastTimeSlot is returned when an action would leave a lecture
	// without any time slot.
	ErrLastTimeSlot = errors.New("app: a lecture needs at least one time slot")
)

// InvalidError carries every validation failure that blocked a save.
type InvalidError struct {
	Errors []validate.Error
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		msgs = append(msgs, ve.String())
	}
	return fmt.Sprintf("app: page is invalid: %s", strings.Join(msgs, "; "))
}

// Service provides page level operations shared by the CLI, the live view and
// the MCP server.
type Service struct {
	Store store.Store
	Log   *zap.Logger
}

func (s *Service) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// Pages returns the sorted saved page keys.
func (s *Service) Pages(ctx context.Context) ([]string, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	return s.Store.Keys(ctx), nil
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	return s.Store.Watch(ctx)
}

// Open loads the page saved under key, or synthesizes a fresh one holding a
// single default lecture when nothing is saved there.
func (s *Service) Open(key string) (*Session, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	if key == "" {
		return nil, store.ErrEmptyKey
	}
	state, ok, err := s.Store.Load(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		state = lecture.NewState()
	}
	s.logger().Debug("opened page", zap.String("key", key), zap.Bool("saved", ok))
	return &Session{
		store: s.Store,
		log:   s.logger(),
		key:   key,
		title: key,
		state: state,
		saved: ok,
	}, nil
}

// Load returns the saved page under key without starting a session.
func (s *Service) Load(key string) (*lecture.State, bool, error) {
	if s.Store == nil {
		return nil, false, ErrNoStore
	}
	return s.Store.Load(key)
}

// Edit opens key, applies actions in order and saves. Nothing is written when
// an action is refused or the result does not validate.
func (s *Service) Edit(key string, actions ...reducer.Action) (*Session, error) {
	sess, err := s.Open(key)
	if err != nil {
		return nil, err
	}
	for _, a := range actions {
		if err := sess.Dispatch(a); err != nil {
			return sess, err
		}
	}
	if err := sess.Save(); err != nil {
		return sess, err
	}
	return sess, nil
}

// Rename moves the page saved under from to the key to.
func (s *Service) Rename(from, to string) (*Session, error) {
	sess, err := s.Open(from)
	if err != nil {
		return nil, err
	}
	if !sess.Saved() {
		return nil, fmt.Errorf("app: page %q not found", from)
	}
	sess.SetTitle(to)
	if err := sess.Save(); err != nil {
		return sess, err
	}
	return sess, nil
}

// Delete removes the page saved under key. Deleting a missing page is not an
// error.
func (s *Service) Delete(key string) error {
	if s.Store == nil {
		return ErrNoStore
	}
	if err := s.Store.Remove(key); err != nil {
		return err
	}
	s.logger().Info("deleted page", zap.String("key", key))
	return nil
}

// Import saves state under key, replacing any page already there.
func (s *Service) Import(key string, state *lecture.State) (*Session, error) {
	sess, err := s.Open(key)
	if err != nil {
		return nil, err
	}
	sess.state = state
	sess.dirty = true
	if err := sess.Save(); err != nil {
		return sess, err
	}
	return sess, nil
}
