// Package mcp exposes timetable pages and their addressed edits over the
// Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/timetable/pkg/app"
	"tableflip.dev/timetable/pkg/layout"
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/validate"
)

// Service adapts app.Service to transport-friendly results.
type Service struct {
	App *app.Service
	// Now is the reference clock for layouts; defaults to time.Now.
	Now func() time.Time
}

// PageSummary describes a saved page.
type PageSummary struct {
	Key      string `json:"key"`
	Lectures int    `json:"lectures"`
	Slots    int    `json:"slots"`
	Minutes  int    `json:"weeklyMinutes"`
}

// PageDTO is a page and whether it exists in the store.
type PageDTO struct {
	Key   string         `json:"key"`
	Saved bool           `json:"saved"`
	State *lecture.State `json:"state"`
}

// EditResult reports a saved edit.
type EditResult struct {
	Key string `json:"key"`
	// Created is the id of a lecture, slot or link added by the edit.
	Created string         `json:"created,omitempty"`
	State   *lecture.State `json:"state"`
}

// CellDTO is one placed time slot.
type CellDTO struct {
	LectureID string  `json:"lectureId"`
	TimeID    string  `json:"timeId"`
	Title     string  `json:"title"`
	Begin     string  `json:"begin"`
	End       string  `json:"end"`
	Top       float64 `json:"top"`
	Height    float64 `json:"height"`
	Current   bool    `json:"current"`
}

// ColumnDTO is one visible weekday.
type ColumnDTO struct {
	Weekday lecture.Weekday `json:"weekday"`
	Today   bool            `json:"today"`
	Cells   []CellDTO       `json:"cells"`
}

// LayoutDTO is the timetable geometry of a page.
type LayoutDTO struct {
	Key       string      `json:"key"`
	At        string      `json:"at"`
	MinTime   int         `json:"minTime"`
	MaxTime   int         `json:"maxTime"`
	Now       int         `json:"now"`
	Indicator *float64    `json:"indicator,omitempty"`
	Columns   []ColumnDTO `json:"columns"`
}

// ValidationDTO lists the problems that block saving a page.
type ValidationDTO struct {
	Key    string           `json:"key"`
	Valid  bool             `json:"valid"`
	Errors []validate.Error `json:"errors"`
}

var errNoApp = errors.New("mcp: service is not configured")

// NewService builds a service over the given app service.
func NewService(a *app.Service) *Service {
	return &Service{App: a, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// ListPages summarizes every saved page.
func (s *Service) ListPages(ctx context.Context) ([]PageSummary, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	keys, err := s.App.Pages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PageSummary, 0, len(keys))
	for _, k := range keys {
		state, ok, err := s.App.Load(k)
		if err != nil || !ok {
			out = append(out, PageSummary{Key: k})
			continue
		}
		sum := app.Summarize(state)
		out = append(out, PageSummary{Key: k, Lectures: sum.Lectures, Slots: sum.Slots, Minutes: sum.Minutes})
	}
	return out, nil
}

// GetPage opens key; a page that was never saved is synthesized.
func (s *Service) GetPage(key string) (*PageDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	sess, err := s.App.Open(key)
	if err != nil {
		return nil, err
	}
	return &PageDTO{Key: sess.Key(), Saved: sess.Saved(), State: sess.State()}, nil
}

// RenderPage computes the layout of key at at, or now when at is zero.
func (s *Service) RenderPage(key string, at time.Time) (*LayoutDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	if at.IsZero() {
		at = s.now()
	}
	sess, err := s.App.Open(key)
	if err != nil {
		return nil, err
	}
	tt, err := sess.Layout(at)
	if err != nil {
		return nil, err
	}
	return toLayoutDTO(key, at, tt), nil
}

func toLayoutDTO(key string, at time.Time, tt *layout.Timetable) *LayoutDTO {
	dto := &LayoutDTO{
		Key:     key,
		At:      at.Format(time.RFC3339),
		MinTime: tt.MinTime,
		MaxTime: tt.MaxTime,
		Now:     tt.Now,
		Columns: make([]ColumnDTO, 0, len(tt.Columns)),
	}
	if tt.ShowIndicator {
		v := tt.Indicator
		dto.Indicator = &v
	}
	for _, col := range tt.Columns {
		c := ColumnDTO{Weekday: col.Weekday, Today: col.Today, Cells: make([]CellDTO, 0, len(col.Cells))}
		for _, cell := range col.Cells {
			c.Cells = append(c.Cells, CellDTO{
				LectureID: cell.Lecture.ID,
				TimeID:    cell.Time.ID,
				Title:     cell.Lecture.Title,
				Begin:     cell.Time.BeginTime,
				End:       cell.Time.EndTime,
				Top:       cell.Top,
				Height:    cell.Height,
				Current:   cell.Current,
			})
		}
		dto.Columns = append(dto.Columns, c)
	}
	return dto
}

// Edit opens key, runs fn against the session and saves. fn returns the id
// of anything it created.
func (s *Service) Edit(key string, fn func(*app.Session) (string, error)) (*EditResult, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	sess, err := s.App.Open(key)
	if err != nil {
		return nil, err
	}
	created, err := fn(sess)
	if err != nil {
		return nil, err
	}
	if err := sess.Save(); err != nil {
		return nil, err
	}
	return &EditResult{Key: sess.Key(), Created: created, State: sess.State()}, nil
}

// Validate checks the page saved under key.
func (s *Service) Validate(key string) (*ValidationDTO, error) {
	if s.App == nil {
		return nil, errNoApp
	}
	sess, err := s.App.Open(key)
	if err != nil {
		return nil, err
	}
	errs := sess.Validate()
	if errs == nil {
		errs = []validate.Error{}
	}
	return &ValidationDTO{Key: key, Valid: len(errs) == 0, Errors: errs}, nil
}

// DeletePage removes the page saved under key.
func (s *Service) DeletePage(key string) error {
	if s.App == nil {
		return errNoApp
	}
	return s.App.Delete(key)
}
