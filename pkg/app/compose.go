package app

import (
	"fmt"

	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/reducer"
)

// SlotFields are the optional fields set on a time slot; empty values are
// left untouched.
type SlotFields struct {
	Weekday   lecture.Weekday
	BeginTime string
	EndTime   string
}

func (f SlotFields) actions() []reducer.TimeAction {
	var out []reducer.TimeAction
	if f.Weekday != "" {
		out = append(out, reducer.UpdateWeekday{Weekday: f.Weekday})
	}
	if f.BeginTime != "" {
		out = append(out, reducer.UpdateBeginTime{Time: f.BeginTime})
	}
	if f.EndTime != "" {
		out = append(out, reducer.UpdateEndTime{Time: f.EndTime})
	}
	return out
}

// LinkFields are the optional fields set on a link.
type LinkFields struct {
	Label *string
	URL   *string
}

func (f LinkFields) actions() []reducer.LinkAction {
	var out []reducer.LinkAction
	if f.Label != nil {
		out = append(out, reducer.UpdateLabel{Label: *f.Label})
	}
	if f.URL != nil {
		out = append(out, reducer.UpdateURL{URL: *f.URL})
	}
	return out
}

// ErrNotFound reports an address that does not resolve in the page.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("app: %s %q not found", e.Kind, e.ID)
}

func (s *Session) lecture(id string) (*lecture.Lecture, error) {
	l, ok := s.state.FindLecture(id)
	if !ok {
		return nil, &ErrNotFound{Kind: "lecture", ID: id}
	}
	return l, nil
}

// AddLecture appends a lecture with one default time slot and sets its title.
func (s *Session) AddLecture(title string) (*lecture.Lecture, error) {
	if err := s.Dispatch(reducer.AddLecture{}); err != nil {
		return nil, err
	}
	l := s.state.Lectures[len(s.state.Lectures)-1]
	if title != "" {
		if err := s.Dispatch(reducer.UpdateLecture{ID: l.ID, Action: reducer.UpdateTitle{Title: title}}); err != nil {
			return nil, err
		}
	}
	return s.lecture(l.ID)
}

// SetLectureTitle replaces the title of lectureID.
func (s *Session) SetLectureTitle(lectureID, title string) error {
	if _, err := s.lecture(lectureID); err != nil {
		return err
	}
	return s.Dispatch(reducer.UpdateLecture{ID: lectureID, Action: reducer.UpdateTitle{Title: title}})
}

// RemoveLecture removes lectureID.
func (s *Session) RemoveLecture(lectureID string) error {
	if _, err := s.lecture(lectureID); err != nil {
		return err
	}
	return s.Dispatch(reducer.RemoveLecture{ID: lectureID})
}

func timesAction(lectureID string, a reducer.TimesAction) reducer.Action {
	return reducer.UpdateLecture{ID: lectureID, Action: reducer.UpdateTimes{Action: a}}
}

func linksAction(lectureID string, a reducer.LinksAction) reducer.Action {
	return reducer.UpdateLecture{ID: lectureID, Action: reducer.UpdateLinks{Action: a}}
}

// AddTime appends a slot to lectureID, copied from its last slot, then
// applies f.
func (s *Session) AddTime(lectureID string, f SlotFields) (*lecture.TimeSlot, error) {
	if _, err := s.lecture(lectureID); err != nil {
		return nil, err
	}
	if err := s.Dispatch(timesAction(lectureID, reducer.AddTime{})); err != nil {
		return nil, err
	}
	l, _ := s.lecture(lectureID)
	slot := l.Times[len(l.Times)-1]
	if err := s.UpdateTime(lectureID, slot.ID, f); err != nil {
		return nil, err
	}
	l, _ = s.lecture(lectureID)
	slot, _ = l.FindTime(slot.ID)
	return slot, nil
}

// UpdateTime applies f to the slot timeID of lectureID.
func (s *Session) UpdateTime(lectureID, timeID string, f SlotFields) error {
	l, err := s.lecture(lectureID)
	if err != nil {
		return err
	}
	if _, ok := l.FindTime(timeID); !ok {
		return &ErrNotFound{Kind: "time slot", ID: timeID}
	}
	for _, a := range f.actions() {
		if err := s.Dispatch(timesAction(lectureID, reducer.UpdateTime{ID: timeID, Action: a})); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTime removes the slot timeID; the last slot of a lecture is kept.
func (s *Session) RemoveTime(lectureID, timeID string) error {
	l, err := s.lecture(lectureID)
	if err != nil {
		return err
	}
	if _, ok := l.FindTime(timeID); !ok {
		return &ErrNotFound{Kind: "time slot", ID: timeID}
	}
	return s.Dispatch(timesAction(lectureID, reducer.RemoveTime{ID: timeID}))
}

// AddLink appends an empty link to lectureID, then applies f.
func (s *Session) AddLink(lectureID string, f LinkFields) (*lecture.Link, error) {
	if _, err := s.lecture(lectureID); err != nil {
		return nil, err
	}
	if err := s.Dispatch(linksAction(lectureID, reducer.AddLink{})); err != nil {
		return nil, err
	}
	l, _ := s.lecture(lectureID)
	link := l.Links[len(l.Links)-1]
	if err := s.UpdateLink(lectureID, link.ID, f); err != nil {
		return nil, err
	}
	l, _ = s.lecture(lectureID)
	link, _ = l.FindLink(link.ID)
	return link, nil
}

// UpdateLink applies f to the link linkID of lectureID.
func (s *Session) UpdateLink(lectureID, linkID string, f LinkFields) error {
	l, err := s.lecture(lectureID)
	if err != nil {
		return err
	}
	if _, ok := l.FindLink(linkID); !ok {
		return &ErrNotFound{Kind: "link", ID: linkID}
	}
	for _, a := range f.actions() {
		if err := s.Dispatch(linksAction(lectureID, reducer.UpdateLink{ID: linkID, Action: a})); err != nil {
			return err
		}
	}
	return nil
}

// RemoveLink removes the link linkID.
func (s *Session) RemoveLink(lectureID, linkID string) error {
	l, err := s.lecture(lectureID)
	if err != nil {
		return err
	}
	if _, ok := l.FindLink(linkID); !ok {
		return &ErrNotFound{Kind: "link", ID: linkID}
	}
	return s.Dispatch(linksAction(lectureID, reducer.RemoveLink{ID: linkID}))
}
