// Package lecture defines the timetable state tree and its entity factories.
package lecture

import "github.com/google/uuid"

// CurrentVersion is written into every persisted State.
const CurrentVersion = "1"

// State is the root of a page: an ordered list of lectures.
type State struct {
	Version  string     `json:"version"`
	Lectures []*Lecture `json:"lectures"`
}

// Lecture is a recurring course with one or more weekly time slots. The
// validate tags are the schema checked by package validate.
type Lecture struct {
	ID    string      `json:"id"`
	Title string      `json:"title" validate:"required"`
	Times []*TimeSlot `json:"times" validate:"min=1,dive,required"`
	Links []*Link     `json:"links,omitempty" validate:"dive,required"`
}

// TimeSlot is one weekday occurrence of a lecture.
type TimeSlot struct {
	ID        string  `json:"id"`
	Weekday   Weekday `json:"weekday" validate:"oneof=SUN MON TUE WED THU FRI SAT"`
	BeginTime string  `json:"beginTime" validate:"clock"`
	EndTime   string  `json:"endTime" validate:"clock"`
}

// Link is a labeled reference attached to a lecture.
type Link struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url" validate:"required"`
}

// NewID produces entity identifiers. Tests may replace it.
var NewID = func() string {
	return uuid.New().String()
}

const (
	DefaultWeekday   = Monday
	DefaultBeginTime = "09:00"
	DefaultEndTime   = "10:00"
)

// NewTimeSlot returns a Monday 09:00-10:00 slot with a fresh id.
func NewTimeSlot() *TimeSlot {
	return &TimeSlot{
		ID:        NewID(),
		Weekday:   DefaultWeekday,
		BeginTime: DefaultBeginTime,
		EndTime:   DefaultEndTime,
	}
}

// NewLink returns an empty link with a fresh id.
func NewLink() *Link {
	return &Link{ID: NewID()}
}

// NewLecture returns an untitled lecture holding a single default slot.
func NewLecture() *Lecture {
	return &Lecture{
		ID:    NewID(),
		Times: []*TimeSlot{NewTimeSlot()},
	}
}

// NewState synthesizes the state of a page that has never been saved.
func NewState() *State {
	return &State{
		Version:  CurrentVersion,
		Lectures: []*Lecture{NewLecture()},
	}
}

// FindLecture returns the lecture with id, if any.
func (s *State) FindLecture(id string) (*Lecture, bool) {
	if s == nil {
		return nil, false
	}
	for _, l := range s.Lectures {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// FindTime returns the slot with id inside the lecture.
func (l *Lecture) FindTime(id string) (*TimeSlot, bool) {
	for _, t := range l.Times {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// FindLink returns the link with id inside the lecture.
func (l *Lecture) FindLink(id string) (*Link, bool) {
	for _, k := range l.Links {
		if k.ID == id {
			return k, true
		}
	}
	return nil, false
}
