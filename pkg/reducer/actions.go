// Package reducer applies addressed, immutable updates to a page's lecture
// tree. Each nesting level has its own sealed action type; an update action
// names the id of the node it targets and carries the action for that node.
package reducer

import "tableflip.dev/timetable/pkg/lecture"

// Action operates on the lecture list.
type Action interface{ isAction() }

// AddLecture appends a fresh lecture.
type AddLecture struct{}

// UpdateLecture applies Action to the lecture with ID.
type UpdateLecture struct {
	ID     string
	Action LectureAction
}

// RemoveLecture drops the lecture with ID.
type RemoveLecture struct {
	ID string
}

func (AddLecture) isAction()    {}
func (UpdateLecture) isAction() {}
func (RemoveLecture) isAction() {}

// LectureAction operates on a single lecture.
type LectureAction interface{ isLectureAction() }

// UpdateTitle replaces the title verbatim.
type UpdateTitle struct {
	Title string
}

// UpdateTimes applies Action to the lecture's time slots.
type UpdateTimes struct {
	Action TimesAction
}

// UpdateLinks applies Action to the lecture's links.
type UpdateLinks struct {
	Action LinksAction
}

func (UpdateTitle) isLectureAction() {}
func (UpdateTimes) isLectureAction() {}
func (UpdateLinks) isLectureAction() {}

// TimesAction operates on a lecture's time slot list.
type TimesAction interface{ isTimesAction() }

// AddTime appends a slot, copying the schedule of the last one if present.
type AddTime struct{}

// UpdateTime applies Action to the slot with ID.
type UpdateTime struct {
	ID     string
	Action TimeAction
}

// RemoveTime drops the slot with ID.
type RemoveTime struct {
	ID string
}

func (AddTime) isTimesAction()    {}
func (UpdateTime) isTimesAction() {}
func (RemoveTime) isTimesAction() {}

// TimeAction sets one field of a time slot.
type TimeAction interface{ isTimeAction() }

type UpdateWeekday struct {
	Weekday lecture.Weekday
}

type UpdateBeginTime struct {
	Time string
}

type UpdateEndTime struct {
	Time string
}

func (UpdateWeekday) isTimeAction()   {}
func (UpdateBeginTime) isTimeAction() {}
func (UpdateEndTime) isTimeAction()   {}

// LinksAction operates on a lecture's link list.
type LinksAction interface{ isLinksAction() }

// AddLink appends an empty link.
type AddLink struct{}

// UpdateLink applies Action to the link with ID.
type UpdateLink struct {
	ID     string
	Action LinkAction
}

// RemoveLink drops the link with ID.
type RemoveLink struct {
	ID string
}

func (AddLink) isLinksAction()    {}
func (UpdateLink) isLinksAction() {}
func (RemoveLink) isLinksAction() {}

// LinkAction sets one field of a link.
type LinkAction interface{ isLinkAction() }

type UpdateLabel struct {
	Label string
}

type UpdateURL struct {
	URL string
}

func (UpdateLabel) isLinkAction() {}
func (UpdateURL) isLinkAction()   {}
