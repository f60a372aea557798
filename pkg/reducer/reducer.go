package reducer

import "tableflip.dev/timetable/pkg/lecture"

// Apply returns the lecture list after a. The input is never modified: only
// the nodes on the path to the target are reallocated and every sibling
// pointer is reused. Actions addressing an unknown id return lectures as is.
func Apply(lectures []*lecture.Lecture, a Action) []*lecture.Lecture {
	switch a := a.(type) {
	case AddLecture:
		return appendCopy(lectures, lecture.NewLecture())
	case UpdateLecture:
		return updateByID(lectures, a.ID, lectureID, func(l *lecture.Lecture) *lecture.Lecture {
			return applyLecture(l, a.Action)
		})
	case RemoveLecture:
		return removeByID(lectures, a.ID, lectureID)
	default:
		return lectures
	}
}

func applyLecture(l *lecture.Lecture, a LectureAction) *lecture.Lecture {
	switch a := a.(type) {
	case UpdateTitle:
		next := *l
		next.Title = a.Title
		return &next
	case UpdateTimes:
		times := applyTimes(l.Times, a.Action)
		if sameSlice(times, l.Times) {
			return l
		}
		next := *l
		next.Times = times
		return &next
	case UpdateLinks:
		links := applyLinks(l.Links, a.Action)
		if sameSlice(links, l.Links) {
			return l
		}
		next := *l
		next.Links = links
		return &next
	default:
		return l
	}
}

func applyTimes(times []*lecture.TimeSlot, a TimesAction) []*lecture.TimeSlot {
	switch a := a.(type) {
	case AddTime:
		slot := lecture.NewTimeSlot()
		if n := len(times); n > 0 {
			last := times[n-1]
			slot.Weekday = last.Weekday
			slot.BeginTime = last.BeginTime
			slot.EndTime = last.EndTime
		}
		return appendCopy(times, slot)
	case UpdateTime:
		return updateByID(times, a.ID, timeID, func(t *lecture.TimeSlot) *lecture.TimeSlot {
			return applyTime(t, a.Action)
		})
	case RemoveTime:
		return removeByID(times, a.ID, timeID)
	default:
		return times
	}
}

func applyTime(t *lecture.TimeSlot, a TimeAction) *lecture.TimeSlot {
	next := *t
	switch a := a.(type) {
	case UpdateWeekday:
		next.Weekday = a.Weekday
	case UpdateBeginTime:
		next.BeginTime = a.Time
	case UpdateEndTime:
		next.EndTime = a.Time
	default:
		return t
	}
	return &next
}

func applyLinks(links []*lecture.Link, a LinksAction) []*lecture.Link {
	switch a := a.(type) {
	case AddLink:
		return appendCopy(links, lecture.NewLink())
	case UpdateLink:
		return updateByID(links, a.ID, linkID, func(k *lecture.Link) *lecture.Link {
			return applyLink(k, a.Action)
		})
	case RemoveLink:
		return removeByID(links, a.ID, linkID)
	default:
		return links
	}
}

func applyLink(k *lecture.Link, a LinkAction) *lecture.Link {
	next := *k
	switch a := a.(type) {
	case UpdateLabel:
		next.Label = a.Label
	case UpdateURL:
		next.URL = a.URL
	default:
		return k
	}
	return &next
}

// RemovesLastTime reports whether a would delete the only remaining time
// slot of an existing lecture.
func RemovesLastTime(lectures []*lecture.Lecture, a Action) bool {
	update, ok := a.(UpdateLecture)
	if !ok {
		return false
	}
	times, ok := update.Action.(UpdateTimes)
	if !ok {
		return false
	}
	remove, ok := times.Action.(RemoveTime)
	if !ok {
		return false
	}
	for _, l := range lectures {
		if l.ID != update.ID {
			continue
		}
		_, found := l.FindTime(remove.ID)
		return found && len(l.Times) == 1
	}
	return false
}
