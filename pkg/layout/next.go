package layout

import (
	"sort"
	"time"

	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/timeutil"
)

// Occurrence is one upcoming meeting of a lecture.
type Occurrence struct {
	Lecture *lecture.Lecture
	Time    *lecture.TimeSlot
	Start   time.Time
	End     time.Time
}

// InProgress reports whether the occurrence has started by at.
func (o Occurrence) InProgress(at time.Time) bool {
	return !o.Start.After(at) && at.Before(o.End)
}

// Next lists the occurrences of every slot that are running at now or start
// within window after it, ordered by start time.
func Next(s *lecture.State, now time.Time, window time.Duration) ([]Occurrence, error) {
	slots, err := flatten(s)
	if err != nil {
		return nil, err
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	horizon := now.Add(window)

	var out []Occurrence
	// One day back catches slots still running from yesterday.
	for d := -1; ; d++ {
		day := midnight.AddDate(0, 0, d)
		if day.After(horizon) {
			break
		}
		weekday := lecture.FromTime(day)
		for _, sl := range slots {
			if sl.time.Weekday != weekday {
				continue
			}
			start := day.Add(time.Duration(sl.begin) * time.Minute)
			end := day.Add(time.Duration(sl.end) * time.Minute)
			if !end.After(now) || start.After(horizon) {
				continue
			}
			out = append(out, Occurrence{Lecture: sl.lecture, Time: sl.time, Start: start, End: end})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// Span renders the occurrence's clock range, e.g. "10:00-11:00".
func (o Occurrence) Span() string {
	return timeutil.FormatTime(timeutil.MinuteOfDay(o.Start)) + "-" + timeutil.FormatTime(timeutil.MinuteOfDay(o.End))
}
