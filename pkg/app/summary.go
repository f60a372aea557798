package app

import (
	"tableflip.dev/timetable/pkg/lecture"
	"tableflip.dev/timetable/pkg/timeutil"
)

// DayLoad is the teaching time scheduled on one weekday.
type DayLoad struct {
	Weekday lecture.Weekday
	Slots   int
	Minutes int
}

// Summary aggregates a page for listings.
type Summary struct {
	Lectures int
	Slots    int
	Links    int
	Minutes  int
	// Days holds only weekdays with at least one slot, in week order.
	Days []DayLoad
}

// Summarize counts lectures, slots and scheduled minutes per weekday. Slots
// with malformed times are counted but add no minutes; slots ending before
// they begin add none either.
func Summarize(s *lecture.State) Summary {
	var sum Summary
	if s == nil {
		return sum
	}
	byDay := make(map[lecture.Weekday]*DayLoad)
	for _, l := range s.Lectures {
		sum.Lectures++
		sum.Links += len(l.Links)
		for _, t := range l.Times {
			sum.Slots++
			load, ok := byDay[t.Weekday]
			if !ok {
				load = &DayLoad{Weekday: t.Weekday}
				byDay[t.Weekday] = load
			}
			load.Slots++
			begin, err1 := timeutil.ParseTime(t.BeginTime)
			end, err2 := timeutil.ParseTime(t.EndTime)
			if err1 != nil || err2 != nil || end < begin {
				continue
			}
			load.Minutes += end - begin
			sum.Minutes += end - begin
		}
	}
	for _, day := range lecture.Weekdays() {
		if load, ok := byDay[day]; ok {
			sum.Days = append(sum.Days, *load)
		}
	}
	return sum
}
